// Licensed to NASA JPL under one or more contributor
// license agreements. See the NOTICE file distributed with
// this work for additional information regarding copyright
// ownership. NASA JPL licenses this file to you under
// the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package data

import "fmt"

func Example_list() {
	fmt.Printf("%v\n", List())
	fmt.Printf("%v %v\n", Exists("LCO_ESA_Grating.csv"), Exists("LCO_Nonexistent.csv"))

	// Output:
	// [LCO_1m0_SBIG_B.csv LCO_ESA_Grating.csv sky_radiance.dat]
	// true false
}

func Example_read() {
	contents, err := Read("sky_radiance.dat")
	fmt.Printf("%v %v\n", err, len(contents) > 0)

	// Output:
	// <nil> true
}
