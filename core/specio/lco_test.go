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

package specio

import (
	"fmt"

	"github.com/talister/lincc-example/core/logger"
)

func Example_readLCOFilterCSV() {
	data := []byte(`Instrument,1m0 SBIG
Element,Bessell-B
Wavelength (nm),Transmission
360.0,0.012
370.0,0.118
380.0,0.325
`)
	header, waves, trans, err := ReadLCOFilterCSV(data, &logger.NullLogger{})
	fmt.Printf("%v\n", err)
	fmt.Printf("%v|%v\n", header["Instrument"], header["Element"])
	fmt.Printf("%v\n", waves)
	fmt.Printf("%v\n", trans)

	// Output:
	// <nil>
	// 1m0 SBIG|Bessell-B
	// [360 370 380]
	// [0.012 0.118 0.325]
}

func Example_readLCOFilterCSV_NoData() {
	_, _, _, err := ReadLCOFilterCSV([]byte("Instrument,FLOYDS\n"), &logger.NullLogger{})
	fmt.Printf("%v\n", err)

	// Output:
	// LCO filter CSV: no data rows found
}

func Example_readLCOFilterCSV_BadTransmission() {
	data := []byte(`Wavelength (nm),Transmission
360.0,0.012
370.0,broken
`)
	_, _, _, err := ReadLCOFilterCSV(data, &logger.NullLogger{})
	fmt.Printf("%v\n", err)

	// Output:
	// LCO filter CSV: bad transmission on row 2: strconv.ParseFloat: parsing "broken": invalid syntax
}
