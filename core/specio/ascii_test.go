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

func Example_readASCIISpec_Whitespace() {
	data := []byte(`# A comment
lam flux
300 0.5
310  0.4
320	0.3
`)
	_, waves, values, err := ReadASCIISpec(data, &logger.NullLogger{})
	fmt.Printf("%v\n", err)
	fmt.Printf("%v\n", waves)
	fmt.Printf("%v\n", values)

	// Output:
	// <nil>
	// [300 310 320]
	// [0.5 0.4 0.3]
}

func Example_readASCIISpec_Comma() {
	data := []byte(`# filter scan export
wavelength,transmission
4000,0.12
4100,0.34
`)
	_, waves, values, err := ReadASCIISpec(data, &logger.NullLogger{})
	fmt.Printf("%v\n", err)
	fmt.Printf("%v\n", waves)
	fmt.Printf("%v\n", values)

	// Output:
	// <nil>
	// [4000 4100]
	// [0.12 0.34]
}

func Example_readASCIISpec_CommaNoHeader() {
	data := []byte("4000,0.12\n4100,0.34\n")
	_, waves, values, err := ReadASCIISpec(data, &logger.NullLogger{})
	fmt.Printf("%v\n", err)
	fmt.Printf("%v %v\n", waves, values)

	_, _, _, err = ReadASCIISpec([]byte("wavelength,transmission\n"), &logger.NullLogger{})
	fmt.Printf("%v\n", err)

	// Output:
	// <nil>
	// [4000 4100] [0.12 0.34]
	// ASCII spectrum: no data rows found
}

func Example_readASCIISpec_Errors() {
	_, _, _, err := ReadASCIISpec([]byte("# only comments\n"), &logger.NullLogger{})
	fmt.Printf("%v\n", err)

	_, _, _, err = ReadASCIISpec([]byte("300 0.5\n310 cheese\n"), &logger.NullLogger{})
	fmt.Printf("%v\n", err)

	_, _, _, err = ReadASCIISpec([]byte("300\n"), &logger.NullLogger{})
	fmt.Printf("%v\n", err)

	// Output:
	// ASCII spectrum: no data rows found
	// ASCII spectrum: bad value on line 2: strconv.ParseFloat: parsing "cheese": invalid syntax
	// ASCII spectrum: expected 2 columns on line 1, got 1
}
