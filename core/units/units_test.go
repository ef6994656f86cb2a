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

package units

import "fmt"

func Example_convertWave() {
	fmt.Printf("%v\n", ConvertWave(300, WaveNanometre, WaveAngstrom))
	fmt.Printf("%v\n", ConvertWave(0.3, WaveMicron, WaveNanometre))
	fmt.Printf("%v\n", ConvertWave(5500, WaveAngstrom, WaveMicron))
	fmt.Printf("%v\n", WaveMicron.ToAngstrom(1.25))

	// Output:
	// 3000
	// 300
	// 0.55
	// 12500
}

func Example_parseWaveUnit() {
	for _, name := range []string{"nm", "um", "AA", "furlong"} {
		u, err := ParseWaveUnit(name)
		fmt.Printf("%v|%v\n", u, err)
	}

	// Output:
	// nm|<nil>
	// micron|<nil>
	// angstrom|<nil>
	// angstrom|Unrecognised wavelength unit: furlong
}

func Example_parseFluxUnit() {
	for _, name := range []string{"", "photlam", "photonradiance", "jansky"} {
		u, err := ParseFluxUnit(name)
		fmt.Printf("%v|%v\n", u, err)
	}

	// Output:
	// throughput|<nil>
	// photlam|<nil>
	// photon / (s m2 um)|<nil>
	// throughput|Unrecognised flux unit: jansky
}
