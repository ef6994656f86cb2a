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

package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/talister/lincc-example/core/element"
	"github.com/talister/lincc-example/core/logger"
	"github.com/talister/lincc-example/core/spectrum"
	"github.com/talister/lincc-example/core/units"
	"github.com/talister/lincc-example/data"
)

func main() {
	var argElement = flag.String("element", "", "Element identifier: bundled LCO_*.csv name, SVO URL, or local/S3 ASCII or FITS path")
	var argType = flag.String("type", "element", "Element type, one of: element, spectrum, radiance, spectral_element")
	var argWaveUnit = flag.String("waveunit", "nm", "Wavelength unit of ASCII input: nm, angstrom or micron")
	var argFluxUnit = flag.String("fluxunit", "throughput", "Flux unit of input: throughput, photlam or photonradiance")
	var argList = flag.Bool("list", false, "List bundled element data files and exit")
	var argDebug = flag.Bool("debug", false, "Enable debug logging")

	flag.Parse()

	if *argList {
		for _, name := range data.List() {
			fmt.Println(name)
		}
		return
	}

	if len(*argElement) <= 0 {
		fmt.Fprintln(os.Stderr, "No element specified, use -element")
		flag.Usage()
		os.Exit(1)
	}

	jobLog := &logger.StdErrLogger{}
	if !*argDebug {
		jobLog.SetLogLevel(logger.LogInfo)
	}

	elementType, err := element.ParseElementType(*argType)
	if err != nil {
		fail(err)
	}
	waveUnit, err := units.ParseWaveUnit(*argWaveUnit)
	if err != nil {
		fail(err)
	}
	fluxUnit, err := units.ParseFluxUnit(*argFluxUnit)
	if err != nil {
		fail(err)
	}

	reader := element.NewReader(jobLog)
	elem, err := reader.ReadElement(*argElement, elementType, waveUnit, fluxUnit)
	if err != nil {
		fail(err)
	}

	printElement(elem)
}

func printElement(elem spectrum.SpectralObject) {
	header := elem.Header()
	keys := []string{}
	for key := range header {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		fmt.Printf("%v: %v\n", key, header[key])
	}

	waves := elem.Waveset()
	first := waves[0]
	last := waves[len(waves)-1]
	fmt.Printf("samples: %v\n", len(waves))
	fmt.Printf("range: %.1f - %.1f angstrom (%.2f - %.2f nm)\n",
		first, last,
		units.ConvertWave(first, units.WaveAngstrom, units.WaveNanometre),
		units.ConvertWave(last, units.WaveAngstrom, units.WaveNanometre))
	fmt.Printf("value at midpoint: %.4f\n", elem.Sample((first+last)/2))

	if spec, ok := elem.(*spectrum.SourceSpectrum); ok {
		fmt.Printf("flux unit: %v\n", spec.FluxUnit())
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
	os.Exit(1)
}
