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

// Units for the wavelength and flux axes of spectral data. We only carry
// the handful of units our file formats actually use, so this is a pair of
// enums with conversion helpers rather than a general quantity system.
package units

import "fmt"

// WaveUnit - wavelength axis unit
type WaveUnit int

const (
	// WaveAngstrom - angstroms, the native unit spectral objects store
	WaveAngstrom WaveUnit = iota

	// WaveNanometre - nanometres, the default unit for reading local files
	WaveNanometre WaveUnit = iota

	// WaveMicron - microns, used by ESO-SM01 sky spectra
	WaveMicron WaveUnit = iota
)

// Angstroms per unit, used for all wavelength conversions
var waveUnitAngstroms = map[WaveUnit]float64{
	WaveAngstrom:  1.0,
	WaveNanometre: 10.0,
	WaveMicron:    10000.0,
}

var waveUnitNames = map[WaveUnit]string{
	WaveAngstrom:  "angstrom",
	WaveNanometre: "nm",
	WaveMicron:    "micron",
}

func (u WaveUnit) String() string {
	return waveUnitNames[u]
}

// ToAngstrom - converts a value in this unit to angstroms
func (u WaveUnit) ToAngstrom(value float64) float64 {
	return value * waveUnitAngstroms[u]
}

// ConvertWave - converts a wavelength value between units
func ConvertWave(value float64, from WaveUnit, to WaveUnit) float64 {
	return value * waveUnitAngstroms[from] / waveUnitAngstroms[to]
}

// ParseWaveUnit - parses a wavelength unit name, accepting a few aliases
// seen in file headers
func ParseWaveUnit(name string) (WaveUnit, error) {
	switch name {
	case "angstrom", "angstroms", "AA", "A":
		return WaveAngstrom, nil
	case "nm", "nanometre", "nanometer":
		return WaveNanometre, nil
	case "micron", "microns", "um":
		return WaveMicron, nil
	}
	return WaveAngstrom, fmt.Errorf("Unrecognised wavelength unit: %v", name)
}

// FluxUnit - flux/value axis unit
type FluxUnit int

const (
	// FluxThroughput - dimensionless transmission fraction, the default for
	// optical elements
	FluxThroughput FluxUnit = iota

	// FluxPhotlam - photon flux density, photon / (s cm^2 angstrom)
	FluxPhotlam FluxUnit = iota

	// FluxPhotonRadiance - photon / (s m^2 micron), the unit ESO skycalc
	// radiance files use (minus the arcsec^2)
	FluxPhotonRadiance FluxUnit = iota
)

var fluxUnitNames = map[FluxUnit]string{
	FluxThroughput:     "throughput",
	FluxPhotlam:        "photlam",
	FluxPhotonRadiance: "photon / (s m2 um)",
}

func (u FluxUnit) String() string {
	return fluxUnitNames[u]
}

// ParseFluxUnit - parses a flux unit name
func ParseFluxUnit(name string) (FluxUnit, error) {
	switch name {
	case "throughput", "":
		return FluxThroughput, nil
	case "photlam":
		return FluxPhotlam, nil
	case "photon / (s m2 um)", "photonradiance":
		return FluxPhotonRadiance, nil
	}
	return FluxThroughput, fmt.Errorf("Unrecognised flux unit: %v", name)
}
