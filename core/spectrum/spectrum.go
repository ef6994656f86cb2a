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

// In-memory representation of spectral data: a throughput curve, a filter
// or mirror transmission profile, or a source spectrum. All variants wrap
// an Empirical1D curve plus a header of provenance metadata, and are
// immutable once constructed.
package spectrum

import "github.com/talister/lincc-example/core/units"

// Header - key/value metadata read from (or attached to) a spectral file
type Header map[string]string

// SpectralObject - common interface over the three spectral variants.
// Wavelengths are always angstroms, the native storage unit.
type SpectralObject interface {
	Waveset() []float64
	Sample(waveAngstrom float64) float64
	Header() Header
}

type baseSpectrum struct {
	curve  *Empirical1D
	header Header
}

func (s *baseSpectrum) Waveset() []float64 {
	return s.curve.Points()
}

func (s *baseSpectrum) Sample(waveAngstrom float64) float64 {
	return s.curve.Sample(waveAngstrom)
}

func (s *baseSpectrum) Header() Header {
	return s.header
}

// Values - the raw sample values, index-aligned with Waveset
func (s *baseSpectrum) Values() []float64 {
	return s.curve.Lookup()
}

// UnitlessSpectrum - a dimensionless throughput curve, the fallback variant
// for generic optical elements
type UnitlessSpectrum struct {
	baseSpectrum
}

// SpectralElement - a filter/mirror/grating transmission curve. Behaves the
// same as UnitlessSpectrum, the distinct type records what it models.
type SpectralElement struct {
	UnitlessSpectrum
}

// SourceSpectrum - flux density of a source (or sky radiance) vs wavelength
type SourceSpectrum struct {
	baseSpectrum
	fluxUnit units.FluxUnit
}

func (s *SourceSpectrum) FluxUnit() units.FluxUnit {
	return s.fluxUnit
}

func makeBase(waves []float64, waveUnit units.WaveUnit, values []float64, header Header) (baseSpectrum, error) {
	points := make([]float64, len(waves))
	for i, w := range waves {
		points[i] = waveUnit.ToAngstrom(w)
	}

	curve, err := NewEmpirical1D(points, values)
	if err != nil {
		return baseSpectrum{}, err
	}

	if header == nil {
		header = Header{}
	}
	return baseSpectrum{curve: curve, header: header}, nil
}

func NewUnitlessSpectrum(waves []float64, waveUnit units.WaveUnit, values []float64, header Header) (*UnitlessSpectrum, error) {
	base, err := makeBase(waves, waveUnit, values, header)
	if err != nil {
		return nil, err
	}
	return &UnitlessSpectrum{baseSpectrum: base}, nil
}

func NewSpectralElement(waves []float64, waveUnit units.WaveUnit, values []float64, header Header) (*SpectralElement, error) {
	base, err := makeBase(waves, waveUnit, values, header)
	if err != nil {
		return nil, err
	}
	return &SpectralElement{UnitlessSpectrum{baseSpectrum: base}}, nil
}

func NewSourceSpectrum(waves []float64, waveUnit units.WaveUnit, values []float64, fluxUnit units.FluxUnit, header Header) (*SourceSpectrum, error) {
	base, err := makeBase(waves, waveUnit, values, header)
	if err != nil {
		return nil, err
	}
	return &SourceSpectrum{baseSpectrum: base, fluxUnit: fluxUnit}, nil
}
