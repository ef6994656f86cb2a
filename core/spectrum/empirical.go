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

package spectrum

import (
	"fmt"
	"sort"
)

// Empirical1D - a sampled curve: value as a function of wavelength, linearly
// interpolated between samples. Wavelengths are stored in angstroms,
// increasing. Negative lookup values are clamped to 0 on construction, as
// negative throughput/flux samples are always instrument noise.
type Empirical1D struct {
	points []float64
	lookup []float64
}

func NewEmpirical1D(points []float64, lookup []float64) (*Empirical1D, error) {
	if len(points) <= 0 {
		return nil, fmt.Errorf("Empirical1D: no points")
	}
	if len(points) != len(lookup) {
		return nil, fmt.Errorf("Empirical1D: %v points but %v lookup values", len(points), len(lookup))
	}

	clamped := make([]float64, len(lookup))
	for i, v := range lookup {
		if v < 0 {
			v = 0
		}
		clamped[i] = v
	}

	saved := make([]float64, len(points))
	copy(saved, points)

	return &Empirical1D{points: saved, lookup: clamped}, nil
}

// Points - the sample wavelengths in angstroms
func (e *Empirical1D) Points() []float64 {
	return e.points
}

// Lookup - the sample values, index-aligned with Points
func (e *Empirical1D) Lookup() []float64 {
	return e.lookup
}

// Sample - interpolated value at the given wavelength (angstroms). Outside
// the sampled range the curve evaluates to 0.
func (e *Empirical1D) Sample(waveAngstrom float64) float64 {
	n := len(e.points)
	if waveAngstrom < e.points[0] || waveAngstrom > e.points[n-1] {
		return 0
	}

	idx := sort.SearchFloat64s(e.points, waveAngstrom)
	if idx < n && e.points[idx] == waveAngstrom {
		return e.lookup[idx]
	}

	// idx is the first point above waveAngstrom, interpolate from the one below
	x0, x1 := e.points[idx-1], e.points[idx]
	y0, y1 := e.lookup[idx-1], e.lookup[idx]
	return y0 + (y1-y0)*(waveAngstrom-x0)/(x1-x0)
}
