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

package element

import (
	"net/http"
	"strings"

	"github.com/pkg/errors"

	"github.com/talister/lincc-example/core/fileaccess"
	"github.com/talister/lincc-example/core/logger"
	"github.com/talister/lincc-example/core/spectrum"
	"github.com/talister/lincc-example/core/specio"
	"github.com/talister/lincc-example/core/units"
)

// Reader - reads spectral objects from identifiers. Construct with
// NewReader; the fields are exported so tests (and callers with their own
// AWS session or HTTP client) can swap implementations in.
type Reader struct {
	LocalFS fileaccess.FileAccess
	S3      fileaccess.FileAccess
	HTTP    *http.Client
	Log     logger.ILogger
}

func NewReader(log logger.ILogger) *Reader {
	if log == nil {
		log = &logger.NullLogger{}
	}
	return &Reader{
		LocalFS: &fileaccess.FSAccess{},
		Log:     log,
	}
}

// ReadElement - convenience wrapper using the default units: wavelengths in
// nanometres, values as dimensionless throughput
func ReadElement(identifier string, elementType ElementType) (spectrum.SpectralObject, error) {
	return NewReader(nil).ReadElement(identifier, elementType, units.WaveNanometre, units.FluxThroughput)
}

// ReadElement - reads the identifier's data and builds the spectral object
// variant selected by elementType. The identifier is classified as a
// bundled LCO iLab CSV, an SVO filter service URL, or a local/S3 file
// (ASCII or FITS); see the package doc for the unit and percentage
// normalisation applied to local files.
func (r *Reader) ReadElement(identifier string, elementType ElementType, waveUnits units.WaveUnit, fluxUnits units.FluxUnit) (spectrum.SpectralObject, error) {
	elementType = ElementType(strings.ToLower(string(elementType)))

	var header spectrum.Header
	var waves, values []float64
	var readWaveUnit units.WaveUnit
	var source string
	var err error

	switch classifySource(identifier) {
	case sourceLCOCSV:
		source = SourceLCO
		var data []byte
		data, err = r.readPackagedData(identifier)
		if err != nil {
			return nil, err
		}
		header, waves, values, err = specio.ReadLCOFilterCSV(data, r.Log)
		readWaveUnit = units.WaveNanometre

	case sourceSVO:
		source = SourceSVO
		// The filter service always serves angstroms and throughput,
		// whatever units the caller asked for
		header, waves, values, err = specio.ReadRemoteSpec(identifier, r.HTTP, r.Log)
		readWaveUnit = units.WaveAngstrom

	case sourceLocalFile:
		source = SourceLocal
		header, waves, values, readWaveUnit, err = r.readLocalFile(identifier, elementType, waveUnits)
		if err != nil {
			return nil, err
		}

		if waveUnits == units.WaveNanometre {
			if waves[0] < micronThresholdNm {
				// Small values seen, assume microns
				readWaveUnit = units.WaveMicron
			} else if waves[0] > angstromThresholdNm {
				// Large values seen, assume angstroms
				readWaveUnit = units.WaveAngstrom
			}
		}

		if elementType != TypeSpectrum && elementType != TypeRadiance && mean(values) > percentMeanLimit {
			for i := range values {
				values[i] /= percentScale
			}
			header["notes"] = "Divided by 100.0 to convert from percentage"
		}
	}

	if err != nil {
		return nil, err
	}

	if header == nil {
		header = spectrum.Header{}
	}
	header["source"] = source
	header["filename"] = identifier

	if elementType == TypeSpectrum || elementType == TypeRadiance {
		// Throughput isn't a meaningful flux unit for a source spectrum, so
		// substitute the conventional default if the caller didn't pick one
		if fluxUnits == units.FluxThroughput {
			if elementType == TypeRadiance {
				// Default unit for ESO skycalc output (minus the arcsec^2)
				fluxUnits = units.FluxPhotonRadiance
			} else {
				fluxUnits = units.FluxPhotlam
			}
		}
		return spectrum.NewSourceSpectrum(waves, readWaveUnit, values, fluxUnits, header)
	}

	if elementType == TypeSpectralElement {
		return spectrum.NewSpectralElement(waves, readWaveUnit, values, header)
	}
	return spectrum.NewUnitlessSpectrum(waves, readWaveUnit, values, header)
}

// Reads a local/S3 file as either FITS or ASCII, returning the unit its
// wavelengths were stored in
func (r *Reader) readLocalFile(identifier string, elementType ElementType, waveUnits units.WaveUnit) (spectrum.Header, []float64, []float64, units.WaveUnit, error) {
	data, err := r.readLocal(identifier)
	if err != nil {
		return nil, nil, nil, 0, err
	}

	lower := strings.ToLower(identifier)
	if strings.HasSuffix(lower, "fits") || strings.HasSuffix(lower, "fit") {
		return r.readFITS(data, elementType)
	}

	header, waves, values, err := specio.ReadASCIISpec(data, r.Log)
	return header, waves, values, waveUnits, err
}

// Explicit two-schema attempt sequence: the standard lam/trans layout in
// nanometres first, then the ESO-SM01 sky spectrum layout (flux column,
// micron wavelengths). A schema only counts as "didn't match" when its
// column is absent, any other failure propagates straight out.
func (r *Reader) readFITS(data []byte, elementType ElementType) (spectrum.Header, []float64, []float64, units.WaveUnit, error) {
	fluxCol := "trans"
	if elementType == TypeRadiance {
		fluxCol = "flux"
	}

	schemas := []specio.FITSSchema{
		{WaveCol: "lam", FluxCol: fluxCol, WaveUnit: units.WaveNanometre},
		{WaveCol: "lam", FluxCol: "flux", WaveUnit: units.WaveMicron},
	}

	attempts := []string{}
	for _, schema := range schemas {
		header, waves, values, err := specio.ReadFITSSpec(data, schema, r.Log)
		if err == nil {
			return header, waves, values, schema.WaveUnit, nil
		}
		if !specio.IsMissingColumn(err) {
			return nil, nil, nil, 0, err
		}
		r.Log.Debugf("FITS schema %v did not match: %v", schema, err)
		attempts = append(attempts, schema.String())
	}

	return nil, nil, nil, 0, errors.Errorf("no FITS schema matched, tried: %v", strings.Join(attempts, "; "))
}

func mean(values []float64) float64 {
	if len(values) <= 0 {
		return 0
	}
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total / float64(len(values))
}
