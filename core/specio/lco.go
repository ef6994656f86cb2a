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
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/talister/lincc-example/core/logger"
	"github.com/talister/lincc-example/core/spectrum"
)

// LCOWaveUnitName - LCO Imaging Lab scans are always in nanometres
const LCOWaveUnitName = "nm"

// ReadLCOFilterCSV - reads an LCO Imaging Lab scanned optical element CSV.
// The file is a run of key,value metadata rows (instrument, element, scan
// date...) followed by a two-column wavelength(nm),transmission table. A
// column header row like "Wavelength (nm),Transmission" may sit between the
// two and is skipped along with the metadata.
func ReadLCOFilterCSV(data []byte, jobLog logger.ILogger) (spectrum.Header, []float64, []float64, error) {
	rows, err := ReadCSV(data, 0, ',', jobLog)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "LCO filter CSV")
	}

	header := spectrum.Header{}
	waves := []float64{}
	trans := []float64{}

	inTable := false
	for rowIdx, row := range rows {
		if len(row) < 2 {
			// Blank line or stray single-column row
			continue
		}

		wave, werr := strconv.ParseFloat(strings.TrimSpace(row[0]), 64)
		if werr != nil {
			if inTable {
				return nil, nil, nil, errors.Wrapf(werr, "LCO filter CSV: bad wavelength on row %v", rowIdx)
			}
			// Still in the metadata block (or the column header row)
			key := strings.TrimSpace(row[0])
			if len(key) > 0 && !strings.HasPrefix(key, "Wavelength") {
				header[key] = strings.TrimSpace(row[1])
			}
			continue
		}

		value, verr := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if verr != nil {
			return nil, nil, nil, errors.Wrapf(verr, "LCO filter CSV: bad transmission on row %v", rowIdx)
		}

		inTable = true
		waves = append(waves, wave)
		trans = append(trans, value)
	}

	if len(waves) <= 0 {
		return nil, nil, nil, errors.New("LCO filter CSV: no data rows found")
	}

	jobLog.Debugf("LCO filter CSV: %v metadata entries, %v samples", len(header), len(waves))
	return header, waves, trans, nil
}
