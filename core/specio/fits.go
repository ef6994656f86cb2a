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
	"bytes"
	"fmt"
	"strings"

	"github.com/astrogo/fitsio"
	"github.com/pkg/errors"

	"github.com/talister/lincc-example/core/logger"
	"github.com/talister/lincc-example/core/spectrum"
	"github.com/talister/lincc-example/core/units"
)

// FITSSchema - names the binary table columns holding wavelength and
// flux/transmission, plus the wavelength unit the format uses. The element
// reader tries schemas in sequence, so a missing column is reported as its
// own error type rather than a generic failure.
type FITSSchema struct {
	WaveCol  string
	FluxCol  string
	WaveUnit units.WaveUnit
}

func (s FITSSchema) String() string {
	return fmt.Sprintf("%v/%v (%v)", s.WaveCol, s.FluxCol, s.WaveUnit)
}

// MissingColumnError - a required column was not in the table
type MissingColumnError struct {
	Column    string
	Available []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("FITS table has no column \"%v\", columns are: %v", e.Column, strings.Join(e.Available, ", "))
}

// IsMissingColumn - true if the error (however wrapped) is a column mismatch
func IsMissingColumn(err error) bool {
	var missing *MissingColumnError
	return errors.As(err, &missing)
}

// Header cards we copy into the result if the file carries them
var fitsHeaderCards = []string{"EXTNAME", "ORIGIN", "TELESCOP", "INSTRUME", "OBJECT"}

// ReadFITSSpec - reads wavelength and flux columns from the first binary
// table HDU of a FITS file
func ReadFITSSpec(data []byte, schema FITSSchema, jobLog logger.ILogger) (spectrum.Header, []float64, []float64, error) {
	f, err := fitsio.Open(bytes.NewReader(data))
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "FITS spectrum")
	}
	defer f.Close()

	var tbl *fitsio.Table
	for _, hdu := range f.HDUs() {
		if t, ok := hdu.(*fitsio.Table); ok {
			tbl = t
			break
		}
	}
	if tbl == nil {
		return nil, nil, nil, errors.New("FITS spectrum: no table HDU found")
	}

	colNames := []string{}
	for _, col := range tbl.Cols() {
		colNames = append(colNames, col.Name)
	}

	waveCol, err := findColumn(schema.WaveCol, colNames)
	if err != nil {
		return nil, nil, nil, err
	}
	fluxCol, err := findColumn(schema.FluxCol, colNames)
	if err != nil {
		return nil, nil, nil, err
	}

	header := spectrum.Header{}
	for _, key := range fitsHeaderCards {
		if card := tbl.Header().Get(key); card != nil {
			header[strings.ToLower(key)] = fmt.Sprintf("%v", card.Value)
		}
	}

	rows, err := tbl.Read(0, tbl.NumRows())
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "FITS spectrum")
	}
	defer rows.Close()

	waves := []float64{}
	values := []float64{}

	rowIdx := 0
	for rows.Next() {
		rowData := map[string]interface{}{
			waveCol: nil,
			fluxCol: nil,
		}
		err = rows.Scan(&rowData)
		if err != nil {
			return nil, nil, nil, errors.Wrapf(err, "FITS spectrum: could not scan row %v", rowIdx)
		}

		wave, ok := toFloat64(rowData[waveCol])
		if !ok {
			return nil, nil, nil, errors.Errorf("FITS spectrum: non-numeric %v on row %v: %v", waveCol, rowIdx, rowData[waveCol])
		}
		value, ok := toFloat64(rowData[fluxCol])
		if !ok {
			return nil, nil, nil, errors.Errorf("FITS spectrum: non-numeric %v on row %v: %v", fluxCol, rowIdx, rowData[fluxCol])
		}

		waves = append(waves, wave)
		values = append(values, value)
		rowIdx++
	}
	if err := rows.Err(); err != nil {
		return nil, nil, nil, errors.Wrap(err, "FITS spectrum")
	}

	if len(waves) <= 0 {
		return nil, nil, nil, errors.New("FITS spectrum: no rows in table")
	}

	jobLog.Debugf("FITS spectrum: read %v rows with schema %v", len(waves), schema)
	return header, waves, values, nil
}

// Case-insensitive column lookup, returns the name as stored in the file
func findColumn(want string, available []string) (string, error) {
	for _, name := range available {
		if strings.EqualFold(name, want) {
			return name, nil
		}
	}
	return "", &MissingColumnError{Column: want, Available: available}
}

func toFloat64(v interface{}) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	case int32:
		return float64(val), true
	case int16:
		return float64(val), true
	case int8:
		return float64(val), true
	case uint8:
		return float64(val), true
	}
	return 0, false
}
