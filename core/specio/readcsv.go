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

// Readers for the spectral file formats we consume: LCO Imaging Lab CSV
// scans, plain two-column ASCII tables, FITS binary tables and remote
// filter service responses. Each reader returns header metadata plus
// index-aligned wavelength and value slices; units are the caller's
// business, readers only report what the format fixes.
package specio

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/talister/lincc-example/core/logger"
)

// ReadCSV - reads all rows of CSV data, optionally skipping header lines
// that may not themselves be valid CSV
func ReadCSV(data []byte, headerRowCount int, sep rune, jobLog logger.ILogger) ([][]string, error) {
	// Chop off header rows before handing to the csv package, they're
	// free-form text in some of our scan files
	for n := 0; n < headerRowCount; n++ {
		idx := bytes.IndexByte(data, '\n')
		if idx < 0 {
			return nil, fmt.Errorf("Ran out of data skipping %v header rows", headerRowCount)
		}
		data = data[idx+1:]
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.TrimLeadingSpace = true
	r.Comma = sep

	// Some files contain tables whose column count varies part-way down, so
	// instead of ReadAll() which blows up when the # cols differs, we read
	// each line and ignore the field count error
	rows := [][]string{}
	for {
		lineRecord, err := r.Read()
		if err == io.EOF {
			break
		}

		if err != nil {
			if csverr, ok := err.(*csv.ParseError); !ok || csverr.Err != csv.ErrFieldCount {
				return nil, err
			}
		}

		rows = append(rows, lineRecord)
	}

	if len(rows) <= 0 {
		return rows, fmt.Errorf("Read 0 rows of CSV data")
	}
	return rows, nil
}
