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
	"bufio"
	"bytes"
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go-hep.org/x/hep/csvutil"

	"github.com/talister/lincc-example/core/logger"
	"github.com/talister/lincc-example/core/spectrum"
)

// ReadASCIISpec - reads a two-column (wavelength, value) ASCII table.
// Columns are whitespace or comma separated, # starts a comment, and one
// non-numeric column header line is tolerated at the top of the table.
func ReadASCIISpec(data []byte, jobLog logger.ILogger) (spectrum.Header, []float64, []float64, error) {
	if isCommaSeparated(data) {
		return readCommaSpec(data, jobLog)
	}
	return readWhitespaceSpec(data, jobLog)
}

// Looks at the first non-comment, non-blank line to decide the separator
func isCommaSeparated(data []byte) bool {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) <= 0 || strings.HasPrefix(line, "#") {
			continue
		}
		return strings.Contains(line, ",")
	}
	return false
}

func readWhitespaceSpec(data []byte, jobLog logger.ILogger) (spectrum.Header, []float64, []float64, error) {
	header := spectrum.Header{}
	waves := []float64{}
	values := []float64{}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineIdx := 0
	for scanner.Scan() {
		lineIdx++
		line := strings.TrimSpace(scanner.Text())
		if len(line) <= 0 || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, nil, nil, errors.Errorf("ASCII spectrum: expected 2 columns on line %v, got %v", lineIdx, len(fields))
		}

		wave, werr := strconv.ParseFloat(fields[0], 64)
		if werr != nil {
			if len(waves) <= 0 {
				// Tolerate one column header line before the data
				jobLog.Debugf("ASCII spectrum: skipping header line %v: %v", lineIdx, line)
				continue
			}
			return nil, nil, nil, errors.Wrapf(werr, "ASCII spectrum: bad wavelength on line %v", lineIdx)
		}

		value, verr := strconv.ParseFloat(fields[1], 64)
		if verr != nil {
			return nil, nil, nil, errors.Wrapf(verr, "ASCII spectrum: bad value on line %v", lineIdx)
		}

		waves = append(waves, wave)
		values = append(values, value)
	}

	if err := scanner.Err(); err != nil {
		return nil, nil, nil, errors.Wrap(err, "ASCII spectrum")
	}
	if len(waves) <= 0 {
		return nil, nil, nil, errors.New("ASCII spectrum: no data rows found")
	}

	return header, waves, values, nil
}

func readCommaSpec(data []byte, jobLog logger.ILogger) (spectrum.Header, []float64, []float64, error) {
	data = stripColumnHeader(data, jobLog)

	tbl := &csvutil.Table{
		Reader: csv.NewReader(bufio.NewReader(bytes.NewReader(data))),
	}
	defer tbl.Close()
	tbl.Reader.Comma = ','
	tbl.Reader.Comment = '#'
	tbl.Reader.TrimLeadingSpace = true

	rows, err := tbl.ReadRows(0, -1)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "ASCII spectrum: could not read rows")
	}
	defer rows.Close()

	header := spectrum.Header{}
	waves := []float64{}
	values := []float64{}

	rowIdx := 0
	for rows.Next() {
		var wave, value float64
		err = rows.Scan(&wave, &value)
		if err != nil {
			return nil, nil, nil, errors.Wrapf(err, "ASCII spectrum: could not scan row %v", rowIdx)
		}
		waves = append(waves, wave)
		values = append(values, value)
		rowIdx++
	}

	if err := rows.Err(); err != nil && err != io.EOF {
		return nil, nil, nil, errors.Wrap(err, "ASCII spectrum: error while processing rows")
	}
	if len(waves) <= 0 {
		return nil, nil, nil, errors.New("ASCII spectrum: no data rows found")
	}

	return header, waves, values, nil
}

// Tolerate one column header line before the data. csvutil scans rows
// straight into float64s and its Rows iterator latches the first scan
// failure, so a "wavelength,transmission" line has to go before the table
// ever sees it. Returns the data starting at the first numeric row.
func stripColumnHeader(data []byte, jobLog logger.ILogger) []byte {
	rest := data
	for len(rest) > 0 {
		idx := bytes.IndexByte(rest, '\n')
		line := rest
		next := []byte{}
		if idx >= 0 {
			line = rest[:idx]
			next = rest[idx+1:]
		}

		trimmed := strings.TrimSpace(string(line))
		if len(trimmed) > 0 && !strings.HasPrefix(trimmed, "#") {
			first := strings.TrimSpace(strings.SplitN(trimmed, ",", 2)[0])
			if _, err := strconv.ParseFloat(first, 64); err != nil {
				jobLog.Debugf("ASCII spectrum: skipping header line: %v", trimmed)
				return next
			}
			return data
		}
		rest = next
	}
	return data
}
