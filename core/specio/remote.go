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
	"encoding/xml"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/talister/lincc-example/core/logger"
	"github.com/talister/lincc-example/core/spectrum"
)

// The SVO filter service responds with a VOTable document; some mirrors
// serve plain ASCII instead, so we sniff and accept both.

type voTableDoc struct {
	XMLName  xml.Name `xml:"VOTABLE"`
	Resource struct {
		Table struct {
			Fields []struct {
				Name string `xml:"name,attr"`
			} `xml:"FIELD"`
			Data struct {
				TableData struct {
					Rows []struct {
						Cells []string `xml:"TD"`
					} `xml:"TR"`
				} `xml:"TABLEDATA"`
			} `xml:"DATA"`
		} `xml:"TABLE"`
	} `xml:"RESOURCE"`
}

// ReadRemoteSpec - fetches a filter profile from a remote service and
// parses the response. Pass nil to use http.DefaultClient; timeouts and
// retries are whatever the client provides, we don't add any.
func ReadRemoteSpec(url string, client *http.Client, jobLog logger.ILogger) (spectrum.Header, []float64, []float64, error) {
	if client == nil {
		client = http.DefaultClient
	}

	jobLog.Debugf("Fetching remote spectrum: %v", url)
	resp, err := client.Get(url)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "remote spectrum")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, nil, errors.Errorf("remote spectrum: %v returned status %v", url, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "remote spectrum")
	}

	if isVOTable(body) {
		return readVOTable(body, jobLog)
	}
	return ReadASCIISpec(body, jobLog)
}

func isVOTable(body []byte) bool {
	head := body
	if len(head) > 512 {
		head = head[0:512]
	}
	return bytes.Contains(bytes.ToUpper(head), []byte("<VOTABLE"))
}

func readVOTable(body []byte, jobLog logger.ILogger) (spectrum.Header, []float64, []float64, error) {
	doc := voTableDoc{}
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, nil, nil, errors.Wrap(err, "VOTable spectrum")
	}

	header := spectrum.Header{}
	for idx, field := range doc.Resource.Table.Fields {
		if idx < 2 {
			header["col"+strconv.Itoa(idx+1)] = field.Name
		}
	}

	waves := []float64{}
	values := []float64{}
	for rowIdx, row := range doc.Resource.Table.Data.TableData.Rows {
		if len(row.Cells) < 2 {
			return nil, nil, nil, errors.Errorf("VOTable spectrum: expected 2 cells on row %v, got %v", rowIdx, len(row.Cells))
		}

		wave, werr := strconv.ParseFloat(strings.TrimSpace(row.Cells[0]), 64)
		if werr != nil {
			return nil, nil, nil, errors.Wrapf(werr, "VOTable spectrum: bad wavelength on row %v", rowIdx)
		}
		value, verr := strconv.ParseFloat(strings.TrimSpace(row.Cells[1]), 64)
		if verr != nil {
			return nil, nil, nil, errors.Wrapf(verr, "VOTable spectrum: bad value on row %v", rowIdx)
		}

		waves = append(waves, wave)
		values = append(values, value)
	}

	if len(waves) <= 0 {
		return nil, nil, nil, errors.New("VOTable spectrum: no table rows found")
	}

	jobLog.Debugf("VOTable spectrum: read %v rows", len(waves))
	return header, waves, values, nil
}
