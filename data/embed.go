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

// Bundled spectral data files: LCO Imaging Lab scans of optical elements
// and a default sky radiance table. Compiled into the binary so logical
// element names resolve without any install-time data directory.
package data

import (
	"embed"
	"sort"
)

//go:embed *.csv *.dat
var bundled embed.FS

// Read - returns the contents of a bundled data file
func Read(name string) ([]byte, error) {
	return bundled.ReadFile(name)
}

// Exists - true if the named file is bundled
func Exists(name string) bool {
	_, err := bundled.ReadFile(name)
	return err == nil
}

// List - names of all bundled data files, sorted
func List() []string {
	entries, err := bundled.ReadDir(".")
	if err != nil {
		return []string{}
	}

	result := []string{}
	for _, entry := range entries {
		if !entry.IsDir() {
			result = append(result, entry.Name())
		}
	}
	sort.Strings(result)
	return result
}
