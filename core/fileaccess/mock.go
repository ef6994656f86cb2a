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

package fileaccess

import (
	"fmt"
	"sort"
	"strings"
)

var errMemNotFound = fmt.Errorf("object not found")

// MemFileAccess - in-memory file access implementation for unit tests.
// Objects are keyed by root then path.
type MemFileAccess struct {
	Objects map[string]map[string][]byte
}

func MakeMemFileAccess() *MemFileAccess {
	return &MemFileAccess{Objects: map[string]map[string][]byte{}}
}

func (m *MemFileAccess) Add(root string, path string, data []byte) {
	if m.Objects[root] == nil {
		m.Objects[root] = map[string][]byte{}
	}
	m.Objects[root][path] = data
}

func (m *MemFileAccess) ListObjects(root string, prefix string) ([]string, error) {
	result := []string{}
	for path := range m.Objects[root] {
		if strings.HasPrefix(path, prefix) {
			result = append(result, path)
		}
	}
	sort.Strings(result)
	return result, nil
}

func (m *MemFileAccess) ObjectExists(root string, path string) (bool, error) {
	_, ok := m.Objects[root][path]
	return ok, nil
}

func (m *MemFileAccess) ReadObject(root string, path string) ([]byte, error) {
	data, ok := m.Objects[root][path]
	if !ok {
		return nil, errMemNotFound
	}
	return data, nil
}

func (m *MemFileAccess) IsNotFoundError(err error) bool {
	return err == errMemNotFound
}
