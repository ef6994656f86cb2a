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
	"os"
	"path/filepath"
	"testing"
)

func Example_decodeS3Path() {
	bucket, key := DecodeS3Path("s3://spectra-cal/filters/LCO_B.csv")
	fmt.Printf("%v|%v\n", bucket, key)
	bucket, key = DecodeS3Path("s3://just-a-bucket")
	fmt.Printf("%v|%v\n", bucket, key)
	bucket, key = DecodeS3Path("/local/path.dat")
	fmt.Printf("%v|%v\n", bucket, key)
	fmt.Printf("%v %v\n", IsS3Path("s3://b/k"), IsS3Path("./b/k"))

	// Output:
	// spectra-cal|filters/LCO_B.csv
	// just-a-bucket|
	// |/local/path.dat
	// true false
}

func TestFSAccess(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "elem.dat"), []byte("300 0.5\n"), 0644)
	if err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	fs := &FSAccess{}

	exists, err := fs.ObjectExists(dir, "elem.dat")
	if err != nil || !exists {
		t.Errorf("ObjectExists: expected true, nil, got %v, %v", exists, err)
	}

	exists, err = fs.ObjectExists(dir, "missing.dat")
	if err != nil || exists {
		t.Errorf("ObjectExists: expected false, nil, got %v, %v", exists, err)
	}

	data, err := fs.ReadObject(dir, "elem.dat")
	if err != nil || string(data) != "300 0.5\n" {
		t.Errorf("ReadObject: got %v, %v", string(data), err)
	}

	_, err = fs.ReadObject(dir, "missing.dat")
	if err == nil || !fs.IsNotFoundError(err) {
		t.Errorf("Expected not-found error reading missing file, got %v", err)
	}

	files, err := fs.ListObjects(dir, "")
	if err != nil || len(files) != 1 || files[0] != "elem.dat" {
		t.Errorf("ListObjects: got %v, %v", files, err)
	}
}

func TestMemFileAccess(t *testing.T) {
	mem := MakeMemFileAccess()
	mem.Add("data", "LCO_B.csv", []byte("a,b\n"))
	mem.Add("data", "LCO_V.csv", []byte("c,d\n"))

	files, err := mem.ListObjects("data", "LCO_")
	if err != nil || len(files) != 2 {
		t.Errorf("ListObjects: got %v, %v", files, err)
	}

	_, err = mem.ReadObject("data", "nope.csv")
	if !mem.IsNotFoundError(err) {
		t.Errorf("Expected not-found error, got %v", err)
	}
}
