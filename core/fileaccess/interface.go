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

import "strings"

// Spectral files come from local disk or S3 buckets, so we code against
// this interface and pick the implementation per identifier. The root is a
// directory for local access, or a bucket for S3. Read-only: the element
// reader never writes.

type FileAccess interface {
	ListObjects(root string, prefix string) ([]string, error)

	ObjectExists(root string, path string) (bool, error)

	ReadObject(root string, path string) ([]byte, error)

	IsNotFoundError(err error) bool
}

const s3Prefix = "s3://"

// IsS3Path - does this identifier point into an S3 bucket?
func IsS3Path(path string) bool {
	return strings.HasPrefix(path, s3Prefix)
}

// DecodeS3Path - splits s3://bucket/some/key into bucket and key
func DecodeS3Path(path string) (string, string) {
	if !IsS3Path(path) {
		return "", path
	}

	stripped := path[len(s3Prefix):]
	pos := strings.Index(stripped, "/")
	if pos < 0 {
		return stripped, ""
	}
	return stripped[0:pos], stripped[pos+1:]
}
