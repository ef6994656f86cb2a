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
	"os"

	"github.com/talister/lincc-example/core/awsutil"
	"github.com/talister/lincc-example/core/fileaccess"
	"github.com/talister/lincc-example/data"
)

// readPackagedData - LCO iLab scans live in the bundled package data only
func (r *Reader) readPackagedData(identifier string) ([]byte, error) {
	return data.Read(os.ExpandEnv(identifier))
}

// readLocal - resolves a local identifier to file contents. Environment
// variables are expanded, s3:// paths are fetched from S3, anything found
// on disk is read from disk, and whatever's left is looked up in the
// bundled package data. A path on neither disk nor the package data
// surfaces the filesystem error untouched.
func (r *Reader) readLocal(identifier string) ([]byte, error) {
	expanded := os.ExpandEnv(identifier)

	if fileaccess.IsS3Path(expanded) {
		s3Access, err := r.s3Access()
		if err != nil {
			return nil, err
		}
		bucket, key := fileaccess.DecodeS3Path(expanded)
		r.Log.Debugf("Fetching spectrum from S3: bucket=%v, key=%v", bucket, key)
		return s3Access.ReadObject(bucket, key)
	}

	exists, err := r.LocalFS.ObjectExists("", expanded)
	if err != nil {
		return nil, err
	}
	if !exists && data.Exists(expanded) {
		return data.Read(expanded)
	}

	return r.LocalFS.ReadObject("", expanded)
}

// Builds the S3 accessor on first use so purely local callers never need
// AWS credentials
func (r *Reader) s3Access() (fileaccess.FileAccess, error) {
	if r.S3 != nil {
		return r.S3, nil
	}

	sess, err := awsutil.GetSession()
	if err != nil {
		return nil, err
	}
	s3Api, err := awsutil.GetS3ApiFromSession(sess)
	if err != nil {
		return nil, err
	}

	r.S3 = fileaccess.MakeS3Access(s3Api)
	return r.S3, nil
}
