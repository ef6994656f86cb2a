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
	"math"
	"testing"

	"github.com/astrogo/fitsio"

	"github.com/talister/lincc-example/core/logger"
	"github.com/talister/lincc-example/core/units"
)

// Builds an in-memory FITS file holding one binary table with the given
// wavelength/value columns
func makeFITSTable(t *testing.T, waveCol string, fluxCol string, waves []float64, values []float64) []byte {
	t.Helper()

	buf := &bytes.Buffer{}
	f, err := fitsio.Create(buf)
	if err != nil {
		t.Fatalf("fitsio.Create failed: %v", err)
	}

	phdu, err := fitsio.NewPrimaryHDU(nil)
	if err != nil {
		t.Fatalf("NewPrimaryHDU failed: %v", err)
	}
	err = f.Write(phdu)
	if err != nil {
		t.Fatalf("Write primary HDU failed: %v", err)
	}

	tbl, err := fitsio.NewTable("SPECTRUM", []fitsio.Column{
		{Name: waveCol, Format: "D"},
		{Name: fluxCol, Format: "D"},
	}, fitsio.BINARY_TBL)
	if err != nil {
		t.Fatalf("NewTable failed: %v", err)
	}
	defer tbl.Close()

	// Rows are written positionally: map writes silently store zeroed rows
	for i := range waves {
		err = tbl.Write(waves[i], values[i])
		if err != nil {
			t.Fatalf("Write row %v failed: %v", i, err)
		}
	}

	err = f.Write(tbl)
	if err != nil {
		t.Fatalf("Write table failed: %v", err)
	}
	err = f.Close()
	if err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	return buf.Bytes()
}

func TestReadFITSSpec(t *testing.T) {
	data := makeFITSTable(t, "lam", "trans", []float64{350, 360, 370}, []float64{0.1, 0.2, -0.3})

	schema := FITSSchema{WaveCol: "lam", FluxCol: "trans", WaveUnit: units.WaveNanometre}
	header, waves, values, err := ReadFITSSpec(data, schema, &logger.NullLogger{})
	if err != nil {
		t.Fatalf("ReadFITSSpec failed: %v", err)
	}

	if len(waves) != 3 || len(values) != 3 {
		t.Fatalf("Expected 3 rows, got %v waves, %v values", len(waves), len(values))
	}
	if math.Abs(waves[0]-350) > 1e-9 || math.Abs(values[1]-0.2) > 1e-9 {
		t.Errorf("Bad values read: %v %v", waves, values)
	}
	// Negatives pass through here, clamping happens at curve construction
	if math.Abs(values[2]-(-0.3)) > 1e-9 {
		t.Errorf("Expected -0.3 read verbatim, got %v", values[2])
	}
	if header["extname"] != "SPECTRUM" {
		t.Errorf("Expected EXTNAME card in header, got %v", header)
	}
}

func TestReadFITSSpecMissingColumn(t *testing.T) {
	// ESO-SM01 style layout: lam/flux, no trans column
	data := makeFITSTable(t, "lam", "flux", []float64{0.35, 0.36}, []float64{12.5, 13.1})

	schema := FITSSchema{WaveCol: "lam", FluxCol: "trans", WaveUnit: units.WaveNanometre}
	_, _, _, err := ReadFITSSpec(data, schema, &logger.NullLogger{})
	if err == nil {
		t.Fatal("Expected missing column error, got success")
	}
	if !IsMissingColumn(err) {
		t.Errorf("Expected MissingColumnError, got %v", err)
	}

	// The fallback schema should read the same bytes fine
	fallback := FITSSchema{WaveCol: "lam", FluxCol: "flux", WaveUnit: units.WaveMicron}
	_, waves, values, err := ReadFITSSpec(data, fallback, &logger.NullLogger{})
	if err != nil {
		t.Fatalf("Fallback schema read failed: %v", err)
	}
	if math.Abs(waves[0]-0.35) > 1e-9 || math.Abs(values[0]-12.5) > 1e-9 {
		t.Errorf("Bad values read: %v %v", waves, values)
	}
}

func TestReadFITSSpecNotFITS(t *testing.T) {
	_, _, _, err := ReadFITSSpec([]byte("300 0.5\n"), FITSSchema{WaveCol: "lam", FluxCol: "trans"}, &logger.NullLogger{})
	if err == nil {
		t.Error("Expected error reading non-FITS data")
	}
	if IsMissingColumn(err) {
		t.Errorf("Parse failure should not look like a column mismatch: %v", err)
	}
}
