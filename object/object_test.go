// Copyright 2016 The bergen authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package object_test

import (
	"bytes"
	"testing"

	"github.com/kyleedwardsny/bergen/object"
)

func TestOutput_initialState(t *testing.T) {
	o := object.New()
	if got := o.SegmentCount(); got != 1 {
		t.Fatalf("SegmentCount() = %d; want 1", got)
	}
	if got := o.SegmentAddress(0); got != 0 {
		t.Fatalf("SegmentAddress(0) = %d; want 0", got)
	}
	if got := o.SegmentLength(0); got != 0 {
		t.Fatalf("SegmentLength(0) = %d; want 0", got)
	}
}

func TestOutput_setAddressOnEmptySegmentRelocates(t *testing.T) {
	o := object.New()
	o.SetAddress(0x8000)
	if got := o.SegmentCount(); got != 1 {
		t.Fatalf("SegmentCount() = %d; want 1 (relocated, not appended)", got)
	}
	if got := o.SegmentAddress(0); got != 0x8000 {
		t.Fatalf("SegmentAddress(0) = %#x; want 0x8000", got)
	}
}

func TestOutput_twoSegments(t *testing.T) {
	o := object.New()
	o.SetAddress(0x8000)
	o.Write([]byte{1, 2, 3, 4, 5})
	o.SetAddress(0x4000)
	o.Write([]byte{6, 7, 8, 9, 10})

	if got := o.SegmentCount(); got != 2 {
		t.Fatalf("SegmentCount() = %d; want 2", got)
	}
	if got := o.SegmentAddress(0); got != 0x8000 {
		t.Fatalf("SegmentAddress(0) = %#x; want 0x8000", got)
	}
	if got := o.SegmentLength(0); got != 5 {
		t.Fatalf("SegmentLength(0) = %d; want 5", got)
	}
	if !bytes.Equal(o.SegmentBytes(0), []byte{1, 2, 3, 4, 5}) {
		t.Fatalf("SegmentBytes(0) = %v; want [1 2 3 4 5]", o.SegmentBytes(0))
	}
	if got := o.SegmentAddress(1); got != 0x4000 {
		t.Fatalf("SegmentAddress(1) = %#x; want 0x4000", got)
	}
	if got := o.SegmentLength(1); got != 5 {
		t.Fatalf("SegmentLength(1) = %d; want 5", got)
	}
	if !bytes.Equal(o.SegmentBytes(1), []byte{6, 7, 8, 9, 10}) {
		t.Fatalf("SegmentBytes(1) = %v; want [6 7 8 9 10]", o.SegmentBytes(1))
	}
}

func TestOutput_writeWithoutSetAddressExtendsSegment(t *testing.T) {
	o := object.New()
	o.Write([]byte{1, 2})
	o.Write([]byte{3, 4})
	if got := o.SegmentCount(); got != 1 {
		t.Fatalf("SegmentCount() = %d; want 1", got)
	}
	if !bytes.Equal(o.SegmentBytes(0), []byte{1, 2, 3, 4}) {
		t.Fatalf("SegmentBytes(0) = %v; want [1 2 3 4]", o.SegmentBytes(0))
	}
	if got := o.Address(); got != 4 {
		t.Fatalf("Address() = %d; want 4", got)
	}
}

// TestOutput_emitBinaryOverwrite reproduces the original library's
// write_to_binary fixture: two overlapping segments, later write wins.
func TestOutput_emitBinaryOverwrite(t *testing.T) {
	o := object.New()
	o.SetAddress(0x8002)
	o.Write([]byte{0x04, 0x05, 0x06})
	o.SetAddress(0x8000)
	o.Write([]byte{0x07, 0x08, 0x09})

	var buf bytes.Buffer
	if err := o.EmitBinary(&buf); err != nil {
		t.Fatalf("EmitBinary() = error %v", err)
	}
	want := []byte{0x07, 0x08, 0x09, 0x05, 0x06}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("EmitBinary() = %v; want %v", buf.Bytes(), want)
	}
}

func TestOutput_emitBinaryGapIsZeroFilled(t *testing.T) {
	o := object.New()
	o.SetAddress(0x10)
	o.Write([]byte{1, 2})
	o.SetAddress(0x14)
	o.Write([]byte{3, 4})

	var buf bytes.Buffer
	if err := o.EmitBinary(&buf); err != nil {
		t.Fatalf("EmitBinary() = error %v", err)
	}
	want := []byte{1, 2, 0, 0, 3, 4}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("EmitBinary() = %v; want %v", buf.Bytes(), want)
	}
}

func TestOutput_emitBinaryEmpty(t *testing.T) {
	o := object.New()
	var buf bytes.Buffer
	if err := o.EmitBinary(&buf); err != nil {
		t.Fatalf("EmitBinary() = error %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("EmitBinary() wrote %d bytes; want 0", buf.Len())
	}
}
