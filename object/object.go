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

package object

import (
	"io"

	"github.com/kyleedwardsny/bergen/expr"
)

// Address is a position in the target address space.
type Address = expr.Value

// segment records a run of bytes written contiguously starting at
// address, stored in buffer[start:end].
type segment struct {
	address Address
	start   int
	end     int
}

// Output is an assembler's byte sink: a single growable buffer plus an
// ordered list of address-anchored segments. Writes always append to
// buffer; SetAddress decides whether the next write extends the current
// segment or starts a new one.
//
// A zero-value Output is not usable; use New.
type Output struct {
	buffer   []byte
	segments []segment
	address  Address
}

// New returns an Output with its write cursor at address 0 and a single
// empty segment anchored there, matching the initial state of the C
// object_output_t: one segment always exists, even before anything has
// been written.
func New() *Output {
	return &Output{
		segments: []segment{{address: 0}},
	}
}

// Address reports the current write address.
func (o *Output) Address() Address {
	return o.address
}

// SetAddress moves the write cursor to addr. If the current segment has
// had nothing written to it yet, it is simply relocated to addr;
// otherwise a new, empty segment anchored at addr is appended. Either
// way the next Write lands in a segment whose address is addr.
func (o *Output) SetAddress(addr Address) {
	o.address = addr
	last := &o.segments[len(o.segments)-1]
	if last.start == last.end {
		last.address = addr
		return
	}
	o.segments = append(o.segments, segment{address: addr, start: len(o.buffer), end: len(o.buffer)})
}

// Write appends data to the current segment and advances the write
// address by len(data). It never fails.
func (o *Output) Write(data []byte) (int, error) {
	o.buffer = append(o.buffer, data...)
	o.segments[len(o.segments)-1].end = len(o.buffer)
	o.address += Address(len(data))
	return len(data), nil
}

// SegmentCount returns the number of segments recorded so far. A freshly
// constructed Output has exactly one, possibly-empty, segment.
func (o *Output) SegmentCount() int {
	return len(o.segments)
}

// SegmentAddress returns the address at which segment i begins.
func (o *Output) SegmentAddress(i int) Address {
	return o.segments[i].address
}

// SegmentBytes returns a view of the bytes written to segment i, in the
// order they were written. The returned slice aliases the Output's
// internal buffer and must not be modified.
func (o *Output) SegmentBytes(i int) []byte {
	s := o.segments[i]
	return o.buffer[s.start:s.end]
}

// SegmentLength returns the number of bytes written to segment i.
func (o *Output) SegmentLength(i int) int {
	s := o.segments[i]
	return s.end - s.start
}

// EmitBinary reconstructs a single flat image spanning every address
// touched by any segment and writes it to w, zero-filling any gaps.
//
// Segments are replayed in the order they were written (not sorted by
// address), so where two segments cover overlapping addresses the later
// write wins — the same semantics as re-running the assembly and landing
// later SetAddress/Write calls on top of earlier ones.
func (o *Output) EmitBinary(w io.Writer) error {
	if len(o.segments) == 0 {
		return nil
	}

	lo, hi := o.segments[0].address, o.segments[0].address
	for _, s := range o.segments {
		n := Address(s.end - s.start)
		if n == 0 {
			continue
		}
		if s.address < lo {
			lo = s.address
		}
		if end := s.address + n; end > hi {
			hi = end
		}
	}
	if hi <= lo {
		return nil
	}

	image := make([]byte, hi-lo)
	for _, s := range o.segments {
		n := s.end - s.start
		if n == 0 {
			continue
		}
		copy(image[s.address-lo:], o.buffer[s.start:s.end])
	}

	_, err := w.Write(image)
	return err
}
