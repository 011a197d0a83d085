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

package expr

import "github.com/pkg/errors"

// ErrorKind categorises diagnostics for programmatic use. The message text
// is always the normative part of an Error; Kind exists so a caller can
// e.g. distinguish "label not found" from a malformed literal without
// string-matching Msg.
type ErrorKind int

const (
	// ErrLexical covers malformed tokens: bad char constants, unexpected
	// characters at the start or end of an expression.
	ErrLexical ErrorKind = iota
	// ErrStructural covers unbalanced parentheses.
	ErrStructural
	// ErrNumeric covers a malformed integer literal (invalid digit for
	// its base).
	ErrNumeric
	// ErrResolution covers an unresolved label reference.
	ErrResolution
	// ErrArithmetic covers divide-by-zero and out-of-range shifts.
	ErrArithmetic
)

// Error is a single evaluation diagnostic. Offset is the byte offset into
// the expression text at which the problem was detected; it is provided
// for diagnostics only and has no bearing on evaluation.
type Error struct {
	Offset int
	Kind   ErrorKind
	Msg    string
}

func (e *Error) Error() string {
	return e.Msg
}

func newError(offset int, kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{
		Offset: offset,
		Kind:   kind,
		Msg:    errors.Errorf(format, args...).Error(),
	}
}
