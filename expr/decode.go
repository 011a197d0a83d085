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

// baseName names a base for numeric-error messages, matching spec
// section 7's "invalid binary/octal/decimal/hexadecimal constant" wording.
func baseName(base int64) string {
	switch base {
	case 2:
		return "binary"
	case 8:
		return "octal"
	case 10:
		return "decimal"
	case 16:
		return "hexadecimal"
	default:
		return "numeric"
	}
}

// decodeDigits parses digits (the run captured by the tokenizer; an empty
// run, as after a lone % or @, is reported as invalid) in the given base, wrapping modulo 2^64 like any other Value
// arithmetic. offset is the token's source offset, used only for the
// diagnostic.
func decodeDigits(digits string, base int64, offset int) (Value, *Error) {
	if digits == "" {
		return 0, newError(offset, ErrNumeric, "invalid %s constant: %q", baseName(base), digits)
	}
	var v Value
	for i := 0; i < len(digits); i++ {
		d, ok := digitValue(digits[i])
		if !ok || d >= base {
			return 0, newError(offset, ErrNumeric, "invalid %s constant: %q", baseName(base), digits)
		}
		v = v*Value(base) + Value(d)
	}
	return v, nil
}
