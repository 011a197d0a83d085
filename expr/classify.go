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

// Character classes used by the tokenizer's state transitions, following
// spec section 4.2 verbatim.

func isWhitespace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isConstantBegin(c byte) bool {
	return c >= '0' && c <= '9'
}

func isConstantPrefix(c byte) bool {
	switch c {
	case '%', '@', '$':
		return true
	}
	return false
}

func isConstantMid(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isConstantSuffix(c byte) bool {
	switch c {
	case 'B', 'O', 'D', 'H', 'b', 'o', 'd', 'h':
		return true
	}
	return false
}

func isUnary(c byte) bool {
	return c == '~' || c == '-'
}

func isBinopFirst(c byte) bool {
	switch c {
	case '+', '-', '*', '/', '%', '<', '>', '=', '!', '&', '^', '|':
		return true
	}
	return false
}

func isBinopSecond(c byte) bool {
	switch c {
	case '<', '>', '=':
		return true
	}
	return false
}

func isLabelBegin(c, localLabelChar byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || c == localLabelChar
}

func isLabelMid(c byte) bool {
	return c == '_' || (c >= '0' && c <= '9') || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

// digitValue returns the numeric value of a hex digit byte, and whether c
// is a valid digit at all (regardless of base; base-range checking is the
// caller's job).
func digitValue(c byte) (int64, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int64(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int64(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int64(c-'A') + 10, true
	default:
		return 0, false
	}
}
