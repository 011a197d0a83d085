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

// Package expr implements the assembler's expression language: a
// byte-at-a-time tokenizer and a left-to-right evaluator over integer
// constants, labels, parenthesised groups and the location counter.
//
// There is no operator precedence. Binary operators associate strictly
// left to right:
//
//	3 / 3 + 3  ==  (3 / 3) + 3  ==  4
//	3 + 3 / 3  ==  (3 + 3) / 3  ==  2
//
// Integer literals may be written as a bare decimal run (123), with a
// trailing base suffix (1010b, 777o, 1Ah, 99d), or with a leading base
// prefix (%1010, @777, $1A). A bare $ evaluates to the current location
// counter. Character literals are written 'x'. Labels are resolved
// against a caller-supplied pair of symbol tables: one for globals, one
// for local labels (identifiers beginning with a caller-chosen byte,
// stripped before lookup).
package expr
