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

// Value is the signed integer type produced by evaluation: constants,
// label values, the location counter, and results all share it.
type Value = int64

// Kind identifies what a Token carries.
type Kind int

const (
	// Constant is a fully decoded integer: a bare or prefixed/suffixed
	// numeric literal, a character literal, or a resolved label.
	Constant Kind = iota
	UnaryOp
	BinaryOp
	LParen
	RParen
)

// UnaryKind is the payload of a Token with Kind == UnaryOp.
type UnaryKind int

const (
	Invert UnaryKind = iota // ~
	Negate                  // -
)

// BinaryKind is the payload of a Token with Kind == BinaryOp.
type BinaryKind int

const (
	Plus  BinaryKind = iota // +
	Minus                   // -
	Times                   // *
	Div                     // /
	Mod                     // %
	Lsl                     // <<
	Lsr                     // >>
	Eq                      // = ==
	Ne                      // !=
	Lt                      // <
	Gt                      // >
	Le                      // <=
	Ge                      // >=
	And                     // &
	Or                      // |
	Xor                     // ^
)

// Token is one lexical item of an expression. Offset and Length describe
// its source span in bytes, kept for diagnostics only.
type Token struct {
	Offset int
	Length int
	Kind   Kind

	// Value holds the decoded constant when Kind == Constant.
	Value Value
	// Unary holds the operator when Kind == UnaryOp.
	Unary UnaryKind
	// Binary holds the operator when Kind == BinaryOp.
	Binary BinaryKind
}
