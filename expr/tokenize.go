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

import "github.com/kyleedwardsny/bergen/label"

// lexState is one node of the tokenizer's finite-state machine (spec
// section 4.2). Dispatch is a plain switch in the driver loop below
// rather than a function-pointer table, per spec section 9's guidance.
type lexState int

const (
	stateExprBegin lexState = iota
	stateExprEnd
	stateConstant
	statePrefixConstant
	stateCharConstant
	stateBinaryOperator
	stateLabel
)

// tokenizer holds the mutable state of a single tokenize pass.
type tokenizer struct {
	text           []byte
	pos            int
	localLabelChar byte
	locCtr         Value
	globals        *label.SymbolTable
	locals         *label.SymbolTable

	state      lexState
	parenDepth int
	tokens     []Token

	// tokStart is the byte offset at which the token currently being
	// accumulated (Constant/PrefixConstant/CharConstant/Label/
	// BinaryOperator) began.
	tokStart int
}

// Tokenize runs the byte-at-a-time lexer over text, decoding every
// constant, character literal and label reference as it is recognised, and
// returns the resulting token stream.
func Tokenize(text string, locCtr Value, localLabelChar byte, globals, locals *label.SymbolTable) ([]Token, error) {
	t := &tokenizer{
		text:           []byte(text),
		localLabelChar: localLabelChar,
		locCtr:         locCtr,
		globals:        globals,
		locals:         locals,
		state:          stateExprBegin,
	}

	for t.pos < len(t.text) {
		c := t.text[t.pos]
		consumed := true
		if err := t.consume(c, &consumed); err != nil {
			return nil, err
		}
		if consumed {
			t.pos++
		}
	}

	for {
		consumed := true
		if err := t.end(&consumed); err != nil {
			return nil, err
		}
		if consumed {
			break
		}
	}

	if t.parenDepth > 0 {
		return nil, newError(t.pos, ErrStructural, "expected %d ')'s at end of expression", t.parenDepth)
	}
	return t.tokens, nil
}

func (t *tokenizer) emit(tok Token) {
	t.tokens = append(t.tokens, tok)
}

// consume dispatches one input byte to the current state. *consumed is
// true on entry; a state that wants the byte re-fed to a new state sets it
// to false, mirroring the original re-feed flag.
func (t *tokenizer) consume(c byte, consumed *bool) error {
	switch t.state {
	case stateExprBegin:
		return t.consumeExprBegin(c)
	case stateExprEnd:
		return t.consumeExprEnd(c)
	case stateConstant:
		return t.consumeConstant(c, consumed)
	case statePrefixConstant:
		return t.consumePrefixConstant(c, consumed)
	case stateCharConstant:
		return t.consumeCharConstant(c)
	case stateBinaryOperator:
		return t.consumeBinaryOperator(c, consumed)
	case stateLabel:
		return t.consumeLabel(c, consumed)
	default:
		panic("expr: unreachable lexer state")
	}
}

func (t *tokenizer) end(consumed *bool) error {
	switch t.state {
	case stateExprBegin:
		return newError(t.pos, ErrLexical, "expected expression but reached end of string")
	case stateExprEnd:
		return nil
	case stateConstant:
		return t.finishConstant(t.pos)
	case statePrefixConstant:
		return t.finishPrefixConstant(t.pos)
	case stateCharConstant:
		return newError(t.pos, ErrLexical, "reached end of expression in middle of char constant")
	case stateBinaryOperator:
		if err := t.finishBinaryOperator(1); err != nil {
			return err
		}
		t.state = stateExprBegin
		*consumed = false
		return nil
	case stateLabel:
		return t.finishLabel(t.pos)
	default:
		panic("expr: unreachable lexer state")
	}
}

func (t *tokenizer) consumeExprBegin(c byte) error {
	switch {
	case isWhitespace(c):
		return nil
	case isUnary(c):
		kind := Negate
		if c == '~' {
			kind = Invert
		}
		t.emit(Token{Offset: t.pos, Length: 1, Kind: UnaryOp, Unary: kind})
		return nil
	case isConstantBegin(c):
		t.tokStart = t.pos
		t.state = stateConstant
		return nil
	case isConstantPrefix(c):
		t.tokStart = t.pos
		t.state = statePrefixConstant
		return nil
	case c == '\'':
		t.tokStart = t.pos
		t.state = stateCharConstant
		return nil
	case c == '(':
		t.emit(Token{Offset: t.pos, Length: 1, Kind: LParen})
		t.parenDepth++
		return nil
	case isLabelBegin(c, t.localLabelChar):
		t.tokStart = t.pos
		t.state = stateLabel
		return nil
	default:
		return newError(t.pos, ErrLexical, "unexpected character at beginning of expression: '%c'", c)
	}
}

func (t *tokenizer) consumeExprEnd(c byte) error {
	switch {
	case isWhitespace(c):
		return nil
	case isBinopFirst(c):
		t.tokStart = t.pos
		t.state = stateBinaryOperator
		return nil
	case c == ')':
		t.emit(Token{Offset: t.pos, Length: 1, Kind: RParen})
		if t.parenDepth == 0 {
			return newError(t.pos, ErrStructural, "unexpected ')' while evaluating expression")
		}
		t.parenDepth--
		return nil
	default:
		return newError(t.pos, ErrLexical, "unexpected character at end of expression: '%c'", c)
	}
}

func (t *tokenizer) consumeConstant(c byte, consumed *bool) error {
	if isConstantMid(c) {
		return nil
	}
	if isConstantSuffix(c) {
		t.state = stateExprEnd
		return t.finishConstantSuffix(t.pos, c)
	}
	*consumed = false
	t.state = stateExprEnd
	return t.finishConstant(t.pos)
}

func (t *tokenizer) consumePrefixConstant(c byte, consumed *bool) error {
	if isConstantMid(c) {
		return nil
	}
	*consumed = false
	t.state = stateExprEnd
	return t.finishPrefixConstant(t.pos)
}

func (t *tokenizer) consumeCharConstant(c byte) error {
	if t.pos-t.tokStart == 1 {
		// the arbitrary byte enclosed by the quotes
		return nil
	}
	if c != '\'' {
		return newError(t.pos, ErrLexical, "expected single quote but got '%c'", c)
	}
	value := Value(t.text[t.tokStart+1])
	t.emit(Token{Offset: t.tokStart, Length: t.pos - t.tokStart + 1, Kind: Constant, Value: value})
	t.state = stateExprEnd
	return nil
}

func (t *tokenizer) consumeBinaryOperator(c byte, consumed *bool) error {
	if isBinopSecond(c) {
		t.state = stateExprBegin
		return t.finishBinaryOperator(2)
	}
	*consumed = false
	t.state = stateExprBegin
	return t.finishBinaryOperator(1)
}

func (t *tokenizer) consumeLabel(c byte, consumed *bool) error {
	if isLabelMid(c) {
		return nil
	}
	*consumed = false
	t.state = stateExprEnd
	return t.finishLabel(t.pos)
}

// finishConstant decodes a bare numeric run spanning [tokStart, end) whose
// terminator was not consumed as a suffix. The suffixes b/B and d/D are
// also hex digits, so they are accumulated with the run and recognised
// here by its last byte; a run ending in a digit is base 10.
func (t *tokenizer) finishConstant(end int) error {
	digits := string(t.text[t.tokStart:end])
	base := int64(10)
	if last := digits[len(digits)-1]; isConstantSuffix(last) {
		base = suffixBase(last)
		digits = digits[:len(digits)-1]
	}
	v, err := decodeDigits(digits, base, t.tokStart)
	if err != nil {
		return err
	}
	t.emit(Token{Offset: t.tokStart, Length: end - t.tokStart, Kind: Constant, Value: v})
	return nil
}

// finishConstantSuffix decodes a bare numeric run terminated by a base
// suffix byte (consumed as part of the token).
func (t *tokenizer) finishConstantSuffix(end int, suffix byte) error {
	digits := string(t.text[t.tokStart:end])
	v, err := decodeDigits(digits, suffixBase(suffix), t.tokStart)
	if err != nil {
		return err
	}
	t.emit(Token{Offset: t.tokStart, Length: end - t.tokStart + 1, Kind: Constant, Value: v})
	return nil
}

func suffixBase(suffix byte) int64 {
	switch suffix {
	case 'B', 'b':
		return 2
	case 'O', 'o':
		return 8
	case 'D', 'd':
		return 10
	case 'H', 'h':
		return 16
	default:
		panic("expr: unreachable constant suffix")
	}
}

// finishPrefixConstant decodes a %/@/$-prefixed run. A bare "$" (no
// digits) yields the location counter.
func (t *tokenizer) finishPrefixConstant(end int) error {
	prefix := t.text[t.tokStart]
	digits := string(t.text[t.tokStart+1 : end])
	if prefix == '$' && digits == "" {
		t.emit(Token{Offset: t.tokStart, Length: end - t.tokStart, Kind: Constant, Value: t.locCtr})
		return nil
	}
	var base int64
	switch prefix {
	case '%':
		base = 2
	case '@':
		base = 8
	case '$':
		base = 16
	default:
		panic("expr: unreachable constant prefix")
	}
	v, err := decodeDigits(digits, base, t.tokStart)
	if err != nil {
		return err
	}
	t.emit(Token{Offset: t.tokStart, Length: end - t.tokStart, Kind: Constant, Value: v})
	return nil
}

func (t *tokenizer) finishBinaryOperator(length int) error {
	spelling := string(t.text[t.tokStart : t.tokStart+length])
	op, ok := binaryOpFor(spelling)
	if !ok {
		// Reached by a lone "!", which forms an operator only as "!=",
		// and by any two-byte pairing that is not in the operator table
		// (for example "+=" or "<>").
		return newError(t.tokStart, ErrLexical, "unexpected character at end of expression: '%c'", spelling[0])
	}
	t.emit(Token{Offset: t.tokStart, Length: length, Kind: BinaryOp, Binary: op})
	return nil
}

func binaryOpFor(s string) (BinaryKind, bool) {
	switch s {
	case "+":
		return Plus, true
	case "-":
		return Minus, true
	case "*":
		return Times, true
	case "/":
		return Div, true
	case "%":
		return Mod, true
	case "<<":
		return Lsl, true
	case ">>":
		return Lsr, true
	case "=", "==":
		return Eq, true
	case "!=":
		return Ne, true
	case "<":
		return Lt, true
	case ">":
		return Gt, true
	case "<=":
		return Le, true
	case ">=":
		return Ge, true
	case "&":
		return And, true
	case "|":
		return Or, true
	case "^":
		return Xor, true
	default:
		return 0, false
	}
}

// finishLabel resolves a label reference, stripping the local-label byte
// and looking it up in locals if the name opens with it, else in globals.
func (t *tokenizer) finishLabel(end int) error {
	name := string(t.text[t.tokStart:end])
	table := t.globals
	lookup := name
	if name[0] == t.localLabelChar {
		table = t.locals
		lookup = name[1:]
	}
	v, ok := table.Find(lookup)
	if !ok {
		return newError(t.tokStart, ErrResolution, "could not find label: %s", name)
	}
	t.emit(Token{Offset: t.tokStart, Length: end - t.tokStart, Kind: Constant, Value: v})
	return nil
}
