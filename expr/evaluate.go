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

// Evaluate tokenizes and evaluates text to a single Value. location
// counter is substituted for a bare "$"; localLabelChar chooses which
// leading byte marks a local-label reference, resolved against locals
// instead of globals.
//
// There is no operator precedence: binary operators associate strictly
// left to right. Parentheses are the only grouping mechanism.
func Evaluate(text string, locationCounter Value, localLabelChar byte, globals, locals *label.SymbolTable) (Value, error) {
	tokens, err := Tokenize(text, locationCounter, localLabelChar, globals, locals)
	if err != nil {
		return 0, err
	}
	e := &evaluator{tokens: tokens}
	return e.expr()
}

// evaluator walks a token stream already validated (balanced parens,
// well-formed tokens) by the tokenizer. It assumes a well-formed stream,
// per spec section 4.3: the only failures left to surface here are
// arithmetic (divide-by-zero, out-of-range shift).
type evaluator struct {
	tokens []Token
	pos    int
}

func (e *evaluator) peek() (Token, bool) {
	if e.pos >= len(e.tokens) {
		return Token{}, false
	}
	return e.tokens[e.pos], true
}

// expr implements `unit (binop unit)*`, stopping at a RParen or end of
// stream without consuming the RParen.
func (e *evaluator) expr() (Value, error) {
	acc, err := e.unit()
	if err != nil {
		return 0, err
	}
	for {
		tok, ok := e.peek()
		if !ok || tok.Kind == RParen {
			return acc, nil
		}
		e.pos++ // consume the pending binary operator
		rhs, err := e.unit()
		if err != nil {
			return 0, err
		}
		acc, err = applyBinaryErr(tok.Binary, acc, rhs, tok.Offset)
		if err != nil {
			return 0, err
		}
	}
}

// unit implements `Constant | UnaryOp unit | '(' expr ')'`.
func (e *evaluator) unit() (Value, error) {
	tok, ok := e.peek()
	if !ok {
		panic("expr: evaluator reached end of stream expecting a unit")
	}
	switch tok.Kind {
	case Constant:
		e.pos++
		return tok.Value, nil
	case UnaryOp:
		e.pos++
		v, err := e.unit()
		if err != nil {
			return 0, err
		}
		return applyUnary(tok.Unary, v), nil
	case LParen:
		e.pos++
		v, err := e.expr()
		if err != nil {
			return 0, err
		}
		if tok, ok := e.peek(); ok && tok.Kind == RParen {
			e.pos++
		}
		return v, nil
	default:
		panic("expr: evaluator found an operator/paren where a unit was expected")
	}
}

func applyBinaryErr(op BinaryKind, lhs, rhs Value, offset int) (Value, error) {
	v, err := applyBinary(op, lhs, rhs, offset)
	if err != nil {
		return 0, err
	}
	return v, nil
}
