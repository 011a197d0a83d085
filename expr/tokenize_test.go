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

package expr_test

import (
	"testing"

	"github.com/kyleedwardsny/bergen/expr"
	"github.com/kyleedwardsny/bergen/label"
)

func eval(t *testing.T, text string, locCtr expr.Value, localChar byte, globals, locals *label.SymbolTable) (expr.Value, error) {
	t.Helper()
	if globals == nil {
		globals = &label.SymbolTable{}
	}
	if locals == nil {
		locals = &label.SymbolTable{}
	}
	return expr.Evaluate(text, locCtr, localChar, globals, locals)
}

func TestEvaluate_constants(t *testing.T) {
	data := []struct {
		text string
		want expr.Value
	}{
		{"%10101010", 0xAA},
		{"10101010b", 0xAA},
		{"10101010B", 0xAA},
		{"%11000011", 0xC3},
		{"@12345", 012345},
		{"12345O", 012345},
		{"12345o", 012345},
		{"67o", 067},
		{"12345", 12345},
		{"12345D", 12345},
		{"12345d", 12345},
		{"67890", 67890},
		{"$12345", 0x12345},
		{"12345H", 0x12345},
		{"12345h", 0x12345},
		{"$CAFEBABE", 0xCAFEBABE},
		{"$cafebabe", 0xCAFEBABE},
		{"$deadbeef", 0xDEADBEEF},
	}
	for _, d := range data {
		got, err := eval(t, d.text, 0, '_', nil, nil)
		if err != nil {
			t.Errorf("Evaluate(%q) = error %v; want %d", d.text, err, d.want)
			continue
		}
		if got != d.want {
			t.Errorf("Evaluate(%q) = %d; want %d", d.text, got, d.want)
		}
	}
}

func TestEvaluate_invalidConstants(t *testing.T) {
	for _, text := range []string{
		"%11201100",
		"%11f01100",
		"@67890",
		"@67a",
		"123a5",
		"$garbage",
	} {
		if _, err := eval(t, text, 0, '_', nil, nil); err == nil {
			t.Errorf("Evaluate(%q) = nil error; want error", text)
		}
	}
}

func TestEvaluate_charConstant(t *testing.T) {
	got, err := eval(t, "'A'", 0, '_', nil, nil)
	if err != nil {
		t.Fatalf("Evaluate('A') = error %v", err)
	}
	if got != 'A' {
		t.Fatalf("Evaluate('A') = %d; want %d", got, int('A'))
	}
}

func TestEvaluate_charConstantErrors(t *testing.T) {
	for _, text := range []string{"'ab", "'a", "'ab'"} {
		if _, err := eval(t, text, 0, '_', nil, nil); err == nil {
			t.Errorf("Evaluate(%q) = nil error; want error", text)
		}
	}
}

func TestEvaluate_locationCounter(t *testing.T) {
	got, err := eval(t, "$", 0x8000, '_', nil, nil)
	if err != nil {
		t.Fatalf("Evaluate($) = error %v", err)
	}
	if got != 0x8000 {
		t.Fatalf("Evaluate($) = %#x; want 0x8000", got)
	}
}

func TestEvaluate_labels(t *testing.T) {
	globals := &label.SymbolTable{}
	globals.Append("label", 12345)
	got, err := eval(t, "label", 0, '_', globals, nil)
	if err != nil {
		t.Fatalf("Evaluate(label) = error %v", err)
	}
	if got != 12345 {
		t.Fatalf("Evaluate(label) = %d; want 12345", got)
	}

	if _, err := eval(t, "label", 0, '_', &label.SymbolTable{}, nil); err == nil {
		t.Fatal("Evaluate(label) with empty globals = nil error; want error")
	}
}

func TestEvaluate_localLabels(t *testing.T) {
	locals := &label.SymbolTable{}
	locals.Append("label", 12345)
	got, err := eval(t, "_label", 0, '_', nil, locals)
	if err != nil {
		t.Fatalf("Evaluate(_label) = error %v", err)
	}
	if got != 12345 {
		t.Fatalf("Evaluate(_label) = %d; want 12345", got)
	}
}

func TestEvaluate_whitespaceClasses(t *testing.T) {
	for _, ws := range []string{" ", "\t", "\n", "\v", "\f", "\r"} {
		text := "1+" + ws + "1"
		got, err := eval(t, text, 0, '_', nil, nil)
		if err != nil {
			t.Errorf("Evaluate(%q) = error %v", text, err)
			continue
		}
		if got != 2 {
			t.Errorf("Evaluate(%q) = %d; want 2", text, got)
		}
	}
}

func TestEvaluate_unbalancedParens(t *testing.T) {
	for _, text := range []string{"(3", "3)", "((1)"} {
		if _, err := eval(t, text, 0, '_', nil, nil); err == nil {
			t.Errorf("Evaluate(%q) = nil error; want error", text)
		}
	}
}

func TestEvaluate_unexpectedCharacters(t *testing.T) {
	for _, text := range []string{"&3", "3&&", "1 !! 2"} {
		if _, err := eval(t, text, 0, '_', nil, nil); err == nil {
			t.Errorf("Evaluate(%q) = nil error; want error", text)
		}
	}
}
