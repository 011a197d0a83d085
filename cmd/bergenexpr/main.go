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

// Command bergenexpr evaluates a single assembler-style expression given
// on the command line, optionally against a file of label assignments.
// It is a harness for the expr and label packages, not an assembler: it
// makes no attempt at a two-pass assembly, instruction encoding, or
// object-file emission.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/kyleedwardsny/bergen/expr"
	"github.com/kyleedwardsny/bergen/label"
)

var (
	equFileName string
	locCtr      int64
	localChar   string
	debug       bool
)

func main() {
	var err error
	defer func() { atExit(err) }()

	flag.StringVar(&equFileName, "equ", "", "load `filename` of name=value label assignments before evaluating")
	flag.Int64Var(&locCtr, "at", 0, "value substituted for a bare '$' (the location counter)")
	flag.StringVar(&localChar, "local", "_", "single character that marks a local-label reference")
	flag.BoolVar(&debug, "debug", false, "print a stack trace alongside argument and label-file errors (evaluation errors print their message only)")
	flag.Parse()

	if flag.NArg() != 1 {
		err = errors.New("expected exactly one expression argument")
		return
	}
	if len(localChar) != 1 {
		err = errors.Errorf("-local must be a single character, got %q", localChar)
		return
	}

	globals := &label.SymbolTable{}
	locals := &label.SymbolTable{}
	if equFileName != "" {
		if err = loadLabels(equFileName, globals); err != nil {
			err = errors.Wrapf(err, "loading %s", equFileName)
			return
		}
	}

	var v expr.Value
	v, err = expr.Evaluate(flag.Arg(0), expr.Value(locCtr), localChar[0], globals, locals)
	if err != nil {
		return
	}
	fmt.Printf("%d\n", v)
}

// loadLabels reads "name=value" pairs, one per line, into table. Blank
// lines and lines starting with ';' are ignored; value is parsed the
// same way Go's strconv understands integer literals (0x/0/decimal).
func loadLabels(name string, table *label.SymbolTable) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		eq := strings.IndexByte(line, '=')
		if eq < 0 {
			return errors.Errorf("line %d: expected name=value, got %q", lineNo, line)
		}
		labelName := strings.TrimSpace(line[:eq])
		valueText := strings.TrimSpace(line[eq+1:])
		if labelName == "" {
			return errors.Errorf("line %d: empty label name", lineNo)
		}
		v, err := strconv.ParseInt(valueText, 0, 64)
		if err != nil {
			return errors.Wrapf(err, "line %d: value %q", lineNo, valueText)
		}
		table.Append(labelName, v)
	}
	return scanner.Err()
}

func atExit(err error) {
	if err == nil {
		return
	}
	if debug {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
	} else {
		fmt.Fprintf(os.Stderr, "%v\n", err)
	}
	os.Exit(1)
}
