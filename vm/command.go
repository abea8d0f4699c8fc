// This file is part of nand2tetris - https://github.com/ftonello/nand2tetris
//
// Copyright 2016 The nand2tetris Authors
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

package vm

import (
	"strconv"
	"strings"
)

// Kind is the kind of a bytecode command.
type Kind int

// Command kinds. The zero value None never comes out of a Parser.
const (
	None Kind = iota
	Arithmetic
	Push
	Pop
	Label
	Goto
	IfGoto
	Function
	Call
	Return
)

var kinds = [...]string{
	None:       "none",
	Arithmetic: "arithmetic",
	Push:       "push",
	Pop:        "pop",
	Label:      "label",
	Goto:       "goto",
	IfGoto:     "if-goto",
	Function:   "function",
	Call:       "call",
	Return:     "return",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kinds) {
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kinds[k]
}

// operators lists the arithmetic/logical command names. The Parser uses it to
// recognize arithmetic commands, the code generator does its own validation.
var operators = map[string]bool{
	"add": true,
	"sub": true,
	"neg": true,
	"eq":  true,
	"gt":  true,
	"lt":  true,
	"and": true,
	"or":  true,
	"not": true,
}

var keywords = map[string]Kind{
	"push":     Push,
	"pop":      Pop,
	"label":    Label,
	"goto":     Goto,
	"if-goto":  IfGoto,
	"function": Function,
	"call":     Call,
	"return":   Return,
}

// Position locates a command in its source.
type Position struct {
	Filename string
	Line     int
}

// IsValid reports whether the position carries a line number.
func (p Position) IsValid() bool { return p.Line > 0 }

func (p Position) String() string {
	s := p.Filename
	if s == "" {
		s = "<input>"
	}
	if p.IsValid() {
		s += ":" + strconv.Itoa(p.Line)
	}
	return s
}

// Command is a decoded bytecode command.
//
// Arg1 holds the operator name for Arithmetic commands, the segment name for
// Push and Pop, and the label or function name for the others. Arg2 is the
// index for Push and Pop, the local count for Function and the argument count
// for Call; it is ignored otherwise.
type Command struct {
	Kind Kind
	Arg1 string
	Arg2 int
	Pos  Position
}

// HasArg2 reports whether commands of kind k take a numeric argument.
func (k Kind) HasArg2() bool {
	switch k {
	case Push, Pop, Function, Call:
		return true
	}
	return false
}

// takesName reports whether the argument of commands of kind k is a label or
// function name, copied as is into the assembly output.
func (k Kind) takesName() bool {
	switch k {
	case Label, Goto, IfGoto, Function, Call:
		return true
	}
	return false
}

// IsSymbol reports whether s is a valid assembler symbol: letters, digits,
// '_', '.', '$' and ':', not starting with a digit.
func IsSymbol(s string) bool {
	if s == "" || s[0] >= '0' && s[0] <= '9' {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '_', c == '.', c == '$', c == ':':
		default:
			return false
		}
	}
	return true
}

// Validate checks that c carries the arguments its kind requires.
func (c Command) Validate() error {
	switch c.Kind {
	case None:
		return malformed(c.Pos, "", "missing command kind")
	case Return:
		return nil
	}
	if c.Arg1 == "" {
		return malformed(c.Pos, c.String(), c.Kind.String()+": missing argument")
	}
	if c.Kind.takesName() && !IsSymbol(c.Arg1) {
		return malformed(c.Pos, c.String(), c.Kind.String()+": invalid name "+strconv.Quote(c.Arg1))
	}
	if c.Kind.HasArg2() && c.Arg2 < 0 {
		return malformed(c.Pos, c.String(), c.Kind.String()+": negative index "+strconv.Itoa(c.Arg2))
	}
	return nil
}

// String returns c in bytecode syntax.
func (c Command) String() string {
	switch c.Kind {
	case Arithmetic:
		return c.Arg1
	case Return:
		return "return"
	}
	var b strings.Builder
	b.WriteString(c.Kind.String())
	if c.Arg1 != "" {
		b.WriteByte(' ')
		b.WriteString(c.Arg1)
	}
	if c.Kind.HasArg2() {
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(c.Arg2))
	}
	return b.String()
}
