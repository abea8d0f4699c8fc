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

package codegen

import "strconv"

// Operator is an arithmetic or logical bytecode operator.
type Operator int

// Operators.
const (
	Add Operator = iota
	Sub
	Neg
	Eq
	Gt
	Lt
	And
	Or
	Not
)

var operators = [...]string{
	Add: "add",
	Sub: "sub",
	Neg: "neg",
	Eq:  "eq",
	Gt:  "gt",
	Lt:  "lt",
	And: "and",
	Or:  "or",
	Not: "not",
}

func (o Operator) String() string {
	if o < 0 || int(o) >= len(operators) {
		return "operator(" + strconv.Itoa(int(o)) + ")"
	}
	return operators[o]
}

// ParseOperator returns the Operator with the given bytecode name.
func ParseOperator(name string) (Operator, error) {
	for i, n := range operators {
		if n == name {
			return Operator(i), nil
		}
	}
	return 0, &UnknownOperatorError{name}
}

// condPair holds the jump conditions selecting the true and false branches of
// a comparison, applied to left - right. When the operands have opposite signs
// the subtraction may overflow and the outcome is fixed instead: less is the
// result for left < 0 <= right, greater for right < 0 <= left.
type condPair struct {
	t, f    string
	less    bool
	greater bool
}

var (
	condEq = condPair{"JEQ", "JNE", false, false}
	condGt = condPair{"JGT", "JLE", false, true}
	condLt = condPair{"JLT", "JGE", true, false}
)

func (g *Generator) arithmetic(op Operator) error {
	switch op {
	case Add:
		g.binary("D+M")
	case Sub:
		g.binary("M-D")
	case And:
		g.binary("D&M")
	case Or:
		g.binary("D|M")
	case Neg:
		g.unary("-M")
	case Not:
		g.unary("!M")
	case Eq:
		g.compare(condEq)
	case Gt:
		g.compare(condGt)
	case Lt:
		g.compare(condLt)
	default:
		return &UnknownOperatorError{op.String()}
	}
	return nil
}

// compare replaces the two topmost cells with -1 (true) or 0 (false),
// depending on the sign of left - right.
func (g *Generator) compare(c condPair) {
	t, f, end := g.labels.next(), g.labels.next(), g.labels.next()
	branch := func(ok bool) string {
		if ok {
			return t
		}
		return f
	}

	g.operands()
	// left & !right is negative iff left < 0 <= right.
	g.op("D=!D")
	g.op("D=D&M")
	g.at(branch(c.less))
	g.op("D;JLT")
	// !left & right is negative iff right < 0 <= left.
	g.at("SP")
	g.op("A=M-1")
	g.op("D=!M")
	g.op("A=A+1")
	g.op("D=D&M")
	g.at(branch(c.greater))
	g.op("D;JLT")

	// same signs, left - right cannot overflow.
	g.at("SP")
	g.op("A=M")
	g.op("D=M")
	g.op("A=A-1")
	g.op("D=M-D")
	g.at(t)
	g.op("D;" + c.t)
	g.at(f)
	g.op("D;" + c.f)

	g.define(t)
	g.unary("-1")
	g.at(end)
	g.op("0;JMP")

	g.define(f)
	g.unary("0")

	g.define(end)
}
