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

import (
	"strconv"

	"github.com/ftonello/nand2tetris/vm"
)

// scratch register holding the target address of a pop through a segment
// base register.
const scratch = "R13"

func register(addr int) string { return "R" + strconv.Itoa(addr) }

// operand resolves seg[index] for a push or pop of kind.
func (g *Generator) operand(kind vm.Kind, name string, index int) (Addressing, error) {
	seg, err := ParseSegment(name)
	if err != nil {
		return Addressing{}, err
	}
	a, err := Resolve(seg, index, g.unit)
	if err != nil {
		return Addressing{}, err
	}
	if kind == vm.Pop && a.Mode == Immediate {
		return Addressing{}, &InvalidSegmentOperationError{kind, seg}
	}
	return a, nil
}

// push stores the addressed value at SP. The caller increments SP.
func (g *Generator) push(a Addressing) {
	switch a.Mode {
	case Immediate:
		g.loadConstant(a.Addr)
	case Indirect:
		g.at(a.Symbol)
		g.op("D=M")
		g.atInt(a.Addr)
		g.op("A=D+A")
		g.op("D=M")
	case Fixed:
		g.at(register(a.Addr))
		g.op("D=M")
	case Symbolic:
		g.at(a.Symbol)
		g.op("D=M")
	}
	g.pushD()
}

// pop moves the value at SP into the addressed cell. The caller decrements SP
// beforehand.
func (g *Generator) pop(a Addressing) {
	switch a.Mode {
	case Indirect:
		// the target address must be computed before D is used for the value.
		g.at(a.Symbol)
		g.op("D=M")
		g.atInt(a.Addr)
		g.op("D=D+A")
		g.at(scratch)
		g.op("M=D")
		g.popD()
		g.at(scratch)
		g.op("A=M")
		g.op("M=D")
	case Fixed:
		g.popD()
		g.at(register(a.Addr))
		g.op("M=D")
	case Symbolic:
		g.popD()
		g.at(a.Symbol)
		g.op("M=D")
	}
}
