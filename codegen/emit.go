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

// Hack assembly idioms. All of them write through g.w and leave error
// checking to the caller (see Generator.Err).

func (g *Generator) at(sym string) { g.w.WriteLine("@" + sym) }

func (g *Generator) atInt(v int) { g.at(strconv.Itoa(v)) }

func (g *Generator) op(s string) { g.w.WriteLine(s) }

func (g *Generator) define(label string) { g.w.WriteLine("(" + label + ")") }

func (g *Generator) comment(s string) { g.w.WriteLine("// " + s) }

// loadConstant sets D to v.
func (g *Generator) loadConstant(v int) {
	g.atInt(v)
	g.op("D=A")
}

// pushD stores D in the free cell at SP. SP is left unchanged.
func (g *Generator) pushD() {
	g.at("SP")
	g.op("A=M")
	g.op("M=D")
}

// popD loads D from the cell at SP. The caller must have decremented SP.
func (g *Generator) popD() {
	g.at("SP")
	g.op("A=M")
	g.op("D=M")
}

func (g *Generator) incSP() {
	g.at("SP")
	g.op("M=M+1")
}

func (g *Generator) decSP() {
	g.at("SP")
	g.op("M=M-1")
}

// operands pops the right operand into D and points A at the left operand,
// which becomes the new stack top.
func (g *Generator) operands() {
	g.at("SP")
	g.op("AM=M-1")
	g.op("D=M")
	g.op("A=A-1")
}

// binary replaces the two topmost cells with comp, computed from D (right
// operand) and M (left operand).
func (g *Generator) binary(comp string) {
	g.operands()
	g.op("M=" + comp)
}

// unary rewrites the stack top in place with comp.
func (g *Generator) unary(comp string) {
	g.at("SP")
	g.op("A=M-1")
	g.op("M=" + comp)
}
