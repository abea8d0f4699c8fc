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

const (
	stackBase = 256
	// saved return address, LCL, ARG, THIS and THAT
	frameSize = 5
	// holds the return address while a frame is torn down
	retScratch = "R14"
)

// scoped returns the assembly name of a user label: labels are local to the
// enclosing function, or to the translation unit outside of any function.
func (g *Generator) scoped(label string) string {
	if g.function != "" {
		return g.function + "$" + label
	}
	return g.unit + "$" + label
}

func (g *Generator) jump(target string) {
	g.at(target)
	g.op("0;JMP")
}

// ifGoto pops the stack top and jumps to target if it is not zero.
func (g *Generator) ifGoto(target string) {
	g.decSP()
	g.popD()
	g.at(target)
	g.op("D;JNE")
}

// enter starts function name and clears its nlocals local variables.
func (g *Generator) enter(name string, nlocals int) {
	g.function = name
	g.define(name)
	for i := 0; i < nlocals; i++ {
		g.at("SP")
		g.op("A=M")
		g.op("M=0")
		g.incSP()
	}
}

// call saves the caller frame on the stack, repositions ARG and LCL for the
// callee and jumps to it. The nargs arguments must already be on the stack.
//
// Frame layout, from ARG upwards:
//
//	arg 0 .. arg nargs-1, return address, LCL, ARG, THIS, THAT, local 0 ...
func (g *Generator) call(name string, nargs int) {
	ret := g.labels.next()

	g.at(ret)
	g.op("D=A")
	g.pushD()
	g.incSP()
	for _, r := range [...]string{"LCL", "ARG", "THIS", "THAT"} {
		g.at(r)
		g.op("D=M")
		g.pushD()
		g.incSP()
	}
	// ARG = SP - nargs - 5
	g.at("SP")
	g.op("D=M")
	g.atInt(nargs + frameSize)
	g.op("D=D-A")
	g.at("ARG")
	g.op("M=D")
	// LCL = SP
	g.at("SP")
	g.op("D=M")
	g.at("LCL")
	g.op("M=D")

	g.jump(name)
	g.define(ret)
}

// ret copies the return value in place of the first argument, restores the
// caller frame and jumps back to the return address.
func (g *Generator) ret() {
	// the frame base is kept in the scratch register and walked downwards.
	g.at("LCL")
	g.op("D=M")
	g.at(scratch)
	g.op("M=D")
	g.atInt(frameSize)
	g.op("A=D-A")
	g.op("D=M")
	g.at(retScratch)
	g.op("M=D")

	// *ARG = pop()
	g.decSP()
	g.popD()
	g.at("ARG")
	g.op("A=M")
	g.op("M=D")
	// SP = ARG + 1
	g.at("ARG")
	g.op("D=M+1")
	g.at("SP")
	g.op("M=D")

	for _, r := range [...]string{"THAT", "THIS", "ARG", "LCL"} {
		g.at(scratch)
		g.op("AM=M-1")
		g.op("D=M")
		g.at(r)
		g.op("M=D")
	}

	g.at(retScratch)
	g.op("A=M")
	g.op("0;JMP")
}
