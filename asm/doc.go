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

// Package asm provides utility functions to assemble and disassemble Hack
// machine code.
//
// Each line of the source holds at most one instruction or label definition.
// Text following "//" is a comment. Whitespace inside an instruction is
// ignored.
//
//	@value		A-instruction: load a decimal constant (0..32767) into A
//	@symbol		A-instruction: load the address bound to symbol into A
//	(LABEL)		bind LABEL to the address of the next instruction
//	dest=comp;jump	C-instruction, dest= and ;jump are optional
//
// Symbols are made of letters, digits, '_', '.', '$' and ':' and may not start
// with a digit. Predefined symbols:
//
//	SP LCL ARG THIS THAT	0 1 2 3 4
//	R0 .. R15		0 .. 15
//	SCREEN			16384
//	KBD			24576
//
// A symbol that is neither predefined nor a label is a variable; variables are
// allocated consecutive RAM addresses starting at 16, in order of first use.
//
// dest is any combination of A, D and M. jump is one of JGT, JEQ, JGE, JLT,
// JNE, JLE and JMP. comp is one of:
//
//	0 1 -1 D A M !D !A !M -D -A -M D+1 A+1 M+1 D-1 A-1 M-1
//	D+A D+M D-A D-M A-D M-D D&A D&M D|A D|M
//
// The commutative forms (A+D, M&D, 1+D...) are accepted as well.
//
// C-instructions are encoded as 111a cccc ccdd djjj and A-instructions as
// 0vvv vvvv vvvv vvvv.
package asm
