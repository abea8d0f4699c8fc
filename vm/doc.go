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

// Package vm defines the bytecode language of the Hack stack machine and a
// parser for its textual form.
//
// A bytecode program is a sequence of lines, each holding one command. Text
// following "//" is a comment. Commands:
//
//	add sub neg eq gt lt and or not   arithmetic and logical operators
//	push <segment> <index>            push a value onto the stack
//	pop <segment> <index>             pop the stack top into a segment cell
//	label <name>                      define a branch target
//	goto <name>                       unconditional branch
//	if-goto <name>                    pop, branch if not zero
//	function <name> <nlocals>         start a function
//	call <name> <nargs>               call a function
//	return                            return to the caller
//
// Segments are constant, local, argument, this, that, temp, pointer and
// static. Translation into Hack assembly lives in package codegen.
package vm
