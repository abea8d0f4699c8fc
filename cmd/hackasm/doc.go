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

// The hackasm command assembles Hack assembly into the .hack text format, or
// disassembles a .hack file.
//
// Usage:
//
//	hackasm [flags] file.asm|file.hack
//
//	-d
//		  disassemble a .hack file
//	-debug
//		  enable debug diagnostics
//	-o filename
//		  write output to filename
//
// When assembling Foo.asm, the output goes to Foo.hack unless -o is set. The
// disassembly goes to the standard output unless -o is set. Assembly errors
// are reported with their file name and line, up to 10 of them.
package main
