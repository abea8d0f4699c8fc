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

// The vmtranslator command translates Hack VM bytecode files into a single
// Hack assembly file.
//
// Usage:
//
//	vmtranslator [flags] file.vm|directory
//
//	-bootstrap
//		  emit startup code calling Sys.init
//	-comments
//		  emit each source command as a comment
//	-core
//		  only accept arithmetic, push and pop commands (same as -features none)
//	-debug
//		  enable debug diagnostics
//	-features list
//		  comma separated list of enabled command families: branching,
//		  functions, all or none (default branching,functions)
//	-o filename
//		  write output to filename
//
// Given a file Foo.vm, the output is written to Foo.asm in the same directory.
// Given a directory Prog, every .vm file it contains is translated, in file
// name order, into Prog/Prog.asm. Static variables are private to each file.
//
// -bootstrap: the output starts with code setting the stack pointer to 256
// and calling Sys.init. Programs made of several files usually need it.
//
// -debug: on error, print a full stack trace of where it was detected.
//
// On a translation error, the diagnostic names the file, line and command at
// fault, the partial output file is removed and the exit status is 1. Usage
// errors exit with status 2.
package main
