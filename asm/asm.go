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

package asm

import (
	"fmt"
	"io"
	"strings"
	"text/scanner"

	"github.com/ftonello/nand2tetris/internal/hackio"
)

// ErrEntry is a single assembler error.
type ErrEntry struct {
	Pos scanner.Position
	Msg string
}

func (e ErrEntry) Error() string {
	return e.Pos.String() + ": " + e.Msg
}

// ErrAsm lists the errors found while assembling a program.
type ErrAsm []ErrEntry

func (e ErrAsm) Error() string {
	s := make([]string, len(e))
	for i := range e {
		s[i] = e[i].Error()
	}
	return strings.Join(s, "\n")
}

// Assemble compiles assembly read from the supplied io.Reader and returns the
// resulting machine code and error if any.
//
// The name parameter is used only in error messages to name the source of the
// error. If the io.Reader is a file, name should be the file name.
//
// The returned error, if not nil, can safely be cast to an ErrAsm value that
// will contain up to 10 entries.
func Assemble(name string, r io.Reader) ([]Word, error) {
	p := newParser()
	img, err := p.Parse(name, r)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// Disassemble writes a disassembly of the instruction in the given slice at
// position pc to the specified io.Writer and returns the position of the next
// instruction and any write error.
func Disassemble(prog []Word, pc int, w io.Writer) (next int, err error) {
	ew := hackio.NewWriter(w)
	io.WriteString(ew, decode(prog[pc]))
	return pc + 1, ew.Err
}

// DisassembleAll writes a disassembly of all instructions in the given slice
// to the specified io.Writer. The base argument specifies the real address of
// the first instruction (prog[0]). It will return any write error.
func DisassembleAll(prog []Word, base int, w io.Writer) error {
	ew := hackio.NewWriter(w)
	for pc := 0; pc < len(prog); {
		fmt.Fprintf(ew, "% 6d\t", base+pc)
		pc, _ = Disassemble(prog, pc, ew)
		ew.Write([]byte{'\n'})
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}
