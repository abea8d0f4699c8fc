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
	"strconv"

	"github.com/pkg/errors"
)

// VariableBase is the address of the first variable allocated by the
// assembler.
const VariableBase = 16

// Predefined symbols.
var predefined = map[string]int{
	"SP":     0,
	"LCL":    1,
	"ARG":    2,
	"THIS":   3,
	"THAT":   4,
	"SCREEN": 0x4000,
	"KBD":    0x6000,
}

func init() {
	for r := 0; r < 16; r++ {
		predefined["R"+strconv.Itoa(r)] = r
	}
}

// SymbolTable maps assembler symbols to addresses.
type SymbolTable struct {
	syms map[string]int
	next int
}

// NewSymbolTable returns a symbol table holding the predefined symbols.
func NewSymbolTable() *SymbolTable {
	t := &SymbolTable{
		syms: make(map[string]int, len(predefined)),
		next: VariableBase,
	}
	for n, v := range predefined {
		t.syms[n] = v
	}
	return t
}

// Lookup returns the address bound to name.
func (t *SymbolTable) Lookup(name string) (int, bool) {
	a, ok := t.syms[name]
	return a, ok
}

// AddLabel binds name to a ROM address.
func (t *SymbolTable) AddLabel(name string, addr int) error {
	if _, ok := predefined[name]; ok {
		return errors.Errorf("label %s redefines a predefined symbol", name)
	}
	if a, ok := t.syms[name]; ok {
		return errors.Errorf("label %s redefinition, previously bound to %d", name, a)
	}
	t.syms[name] = addr
	return nil
}

// Variable returns the address bound to name, allocating the next free RAM
// address if name is unknown.
func (t *SymbolTable) Variable(name string) int {
	if a, ok := t.syms[name]; ok {
		return a
	}
	a := t.next
	t.syms[name] = a
	t.next++
	return a
}
