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

// Package cpu implements the Hack CPU.
//
// It is a reference implementation used to check the programs produced by the
// assembler and the VM translator: neither of them ever runs code.
package cpu

import (
	"github.com/ftonello/nand2tetris/asm"
	"github.com/pkg/errors"
)

// DefaultRAMSize covers the data memory, the screen and the keyboard register.
const DefaultRAMSize = 0x6001

// CPU represents a Hack computer.
type CPU struct {
	A        int16
	D        int16
	PC       int        // Program Counter
	ROM      []asm.Word // instruction memory
	RAM      []int16    // data memory
	insCount int64
	halted   bool
}

// Option interface
type Option func(*CPU) error

// RAMSize sets the RAM size in words. The default is DefaultRAMSize.
func RAMSize(size int) Option {
	return func(c *CPU) error {
		if size <= 0 || size > 1<<15 {
			return errors.Errorf("invalid RAM size %d", size)
		}
		t := make([]int16, size)
		copy(t, c.RAM)
		c.RAM = t
		return nil
	}
}

// Poke sets RAM[addr] to v.
func Poke(addr int, v int16) Option {
	return func(c *CPU) error {
		if addr < 0 || addr >= len(c.RAM) {
			return errors.Errorf("poke: address %d out of range", addr)
		}
		c.RAM[addr] = v
		return nil
	}
}

// SetOptions sets the provided options.
func (c *CPU) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new CPU running the given program.
func New(rom []asm.Word, opts ...Option) (*CPU, error) {
	c := &CPU{
		ROM: rom,
		RAM: make([]int16, DefaultRAMSize),
	}
	if err := c.SetOptions(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// Halted reports whether the program reached a jump to itself, the Hack
// idiom to stop a program:
//
//	(END)
//	@END
//	0;JMP
func (c *CPU) Halted() bool { return c.halted }

// InstructionCount returns the number of instructions executed so far.
func (c *CPU) InstructionCount() int64 {
	return c.insCount
}

// alu computes f(x, y) as selected by the c1-c6 bits of a C-instruction.
func alu(x, y int16, comp asm.Word) int16 {
	if comp&0x20 != 0 {
		x = 0
	}
	if comp&0x10 != 0 {
		x = ^x
	}
	if comp&0x08 != 0 {
		y = 0
	}
	if comp&0x04 != 0 {
		y = ^y
	}
	var out int16
	if comp&0x02 != 0 {
		out = x + y
	} else {
		out = x & y
	}
	if comp&0x01 != 0 {
		out = ^out
	}
	return out
}

// Step executes a single instruction.
func (c *CPU) Step() error {
	if c.PC < 0 || c.PC >= len(c.ROM) {
		return errors.Errorf("pc %d out of ROM", c.PC)
	}
	ins := c.ROM[c.PC]
	c.insCount++
	if ins&0x8000 == 0 {
		c.A = int16(ins)
		c.PC++
		return nil
	}
	addr := int(uint16(c.A))
	y := c.A
	if ins&0x1000 != 0 {
		if addr >= len(c.RAM) {
			return errors.Errorf("pc %d: read at address %d out of RAM", c.PC, addr)
		}
		y = c.RAM[addr]
	}
	out := alu(c.D, y, (ins>>6)&0x3f)

	dest := (ins >> 3) & 7
	if dest&1 != 0 {
		if addr >= len(c.RAM) {
			return errors.Errorf("pc %d: write at address %d out of RAM", c.PC, addr)
		}
		c.RAM[addr] = out
	}
	if dest&4 != 0 {
		c.A = out
	}
	if dest&2 != 0 {
		c.D = out
	}

	j := ins & 7
	if j&4 != 0 && out < 0 || j&2 != 0 && out == 0 || j&1 != 0 && out > 0 {
		if j == 7 && addr == c.PC-1 && c.ROM[addr] == asm.Word(addr) {
			c.halted = true
		}
		c.PC = addr
		return nil
	}
	c.PC++
	return nil
}

// Run executes instructions until the PC leaves the ROM or the program halts.
// It fails if limit instructions have been executed before that. A limit <= 0
// means no limit.
func (c *CPU) Run(limit int64) (err error) {
	defer func() {
		if e := recover(); e != nil {
			err = errors.Errorf("recovered error @pc=%d: %v", c.PC, e)
		}
	}()
	for n := int64(0); !c.halted && c.PC >= 0 && c.PC < len(c.ROM); n++ {
		if limit > 0 && n >= limit {
			return errors.Errorf("no halt after %d instructions, pc=%d", limit, c.PC)
		}
		if err = c.Step(); err != nil {
			return err
		}
	}
	return nil
}
