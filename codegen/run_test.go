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

package codegen_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/ftonello/nand2tetris/asm"
	"github.com/ftonello/nand2tetris/cpu"
)

// initial segment bases for programs that run without bootstrap code.
const (
	sp   = 256
	lcl  = 300
	arg  = 400
	this = 3000
	that = 3010
)

type unit struct {
	name, src string
}

// translate translates units, in order, into a single assembly program.
func translate(t *testing.T, bootstrap bool, units ...unit) string {
	t.Helper()
	g, b := newGenerator(t)
	if bootstrap {
		if err := g.Bootstrap(); err != nil {
			t.Fatal(err)
		}
	}
	for _, u := range units {
		if err := g.Translate(u.name, strings.NewReader(u.src)); err != nil {
			t.Fatal(err)
		}
	}
	return b.String()
}

// exec assembles code and runs it until it halts or falls off the end of ROM.
func exec(t *testing.T, code string) *cpu.CPU {
	t.Helper()
	prog, err := asm.Assemble("test.asm", strings.NewReader(code))
	if err != nil {
		t.Fatalf("%v\n%s", err, code)
	}
	c, err := cpu.New(prog,
		cpu.Poke(0, sp), cpu.Poke(1, lcl), cpu.Poke(2, arg),
		cpu.Poke(3, this), cpu.Poke(4, that))
	if err != nil {
		t.Fatal(err)
	}
	if err = c.Run(1000000); err != nil {
		var b bytes.Buffer
		asm.DisassembleAll(prog, 0, &b)
		t.Fatalf("%v\n%s", err, b.String())
	}
	return c
}

func run(t *testing.T, src string) *cpu.CPU {
	t.Helper()
	return exec(t, translate(t, false, unit{"Test.vm", src}))
}

// checkStack checks that the stack holds exactly want, bottom first.
func checkStack(t *testing.T, c *cpu.CPU, want ...int16) {
	t.Helper()
	if int(c.RAM[0]) != sp+len(want) {
		t.Errorf("Expected SP = %d, got %d\nstack: %s", sp+len(want), c.RAM[0], spew.Sdump(c.RAM[sp:sp+8]))
		return
	}
	for i, v := range want {
		if c.RAM[sp+i] != v {
			t.Errorf("Expected stack[%d] = %d, got %d", i, v, c.RAM[sp+i])
		}
	}
}

// pushValue returns bytecode pushing v, which may be negative.
func pushValue(v int16) string {
	if v < 0 {
		return fmt.Sprintf("push constant %d\nnot\n", ^v)
	}
	return fmt.Sprintf("push constant %d\n", v)
}

func TestRun_add(t *testing.T) {
	c := run(t, "push constant 7\npush constant 8\nadd\n")
	checkStack(t, c, 15)
}

func TestRun_arithmetic(t *testing.T) {
	var tests = [...]struct {
		src  string
		want int16
	}{
		{"push constant 10\npush constant 3\nsub", 7},
		{"push constant 3\npush constant 10\nsub", -7},
		{"push constant 12\npush constant 10\nand", 8},
		{"push constant 12\npush constant 10\nor", 14},
		{"push constant 5\nneg", -5},
		{"push constant 0\nnot", -1},
		{"push constant 21845\nnot", -21846},
		{"push constant 32767\npush constant 1\nadd", -32768},
	}
	for _, test := range tests {
		c := run(t, test.src)
		checkStack(t, c, test.want)
	}
}

func TestRun_compare(t *testing.T) {
	// includes pairs whose difference does not fit in 16 bits.
	values := []int16{-32768, -20000, -16000, -5, -2, -1, 0, 1, 5, 16000, 20000, 32767}
	ops := []struct {
		name string
		f    func(x, y int16) bool
	}{
		{"eq", func(x, y int16) bool { return x == y }},
		{"gt", func(x, y int16) bool { return x > y }},
		{"lt", func(x, y int16) bool { return x < y }},
	}
	for _, op := range ops {
		for _, x := range values {
			for _, y := range values {
				var want int16
				if op.f(x, y) {
					want = -1
				}
				c := run(t, pushValue(x)+pushValue(y)+op.name)
				if c.RAM[0] != sp+1 || c.RAM[sp] != want {
					t.Errorf("%d %s %d: expected %d, got %d (SP = %d)", x, op.name, y, want, c.RAM[sp], c.RAM[0])
				}
			}
		}
	}
}

func TestRun_compareOverflow(t *testing.T) {
	var tests = [...]struct {
		x    int16
		op   string
		y    int16
		want int16
	}{
		{20000, "gt", -20000, -1},
		{-20000, "lt", 20000, -1},
		{-20000, "gt", 20000, 0},
		{32767, "lt", -2, 0},
		{32767, "gt", -32768, -1},
		{0, "gt", -32768, -1},
		{-32768, "eq", 0, 0},
	}
	for _, test := range tests {
		c := run(t, pushValue(test.x)+pushValue(test.y)+test.op)
		if c.RAM[sp] != test.want {
			t.Errorf("%d %s %d: expected %d, got %d", test.x, test.op, test.y, test.want, c.RAM[sp])
		}
	}
}

func TestRun_popLocal(t *testing.T) {
	c := run(t, "push constant 9\npop local 2\n")
	checkStack(t, c)
	if c.RAM[lcl+2] != 9 {
		t.Errorf("Expected RAM[%d] = 9, got %d", lcl+2, c.RAM[lcl+2])
	}
}

func TestRun_segments(t *testing.T) {
	var tests = [...]struct {
		seg   string
		index int
		addr  int // cell written by pop, 0 for static
	}{
		{"local", 0, lcl},
		{"local", 3, lcl + 3},
		{"argument", 2, arg + 2},
		{"this", 1, this + 1},
		{"that", 4, that + 4},
		{"temp", 0, 5},
		{"temp", 7, 12},
		{"pointer", 1, 4},
		{"static", 0, 0},
		{"static", 5, 0},
	}
	for i, test := range tests {
		v := int16(1000 + i)
		src := fmt.Sprintf("push constant %d\npop %s %d\npush %s %d\n", v, test.seg, test.index, test.seg, test.index)
		c := run(t, src)
		checkStack(t, c, v)
		if test.addr != 0 && c.RAM[test.addr] != v {
			t.Errorf("%s %d: expected RAM[%d] = %d, got %d", test.seg, test.index, test.addr, v, c.RAM[test.addr])
		}
	}

	// pointer 0 and 1 move the this and that segments.
	c := run(t, `
		push constant 5000
		pop pointer 0
		push constant 6000
		pop pointer 1
		push constant 11
		pop this 2
		push constant 22
		pop that 3`)
	checkStack(t, c)
	if c.RAM[5002] != 11 || c.RAM[6003] != 22 {
		t.Errorf("Expected RAM[5002] = 11, RAM[6003] = 22, got %d, %d", c.RAM[5002], c.RAM[6003])
	}
}

func TestRun_stackBalance(t *testing.T) {
	segs := []string{"local 1", "argument 0", "this 3", "that 2", "temp 4", "pointer 0", "static 9"}
	var src strings.Builder
	for i, s := range segs {
		fmt.Fprintf(&src, "push constant %d\npop %s\n", i, s)
	}
	for _, s := range segs {
		fmt.Fprintf(&src, "push %s\n", s)
	}
	for _, s := range segs {
		fmt.Fprintf(&src, "pop %s\n", s)
	}
	c := run(t, src.String())
	checkStack(t, c)
}

func TestRun_staticPerUnit(t *testing.T) {
	code := translate(t, false,
		unit{"A.vm", "push constant 1\npop static 0\n"},
		unit{"B.vm", "push constant 2\npop static 0\n"},
		unit{"A.vm", "push static 0\n"},
		unit{"B.vm", "push static 0\n"},
	)
	c := exec(t, code)
	checkStack(t, c, 1, 2)
}

func TestRun_branching(t *testing.T) {
	// sum of 1..10 in local 0, counter in local 1.
	c := run(t, `
		push constant 0
		pop local 0
		push constant 10
		pop local 1
		label LOOP
		push local 1
		not                 // -1 when the counter is 0
		push constant 0
		not
		eq
		if-goto DONE
		push local 0
		push local 1
		add
		pop local 0
		push local 1
		push constant 1
		sub
		pop local 1
		goto LOOP
		label DONE
		push local 0`)
	checkStack(t, c, 55)
}

const sumFunctions = `
	push constant 3
	push constant 4
	call Test.sum 2
	pop temp 0
	push constant 10
	call Test.triangle 1
	pop temp 1
	label END
	goto END

	// sum(a, b) = 2 * (a + b)
	function Test.sum 1
	push argument 0
	push argument 1
	add
	pop local 0
	push local 0
	push local 0
	add
	return

	// triangle(n) = n + triangle(n - 1)
	function Test.triangle 0
	push argument 0
	push constant 0
	eq
	if-goto BASE
	push argument 0
	push argument 0
	push constant 1
	sub
	call Test.triangle 1
	add
	return
	label BASE
	push constant 0
	return
`

func TestRun_functions(t *testing.T) {
	c := run(t, sumFunctions)
	if !c.Halted() {
		t.Fatal("program did not reach its final loop")
	}
	checkStack(t, c)
	if c.RAM[5] != 14 || c.RAM[6] != 55 {
		t.Errorf("Expected temp 0 = 14, temp 1 = 55, got %d, %d", c.RAM[5], c.RAM[6])
	}
	// the caller frame is restored.
	for i, v := range []int16{lcl, arg, this, that} {
		if c.RAM[i+1] != v {
			t.Errorf("Expected RAM[%d] = %d, got %d", i+1, v, c.RAM[i+1])
		}
	}
}

func TestRun_bootstrap(t *testing.T) {
	code := translate(t, true,
		unit{"Main.vm", "function Main.double 0\npush argument 0\npush argument 0\nadd\nreturn\n"},
		unit{"Sys.vm", `
			function Sys.init 0
			push constant 21
			call Main.double 1
			pop static 0
			push static 0
			pop temp 0
			label HALT
			goto HALT`},
	)
	prog, err := asm.Assemble("test.asm", strings.NewReader(code))
	if err != nil {
		t.Fatal(err)
	}
	// no initial register values: bootstrap sets up the stack.
	c, err := cpu.New(prog)
	if err != nil {
		t.Fatal(err)
	}
	if err = c.Run(100000); err != nil {
		t.Fatal(err)
	}
	if !c.Halted() {
		t.Fatal("program did not reach its final loop")
	}
	if c.RAM[5] != 42 {
		t.Errorf("Expected temp 0 = 42, got %d", c.RAM[5])
	}
	// Sys.init frame: return address and 4 saved pointers above 256.
	if c.RAM[0] != sp+5 {
		t.Errorf("Expected SP = %d, got %d", sp+5, c.RAM[0])
	}
}
