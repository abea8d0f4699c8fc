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

// Package codegen translates Hack VM bytecode into Hack assembly.
//
// The operand stack lives in RAM and is addressed through the SP register. A
// push writes the cell at SP, then increments SP; a pop decrements SP, then
// reads the cell at SP. Booleans are encoded as -1 (true) and 0 (false).
//
// A Generator writes to a single output stream and can translate any number
// of input files (translation units) into it. Branch targets it synthesizes
// are unique across all units, while static variables are private to each
// unit.
package codegen

import (
	"io"

	"github.com/ftonello/nand2tetris/internal/hackio"
	"github.com/ftonello/nand2tetris/vm"
	"github.com/pkg/errors"
)

// Feature selects optional command families.
type Feature uint

// Optional command families. Arithmetic, push and pop are always available.
const (
	Branching Feature = 1 << iota // label, goto, if-goto
	Functions                     // function, call, return

	AllFeatures = Branching | Functions
)

// Generator translates bytecode commands into Hack assembly.
//
// A Generator is not safe for concurrent use.
type Generator struct {
	w        *hackio.Writer
	labels   labeler
	unit     string
	function string
	features Feature
	comments bool
}

// Option configures a Generator.
type Option func(*Generator) error

// Comments enables or disables the emission of the source command as a
// comment before its translation. The default is false.
func Comments(enable bool) Option {
	return func(g *Generator) error { g.comments = enable; return nil }
}

// Features sets the command families the Generator accepts. Commands of a
// disabled family fail with UnsupportedCommandError. The default is
// AllFeatures.
func Features(f Feature) Option {
	return func(g *Generator) error {
		if f&^AllFeatures != 0 {
			return errors.Errorf("unknown features %#x", uint(f&^AllFeatures))
		}
		g.features = f
		return nil
	}
}

// SetOptions sets the provided options.
func (g *Generator) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return err
		}
	}
	return nil
}

// New returns a Generator writing to w.
func New(w io.Writer, opts ...Option) (*Generator, error) {
	g := &Generator{
		w:        hackio.NewWriter(w),
		unit:     Sanitize(""),
		features: AllFeatures,
	}
	if err := g.SetOptions(opts...); err != nil {
		return nil, err
	}
	return g, nil
}

// SetUnit starts a new translation unit. The name, usually the source file
// name, is sanitized and used to name the unit's static variables. Label
// numbering carries on from the previous unit.
func (g *Generator) SetUnit(name string) {
	g.unit = Sanitize(name)
	g.function = ""
}

// Unit returns the sanitized name of the current translation unit.
func (g *Generator) Unit() string { return g.unit }

// Err returns the first error that occurred while writing the output.
func (g *Generator) Err() error { return g.w.Err }

func (g *Generator) enabled(k vm.Kind) bool {
	switch k {
	case vm.Arithmetic, vm.Push, vm.Pop:
		return true
	case vm.Label, vm.Goto, vm.IfGoto:
		return g.features&Branching != 0
	case vm.Function, vm.Call, vm.Return:
		return g.features&Functions != 0
	}
	return false
}

// Dispatch translates a single command.
func (g *Generator) Dispatch(c vm.Command) error {
	if g.w.Err != nil {
		return g.w.Err
	}
	if !g.enabled(c.Kind) {
		return &UnsupportedCommandError{c.Kind}
	}
	if err := c.Validate(); err != nil {
		return err
	}
	if err := g.dispatch(c); err != nil {
		return err
	}
	return g.w.Err
}

func (g *Generator) dispatch(c vm.Command) error {
	// everything that can fail is resolved before anything is written.
	var a Addressing
	var op Operator
	var err error
	switch c.Kind {
	case vm.Push, vm.Pop:
		a, err = g.operand(c.Kind, c.Arg1, c.Arg2)
	case vm.Arithmetic:
		op, err = ParseOperator(c.Arg1)
	}
	if err != nil {
		return err
	}

	if g.comments {
		g.comment(c.String())
	}
	switch c.Kind {
	case vm.Arithmetic:
		return g.arithmetic(op)
	case vm.Push:
		g.push(a)
		g.incSP()
	case vm.Pop:
		g.decSP()
		g.pop(a)
	case vm.Label:
		g.define(g.scoped(c.Arg1))
	case vm.Goto:
		g.jump(g.scoped(c.Arg1))
	case vm.IfGoto:
		g.ifGoto(g.scoped(c.Arg1))
	case vm.Function:
		g.enter(c.Arg1, c.Arg2)
	case vm.Call:
		g.call(c.Arg1, c.Arg2)
	case vm.Return:
		g.ret()
	default:
		return &UnsupportedCommandError{c.Kind}
	}
	return nil
}

// Translate parses bytecode from r and translates every command as part of a
// new translation unit with the given name. It stops at the first error.
func (g *Generator) Translate(name string, r io.Reader) error {
	g.SetUnit(name)
	p := vm.NewParser(name, r)
	for {
		c, err := p.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err = g.Dispatch(c); err != nil {
			return errors.Wrapf(err, "%s: %s", c.Pos, c)
		}
	}
}

// Bootstrap writes the program startup code: it sets SP to 256 and calls
// Sys.init.
func (g *Generator) Bootstrap() error {
	if g.features&Functions == 0 {
		return &UnsupportedCommandError{vm.Call}
	}
	if g.comments {
		g.comment("bootstrap")
	}
	g.loadConstant(stackBase)
	g.at("SP")
	g.op("M=D")
	return g.Dispatch(vm.Command{Kind: vm.Call, Arg1: "Sys.init"})
}
