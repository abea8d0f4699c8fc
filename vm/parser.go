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

package vm

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Parser decodes bytecode text into Commands, one per non blank line.
type Parser struct {
	s    *bufio.Scanner
	name string
	line int
}

// NewParser returns a Parser reading from r. The name is used in positions and
// error messages only. If r is a file, name should be the file name.
func NewParser(name string, r io.Reader) *Parser {
	return &Parser{s: bufio.NewScanner(r), name: name}
}

// stripComment removes a trailing // comment.
func stripComment(s string) string {
	if i := strings.Index(s, "//"); i >= 0 {
		return s[:i]
	}
	return s
}

// Next returns the next command. At end of input, it returns io.EOF.
func (p *Parser) Next() (Command, error) {
	for p.s.Scan() {
		p.line++
		text := p.s.Text()
		fields := strings.Fields(stripComment(text))
		if len(fields) == 0 {
			continue
		}
		return p.decode(fields, strings.TrimSpace(text))
	}
	if err := p.s.Err(); err != nil {
		return Command{}, errors.Wrapf(err, "%s: read failed", p.name)
	}
	return Command{}, io.EOF
}

func (p *Parser) decode(f []string, text string) (Command, error) {
	pos := Position{p.name, p.line}
	c := Command{Pos: pos}
	if operators[f[0]] {
		c.Kind, c.Arg1 = Arithmetic, f[0]
		if len(f) > 1 {
			return c, malformed(pos, text, f[0]+": unexpected argument")
		}
		return c, nil
	}
	k, ok := keywords[f[0]]
	if !ok {
		return c, malformed(pos, text, "unknown command "+strconv.Quote(f[0]))
	}
	c.Kind = k
	want := 2
	switch {
	case k == Return:
		want = 1
	case k.HasArg2():
		want = 3
	}
	if len(f) < want {
		return c, malformed(pos, text, k.String()+": missing argument")
	}
	if len(f) > want {
		return c, malformed(pos, text, k.String()+": unexpected argument "+strconv.Quote(f[want]))
	}
	if want > 1 {
		c.Arg1 = f[1]
	}
	if want > 2 {
		n, err := strconv.Atoi(f[2])
		if err != nil || n < 0 {
			return c, malformed(pos, text, k.String()+": index must be a non-negative decimal integer")
		}
		c.Arg2 = n
	}
	return c, c.Validate()
}

// ParseAll decodes all commands read from r.
func ParseAll(name string, r io.Reader) ([]Command, error) {
	var cmds []Command
	p := NewParser(name, r)
	for {
		c, err := p.Next()
		if err == io.EOF {
			return cmds, nil
		}
		if err != nil {
			return cmds, err
		}
		cmds = append(cmds, c)
	}
}
