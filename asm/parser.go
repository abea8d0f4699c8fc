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
	"io"
	"strconv"
	"strings"
	"text/scanner"
	"unicode"

	"github.com/pkg/errors"
)

// maxErrors is the maximum number of errors reported by Assemble.
const maxErrors = 10

// Hack assembly has no whitespace inside instructions, but we accept it: all
// tokens on a line are joined back together. The only rune not allowed in a
// token is '/', which starts comments.
func isIdentRune(ch rune, i int) bool {
	return ch != scanner.EOF && ch != '/' && !unicode.IsSpace(ch)
}

func isSymbol(s string) bool {
	if s == "" || s[0] >= '0' && s[0] <= '9' {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '_', r == '.', r == '$', r == ':':
		default:
			return false
		}
	}
	return true
}

type stmtKind int

const (
	stmtA stmtKind = iota
	stmtC
	stmtLabel
)

type stmt struct {
	kind stmtKind
	text string // instruction without @ or parentheses
	pos  scanner.Position
}

type parser struct {
	s     scanner.Scanner
	stmts []stmt
	syms  *SymbolTable
	errs  ErrAsm
}

func newParser() *parser {
	return &parser{syms: NewSymbolTable()}
}

func (p *parser) error(pos scanner.Position, msg string) {
	if len(p.errs) < maxErrors {
		p.errs = append(p.errs, ErrEntry{pos, msg})
	}
}

// scan splits the input into statements.
func (p *parser) scan(name string, r io.Reader) {
	p.s.Init(r)
	p.s.Error = func(s *scanner.Scanner, msg string) {
		pos := s.Position
		if !pos.IsValid() {
			pos = s.Pos()
		}
		p.error(pos, msg)
	}
	p.s.IsIdentRune = isIdentRune
	p.s.Mode = scanner.ScanIdents | scanner.ScanComments | scanner.SkipComments
	p.s.Whitespace = 1<<'\t' | 1<<'\r' | 1<<' '
	p.s.Filename = name

	var line []string
	var pos scanner.Position
	for tok := p.s.Scan(); ; tok = p.s.Scan() {
		switch tok {
		case scanner.Ident:
			if len(line) == 0 {
				pos = p.s.Position
			}
			line = append(line, p.s.TokenText())
			continue
		case '\n', scanner.EOF:
			if len(line) > 0 {
				p.statement(strings.Join(line, ""), pos)
				line = line[:0]
			}
		default:
			p.error(p.s.Position, "unexpected character "+strconv.QuoteRune(tok))
		}
		if tok == scanner.EOF {
			return
		}
	}
}

func (p *parser) statement(s string, pos scanner.Position) {
	switch s[0] {
	case '@':
		p.stmts = append(p.stmts, stmt{stmtA, s[1:], pos})
	case '(':
		if len(s) < 2 || s[len(s)-1] != ')' {
			p.error(pos, "unterminated label definition "+s)
			return
		}
		name := s[1 : len(s)-1]
		if !isSymbol(name) {
			p.error(pos, "invalid label name "+strconv.Quote(name))
			return
		}
		p.stmts = append(p.stmts, stmt{stmtLabel, name, pos})
	default:
		p.stmts = append(p.stmts, stmt{stmtC, s, pos})
	}
}

// bind is the first pass: it binds labels to the address of the next
// instruction. Addresses must fit in an A-instruction.
func (p *parser) bind() {
	pc := 0
	for _, st := range p.stmts {
		if st.kind != stmtLabel {
			pc++
			continue
		}
		if pc > maxValue {
			p.error(st.pos, "label "+st.text+" address "+strconv.Itoa(pc)+" out of range")
			continue
		}
		if err := p.syms.AddLabel(st.text, pc); err != nil {
			p.error(st.pos, err.Error())
		}
	}
}

// encode is the second pass.
func (p *parser) encode() []Word {
	img := make([]Word, 0, len(p.stmts))
	for _, st := range p.stmts {
		switch st.kind {
		case stmtA:
			v, err := p.value(st.text)
			if err != nil {
				p.error(st.pos, err.Error())
			}
			img = append(img, Word(v))
		case stmtC:
			w, err := encodeC(st.text)
			if err != nil {
				p.error(st.pos, err.Error())
			}
			img = append(img, w)
		}
	}
	return img
}

func (p *parser) value(s string) (int, error) {
	if s == "" {
		return 0, errors.New("missing value after @")
	}
	if s[0] >= '0' && s[0] <= '9' {
		v, err := strconv.Atoi(s)
		if err != nil || v > maxValue {
			return 0, errors.New("invalid constant " + s)
		}
		return v, nil
	}
	if !isSymbol(s) {
		return 0, errors.New("invalid symbol " + strconv.Quote(s))
	}
	return p.syms.Variable(s), nil
}

// Parse does the parsing and compiling.
func (p *parser) Parse(name string, r io.Reader) ([]Word, error) {
	p.scan(name, r)
	p.bind()
	img := p.encode()
	if len(p.errs) > 0 {
		return nil, p.errs
	}
	return img, nil
}
