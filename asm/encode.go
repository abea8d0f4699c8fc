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
	"strings"

	"github.com/pkg/errors"
)

// Word is a Hack machine word.
type Word uint16

const (
	cPrefix  Word = 0x7 << 13
	aBit     Word = 1 << 15
	maxValue      = 1<<15 - 1
)

// computation bits (a c1 c2 c3 c4 c5 c6). The first mnemonic of each code is
// the one used by the disassembler.
var comps = [...]struct {
	code  Word
	names []string
}{
	{0x2a, []string{"0"}},
	{0x3f, []string{"1"}},
	{0x3a, []string{"-1"}},
	{0x0c, []string{"D"}},
	{0x30, []string{"A"}},
	{0x0d, []string{"!D"}},
	{0x31, []string{"!A"}},
	{0x0f, []string{"-D"}},
	{0x33, []string{"-A"}},
	{0x1f, []string{"D+1", "1+D"}},
	{0x37, []string{"A+1", "1+A"}},
	{0x0e, []string{"D-1"}},
	{0x32, []string{"A-1"}},
	{0x02, []string{"D+A", "A+D"}},
	{0x13, []string{"D-A"}},
	{0x07, []string{"A-D"}},
	{0x00, []string{"D&A", "A&D"}},
	{0x15, []string{"D|A", "A|D"}},
	{0x70, []string{"M"}},
	{0x71, []string{"!M"}},
	{0x73, []string{"-M"}},
	{0x77, []string{"M+1", "1+M"}},
	{0x72, []string{"M-1"}},
	{0x42, []string{"D+M", "M+D"}},
	{0x53, []string{"D-M"}},
	{0x47, []string{"M-D"}},
	{0x40, []string{"D&M", "M&D"}},
	{0x55, []string{"D|M", "M|D"}},
}

var jumps = [...]string{
	"",
	"JGT",
	"JEQ",
	"JGE",
	"JLT",
	"JNE",
	"JLE",
	"JMP",
}

var (
	compIndex = make(map[string]Word)
	compName  = make(map[Word]string)
	jumpIndex = make(map[string]Word)
)

func init() {
	for _, c := range comps {
		for _, n := range c.names {
			compIndex[n] = c.code
		}
		compName[c.code] = c.names[0]
	}
	for i, j := range jumps {
		jumpIndex[j] = Word(i)
	}
}

// dest bits, in the order they are printed.
var dests = [...]struct {
	reg byte
	bit Word
}{
	{'A', 4},
	{'M', 1},
	{'D', 2},
}

func encodeDest(s string) (Word, error) {
	var d Word
	for i := 0; i < len(s); i++ {
		var bit Word
		for _, r := range dests {
			if r.reg == s[i] {
				bit = r.bit
			}
		}
		if bit == 0 {
			return 0, errors.Errorf("invalid destination %q", s)
		}
		if d&bit != 0 {
			return 0, errors.Errorf("duplicate register in destination %q", s)
		}
		d |= bit
	}
	return d, nil
}

func decodeDest(d Word) string {
	var b strings.Builder
	for _, r := range dests {
		if d&r.bit != 0 {
			b.WriteByte(r.reg)
		}
	}
	return b.String()
}

// encodeC encodes a dest=comp;jump instruction. dest and jump are optional.
func encodeC(s string) (Word, error) {
	var dest, comp, jump string
	comp = s
	if i := strings.IndexByte(comp, '='); i >= 0 {
		dest, comp = comp[:i], comp[i+1:]
		if dest == "" {
			return 0, errors.Errorf("empty destination in %q", s)
		}
	}
	if i := strings.IndexByte(comp, ';'); i >= 0 {
		comp, jump = comp[:i], comp[i+1:]
		if jump == "" {
			return 0, errors.Errorf("empty jump in %q", s)
		}
	}
	c, ok := compIndex[comp]
	if !ok {
		return 0, errors.Errorf("invalid computation %q", comp)
	}
	d, err := encodeDest(dest)
	if err != nil {
		return 0, err
	}
	j, ok := jumpIndex[jump]
	if !ok {
		return 0, errors.Errorf("invalid jump %q", jump)
	}
	return cPrefix | c<<6 | d<<3 | j, nil
}

// decode returns the mnemonic form of w.
func decode(w Word) string {
	if w&aBit == 0 {
		return "@" + strconv.Itoa(int(w))
	}
	c, ok := compName[(w>>6)&0x7f]
	if !ok || w&cPrefix != cPrefix {
		return "??? " + strconv.FormatUint(uint64(w), 2)
	}
	s := c
	if d := decodeDest((w >> 3) & 7); d != "" {
		s = d + "=" + s
	}
	if j := jumps[w&7]; j != "" {
		s += ";" + j
	}
	return s
}
