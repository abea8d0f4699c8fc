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
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/ftonello/nand2tetris/internal/hackio"
	"github.com/pkg/errors"
)

// WriteHack writes prog in the textual .hack format: one word per line,
// written as 16 binary digits.
func WriteHack(w io.Writer, prog []Word) error {
	ew := hackio.NewWriter(w)
	var b [16]byte
	for _, v := range prog {
		for i := range b {
			b[i] = '0' + byte(v>>(15-uint(i))&1)
		}
		ew.WriteLine(string(b[:]))
	}
	return ew.Err
}

// ReadHack reads a program in the .hack format. Blank lines are ignored.
func ReadHack(name string, r io.Reader) ([]Word, error) {
	var prog []Word
	s := bufio.NewScanner(r)
	for line := 1; s.Scan(); line++ {
		t := strings.TrimSpace(s.Text())
		if t == "" {
			continue
		}
		if len(t) != 16 {
			return nil, errors.Errorf("%s:%d: expected 16 binary digits, got %q", name, line, t)
		}
		v, err := strconv.ParseUint(t, 2, 16)
		if err != nil {
			return nil, errors.Errorf("%s:%d: invalid word %q", name, line, t)
		}
		prog = append(prog, Word(v))
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrapf(err, "%s: read failed", name)
	}
	return prog, nil
}
