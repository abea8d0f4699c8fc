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

package codegen

import (
	"path/filepath"
	"strconv"
	"strings"
)

// Segment is a named region of the stack machine state.
type Segment int

// Segments.
const (
	Constant Segment = iota
	Local
	Argument
	This
	That
	Temp
	Pointer
	Static
)

var segments = [...]string{
	Constant: "constant",
	Local:    "local",
	Argument: "argument",
	This:     "this",
	That:     "that",
	Temp:     "temp",
	Pointer:  "pointer",
	Static:   "static",
}

func (s Segment) String() string {
	if s < 0 || int(s) >= len(segments) {
		return "segment(" + strconv.Itoa(int(s)) + ")"
	}
	return segments[s]
}

// ParseSegment returns the Segment with the given bytecode name.
func ParseSegment(name string) (Segment, error) {
	for i, n := range segments {
		if n == name {
			return Segment(i), nil
		}
	}
	return 0, &UnknownSegmentError{name}
}

// Mode is an addressing strategy.
type Mode int

// Addressing modes.
const (
	Indirect  Mode = iota // base register holds the segment address
	Fixed                 // segment is a fixed block of registers
	Immediate             // the index is the value
	Symbolic              // per translation unit symbol
)

// Addressing describes how to reach a segment cell.
//
// For Indirect, Symbol names the base register and Addr is the offset from
// the base. For Fixed, Addr is the absolute address. For Immediate, Addr is
// the value. For Symbolic, Symbol is the variable name.
type Addressing struct {
	Mode   Mode
	Symbol string
	Addr   int
}

const (
	tempBase    = 5
	tempSize    = 8
	pointerBase = 3
	pointerSize = 2
	// largest value that fits in an A-instruction
	maxImmediate = 1<<15 - 1
)

// Resolve returns the addressing strategy for the given segment and index. The
// unit is the sanitized name of the translation unit, used by static.
func Resolve(seg Segment, index int, unit string) (Addressing, error) {
	limit := maxImmediate
	switch seg {
	case Temp:
		limit = tempSize - 1
	case Pointer:
		limit = pointerSize - 1
	}
	if index < 0 || index > limit {
		return Addressing{}, &IndexRangeError{seg, index, limit}
	}
	switch seg {
	case Constant:
		return Addressing{Mode: Immediate, Addr: index}, nil
	case Local:
		return Addressing{Indirect, "LCL", index}, nil
	case Argument:
		return Addressing{Indirect, "ARG", index}, nil
	case This:
		return Addressing{Indirect, "THIS", index}, nil
	case That:
		return Addressing{Indirect, "THAT", index}, nil
	case Temp:
		return Addressing{Mode: Fixed, Addr: tempBase + index}, nil
	case Pointer:
		return Addressing{Mode: Fixed, Addr: pointerBase + index}, nil
	case Static:
		return Addressing{Mode: Symbolic, Symbol: unit + "." + strconv.Itoa(index)}, nil
	}
	return Addressing{}, &UnknownSegmentError{seg.String()}
}

func isSymbolByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' ||
		c == '_' || c == '.' || c == '$' || c == ':'
}

const hexDigits = "0123456789abcdef"

// Sanitize turns a file name into a name usable as an assembler symbol
// prefix. The directory and extension are removed, bytes not allowed in
// symbols and a leading digit are escaped as '_' followed by two hex digits,
// and '_' is doubled. Distinct base names never share a prefix.
func Sanitize(name string) string {
	base := filepath.Base(name)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" {
		return "_"
	}
	var b strings.Builder
	for i := 0; i < len(base); i++ {
		c := base[i]
		switch {
		case c == '_':
			b.WriteString("__")
		case isSymbolByte(c) && !(i == 0 && c >= '0' && c <= '9'):
			b.WriteByte(c)
		default:
			b.WriteByte('_')
			b.WriteByte(hexDigits[c>>4])
			b.WriteByte(hexDigits[c&0xf])
		}
	}
	return b.String()
}
