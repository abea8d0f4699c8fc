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

// MalformedCommandError reports a bytecode line that cannot be decoded into a
// Command, or a Command missing a required argument.
type MalformedCommandError struct {
	Pos  Position
	Line string // offending source text, if any
	Msg  string
}

func malformed(pos Position, line, msg string) *MalformedCommandError {
	return &MalformedCommandError{pos, line, msg}
}

func (e *MalformedCommandError) Error() string {
	s := e.Pos.String() + ": " + e.Msg
	if e.Line != "" {
		s += ": " + e.Line
	}
	return s
}
