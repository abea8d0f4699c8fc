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

// Package hackio provides the line oriented output stream shared by the
// assembler and the VM translator.
package hackio

import (
	"io"

	"github.com/pkg/errors"
)

// Writer wraps an io.Writer and remembers the first write error. Once an error
// occurred, all subsequent writes are no-ops returning that error.
type Writer struct {
	w   io.Writer
	Err error
}

func (w *Writer) Write(p []byte) (n int, err error) {
	if w.Err != nil {
		return 0, w.Err
	}
	n, err = w.w.Write(p)
	if err != nil {
		w.Err = errors.Wrap(err, "write failed")
	}
	return n, w.Err
}

// WriteLine writes s followed by a newline.
func (w *Writer) WriteLine(s string) error {
	if w.Err != nil {
		return w.Err
	}
	io.WriteString(w, s)
	w.Write([]byte{'\n'})
	return w.Err
}

// NewWriter returns w if it already is a *Writer, or wraps it.
func NewWriter(w io.Writer) *Writer {
	if ew, ok := w.(*Writer); ok {
		return ew
	}
	return &Writer{w, nil}
}
