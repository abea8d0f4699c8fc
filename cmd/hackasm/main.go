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

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ftonello/nand2tetris/asm"
	"github.com/pkg/errors"
)

var (
	debug       bool
	disasm      bool
	outFileName string
)

func atExit(err error) {
	if err == nil {
		return
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "%+v\n", err)
	os.Exit(1)
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] file.asm|file.hack\n", filepath.Base(os.Args[0]))
	flag.PrintDefaults()
}

// create opens name for writing, or returns stdout if name is empty or "-".
// The returned function closes the file and removes it if err is not nil.
func create(name string) (io.Writer, func(err *error), error) {
	if name == "" || name == "-" {
		return os.Stdout, func(*error) {}, nil
	}
	f, err := os.Create(name)
	if err != nil {
		return nil, nil, err
	}
	return f, func(err *error) {
		if e := f.Close(); *err == nil {
			*err = e
		}
		if *err != nil {
			os.Remove(name)
		}
	}, nil
}

func assemble(name, outName string) (err error) {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	prog, err := asm.Assemble(name, bufio.NewReader(f))
	if err != nil {
		return err
	}

	w, done, err := create(outName)
	if err != nil {
		return err
	}
	defer done(&err)
	bw := bufio.NewWriter(w)
	if err = asm.WriteHack(bw, prog); err != nil {
		return err
	}
	return errors.Wrap(bw.Flush(), "write failed")
}

func disassemble(name, outName string) (err error) {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	prog, err := asm.ReadHack(name, bufio.NewReader(f))
	if err != nil {
		return err
	}

	w, done, err := create(outName)
	if err != nil {
		return err
	}
	defer done(&err)
	bw := bufio.NewWriter(w)
	if err = asm.DisassembleAll(prog, 0, bw); err != nil {
		return err
	}
	return errors.Wrap(bw.Flush(), "write failed")
}

func main() {
	var err error
	defer func() { atExit(err) }()

	flag.Usage = usage
	flag.BoolVar(&disasm, "d", false, "disassemble a .hack file")
	flag.BoolVar(&debug, "debug", false, "enable debug diagnostics")
	flag.StringVar(&outFileName, "o", "", "write output to `filename`")

	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "expected exactly one input file")
		flag.Usage()
		os.Exit(2)
	}
	name := flag.Arg(0)

	if disasm {
		err = disassemble(name, outFileName)
		return
	}
	if outFileName == "" {
		outFileName = strings.TrimSuffix(name, filepath.Ext(name)) + ".hack"
	}
	err = assemble(name, outFileName)
}
