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
	"os"
	"path/filepath"
	"strings"

	"github.com/ftonello/nand2tetris/codegen"
	"github.com/pkg/errors"
)

// featureSet is a flag.Value selecting the generator command families.
type featureSet codegen.Feature

var featureNames = map[string]codegen.Feature{
	"branching": codegen.Branching,
	"functions": codegen.Functions,
	"all":       codegen.AllFeatures,
	"none":      0,
}

func (f *featureSet) String() string {
	if f == nil {
		return ""
	}
	var names []string
	for _, n := range []string{"branching", "functions"} {
		if codegen.Feature(*f)&featureNames[n] != 0 {
			names = append(names, n)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ",")
}

func (f *featureSet) Set(s string) error {
	var v codegen.Feature
	for _, n := range strings.Split(s, ",") {
		ft, ok := featureNames[strings.TrimSpace(n)]
		if !ok {
			return errors.Errorf("unknown feature %q", n)
		}
		v |= ft
	}
	*f = featureSet(v)
	return nil
}

func (f *featureSet) Get() interface{} { return codegen.Feature(*f) }

var (
	debug       bool
	bootstrap   bool
	comments    bool
	core        bool
	outFileName string
	features    = featureSet(codegen.AllFeatures)
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
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] file.vm|directory\n", filepath.Base(os.Args[0]))
	flag.PrintDefaults()
}

func usageError(msg string) {
	fmt.Fprintf(os.Stderr, "%s\n", msg)
	flag.Usage()
	os.Exit(2)
}

// sources returns the bytecode files to translate for path, in translation
// order, and the default output file name.
func sources(path string) (files []string, out string, err error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, "", err
	}
	if !fi.IsDir() {
		if filepath.Ext(path) != ".vm" {
			return nil, "", errors.Errorf("%s: not a .vm file", path)
		}
		return []string{path}, strings.TrimSuffix(path, ".vm") + ".asm", nil
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, "", err
	}
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".vm" {
			files = append(files, filepath.Join(path, e.Name()))
		}
	}
	if len(files) == 0 {
		return nil, "", errors.Errorf("%s: no .vm files found", path)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, "", err
	}
	return files, filepath.Join(path, filepath.Base(abs)+".asm"), nil
}

func translateFile(g *codegen.Generator, name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return g.Translate(name, bufio.NewReader(f))
}

// translate writes the translation of files to outName. The output file is
// removed if anything fails.
func translate(files []string, outName string, opts ...codegen.Option) (err error) {
	out, err := os.Create(outName)
	if err != nil {
		return err
	}
	defer func() {
		if e := out.Close(); err == nil {
			err = e
		}
		if err != nil {
			os.Remove(outName)
		}
	}()

	w := bufio.NewWriter(out)
	g, err := codegen.New(w, opts...)
	if err != nil {
		return err
	}
	if bootstrap {
		if err = g.Bootstrap(); err != nil {
			return errors.Wrap(err, "bootstrap")
		}
	}
	for _, name := range files {
		if err = translateFile(g, name); err != nil {
			return err
		}
	}
	return errors.Wrap(w.Flush(), "write failed")
}

func main() {
	var err error
	defer func() { atExit(err) }()

	flag.Usage = usage
	flag.BoolVar(&bootstrap, "bootstrap", false, "emit startup code calling Sys.init")
	flag.BoolVar(&comments, "comments", false, "emit each source command as a comment")
	flag.BoolVar(&core, "core", false, "only accept arithmetic, push and pop commands (same as -features none)")
	flag.Var(&features, "features", "comma separated `list` of enabled command families: branching, functions, all or none")
	flag.BoolVar(&debug, "debug", false, "enable debug diagnostics")
	flag.StringVar(&outFileName, "o", "", "write output to `filename`")

	flag.Parse()

	if flag.NArg() != 1 {
		usageError("expected exactly one file or directory")
	}
	files, defOut, err := sources(flag.Arg(0))
	if err != nil {
		usageError(err.Error())
	}
	if outFileName == "" {
		outFileName = defOut
	}
	if core {
		features = 0
	}
	err = translate(files, outFileName,
		codegen.Comments(comments),
		codegen.Features(codegen.Feature(features)))
}
