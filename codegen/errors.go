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
	"strconv"

	"github.com/ftonello/nand2tetris/vm"
)

// UnknownSegmentError is returned for a segment name outside of the fixed
// segment set.
type UnknownSegmentError struct {
	Name string
}

func (e *UnknownSegmentError) Error() string {
	return "unknown segment " + strconv.Quote(e.Name)
}

// UnknownOperatorError is returned for an arithmetic command with an unknown
// operator name.
type UnknownOperatorError struct {
	Name string
}

func (e *UnknownOperatorError) Error() string {
	return "unknown operator " + strconv.Quote(e.Name)
}

// InvalidSegmentOperationError is returned when the operation is not
// supported by the segment (pop constant).
type InvalidSegmentOperationError struct {
	Kind    vm.Kind
	Segment Segment
}

func (e *InvalidSegmentOperationError) Error() string {
	return "cannot " + e.Kind.String() + " " + e.Segment.String()
}

// UnsupportedCommandError is returned for command kinds that the Generator has
// not been configured to translate.
type UnsupportedCommandError struct {
	Kind vm.Kind
}

func (e *UnsupportedCommandError) Error() string {
	return "unsupported command " + e.Kind.String()
}

// IndexRangeError is returned when an index does not fit in a segment.
type IndexRangeError struct {
	Segment Segment
	Index   int
	Max     int
}

func (e *IndexRangeError) Error() string {
	return e.Segment.String() + " index " + strconv.Itoa(e.Index) + " out of range [0, " + strconv.Itoa(e.Max) + "]"
}
