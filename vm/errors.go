// This file is part of bfi - https://github.com/db47h/bfi
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
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

import "strconv"

// BoundsError is returned by Run when an OpRight or OpLeft instruction would
// move the data pointer off the tape.
type BoundsError struct {
	PC int    // address of the offending instruction
	DP int    // data pointer value before the move
	Op Opcode // OpRight or OpLeft
}

// Right returns true if the data pointer went past the right end of the tape.
func (e *BoundsError) Right() bool {
	return e.Op == OpRight
}

func (e *BoundsError) Error() string {
	dir := "left"
	if e.Right() {
		dir = "right"
	}
	return "data pointer out of bounds (" + dir + ") at pc " + strconv.Itoa(e.PC)
}

// IOError wraps an error returned by the output writer on OpOut, or by the
// input reader on OpIn.
type IOError struct {
	PC  int
	Op  Opcode // OpOut or OpIn
	Err error
}

func (e *IOError) Error() string {
	what := "output"
	if e.Op == OpIn {
		what = "input"
	}
	return what + " failed at pc " + strconv.Itoa(e.PC) + ": " + e.Err.Error()
}

// Cause returns the underlying I/O error. This makes IOError work with
// github.com/pkg/errors.Cause.
func (e *IOError) Cause() error { return e.Err }

// Unwrap returns the underlying I/O error.
func (e *IOError) Unwrap() error { return e.Err }

// InternalError signals that the jump table does not match the code: a loop
// instruction has no entry in the jump table or its entry does not point to a
// matching loop instruction, or the code contains an invalid opcode. It cannot happen with a jump table built by asm.Resolve from the
// same code.
type InternalError struct {
	PC int
	Op Opcode
}

func (e *InternalError) Error() string {
	switch e.Op {
	case OpLoop, OpEnd:
		return "bad jump table entry for '" + e.Op.String() + "' at " + strconv.Itoa(e.PC)
	default:
		return "invalid opcode " + e.Op.String() + " at " + strconv.Itoa(e.PC)
	}
}
