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

package asm

import (
	"fmt"
	"io"
	"strconv"

	"github.com/db47h/bfi/internal/iox"
	"github.com/db47h/bfi/vm"
)

// Tokenize converts source text into an instruction sequence. Any byte that is
// not one of the eight instruction symbols is ignored, which is how comments
// are written. Tokenize never fails: the returned sequence may be empty.
func Tokenize(src string) []vm.Opcode {
	code := make([]vm.Opcode, 0, len(src))
	for n := 0; n < len(src); n++ {
		if op, ok := vm.Decode(src[n]); ok {
			code = append(code, op)
		}
	}
	return code
}

// Resolve builds the jump table for the given code. Loops are matched in
// nesting order: a loop end matches the most recent unmatched loop start.
//
// The returned error, if not nil, can safely be cast to an ErrAsm value. An
// unmatched loop end stops the scan and is reported alone. Unmatched loop
// starts are all reported, in order of appearance.
func Resolve(code []vm.Opcode) (vm.JumpTable, error) {
	p := newParser()
	if err := p.Parse(code); err != nil {
		return nil, err
	}
	return p.jumps, nil
}

// Disassemble writes a disassembly of the instruction at position pc in code to
// the specified io.Writer and returns the position of the next instruction and
// any write error. Loop instructions are followed by the address of their
// matching counterpart, taken from jumps, or "???" if none.
func Disassemble(code []vm.Opcode, jumps vm.JumpTable, pc int, w io.Writer) (next int, err error) {
	ew, _ := w.(*iox.ErrWriter)
	if ew == nil {
		ew = iox.NewErrWriter(w)
	}

	op := code[pc]
	io.WriteString(ew, op.String())
	switch op {
	case vm.OpLoop, vm.OpEnd:
		ew.Write([]byte{' '})
		if to, ok := jumps[pc]; ok {
			io.WriteString(ew, strconv.Itoa(to))
		} else {
			io.WriteString(ew, "???")
		}
	}
	return pc + 1, ew.Err
}

// DisassembleAll writes a disassembly of all instructions in code to the
// specified io.Writer, one per line. It will return any write error.
func DisassembleAll(code []vm.Opcode, jumps vm.JumpTable, w io.Writer) error {
	ew := iox.NewErrWriter(w)
	for pc := 0; pc < len(code); {
		fmt.Fprintf(ew, "% 10d\t", pc)
		pc, _ = Disassemble(code, jumps, pc, ew)
		ew.Write([]byte{'\n'})
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}
