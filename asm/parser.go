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
	"bytes"
	"strconv"

	"github.com/db47h/bfi/vm"
)

// Error describes an unmatched loop instruction.
type Error struct {
	Addr int       // address of the unmatched instruction
	Op   vm.Opcode // vm.OpLoop or vm.OpEnd
}

func (e Error) Error() string {
	return "Unmatched '" + e.Op.String() + "' at index " + strconv.Itoa(e.Addr)
}

// ErrAsm is the error type returned by Resolve. It lists every unmatched loop
// instruction found.
type ErrAsm []Error

func (e ErrAsm) Error() string {
	var b bytes.Buffer
	for n := range e {
		if n > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(e[n].Error())
	}
	return b.String()
}

type parser struct {
	jumps vm.JumpTable
	open  []int
}

func newParser() *parser {
	p := new(parser)
	p.jumps = make(vm.JumpTable)
	return p
}

// Parse matches loop instructions in a single pass over code.
func (p *parser) Parse(code []vm.Opcode) error {
	for pc, op := range code {
		switch op {
		case vm.OpLoop:
			p.open = append(p.open, pc)
		case vm.OpEnd:
			l := len(p.open) - 1
			if l < 0 {
				return ErrAsm{{pc, op}}
			}
			start := p.open[l]
			p.open = p.open[:l]
			p.jumps[start] = pc
			p.jumps[pc] = start
		}
	}

	if len(p.open) > 0 {
		errs := make(ErrAsm, len(p.open))
		for n, pc := range p.open {
			errs[n] = Error{pc, vm.OpLoop}
		}
		return errs
	}
	return nil
}
