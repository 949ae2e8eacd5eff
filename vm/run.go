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

import "io"

// Run starts execution of the VM at PC 0 and returns when the PC reaches the
// end of the code or when an error occurs.
//
// If an error occurs, the PC will point to the instruction that triggered
// the error, and the tape and data pointer are left as they were after the
// last instruction that completed. The error is one of *BoundsError, *IOError
// or *InternalError.
//
// Reaching EOF on input is not an error: the current cell is set to 0.
func (i *Instance) Run() error {
	var (
		code = i.code
		mem  = i.Mem
	)
	i.PC = 0
	i.insCount = 0
	for i.PC < len(code) {
		op := code[i.PC]
		switch op {
		case OpRight:
			if i.DP+1 >= len(mem) {
				return &BoundsError{PC: i.PC, DP: i.DP, Op: op}
			}
			i.DP++
		case OpLeft:
			if i.DP == 0 {
				return &BoundsError{PC: i.PC, DP: i.DP, Op: op}
			}
			i.DP--
		case OpInc:
			mem[i.DP]++
		case OpDec:
			mem[i.DP]--
		case OpOut:
			if i.output != nil {
				if err := i.output.WriteByte(mem[i.DP]); err != nil {
					return &IOError{PC: i.PC, Op: op, Err: err}
				}
			}
		case OpIn:
			if i.input == nil {
				mem[i.DP] = 0
				break
			}
			c, err := i.input.ReadByte()
			switch err {
			case nil:
				mem[i.DP] = c
			case io.EOF:
				mem[i.DP] = 0
			default:
				return &IOError{PC: i.PC, Op: op, Err: err}
			}
		case OpLoop:
			if mem[i.DP] == 0 {
				pc, ok := i.jumpTarget(OpEnd)
				if !ok {
					return &InternalError{PC: i.PC, Op: op}
				}
				i.PC = pc
			}
		case OpEnd:
			if mem[i.DP] != 0 {
				pc, ok := i.jumpTarget(OpLoop)
				if !ok {
					return &InternalError{PC: i.PC, Op: op}
				}
				i.PC = pc
			}
		default:
			return &InternalError{PC: i.PC, Op: op}
		}
		i.PC++
		i.insCount++
	}
	return nil
}

// jumpTarget returns the jump table entry for the current PC. ok is false if
// there is no entry or if it does not point to an instruction of type want.
func (i *Instance) jumpTarget(want Opcode) (pc int, ok bool) {
	pc, ok = i.jumps[i.PC]
	if !ok || pc < 0 || pc >= len(i.code) || i.code[pc] != want {
		return 0, false
	}
	return pc, true
}
