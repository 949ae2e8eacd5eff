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

// Opcode is a VM instruction. There are exactly eight of them and they carry
// no argument.
type Opcode byte

// Virtual Machine Opcodes.
const (
	OpRight Opcode = iota // >
	OpLeft                // <
	OpInc                 // +
	OpDec                 // -
	OpOut                 // .
	OpIn                  // ,
	OpLoop                // [
	OpEnd                 // ]
)

var opcodes = [...]byte{
	'>',
	'<',
	'+',
	'-',
	'.',
	',',
	'[',
	']',
}

// opcodeIndex maps a source symbol to its Opcode. It is indexed by byte value;
// entries for bytes that are not instructions are -1.
var opcodeIndex [256]int8

func init() {
	for i := range opcodeIndex {
		opcodeIndex[i] = -1
	}
	for i, c := range opcodes {
		opcodeIndex[c] = int8(i)
	}
}

// Symbol returns the source symbol for op.
func (op Opcode) Symbol() byte {
	if int(op) < len(opcodes) {
		return opcodes[op]
	}
	return '?'
}

func (op Opcode) String() string {
	if int(op) < len(opcodes) {
		return string(opcodes[op])
	}
	return "Opcode(" + strconv.Itoa(int(op)) + ")"
}

// Decode returns the Opcode for the source symbol c. ok is false if c is not
// an instruction.
func Decode(c byte) (op Opcode, ok bool) {
	v := opcodeIndex[c]
	if v < 0 {
		return 0, false
	}
	return Opcode(v), true
}

// JumpTable maps the address of each loop instruction to the address of its
// matching counterpart. For every entry a -> b there is an entry b -> a.
type JumpTable map[int]int
