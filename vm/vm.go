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

import (
	"io"
)

// TapeSize is the number of cells on the tape.
const TapeSize = 30000

// Instance represents a VM instance.
type Instance struct {
	PC       int    // Program Counter (aka. Instruction Pointer)
	DP       int    // Data Pointer
	Mem      []byte // Tape
	code     []Opcode
	jumps    JumpTable
	insCount int64
	input    io.ByteReader
	output   io.ByteWriter
}

// Option interface
type Option func(*Instance) error

// Input pushes the given io.Reader on top of the input stack. When this reader
// reaches EOF, the previously pushed reader will be used.
func Input(r io.Reader) Option {
	return func(i *Instance) error { i.PushInput(r); return nil }
}

// Output configures the output io.Writer. Every OpOut writes a single byte to
// w. If w is a buffered writer, flushing it is up to the caller.
//
// With no output configured, output bytes are discarded.
func Output(w io.Writer) Option {
	return func(i *Instance) error {
		i.output = newWriter(w)
		return nil
	}
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new VM instance.
//
// The code and jumps parameters are the instruction sequence and its jump
// table, usually obtained from asm.Tokenize and asm.Resolve. New does not check
// that the jump table matches the code. A missing or invalid entry will be
// reported by Run as an *InternalError.
//
// The tape is zeroed and the data pointer set to the middle of the tape.
// Options will be set by calling SetOptions.
func New(code []Opcode, jumps JumpTable, opts ...Option) (*Instance, error) {
	i := &Instance{
		Mem:   make([]byte, TapeSize),
		DP:    TapeSize / 2,
		code:  code,
		jumps: jumps,
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	return i, nil
}

// Load replaces the program run by the VM and resets the PC. The tape, data
// pointer and I/O settings are left untouched, so that the VM can be fed with
// successive program fragments.
func (i *Instance) Load(code []Opcode, jumps JumpTable) {
	i.code = code
	i.jumps = jumps
	i.PC = 0
}

// Reset clears the tape and resets the data pointer and PC.
func (i *Instance) Reset() {
	for n := range i.Mem {
		i.Mem[n] = 0
	}
	i.DP = TapeSize / 2
	i.PC = 0
}

// Code returns the instruction sequence loaded in the VM.
func (i *Instance) Code() []Opcode {
	return i.code
}

// Cell returns the value of the cell under the data pointer.
func (i *Instance) Cell() byte {
	return i.Mem[i.DP]
}

// InstructionCount returns the number of instructions executed so far.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}
