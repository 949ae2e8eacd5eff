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

// Package bf provides utility functions to load, compile and inspect programs
// for the VM in package vm.
package bf

import (
	"os"

	"github.com/db47h/bfi/asm"
	"github.com/db47h/bfi/vm"
	"github.com/pkg/errors"
)

// Program is a compiled program: an instruction sequence and its jump table.
type Program struct {
	Code  []vm.Opcode
	Jumps vm.JumpTable
}

// Loops returns the number of loops in the program.
func (p *Program) Loops() int {
	return len(p.Jumps) / 2
}

// Compile tokenizes and resolves the given source text. The returned error, if
// not nil, is an asm.ErrAsm.
func Compile(src string) (*Program, error) {
	code := asm.Tokenize(src)
	jumps, err := asm.Resolve(code)
	if err != nil {
		return nil, err
	}
	return &Program{code, jumps}, nil
}

// Load reads and compiles the source file fileName.
func Load(fileName string) (*Program, error) {
	src, err := os.ReadFile(fileName)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read %s", fileName)
	}
	p, err := Compile(string(src))
	if err != nil {
		return nil, errors.Wrap(err, fileName)
	}
	return p, nil
}

// NewVM returns a new VM instance ready to run p.
func (p *Program) NewVM(opts ...vm.Option) (*vm.Instance, error) {
	return vm.New(p.Code, p.Jumps, opts...)
}
