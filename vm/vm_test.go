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

package vm_test

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/db47h/bfi/asm"
	"github.com/db47h/bfi/vm"
	"github.com/pkg/errors"
)

const mid = vm.TapeSize / 2

func setup(t testing.TB, code string, opts ...vm.Option) *vm.Instance {
	ops := asm.Tokenize(code)
	jumps, err := asm.Resolve(ops)
	if err != nil {
		t.Fatalf("%s: %v", code, err)
	}
	i, err := vm.New(ops, jumps, opts...)
	if err != nil {
		t.Fatal(err)
	}
	return i
}

// cells returns the cells in [from, to) relative to the middle of the tape.
func cells(i *vm.Instance, from, to int) []byte {
	return i.Mem[mid+from : mid+to]
}

var tests = [...]struct {
	name  string
	code  string
	input string
	out   string
	dp    int    // relative to mid
	mem   []byte // cells from mid-2 to mid+3
}{
	{"empty", "", "", "", 0, []byte{0, 0, 0, 0, 0}},
	{"comments", "this is all comment", "", "", 0, []byte{0, 0, 0, 0, 0}},
	{"+", "+++", "", "", 0, []byte{0, 0, 3, 0, 0}},
	{"-", "+++-", "", "", 0, []byte{0, 0, 2, 0, 0}},
	{"- wraps", "-", "", "", 0, []byte{0, 0, 255, 0, 0}},
	{">", ">>+", "", "", 2, []byte{0, 0, 0, 0, 1}},
	{"<", "<<+>", "", "", -1, []byte{1, 0, 0, 0, 0}},
	{".", "++++++++[>++++++++<-]>+.+.", "", "AB", 1, []byte{0, 0, 0, 'B', 0}},
	{",", ",>,", "xy", "", 1, []byte{0, 0, 'x', 'y', 0}},
	{", EOF", "+++>+++,<,", "", "", 0, []byte{0, 0, 0, 0, 0}},
	{"[ skip", "[+++]+", "", "", 0, []byte{0, 0, 1, 0, 0}},
	{"move loop", "++>+++++[<+>-]<.", "", "\x07", 0, []byte{0, 0, 7, 0, 0}},
	{"nested", "++[>+++[>+<-]<-]", "", "", 0, []byte{0, 0, 0, 0, 6}},
	{"echo", ",[.,]", "hello", "hello", 0, []byte{0, 0, 0, 0, 0}},
}

func TestCore(t *testing.T) {
	for _, test := range tests {
		var out bytes.Buffer
		i := setup(t, test.code, vm.Input(strings.NewReader(test.input)), vm.Output(&out))
		err := i.Run()
		if err != nil {
			t.Errorf("%s: %+v", test.name, err)
			continue
		}
		if i.PC != len(i.Code()) {
			t.Errorf("%s: Bad PC %d != %d", test.name, i.PC, len(i.Code()))
		}
		if i.DP != mid+test.dp {
			t.Errorf("%s: Bad DP %d != %d", test.name, i.DP-mid, test.dp)
		}
		if got := out.String(); got != test.out {
			t.Errorf("%s: Bad output %q != %q", test.name, got, test.out)
		}
		if got := cells(i, -2, 3); !bytes.Equal(got, test.mem) {
			t.Errorf("%s: Memory error: expected %v, got %v", test.name, test.mem, got)
		}
		if t.Failed() {
			// disasm
			var b bytes.Buffer
			b.WriteString(test.name)
			b.WriteString(":\n")
			jumps, _ := asm.Resolve(i.Code())
			asm.DisassembleAll(i.Code(), jumps, &b)
			t.Log(b.String())
		}
	}
}

func TestWrap(t *testing.T) {
	i := setup(t, strings.Repeat("+", 256))
	if err := i.Run(); err != nil {
		t.Fatal(err)
	}
	if c := i.Cell(); c != 0 {
		t.Fatalf("256 increments: expected 0, got %d", c)
	}
	i.Load(asm.Tokenize("-"), vm.JumpTable{})
	if err := i.Run(); err != nil {
		t.Fatal(err)
	}
	if c := i.Cell(); c != 255 {
		t.Fatalf("decrement of 0: expected 255, got %d", c)
	}
}

func TestBounds(t *testing.T) {
	var tests = [...]struct {
		name  string
		code  string
		pc    int
		dp    int
		right bool
	}{
		{"left", strings.Repeat("<", mid+1), mid, 0, false},
		{"right", strings.Repeat(">", mid), mid - 1, vm.TapeSize - 1, true},
		{"left loop", "+[<+]", 2, 0, false},
		{"right loop", "+[>+]", 2, vm.TapeSize - 1, true},
	}
	for _, test := range tests {
		i := setup(t, test.code)
		err := i.Run()
		e, ok := errors.Cause(err).(*vm.BoundsError)
		if !ok {
			t.Errorf("%s: expected *vm.BoundsError, got %v", test.name, err)
			continue
		}
		if e.Right() != test.right {
			t.Errorf("%s: bad direction in %v", test.name, e)
		}
		if i.PC != test.pc || e.PC != test.pc {
			t.Errorf("%s: bad PC: expected %d, got %d / %d", test.name, test.pc, i.PC, e.PC)
		}
		if i.DP != test.dp {
			t.Errorf("%s: bad DP: expected %d, got %d", test.name, test.dp, i.DP)
		}
	}
}

func TestBoundsError_message(t *testing.T) {
	i := setup(t, strings.Repeat("<", mid+1))
	err := i.Run()
	if err == nil {
		t.Fatal("expected an error")
	}
	exp := fmt.Sprintf("data pointer out of bounds (left) at pc %d", mid)
	if err.Error() != exp {
		t.Errorf("Expected: %s\nGot: %s\n", exp, err)
	}
}

func TestInternalError(t *testing.T) {
	var tests = [...]struct {
		name  string
		code  []vm.Opcode
		jumps vm.JumpTable
		msg   string
	}{
		{"[", []vm.Opcode{vm.OpLoop, vm.OpEnd}, vm.JumpTable{}, "bad jump table entry for '[' at 0"},
		{"]", []vm.Opcode{vm.OpInc, vm.OpLoop, vm.OpEnd}, vm.JumpTable{}, "bad jump table entry for ']' at 2"},
		{"[ negative", []vm.Opcode{vm.OpLoop, vm.OpEnd}, vm.JumpTable{0: -3, 1: 0}, "bad jump table entry for '[' at 0"},
		{"[ past end", []vm.Opcode{vm.OpLoop, vm.OpEnd}, vm.JumpTable{0: 2, 1: 0}, "bad jump table entry for '[' at 0"},
		{"[ to [", []vm.Opcode{vm.OpLoop, vm.OpLoop, vm.OpEnd, vm.OpEnd}, vm.JumpTable{0: 1, 1: 2, 2: 1, 3: 0}, "bad jump table entry for '[' at 0"},
		{"] to +", []vm.Opcode{vm.OpInc, vm.OpLoop, vm.OpEnd}, vm.JumpTable{1: 2, 2: 0}, "bad jump table entry for ']' at 2"},
		{"opcode", []vm.Opcode{vm.OpInc, 42}, vm.JumpTable{}, "invalid opcode Opcode(42) at 1"},
	}
	for _, test := range tests {
		i, err := vm.New(test.code, test.jumps)
		if err != nil {
			t.Fatal(err)
		}
		err = i.Run()
		if _, ok := err.(*vm.InternalError); !ok {
			t.Errorf("%s: expected *vm.InternalError, got %v", test.name, err)
			continue
		}
		if err.Error() != test.msg {
			t.Errorf("%s: Expected: %s\nGot: %s\n", test.name, test.msg, err)
		}
	}
}

// Two independent instances running the same program with the same input
// must end up in the same state.
func TestIdempotence(t *testing.T) {
	const code = ",[>+++[>++<-]<-,]>>[.-]"
	var (
		outs [2]bytes.Buffer
		is   [2]*vm.Instance
	)
	for n := range is {
		is[n] = setup(t, code, vm.Input(strings.NewReader("abc")), vm.Output(&outs[n]))
		if err := is[n].Run(); err != nil {
			t.Fatal(err)
		}
	}
	if !bytes.Equal(outs[0].Bytes(), outs[1].Bytes()) {
		t.Errorf("output differs: %v != %v", outs[0].Bytes(), outs[1].Bytes())
	}
	if !bytes.Equal(is[0].Mem, is[1].Mem) || is[0].DP != is[1].DP {
		t.Error("tape state differs")
	}
	if outs[0].Len() == 0 {
		t.Error("no output")
	}
}

func TestLoad(t *testing.T) {
	i := setup(t, "++>+")
	if err := i.Run(); err != nil {
		t.Fatal(err)
	}
	i.Load(asm.Tokenize("+"), vm.JumpTable{})
	if err := i.Run(); err != nil {
		t.Fatal(err)
	}
	if got := cells(i, 0, 2); !bytes.Equal(got, []byte{2, 2}) {
		t.Errorf("Load must keep the tape: got %v", got)
	}
	if i.PC != 1 {
		t.Errorf("Bad PC %d", i.PC)
	}
	i.Reset()
	if i.DP != mid || i.PC != 0 {
		t.Errorf("Reset: DP = %d, PC = %d", i.DP, i.PC)
	}
	for n, c := range i.Mem {
		if c != 0 {
			t.Fatalf("Reset: cell %d = %d", n, c)
		}
	}
}

func TestInstructionCount(t *testing.T) {
	i := setup(t, "++[-]")
	if err := i.Run(); err != nil {
		t.Fatal(err)
	}
	// + + [ - ] - ]
	if c := i.InstructionCount(); c != 7 {
		t.Errorf("expected 7 instructions, got %d", c)
	}
}

func TestWindow(t *testing.T) {
	i := setup(t, "+>++>+++<")
	if err := i.Run(); err != nil {
		t.Fatal(err)
	}
	start, w := i.Window(2)
	if start != mid-1 || !bytes.Equal(w, []byte{0, 1, 2, 3, 0}) {
		t.Errorf("bad window @%d: %v", start, w)
	}
	w[0] = 42
	if i.Mem[start] == 42 {
		t.Error("Window must return a copy")
	}

	i.DP = 1
	start, w = i.Window(5)
	if start != 0 || len(w) != 7 {
		t.Errorf("left clip: start %d, len %d", start, len(w))
	}
	i.DP = vm.TapeSize - 1
	start, w = i.Window(5)
	if start != vm.TapeSize-6 || len(w) != 6 {
		t.Errorf("right clip: start %d, len %d", start, len(w))
	}
	start, w = i.Window(math.MaxInt)
	if start != 0 || len(w) != vm.TapeSize {
		t.Errorf("huge radius: start %d, len %d", start, len(w))
	}
}

const hello = `++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]>>.>---.+++++++..+++.>>.<-.<.+++.------.--------.>>+.>++.`

func TestHello(t *testing.T) {
	var out bytes.Buffer
	i := setup(t, hello, vm.Output(&out))
	if err := i.Run(); err != nil {
		t.Fatal(err)
	}
	if out.String() != "Hello World!\n" {
		t.Errorf("got %q", out.String())
	}
}

func BenchmarkRun(b *testing.B) {
	// 256 * 256 * 256 iterations of the inner loop
	i := setup(b, "-[>-[>-[-]<-]<-]")
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		i.Reset()
		if err := i.Run(); err != nil {
			b.Fatal(err)
		}
	}
}
