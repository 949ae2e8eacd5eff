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

package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/db47h/bfi/asm"
	"github.com/db47h/bfi/internal/iox"
	"github.com/db47h/bfi/lang/bf"
	"github.com/db47h/bfi/vm"
	"github.com/peterh/liner"
	"github.com/pkg/errors"
	"github.com/tebeka/atexit"
)

const (
	prompt    = "> "
	memRange  = 5
	banner    = "bfi REPL\nType 'exit' to exit, or 'mem' to show memory snapshot. Type ':help' for more commands."
	replUsage = `REPL commands:
  quit, exit, :quit   Exit the REPL
  mem, memory         Show cells around the data pointer
  :reset              Clear the tape and reset the data pointer
  :dis                Disassemble the last program
  :help               Show this help
`
)

// session holds the state kept between REPL lines.
type session struct {
	i      *vm.Instance
	last   *bf.Program
	out    *bufio.Writer
	errOut io.Writer
	logger *slog.Logger
}

func newSession(logger *slog.Logger, in io.Reader, out, errOut io.Writer) (*session, error) {
	w := bufio.NewWriter(out)
	i, err := vm.New(nil, nil, vm.Input(in), vm.Output(w))
	if err != nil {
		return nil, err
	}
	return &session{i: i, out: w, errOut: errOut, logger: logger}, nil
}

// eval runs a single line of input. It returns false when the session should
// end.
func (s *session) eval(line string) bool {
	defer s.out.Flush()

	line = strings.TrimSpace(line)
	switch line {
	case "":
		return true
	case "quit", "exit", ":quit":
		return false
	case "mem", "memory":
		if err := bf.DumpMemory(s.out, s.i, memRange); err != nil {
			fmt.Fprintln(s.errOut, err)
		}
		return true
	case ":reset":
		s.i.Reset()
		return true
	case ":dis":
		if s.last != nil {
			if err := asm.DisassembleAll(s.last.Code, s.last.Jumps, s.out); err != nil {
				fmt.Fprintln(s.errOut, err)
			}
		}
		return true
	case ":help":
		io.WriteString(s.out, replUsage)
		return true
	}

	p, err := bf.Compile(line)
	if err != nil {
		fmt.Fprintln(s.errOut, err)
		return true
	}
	if len(p.Code) == 0 {
		return true
	}
	s.last = p
	s.i.Load(p.Code, p.Jumps)
	err = s.i.Run()
	s.logger.Debug("run complete", "instructions", s.i.InstructionCount())
	if err != nil {
		s.out.Flush()
		fmt.Fprintln(s.errOut, err)
		return true
	}
	fmt.Fprintf(s.out, "Cell[DP=%d] = %d\n", s.i.DP, s.i.Cell())
	return true
}

func runREPL(logger *slog.Logger) error {
	fmt.Println(banner)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if histFile != "" {
		if f, err := os.Open(histFile); err == nil {
			ln.ReadHistory(f)
			f.Close()
		}
		// must also run on SIGTERM/SIGHUP
		atexit.Register(func() {
			f, err := os.Create(histFile)
			if err != nil {
				logger.Debug("cannot save history", "error", err)
				return
			}
			ln.WriteHistory(f)
			f.Close()
		})
	}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		atexit.Exit(130)
	}()

	s, err := newSession(logger, nil, os.Stdout, os.Stderr)
	if err != nil {
		return err
	}
	inputs, err := inputOptions(&iox.FlushReader{R: os.Stdin, W: s.out})
	if err != nil {
		return err
	}
	if err = s.i.SetOptions(inputs...); err != nil {
		return err
	}

	for {
		line, err := ln.Prompt(prompt)
		switch err {
		case nil:
		case liner.ErrPromptAborted:
			continue
		case io.EOF:
			fmt.Println()
			return nil
		default:
			return errors.Wrap(err, "prompt")
		}
		if !s.eval(line) {
			return nil
		}
		if strings.TrimSpace(line) != "" {
			ln.AppendHistory(line)
		}
	}
}
