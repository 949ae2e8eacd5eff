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
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/db47h/bfi/internal/iox"
	"github.com/db47h/bfi/lang/bf"
	"github.com/db47h/bfi/vm"
	"github.com/pkg/errors"
	"github.com/tebeka/atexit"
	"golang.org/x/term"
)

type fileList []string

func (f *fileList) String() string     { return "" }
func (f *fileList) Set(s string) error { *f = append(*f, s); return nil }
func (f *fileList) Get() interface{}   { return *f }

var (
	noRawIO   bool
	debug     bool
	memRadius int
	logFile   string
	histFile  string
	withFiles fileList
)

func defaultHistory() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bfi_history")
}

func setupIO(logger *slog.Logger) (raw bool) {
	if noRawIO || !term.IsTerminal(int(os.Stdin.Fd())) {
		return false
	}
	tearDown, err := setRawIO()
	if err != nil {
		logger.Debug("raw terminal IO not available", "error", err)
		return false
	}
	atexit.Register(tearDown)
	return true
}

// inputOptions returns the VM input options: stdin, with -with files stacked
// on top of it. Each file is closed by the VM when it reaches EOF.
func inputOptions(stdin io.Reader) ([]vm.Option, error) {
	opts := []vm.Option{vm.Input(stdin)}
	// append -with files to input stack in reverse order so that they load
	// in order of appearance on the command line.
	for n := len(withFiles) - 1; n >= 0; n-- {
		f, err := os.Open(withFiles[n])
		if err != nil {
			return nil, errors.Wrap(err, "-with")
		}
		opts = append(opts, vm.Input(f))
	}
	return opts, nil
}

func runFile(logger *slog.Logger, fileName string) (i *vm.Instance, err error) {
	p, err := bf.Load(fileName)
	if err != nil {
		return nil, err
	}
	logger.Debug("program loaded", "file", fileName, "instructions", len(p.Code), "loops", p.Loops())

	stdout := bufio.NewWriter(os.Stdout)
	atexit.Register(func() { stdout.Flush() })

	var stdin io.Reader = os.Stdin
	if setupIO(logger) {
		stdin = &rawReader{r: os.Stdin}
	}
	return execute(logger, p, stdin, stdout)
}

// execute runs p with the given I/O. Program output is flushed before
// returning, including on error.
func execute(logger *slog.Logger, p *bf.Program, stdin io.Reader, stdout *bufio.Writer) (i *vm.Instance, err error) {
	opts, err := inputOptions(&iox.FlushReader{R: stdin, W: stdout})
	if err != nil {
		return nil, err
	}
	opts = append(opts, vm.Output(stdout))

	i, err = p.NewVM(opts...)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	err = i.Run()
	logger.Debug("run complete", "instructions", i.InstructionCount(), "elapsed", time.Since(start))
	if err != nil {
		stdout.Flush()
		return i, errors.WithStack(err)
	}

	stdout.WriteByte('\n')
	if memRadius > 0 {
		if err = bf.DumpMemory(stdout, i, memRadius); err != nil {
			return i, err
		}
	}
	return i, errors.Wrap(stdout.Flush(), "output")
}

func atExit(i *vm.Instance, err error) {
	if err == nil {
		atexit.Exit(0)
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		atexit.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "\n%+v\n", err)
	if i != nil {
		if code := i.Code(); i.PC < len(code) {
			fmt.Fprintf(os.Stderr, "PC: %v (%v), DP: %v, Cell: %v\n", i.PC, code[i.PC], i.DP, i.Cell())
		} else {
			fmt.Fprintf(os.Stderr, "PC: %v, DP: %v, Cell: %v\n", i.PC, i.DP, i.Cell())
		}
	}
	atexit.Exit(1)
}

func main() {
	flag.BoolVar(&noRawIO, "noraw", false, "disable raw terminal IO")
	flag.BoolVar(&debug, "debug", false, "enable debug diagnostics")
	flag.IntVar(&memRadius, "mem", 0, "dump `radius` cells on each side of the data pointer after running a file")
	flag.StringVar(&logFile, "log", "", "also write log records to `filename`, in JSON format")
	flag.StringVar(&histFile, "history", defaultHistory(), "REPL history `filename`")
	flag.Var(&withFiles, "with", "Add `filename` to the input list (can be specified multiple times)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [file]\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() > 1 {
		flag.Usage()
		atexit.Exit(2)
	}

	logger, closeLog, err := newLogger(os.Stderr, debug, logFile)
	if err != nil {
		atExit(nil, err)
	}
	atexit.Register(closeLog)

	var i *vm.Instance
	if flag.NArg() == 1 {
		i, err = runFile(logger, flag.Arg(0))
	} else {
		err = runREPL(logger)
	}
	atExit(i, err)
}
