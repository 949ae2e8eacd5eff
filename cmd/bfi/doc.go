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

// The bfi command line tool runs programs written for the VM in package
// github.com/db47h/bfi/vm.
//
// Usage:
//
//	bfi [flags] [file]
//
// With a file argument, bfi compiles and runs the file, then prints a new line.
// Without, it starts an interactive session where each line is compiled and
// run on the same VM: the tape and data pointer are kept from one line to the
// next.
//
// Flags:
//
//	-debug
//		  enable debug diagnostics
//	-history filename
//		  REPL history file (default "~/.bfi_history")
//	-log filename
//		  also write log records to filename, in JSON format
//	-mem radius
//		  dump radius cells on each side of the data pointer after running a file
//	-noraw
//		  disable raw terminal IO
//	-with filename
//		  Add filename to the input list (can be specified multiple times)
//
// -debug: logs load and run statistics, and prints errors along with a stack
// trace and the VM state.
//
// -noraw: when running a file, bfi switches the terminal to non-canonical mode
// unless stdin has been redirected, so that the program receives keystrokes as
// they are typed instead of whole lines. In this mode, CTRL-D is reported to
// the program as EOF. This flag disables this behavior.
//
// -with: before reading from stdin, the program reads the contents of the
// specified files. If specified multiple times, files will be fed to the
// program in order of appearance on the command line.
//
// Interactive commands:
//
//	quit, exit, :quit	leave bfi
//	mem, memory		dump memory around the data pointer
//	:reset			clear the tape and reset the data pointer
//	:dis			disassemble the last program
//	:help			show help
//
// Exit status is 0 on success, 1 if compilation or execution failed and 2 on
// usage errors.
package main
