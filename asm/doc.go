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

// Package asm provides utility functions to compile and disassemble VM code.
//
// Source text is turned into VM code in two steps: Tokenize converts the text
// into a sequence of opcodes, then Resolve builds the jump table that matches
// loop starts with loop ends.
//
// Supported instructions:
//
//	opcode	symbol	description
//	------	------	------------------------------------------------------------
//	0	>	move the data pointer one cell to the right
//	1	<	move the data pointer one cell to the left
//	2	+	increment the current cell (wraps from 255 to 0)
//	3	-	decrement the current cell (wraps from 0 to 255)
//	4	.	write the current cell to the output as a single byte
//	5	,	read a byte from the input into the current cell (0 on EOF)
//	6	[	if the current cell is 0, jump past the matching ]
//	7	]	if the current cell is not 0, jump back past the matching [
//
// Comments:
//
// Any character that is not an instruction symbol is a comment and is silently
// ignored by Tokenize. There is no other comment syntax, so punctuation like
// '.' or ',' in comments will be compiled as instructions.
//
// Errors:
//
// Resolve fails if loops are not properly nested. The error is an ErrAsm value
// listing the addresses (indices in the opcode sequence, not byte offsets in the
// source text) of the unmatched instructions:
//
//	[<>]++[		Unmatched '[' at index 6
//	[<>]++[]]	Unmatched ']' at index 8
//
// Disassembly:
//
// DisassembleAll writes one instruction per line, prefixed with its address.
// Loop instructions are followed by the address of their counterpart:
//
//	         0	+
//	         1	[ 3
//	         2	-
//	         3	] 1
package asm
