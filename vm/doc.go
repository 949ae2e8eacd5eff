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

// Package vm implements a tape machine for the eight instruction language
// commonly known as brainf*ck.
//
// The machine has a tape of TapeSize unsigned 8 bits cells, all initially
// zero, and a data pointer that starts in the middle of the tape. Programs are
// sequences of Opcode values, along with a JumpTable that maps each loop
// instruction to its matching counterpart. Package asm builds both from source
// text.
//
// Cell arithmetic wraps around (255 + 1 == 0), but the data pointer does not:
// moving it past either end of the tape is a fatal error (see BoundsError).
// Reading from an exhausted input sets the current cell to 0.
//
// Input and output are plain io.Reader and io.Writer values, configured with
// the Input and Output options. Input readers can be stacked with PushInput.
// The VM never flushes the output; if a buffered writer is used, flushing is up
// to the caller.
package vm
