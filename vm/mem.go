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

// Window returns a copy of the tape cells around the data pointer, radius cells
// on each side, clipped to the tape boundaries. start is the address of the
// first returned cell.
func (i *Instance) Window(radius int) (start int, cells []byte) {
	switch {
	case radius < 0:
		radius = 0
	case radius > len(i.Mem):
		radius = len(i.Mem)
	}
	start = i.DP - radius
	if start < 0 {
		start = 0
	}
	end := i.DP + radius + 1
	if end > len(i.Mem) {
		end = len(i.Mem)
	}
	cells = make([]byte, end-start)
	copy(cells, i.Mem[start:end])
	return start, cells
}
