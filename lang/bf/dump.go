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

package bf

import (
	"fmt"
	"io"

	"github.com/db47h/bfi/internal/iox"
	"github.com/db47h/bfi/vm"
)

const colWidth = 7

// DumpMemory writes a snapshot of the VM tape around the data pointer to w,
// radius cells on each side. The output is made of three rows: cell
// addresses, cell values, and a marker under the current cell:
//
//	Addr:  14998  14999  15000  15001  15002
//	Data:      0      0      7      0      0
//	Ptrs:                ^^^^^
func DumpMemory(w io.Writer, i *vm.Instance, radius int) error {
	ew := iox.NewErrWriter(w)
	start, cells := i.Window(radius)

	io.WriteString(ew, "Addr:")
	for n := range cells {
		fmt.Fprintf(ew, "%*d", colWidth, start+n)
	}
	io.WriteString(ew, "\nData:")
	for _, c := range cells {
		fmt.Fprintf(ew, "%*d", colWidth, c)
	}
	io.WriteString(ew, "\nPtrs:")
	for n := range cells {
		if start+n == i.DP {
			io.WriteString(ew, "  ^^^^^")
		} else {
			io.WriteString(ew, "       ")
		}
	}
	ew.Write([]byte{'\n'})
	return ew.Err
}
