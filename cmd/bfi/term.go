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
	"bytes"
	"io"
)

const ctrlD = 4

// rawReader reports CTRL-D as EOF. In raw tty mode, the terminal driver no
// longer does it for us. Bytes following a CTRL-D are returned by the
// next calls to Read.
type rawReader struct {
	r    io.Reader
	rest []byte
	eof  bool
}

func (r *rawReader) Read(p []byte) (n int, err error) {
	if r.eof {
		r.eof = false
		return 0, io.EOF
	}
	if len(r.rest) > 0 {
		n = copy(p, r.rest)
		r.rest = r.rest[n:]
	} else {
		n, err = r.r.Read(p)
	}
	if k := bytes.IndexByte(p[:n], ctrlD); k >= 0 {
		r.rest = append(append([]byte(nil), p[k+1:n]...), r.rest...)
		if k == 0 {
			return 0, io.EOF
		}
		r.eof = true
		return k, nil
	}
	return n, err
}
