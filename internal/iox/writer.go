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

// Package iox holds I/O helpers shared by the bfi packages.
package iox

import (
	"io"

	"github.com/pkg/errors"
)

// ErrWriter is a simple wrapper to track io errors. Once a write fails, Write
// will keep returning the same error without writing anything.
type ErrWriter struct {
	w   io.Writer
	Err error
}

func (w *ErrWriter) Write(p []byte) (n int, err error) {
	if w.Err != nil {
		return 0, w.Err
	}
	n, err = w.w.Write(p)
	if err != nil {
		w.Err = errors.Wrap(err, "write failed")
	}
	return n, w.Err
}

// NewErrWriter returns a new ErrWriter.
func NewErrWriter(w io.Writer) *ErrWriter {
	return &ErrWriter{w, nil}
}

// FlushReader wraps an io.Reader and calls Flush on a buffered writer before
// each Read. This is used to make sure that a prompt written by a program is
// visible before the program blocks waiting for input.
type FlushReader struct {
	R io.Reader
	W interface {
		Flush() error
	}
}

func (f *FlushReader) Read(p []byte) (int, error) {
	if f.W != nil {
		if err := f.W.Flush(); err != nil {
			return 0, errors.Wrap(err, "flush failed")
		}
	}
	return f.R.Read(p)
}
