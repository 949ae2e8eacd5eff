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

import (
	"io"
)

type byteWriterWrapper struct {
	io.Writer
	b [1]byte
}

func (w *byteWriterWrapper) WriteByte(c byte) error {
	w.b[0] = c
	_, err := w.Writer.Write(w.b[:])
	return err
}

// newWriter returns either w if it implements io.ByteWriter or wraps it up into
// a byteWriterWrapper
func newWriter(w io.Writer) io.ByteWriter {
	switch ww := w.(type) {
	case nil:
		return nil
	case io.ByteWriter:
		return ww
	default:
		return &byteWriterWrapper{Writer: w}
	}
}

// byteReaderWrapper wraps a basic reader into a io.ByteReader and io.Closer. It
// never reads more than one byte at a time from the underlying reader, so that
// no input is lost when the reader is shared with other consumers (i.e.
// os.Stdin).
type byteReaderWrapper struct {
	io.Reader
	b [1]byte
}

func (r *byteReaderWrapper) ReadByte() (byte, error) {
	for {
		n, err := r.Reader.Read(r.b[:])
		if n > 0 {
			return r.b[0], nil
		}
		if err != nil {
			return 0, err
		}
	}
}

func (r *byteReaderWrapper) Close() error {
	if c, ok := r.Reader.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func newByteReader(r io.Reader) io.ByteReader {
	switch rr := r.(type) {
	case nil:
		return nil
	case io.ByteReader:
		return rr
	default:
		return &byteReaderWrapper{Reader: r}
	}
}

type multiByteReader struct {
	readers []io.ByteReader
}

func (mr *multiByteReader) ReadByte() (c byte, err error) {
	for len(mr.readers) > 0 {
		c, err = mr.readers[0].ReadByte()
		if err != io.EOF {
			return
		}
		// discard the reader and optionally close it
		if cl, ok := mr.readers[0].(io.Closer); ok {
			cl.Close()
		}
		mr.readers = mr.readers[1:]
	}
	return 0, io.EOF
}

func (mr *multiByteReader) pushReader(r io.Reader) {
	mr.readers = append([]io.ByteReader{newByteReader(r)}, mr.readers...)
}

// PushInput sets r as the current input reader for the VM. When this reader
// reaches EOF, the previously pushed reader will be used. Readers that
// implement io.Closer are closed when they reach EOF.
func (i *Instance) PushInput(r io.Reader) {
	if r == nil {
		return
	}
	// dont use a multi reader unless necessary
	switch in := i.input.(type) {
	case nil: // no input yet, single assign
		i.input = newByteReader(r)
	case *multiByteReader:
		in.pushReader(r)
	default:
		i.input = &multiByteReader{[]io.ByteReader{newByteReader(r), i.input}}
	}
}
