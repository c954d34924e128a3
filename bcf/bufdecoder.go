// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcf

import (
	"encoding/binary"
	"math"
)

// A bufDecoder is a cursor over an in-memory byte slice, used to pull
// the little-endian primitives BCF is built from off the front of a
// buffer. Every decoded BCF byte stream is untrusted input, so unlike
// a cursor over a local trace file, reads that run off the end of
// the buffer don't panic: they set a sticky error that every later
// read on the same decoder short-circuits, so a whole record or
// header line can be decoded and checked for failure once at the
// end.
type bufDecoder struct {
	buf []byte
	err *Error
}

func newBufDecoder(buf []byte) *bufDecoder {
	return &bufDecoder{buf: buf}
}

func (b *bufDecoder) fail(err *Error) {
	if b.err == nil {
		b.err = err
	}
	b.buf = nil
}

func (b *bufDecoder) need(n int) bool {
	if b.err != nil {
		return false
	}
	if len(b.buf) < n {
		b.fail(errf(ErrTruncatedInput, "need %d bytes, have %d", n, len(b.buf)))
		return false
	}
	return true
}

func (b *bufDecoder) skip(n int) {
	if !b.need(n) {
		return
	}
	b.buf = b.buf[n:]
}

func (b *bufDecoder) bytes(n int) []byte {
	if !b.need(n) {
		return nil
	}
	x := b.buf[:n:n]
	b.buf = b.buf[n:]
	return x
}

func (b *bufDecoder) u8() uint8 {
	if !b.need(1) {
		return 0
	}
	x := b.buf[0]
	b.buf = b.buf[1:]
	return x
}

func (b *bufDecoder) i8() int8 { return int8(b.u8()) }

func (b *bufDecoder) u16() uint16 {
	if !b.need(2) {
		return 0
	}
	x := binary.LittleEndian.Uint16(b.buf)
	b.buf = b.buf[2:]
	return x
}

func (b *bufDecoder) i16() int16 { return int16(b.u16()) }

func (b *bufDecoder) u24() uint32 {
	if !b.need(3) {
		return 0
	}
	x := uint32(b.buf[0]) | uint32(b.buf[1])<<8 | uint32(b.buf[2])<<16
	b.buf = b.buf[3:]
	return x
}

func (b *bufDecoder) u32() uint32 {
	if !b.need(4) {
		return 0
	}
	x := binary.LittleEndian.Uint32(b.buf)
	b.buf = b.buf[4:]
	return x
}

func (b *bufDecoder) i32() int32 { return int32(b.u32()) }

func (b *bufDecoder) f32() float32 { return math.Float32frombits(b.u32()) }
