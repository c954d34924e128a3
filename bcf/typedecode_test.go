// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcf

import (
	"math"
	"testing"
)

func TestReadTypeDescriptorSimple(t *testing.T) {
	b := newBufDecoder([]byte{descByte(kindInt32, 3)})
	d := b.readTypeDescriptor()
	if b.err != nil {
		t.Fatalf("unexpected error: %v", b.err)
	}
	if d.kind != kindInt32 || d.numElements != 3 {
		t.Fatalf("got %+v", d)
	}
}

func TestReadTypeDescriptorNestedCount(t *testing.T) {
	b := newBufDecoder(descLarge(kindString, 20))
	d := b.readTypeDescriptor()
	if b.err != nil {
		t.Fatalf("unexpected error: %v", b.err)
	}
	if d.kind != kindString || d.numElements != 20 {
		t.Fatalf("got %+v", d)
	}
}

func TestReadTypeDescriptorDoubleNestedIsError(t *testing.T) {
	// A nested descriptor that itself uses the sentinel count must
	// fail, not recurse further.
	inner := descLarge(kindInt8, 5)
	outer := append([]byte{byte(15<<4) | kindInt32}, inner...)
	b := newBufDecoder(outer)
	b.readTypeDescriptor()
	if b.err == nil {
		t.Fatal("expected an error")
	}
	if b.err.Kind != ErrMalformedTypeDescriptor {
		t.Fatalf("got kind %v", b.err.Kind)
	}
}

func TestReadTypeDescriptorReservedKind(t *testing.T) {
	for _, kind := range []uint8{kindReserved4, kindReserved6} {
		b := newBufDecoder([]byte{descByte(kind, 1)})
		b.readTypeDescriptor()
		if b.err == nil || b.err.Kind != ErrMalformedTypeDescriptor {
			t.Fatalf("kind %d: expected malformed type descriptor error, got %v", kind, b.err)
		}
	}
}

func TestReadTypedStringEmpty(t *testing.T) {
	b := newBufDecoder(encTypedString(""))
	s := b.readTypedString()
	if b.err != nil {
		t.Fatalf("unexpected error: %v", b.err)
	}
	if len(s) != 0 {
		t.Fatalf("got %q, want empty", s)
	}
}

func TestReadTypedStringWrongKind(t *testing.T) {
	b := newBufDecoder(encTypedInt8(1))
	b.readTypedString()
	if b.err == nil || b.err.Kind != ErrMalformedTypeDescriptor {
		t.Fatalf("got %v", b.err)
	}
}

func TestDecodeIntVecWidening(t *testing.T) {
	// Int8 -128 is that width's missing sentinel; it must widen to
	// the canonical int32 missing value, not the literal -128.
	b := newBufDecoder(encTypedIntVecInt8([]int8{1, -128, 3}))
	v := b.readTypedVec()
	if b.err != nil {
		t.Fatalf("unexpected error: %v", b.err)
	}
	want := []int32{1, intMissing, 3}
	if len(v.Int) != len(want) {
		t.Fatalf("got %v, want %v", v.Int, want)
	}
	for i := range want {
		if v.Int[i] != want[i] {
			t.Fatalf("got %v, want %v", v.Int, want)
		}
	}
}

func TestDecodeIntVecStripsTrailingEOV(t *testing.T) {
	// -127 is Int8's end-of-vector sentinel; once hit, no further
	// elements are decoded.
	raw := []byte{descByte(kindInt8, 4), 1, 2, byte(int8(-127)), byte(int8(-127))}
	b := newBufDecoder(raw)
	v := b.readTypedVec()
	if b.err != nil {
		t.Fatalf("unexpected error: %v", b.err)
	}
	if len(v.Int) != 2 || v.Int[0] != 1 || v.Int[1] != 2 {
		t.Fatalf("got %v, want [1 2]", v.Int)
	}
}

func TestReadTypedVecMissing(t *testing.T) {
	b := newBufDecoder(encMissingVec())
	v := b.readTypedVec()
	if b.err != nil {
		t.Fatalf("unexpected error: %v", b.err)
	}
	if v.Kind != ValueMissing {
		t.Fatalf("got %+v, want Missing", v)
	}
}

func TestReadTypedVecStringSplitsOnComma(t *testing.T) {
	b := newBufDecoder(encTypedStringVec([]string{"String1", "String2"}))
	v := b.readTypedVec()
	if b.err != nil {
		t.Fatalf("unexpected error: %v", b.err)
	}
	if len(v.Strings) != 2 || string(v.Strings[0]) != "String1" || string(v.Strings[1]) != "String2" {
		t.Fatalf("got %v", v.Strings)
	}
}

func TestReadTypedVecFloatVerbatim(t *testing.T) {
	b := newBufDecoder(encTypedFloatVec([]float32{0.5, 1.0}))
	v := b.readTypedVec()
	if b.err != nil {
		t.Fatalf("unexpected error: %v", b.err)
	}
	if len(v.Float) != 2 || v.Float[0] != 0.5 || v.Float[1] != 1.0 {
		t.Fatalf("got %v", v.Float)
	}
}

func TestDecodeQualMissingBitPattern(t *testing.T) {
	_, ok := decodeQual(floatMissingBits)
	if ok {
		t.Fatal("expected absent")
	}
}

func TestDecodeQualOtherNaNIsPresent(t *testing.T) {
	const otherNaN = 0x7FC00000
	v, ok := decodeQual(otherNaN)
	if !ok {
		t.Fatal("expected present")
	}
	if bits := math.Float32bits(v); bits != otherNaN {
		t.Fatalf("got bits %#x, want %#x", bits, otherNaN)
	}
}
