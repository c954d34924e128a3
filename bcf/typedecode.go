// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcf

import (
	"bytes"
	"math"
)

// This file is the type codec: the one-byte type descriptor that
// introduces every typed value in a BCF record, and the handful of
// typed primitives built on top of it.

// readTypeDescriptor reads one type descriptor. The low 4 bits give
// the element kind; the high 4 bits give the element count, unless
// they equal 15, in which case the real count follows as a nested
// typed integer. The nested descriptor is read with the same decoder
// one level deep only — a nested descriptor that itself uses the
// sentinel count is a decode error, not a further recursion.
func (b *bufDecoder) readTypeDescriptor() typeDescriptor {
	return b.readTypeDescriptorDepth(0)
}

func (b *bufDecoder) readTypeDescriptorDepth(depth int) typeDescriptor {
	if b.err != nil {
		return typeDescriptor{}
	}
	raw := b.u8()
	if b.err != nil {
		return typeDescriptor{}
	}
	kind := raw & 0x0f
	if kind == kindReserved4 || kind == kindReserved6 {
		b.fail(errf(ErrMalformedTypeDescriptor, "reserved type kind %d", kind))
		return typeDescriptor{}
	}
	n := int(raw >> 4)
	if n == 15 {
		if depth > 0 {
			b.fail(errf(ErrMalformedTypeDescriptor, "nested element count descriptor uses the sentinel count itself"))
			return typeDescriptor{}
		}
		nested := b.readTypeDescriptorDepth(depth + 1)
		if b.err != nil {
			return typeDescriptor{}
		}
		if nested.numElements != 1 || !isIntKind(nested.kind) {
			b.fail(errf(ErrMalformedTypeDescriptor, "element count descriptor does not describe a single integer"))
			return typeDescriptor{}
		}
		count := b.readRawInt(nested.kind)
		if b.err != nil {
			return typeDescriptor{}
		}
		if count < 0 {
			b.fail(errf(ErrMalformedTypeDescriptor, "negative element count %d", count))
			return typeDescriptor{}
		}
		n = int(count)
	}
	return typeDescriptor{kind: kind, numElements: n}
}

// readRawInt reads one on-disk integer of the given kind's width,
// sign-extended into an int32, with no missing/end-of-vector
// remapping. Used both for type-descriptor element counts and for
// readTypedInt, neither of which carries missing-value semantics.
func (b *bufDecoder) readRawInt(kind uint8) int32 {
	switch kind {
	case kindInt8:
		return int32(b.i8())
	case kindInt16:
		return int32(b.i16())
	case kindInt32:
		return b.i32()
	default:
		b.fail(errf(ErrMalformedTypeDescriptor, "not an integer kind: %d", kind))
		return 0
	}
}

// readTypedString reads a type descriptor that must describe a
// string, then returns its bytes verbatim. A zero-length string is a
// legal, empty result (the representation of an absent ID).
func (b *bufDecoder) readTypedString() []byte {
	desc := b.readTypeDescriptor()
	if b.err != nil {
		return nil
	}
	if desc.kind != kindString {
		b.fail(errf(ErrMalformedTypeDescriptor, "expected string type, got kind %d", desc.kind))
		return nil
	}
	return b.bytes(desc.numElements)
}

// readTypedInt reads a type descriptor that must describe exactly
// one integer and returns it widened to int32. Used to decode FORMAT
// field keys and INFO pair keys, neither of which is subject to
// missing-value semantics.
func (b *bufDecoder) readTypedInt() int32 {
	desc := b.readTypeDescriptor()
	if b.err != nil {
		return 0
	}
	if desc.numElements != 1 || !isIntKind(desc.kind) {
		b.fail(errf(ErrMalformedTypeDescriptor, "expected a single integer, got kind %d count %d", desc.kind, desc.numElements))
		return 0
	}
	return b.readRawInt(desc.kind)
}

// decodeIntVec reads n raw integers of the given kind and widens
// them to int32, remapping each width's own missing sentinel to the
// canonical widened missing value and stopping at the first
// end-of-vector sentinel (the remaining elements, if any, are padding
// and are dropped).
func (b *bufDecoder) decodeIntVec(kind uint8, n int) []int32 {
	missing, eov := intSentinels(kind)
	out := make([]int32, 0, n)
	for i := 0; i < n; i++ {
		raw := b.readRawInt(kind)
		if b.err != nil {
			return nil
		}
		if raw == eov {
			break
		}
		if raw == missing {
			out = append(out, intMissing)
			continue
		}
		out = append(out, raw)
	}
	return out
}

// readTypedIntVec reads a type descriptor and returns its elements as
// a widened int32 list. A Missing descriptor yields an empty list.
func (b *bufDecoder) readTypedIntVec() []int32 {
	desc := b.readTypeDescriptor()
	if b.err != nil {
		return nil
	}
	if desc.kind == kindMissing {
		return nil
	}
	if !isIntKind(desc.kind) {
		b.fail(errf(ErrMalformedTypeDescriptor, "expected an integer vector, got kind %d", desc.kind))
		return nil
	}
	return b.decodeIntVec(desc.kind, desc.numElements)
}

// decodeFloatVec reads n raw float32s, stopping at the first
// end-of-vector sentinel. The missing-float sentinel is kept
// verbatim: floats carry their own NaN-based "missing" bit pattern
// through unchanged, same as any other value.
func (b *bufDecoder) decodeFloatVec(n int) []float32 {
	out := make([]float32, 0, n)
	for i := 0; i < n; i++ {
		bits := b.u32()
		if b.err != nil {
			return nil
		}
		if bits == floatEOVBits {
			break
		}
		out = append(out, math.Float32frombits(bits))
	}
	return out
}

// readTypedVec reads a full typed value and dispatches on its kind:
// integers widen to int32, floats decode verbatim, strings keep
// their bytes but are split on commas into Strings, and Missing
// yields the Missing variant
// regardless of what element count it carries.
func (b *bufDecoder) readTypedVec() TypedVec {
	desc := b.readTypeDescriptor()
	if b.err != nil {
		return TypedVec{}
	}
	return b.decodeValue(desc)
}

// decodeValue decodes one value of an already-read type descriptor.
// It's split out from readTypedVec because the indiv region shares a
// single descriptor across every sample's value for a FORMAT field,
// reading it once rather than once per sample.
func (b *bufDecoder) decodeValue(desc typeDescriptor) TypedVec {
	switch desc.kind {
	case kindMissing:
		return TypedVec{Kind: ValueMissing}
	case kindInt8, kindInt16, kindInt32:
		ints := b.decodeIntVec(desc.kind, desc.numElements)
		if b.err != nil {
			return TypedVec{}
		}
		return TypedVec{Kind: ValueInt, Int: ints}
	case kindFloat32:
		floats := b.decodeFloatVec(desc.numElements)
		if b.err != nil {
			return TypedVec{}
		}
		return TypedVec{Kind: ValueFloat, Float: floats}
	case kindString:
		s := b.bytes(desc.numElements)
		if b.err != nil {
			return TypedVec{}
		}
		return TypedVec{Kind: ValueString, Strings: splitStrings(s)}
	default:
		b.fail(errf(ErrMalformedTypeDescriptor, "unknown type kind %d", desc.kind))
		return TypedVec{}
	}
}

// splitStrings splits a typed String value's raw payload on commas,
// the on-disk encoding of a multi-valued String field.
func splitStrings(s []byte) [][]byte {
	if s == nil {
		return nil
	}
	return bytes.Split(s, []byte(","))
}
