// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcf

import (
	"math"
)

// This file has small hand-rolled encoders used only by tests to
// build BCF byte fixtures in place, mirroring the on-disk format
// described in this package's decoders.

func descByte(kind uint8, n int) byte {
	if n >= 15 {
		panic("descByte: use descLarge for counts >= 15")
	}
	return byte(n<<4) | kind
}

// descLarge encodes a descriptor whose count is carried by a nested
// Int16 descriptor, for counts that don't fit in 4 bits.
func descLarge(kind uint8, n int) []byte {
	out := []byte{byte(15<<4) | kind}
	out = append(out, descByte(kindInt16, 1))
	out = append(out, byte(uint16(n)), byte(uint16(n)>>8))
	return out
}

func encTypedString(s string) []byte {
	if len(s) < 15 {
		out := []byte{descByte(kindString, len(s))}
		return append(out, s...)
	}
	out := descLarge(kindString, len(s))
	return append(out, s...)
}

func encTypedInt8(v int8) []byte {
	return []byte{descByte(kindInt8, 1), byte(v)}
}

func encMissingVec() []byte {
	return []byte{descByte(kindMissing, 0)}
}

func encTypedIntVecInt8(vs []int8) []byte {
	out := []byte{descByte(kindInt8, len(vs))}
	for _, v := range vs {
		out = append(out, byte(v))
	}
	return out
}

func encTypedIntVecInt32(vs []int32) []byte {
	out := []byte{descByte(kindInt32, len(vs))}
	for _, v := range vs {
		out = appendLE32(out, uint32(v))
	}
	return out
}

func encTypedFloatVec(vs []float32) []byte {
	out := []byte{descByte(kindFloat32, len(vs))}
	for _, v := range vs {
		out = appendLE32(out, math.Float32bits(v))
	}
	return out
}

func encTypedStringVec(vs []string) []byte {
	// A string vector on the wire is a single typed value whose
	// payload is the comma-joined values; BCF encodes a Number>1
	// String field this way, same as a scalar string with embedded
	// separators.
	joined := ""
	for i, v := range vs {
		if i > 0 {
			joined += ","
		}
		joined += v
	}
	return encTypedString(joined)
}

func appendLE32(b []byte, v uint32) []byte {
	return append(b, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
}

func appendLE32Int(b []byte, v int32) []byte {
	return appendLE32(b, uint32(v))
}

func encQualBits(bits uint32) []byte {
	return appendLE32(nil, bits)
}

// sharedFixed encodes the 24-byte fixed prefix of a record's shared
// region.
func sharedFixed(chrom, pos, rlen int32, qualBits uint32, nInfo, nAllele, nSample, nFmt int) []byte {
	var b []byte
	b = appendLE32Int(b, chrom)
	b = appendLE32Int(b, pos)
	b = appendLE32Int(b, rlen)
	b = appendLE32(b, qualBits)
	b = append(b, byte(nInfo), byte(nInfo>>8))
	b = append(b, byte(nAllele), byte(nAllele>>8))
	b = append(b, byte(nSample), byte(nSample>>8), byte(nSample>>16))
	b = append(b, byte(nFmt))
	return b
}

// framedRecord prepends the l_shared/l_indiv length prefix.
func framedRecord(shared, indiv []byte) []byte {
	var b []byte
	b = appendLE32(b, uint32(len(shared)))
	b = appendLE32(b, uint32(len(indiv)))
	b = append(b, shared...)
	b = append(b, indiv...)
	return b
}

// framedHeader prepends the 5-byte magic+version and the header
// length prefix to a text VCF header block, appending the trailing
// NUL that the wire format counts in the header length.
func framedHeader(text string) []byte {
	hdr := append([]byte(text), 0)
	var b []byte
	b = append(b, 'B', 'C', 'F', 2, 2)
	b = appendLE32(b, uint32(len(hdr)))
	b = append(b, hdr...)
	return b
}

const missingQualBits = floatMissingBits
