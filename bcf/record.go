// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcf

import "math"

// A Record is one variant call. EagerRecord and LazyRecord both
// implement it; they differ only in when they pay the cost of
// decoding a field.
//
// Every accessor that can discover a malformed encoding or an
// out-of-range header reference returns a non-nil error; an
// EagerRecord, having already decoded and validated everything at
// construction, never returns a non-nil error from these, but the
// interface is shared so callers can use either kind interchangeably.
type Record interface {
	// Chrom is the contig name this record's chrom index resolves to.
	Chrom() (string, error)
	// Pos is the 0-based position.
	Pos() uint32
	// ID is the record's ID column; empty means absent.
	ID() []byte
	RefAllele() ([]byte, error)
	AltAlleles() ([][]byte, error)
	// Qual is the quality score; the bool is false if it's absent.
	Qual() (float32, bool)
	Filters() ([]string, error)
	// Info looks up an INFO field by tag; the bool is false if the
	// tag isn't present on this record.
	Info(tag string) (TypedVec, bool, error)
	// Format looks up a FORMAT field by tag, one TypedVec per sample.
	Format(tag string) ([]TypedVec, bool, error)
	HasFlag(tag string) (bool, error)
	// Genotypes decodes the GT FORMAT field, one allele-call list per
	// sample (diploid calls carry two, haploid calls one); the bool is
	// false if this record has no GT field.
	Genotypes() ([][]GenotypeAllele, bool, error)
}

// infoField is one decoded (idx, value) pair from the shared region's
// INFO list, in on-disk order.
type infoField struct {
	Idx   int
	Value TypedVec
}

// formatField is one decoded FORMAT field spanning all samples, in
// on-disk order.
type formatField struct {
	Idx    int
	Values []TypedVec
}

// sharedPrefix is the fixed 24-byte prefix common to every record's
// shared region.
type sharedPrefix struct {
	chrom    int32
	pos      int32
	rlen     int32
	qualBits uint32
	nInfo    int
	nAllele  int
	nSample  int
	nFmt     int
}

const sharedPrefixSize = 24

func decodeSharedPrefix(b *bufDecoder) sharedPrefix {
	var p sharedPrefix
	p.chrom = b.i32()
	p.pos = b.i32()
	p.rlen = b.i32()
	p.qualBits = b.u32()
	p.nInfo = int(b.i16())
	p.nAllele = int(b.i16())
	p.nSample = int(b.u24())
	p.nFmt = int(b.u8())
	return p
}

// decodeQual splits a raw qual bit pattern into a value and a
// presence flag. Only the exact BCF "missing" NaN bit pattern means
// absent; every other pattern, including other NaNs, is present and
// is returned bit-for-bit.
func decodeQual(bits uint32) (float32, bool) {
	if bits == floatMissingBits {
		return 0, false
	}
	return math.Float32frombits(bits), true
}

func resolveChrom(h *Header, idx int32) (string, error) {
	name, ok := h.ContigName(int(idx))
	if !ok {
		return "", errf(ErrIndexOutOfBounds, "chrom index %d not declared in header", idx)
	}
	return name, nil
}

func resolveFilters(h *Header, idxs []int32) ([]string, error) {
	if len(idxs) == 0 {
		return nil, nil
	}
	out := make([]string, len(idxs))
	for i, idx := range idxs {
		name, ok := h.FilterName(int(idx))
		if !ok {
			return nil, errf(ErrIndexOutOfBounds, "filter index %d not declared in header", idx)
		}
		out[i] = name
	}
	return out, nil
}

// genotypesFromFormat reinterprets a decoded GT FORMAT field's raw
// per-sample integer vectors as genotype allele calls: every integer
// in a sample's vector is its own allele call (two for a diploid
// call, one for haploid), not just the first.
func genotypesFromFormat(values []TypedVec) [][]GenotypeAllele {
	out := make([][]GenotypeAllele, len(values))
	for i, v := range values {
		if len(v.Int) == 0 {
			out[i] = []GenotypeAllele{{Kind: GTUnphasedMissing}}
			continue
		}
		calls := make([]GenotypeAllele, len(v.Int))
		for j, raw := range v.Int {
			calls[j] = decodeGenotypeAllele(raw)
		}
		out[i] = calls
	}
	return out
}
