// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcf

// A LazyRecord retains the raw shared and individual byte regions of
// a record and decodes fields on demand. Construction decodes the
// fixed 24-byte prefix (chrom, pos, qual and the counts) and computes
// one derived offset, the byte position of the allele list; the ID,
// allele, filter, INFO and FORMAT accessors re-scan the raw bytes on
// every call. This pays proportional cost for
// callers that only touch one or two fields of a record carrying many
// FORMAT samples or INFO entries.
type LazyRecord struct {
	header *Header

	shared []byte
	indiv  []byte

	alleleOffset int

	chrom    int32
	pos      uint32
	qualBits uint32
	nInfo    int
	nAllele  int
	nSample  int
	nFmt     int
}

func newLazyRecord(header *Header, shared, indiv []byte) (*LazyRecord, error) {
	b := newBufDecoder(shared)
	p := decodeSharedPrefix(b)
	b.readTypedString() // id; its encoded length determines alleleOffset
	if b.err != nil {
		return nil, b.err
	}
	return &LazyRecord{
		header:       header,
		shared:       shared,
		indiv:        indiv,
		alleleOffset: len(shared) - len(b.buf),
		chrom:        p.chrom,
		pos:          uint32(p.pos),
		qualBits:     p.qualBits,
		nInfo:        p.nInfo,
		nAllele:      p.nAllele,
		nSample:      p.nSample,
		nFmt:         p.nFmt,
	}, nil
}

func (r *LazyRecord) Chrom() (string, error) { return resolveChrom(r.header, r.chrom) }
func (r *LazyRecord) Pos() uint32            { return r.pos }

func (r *LazyRecord) ID() []byte {
	b := newBufDecoder(r.shared[sharedPrefixSize:])
	return b.readTypedString()
}

func (r *LazyRecord) Qual() (float32, bool) { return decodeQual(r.qualBits) }

func (r *LazyRecord) RefAllele() ([]byte, error) {
	b := newBufDecoder(r.shared[r.alleleOffset:])
	s := b.readTypedString()
	if b.err != nil {
		return nil, b.err
	}
	return s, nil
}

func (r *LazyRecord) AltAlleles() ([][]byte, error) {
	b := newBufDecoder(r.shared[r.alleleOffset:])
	b.readTypedString() // ref
	out := make([][]byte, 0, r.nAllele-1)
	for i := 0; i < r.nAllele-1; i++ {
		out = append(out, b.readTypedString())
	}
	if b.err != nil {
		return nil, b.err
	}
	return out, nil
}

// afterAlleles decodes past all n_allele allele strings and returns
// the byte offset into shared where the filter vector begins.
func (r *LazyRecord) afterAlleles() (int, error) {
	b := newBufDecoder(r.shared[r.alleleOffset:])
	for i := 0; i < r.nAllele; i++ {
		b.readTypedString()
	}
	if b.err != nil {
		return 0, b.err
	}
	return r.alleleOffset + (len(r.shared[r.alleleOffset:]) - len(b.buf)), nil
}

func (r *LazyRecord) Filters() ([]string, error) {
	off, err := r.afterAlleles()
	if err != nil {
		return nil, err
	}
	b := newBufDecoder(r.shared[off:])
	idxs := b.readTypedIntVec()
	if b.err != nil {
		return nil, b.err
	}
	return resolveFilters(r.header, idxs)
}

// afterFilters decodes past the filter vector and returns the byte
// offset into shared where the INFO list begins.
func (r *LazyRecord) afterFilters() (int, error) {
	off, err := r.afterAlleles()
	if err != nil {
		return 0, err
	}
	b := newBufDecoder(r.shared[off:])
	b.readTypedIntVec()
	if b.err != nil {
		return 0, b.err
	}
	return off + (len(r.shared[off:]) - len(b.buf)), nil
}

func (r *LazyRecord) Info(tag string) (TypedVec, bool, error) {
	idx, ok := r.header.InfoIdx(tag)
	if !ok {
		return TypedVec{}, false, nil
	}
	off, err := r.afterFilters()
	if err != nil {
		return TypedVec{}, false, err
	}
	b := newBufDecoder(r.shared[off:])
	for i := 0; i < r.nInfo; i++ {
		key := b.readTypedInt()
		val := b.readTypedVec()
		if b.err != nil {
			return TypedVec{}, false, b.err
		}
		if int(key) == idx {
			return val, true, nil
		}
	}
	return TypedVec{}, false, nil
}

func (r *LazyRecord) HasFlag(tag string) (bool, error) {
	_, ok, err := r.Info(tag)
	return ok, err
}

func (r *LazyRecord) Format(tag string) ([]TypedVec, bool, error) {
	idx, ok := r.header.FormatIdx(tag)
	if !ok {
		return nil, false, nil
	}
	b := newBufDecoder(r.indiv)
	for i := 0; i < r.nFmt; i++ {
		key := b.readTypedInt()
		desc := b.readTypeDescriptor()
		if b.err != nil {
			return nil, false, b.err
		}
		values := make([]TypedVec, r.nSample)
		for s := 0; s < r.nSample; s++ {
			values[s] = b.decodeValue(desc)
		}
		if b.err != nil {
			return nil, false, b.err
		}
		if int(key) == idx {
			return values, true, nil
		}
	}
	return nil, false, nil
}

func (r *LazyRecord) Genotypes() ([][]GenotypeAllele, bool, error) {
	values, ok, err := r.Format("GT")
	if err != nil || !ok {
		return nil, ok, err
	}
	return genotypesFromFormat(values), true, nil
}
