// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcf

// An EagerRecord fully decodes every field of a record at
// construction, including every INFO and FORMAT entry, and stores
// them as owned values. It costs more per record to build than a
// LazyRecord, but every accessor afterward is a plain field read.
type EagerRecord struct {
	header *Header

	chrom string
	pos   uint32

	id  []byte
	ref []byte
	alt [][]byte

	qual   float32
	qualOK bool

	filters []string

	info      []infoField
	infoByIdx map[int]TypedVec

	format      []formatField
	formatByIdx map[int][]TypedVec

	genotypes    [][]GenotypeAllele
	hasGenotypes bool
}

func newEagerRecord(header *Header, shared, indiv []byte) (*EagerRecord, error) {
	sb := newBufDecoder(shared)
	p := decodeSharedPrefix(sb)

	chrom, err := resolveChrom(header, p.chrom)
	if err != nil {
		return nil, err
	}
	qual, qualOK := decodeQual(p.qualBits)

	id := sb.readTypedString()
	alleles := make([][]byte, p.nAllele)
	for i := range alleles {
		alleles[i] = sb.readTypedString()
	}
	var ref []byte
	var alt [][]byte
	if len(alleles) > 0 {
		ref = alleles[0]
		alt = alleles[1:]
	}

	filterIdx := sb.readTypedIntVec()
	if sb.err != nil {
		return nil, sb.err
	}
	filters, err := resolveFilters(header, filterIdx)
	if err != nil {
		return nil, err
	}

	r := &EagerRecord{
		header:      header,
		chrom:       chrom,
		pos:         uint32(p.pos),
		id:          id,
		ref:         ref,
		alt:         alt,
		qual:        qual,
		qualOK:      qualOK,
		filters:     filters,
		infoByIdx:   map[int]TypedVec{},
		formatByIdx: map[int][]TypedVec{},
	}

	for i := 0; i < p.nInfo; i++ {
		key := sb.readTypedInt()
		val := sb.readTypedVec()
		if sb.err != nil {
			return nil, sb.err
		}
		r.info = append(r.info, infoField{Idx: int(key), Value: val})
		r.infoByIdx[int(key)] = val
	}

	ib := newBufDecoder(indiv)
	for i := 0; i < p.nFmt; i++ {
		key := ib.readTypedInt()
		desc := ib.readTypeDescriptor()
		if ib.err != nil {
			return nil, ib.err
		}
		values := make([]TypedVec, p.nSample)
		for s := 0; s < p.nSample; s++ {
			values[s] = ib.decodeValue(desc)
		}
		if ib.err != nil {
			return nil, ib.err
		}
		r.format = append(r.format, formatField{Idx: int(key), Values: values})
		r.formatByIdx[int(key)] = values
	}

	if gtIdx, ok := header.FormatIdx("GT"); ok {
		if values, ok := r.formatByIdx[gtIdx]; ok {
			r.genotypes = genotypesFromFormat(values)
			r.hasGenotypes = true
		}
	}

	return r, nil
}

func (r *EagerRecord) Chrom() (string, error)        { return r.chrom, nil }
func (r *EagerRecord) Pos() uint32                   { return r.pos }
func (r *EagerRecord) ID() []byte                    { return r.id }
func (r *EagerRecord) RefAllele() ([]byte, error)    { return r.ref, nil }
func (r *EagerRecord) AltAlleles() ([][]byte, error) { return r.alt, nil }
func (r *EagerRecord) Qual() (float32, bool)         { return r.qual, r.qualOK }
func (r *EagerRecord) Filters() ([]string, error)    { return r.filters, nil }

func (r *EagerRecord) Info(tag string) (TypedVec, bool, error) {
	v, ok := r.lookupInfo(tag)
	return v, ok, nil
}

func (r *EagerRecord) lookupInfo(tag string) (TypedVec, bool) {
	idx, ok := r.header.InfoIdx(tag)
	if !ok {
		return TypedVec{}, false
	}
	v, ok := r.infoByIdx[idx]
	return v, ok
}

func (r *EagerRecord) Format(tag string) ([]TypedVec, bool, error) {
	idx, ok := r.header.FormatIdx(tag)
	if !ok {
		return nil, false, nil
	}
	v, ok := r.formatByIdx[idx]
	return v, ok, nil
}

func (r *EagerRecord) HasFlag(tag string) (bool, error) {
	_, ok := r.lookupInfo(tag)
	return ok, nil
}

func (r *EagerRecord) Genotypes() ([][]GenotypeAllele, bool, error) {
	return r.genotypes, r.hasGenotypes, nil
}
