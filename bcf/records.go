// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcf

import "io"

// A RecordMode selects how a Records iterator builds each Record it
// yields.
type RecordMode int

const (
	// RecordsLazy retains each record's raw byte regions and decodes
	// fields on demand. Cheaper per record; best for scanners that
	// only touch a few fields.
	RecordsLazy RecordMode = iota

	// RecordsEager fully decodes every field, including every INFO
	// and FORMAT entry, at construction. Best for consumers that
	// process every field of every record.
	RecordsEager
)

// Records is a single-threaded, pull-based iterator over the records
// in a Stream.
//
// Typical usage is
//
//	rs := stream.Records(bcf.RecordsLazy)
//	for rs.Next() {
//	    rec := rs.Record
//	    ...
//	}
//	if rs.Err() != nil { ... }
type Records struct {
	s    *Stream
	mode RecordMode
	err  error
	done bool

	// Record is the most recent record Next produced.
	Record Record
}

// Records returns an iterator over s's record sequence, in on-disk
// order, building each record the way mode specifies.
func (s *Stream) Records(mode RecordMode) *Records {
	return &Records{s: s, mode: mode}
}

// Next advances to the next record, reports whether one was
// produced, and stores it in Record. Once Next returns false, either
// the stream is cleanly exhausted (Err returns nil) or a decode error
// occurred (Err returns it); either way, every subsequent call to
// Next also returns false.
func (rs *Records) Next() bool {
	if rs.done {
		return false
	}

	var lenBuf [8]byte
	n, err := io.ReadFull(rs.s.r, lenBuf[:])
	if err != nil {
		rs.done = true
		if err == io.EOF && n == 0 {
			return false
		}
		if err == io.ErrUnexpectedEOF {
			rs.err = errf(ErrTruncatedInput, "truncated record length prefix")
		} else {
			rs.err = wrapErr(ErrIO, "reading record length prefix", err)
		}
		return false
	}

	lShared := le32(lenBuf[0:4])
	lIndiv := le32(lenBuf[4:8])
	total := int(lShared) + int(lIndiv)

	// Each record gets its own allocation rather than a view into a
	// buffer reused across iterations: a LazyRecord retains shared
	// and indiv past the call that built it (see lazy.go), so the
	// bytes behind them must not be overwritten by a later Next.
	buf := make([]byte, total)
	if _, err := io.ReadFull(rs.s.r, buf); err != nil {
		rs.done = true
		rs.err = wrapErr(ErrTruncatedInput, "reading record body", err)
		return false
	}

	shared := buf[:lShared:lShared]
	indiv := buf[lShared:total:total]

	header := rs.s.Header()
	var rec Record
	var recErr error
	switch rs.mode {
	case RecordsEager:
		rec, recErr = newEagerRecord(header, shared, indiv)
	default:
		rec, recErr = newLazyRecord(header, shared, indiv)
	}
	if recErr != nil {
		rs.done = true
		rs.err = recErr
		return false
	}

	rs.Record = rec
	return true
}

// Err returns the error, if any, that caused Next to stop.
func (rs *Records) Err() error { return rs.err }

func le32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}
