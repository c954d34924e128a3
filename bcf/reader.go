// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcf

import (
	"io"
	"os"
)

// A Stream reads a BCF byte stream: the magic bytes, version, and
// text header are consumed once at construction, after which
// Stream.Records yields the record sequence one record at a time.
type Stream struct {
	r      io.Reader
	closer io.Closer

	version Version
	handle  *headerHandle
}

// An Option configures Open or OpenPath.
type Option func(*streamConfig)

type streamConfig struct {
	threadSafe bool
}

// WithThreadSafeHeader makes the returned Stream's header handle
// safe to read from a goroutine other than the one driving the
// stream's iterator, which must still remain single-consumer.
func WithThreadSafeHeader() Option {
	return func(c *streamConfig) { c.threadSafe = true }
}

// Open reads a BCF stream from r: the magic bytes, version, and
// header, stopping as soon as the header has been fully parsed. r is
// used exactly as given; Open never wraps it in a decompressor — use
// OpenPath for that, or wrap r yourself first.
func Open(r io.Reader, opts ...Option) (*Stream, error) {
	var cfg streamConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	magic := make([]byte, 5)
	if _, err := io.ReadFull(r, magic); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, wrapErr(ErrTruncatedInput, "reading magic and version", err)
		}
		return nil, wrapErr(ErrIO, "reading magic and version", err)
	}
	if string(magic[:3]) != "BCF" {
		return nil, errf(ErrInvalidMagic, "expected magic \"BCF\", got %q", magic[:3])
	}
	version := Version{Major: magic[3], Minor: magic[4]}
	if version.Major != wantMajor || version.Minor != wantMinor {
		return nil, errf(ErrVersionMismatch, "expected BCF %d.%d, got %d.%d", wantMajor, wantMinor, version.Major, version.Minor)
	}

	var lenBuf [4]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return nil, wrapErr(ErrTruncatedInput, "reading header length", err)
	}
	headerLen := uint32(lenBuf[0]) | uint32(lenBuf[1])<<8 | uint32(lenBuf[2])<<16 | uint32(lenBuf[3])<<24

	headerBytes := make([]byte, headerLen)
	if _, err := io.ReadFull(r, headerBytes); err != nil {
		return nil, wrapErr(ErrTruncatedInput, "reading header block", err)
	}

	hdr, err := parseHeader(headerBytes)
	if err != nil {
		return nil, err
	}

	return &Stream{r: r, version: version, handle: newHeaderHandle(hdr)}, nil
}

// OpenPath opens the named BCF file, auto-detecting BGZF compression
// from its leading bytes.
//
// The caller must call Close on the returned Stream when done with
// it.
func OpenPath(name string, opts ...Option) (*Stream, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, wrapErr(ErrIO, "opening "+name, err)
	}
	decompressed, err := maybeDecompress(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	s, err := Open(decompressed, opts...)
	if err != nil {
		f.Close()
		return nil, err
	}
	s.closer = f
	return s, nil
}

// Close closes the underlying file, if the Stream was opened with
// OpenPath. Calling Close on a Stream built with Open has no effect.
func (s *Stream) Close() error {
	if s.closer != nil {
		err := s.closer.Close()
		s.closer = nil
		return err
	}
	return nil
}

// Header returns the stream's header. It's immutable and safe to
// retain and share with every Record the stream yields.
func (s *Stream) Header() *Header { return s.handle.Header() }

// Version returns the BCF version this stream declared.
func (s *Stream) Version() Version { return s.version }
