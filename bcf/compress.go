// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcf

import (
	"bufio"
	"io"

	"github.com/biogo/hts/bgzf"
)

// gzipMagic is the first two bytes of both plain gzip and BGZF
// streams; BCF files are conventionally BGZF-compressed.
var gzipMagic = [2]byte{0x1f, 0x8b}

// maybeDecompress peeks at the first two bytes of r and, if they
// match the gzip/BGZF magic, wraps r in a BGZF reader. Otherwise it
// returns r unwrapped. Used only by OpenPath, which owns the decision
// of how its file is framed; Open takes a caller-supplied io.Reader
// and never second-guesses it.
func maybeDecompress(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)
	magic, err := br.Peek(2)
	if err != nil && err != io.EOF {
		return nil, wrapErr(ErrIO, "peek compression magic", err)
	}
	if len(magic) == 2 && magic[0] == gzipMagic[0] && magic[1] == gzipMagic[1] {
		bg, err := bgzf.NewReader(br, 0)
		if err != nil {
			return nil, wrapErr(ErrIO, "open BGZF stream", err)
		}
		return bg, nil
	}
	return br, nil
}
