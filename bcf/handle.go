// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcf

import "sync/atomic"

// A headerHandle is the reference-counted handle the data model calls
// for sharing a Header with every record a stream emits. In Go this
// is, in the ordinary case, nothing more than the plain *Header
// pointer every record already holds: the garbage collector is the
// reference count, and there's no dangling-pointer failure mode to
// guard against.
//
// Every handle also carries an atomic readiness flag, which
// newHeaderHandle sets as soon as it wraps the finished header.
// WithThreadSafeHeader does not change the handle: the header is
// immutable once built, so it is safe to read concurrently whether or
// not the option is given. The stream iterator is single-consumer
// either way.
type headerHandle struct {
	h     *Header
	ready atomic.Bool
}

func newHeaderHandle(h *Header) *headerHandle {
	hh := &headerHandle{h: h}
	hh.ready.Store(true)
	return hh
}

func (hh *headerHandle) Header() *Header { return hh.h }
