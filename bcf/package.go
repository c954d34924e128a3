// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bcf is a reader for BCF (Binary Call Format) 2.2 files, the
// binary serialization of VCF used to store genomic variant calls.
//
// Reading a BCF stream starts with a call to Open or OpenPath. A BCF
// stream consists of a text-VCF header followed by a sequence of
// records, which can be retrieved with Stream.Records, one record at
// a time.
package bcf // import "github.com/aclements/go-bcf/bcf"
