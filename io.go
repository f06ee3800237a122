// Copyright ©2026 The geogrid Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package geogrid

import (
	"io"

	"github.com/klauspost/compress/gzip"
)

// WriteGrid writes one encoded grid buffer to w, gzip-compressed.
// Delta-coded count grids are spatially smooth, so they compress
// well; consumers conventionally store and serve them this way.
func WriteGrid(w io.Writer, buf []byte) error {
	zw := gzip.NewWriter(w)
	if _, err := zw.Write(buf); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}

// ReadGrid reads a gzip-compressed grid from r and decodes it,
// inverting the delta coding.
func ReadGrid(r io.Reader) (*Grid, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	buf, err := io.ReadAll(zr)
	if err != nil {
		return nil, err
	}
	return UnmarshalGrid(buf)
}
