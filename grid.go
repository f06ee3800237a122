// Copyright ©2026 The geogrid Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package geogrid

import (
	"encoding/binary"
	"fmt"
)

// headerLen is the number of int32 header words in an encoded grid:
// zoom, west, north, width, height.
const headerLen = 5

// Grid is one attribute rasterized onto a rectangle of pixels at a
// fixed zoom level. West and North are the pixel coordinates of the
// grid origin, and Cells holds Width×Height values in row-major
// order (a row is a fixed y with x increasing).
type Grid struct {
	Zoom          int32
	West, North   int32
	Width, Height int32
	Cells         []int32
}

// newGrid allocates a zero-valued grid covering the given pixel
// bounding box.
func newGrid(zoom int, b pixelBBox) *Grid {
	return &Grid{
		Zoom:   int32(zoom),
		West:   int32(b.west),
		North:  int32(b.north),
		Width:  int32(b.width),
		Height: int32(b.height),
		Cells:  make([]int32, b.width*b.height),
	}
}

// delta rewrites the cells in place as successive row-major
// differences with an implicit leading zero. The transform is
// one-directional; prefixSum inverts it.
func (g *Grid) delta() {
	var prev int32
	for i, v := range g.Cells {
		g.Cells[i] = v - prev
		prev = v
	}
}

// prefixSum inverts delta in place.
func (g *Grid) prefixSum() {
	var prev int32
	for i, d := range g.Cells {
		prev += d
		g.Cells[i] = prev
	}
}

// Sum returns the sum of all cell values.
func (g *Grid) Sum() int64 {
	var sum int64
	for _, v := range g.Cells {
		sum += int64(v)
	}
	return sum
}

// MarshalBinary encodes the grid as little-endian signed 32-bit
// integers: the five header words zoom, west, north, width and
// height, followed by the Width×Height cell values in row-major
// order.
func (g *Grid) MarshalBinary() ([]byte, error) {
	if int(g.Width)*int(g.Height) != len(g.Cells) {
		return nil, fmt.Errorf("geogrid: grid is %d×%d but has %d cells",
			g.Width, g.Height, len(g.Cells))
	}
	buf := make([]byte, 4*(headerLen+len(g.Cells)))
	for i, v := range []int32{g.Zoom, g.West, g.North, g.Width, g.Height} {
		binary.LittleEndian.PutUint32(buf[4*i:], uint32(v))
	}
	for i, v := range g.Cells {
		binary.LittleEndian.PutUint32(buf[4*(headerLen+i):], uint32(v))
	}
	return buf, nil
}

// UnmarshalGrid decodes a buffer produced by the Builder, inverting
// the delta coding so that the returned grid holds raw cell values.
func UnmarshalGrid(buf []byte) (*Grid, error) {
	if len(buf) < 4*headerLen || len(buf)%4 != 0 {
		return nil, fmt.Errorf("geogrid: buffer length %d is not a valid grid", len(buf))
	}
	var hdr [headerLen]int32
	for i := range hdr {
		hdr[i] = int32(binary.LittleEndian.Uint32(buf[4*i:]))
	}
	g := &Grid{
		Zoom:   hdr[0],
		West:   hdr[1],
		North:  hdr[2],
		Width:  hdr[3],
		Height: hdr[4],
	}
	n := len(buf)/4 - headerLen
	if int(g.Width)*int(g.Height) != n {
		return nil, fmt.Errorf("geogrid: header says %d×%d cells but buffer holds %d",
			g.Width, g.Height, n)
	}
	g.Cells = make([]int32, n)
	for i := range g.Cells {
		g.Cells[i] = int32(binary.LittleEndian.Uint32(buf[4*(headerLen+i):]))
	}
	g.prefixSum()
	return g, nil
}
