// Copyright ©2026 The geogrid Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package geogrid

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/maptile"
)

// tileZoomOffset converts a tile zoom level to a pixel zoom level
// for 256-pixel tiles.
const tileZoomOffset = 8

// Projection is a bidirectional mapping between geographic
// coordinates and integer pixel coordinates at a fixed zoom level.
// Pixel y grows southward.
type Projection interface {
	// Pixel returns the pixel containing the given longitude/latitude.
	Pixel(ll orb.Point) (x, y int)

	// LonLat returns the geographic coordinate of the northwest
	// corner of pixel (x, y). It is the inverse of Pixel up to
	// projection precision.
	LonLat(x, y int) orb.Point
}

// WebMercator is the standard tile pixel projection with
// 256-pixel tiles: at zoom level z the world is 2^(z+8) pixels wide.
type WebMercator struct {
	Zoom int
}

func (p WebMercator) pixelZoom() maptile.Zoom {
	return maptile.Zoom(p.Zoom + tileZoomOffset)
}

// Pixel implements the Projection interface.
func (p WebMercator) Pixel(ll orb.Point) (x, y int) {
	f := maptile.Fraction(ll, p.pixelZoom())
	return int(math.Floor(f[0])), int(math.Floor(f[1]))
}

// LonLat implements the Projection interface.
func (p WebMercator) LonLat(x, y int) orb.Point {
	b := maptile.New(uint32(x), uint32(y), p.pixelZoom()).Bound()
	return orb.Point{b.Min[0], b.Max[1]}
}
