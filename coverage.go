// Copyright ©2026 The geogrid Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package geogrid

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// pixelBBox is a rectangle of pixels at a fixed zoom: an origin at
// (west, north) and an extent of width×height. Pixel y grows
// southward, so height = south − north.
type pixelBBox struct {
	west, north   int
	width, height int
}

// index returns the row-major linear index of pixel (x, y).
func (b pixelBBox) index(x, y int) int {
	return (y-b.north)*b.width + (x-b.west)
}

// bbox converts a geographic bound to the pixel bounding box that
// covers it: the origin is the pixel containing the northwest corner
// and the extent runs through the pixel containing the southeast
// corner, so any non-empty bound yields width ≥ 1 and height ≥ 1.
func bbox(bound orb.Bound, proj Projection) pixelBBox {
	west, north := proj.Pixel(orb.Point{bound.Min[0], bound.Max[1]})
	east, south := proj.Pixel(orb.Point{bound.Max[0], bound.Min[1]})
	return pixelBBox{
		west:   west,
		north:  north,
		width:  east - west + 1,
		height: south - north + 1,
	}
}

// coverage returns the linear indices within b of the pixels that
// feature f covers. The result is non-empty for point and polygon
// geometries and nil for everything else.
func (bld *Builder) coverage(f *geojson.Feature, b pixelBBox) []int {
	switch geo := f.Geometry.(type) {
	case orb.Point:
		x, y := bld.Proj.Pixel(geo)
		return []int{b.index(x, y)}
	case orb.Polygon:
		fb := bbox(geo.Bound(), bld.Proj)
		var pixels []int
		for y := fb.north; y < fb.north+fb.height; y++ {
			for x := fb.west; x < fb.west+fb.width; x++ {
				if bld.Contains(geo, bld.Proj.LonLat(x, y)) {
					pixels = append(pixels, b.index(x, y))
				}
			}
		}
		if len(pixels) == 0 {
			// The polygon is smaller than one pixel and missed every
			// sample point. Attribute it to the northwest pixel of its
			// own bounding box so that its values are not lost.
			pixels = []int{b.index(fb.west, fb.north)}
		}
		return pixels
	default:
		bld.logf("geogrid: skipping unsupported geometry type %s", f.Geometry.GeoJSONType())
		return nil
	}
}
