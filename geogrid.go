// Copyright ©2026 The geogrid Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package geogrid

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
)

// maxZoom is the largest usable zoom level: above it the pixel
// coordinates of 256-pixel tiles no longer fit in a signed 32-bit
// grid header.
const maxZoom = 22

// A Builder rasterizes the numeric properties of a feature
// collection into one Grid per property at a fixed zoom level.
//
// The zero value is not usable; create Builders with New. The
// exported fields may be replaced before calling Build.
type Builder struct {
	// Zoom is the tile zoom level of the output grids.
	Zoom int

	// Rand is the source of randomness for leftover placement in
	// the count-preserving spread step. Replace it with a fixed-seed
	// source for reproducible output.
	Rand *rand.Rand

	// Proj maps between geographic and pixel coordinates.
	Proj Projection

	// Contains reports whether a point is inside a polygon. Boundary
	// behavior is whatever the installed function implements; the
	// default is planar.PolygonContains.
	Contains func(orb.Polygon, orb.Point) bool

	// Logf, if non-nil, receives diagnostics about skipped features.
	Logf func(format string, args ...interface{})
}

// New creates a Builder for the given zoom level.
func New(zoom int) (*Builder, error) {
	if zoom < 0 || zoom > maxZoom {
		return nil, fmt.Errorf("geogrid: zoom %d outside [0, %d]", zoom, maxZoom)
	}
	return &Builder{
		Zoom:     zoom,
		Rand:     rand.New(rand.NewSource(time.Now().UnixNano())),
		Proj:     WebMercator{Zoom: zoom},
		Contains: planar.PolygonContains,
	}, nil
}

// Build rasterizes fc into one delta-coded binary grid per numeric
// attribute of its first usable feature, keyed by attribute name.
//
// Features without geometry or properties are dropped, features with
// unsupported geometry types are skipped, and non-numeric values are
// skipped per attribute; none of these is an error. A collection
// with no usable features yields an empty map.
//
// For every attribute, the cell values of the decoded output grid
// sum to the sum of the rounded attribute values of the features
// that produced it, regardless of where random leftovers landed.
func (bld *Builder) Build(fc *geojson.FeatureCollection) (map[string][]byte, error) {
	out := make(map[string][]byte)
	if fc == nil {
		return out, nil
	}
	var features []*geojson.Feature
	for _, f := range fc.Features {
		if usable(f) {
			features = append(features, f)
		}
	}
	if len(features) == 0 {
		return out, nil
	}

	bound := features[0].Geometry.Bound()
	for _, f := range features[1:] {
		bound = bound.Union(f.Geometry.Bound())
	}
	pb := bbox(bound, bld.Proj)

	keys := schema(features)
	grids := make(map[string]*Grid, len(keys))
	for _, key := range keys {
		grids[key] = newGrid(bld.Zoom, pb)
	}

	for _, f := range features {
		pixels := bld.coverage(f, pb)
		if len(pixels) == 0 {
			continue
		}
		for _, key := range keys {
			spread(grids[key], pixels, valueOf(f.Properties[key]), bld.Rand)
		}
	}

	for key, g := range grids {
		g.delta()
		buf, err := g.MarshalBinary()
		if err != nil {
			return nil, err
		}
		out[key] = buf
	}
	return out, nil
}

func (bld *Builder) logf(format string, args ...interface{}) {
	if bld.Logf != nil {
		bld.Logf(format, args...)
	}
}

// BuildGrids rasterizes fc at the given zoom level with a
// time-seeded random source. It is shorthand for New followed
// by Build.
func BuildGrids(fc *geojson.FeatureCollection, zoom int) (map[string][]byte, error) {
	bld, err := New(zoom)
	if err != nil {
		return nil, err
	}
	return bld.Build(fc)
}
