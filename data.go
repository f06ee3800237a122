// Copyright ©2026 The geogrid Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package geogrid

import (
	"encoding/json"
	"math"
	"sort"

	"github.com/paulmach/orb/geojson"
)

// Value is a single feature property value. It distinguishes finite
// numbers, which can be rasterized, from everything else, which cannot.
type Value struct {
	num float64
	ok  bool
}

// Number creates a numeric Value. Non-finite numbers are
// treated as non-numeric.
func Number(v float64) Value {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Value{}
	}
	return Value{num: v, ok: true}
}

// Num returns the numeric value of the receiver, and whether
// the receiver is numeric at all.
func (v Value) Num() (float64, bool) {
	return v.num, v.ok
}

// valueOf converts a raw GeoJSON property value to a Value.
// JSON numbers decode as float64, but properties built in code may
// carry other numeric kinds, so those are accepted too.
func valueOf(raw interface{}) Value {
	switch v := raw.(type) {
	case float64:
		return Number(v)
	case float32:
		return Number(float64(v))
	case int:
		return Number(float64(v))
	case int32:
		return Number(float64(v))
	case int64:
		return Number(float64(v))
	case uint:
		return Number(float64(v))
	case uint32:
		return Number(float64(v))
	case uint64:
		return Number(float64(v))
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return Number(f)
		}
	}
	return Value{}
}

// usable reports whether a feature carries both geometry and
// properties. Features that don't are dropped before processing.
func usable(f *geojson.Feature) bool {
	return f != nil && f.Geometry != nil && len(f.Properties) > 0
}

// schema returns, in sorted order, the names of the attributes to be
// rasterized: the keys of the first usable feature whose values are
// finite numbers. Later features are never consulted, so the
// attribute set of the output is fixed by the first usable feature
// alone. The sorted order makes builds with a fixed random seed
// reproducible.
func schema(features []*geojson.Feature) []string {
	if len(features) == 0 {
		return nil
	}
	var keys []string
	for k, raw := range features[0].Properties {
		if _, ok := valueOf(raw).Num(); ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}
