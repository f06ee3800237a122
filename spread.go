// Copyright ©2026 The geogrid Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package geogrid

import (
	"math"
	"math/rand"
)

// spread adds one feature's value for one attribute to the grid,
// split across the feature's covered pixels so that the rounded
// integer total is preserved exactly.
//
// The value is rounded half away from zero, each pixel receives the
// truncating integer share, and the leftover is applied as unit
// increments to pixels drawn uniformly at random with replacement
// from the covered set. A pixel may receive more than one leftover
// increment; only the total is a contract.
func spread(g *Grid, pixels []int, v Value, rng *rand.Rand) {
	f, ok := v.Num()
	if !ok {
		return
	}
	val := int32(math.Round(f))
	n := int32(len(pixels))
	if n == 0 {
		return
	}
	share := val / n
	if share != 0 {
		for _, p := range pixels {
			g.Cells[p] += share
		}
	}
	rem := val - share*n
	step := int32(1)
	if rem < 0 {
		rem, step = -rem, -1
	}
	for i := int32(0); i < rem; i++ {
		g.Cells[pixels[rng.Intn(len(pixels))]] += step
	}
}
