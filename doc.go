// Copyright ©2026 The geogrid Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package geogrid rasterizes GeoJSON point and polygon features onto
// regular integer grids aligned to the web mercator tile pixel
// projection at a chosen zoom level.
// Each numeric feature property becomes its own grid, feature values
// are spread over the pixels each feature covers so that rounded
// integer totals are preserved exactly, and finished grids are
// delta-coded into compact binary buffers for downstream
// spatial-aggregation and accessibility analysis.
package geogrid
