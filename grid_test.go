// Copyright ©2026 The geogrid Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package geogrid

import (
	"bytes"
	"encoding/binary"
	"reflect"
	"testing"
)

func TestDeltaRoundTrip(t *testing.T) {
	g := &Grid{
		Zoom: 10, West: 100, North: 200, Width: 3, Height: 2,
		Cells: []int32{5, 5, 7, 0, -3, 12},
	}
	want := append([]int32(nil), g.Cells...)
	g.delta()
	if wantDelta := []int32{5, 0, 2, -7, -3, 15}; !reflect.DeepEqual(g.Cells, wantDelta) {
		t.Fatalf("delta: want %v, have %v", wantDelta, g.Cells)
	}
	g.prefixSum()
	if !reflect.DeepEqual(g.Cells, want) {
		t.Errorf("round trip: want %v, have %v", want, g.Cells)
	}
}

func TestMarshalUnmarshal(t *testing.T) {
	g := &Grid{
		Zoom: 9, West: -4, North: 17, Width: 2, Height: 2,
		Cells: []int32{1, -2, 300, 4},
	}
	want := append([]int32(nil), g.Cells...)
	g.delta()
	buf, err := g.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	if len(buf) != 4*(5+4) {
		t.Fatalf("buffer length: want %d, have %d", 4*(5+4), len(buf))
	}
	for i, v := range []int32{9, -4, 17, 2, 2} {
		if have := int32(binary.LittleEndian.Uint32(buf[4*i:])); have != v {
			t.Errorf("header word %d: want %d, have %d", i, v, have)
		}
	}
	decoded, err := UnmarshalGrid(buf)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(decoded.Cells, want) {
		t.Errorf("decoded cells: want %v, have %v", want, decoded.Cells)
	}
	if decoded.Zoom != 9 || decoded.West != -4 || decoded.North != 17 {
		t.Errorf("decoded header: %+v", decoded)
	}
}

func TestUnmarshalGridBadInput(t *testing.T) {
	if _, err := UnmarshalGrid(nil); err == nil {
		t.Error("nil buffer: want error")
	}
	if _, err := UnmarshalGrid(make([]byte, 19)); err == nil {
		t.Error("short buffer: want error")
	}
	// Header promises 2×2 cells but the body is empty.
	buf := make([]byte, 20)
	binary.LittleEndian.PutUint32(buf[12:], 2)
	binary.LittleEndian.PutUint32(buf[16:], 2)
	if _, err := UnmarshalGrid(buf); err == nil {
		t.Error("truncated body: want error")
	}
}

func TestWriteReadGrid(t *testing.T) {
	g := &Grid{
		Zoom: 12, West: 1000, North: 2000, Width: 2, Height: 3,
		Cells: []int32{0, 10, 10, 9, 0, 0},
	}
	want := append([]int32(nil), g.Cells...)
	g.delta()
	buf, err := g.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	var w bytes.Buffer
	if err := WriteGrid(&w, buf); err != nil {
		t.Fatal(err)
	}
	decoded, err := ReadGrid(&w)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(decoded.Cells, want) {
		t.Errorf("want %v, have %v", want, decoded.Cells)
	}
}
