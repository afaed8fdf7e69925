package chase

import (
	"reflect"
	"testing"
)

func emptyBoard(rows, cols int) *Board {
	return &Board{Rows: rows, Cols: cols, Cells: make([]Role, rows*cols)}
}

func TestFrontierDepthZeroIsOrigin(t *testing.T) {
	b := emptyBoard(5, 5)
	f := Frontier(b, Coord{2, 3}, 0)
	if got := f.Coords(); !reflect.DeepEqual(got, []Coord{{2, 3}}) {
		t.Fatalf("depth 0 = %v", got)
	}
}

func TestFrontierCornerDepths(t *testing.T) {
	b := emptyBoard(5, 5)

	d1 := Frontier(b, Coord{0, 0}, 1).Coords()
	if want := []Coord{{1, 2}, {2, 1}}; !reflect.DeepEqual(d1, want) {
		t.Fatalf("depth 1 = %v, want %v", d1, want)
	}

	d2 := Frontier(b, Coord{0, 0}, 2).Coords()
	want := []Coord{
		{0, 0}, {0, 2}, {0, 4},
		{1, 3},
		{2, 0}, {2, 4},
		{3, 1}, {3, 3},
		{4, 0}, {4, 2},
	}
	if !reflect.DeepEqual(d2, want) {
		t.Fatalf("depth 2 = %v, want %v", d2, want)
	}
}

func TestFrontierIsExactDepthNotHistory(t *testing.T) {
	b := emptyBoard(5, 5)
	origin := Coord{0, 0}
	// 马每跳一次格子颜色翻转，奇数步不可能回到起点
	if Frontier(b, origin, 1).Has(origin) || Frontier(b, origin, 3).Has(origin) {
		t.Fatal("odd depth frontier must not contain the origin")
	}
	if !Frontier(b, origin, 2).Has(origin) {
		t.Fatal("depth 2 frontier should return to the origin")
	}
	if Frontier(b, origin, 2).Has(Coord{1, 2}) {
		t.Fatal("depth 2 frontier must not keep depth 1 cells")
	}
}

func TestFrontierStaysInBounds(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {1, 7}, {3, 4}, {6, 6}, {9, 2}} {
		b := emptyBoard(dims[0], dims[1])
		for k := 0; k <= 8; k++ {
			f := Frontier(b, Coord{0, 0}, k)
			f.Each(func(c Coord) {
				if !b.InBounds(c) {
					t.Fatalf("%dx%d depth %d: %v out of bounds", dims[0], dims[1], k, c)
				}
			})
		}
	}
}

func TestFrontierEmptiesOnNarrowBoard(t *testing.T) {
	// 1 列的棋盘上马无处可跳
	b := emptyBoard(6, 1)
	if n := Frontier(b, Coord{0, 0}, 1).Len(); n != 0 {
		t.Fatalf("depth 1 on 6x1 = %d cells, want 0", n)
	}
	if n := Frontier(b, Coord{0, 0}, 4).Len(); n != 0 {
		t.Fatalf("depth 4 on 6x1 = %d cells, want 0", n)
	}
}

func TestKnightTargetsCentre(t *testing.T) {
	b := emptyBoard(5, 5)
	if n := len(KnightTargets(b, Coord{2, 2})); n != 8 {
		t.Fatalf("centre targets = %d, want 8", n)
	}
	if n := len(KnightTargets(b, Coord{0, 0})); n != 2 {
		t.Fatalf("corner targets = %d, want 2", n)
	}
}

func TestCoordSet(t *testing.T) {
	b := emptyBoard(9, 9)
	s := NewCoordSet(b)
	if !s.Add(Coord{8, 8}) || s.Add(Coord{8, 8}) {
		t.Fatal("Add should report first insertion only")
	}
	if s.Add(Coord{9, 0}) || s.Add(Coord{-1, 3}) {
		t.Fatal("out of bounds coordinates must be ignored")
	}
	s.Add(Coord{0, 1})
	if s.Len() != 2 {
		t.Fatalf("len = %d, want 2", s.Len())
	}

	other := NewCoordSet(b)
	other.Add(Coord{0, 1})
	other.Add(Coord{4, 4})
	s.Union(other)
	if got, want := s.Coords(), []Coord{{0, 1}, {4, 4}, {8, 8}}; !reflect.DeepEqual(got, want) {
		t.Fatalf("union = %v, want %v", got, want)
	}

	var nilSet *CoordSet
	if nilSet.Has(Coord{0, 0}) || nilSet.Len() != 0 {
		t.Fatal("nil set must behave as empty")
	}
}
