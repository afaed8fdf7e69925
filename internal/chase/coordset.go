package chase

import "math/bits"

// CoordSet 是按棋盘尺寸分配的坐标位图，同一坐标只记一次。
// 遍历顺序固定为行优先。nil 视为空集合。
type CoordSet struct {
	rows, cols int
	words      []uint64
	n          int
}

func NewCoordSet(b *Board) *CoordSet {
	return newCoordSet(b.Rows, b.Cols)
}

func newCoordSet(rows, cols int) *CoordSet {
	return &CoordSet{
		rows:  rows,
		cols:  cols,
		words: make([]uint64, (rows*cols+63)/64),
	}
}

func (s *CoordSet) index(c Coord) (int, bool) {
	if s == nil || c.Row < 0 || c.Row >= s.rows || c.Col < 0 || c.Col >= s.cols {
		return 0, false
	}
	return c.Row*s.cols + c.Col, true
}

// Add 加入坐标；越界坐标被忽略。返回是否为新加入。
func (s *CoordSet) Add(c Coord) bool {
	i, ok := s.index(c)
	if !ok {
		return false
	}
	w, bit := i>>6, uint64(1)<<(uint(i)&63)
	if s.words[w]&bit != 0 {
		return false
	}
	s.words[w] |= bit
	s.n++
	return true
}

func (s *CoordSet) Has(c Coord) bool {
	i, ok := s.index(c)
	if !ok {
		return false
	}
	return s.words[i>>6]&(uint64(1)<<(uint(i)&63)) != 0
}

func (s *CoordSet) Len() int {
	if s == nil {
		return 0
	}
	return s.n
}

// Union 把 other 并入 s；两者必须来自同一棋盘
func (s *CoordSet) Union(other *CoordSet) {
	if other == nil {
		return
	}
	for i := range s.words {
		s.words[i] |= other.words[i]
	}
	s.n = 0
	for _, w := range s.words {
		s.n += bits.OnesCount64(w)
	}
}

func (s *CoordSet) Clone() *CoordSet {
	if s == nil {
		return nil
	}
	cp := *s
	cp.words = append([]uint64(nil), s.words...)
	return &cp
}

// Each 按行优先顺序访问每个坐标
func (s *CoordSet) Each(fn func(Coord)) {
	if s == nil {
		return
	}
	for w, word := range s.words {
		for word != 0 {
			i := w<<6 + bits.TrailingZeros64(word)
			fn(Coord{Row: i / s.cols, Col: i % s.cols})
			word &= word - 1
		}
	}
}

func (s *CoordSet) Coords() []Coord {
	out := make([]Coord, 0, s.Len())
	s.Each(func(c Coord) { out = append(out, c) })
	return out
}
