package chase

// Board 为只读棋盘：尺寸 + 每格的初始角色（行优先）
type Board struct {
	Rows  int
	Cols  int
	Cells []Role
}

func (b *Board) indexOf(c Coord) int { return c.Row*b.Cols + c.Col }
func (b *Board) coordOf(idx int) Coord {
	return Coord{Row: idx / b.Cols, Col: idx % b.Cols}
}

func (b *Board) Dimensions() (rows, cols int) { return b.Rows, b.Cols }

func (b *Board) NumCells() int { return b.Rows * b.Cols }

func (b *Board) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < b.Rows && c.Col >= 0 && c.Col < b.Cols
}

// Role 返回坐标的初始角色，越界当作 Empty
func (b *Board) Role(c Coord) Role {
	if !b.InBounds(c) {
		return Empty
	}
	return b.Cells[b.indexOf(c)]
}

// Find 按行优先顺序返回所有角色为 r 的格子
func (b *Board) Find(r Role) []Coord {
	var out []Coord
	for i, cell := range b.Cells {
		if cell == r {
			out = append(out, b.coordOf(i))
		}
	}
	return out
}

// Units 按行优先顺序列出初始逃跑单位
func (b *Board) Units() []Unit {
	coords := b.Find(FleeingUnit)
	out := make([]Unit, len(coords))
	for i, c := range coords {
		out[i] = Unit{ID: i, Pos: c}
	}
	return out
}

// ImmuneSet 返回所有藏身处
func (b *Board) ImmuneSet() *CoordSet {
	s := NewCoordSet(b)
	for _, c := range b.Find(ImmuneZone) {
		s.Add(c)
	}
	return s
}

// PursuerOrigin 返回唯一的追捕者位置；没有或多于一个都返回 ErrInvalidOrigin。
func PursuerOrigin(b *Board) (Coord, error) {
	found := b.Find(Pursuer)
	if len(found) != 1 {
		return Coord{}, &originError{count: len(found)}
	}
	return found[0], nil
}

type originError struct{ count int }

func (e *originError) Error() string {
	if e.count == 0 {
		return ErrInvalidOrigin.Error() + ": no pursuer on board"
	}
	return ErrInvalidOrigin.Error() + ": multiple pursuers on board"
}

func (e *originError) Is(target error) bool { return target == ErrInvalidOrigin }
