package chase

// 8 种“日”字跳：没有马腿，只做边界裁剪
var knightOffsets = [8]struct {
	Dr, Dc int
}{
	{-2, -1},
	{-2, +1},
	{-1, -2},
	{-1, +2},
	{+1, -2},
	{+1, +2},
	{+2, -1},
	{+2, +1},
}

// KnightTargets 返回从 from 出发一跳能落在棋盘内的格子
func KnightTargets(b *Board, from Coord) []Coord {
	out := make([]Coord, 0, len(knightOffsets))
	for _, m := range knightOffsets {
		to := from.Add(m.Dr, m.Dc)
		if !b.InBounds(to) {
			continue
		}
		out = append(out, to)
	}
	return out
}

// Expand 让 set 中每个格子各跳一次，返回新的前沿（去重、裁剪）。
// 原集合本身不会出现在结果里，除非能从别处跳回来。
func Expand(b *Board, set *CoordSet) *CoordSet {
	next := NewCoordSet(b)
	set.Each(func(p Coord) {
		for _, m := range knightOffsets {
			to := p.Add(m.Dr, m.Dc)
			if !b.InBounds(to) {
				continue
			}
			next.Add(to)
		}
	})
	return next
}

// Frontier 计算从 origin 恰好跳 k 次后可能所在的全部格子。
// 每次调用都从 {origin} 重新展开，不复用更浅的结果。
func Frontier(b *Board, origin Coord, k int) *CoordSet {
	cur := NewCoordSet(b)
	cur.Add(origin)
	for i := 0; i < k; i++ {
		cur = Expand(b, cur)
	}
	return cur
}
