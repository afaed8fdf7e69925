package chase

import "fmt"

// Limits 为查询设置上限；0 表示不限制
type Limits struct {
	MaxJumps  uint32
	MaxRounds uint32
}

// Query 是两个入口的载体；零值即无上限、无回调
type Query struct {
	Limits  Limits
	OnRound func(RoundReport)
}

// CountWithinRadius 统计落在 1..maxJumps 跳前沿并集内的羊。
// 每个深度都从起点重新展开，然后再合并。
func (q Query) CountWithinRadius(b *Board, maxJumps uint32) (uint64, error) {
	origin, err := PursuerOrigin(b)
	if err != nil {
		return 0, err
	}
	if q.Limits.MaxJumps > 0 && maxJumps > q.Limits.MaxJumps {
		return 0, fmt.Errorf("%w: %d jumps > limit %d", ErrBudgetExceeded, maxJumps, q.Limits.MaxJumps)
	}

	reach := NewCoordSet(b)
	for k := 1; k <= int(maxJumps); k++ {
		reach.Union(Frontier(b, origin, k))
	}

	var n uint64
	for _, u := range b.Units() {
		if reach.Has(u.Pos) {
			n++
		}
	}
	return n, nil
}

// SimulateRounds 跑 rounds 轮并返回被抓总数；rounds 为 0 视为调用错误。
func (q Query) SimulateRounds(b *Board, rounds uint32) (uint64, error) {
	st, err := q.simulate(b, rounds)
	if err != nil {
		return 0, err
	}
	return st.Captured, nil
}

// SimulateState 同 SimulateRounds，但返回最终状态
func (q Query) SimulateState(b *Board, rounds uint32) (*State, error) {
	return q.simulate(b, rounds)
}

func (q Query) simulate(b *Board, rounds uint32) (*State, error) {
	if rounds == 0 {
		return nil, ErrZeroRounds
	}
	if q.Limits.MaxRounds > 0 && rounds > q.Limits.MaxRounds {
		return nil, fmt.Errorf("%w: %d rounds > limit %d", ErrBudgetExceeded, rounds, q.Limits.MaxRounds)
	}
	sim := NewSimulator(b)
	sim.OnRound = q.OnRound
	st, err := sim.NewState()
	if err != nil {
		return nil, err
	}
	sim.Run(st, int(rounds))
	return st, nil
}

func CountWithinRadius(b *Board, maxJumps uint32) (uint64, error) {
	return Query{}.CountWithinRadius(b, maxJumps)
}

func SimulateRounds(b *Board, rounds uint32) (uint64, error) {
	return Query{}.SimulateRounds(b, rounds)
}
