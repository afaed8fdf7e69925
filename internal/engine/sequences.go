package engine

import "knightchase/internal/chase"

// CountSequences 统计龙吃光所有羊的不同走法序列数。
// 羊先走；有羊跑出棋盘的分支不计。
func (e *Engine) CountSequences(b *chase.Board) (Result, error) {
	e.reset()
	pos, err := chase.NewPosition(b)
	if err != nil {
		return Result{}, err
	}
	n, err := e.count(pos)
	if err != nil {
		return Result{}, err
	}
	return Result{Sequences: n, Nodes: e.nodes, States: len(e.tt)}, nil
}

func (e *Engine) count(p *chase.Position) (uint64, error) {
	e.nodes++
	if len(p.Units) == 0 {
		return 1, nil
	}
	if v, ok := e.probeTT(p.Hash); ok {
		return v, nil
	}

	var total uint64
	for _, mv := range p.GenerateMoves() {
		np, ok := p.ApplyMove(mv)
		if !ok || np.Escaped > 0 {
			continue
		}
		n, err := e.count(np)
		if err != nil {
			return 0, err
		}
		total += n
	}

	if err := e.storeTT(p.Hash, total); err != nil {
		return 0, err
	}
	return total, nil
}
