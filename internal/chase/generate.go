package chase

type MoveKind int8

const (
	MoveStep   MoveKind = iota // 羊下移一格 / 龙跳一步
	MoveEscape                 // 羊走出棋盘
	MovePass                   // 没有羊能动，让龙走
)

type Move struct {
	Kind MoveKind
	From Coord
	To   Coord
}

// GenerateMoves 生成当前一方的所有走法
func (p *Position) GenerateMoves() []Move {
	if p.SideToMove == Pursuing {
		targets := KnightTargets(p.Board, p.Pursuer)
		moves := make([]Move, 0, len(targets))
		for _, to := range targets {
			moves = append(moves, Move{Kind: MoveStep, From: p.Pursuer, To: to})
		}
		return moves
	}

	var moves []Move
	for _, u := range p.Units {
		to := u.Add(1, 0)
		if to.Row >= p.Board.Rows {
			moves = append(moves, Move{Kind: MoveEscape, From: u})
			continue
		}
		// 不能走到龙脸上，除非那是藏身处
		if to == p.Pursuer && !p.immune(to) {
			continue
		}
		if p.unitAt(to) >= 0 {
			continue
		}
		moves = append(moves, Move{Kind: MoveStep, From: u, To: to})
	}
	if len(moves) == 0 {
		moves = append(moves, Move{Kind: MovePass})
	}
	return moves
}

// ApplyMove 返回走完之后的新局面；走法不属于当前一方时返回 false。
// 龙落在不在藏身处的羊上即吃掉它。
func (p *Position) ApplyMove(m Move) (*Position, bool) {
	np := *p
	np.Units = append([]Coord(nil), p.Units...)
	np.SideToMove = p.SideToMove.Opposite()
	h := p.Hash ^ p.zobrist.side

	switch {
	case p.SideToMove == Fleeing && m.Kind == MovePass:
		// 羊原地不动

	case p.SideToMove == Fleeing:
		i := p.unitAt(m.From)
		if i < 0 {
			return nil, false
		}
		h ^= p.zobrist.unitKey(p.Board.indexOf(m.From))
		if m.Kind == MoveEscape {
			np.Units = append(np.Units[:i], np.Units[i+1:]...)
			np.Escaped++
			break
		}
		if !p.Board.InBounds(m.To) {
			return nil, false
		}
		np.Units[i] = m.To
		h ^= p.zobrist.unitKey(p.Board.indexOf(m.To))

	default:
		if m.Kind != MoveStep || m.From != p.Pursuer || !p.Board.InBounds(m.To) {
			return nil, false
		}
		h ^= p.zobrist.pursuerKey(p.Board.indexOf(p.Pursuer))
		h ^= p.zobrist.pursuerKey(p.Board.indexOf(m.To))
		np.Pursuer = m.To
		if i := p.unitAt(m.To); i >= 0 && !p.immune(m.To) {
			h ^= p.zobrist.unitKey(p.Board.indexOf(m.To))
			np.Units = append(np.Units[:i], np.Units[i+1:]...)
		}
	}

	np.Hash = h
	return &np, true
}
