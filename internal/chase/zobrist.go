package chase

// Zobrist 是按棋盘尺寸生成的随机键表，同一尺寸的棋盘得到同一组键
type Zobrist struct {
	pursuer []uint64
	units   []uint64
	side    uint64
}

func NewZobrist(b *Board) *Zobrist {
	n := b.NumCells()
	z := &Zobrist{
		pursuer: make([]uint64, n),
		units:   make([]uint64, n),
	}

	seed := uint64(0x9E3779B97F4A7C15)
	next := func() uint64 {
		seed += 0x9E3779B97F4A7C15
		v := seed
		v = (v ^ (v >> 30)) * 0xBF58476D1CE4E5B9
		v = (v ^ (v >> 27)) * 0x94D049BB133111EB
		return v ^ (v >> 31)
	}
	for sq := 0; sq < n; sq++ {
		z.pursuer[sq] = next()
	}
	for sq := 0; sq < n; sq++ {
		z.units[sq] = next()
	}
	z.side = next()
	return z
}

func (z *Zobrist) pursuerKey(sq int) uint64 {
	if sq < 0 || sq >= len(z.pursuer) {
		return 0
	}
	return z.pursuer[sq]
}

func (z *Zobrist) unitKey(sq int) uint64 {
	if sq < 0 || sq >= len(z.units) {
		return 0
	}
	return z.units[sq]
}

// CalculateHash 全量计算局面哈希
func (p *Position) CalculateHash() uint64 {
	var h uint64
	h ^= p.zobrist.pursuerKey(p.Board.indexOf(p.Pursuer))
	for _, u := range p.Units {
		h ^= p.zobrist.unitKey(p.Board.indexOf(u))
	}
	if p.SideToMove == Pursuing {
		h ^= p.zobrist.side
	}
	return h
}
