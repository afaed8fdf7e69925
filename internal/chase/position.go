package chase

type Side int8

const (
	Fleeing  Side = 0 // 羊先走
	Pursuing Side = 1
)

func (s Side) Opposite() Side {
	if s == Fleeing {
		return Pursuing
	}
	return Fleeing
}

// Position 是逐步对弈时的局面：龙的唯一位置 + 场上的羊 + 轮到谁。
// 与 Simulator 的“前沿”不同，这里龙每步只在一个格子上。
type Position struct {
	Board      *Board
	Pursuer    Coord
	Units      []Coord
	SideToMove Side
	Escaped    int // 已经跑出棋盘的羊
	Hash       uint64

	zobrist *Zobrist
}

// NewPosition 从初始棋盘构造对弈局面，羊先走
func NewPosition(b *Board) (*Position, error) {
	origin, err := PursuerOrigin(b)
	if err != nil {
		return nil, err
	}
	p := &Position{
		Board:      b,
		Pursuer:    origin,
		Units:      b.Find(FleeingUnit),
		SideToMove: Fleeing,
		zobrist:    NewZobrist(b),
	}
	p.Hash = p.CalculateHash()
	return p, nil
}

func (p *Position) unitAt(c Coord) int {
	for i, u := range p.Units {
		if u == c {
			return i
		}
	}
	return -1
}

func (p *Position) immune(c Coord) bool {
	return p.Board.Role(c) == ImmuneZone
}
