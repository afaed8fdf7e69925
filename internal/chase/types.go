package chase

import "fmt"

type Role int8

const (
	Empty       Role = iota
	FleeingUnit      // 羊
	Pursuer          // 龙
	ImmuneZone       // 藏身处
)

var symbolToRole = map[rune]Role{
	'.': Empty,
	'S': FleeingUnit,
	'D': Pursuer,
	'#': ImmuneZone,
}

// Classify 把棋盘字符映射成格子角色。
func Classify(symbol rune) (Role, error) {
	r, ok := symbolToRole[symbol]
	if !ok {
		return Empty, &SymbolError{Symbol: symbol, Row: -1, Col: -1}
	}
	return r, nil
}

func (r Role) Symbol() rune {
	for k, v := range symbolToRole {
		if v == r {
			return k
		}
	}
	return '?'
}

func (r Role) String() string {
	switch r {
	case Empty:
		return "empty"
	case FleeingUnit:
		return "fleeing"
	case Pursuer:
		return "pursuer"
	case ImmuneZone:
		return "immune"
	}
	return fmt.Sprintf("Role(%d)", int8(r))
}

// Coord 是 (行, 列)，按值比较
type Coord struct {
	Row int
	Col int
}

func (c Coord) Add(dr, dc int) Coord { return Coord{Row: c.Row + dr, Col: c.Col + dc} }

func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }

// Unit 是一只逃跑单位；ID 为它在初始棋盘上的行优先序号
type Unit struct {
	ID  int
	Pos Coord
}
