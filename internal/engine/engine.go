package engine

// Limits 限制搜索规模；0 表示不限制
type Limits struct {
	MaxStates int
}

type Engine struct {
	tt     map[uint64]ttEntry // TT 在 tt.go 定义
	nodes  int64
	Limits Limits
}

func NewEngine() *Engine {
	return &Engine{
		tt: make(map[uint64]ttEntry, 1<<12),
	}
}

// Result 是一次计数的结果
type Result struct {
	Sequences uint64
	Nodes     int64 // 访问过的局面数（含 TT 命中）
	States    int   // TT 中不同局面数
}

func (e *Engine) reset() {
	e.tt = make(map[uint64]ttEntry, 1<<12)
	e.nodes = 0
}
