package chase

// State 是一次模拟的全部可变状态，由 Simulator.Step 显式推进
type State struct {
	Round    int
	Frontier *CoordSet // 龙当前所有可能位置
	Units    []Unit    // 仍在场上的羊
	Immune   *CoordSet
	Captured uint64
	Escaped  uint64
}

// RoundReport 描述一轮结束后的变化，供调用方记录
type RoundReport struct {
	Round         int
	FrontierSize  int
	Captured      []Unit
	Escaped       []Unit
	Live          int
	TotalCaptured uint64
}

type Simulator struct {
	Board   *Board
	OnRound func(RoundReport)
}

func NewSimulator(b *Board) *Simulator {
	return &Simulator{Board: b}
}

// NewState 从棋盘构造初始状态，要求恰好一个追捕者
func (s *Simulator) NewState() (*State, error) {
	origin, err := PursuerOrigin(s.Board)
	if err != nil {
		return nil, err
	}
	frontier := NewCoordSet(s.Board)
	frontier.Add(origin)
	return &State{
		Frontier: frontier,
		Units:    s.Board.Units(),
		Immune:   s.Board.ImmuneSet(),
	}, nil
}

// Step 推进一轮：龙跳 -> 抓 -> 羊走 -> 抓。
// 被抓的羊立即移出，同一轮第二次检查不会重复计数。
func (s *Simulator) Step(st *State) {
	st.Round++
	rep := RoundReport{Round: st.Round}

	st.Frontier = Expand(s.Board, st.Frontier)
	rep.Captured = capture(st, rep.Captured)

	live := st.Units[:0]
	for _, u := range st.Units {
		next := u.Pos.Add(1, 0)
		if next.Row >= s.Board.Rows {
			st.Escaped++
			rep.Escaped = append(rep.Escaped, u)
			continue
		}
		u.Pos = next
		live = append(live, u)
	}
	st.Units = live

	rep.Captured = capture(st, rep.Captured)

	rep.FrontierSize = st.Frontier.Len()
	rep.Live = len(st.Units)
	rep.TotalCaptured = st.Captured
	if s.OnRound != nil {
		s.OnRound(rep)
	}
}

// Run 固定跑 rounds 轮，不因羊被抓光而提前结束
func (s *Simulator) Run(st *State, rounds int) {
	for i := 0; i < rounds; i++ {
		s.Step(st)
	}
}

func capture(st *State, caught []Unit) []Unit {
	live := st.Units[:0]
	for _, u := range st.Units {
		if st.Frontier.Has(u.Pos) && !st.Immune.Has(u.Pos) {
			st.Captured++
			caught = append(caught, u)
			continue
		}
		live = append(live, u)
	}
	st.Units = live
	return caught
}
