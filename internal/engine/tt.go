package engine

import (
	"fmt"

	"knightchase/internal/chase"
)

// TT 条目：某个局面之后还能得到多少条吃光序列
type ttEntry struct {
	Key   uint64
	Count uint64
}

func (e *Engine) probeTT(key uint64) (uint64, bool) {
	ent, ok := e.tt[key]
	if !ok {
		return 0, false
	}
	return ent.Count, true
}

func (e *Engine) storeTT(key uint64, count uint64) error {
	if _, ok := e.tt[key]; !ok && e.Limits.MaxStates > 0 && len(e.tt) >= e.Limits.MaxStates {
		return fmt.Errorf("%w: more than %d states", chase.ErrBudgetExceeded, e.Limits.MaxStates)
	}
	e.tt[key] = ttEntry{Key: key, Count: count}
	return nil
}
