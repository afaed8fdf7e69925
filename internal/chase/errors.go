package chase

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedBoard = errors.New("malformed board")
	ErrUnknownSymbol  = errors.New("unknown symbol")
	ErrInvalidOrigin  = errors.New("invalid origin")
	ErrZeroRounds     = errors.New("zero rounds")

	// ErrBudgetExceeded 表示超过了 Limits 里配置的上限
	ErrBudgetExceeded = errors.New("budget exceeded")
)

// SymbolError 记录无法识别的字符及其位置；Row/Col 为 -1 表示位置未知。
type SymbolError struct {
	Symbol rune
	Row    int
	Col    int
}

func (e *SymbolError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("%v: %q", ErrUnknownSymbol, e.Symbol)
	}
	return fmt.Sprintf("%v: %q at (%d,%d)", ErrUnknownSymbol, e.Symbol, e.Row, e.Col)
}

func (e *SymbolError) Is(target error) bool {
	return target == ErrUnknownSymbol
}
