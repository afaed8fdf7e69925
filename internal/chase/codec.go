package chase

import (
	"fmt"
	"strings"
)

// ParseBoard 解析文本棋盘：每行一行格子，首尾空白会被去掉，各行必须等长。
func ParseBoard(text string) (*Board, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: no rows", ErrMalformedBoard)
	}
	lines := strings.Split(text, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " \t\r")
	}

	cols := len([]rune(lines[0]))
	if cols == 0 {
		return nil, fmt.Errorf("%w: no columns", ErrMalformedBoard)
	}

	b := &Board{
		Rows:  len(lines),
		Cols:  cols,
		Cells: make([]Role, 0, len(lines)*cols),
	}
	for r, line := range lines {
		row := []rune(line)
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrMalformedBoard, r, len(row), cols)
		}
		for c, ch := range row {
			role, err := Classify(ch)
			if err != nil {
				return nil, &SymbolError{Symbol: ch, Row: r, Col: c}
			}
			b.Cells = append(b.Cells, role)
		}
	}
	return b, nil
}

// MustParseBoard 用于测试和固定棋盘，解析失败直接 panic
func MustParseBoard(text string) *Board {
	b, err := ParseBoard(text)
	if err != nil {
		panic(err)
	}
	return b
}

func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.Rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < b.Cols; c++ {
			sb.WriteRune(b.Cells[b.indexOf(Coord{r, c})].Symbol())
		}
	}
	return sb.String()
}

// Render 输出棋盘，mark 中的格子用 marker 覆盖显示
func (b *Board) Render(mark *CoordSet, marker rune) string {
	var sb strings.Builder
	for r := 0; r < b.Rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < b.Cols; c++ {
			pos := Coord{r, c}
			if mark.Has(pos) {
				sb.WriteRune(marker)
				continue
			}
			sb.WriteRune(b.Role(pos).Symbol())
		}
	}
	return sb.String()
}
