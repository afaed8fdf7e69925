package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"knightchase/internal/chase"
)

// Scenario 是批量文件里的一项：一个棋盘 + 要跑的查询
type Scenario struct {
	Name      string  `yaml:"name"`
	Board     string  `yaml:"board"`      // 内联棋盘
	BoardFile string  `yaml:"board_file"` // 相对于场景文件所在目录
	Radius    *uint32 `yaml:"radius"`
	Rounds    *uint32 `yaml:"rounds"`
	Sequences bool    `yaml:"sequences"`
}

type ScenarioFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

var ErrNoBoard = errors.New("scenario has no board")

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}

// LoadScenarios 读取 YAML 批量文件，并把 board_file 解析成内联棋盘文本
func LoadScenarios(path string) ([]Scenario, error) {
	var f ScenarioFile
	if err := loadYAML(path, &f); err != nil {
		return nil, fmt.Errorf("load scenarios %s: %w", path, err)
	}
	dir := filepath.Dir(path)
	for i := range f.Scenarios {
		sc := &f.Scenarios[i]
		if sc.Name == "" {
			sc.Name = fmt.Sprintf("scenario-%d", i+1)
		}
		if sc.Board != "" {
			continue
		}
		if sc.BoardFile == "" {
			return nil, fmt.Errorf("%s: %w", sc.Name, ErrNoBoard)
		}
		p := sc.BoardFile
		if !filepath.IsAbs(p) {
			p = filepath.Join(dir, p)
		}
		text, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("%s: read board: %w", sc.Name, err)
		}
		sc.Board = string(text)
	}
	return f.Scenarios, nil
}

// ParseBoard 解析场景里的棋盘
func (s Scenario) ParseBoard() (*chase.Board, error) {
	b, err := chase.ParseBoard(s.Board)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Name, err)
	}
	return b, nil
}
