package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"knightchase/internal/chase"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoadScenarios(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "corner.txt"), "D....\n.....\n.S...\n.....\n.....\n")
	writeFile(t, filepath.Join(dir, "batch.yaml"), `
scenarios:
  - name: inline
    board: |
      D..
      ..S
    radius: 2
  - board_file: corner.txt
    rounds: 1
    sequences: true
`)

	got, err := LoadScenarios(filepath.Join(dir, "batch.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Name != "inline" || got[0].Radius == nil || *got[0].Radius != 2 || got[0].Rounds != nil {
		t.Fatalf("first scenario = %+v", got[0])
	}
	if got[1].Name != "scenario-2" || got[1].Rounds == nil || *got[1].Rounds != 1 || !got[1].Sequences {
		t.Fatalf("second scenario = %+v", got[1])
	}

	b, err := got[1].ParseBoard()
	if err != nil {
		t.Fatalf("parse board: %v", err)
	}
	if n, err := chase.SimulateRounds(b, *got[1].Rounds); err != nil || n != 1 {
		t.Fatalf("simulate = %d, %v", n, err)
	}
}

func TestLoadScenariosMissingBoard(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "batch.yaml"), "scenarios:\n  - name: empty\n    radius: 1\n")
	_, err := LoadScenarios(filepath.Join(dir, "batch.yaml"))
	if !errors.Is(err, ErrNoBoard) {
		t.Fatalf("err = %v, want ErrNoBoard", err)
	}
}

func TestScenarioParseBoardError(t *testing.T) {
	sc := Scenario{Name: "bad", Board: "D.\n."}
	if _, err := sc.ParseBoard(); !errors.Is(err, chase.ErrMalformedBoard) {
		t.Fatalf("err = %v, want ErrMalformedBoard", err)
	}
}
