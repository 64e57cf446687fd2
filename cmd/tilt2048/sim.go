package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilt2048/internal/games/t2048"
)

var (
	flagSimRows   string
	flagSimMoves  string
	flagSimTarget int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Tilt a fixed board and print each step",
	Long: `Build a board from rows, apply a sequence of tilts and print the board
after each one. No tiles are spawned, so the output is fully determined by
the input.

Rows are listed top to bottom and separated by '/'. Cells are separated by
',' and 0 marks an empty cell. Moves are a string of U, D, L and R.

Examples:
  tilt2048 sim --rows "0,2,2,2/0,0,0,0/0,0,0,0/0,0,0,0" --moves R
  tilt2048 sim --rows "2,2/4,4" --moves LU --target 8`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagSimRows, "rows", "", "Board rows top to bottom, e.g. \"2,0/0,2\"")
	simCmd.Flags().StringVar(&flagSimMoves, "moves", "", "Tilts to apply, e.g. \"RULD\"")
	simCmd.Flags().IntVar(&flagSimTarget, "target", 2048, "Winning tile value (0 = endless)")
	_ = simCmd.MarkFlagRequired("rows")
}

func runSim(_ *cobra.Command, _ []string) error {
	rows, err := parseRows(flagSimRows)
	if err != nil {
		return err
	}
	dirs, err := parseMoves(flagSimMoves)
	if err != nil {
		return err
	}

	state, err := t2048.NewStateFromRows(rows, 0)
	if err != nil {
		return err
	}
	if err := state.SetTarget(flagSimTarget); err != nil {
		return err
	}

	fmt.Print("start:", state)
	for i, dir := range dirs {
		res := state.Tilt(dir)
		changed := ""
		if !res.Changed {
			changed = " (no change)"
		}
		fmt.Printf("\n%d. %s +%d%s:%s", i+1, dir, res.Score, changed, state)
	}
	return nil
}

// parseRows reads "a,b/c,d" into rows of cell values.
func parseRows(s string) ([][]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("--rows is empty")
	}

	var rows [][]int
	for i, line := range strings.Split(s, "/") {
		var row []int
		for _, cell := range strings.Split(line, ",") {
			v, err := strconv.Atoi(strings.TrimSpace(cell))
			if err != nil {
				return nil, fmt.Errorf("row %d: bad cell %q: %w", i+1, cell, err)
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// parseMoves reads one direction per character, ignoring spaces.
func parseMoves(s string) ([]t2048.Direction, error) {
	var dirs []t2048.Direction
	for _, r := range s {
		if r == ' ' || r == ',' {
			continue
		}
		d, err := t2048.ParseDirection(string(r))
		if err != nil {
			return nil, err
		}
		dirs = append(dirs, d)
	}
	return dirs, nil
}
