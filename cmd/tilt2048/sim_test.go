package main

import (
	"slices"
	"testing"

	"github.com/vovakirdan/tilt2048/internal/games/t2048"
)

func TestParseRows(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    [][]int
		wantErr bool
	}{
		{name: "square", in: "0,2/4,0", want: [][]int{{0, 2}, {4, 0}}},
		{name: "spaces", in: " 2 , 2 / 0 , 8 ", want: [][]int{{2, 2}, {0, 8}}},
		{name: "empty", in: "", wantErr: true},
		{name: "not a number", in: "2,x/0,0", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseRows(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseRows(%q) = %v, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseRows(%q) error: %v", tt.in, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("parseRows(%q) = %v, want %v", tt.in, got, tt.want)
			}
			for i := range got {
				if !slices.Equal(got[i], tt.want[i]) {
					t.Errorf("row %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParseMoves(t *testing.T) {
	got, err := parseMoves("RU l,d")
	if err != nil {
		t.Fatalf("parseMoves error: %v", err)
	}
	want := []t2048.Direction{t2048.DirRight, t2048.DirUp, t2048.DirLeft, t2048.DirDown}
	if !slices.Equal(got, want) {
		t.Errorf("parseMoves = %v, want %v", got, want)
	}

	if _, err := parseMoves("RX"); err == nil {
		t.Error("parseMoves(\"RX\") should fail")
	}
}

func TestParsedRowsBuildBoard(t *testing.T) {
	rows, err := parseRows("0,2,2,2/0,0,0,0/0,0,0,0/0,0,0,0")
	if err != nil {
		t.Fatal(err)
	}
	s, err := t2048.NewStateFromRows(rows, 0)
	if err != nil {
		t.Fatal(err)
	}

	res := s.Tilt(t2048.DirRight)
	if res.Score != 4 {
		t.Errorf("score = %d, want 4", res.Score)
	}
	if got := s.Rows()[0]; !slices.Equal(got, []int{0, 0, 2, 4}) {
		t.Errorf("top row = %v, want [0 0 2 4]", got)
	}
}
