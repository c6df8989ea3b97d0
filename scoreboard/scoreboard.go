// Package scoreboard renders a game as a text scoreboard:
//
//	| NAME |  01  |  02  | ... |  10  |
//	| PJS  |  X   | 9|/  | ... |X|X|X |
//	|      |  20  |  39  | ... | 300  |
//
// Cumulative scores are printed only once settled.
package scoreboard

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tiggercwh/go-bowling/bowling"
	"github.com/tiggercwh/go-bowling/gameModel"
)

const cellWidth = 6

const (
	strikeSymbol = "X"
	spareSymbol  = "/"
	gutterSymbol = "-"
)

// Render writes the three scoreboard lines for state.
func Render(w io.Writer, state gameModel.GameState) error {
	header := []string{"NAME"}
	marks := []string{state.Player}
	totals := []string{""}

	for _, f := range state.Frames {
		header = append(header, fmt.Sprintf("%02d", f.Frame))
		marks = append(marks, strings.Join(Symbols(f.Rolls), "|"))
		if f.Started && f.CumulativeStatus == bowling.StatusSettled {
			totals = append(totals, strconv.Itoa(f.Cumulative))
		} else {
			totals = append(totals, "")
		}
	}

	for _, row := range [][]string{header, marks, totals} {
		if _, err := fmt.Fprintln(w, line(row)); err != nil {
			return fmt.Errorf("write scoreboard: %w", err)
		}
	}
	return nil
}

// Symbols converts a frame's pin counts to bowling notation. A ball thrown at
// a full rack that clears it is a strike; a later ball that clears what is
// left is a spare.
func Symbols(rolls []int) []string {
	symbols := make([]string, 0, len(rolls))
	standing := bowling.MaxPins
	fresh := true
	for _, pins := range rolls {
		switch {
		case fresh && pins == bowling.MaxPins:
			symbols = append(symbols, strikeSymbol)
		case !fresh && pins == standing:
			symbols = append(symbols, spareSymbol)
		case pins == 0:
			symbols = append(symbols, gutterSymbol)
		default:
			symbols = append(symbols, strconv.Itoa(pins))
		}

		standing -= pins
		fresh = standing == 0
		if fresh {
			standing = bowling.MaxPins
		}
	}
	return symbols
}

func line(cells []string) string {
	var b strings.Builder
	b.WriteString("|")
	for _, c := range cells {
		b.WriteString(center(c))
		b.WriteString("|")
	}
	return b.String()
}

func center(s string) string {
	if len(s) >= cellWidth {
		return s[:cellWidth]
	}
	left := (cellWidth - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", cellWidth-len(s)-left)
}
