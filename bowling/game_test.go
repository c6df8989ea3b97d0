package bowling

import (
	"errors"
	"reflect"
	"testing"
)

func TestStart(t *testing.T) {
	g, err := Start("  PJS ")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if g.Player() != "PJS" {
		t.Errorf("expected trimmed player name, got %q", g.Player())
	}
	if idx, ok := g.CurrentFrame(); !ok || idx != 1 {
		t.Errorf("expected frame 1 to be current, got %d %v", idx, ok)
	}

	if _, err := Start("   "); !errors.Is(err, ErrInvalidPlayerName) {
		t.Errorf("expected ErrInvalidPlayerName, got %v", err)
	}
}

func TestScoreBeforeAnyRoll(t *testing.T) {
	g := newTestGame(t)
	view := g.Score()
	if len(view) != FrameCount {
		t.Fatalf("expected %d frames, got %d", FrameCount, len(view))
	}
	first := view[0]
	if first.Started || first.Status != StatusPending || first.Value != 0 {
		t.Errorf("unexpected first frame %+v", first)
	}
	if view.Total() != 0 || view.Settled() {
		t.Errorf("expected empty unsettled view, got total %d", view.Total())
	}
}

func TestOpenFrameSettles(t *testing.T) {
	g := newTestGame(t)
	view := bowlAll(t, g, 3)
	assertFrame(t, view, 1, StatusPending, 3)

	view = bowlAll(t, g, 4)
	assertFrame(t, view, 1, StatusSettled, 7)
	if view[0].CumulativeStatus != StatusSettled || view[0].Cumulative != 7 {
		t.Errorf("unexpected cumulative %+v", view[0])
	}
}

func TestSpareWaitsForNextRoll(t *testing.T) {
	g := newTestGame(t)
	view := bowlAll(t, g, 5, 5)
	assertFrame(t, view, 1, StatusPending, 10)

	view = bowlAll(t, g, 3)
	assertFrame(t, view, 1, StatusSettled, 13)
	assertFrame(t, view, 2, StatusPending, 3)
	if view[1].CumulativeStatus != StatusPending || view[1].Cumulative != 16 {
		t.Errorf("unexpected cumulative for frame 2 %+v", view[1])
	}
}

func TestStrikeLooksAheadAcrossFrames(t *testing.T) {
	g := newTestGame(t)
	view := bowlAll(t, g, 10)
	assertFrame(t, view, 1, StatusPending, 10)

	view = bowlAll(t, g, 10)
	assertFrame(t, view, 1, StatusPending, 20)
	assertFrame(t, view, 2, StatusPending, 10)

	view = bowlAll(t, g, 3)
	assertFrame(t, view, 1, StatusSettled, 23)
	assertFrame(t, view, 2, StatusPending, 13)
	if view[0].Cumulative != 23 || view[0].CumulativeStatus != StatusSettled {
		t.Errorf("unexpected cumulative for frame 1 %+v", view[0])
	}
}

func TestMixedGame(t *testing.T) {
	g := newTestGame(t)
	view := bowlAll(t, g, 10, 5, 5, 5, 5, 10, 0, 0, 0, 0)

	want := []struct {
		value, cumulative int
	}{
		{20, 20},
		{15, 35},
		{20, 55},
		{10, 65},
		{0, 65},
		{0, 65},
	}
	for i, w := range want {
		assertFrame(t, view, i+1, StatusSettled, w.value)
		if view[i].Cumulative != w.cumulative {
			t.Errorf("frame %d: expected cumulative %d, got %d", i+1, w.cumulative, view[i].Cumulative)
		}
	}
	if view[6].Started {
		t.Errorf("frame 7 should not be started")
	}
	if idx, _ := g.CurrentFrame(); idx != 7 {
		t.Errorf("expected frame 7 current, got %d", idx)
	}
}

func TestFullGames(t *testing.T) {
	tests := []struct {
		name  string
		rolls []int
		total int
	}{
		{"gutter game", repeat(0, 20), 0},
		{"all ones", repeat(1, 20), 20},
		{"perfect game", repeat(10, 12), 300},
		{"all spares", repeat(5, 21), 150},
		{"nine and miss", []int{9, 0, 9, 0, 9, 0, 9, 0, 9, 0, 9, 0, 9, 0, 9, 0, 9, 0, 9, 0}, 90},
		{"spare in tenth", append(repeat(0, 18), 5, 5, 3), 13},
		{"strike into tenth", append(repeat(0, 16), 10, 10, 10, 10), 60},
		{"open tenth", append(repeat(10, 9), 3, 4), 257},
		{"classic", []int{1, 4, 4, 5, 6, 4, 5, 5, 10, 0, 1, 7, 3, 6, 4, 10, 2, 8, 6}, 133},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t)
			view := bowlAll(t, g, tt.rolls...)
			if !g.IsOver() {
				t.Fatalf("expected game over")
			}
			if !view.Settled() {
				t.Errorf("expected every frame settled: %+v", view)
			}
			if view.Total() != tt.total {
				t.Errorf("expected total %d, got %d", tt.total, view.Total())
			}
		})
	}
}

func TestPerfectTenthFrame(t *testing.T) {
	g := newTestGame(t)
	view := bowlAll(t, g, repeat(10, 11)...)
	if g.IsOver() {
		t.Fatal("game ended before the third ball of frame 10")
	}
	assertFrame(t, view, 10, StatusPending, 20)

	view = bowlAll(t, g, 10)
	assertFrame(t, view, 10, StatusSettled, 30)
	if !g.IsOver() {
		t.Error("expected game over after third ball of frame 10")
	}
}

func TestBowlAfterGameOver(t *testing.T) {
	g := newTestGame(t)
	bowlAll(t, g, repeat(0, 20)...)
	before := g.Score()

	_, err := g.Bowl(0)
	if !errors.Is(err, ErrGameAlreadyFinished) {
		t.Fatalf("expected ErrGameAlreadyFinished, got %v", err)
	}
	if _, ok := g.CurrentFrame(); ok {
		t.Error("expected no current frame")
	}
	if !reflect.DeepEqual(before, g.Score()) {
		t.Error("score changed after rejected roll")
	}
}

func TestRejectedRollLeavesGameUnchanged(t *testing.T) {
	g := newTestGame(t)
	bowlAll(t, g, 10, 7)
	before := g.Score()

	if _, err := g.Bowl(4); !errors.Is(err, ErrPinCountExceedsRemaining) {
		t.Fatalf("expected ErrPinCountExceedsRemaining, got %v", err)
	}
	if _, err := g.Bowl(-3); !errors.Is(err, ErrInvalidPinCount) {
		t.Fatalf("expected ErrInvalidPinCount, got %v", err)
	}
	if !reflect.DeepEqual(before, g.Score()) {
		t.Error("score changed after rejected rolls")
	}
}

func TestScoreIsIdempotent(t *testing.T) {
	g := newTestGame(t)
	bowlAll(t, g, 10, 3, 7, 4)

	first := g.Score()
	second := g.Score()
	if !reflect.DeepEqual(first, second) {
		t.Errorf("score views differ:\n%+v\n%+v", first, second)
	}

	first[0].Value = 999
	first[0].Rolls[0] = 0
	if reflect.DeepEqual(first, g.Score()) {
		t.Error("caller mutated the cached view")
	}
}

func TestResolveMatchesGameScore(t *testing.T) {
	fs := NewFrames()
	for _, p := range []int{10, 10, 10, 2, 3} {
		if err := fs.Submit(p); err != nil {
			t.Fatalf("Submit(%d): %v", p, err)
		}
	}
	view := Resolve(fs)
	assertFrame(t, view, 1, StatusSettled, 30)
	assertFrame(t, view, 2, StatusSettled, 22)
	assertFrame(t, view, 3, StatusSettled, 15)
	assertFrame(t, view, 4, StatusSettled, 5)
	if view.Total() != 72 {
		t.Errorf("expected 72, got %d", view.Total())
	}
}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g, err := Start("PJS")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	return g
}

func bowlAll(t *testing.T, g *Game, rolls ...int) ScoreView {
	t.Helper()
	view := g.Score()
	for _, p := range rolls {
		var err error
		view, err = g.Bowl(p)
		if err != nil {
			t.Fatalf("Bowl(%d): %v", p, err)
		}
	}
	return view
}

func assertFrame(t *testing.T, view ScoreView, index int, status Status, value int) {
	t.Helper()
	s, ok := view.Frame(index)
	if !ok {
		t.Fatalf("frame %d missing from view", index)
	}
	if s.Status != status || s.Value != value {
		t.Errorf("frame %d: expected %s %d, got %s %d", index, status, value, s.Status, s.Value)
	}
}

func repeat(pins, times int) []int {
	rolls := make([]int, times)
	for i := range rolls {
		rolls[i] = pins
	}
	return rolls
}
