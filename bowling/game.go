package bowling

import "strings"

// Game is one player's game. It is not safe for concurrent use; callers that
// share a Game must serialise access to it.
type Game struct {
	player string
	frames *Frames

	view  ScoreView
	stale bool
}

// Start begins a new game for the named player.
func Start(player string) (*Game, error) {
	player = strings.TrimSpace(player)
	if player == "" {
		return nil, ErrInvalidPlayerName
	}
	return &Game{
		player: player,
		frames: NewFrames(),
		stale:  true,
	}, nil
}

func (g *Game) Player() string {
	return g.player
}

// Bowl records a roll and returns the updated score view. On error the game
// is unchanged.
func (g *Game) Bowl(pins int) (ScoreView, error) {
	if err := g.frames.Submit(pins); err != nil {
		return nil, err
	}
	g.stale = true
	return g.Score(), nil
}

func (g *Game) IsOver() bool {
	return g.frames.IsGameOver()
}

// Score returns the current score view. The view is cached between rolls and
// callers get their own copy.
func (g *Game) Score() ScoreView {
	if g.stale {
		g.view = Resolve(g.frames)
		g.stale = false
	}
	return cloneView(g.view)
}

// CurrentFrame returns the index of the frame the next roll goes to, and false
// once the game is over.
func (g *Game) CurrentFrame() (int, bool) {
	f, err := g.frames.Current()
	if err != nil {
		return 0, false
	}
	return f.Index(), true
}

func cloneView(v ScoreView) ScoreView {
	out := make(ScoreView, len(v))
	for i, s := range v {
		s.Rolls = append([]Roll(nil), s.Rolls...)
		out[i] = s
	}
	return out
}
