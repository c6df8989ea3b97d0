package gameModel

import (
	"time"

	"github.com/tiggercwh/go-bowling/bowling"
)

type FrameResult struct {
	Frame            int            `json:"frame"`
	Rolls            []int          `json:"rolls"`
	Mark             string         `json:"mark"`
	Started          bool           `json:"started"`
	Status           bowling.Status `json:"status"`
	Value            int            `json:"value"`
	Cumulative       int            `json:"cumulative"`
	CumulativeStatus bowling.Status `json:"cumulativeStatus"`
}

type GameState struct {
	ID           string        `json:"id"`
	Player       string        `json:"player"`
	Frames       []FrameResult `json:"frames"`
	CurrentFrame int           `json:"currentFrame"`
	Total        int           `json:"total"`
	GameOver     bool          `json:"gameOver"`
	CreatedAt    string        `json:"createdAt"`
	LastActivity string        `json:"lastActivity"`
}

type NewGameRequest struct {
	Player string `json:"player"`
}

type NewGameResponse struct {
	Success   bool       `json:"success"`
	Message   string     `json:"message"`
	Code      string     `json:"code,omitempty"`
	GameState *GameState `json:"gameState,omitempty"`
}

type RollRequest struct {
	Pins *int `json:"pins"`
}

type RollResponse struct {
	Success   bool       `json:"success"`
	Message   string     `json:"message"`
	Code      string     `json:"code,omitempty"`
	GameState *GameState `json:"gameState,omitempty"`
	GameOver  bool       `json:"gameOver"`
}

// NewGameState converts a game's current score view into its wire shape.
func NewGameState(id string, game *bowling.Game, createdAt, lastActivity time.Time) GameState {
	view := game.Score()
	current, _ := game.CurrentFrame()
	return GameState{
		ID:           id,
		Player:       game.Player(),
		Frames:       FrameResults(view),
		CurrentFrame: current,
		Total:        view.Total(),
		GameOver:     game.IsOver(),
		CreatedAt:    createdAt.Format(time.RFC3339),
		LastActivity: lastActivity.Format(time.RFC3339),
	}
}

func FrameResults(view bowling.ScoreView) []FrameResult {
	results := make([]FrameResult, len(view))
	for i, s := range view {
		rolls := make([]int, len(s.Rolls))
		for j, r := range s.Rolls {
			rolls[j] = r.Pins()
		}
		results[i] = FrameResult{
			Frame:            s.Index,
			Rolls:            rolls,
			Mark:             s.Mark.String(),
			Started:          s.Started,
			Status:           s.Status,
			Value:            s.Value,
			Cumulative:       s.Cumulative,
			CumulativeStatus: s.CumulativeStatus,
		}
	}
	return results
}
