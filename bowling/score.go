package bowling

// Status tells whether a score is final.
type Status string

const (
	// StatusPending means the frame is unfinished or still waits for the
	// bonus rolls a strike or spare is owed.
	StatusPending Status = "PENDING"
	StatusSettled Status = "SETTLED"
)

// FrameScore is one frame of a score view.
type FrameScore struct {
	Index   int
	Rolls   []Roll
	Mark    Mark
	Started bool
	Status  Status
	// Value is the frame's own score. For a pending frame it holds the pins
	// known so far, bonus rolls included.
	Value int

	Cumulative       int
	CumulativeStatus Status
}

func (s FrameScore) Settled() bool {
	return s.Status == StatusSettled
}

// ScoreView is the score of every frame, frame 1 first.
type ScoreView []FrameScore

// Total is the running score through the last frame, settled or not.
func (v ScoreView) Total() int {
	if len(v) == 0 {
		return 0
	}
	return v[len(v)-1].Cumulative
}

// Settled reports whether every frame's score is final.
func (v ScoreView) Settled() bool {
	for _, s := range v {
		if !s.Settled() {
			return false
		}
	}
	return len(v) > 0
}

// Frame returns the score of a 1-based frame index.
func (v ScoreView) Frame(index int) (FrameScore, bool) {
	if index < 1 || index > len(v) {
		return FrameScore{}, false
	}
	return v[index-1], true
}

// Resolve scores every frame from the rolls recorded so far. It never fails:
// anything that depends on rolls not yet bowled is reported as pending.
//
// Strike and spare bonuses are taken from the rolls that follow the frame in
// the order they were bowled, so a strike followed by a strike reaches into
// the frame after next.
func Resolve(fs *Frames) ScoreView {
	all := fs.Rolls()
	view := make(ScoreView, 0, FrameCount)

	offset := 0
	cumulative := 0
	cumulativeStatus := StatusSettled
	for _, f := range fs.frames {
		rolls := f.Rolls()
		offset += len(rolls)

		score := FrameScore{
			Index:   f.Index(),
			Rolls:   rolls,
			Mark:    f.Mark(),
			Started: len(rolls) > 0,
		}
		score.Value, score.Status = frameValue(f, rolls, all[offset:])

		cumulative += score.Value
		if score.Status == StatusPending {
			cumulativeStatus = StatusPending
		}
		score.Cumulative = cumulative
		score.CumulativeStatus = cumulativeStatus

		view = append(view, score)
	}
	return view
}

// frameValue scores a single frame given the rolls bowled after it.
func frameValue(f Frame, rolls, following []Roll) (int, Status) {
	value := sumRolls(rolls)
	if !f.IsComplete() {
		return value, StatusPending
	}
	// The tenth frame's extra balls are its own bonus.
	if f.Index() == FrameCount {
		return value, StatusSettled
	}

	owed := 0
	switch {
	case f.IsStrike():
		owed = strikeBonusRolls
	case f.IsSpare():
		owed = spareBonusRolls
	}
	if owed == 0 {
		return value, StatusSettled
	}

	if len(following) < owed {
		return value + sumRolls(following), StatusPending
	}
	return value + sumRolls(following[:owed]), StatusSettled
}
