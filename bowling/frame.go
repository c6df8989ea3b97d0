package bowling

// Phase is where a frame is in its roll sequence.
type Phase int

const (
	PhaseEmpty Phase = iota
	PhaseAwaitingSecond
	// PhaseAwaitingBonus is only reachable in the final frame, after a strike
	// or a spare earns the third ball.
	PhaseAwaitingBonus
	PhaseComplete
)

func (p Phase) String() string {
	switch p {
	case PhaseEmpty:
		return "empty"
	case PhaseAwaitingSecond:
		return "awaiting second"
	case PhaseAwaitingBonus:
		return "awaiting bonus"
	case PhaseComplete:
		return "complete"
	}
	return "unknown"
}

// Mark is the outcome of a frame's first one or two balls.
type Mark int

const (
	MarkNone Mark = iota
	MarkOpen
	MarkSpare
	MarkStrike
)

func (m Mark) String() string {
	switch m {
	case MarkOpen:
		return "open"
	case MarkSpare:
		return "spare"
	case MarkStrike:
		return "strike"
	}
	return "none"
}

// Frame holds the rolls bowled in one of the ten frames.
type Frame interface {
	// Index is the 1-based frame number.
	Index() int
	Rolls() []Roll
	// AddRoll validates pins against the frame and appends it. A rejected
	// roll leaves the frame unchanged.
	AddRoll(pins int) error
	Phase() Phase
	Mark() Mark
	// Standing is the number of pins the next ball is thrown at, 0 once the
	// frame is complete.
	Standing() int
	IsComplete() bool
	IsStrike() bool
	IsSpare() bool
	IsOpen() bool
}

// markOf classifies the first two balls of a frame.
func markOf(rolls []Roll) Mark {
	switch {
	case len(rolls) == 0:
		return MarkNone
	case rolls[0].isStrike():
		return MarkStrike
	case len(rolls) == 1:
		return MarkNone
	case rolls[0]+rolls[1] == MaxPins:
		return MarkSpare
	default:
		return MarkOpen
	}
}

type normalFrame struct {
	index int
	rolls []Roll
	phase Phase
}

func newNormalFrame(index int) *normalFrame {
	return &normalFrame{
		index: index,
		rolls: make([]Roll, 0, normalFrameMaxRolls),
	}
}

// normalPhase is the transition function for frames 1-9.
func normalPhase(rolls []Roll) Phase {
	switch {
	case len(rolls) == 0:
		return PhaseEmpty
	case rolls[0].isStrike(), len(rolls) == normalFrameMaxRolls:
		return PhaseComplete
	default:
		return PhaseAwaitingSecond
	}
}

func (f *normalFrame) Index() int {
	return f.index
}

func (f *normalFrame) Rolls() []Roll {
	return append([]Roll(nil), f.rolls...)
}

func (f *normalFrame) AddRoll(pins int) error {
	if f.IsComplete() {
		return frameComplete(f.index)
	}
	roll, err := NewRoll(pins)
	if err != nil {
		return err
	}
	if standing := f.Standing(); pins > standing {
		return exceedsRemaining(f.index, pins, standing)
	}
	f.rolls = append(f.rolls, roll)
	f.phase = normalPhase(f.rolls)
	return nil
}

func (f *normalFrame) Phase() Phase {
	return f.phase
}

func (f *normalFrame) Mark() Mark {
	return markOf(f.rolls)
}

func (f *normalFrame) Standing() int {
	switch f.phase {
	case PhaseEmpty:
		return MaxPins
	case PhaseAwaitingSecond:
		return MaxPins - f.rolls[0].Pins()
	default:
		return 0
	}
}

func (f *normalFrame) IsComplete() bool {
	return f.phase == PhaseComplete
}

func (f *normalFrame) IsStrike() bool {
	return f.Mark() == MarkStrike
}

func (f *normalFrame) IsSpare() bool {
	return f.Mark() == MarkSpare
}

// IsOpen reports whether the frame holds rolls that are neither a strike nor
// a spare.
func (f *normalFrame) IsOpen() bool {
	return len(f.rolls) > 0 && !f.IsStrike() && !f.IsSpare()
}
