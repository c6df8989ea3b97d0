package bowling

// finalFrame is the tenth frame. A strike or spare earns a third ball, and
// any ball that clears the deck resets the rack to ten pins.
type finalFrame struct {
	rolls []Roll
	phase Phase
}

func newFinalFrame() *finalFrame {
	return &finalFrame{
		rolls: make([]Roll, 0, finalFrameMaxRolls),
	}
}

// finalPhase is the transition function for frame 10.
func finalPhase(rolls []Roll) Phase {
	switch len(rolls) {
	case 0:
		return PhaseEmpty
	case 1:
		return PhaseAwaitingSecond
	case 2:
		if markOf(rolls) == MarkOpen {
			return PhaseComplete
		}
		return PhaseAwaitingBonus
	default:
		return PhaseComplete
	}
}

// finalStanding reports the pins standing before the next ball. Only two
// pairs of balls can share a rack: roll 1 and roll 2 when roll 1 is not a
// strike, and roll 2 and roll 3 when roll 1 is a strike and roll 2 is not.
func finalStanding(rolls []Roll) int {
	switch len(rolls) {
	case 0:
		return MaxPins
	case 1:
		if rolls[0].isStrike() {
			return MaxPins
		}
		return MaxPins - rolls[0].Pins()
	case 2:
		switch markOf(rolls) {
		case MarkStrike:
			if rolls[1].isStrike() {
				return MaxPins
			}
			return MaxPins - rolls[1].Pins()
		case MarkSpare:
			return MaxPins
		}
	}
	return 0
}

func (f *finalFrame) Index() int {
	return FrameCount
}

func (f *finalFrame) Rolls() []Roll {
	return append([]Roll(nil), f.rolls...)
}

func (f *finalFrame) AddRoll(pins int) error {
	if f.IsComplete() {
		return frameComplete(FrameCount)
	}
	roll, err := NewRoll(pins)
	if err != nil {
		return err
	}
	if standing := f.Standing(); pins > standing {
		return exceedsRemaining(FrameCount, pins, standing)
	}
	f.rolls = append(f.rolls, roll)
	f.phase = finalPhase(f.rolls)
	return nil
}

func (f *finalFrame) Phase() Phase {
	return f.phase
}

func (f *finalFrame) Mark() Mark {
	return markOf(f.rolls)
}

func (f *finalFrame) Standing() int {
	return finalStanding(f.rolls)
}

func (f *finalFrame) IsComplete() bool {
	return f.phase == PhaseComplete
}

func (f *finalFrame) IsStrike() bool {
	return f.Mark() == MarkStrike
}

func (f *finalFrame) IsSpare() bool {
	return f.Mark() == MarkSpare
}

func (f *finalFrame) IsOpen() bool {
	return len(f.rolls) > 0 && !f.IsStrike() && !f.IsSpare()
}
