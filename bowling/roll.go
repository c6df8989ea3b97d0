package bowling

// Roll is the number of pins knocked down by one ball.
type Roll int

// NewRoll validates a pin count.
func NewRoll(pins int) (Roll, error) {
	if pins < MinPins || pins > MaxPins {
		return 0, invalidPinCount(pins)
	}
	return Roll(pins), nil
}

func (r Roll) Pins() int {
	return int(r)
}

func (r Roll) isStrike() bool {
	return r == MaxPins
}

func sumRolls(rolls []Roll) int {
	total := 0
	for _, r := range rolls {
		total += int(r)
	}
	return total
}
