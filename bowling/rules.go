// Package bowling scores a single ten-pin bowling game roll by roll.
//
// A Game owns a fixed sequence of ten frames. Rolls are validated against the
// frame they land in and the score view is resolved from the chronological
// roll list, reporting frames that still wait for bonus rolls as pending.
package bowling

const (
	MinPins    = 0
	MaxPins    = 10
	FrameCount = 10

	normalFrameMaxRolls = 2
	finalFrameMaxRolls  = 3

	strikeBonusRolls = 2
	spareBonusRolls  = 1
)
