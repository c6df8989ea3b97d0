package bowling

import (
	"fmt"
	"strconv"
)

// Code is a machine-readable error code.
type Code string

const (
	CodeInvalidPinCount          Code = "INVALID_PIN_COUNT"
	CodePinCountExceedsRemaining Code = "PIN_COUNT_EXCEEDS_REMAINING"
	CodeFrameAlreadyComplete     Code = "FRAME_ALREADY_COMPLETE"
	CodeGameAlreadyFinished      Code = "GAME_ALREADY_FINISHED"
	CodeInvalidPlayerName        Code = "INVALID_PLAYER_NAME"
)

// Error is a rejected caller input. Every Error is recoverable: the caller is
// expected to correct the input and try again.
type Error struct {
	Code     Code
	Message  string
	Metadata map[string]string
}

func (e *Error) Error() string {
	return e.Message
}

// Is reports whether target carries the same code, so errors.Is matches the
// sentinels below regardless of metadata.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

var (
	ErrInvalidPinCount          = &Error{Code: CodeInvalidPinCount, Message: "pin count must be between 0 and 10"}
	ErrPinCountExceedsRemaining = &Error{Code: CodePinCountExceedsRemaining, Message: "pin count exceeds standing pins"}
	ErrFrameAlreadyComplete     = &Error{Code: CodeFrameAlreadyComplete, Message: "frame is already complete"}
	ErrGameAlreadyFinished      = &Error{Code: CodeGameAlreadyFinished, Message: "game is already finished"}
	ErrInvalidPlayerName        = &Error{Code: CodeInvalidPlayerName, Message: "player name must not be empty"}
)

func newError(base *Error, message string, metadata map[string]string) *Error {
	return &Error{
		Code:     base.Code,
		Message:  message,
		Metadata: metadata,
	}
}

func invalidPinCount(pins int) *Error {
	return newError(ErrInvalidPinCount,
		fmt.Sprintf("pin count %d is outside %d..%d", pins, MinPins, MaxPins),
		map[string]string{"pins": strconv.Itoa(pins)})
}

func exceedsRemaining(frame, pins, standing int) *Error {
	return newError(ErrPinCountExceedsRemaining,
		fmt.Sprintf("frame %d: cannot knock down %d pins, %d standing", frame, pins, standing),
		map[string]string{
			"frame":    strconv.Itoa(frame),
			"pins":     strconv.Itoa(pins),
			"standing": strconv.Itoa(standing),
		})
}

func frameComplete(frame int) *Error {
	return newError(ErrFrameAlreadyComplete,
		fmt.Sprintf("frame %d is already complete", frame),
		map[string]string{"frame": strconv.Itoa(frame)})
}
