package main

import (
	"errors"
	"net/http"

	"github.com/tiggercwh/go-bowling/bowling"
)

var errMissingPins = errors.New("pins is required")

// statusFor maps an error to an HTTP status and a machine-readable code.
func statusFor(err error) (int, string) {
	var bowlingErr *bowling.Error
	if errors.As(err, &bowlingErr) {
		switch bowlingErr.Code {
		// Bad input
		case bowling.CodeInvalidPinCount,
			bowling.CodePinCountExceedsRemaining,
			bowling.CodeInvalidPlayerName:
			return http.StatusBadRequest, string(bowlingErr.Code)

		// Game state doesn't allow the roll
		case bowling.CodeFrameAlreadyComplete,
			bowling.CodeGameAlreadyFinished:
			return http.StatusConflict, string(bowlingErr.Code)
		}
		return http.StatusInternalServerError, string(bowlingErr.Code)
	}

	switch {
	case errors.Is(err, errGameNotFound):
		return http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, errMissingPins):
		return http.StatusBadRequest, "PINS_MISSING"
	}
	return http.StatusInternalServerError, "UNKNOWN"
}
