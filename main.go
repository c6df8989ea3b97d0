package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/tiggercwh/go-bowling/bowling"
	"github.com/tiggercwh/go-bowling/gameModel"
	"github.com/tiggercwh/go-bowling/scoreboard"
)

// play runs one game over in and out, re-prompting whenever a roll is
// rejected.
func play(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprintln(out, "Welcome to Bowling CLI!")

	var game *bowling.Game
	for game == nil {
		fmt.Fprint(out, "Player name: ")
		if !scanner.Scan() {
			return io.ErrUnexpectedEOF
		}
		g, err := bowling.Start(scanner.Text())
		if err != nil {
			fmt.Fprintf(out, "%v\n", err)
			continue
		}
		game = g
	}

	started := time.Now()
	render := func() error {
		return scoreboard.Render(out, gameModel.NewGameState("local", game, started, time.Now()))
	}

	for !game.IsOver() {
		if err := render(); err != nil {
			return err
		}
		frame, _ := game.CurrentFrame()
		fmt.Fprintf(out, "Frame %d, pins knocked down: ", frame)
		if !scanner.Scan() {
			return io.ErrUnexpectedEOF
		}
		pins, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil {
			fmt.Fprintln(out, "Please enter a number between 0 and 10.")
			continue
		}
		if _, err := game.Bowl(pins); err != nil {
			var bowlingErr *bowling.Error
			if !errors.As(err, &bowlingErr) {
				return err
			}
			fmt.Fprintf(out, "Roll rejected: %v\n", err)
		}
	}

	if err := render(); err != nil {
		return err
	}
	fmt.Fprintf(out, "Game over! Final score: %d\n", game.Score().Total())
	return nil
}

func main() {
	if err := play(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "bowling: %v\n", err)
		os.Exit(1)
	}
}
