package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/tiggercwh/go-bowling/gameModel"
	"github.com/tiggercwh/go-bowling/scoreboard"
)

type Config struct {
	ServerURL string `env:"BOWLING_SERVER_URL" envDefault:"http://localhost:8080/api"`
}

func parseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	fs.StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Base URL of the bowling API")
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}
	cfg.ServerURL = strings.TrimRight(cfg.ServerURL, "/")
	return cfg, nil
}

type apiClient struct {
	baseURL string
	http    *http.Client
}

func (c *apiClient) makeRequest(method, url string, body interface{}) ([]byte, error) {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return io.ReadAll(resp.Body)
}

func (c *apiClient) createNewGame(player string) (*gameModel.GameState, error) {
	respBody, err := c.makeRequest("POST", c.baseURL+"/game/new", gameModel.NewGameRequest{Player: player})
	if err != nil {
		return nil, err
	}

	var response gameModel.NewGameResponse
	if err := json.Unmarshal(respBody, &response); err != nil {
		return nil, fmt.Errorf("decode new game response: %w", err)
	}
	if !response.Success || response.GameState == nil {
		return nil, fmt.Errorf("failed to create game: %s", response.Message)
	}
	return response.GameState, nil
}

func (c *apiClient) submitRoll(gameID string, pins int) (*gameModel.RollResponse, error) {
	respBody, err := c.makeRequest("POST", fmt.Sprintf("%s/game/%s/roll", c.baseURL, gameID), gameModel.RollRequest{Pins: &pins})
	if err != nil {
		return nil, err
	}

	var response gameModel.RollResponse
	if err := json.Unmarshal(respBody, &response); err != nil {
		return nil, fmt.Errorf("decode roll response: %w", err)
	}
	return &response, nil
}

func prompt(scanner *bufio.Scanner, label string) (string, bool) {
	fmt.Print(label)
	if !scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(scanner.Text()), true
}

func main() {
	cfg, err := parseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse config: %v", err)
	}
	client := &apiClient{baseURL: cfg.ServerURL, http: &http.Client{}}
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println("Welcome to Bowling CLI Client!")

	var gameState *gameModel.GameState
	for gameState == nil {
		player, ok := prompt(scanner, "Player name: ")
		if !ok {
			return
		}
		gameState, err = client.createNewGame(player)
		if err != nil {
			fmt.Printf("Error creating game: %v\n", err)
			fmt.Printf("Make sure the server is running at %s\n", cfg.ServerURL)
		}
	}

	for !gameState.GameOver {
		scoreboard.Render(os.Stdout, *gameState)

		input, ok := prompt(scanner, fmt.Sprintf("Frame %d, pins knocked down: ", gameState.CurrentFrame))
		if !ok {
			return
		}
		pins, err := strconv.Atoi(input)
		if err != nil {
			fmt.Println("Please enter a number between 0 and 10.")
			continue
		}

		response, err := client.submitRoll(gameState.ID, pins)
		if err != nil {
			fmt.Printf("Error submitting roll: %v\n", err)
			continue
		}
		if !response.Success {
			fmt.Printf("Roll rejected: %s\n", response.Message)
			continue
		}
		gameState = response.GameState
	}

	scoreboard.Render(os.Stdout, *gameState)
	fmt.Printf("Game over! Final score: %d\n", gameState.Total)
}
