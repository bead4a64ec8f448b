// cmd/destroy98cards/main.go
package main

import (
	"encoding/json"
	"flag"
	"os"
	"runtime"
	"strconv"
	"strings"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"

	"github.com/louisrli/destroy98cards/constants"
	"github.com/louisrli/destroy98cards/internal/evaluator"
	"github.com/louisrli/destroy98cards/internal/game"
	"github.com/louisrli/destroy98cards/internal/models"
	"github.com/louisrli/destroy98cards/internal/strategy"
)

func main() {
	evaluate := flag.Bool("evaluate", false, "run a batch evaluation of the chosen strategies")
	strategies := flag.String("strategy", "", "comma separated strategies ("+strings.Join(strategy.Names(), ", ")+"); all are evaluated if unset")
	games := flag.Int("games", envInt(constants.EnvGames, constants.DefaultEvalGames), "games per strategy when evaluating")
	seed := flag.Int64("seed", 0, "deck seed when playing a single game")
	parallel := flag.Int("parallel", envInt(constants.EnvParallelism, runtime.NumCPU()), "concurrent games during evaluation")
	flag.Parse()

	logger := logrus.New()

	names := strategy.Names()
	if *strategies != "" {
		names = strings.Split(*strategies, ",")
	}

	switch {
	case *evaluate:
		logger.SetLevel(logrus.InfoLevel)
		results, err := evaluator.Evaluate(names, *games, *parallel, logger)
		if err != nil {
			logger.Fatalf("evaluation failed: %v", err)
		}
		if err := evaluator.WriteReport(os.Stdout, results); err != nil {
			logger.Fatalf("failed to write report: %v", err)
		}

	case *strategies != "":
		// Single verbose game with the first requested strategy, rendering
		// the board every turn.
		logger.SetLevel(logrus.DebugLevel)
		strat, err := strategy.Get(names[0])
		if err != nil {
			logger.Fatalf("%v", err)
		}
		g := game.New(*seed)
		g.Logger = logger
		g.RenderFn = func(stacks []*models.Stack, hand []models.Card, next models.Move) {
			logger.Debug(game.FormatBoard(stacks, hand, next))
		}
		res, err := g.Play(strat)
		if err != nil {
			logger.Fatalf("game failed: %v", err)
		}
		if data, err := json.Marshal(res); err == nil {
			logger.Debugf("result: %s", data)
		}
		logger.Debugf("Lost: %d", res.Score)

	default:
		flag.Usage()
		os.Exit(2)
	}
}

// envInt reads an integer environment override, falling back when unset or
// unparsable.
func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
