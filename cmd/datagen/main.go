// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command datagen walks a directory of PGN games, replays them on the
// engine's board, and emits `result fen` lines for positions quiet
// enough to be useful as texel tuning data.
package main

import (
	"flag"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/notnil/chess"
	"laptudirm.com/x/corvid/pkg/board"
	"laptudirm.com/x/corvid/pkg/move"
	"laptudirm.com/x/corvid/pkg/piece"
	"laptudirm.com/x/corvid/pkg/search"
	"laptudirm.com/x/corvid/pkg/square"
	"laptudirm.com/x/corvid/pkg/tuner"
)

// datagen has two subcommands: `generate`, which turns a directory of
// PGN games into a file of labelled quiet positions, and `tune`, which
// runs texel tuning over a generated dataset.
func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: datagen <generate|tune> [flags]")
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "generate":
		flags := flag.NewFlagSet("generate", flag.ExitOnError)
		dataDir := flags.String("data", "./data", "directory to recursively search for .pgn files")
		depth := flags.Int("depth", 7, "search depth used to filter quiet positions")
		_ = flags.Parse(os.Args[2:])
		err = run(*dataDir, *depth)

	case "tune":
		flags := flag.NewFlagSet("tune", flag.ExitOnError)
		dataset := flags.String("dataset", "data.epd", "path to a datagen-generated dataset")
		epochs := flags.Int("epochs", 10_000, "number of tuning epochs to run")
		batchSize := flags.Int("batch-size", 16384, "number of positions per gradient-descent batch")
		learningRate := flags.Float64("learning-rate", 1, "initial gradient-descent learning rate")
		_ = flags.Parse(os.Args[2:])
		err = tune(*dataset, *epochs, *batchSize, *learningRate)

	default:
		fmt.Fprintln(os.Stderr, "usage: datagen <generate|tune> [flags]")
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// tune loads a dataset and runs texel tuning over it, applying the
// resulting deltas to the engine's live PSQT/material tables and
// printing the final delta vector.
func tune(datasetPath string, epochs, batchSize int, learningRate float64) error {
	fmt.Printf("tuner: loading dataset %s\n", datasetPath)
	dataset, err := tuner.NewDataset(datasetPath)
	if err != nil {
		return err
	}
	fmt.Printf("tuner: loaded %d entries\n", len(dataset))

	t := tuner.Tuner{
		Config: tuner.Config{
			KPrecision: 10,

			ReportRate: 50,

			LearningRate:     learningRate,
			LearningDropRate: 1.3,
			LearningStepRate: 250,

			MaxEpochs: epochs,
			BatchSize: batchSize,
		},
		Dataset: dataset,
	}

	t.Tune()
	fmt.Printf("tuner: final delta vector: %#v\n", t.Delta)
	return nil
}

func run(dataDir string, depth int) error {
	startBoard, err := board.NewFromFields(board.StartFEN)
	if err != nil {
		return err
	}

	engine := search.NewContext(startBoard)
	limits := search.Limits{Infinite: true, MoveTime: math.MaxInt32, Depth: depth}

	fenCount := 0
	start := time.Now()

	return filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".pgn") {
			return nil
		}

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		scanner := chess.NewScanner(f)
		var games []*chess.Game
		for scanner.Scan() {
			games = append(games, scanner.Next())
		}
		fmt.Fprintf(os.Stderr, "%s: %d games\n", path, len(games))

		for _, game := range games {
			var result string
			switch game.GetTagPair("Result").Value {
			case "1-0":
				result = "[1.0]"
			case "0-1":
				result = "[0.0]"
			case "1/2-1/2":
				result = "[0.5]"
			default:
				continue
			}

			b, err := board.NewFromFields(board.StartFEN)
			if err != nil {
				return err
			}

			gameMoves := game.Moves()
			for i, gameMove := range gameMoves {
				if i == len(gameMoves)-1 {
					break
				}

				source := square.Square(gameMove.S1())
				target := square.Square(gameMove.S2())
				boardMove := b.NewMove(source, target)

				switch gameMove.Promo() {
				case chess.Knight:
					boardMove = boardMove.SetPromotion(piece.New(piece.Knight, b.SideToMove))
				case chess.Bishop:
					boardMove = boardMove.SetPromotion(piece.New(piece.Bishop, b.SideToMove))
				case chess.Rook:
					boardMove = boardMove.SetPromotion(piece.New(piece.Rook, b.SideToMove))
				case chess.Queen:
					boardMove = boardMove.SetPromotion(piece.New(piece.Queen, b.SideToMove))
				}

				b.MakeMove(boardMove)

				if b.IsInCheck(b.SideToMove) {
					continue
				}

				fenString := b.FEN()

				engine.Board = b
				variation, _, err := engine.Search(limits)
				if err != nil {
					continue
				}

				bestMove := variation.Move(0)
				if bestMove == move.Null || bestMove.IsCapture() || bestMove.IsPromotion() {
					continue
				}

				fmt.Println(result, fenString)
				fenCount++
			}

			fmt.Fprintf(os.Stderr, "datagen: %d fens generated (%d fens/s)\n",
				fenCount, fenCount/(int(time.Since(start).Seconds())+1))
		}

		return nil
	})
}
