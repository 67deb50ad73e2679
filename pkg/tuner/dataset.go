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

package tuner

import (
	"bufio"
	"errors"
	"math"
	"os"
	"strings"

	"laptudirm.com/x/corvid/pkg/board"
	"laptudirm.com/x/corvid/pkg/eval"
)

// Entry is a single labelled position in a tuning Dataset: the static
// PSQT/material score of the position (white-relative, before any
// tuning delta is applied), its game-phase weight, the game result
// from White's perspective, and the coefficients needed to cheaply
// recompute the score as the tuned terms change.
type Entry struct {
	Coeffs []Coefficient
	Phase  int
	Static float64
	Result float64
}

// Dataset is a collection of tuning Entry values read from a datagen
// output file (lines of the form "[result] fen").
type Dataset []Entry

// NewDataset reads a datagen output file and returns the resulting
// Dataset, pre-computing each entry's coefficients and baseline score
// against the engine's current PSQT/material tables.
func NewDataset(filename string) (Dataset, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	mg, eg := eval.PSQT()

	var dataset Dataset
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		result, fenString, found := strings.Cut(line, " ")
		if !found {
			return nil, errors.New("tuner: invalid dataset entry")
		}

		var entry Entry
		switch result {
		case "[1.0]":
			entry.Result = 1.0
		case "[0.0]":
			entry.Result = 0.0
		case "[0.5]":
			entry.Result = 0.5
		default:
			return nil, errors.New("tuner: invalid dataset entry result")
		}

		b, err := board.New(fenString)
		if err != nil {
			return nil, err
		}

		entry.Coeffs = coefficients(b)
		entry.Phase = eval.Phase(b)

		var mgScore, egScore float64
		for _, c := range entry.Coeffs {
			mgScore += c.Sign * float64(mg[c.Piece][c.Square])
			egScore += c.Sign * float64(eg[c.Piece][c.Square])
		}
		entry.Static = lerp(mgScore, egScore, entry.Phase)

		dataset = append(dataset, entry)
	}

	return dataset, scanner.Err()
}

// lerp interpolates between a middlegame and endgame score by the given
// game phase, the same tapering PeSTO itself uses.
func lerp(mg, eg float64, phase int) float64 {
	return (mg*float64(phase) + eg*float64(eval.MaxPhase-phase)) / float64(eval.MaxPhase)
}

// Sigmoid converts a static evaluation into a predicted win probability,
// scaled by K.
func Sigmoid(K, score float64) float64 {
	return 1.0 / (1.0 + math.Exp(-K*score/400.0))
}

// ComputeE returns the mean squared error between the dataset's game
// results and the win probability predicted from each entry's static
// score (plus the currently accumulated delta) scaled by K.
func (dataset Dataset) ComputeE(K float64, delta *Vector) float64 {
	var total float64
	for i := range dataset {
		static := dataset[i].Static + dataset[i].deltaScore(delta)
		total += math.Pow(dataset[i].Result-Sigmoid(K, static), 2)
	}
	return total / float64(len(dataset))
}

// ComputeK searches for the sigmoid scaling factor K that minimizes
// ComputeE over the dataset, by repeated bisection.
func (dataset Dataset) ComputeK(precision int) float64 {
	start, end, step := 0.0, 10.0, 1.0
	best := dataset.ComputeE(start, &Vector{})

	for i := 0; i <= precision; i++ {
		current := start - step
		for current < end {
			current += step
			if e := dataset.ComputeE(current, &Vector{}); e <= best {
				best, start = e, current
			}
		}

		end = start + step
		start -= step
		step /= 10.0
	}

	return start
}

// deltaScore returns the tapered contribution of the accumulated tuning
// delta to this entry's static score.
func (entry *Entry) deltaScore(delta *Vector) float64 {
	var mgScore, egScore float64
	for _, c := range entry.Coeffs {
		mgScore += c.Sign * delta[c.Piece][c.Square][MG]
		egScore += c.Sign * delta[c.Piece][c.Square][EG]
	}
	return lerp(mgScore, egScore, entry.Phase)
}
