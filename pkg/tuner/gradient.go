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
	"laptudirm.com/x/corvid/internal/util"
	"laptudirm.com/x/corvid/pkg/eval"
)

// computeGradient accumulates the gradient of the dataset's mean
// squared error with respect to every tuned term, over the batch-th
// slice of the dataset.
func (tuner *Tuner) computeGradient() {
	tuner.Gradient = Vector{}

	batchStart := tuner.Batch * tuner.Config.BatchSize
	batchEnd := util.Min(batchStart+tuner.Config.BatchSize, len(tuner.Dataset))

	for i := batchStart; i < batchEnd; i++ {
		tuner.accumulateGradient(&tuner.Dataset[i])
	}
}

// accumulateGradient adds a single entry's contribution to the running
// gradient, using the standard texel-tuning derivative of the squared
// sigmoid error with respect to a linear evaluation term.
func (tuner *Tuner) accumulateGradient(entry *Entry) {
	static := entry.Static + entry.deltaScore(&tuner.Delta)
	sigmoid := Sigmoid(tuner.K, static)

	// d(error^2)/d(static), folding in the sigmoid's own derivative
	grad := (entry.Result - sigmoid) * sigmoid * (1 - sigmoid)

	mgWeight := grad * float64(entry.Phase) / float64(eval.MaxPhase)
	egWeight := grad * float64(eval.MaxPhase-entry.Phase) / float64(eval.MaxPhase)

	for _, c := range entry.Coeffs {
		tuner.Gradient[c.Piece][c.Square][MG] += mgWeight * c.Sign
		tuner.Gradient[c.Piece][c.Square][EG] += egWeight * c.Sign
	}
}
