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
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/schollz/progressbar/v3"
)

// Config holds the hyperparameters of a tuning run.
type Config struct {
	KPrecision int

	ReportRate int

	LearningRate     float64
	LearningDropRate float64
	LearningStepRate int

	MaxEpochs int
	BatchSize int
}

// Tuner runs texel-style gradient descent over a Dataset, nudging the
// engine's PSQT/material terms to minimize prediction error against the
// dataset's game results.
type Tuner struct {
	Config Config

	Dataset Dataset
	Delta   Vector

	K float64

	Gradient Vector

	Batch int
}

// Tune runs the configured number of epochs of gradient descent,
// plotting the error curve to error-plot.html after every epoch and
// reporting batch progress on a progress bar, then applies the final
// tuned deltas to the live evaluation tables.
func (tuner *Tuner) Tune() {
	velocity := Vector{}
	momentum := Vector{}

	rate := tuner.Config.LearningRate
	batchSize := float64(tuner.Config.BatchSize)

	fmt.Println("tuner: computing optimal value of K")
	tuner.K = tuner.Dataset.ComputeK(tuner.Config.KPrecision)
	scale := (tuner.K * 2) / batchSize
	fmt.Printf("tuner: K = %v\n", tuner.K)

	epochs := []string{"0"}
	errors := []opts.LineData{{Value: tuner.Dataset.ComputeE(tuner.K, &tuner.Delta)}}
	tuner.plot(epochs, errors)

	batches := len(tuner.Dataset) / tuner.Config.BatchSize

	for epoch := 0; epoch < tuner.Config.MaxEpochs; epoch++ {
		fmt.Printf("tuner: started new epoch (%d/%d)\n", epoch+1, tuner.Config.MaxEpochs)

		bar := progressbar.NewOptions(
			batches,
			progressbar.OptionSetElapsedTime(true),
			progressbar.OptionSetItsString("batch"),
			progressbar.OptionSetPredictTime(true),
			progressbar.OptionSetRenderBlankState(true),
			progressbar.OptionShowCount(),
			progressbar.OptionShowIts(),
		)

		for tuner.Batch = 0; tuner.Batch < batches; tuner.Batch++ {
			tuner.computeGradient()

			for p := range tuner.Delta {
				for s := range tuner.Delta[p] {
					mgGradient := tuner.Gradient[p][s][MG] * scale
					egGradient := tuner.Gradient[p][s][EG] * scale

					momentum[p][s][MG] = momentum[p][s][MG]*0.9 + mgGradient*0.1
					momentum[p][s][EG] = momentum[p][s][EG]*0.9 + egGradient*0.1

					velocity[p][s][MG] = velocity[p][s][MG]*0.999 + mgGradient*mgGradient*0.001
					velocity[p][s][EG] = velocity[p][s][EG]*0.999 + egGradient*egGradient*0.001

					tuner.Delta[p][s][MG] += momentum[p][s][MG] * rate / math.Sqrt(1e-8+velocity[p][s][MG])
					tuner.Delta[p][s][EG] += momentum[p][s][EG] * rate / math.Sqrt(1e-8+velocity[p][s][EG])
				}
			}

			_ = bar.Add(1)
		}

		_ = bar.Close()

		E := tuner.Dataset.ComputeE(tuner.K, &tuner.Delta)
		fmt.Printf("tuner: E = %v\n", E)

		epochs = append(epochs, strconv.Itoa(epoch+1))
		errors = append(errors, opts.LineData{Value: E})
		tuner.plot(epochs, errors)

		if epoch != 0 && epoch%tuner.Config.LearningStepRate == 0 {
			rate /= tuner.Config.LearningDropRate
		}
	}

	tuner.Delta.Apply()
}

// plot renders the tuning error curve so far to error-plot.html.
func (tuner *Tuner) plot(epochs []string, errors []opts.LineData) {
	plot := charts.NewLine()
	plot.SetXAxis(epochs).AddSeries("Error", errors)

	f, err := os.Create("error-plot.html")
	if err != nil {
		return
	}
	defer f.Close()

	_ = plot.Render(f)
}
