package net

import (
	"fmt"

	"github.com/drakos74/free-net/internal/buffer"
	"github.com/drakos74/free-net/internal/math"
	"github.com/drakos74/free-net/internal/math/ml"
	"github.com/drakos74/free-net/internal/metrics"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// historySize defines how many loss samples to keep for the convergence trend.
const historySize = 50

// Sample pairs one input vector with its expected label vector.
type Sample struct {
	Input math.Vector
	Label math.Vector
}

// StatsCollector tracks the training progress.
type StatsCollector struct {
	Iterations int
	History    *buffer.Buffer
}

// NewStatsCollector creates a new stats collector with the given history size.
func NewStatsCollector(s int) *StatsCollector {
	return &StatsCollector{
		History: buffer.NewBuffer(s),
	}
}

// Trainer drives stochastic gradient steps over a network.
type Trainer struct {
	id      string
	network *Network
	stats   *StatsCollector
}

// NewTrainer creates a new training session for the given network.
func NewTrainer(network *Network) *Trainer {
	return &Trainer{
		id:      uuid.New().String(),
		network: network,
		stats:   NewStatsCollector(historySize),
	}
}

// Step runs one stochastic gradient step on the given sample
// and returns the squared error before the weight update.
func (t *Trainer) Step(s Sample) float64 {
	t.network.SetInput(s.Input)
	t.network.Forward()
	loss := ml.Pow(s.Label, t.network.Output()).Sum()
	math.Check(loss)
	t.network.Backward(s.Label)
	t.stats.Iterations++
	t.stats.History.Push(loss)
	metrics.Observer.Increment(t.id)
	metrics.Observer.Observe(loss, t.id)
	return loss
}

// Run cycles through the samples for the given number of steps
// and returns the loss of the last step.
func (t *Trainer) Run(samples []Sample, steps int) float64 {
	if len(samples) == 0 {
		return 0
	}
	var loss float64
	for i := 0; i < steps; i++ {
		loss = t.Step(samples[i%len(samples)])
	}
	log.Info().
		Str("session", t.id).
		Int("steps", steps).
		Float64("loss", loss).
		Msg("training finished")
	return loss
}

// Slope returns the first order trend of the recent loss history.
// A negative slope means the training is converging.
func (t *Trainer) Slope() (float64, error) {
	yy := t.stats.History.Get()
	if len(yy) < 2 {
		return 0, fmt.Errorf("not enough history to fit a trend : %d", len(yy))
	}
	xx := math.Series(1, len(yy))
	cc, err := math.Fit(xx, yy, 1)
	if err != nil {
		return 0, fmt.Errorf("could not fit loss history : %w", err)
	}
	return cc[1], nil
}

// Stats returns the collected training stats.
func (t *Trainer) Stats() StatsCollector {
	return *t.stats
}
