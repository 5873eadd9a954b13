package main

import (
	"fmt"
	"math/rand"
	"time"

	netmath "github.com/drakos74/free-net/internal/math"
	"github.com/drakos74/free-net/internal/metrics"
	"github.com/drakos74/free-net/internal/net"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

const (
	trainSteps  = 100000
	metricsPort = 6021
)

func main() {

	go func() {
		if err := metrics.Serve(metricsPort); err != nil {
			log.Warn().Err(err).Msg("could not serve metrics")
		}
	}()

	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))

	network := net.New().
		Add(net.NewLayer(2, 4)).
		Add(net.NewLayer(4, 1)).
		Add(net.NewLayer(1, 1)).
		Init(rnd)

	samples := norDataset(rnd, trainSteps)

	fmt.Println("Training...")

	trainer := net.NewTrainer(network)
	trainer.Run(samples, trainSteps)

	if slope, err := trainer.Slope(); err == nil {
		fmt.Printf("loss trend = %s\n", netmath.Format(slope))
	}

	fmt.Println("Results!")

	for i := 0; i < 20; i++ {
		a := rnd.Intn(2)
		b := rnd.Intn(2)
		fmt.Printf("%d NOR %d = %s\n", a, b, netmath.Format(predict(network, a, b)))
	}

	fmt.Println("Try it yourself!")

	var a, b int
	if _, err := fmt.Scan(&a, &b); err != nil {
		panic(fmt.Sprintf("could not read input : %+v", err))
	}

	fmt.Printf("%d NOR %d = %s\n", a, b, netmath.Format(predict(network, a, b)))
}

func predict(network *net.Network, a, b int) float64 {
	network.SetInput(netmath.Vec(2).With(netmath.ToFloat([]int{a, b})...))
	network.Forward()
	return network.Output()[0]
}

func norDataset(rnd *rand.Rand, size int) []net.Sample {
	samples := make([]net.Sample, 0, size)
	for i := 0; i < size; i++ {
		a := rnd.Intn(2)
		b := rnd.Intn(2)
		res := ^(a | b) & 0b1
		samples = append(samples, net.Sample{
			Input: netmath.Vec(2).With(netmath.ToFloat([]int{a, b})...),
			Label: netmath.Vec(1).With(float64(res)),
		})
	}
	return samples
}
