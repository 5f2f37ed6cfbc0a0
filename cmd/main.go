package main

import (
	"fmt"
	"os"

	"san-ffnn/internal/nn"
	"san-ffnn/internal/parser"
	"san-ffnn/internal/trainer"
)

func main() {
	cfg := nn.DefaultConfig(2, 4, 1)
	net, err := nn.NewFeedForward(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	samples := parser.XOR()
	before, err := trainer.MeanLoss(net, samples)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println("Loss before:", before)

	tr := trainer.New(net, trainer.Config{Epochs: 2000, Shuffle: true})
	after, err := tr.Run(samples)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println("Loss after:", after)

	for _, s := range samples {
		out, err := net.Query(s.Input)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("%v -> %.4f (target %v)\n", s.Input, out[0], s.Target[0])
	}
}
