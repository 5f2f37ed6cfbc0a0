package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"san-ffnn/internal/nn"
	"san-ffnn/internal/parser"
	"san-ffnn/internal/trainer"
)

func main() {
	path := flag.String("data", "xor.csv", "training samples, one CSV row of inputs then targets per line")
	inputs := flag.Int("inputs", 2, "input layer size")
	hidden := flag.Int("hidden", 4, "hidden layer size")
	outputs := flag.Int("outputs", 1, "output layer size")
	act := flag.String("activation", "tanh", "activation function: tanh or sigmoid")
	lr := flag.Float64("lr", 0.1, "learning rate")
	epochs := flag.Int("epochs", 2000, "passes over the training set")
	report := flag.Int("report", 200, "epochs between progress lines, 0 for none")
	seed := flag.Uint64("seed", 0, "weight and shuffle seed, 0 for random")
	threshold := flag.Float64("threshold", 0.5, "decision threshold for accuracy")
	flag.Parse()

	fmt.Println("Parsing...")
	samples, err := parser.LoadSamples(*path, *inputs, *outputs)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	net, err := nn.NewFeedForward(nn.Config{
		InputSize:    *inputs,
		HiddenSize:   *hidden,
		OutputSize:   *outputs,
		Activation:   *act,
		LearningRate: *lr,
		Seed:         *seed,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println("Train...")
	tr := trainer.New(net, trainer.Config{Epochs: *epochs, ReportEvery: *report, Shuffle: true, Seed: *seed})
	tr.SetLogger(log.New(os.Stdout, "[train] ", 0))
	loss, err := tr.Run(samples)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	accuracy, err := trainer.Accuracy(net, samples, *threshold)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println("Loss:", loss, "Accuracy:", accuracy*100, "%")
}
