package main

import "context"
import "flag"
import "fmt"
import "os"
import "os/signal"

import "github.com/neurlang/perceptron/datasets/logicgate"
import "github.com/neurlang/perceptron/inference"
import "github.com/neurlang/perceptron/learning"
import "github.com/neurlang/perceptron/logging"

func main() {
	gate := flag.String("gate", "or", "gate to learn: and, or, nand, nor, xor")
	config := flag.String("config", "", "hyperparameters .yaml file")
	epochs := flag.Int("epochs", 0, "epoch limit, overrides the config")
	seed := flag.Int64("seed", 0, "random seed, overrides the config")
	bias := flag.Float64("bias", 0, "bias, overrides the config when non-zero")
	level := flag.String("log", "", "log level: debug, info, warn, error")
	flag.Parse()

	g, err := logicgate.Parse(*gate)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	var h = learning.Defaults()
	if *config != "" {
		h, err = learning.Load(*config)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}
	if *epochs > 0 {
		h.Epochs = *epochs
	}
	if *seed != 0 {
		h.Seed = *seed
	}
	if *bias != 0 {
		h.Bias = *bias
	}
	if *level != "" {
		h.LogLevel = *level
	}
	h.SetLogger(logging.NewCLILogger(h.LogLevel))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	p, res, trainErr := h.Training(ctx, g)
	if trainErr != nil {
		fmt.Println("training", g, "failed:", trainErr)
	}
	if p == nil {
		os.Exit(1)
	}

	weights, _ := p.Weights()
	fmt.Printf("gate=%s epochs=%d success=%d%% weights=%v bias=%v\n", g, res.Epochs, res.Success, weights, p.Bias())

	for n := 0; n < g.Len(); n++ {
		s := g.Get(n)
		in := []float64{s.Feature(0), s.Feature(1)}
		ok, err := inference.BoolInfer(in, p)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(in, "=>", ok, "expected", s.Output() == 1)
	}
	if trainErr != nil {
		os.Exit(1)
	}
}
