// Command perceptron evaluates a fully connected network over zkfloat values
// and optionally writes the witness (inputs, weights, biases and outputs).
//
// Usage:
//
//  perceptron [flags] <hidden_layer_sizes...>
//
// For example, `perceptron 4 8 4` evaluates a 4-4-8-4-3 network.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/zeebo/errs"

	"github.com/radojevicMihailo/proof-perceptron/network"
	"github.com/radojevicMihailo/proof-perceptron/witness"
	"github.com/radojevicMihailo/proof-perceptron/zkfloat"
)

var (
	reluFlag     = flag.Bool("relu", false, "apply relu to hidden layer outputs")
	witnessFlag  = flag.String("witness", "", "if set, writes inputs, weights, biases and outputs to this file")
	parallelFlag = flag.Int("parallel", 0, "maximum neurons evaluated at once per layer, 0 is unlimited")
)

const (
	inputs  = 4
	outputs = 3
)

var (
	fixtureInputs  = []uint64{1, 2, 3, 4}
	fixtureWeights = []uint64{
		1, 2, 1, 3, 2, 1, 3, 2,
		1, 2, 3, 1, 2, 1,
		2, 1, 3, 2, 1, 3, 2, 1, 3,
		1, 2, 3, 2, 1, 3, 1, 2, 3,
	}
	fixtureBiases = []uint64{
		0, 1,
		1, 2, 0,
		1, 2, 0,
		0, 1, 2,
	}
)

// parseHidden parses the hidden layer sizes. Positions are reported as they
// appear on the command line (starting at 1).
func parseHidden(args []string) (sizes []int, err error) {
	if len(args) == 0 {
		return nil, errs.New("at least one hidden layer size is required")
	}

	for i, arg := range args {
		size, err := strconv.Atoi(arg)
		if err != nil {
			return nil, errs.New("%q at position %d is not a valid integer", arg, i+1)
		}

		if size <= 0 {
			return nil, errs.New("layer size at position %d must be greater than 0", i+1)
		}

		sizes = append(sizes, size)
	}

	return sizes, nil
}

// cycle returns n integer floats repeating vs.
func cycle(vs []uint64, n int) ([]zkfloat.Float, error) {
	fs := make([]zkfloat.Float, n)

	for i := range fs {
		f, err := zkfloat.Truncate(zkfloat.New(true, vs[i%len(vs)], zkfloat.Bias))
		if err != nil {
			return nil, err
		}

		fs[i] = f
	}

	return fs, nil
}

func run(ctx context.Context, hidden []int) (err error) {
	schema := network.Schema{
		Sizes: append(append([]int{inputs}, hidden...), outputs),
	}
	if *reluFlag {
		schema.Activation = network.ReLU
	}

	x, err := cycle(fixtureInputs, inputs)
	if err != nil {
		return err
	}

	weights, err := cycle(fixtureWeights, schema.Weights())
	if err != nil {
		return err
	}

	biases, err := cycle(fixtureBiases, schema.Biases())
	if err != nil {
		return err
	}

	n, err := network.New(schema, weights, biases)
	if err != nil {
		return err
	}
	n.Parallel = *parallelFlag

	as, err := n.Activations(ctx, x)
	if err != nil {
		return err
	}

	for i, a := range as {
		log.Printf("Layer %d Output: %v", i+1, a)
	}

	y := as[len(as)-1]
	log.Printf("Final Output: %v", y)

	if *witnessFlag == "" {
		return nil
	}

	f, err := os.Create(*witnessFlag)
	if err != nil {
		return err
	}
	defer func() {
		cerr := f.Close()
		if err == nil {
			err = cerr
		}
	}()

	err = witness.NewEncoder(f).EncodeAll(x, weights, biases, y)
	if err != nil {
		return err
	}

	log.Printf("Wrote witness to %s", *witnessFlag)

	return nil
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <hidden_layer_sizes...>\n", os.Args[0])
		fmt.Fprintf(flag.CommandLine.Output(), "Example: %s 4 8 4\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	hidden, err := parseHidden(flag.Args())
	if err != nil {
		flag.Usage()
		log.Fatalf("Error: %v", err)
	}

	log.Printf("Neural Network Hidden Layers: %v", hidden)

	err = run(context.Background(), hidden)
	if err != nil {
		log.Fatal(err)
	}
}
