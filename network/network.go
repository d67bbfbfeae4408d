// Package network evaluates fully connected networks over zkfloat values.
//
// Evaluation is the reference for what a circuit computes: every neuron is
//
//  sum = 0
//  for j in inputs: sum = sum + input[j] * weight
//  sum = sum + bias
//
// with each step truncated by the zkfloat operators, so the result is bit
// for bit what a constraint system following the same steps must produce.
package network

import (
	"context"

	"github.com/zeebo/errs"
	"golang.org/x/sync/errgroup"

	"github.com/radojevicMihailo/proof-perceptron/zkfloat"
)

// Error is the class of network errors.
var Error = errs.Class("network")

// Layer is a fully connected layer.
type Layer struct {
	Inputs  int
	Outputs int

	// Weights holds Inputs weights for each output neuron in turn.
	Weights []zkfloat.Float
	Biases  []zkfloat.Float

	Activation Activation
}

// Network is a sequence of layers.
type Network struct {
	Layers []Layer

	// Parallel limits the number of neurons of a layer evaluated at once.
	// Zero or less is unlimited.
	Parallel int
}

// New builds a network from flat weights and biases. Weights are consumed
// layer by layer, output neuron by output neuron, input by input.
func New(schema Schema, weights, biases []zkfloat.Float) (_ *Network, err error) {
	defer Error.WrapP(&err)

	err = schema.Validate()
	if err != nil {
		return nil, err
	}

	if len(weights) != schema.Weights() {
		if len(weights) < schema.Weights() {
			return nil, Error.New("not enough weights provided: %d < %d", len(weights), schema.Weights())
		}

		return nil, Error.New("too many weights provided: %d > %d", len(weights), schema.Weights())
	}

	if len(biases) != schema.Biases() {
		if len(biases) < schema.Biases() {
			return nil, Error.New("not enough biases provided: %d < %d", len(biases), schema.Biases())
		}

		return nil, Error.New("too many biases provided: %d > %d", len(biases), schema.Biases())
	}

	n := &Network{}

	for i := 1; i < len(schema.Sizes); i++ {
		inputs, outputs := schema.Sizes[i-1], schema.Sizes[i]

		activation := schema.Activation
		if i == len(schema.Sizes)-1 {
			activation = Identity
		}

		n.Layers = append(n.Layers, Layer{
			Inputs:     inputs,
			Outputs:    outputs,
			Weights:    weights[:inputs*outputs:inputs*outputs],
			Biases:     biases[:outputs:outputs],
			Activation: activation,
		})

		weights = weights[inputs*outputs:]
		biases = biases[outputs:]
	}

	return n, nil
}

// Forward returns the outputs of the last layer.
func (n *Network) Forward(ctx context.Context, x []zkfloat.Float) (out []zkfloat.Float, err error) {
	defer Error.WrapP(&err)

	as, err := n.Activations(ctx, x)
	if err != nil {
		return nil, err
	}

	return as[len(as)-1], nil
}

// Activations returns the outputs of every layer in order.
func (n *Network) Activations(ctx context.Context, x []zkfloat.Float) (as [][]zkfloat.Float, err error) {
	defer Error.WrapP(&err)

	if len(n.Layers) == 0 {
		return nil, Error.New("no layers")
	}

	for i := range n.Layers {
		err = ctx.Err()
		if err != nil {
			return nil, err
		}

		x, err = n.Layers[i].forward(ctx, x, n.Parallel)
		if err != nil {
			return nil, err
		}

		as = append(as, x)
	}

	return as, nil
}

// Forward returns the layer's outputs.
func (l *Layer) Forward(ctx context.Context, x []zkfloat.Float) (out []zkfloat.Float, err error) {
	defer Error.WrapP(&err)

	return l.forward(ctx, x, 0)
}

func (l *Layer) forward(ctx context.Context, x []zkfloat.Float, parallel int) ([]zkfloat.Float, error) {
	if len(x) != l.Inputs {
		return nil, Error.New("input size %d, want %d", len(x), l.Inputs)
	}

	out := make([]zkfloat.Float, l.Outputs)

	g, ctx := errgroup.WithContext(ctx)
	if parallel > 0 {
		g.SetLimit(parallel)
	}

	for i := range out {
		i := i
		g.Go(func() error {
			err := ctx.Err()
			if err != nil {
				return err
			}

			v, err := l.neuron(i, x)
			if err != nil {
				return err
			}

			out[i] = l.Activation.apply(v)

			return nil
		})
	}

	err := g.Wait()
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (l *Layer) neuron(i int, x []zkfloat.Float) (sum zkfloat.Float, err error) {
	sum = zkfloat.Zero()
	ws := l.Weights[i*l.Inputs : (i+1)*l.Inputs]

	for j, w := range ws {
		p, err := zkfloat.Multiply(x[j], w)
		if err != nil {
			return zkfloat.Float{}, err
		}

		sum, err = zkfloat.Add(sum, p)
		if err != nil {
			return zkfloat.Float{}, err
		}
	}

	return zkfloat.Add(sum, l.Biases[i])
}
