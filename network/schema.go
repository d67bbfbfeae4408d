package network

import (
	"fmt"

	"github.com/radojevicMihailo/proof-perceptron/zkfloat"
)

// Activation is applied to the outputs of hidden layers.
type Activation int

// Activations
const (
	Identity Activation = iota
	ReLU
)

func (a Activation) String() string {
	switch a {
	case Identity:
		return "identity"
	case ReLU:
		return "relu"
	}

	return fmt.Sprintf("Activation(%d)", int(a))
}

func (a Activation) apply(f zkfloat.Float) zkfloat.Float {
	if a == ReLU {
		return zkfloat.Relu(f)
	}

	return f
}

// Schema describes a fully connected network.
type Schema struct {
	// Sizes are the neuron counts of each layer, inputs first and outputs
	// last.
	Sizes []int

	// Activation is applied after every hidden layer. The output layer is
	// never activated.
	Activation Activation
}

// Validate checks the schema is usable.
func (s Schema) Validate() error {
	if len(s.Sizes) < 2 {
		return Error.New("need at least an input and an output layer: %v", s.Sizes)
	}

	for i, size := range s.Sizes {
		if size <= 0 {
			return Error.New("layer size at position %d must be greater than 0: %d", i, size)
		}
	}

	switch s.Activation {
	case Identity, ReLU:
	default:
		return Error.New("unknown activation: %s", s.Activation)
	}

	return nil
}

// Weights returns the number of weights the schema needs.
func (s Schema) Weights() (n int) {
	for i := 1; i < len(s.Sizes); i++ {
		n += s.Sizes[i-1] * s.Sizes[i]
	}

	return n
}

// Biases returns the number of biases the schema needs.
func (s Schema) Biases() (n int) {
	for i := 1; i < len(s.Sizes); i++ {
		n += s.Sizes[i]
	}

	return n
}
