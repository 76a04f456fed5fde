package policy

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"sync"

	"github.com/patrikeh/go-deep"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

var (
	ErrWeightsShape   = errors.New("weights do not match network layout")
	ErrNoRandomSource = errors.New("stochastic network requires a random source")
)

// NetworkConfig describes the feed-forward policy network and optional trained weights.
type NetworkConfig struct {
	Name         string        `json:"name"`
	HiddenLayers []int         `json:"hidden_layers"`
	Stochastic   bool          `json:"stochastic"`
	Weights      [][][]float64 `json:"weights,omitempty"`
}

func DefaultNetworkConfig() NetworkConfig {
	return NetworkConfig{
		Name:         "default",
		HiddenLayers: []int{100, 100, 100},
	}
}

// LoadNetworkConfig reads a JSON network description from path.
func LoadNetworkConfig(path string) (NetworkConfig, error) {
	config := DefaultNetworkConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("failed to read network file: %w", err)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to decode network file: %w", err)
	}

	return config, nil
}

// Network proposes moves from a soft-max over the nine cells.
type Network struct {
	network    *deep.Neural
	config     NetworkConfig
	stochastic bool

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewNetwork builds the network. rnd is used only for stochastic sampling and may be nil otherwise.
func NewNetwork(config NetworkConfig, rnd *rand.Rand) (*Network, error) {
	layout := append([]int{}, config.HiddenLayers...)
	layout = append(layout, entity.BoardCells)

	network := deep.NewNeural(&deep.Config{
		Inputs:     entity.BoardCells,
		Layout:     layout,
		Activation: deep.ActivationReLU,
		Mode:       deep.ModeMultiClass,
		Weight:     deep.NewNormal(0.1, 0.0),
		Bias:       true,
	})

	if config.Weights != nil {
		if err := checkShape(network.Weights(), config.Weights); err != nil {
			return nil, err
		}
		network.ApplyWeights(config.Weights)
	}

	if config.Stochastic && rnd == nil {
		return nil, ErrNoRandomSource
	}

	return &Network{
		network:    network,
		config:     config,
		stochastic: config.Stochastic,
		rnd:        rnd,
	}, nil
}

func (that *Network) Name() string {
	return fmt.Sprintf("network (%s)", that.config.Name)
}

// ProposeMove runs a forward pass; go-deep keeps activations on the neurons, so passes are serialized.
func (that *Network) ProposeMove(board entity.Board, side entity.Side) (entity.Move, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	probs := that.network.Predict(features(board, side))
	if len(probs) != entity.BoardCells {
		return entity.Move{}, fmt.Errorf("%w: %d outputs", ErrWeightsShape, len(probs))
	}

	if that.stochastic {
		return entity.MoveFromIndex(that.sample(probs)), nil
	}

	return entity.MoveFromIndex(argmax(probs)), nil
}

// features encodes cells as +1 first, -1 second, 0 empty, multiplied by the side to move.
func features(board entity.Board, side entity.Side) []float64 {
	in := make([]float64, entity.BoardCells)
	for i, mark := range board {
		switch mark {
		case entity.First:
			in[i] = 1
		case entity.Second:
			in[i] = -1
		}
		in[i] *= float64(side)
	}
	return in
}

func argmax(values []float64) int {
	best := 0
	for i, v := range values {
		if v > values[best] {
			best = i
		}
	}
	return best
}

// sample draws an index proportionally to probs; callers hold mu.
func (that *Network) sample(probs []float64) int {
	r := that.rnd.Float64()

	var total float64
	for _, p := range probs {
		total += p
	}

	acc := 0.0
	for i, p := range probs {
		acc += p / total
		if r < acc {
			return i
		}
	}
	return len(probs) - 1
}

func checkShape(want, got [][][]float64) error {
	if len(want) != len(got) {
		return fmt.Errorf("%w: %d layers, want %d", ErrWeightsShape, len(got), len(want))
	}
	for l := range want {
		if len(want[l]) != len(got[l]) {
			return fmt.Errorf("%w: layer %d has %d neurons, want %d", ErrWeightsShape, l, len(got[l]), len(want[l]))
		}
		for n := range want[l] {
			if len(want[l][n]) != len(got[l][n]) {
				return fmt.Errorf("%w: layer %d neuron %d has %d weights, want %d",
					ErrWeightsShape, l, n, len(got[l][n]), len(want[l][n]))
			}
		}
	}
	return nil
}
