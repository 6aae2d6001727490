// Package learning holds the perceptron training hyperparameters and the
// training entry point driven by them.
package learning

import "log/slog"
import "math"
import "os"

import "github.com/neurlang/perceptron/logging"
import "github.com/neurlang/perceptron/perceptron"
import "github.com/neurlang/perceptron/trainer"
import "github.com/pkg/errors"
import "gopkg.in/yaml.v3"

// ErrInvalidHyperParameters is returned by Validate.
var ErrInvalidHyperParameters = errors.New("invalid hyperparameters")

type HyperParameters struct {
	Threads int `yaml:"threads"` // number of threads for evaluation, 0 for one per core

	Shuffle bool  `yaml:"shuffle"` // whether to shuffle the set before each epoch
	Balance bool  `yaml:"balance"` // oversample the smaller class before training
	Seed    int64 `yaml:"seed"`    // seed for weights and shuffling, 0 for the global source

	LearnRate float64 `yaml:"learn_rate"`
	Bias      float64 `yaml:"bias"`
	MaxSweeps int     `yaml:"max_sweeps"` // sweep bound per instance, 0 for unbounded

	Epochs    int `yaml:"epochs"`    // epoch limit
	Threshold int `yaml:"threshold"` // success rate in percent that ends training

	LogLevel string `yaml:"log_level"`

	l *slog.Logger
}

// Defaults returns the hyperparameters used for keys missing from a config file.
func Defaults() *HyperParameters {
	return &HyperParameters{
		Shuffle:   true,
		LearnRate: perceptron.DefaultLearnRate,
		Bias:      perceptron.DefaultBias,
		MaxSweeps: perceptron.DefaultMaxSweeps,
		Epochs:    trainer.DefaultEpochs,
		Threshold: 100,
		LogLevel:  "info",
	}
}

// Parse decodes yaml hyperparameters over the defaults.
func Parse(b []byte) (*HyperParameters, error) {
	h := Defaults()
	if err := yaml.Unmarshal(b, h); err != nil {
		return nil, errors.Wrap(err, "failed to parse hyperparameters")
	}
	if err := h.Validate(); err != nil {
		return nil, err
	}
	return h, nil
}

// Load reads yaml hyperparameters from a file.
func Load(path string) (*HyperParameters, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read hyperparameters: %s", path)
	}
	return Parse(b)
}

// Validate checks the ranges of the hyperparameters.
func (h *HyperParameters) Validate() error {
	switch {
	case h.Threads < 0:
		return errors.Wrapf(ErrInvalidHyperParameters, "threads %d", h.Threads)
	case h.Epochs < 0:
		return errors.Wrapf(ErrInvalidHyperParameters, "epochs %d", h.Epochs)
	case h.MaxSweeps < 0:
		return errors.Wrapf(ErrInvalidHyperParameters, "max_sweeps %d", h.MaxSweeps)
	case h.Threshold < 0 || h.Threshold > 100:
		return errors.Wrapf(ErrInvalidHyperParameters, "threshold %d%%", h.Threshold)
	case !(h.LearnRate > 0) || math.IsInf(h.LearnRate, 0):
		return errors.Wrapf(ErrInvalidHyperParameters, "learn_rate %v", h.LearnRate)
	case math.IsNaN(h.Bias) || math.IsInf(h.Bias, 0):
		return errors.Wrapf(ErrInvalidHyperParameters, "bias %v", h.Bias)
	}
	return nil
}

// SetLogger sets the logger receiving training progress.
func (h *HyperParameters) SetLogger(l *slog.Logger) {
	h.l = l
}

// Logger gets the training logger, a discarding one when none was set.
func (h *HyperParameters) Logger() *slog.Logger {
	if h.l == nil {
		return logging.Discard()
	}
	return h.l
}
