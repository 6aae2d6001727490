package perceptron

import "github.com/pkg/errors"

// ErrInvalidArgument is returned on instance/weight or batch length mismatch.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrOutOfRange is returned when a weight index is not valid.
var ErrOutOfRange = errors.New("index out of range")

// ErrNotInitialized is returned when reading all weights of an uninitialized perceptron.
var ErrNotInitialized = errors.New("perceptron is not initialized")

// ErrOutOfMemory is returned when the weight or shuffle buffer cannot be allocated.
var ErrOutOfMemory = errors.New("out of memory")

// ErrNotConverged is returned when single instance training hits the sweep bound.
var ErrNotConverged = errors.New("training did not converge")
