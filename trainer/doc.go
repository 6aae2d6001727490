// Package trainer provides high-level training orchestration for perceptrons.
// It runs epochs of batch training over a dataset, measures the accuracy after
// each epoch and stops once the target accuracy is reached or training is stuck.
package trainer
