// Package main provides a demo program for training a perceptron on a logic gate.
// It trains on the two-input truth table of the chosen gate and prints the learned
// weights together with the prediction for every row. XOR shows a gate a single
// perceptron cannot learn.
package main
