package main

import "errors"

var errDivideByZero = errors.New("division by zero")

func addN(ns ...int) int {
	sum := 0
	for _, n := range ns {
		sum += n
	}
	return sum
}

func subtract(a, b int) int { return a - b }

func multiplyN(ns ...int) int {
	product := 1
	for _, n := range ns {
		product *= n
	}
	return product
}

// divide returns n/d truncated toward zero, or 0 and errDivideByZero.
func divide(n, d int) (int, error) {
	if d == 0 {
		return 0, errDivideByZero
	}
	return n / d, nil
}
