package util

import (
	"iter"
)

func Reverse[A any](slice []A) iter.Seq[A] {
	return func(yield func(A) bool) {
		for i := len(slice) - 1; i >= 0; i-- {
			if !yield(slice[i]) {
				return
			}
		}
	}
}

// MapSlice applies f to every element of slice, stopping at the first error.
func MapSlice[A, B any](slice []A, f func(A) (B, error)) ([]B, error) {
	mapped := make([]B, 0, len(slice))
	for _, elem := range slice {
		b, err := f(elem)
		if err != nil {
			return nil, err
		}
		mapped = append(mapped, b)
	}
	return mapped, nil
}
