package model

import (
	"golang.org/x/exp/constraints"
)

// Series is an ordered sequence of computed values
type Series[T constraints.Ordered] []T

// Length returns the number of values in the series
func (s Series[T]) Length() int {
	return len(s)
}

// Last returns the last value of the series given a past index position
func (s Series[T]) Last(position int) T {
	return s[len(s)-1-position]
}

// Max returns the largest value, or the zero value for an empty series
func (s Series[T]) Max() T {
	var m T
	for i, v := range s {
		if i == 0 || v > m {
			m = v
		}
	}
	return m
}

// Min returns the smallest value, or the zero value for an empty series
func (s Series[T]) Min() T {
	var m T
	for i, v := range s {
		if i == 0 || v < m {
			m = v
		}
	}
	return m
}
