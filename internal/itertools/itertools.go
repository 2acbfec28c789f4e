// Package itertools holds small [iter.Seq] combinators shared across the module.
package itertools

import (
	"fmt"
	"iter"

	"golang.org/x/exp/constraints"
)

// Cat yields the values of each sequence in turn.
func Cat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for v := range seq {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Map yields transform applied to each value.
func Map[Vin, Vout any](seq iter.Seq[Vin], transform func(Vin) Vout) iter.Seq[Vout] {
	return func(yield func(Vout) bool) {
		for v := range seq {
			if !yield(transform(v)) {
				return
			}
		}
	}
}

// Enumerate pairs each value with its position in the sequence, counting from zero.
func Enumerate[I constraints.Integer, V any](seq iter.Seq[V]) iter.Seq2[I, V] {
	return func(yield func(I, V) bool) {
		var i I
		for v := range seq {
			if !yield(i, v) {
				return
			}
			i++
		}
	}
}

// Stringify yields each value's String() result.
func Stringify[V fmt.Stringer](seq iter.Seq[V]) iter.Seq[string] {
	return Map(seq, func(v V) string { return v.String() })
}
