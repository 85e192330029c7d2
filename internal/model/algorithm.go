// Package model defines the data structures for sort visualization.
package model

import (
	"fmt"
	"strings"
)

// Algorithm identifies one of the supported sorting algorithms.
type Algorithm string

const (
	// AlgorithmBubble repeatedly swaps out-of-order adjacent pairs.
	AlgorithmBubble Algorithm = "Bubble Sort"
	// AlgorithmMerge is the top-down recursive merge sort.
	AlgorithmMerge Algorithm = "Merge Sort"
	// AlgorithmCounting is the stable counting sort over bounded keys.
	AlgorithmCounting Algorithm = "Counting Sort"
	// AlgorithmQuick is quick sort with a Hoare-style partition.
	AlgorithmQuick Algorithm = "Quick Sort"
)

// Algorithms returns all supported algorithms in display order.
func Algorithms() []Algorithm {
	return []Algorithm{
		AlgorithmBubble,
		AlgorithmMerge,
		AlgorithmCounting,
		AlgorithmQuick,
	}
}

// ParseAlgorithm resolves a user-supplied name, short or full, to an
// Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bubble", "bubble sort":
		return AlgorithmBubble, nil
	case "merge", "merge sort":
		return AlgorithmMerge, nil
	case "counting", "counting sort":
		return AlgorithmCounting, nil
	case "quick", "quick sort":
		return AlgorithmQuick, nil
	default:
		return "", fmt.Errorf("unknown algorithm %q", s)
	}
}

// AlgorithmInfo describes an algorithm's properties for listing.
type AlgorithmInfo struct {
	Algorithm Algorithm
	Stable    bool
	InPlace   bool
	Records   string // move kinds the algorithm emits
}

// AlgorithmInfos returns the property table for all supported algorithms.
func AlgorithmInfos() []AlgorithmInfo {
	return []AlgorithmInfo{
		{Algorithm: AlgorithmBubble, Stable: true, InPlace: true, Records: "swap"},
		{Algorithm: AlgorithmMerge, Stable: true, InPlace: false, Records: "set"},
		{Algorithm: AlgorithmCounting, Stable: true, InPlace: false, Records: "set"},
		{Algorithm: AlgorithmQuick, Stable: false, InPlace: true, Records: "swap, pivot"},
	}
}
