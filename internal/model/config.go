// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

// Config holds layout sizes, in pixels, and the stacking mode.
type Config struct {
	CellWidth     float64
	CellHeight    float64
	BandWidth     float64
	TextBandWidth float64
	Padding       float64
	FacetPadding  float64
	// Stacked is the stack offset; "none" disables stacking.
	Stacked string
}

// StackNone disables stacking.
const StackNone = "none"

// DefaultConfig returns the layout defaults.
func DefaultConfig() Config {
	return Config{
		CellWidth:     200,
		CellHeight:    200,
		BandWidth:     21,
		TextBandWidth: 90,
		Padding:       1,
		FacetPadding:  16,
		Stacked:       "zero",
	}
}
