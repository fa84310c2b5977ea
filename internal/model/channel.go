// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Channel identifies a visual encoding slot.
type Channel string

const (
	X      Channel = "x"
	Y      Channel = "y"
	Row    Channel = "row"
	Column Channel = "column"
	Size   Channel = "size"
	Shape  Channel = "shape"
	Color  Channel = "color"
	Path   Channel = "path"
	Order  Channel = "order"
	Text   Channel = "text"
	Detail Channel = "detail"
	Label  Channel = "label"
)

// Channels lists every channel in canonical order.
var Channels = []Channel{X, Y, Row, Column, Size, Shape, Color, Path, Order, Text, Detail, Label}

// ParseChannel returns the Channel named by s.
func ParseChannel(s string) (Channel, error) {
	ch := Channel(strings.ToLower(s))
	if !lo.Contains(Channels, ch) {
		return "", fmt.Errorf("unknown channel %q", s)
	}
	return ch, nil
}

// HasScale reports whether values on ch are mapped through a scale.
func (ch Channel) HasScale() bool {
	return !lo.Contains([]Channel{Path, Order, Detail, Text, Label}, ch)
}

// IsFacet reports whether ch partitions the chart into a grid of cells.
func (ch Channel) IsFacet() bool {
	return ch == Row || ch == Column
}
