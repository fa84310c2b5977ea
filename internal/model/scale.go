// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// ScaleType names the kind of mapping from data values to visual values.
type ScaleType string

const (
	ScaleOrdinal ScaleType = "ordinal"
	ScaleLinear  ScaleType = "linear"
	ScaleLog     ScaleType = "log"
	ScalePow     ScaleType = "pow"
	ScaleSqrt    ScaleType = "sqrt"
	ScaleTime    ScaleType = "time"
	ScaleUTC     ScaleType = "utc"
)

var continuousScales = []ScaleType{ScaleLinear, ScaleLog, ScalePow, ScaleSqrt, ScaleTime, ScaleUTC}

// ParseScaleType returns the ScaleType named by s.
func ParseScaleType(s string) (ScaleType, error) {
	t := ScaleType(strings.ToLower(s))
	if t != ScaleOrdinal && !lo.Contains(continuousScales, t) {
		return "", fmt.Errorf("unknown scale type %q", s)
	}
	return t, nil
}

// Discrete reports whether the scale allocates one band per domain value.
func (t ScaleType) Discrete() bool {
	return t == ScaleOrdinal
}

// Continuous reports whether the scale maps a numeric or temporal range.
func (t ScaleType) Continuous() bool {
	return lo.Contains(continuousScales, t)
}

// Scale is the resolved scale of a channel.
type Scale struct {
	Type ScaleType
	// Domain is an explicit list of domain values; nil means data-driven.
	Domain    []any
	Padding   float64
	BandWidth float64
}

// HasDomainValues reports whether the domain is an explicit array.
func (s *Scale) HasDomainValues() bool {
	return s != nil && s.Domain != nil
}
