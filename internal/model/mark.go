// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Mark is the graphical primitive a unit draws.
type Mark string

const (
	Point  Mark = "point"
	Bar    Mark = "bar"
	Line   Mark = "line"
	Area   Mark = "area"
	Tick   Mark = "tick"
	Circle Mark = "circle"
	Square Mark = "square"
	Rule   Mark = "rule"
	TextMark Mark = "text"
)

var marks = []Mark{Point, Bar, Line, Area, Tick, Circle, Square, Rule, TextMark}

// ParseMark returns the Mark named by s.
func ParseMark(s string) (Mark, error) {
	m := Mark(strings.ToLower(s))
	if !lo.Contains(marks, m) {
		return "", fmt.Errorf("unknown mark %q", s)
	}
	return m, nil
}
