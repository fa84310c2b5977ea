// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

import (
	"fmt"
	"strings"

	"github.com/vk/vizpipe/internal/timeunit"
)

// FieldType is the semantic type of a field.
type FieldType string

const (
	Nominal      FieldType = "nominal"
	Ordinal      FieldType = "ordinal"
	Quantitative FieldType = "quantitative"
	Temporal     FieldType = "temporal"
)

// ParseFieldType accepts the full type names and their one-letter short
// forms (N, O, Q, T).
func ParseFieldType(s string) (FieldType, error) {
	switch strings.ToLower(s) {
	case "nominal", "n":
		return Nominal, nil
	case "ordinal", "o":
		return Ordinal, nil
	case "quantitative", "q":
		return Quantitative, nil
	case "temporal", "t":
		return Temporal, nil
	}
	return "", fmt.Errorf("unknown field type %q", s)
}

// Wildcard is the field marker meaning "every row" (used by count).
const Wildcard = "*"

// Count is the aggregate operation that counts rows.
const Count = "count"

// Bin carries binning parameters. Zero MaxBins and Step mean "derive from the
// channel".
type Bin struct {
	MaxBins int
	Step    float64
	Min     *float64
	Max     *float64
}

// Role classifies how a channel uses its field.
type Role int

const (
	RolePlain Role = iota
	RoleCount
	RoleAggregate
	RoleBinned
	RoleTimeUnit
)

// FieldDef is the binding of one channel.
type FieldDef struct {
	Field     string
	Type      FieldType
	Aggregate string
	Bin       *Bin
	TimeUnit  timeunit.Unit
	// Scale is nil for channels that carry no scale.
	Scale *Scale
}

// Role returns how the field is used. Aggregation takes precedence over
// binning, which takes precedence over time-unit truncation.
func (fd *FieldDef) Role() Role {
	switch {
	case fd.Aggregate == Count:
		return RoleCount
	case fd.Aggregate != "":
		return RoleAggregate
	case fd.Bin != nil:
		return RoleBinned
	case fd.TimeUnit != "":
		return RoleTimeUnit
	}
	return RolePlain
}

// IsAggregate reports whether the field is summarized.
func (fd *FieldDef) IsAggregate() bool {
	r := fd.Role()
	return r == RoleCount || r == RoleAggregate
}

// IsMeasure reports whether the field encodes a continuous quantity.
func (fd *FieldDef) IsMeasure() bool {
	switch fd.Type {
	case Quantitative:
		return fd.Bin == nil
	case Temporal:
		return fd.TimeUnit == ""
	}
	return false
}

// Bin output suffixes.
const (
	BinStart = "_start"
	BinMid   = "_mid"
	BinEnd   = "_end"
	BinRange = "_range"
)

// RefOption tweaks the name returned by Ref.
type RefOption struct {
	// Datum prefixes the reference with "datum." for use in expressions.
	Datum bool
	// Prefix is prepended to the name, e.g. "distinct_".
	Prefix string
	// BinSuffix selects the bin output; defaults to BinStart.
	BinSuffix string
	// NoFn returns the raw field name regardless of aggregate or bin.
	NoFn bool
}

// Ref returns the name under which the channel's value is found in the
// compiled data: "count" for counts, "<op>_<field>" for aggregates,
// "<field>_start" (or another suffix) for bins, and the raw field otherwise.
// Time-unit fields are truncated in place and keep their raw name.
func (fd *FieldDef) Ref(opt RefOption) string {
	name := fd.Field
	switch fd.Role() {
	case RoleCount:
		name = Count
	case RoleAggregate:
		if !opt.NoFn {
			name = fd.Aggregate + "_" + fd.Field
		}
	case RoleBinned:
		if !opt.NoFn {
			suffix := opt.BinSuffix
			if suffix == "" {
				suffix = BinStart
			}
			name = fd.Field + suffix
		}
	case RoleTimeUnit, RolePlain:
	}
	name = opt.Prefix + name
	if opt.Datum {
		return "datum." + name
	}
	return name
}
