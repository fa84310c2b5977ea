// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model provides the read-only, typed view of a chart specification
// that the data-pipeline compiler consumes.
//
// # Core Concepts
//
//   - Channel: A visual encoding slot (x, y, row, column, color, ...). Channels
//     are always visited in the canonical order of Channels, which keeps every
//     derived output deterministic.
//
//   - FieldDef: What a channel is bound to. Its Role tells a consumer whether the
//     binding is a count, an aggregate, a bin, a time-unit truncation, or a plain
//     field, so callers switch on the role instead of probing optional properties.
//
//   - Scale: The resolved scale of a channel. Types and sizes are inferred once,
//     when the Unit is built, so the compiler never applies defaults itself.
//
//   - Model: The interface the compiler depends on. Unit is the concrete
//     implementation built from a config.Document.
//
// A Unit is immutable after New returns; any number of compiles may read the
// same Unit concurrently.
package model
