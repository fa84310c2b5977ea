// Package datacompile compiles a chart Model into the ordered list of dataset
// pipelines the rendering engine loads.
//
// The compiler never touches data. Quantities that depend on the data (cell
// counts, facet sizes, stacked totals, calendar domains) are emitted as
// transforms and formulas the engine evaluates once rows are loaded.
//
// Compile assembles the datasets in a fixed order:
//
//	source -> summary? -> (rank, log filter on the trailing dataset)
//	       -> layout -> stacked_scale? -> one dataset per bounded time unit
//
// The rank and log-filter transforms are appended to whichever dataset is
// last when they run, so they see aggregated values when a summary exists.
// Inserting a dataset between the summary and that step changes their target.
//
// FacetDomains is compiled separately by the facet stage, from the same
// primitives.
package datacompile
