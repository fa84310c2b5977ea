// Package yamlspec loads chart documents written as JSON or YAML, using the
// camelCase property names of the chart grammar, and translates them into
// config.Document.
package yamlspec
