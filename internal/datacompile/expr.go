package datacompile

import (
	"strconv"

	"github.com/vk/vizpipe/internal/model"
	"github.com/vk/vizpipe/internal/timeunit"
)

// num formats a pixel size for an engine expression.
func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func datum(field string) string {
	return "datum." + field
}

// rawDomain returns the enumeration of a bounded time unit on ch. Facet,
// shape and color channels never enumerate their domain.
func rawDomain(unit timeunit.Unit, ch model.Channel) []int {
	switch ch {
	case model.Row, model.Column, model.Shape, model.Color:
		return nil
	}
	return unit.Domain()
}
