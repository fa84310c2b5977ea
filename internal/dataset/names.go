package dataset

// Reserved dataset names. Later compilation stages refer to these datasets by
// name, so they are fixed.
const (
	Source       = "source"
	Summary      = "summary"
	Layout       = "layout"
	StackedScale = "stacked_scale"
	ColumnDomain = "column_domain"
	RowDomain    = "row_domain"
	Cross        = "cross"
)
