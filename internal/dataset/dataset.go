package dataset

// Dataset is a named data source plus its ordered transform pipeline. Exactly
// one of Source, URL or Values is expected to be set; a dataset with none of
// them receives its rows from the runtime.
type Dataset struct {
	Name      string      `json:"name"`
	Source    string      `json:"source,omitempty"`
	URL       string      `json:"url,omitempty"`
	Values    []any       `json:"values,omitempty"`
	Format    *Format     `json:"format,omitempty"`
	Transform []Transform `json:"transform,omitempty"`
}

// Format tells the engine how to parse loaded rows.
type Format struct {
	Type  string            `json:"type,omitempty"`
	Parse map[string]string `json:"parse,omitempty"`
}

// Append adds transforms to the end of the pipeline.
func (d *Dataset) Append(t ...Transform) {
	d.Transform = append(d.Transform, t...)
}

// Last returns the trailing dataset of list, or nil when list is empty.
func Last(list []*Dataset) *Dataset {
	if len(list) == 0 {
		return nil
	}
	return list[len(list)-1]
}
