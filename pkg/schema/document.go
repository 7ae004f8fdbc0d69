package schema

// Document is the decoded form of a declaration file.
//
// Required and Optional map parameter names to elements. An element is a
// type or argument-less validator name (string), a single-key map from a
// validator name to its arguments, or a list of those forming a chain.
type Document struct {
	Name     string         `yaml:"name" json:"name"`
	Mode     string         `yaml:"mode" json:"mode"`
	Required map[string]any `yaml:"required" json:"required"`
	Optional map[string]any `yaml:"optional" json:"optional"`
}

func (d *Document) empty() bool {
	return d == nil || (len(d.Required) == 0 && len(d.Optional) == 0 && d.Name == "" && d.Mode == "")
}
