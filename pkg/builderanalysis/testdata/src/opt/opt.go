package opt

// Optional is a wrapper name declared without type parameters.
type Optional struct{}
