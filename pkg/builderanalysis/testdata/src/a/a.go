package a

import "opt"

type Optional[T any] struct{ v T }

type Repeated[T any] []T

type Good struct {
	ID int
	//builder:each="Tag"
	Tags Repeated[string]
	Note Optional[string]
}

type BadValue struct {
	//builder:each=5 // want `value of each must be a string literal`
	Items []string
}

type Duplicate struct {
	//builder:each="X"
	//builder:each="X" // want `duplicate //builder directive`
	Xs []int
}

type UnknownFamily struct {
	//builderz:each="X" // want `unknown directive family "builderz"`
	Xs []int
}

type NotRepeated struct {
	//builder:each="N"
	N int // want `each directive requires a repeated type`
}

type BadWrapper struct {
	//builder:each="Item"
	Items []string
	Maybe opt.Optional // want `Optional requires exactly one type argument`
}

type Clash struct {
	//builder:each="Item"
	Items []string
	Build string // want `method name Build is reserved`
}

// Unannotated structs are not checked.
type Ignored struct {
	Maybe opt.Optional
}
