package b

type Empty struct{} // want `record has no fields`

type Other struct{}
