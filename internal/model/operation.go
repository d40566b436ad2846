package model

type Operation struct {
	ID         string
	Method     Method
	Path       string
	Summary    string
	Tags       []string
	Extensions *OperationExtensions
}

// OperationExtensions carries x-sdkref-* overrides attached to an
// operation in the spec.
type OperationExtensions struct {
	Skip bool   // x-sdkref-skip: exclude the operation from the reference
	Name string // x-sdkref-name: replaces the derived method name
}

type Method string

const (
	MethodGet    Method = "GET"
	MethodPost   Method = "POST"
	MethodPut    Method = "PUT"
	MethodPatch  Method = "PATCH"
	MethodDelete Method = "DELETE"
)
