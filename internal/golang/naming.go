package golang

import "unicode"

// MethodName converts an operationId into the method name oapi-codegen
// exports on the generated client: the first rune is uppercased, the
// rest of the identifier is left untouched. Identifiers that already
// start with an uppercase rune pass through unchanged.
func MethodName(operationID string) string {
	if operationID == "" {
		return ""
	}
	runes := []rune(operationID)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
