// Package templates embeds the markdown templates shipped with sdkref.
package templates

import "embed"

//go:embed *.tmpl
var FS embed.FS
