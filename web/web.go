// Package web embeds the HTML page templates served by the application.
package web

import "embed"

//go:embed templates/*.html
var Templates embed.FS
