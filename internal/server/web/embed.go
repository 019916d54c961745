// Package web embeds the static assets of the browser client.
package web

import "embed"

//go:embed static
var Assets embed.FS
