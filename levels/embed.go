// Package levels embeds the TMX level files and their manifest.
package levels

import "embed"

//go:embed manifest.yaml *.tmx
var FS embed.FS
