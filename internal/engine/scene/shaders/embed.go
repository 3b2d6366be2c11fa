// Package shaders provides embedded GLSL shader sources.
package shaders

import "embed"

// Files holds every stage source by file name, for mounting as the default
// layer of an asset manager.
//
//go:embed *.vert *.frag
var Files embed.FS
