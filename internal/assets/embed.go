package assets

import (
	"embed"
	"io/fs"
)

// Well-known asset names.
const (
	VertexShader   = "shader.vert"
	FragmentShader = "shader.frag"
	DefaultModel   = "models/gem.obj"
)

//go:embed data
var embedded embed.FS

// Embedded returns the built-in assets rooted at the data directory.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		// Only fails if the embed directive and the path above disagree.
		panic(err)
	}
	return sub
}
