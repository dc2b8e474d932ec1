package definitions

import (
	"embed"
	"io/fs"
	"os"
	"strings"
)

// FileName is the definition file looked up in each directory of a source.
const FileName = "project-definition.yaml"

//go:embed builtin
var builtinFS embed.FS

// Source is a named tree of definition directories. Earlier sources take
// priority over later ones when both define the same key.
type Source struct {
	Name string
	FS   fs.FS
}

// Builtin returns the source holding the definitions shipped with the binary.
func Builtin() Source {
	sub, err := fs.Sub(builtinFS, "builtin")
	if err != nil {
		panic(err)
	}
	return Source{Name: "builtin", FS: sub}
}

// DirSource returns a source rooted at a directory on disk.
func DirSource(path string) Source {
	return Source{Name: path, FS: os.DirFS(path)}
}

// KeyFromDir derives a definition key from its directory name:
// "next-typescript" becomes "NEXT_TYPESCRIPT".
func KeyFromDir(dir string) string {
	return strings.ToUpper(strings.ReplaceAll(dir, "-", "_"))
}
