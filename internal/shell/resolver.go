package shell

import (
	"io/fs"
	"os"
	"path/filepath"
)

// SearchPath is the ordered list of directories consulted, in order, to
// resolve a command name to an executable file. It is derived once at
// startup and never mutated for the life of the run.
type SearchPath []string

// SearchPathFrom splits a PATH-style value into its directory entries using
// the platform list separator. An empty value yields an empty search path.
func SearchPathFrom(value string) SearchPath {
	return SearchPath(filepath.SplitList(value))
}

// ResolutionKind tags the outcome of resolving a command name.
type ResolutionKind int

const (
	// ResolvedBuiltin means the name is one of the closed built-in set.
	ResolvedBuiltin ResolutionKind = iota
	// ResolvedExternal means the name matched an executable on the search path.
	ResolvedExternal
	// ResolvedNotFound means the name matched neither.
	ResolvedNotFound
)

// Resolution is the tagged result of resolving one command name: exactly one
// of built-in, external path, or not found.
type Resolution struct {
	Kind    ResolutionKind
	Builtin Builtin // set when Kind is ResolvedBuiltin
	Path    string  // set when Kind is ResolvedExternal
}

// Resolver classifies command names against the built-in set and the search
// path.
type Resolver struct {
	path SearchPath
}

// NewResolver returns a Resolver that searches the given directories in
// order.
func NewResolver(path SearchPath) *Resolver {
	return &Resolver{path: path}
}

// Resolve classifies name. Built-ins take precedence over executables of the
// same name on the search path.
func (r *Resolver) Resolve(name string) Resolution {
	if b, ok := LookupBuiltin(name); ok {
		return Resolution{Kind: ResolvedBuiltin, Builtin: b}
	}
	if path, ok := r.ResolveExternal(name); ok {
		return Resolution{Kind: ResolvedExternal, Path: path}
	}
	return Resolution{Kind: ResolvedNotFound}
}

// ResolveExternal searches the path directories in order for a regular file
// named name that carries at least one execute permission bit. The first
// match in path order wins. Executability is checked on filesystem metadata:
// a file that merely exists, or is readable without execute bits, is not a
// match.
func (r *Resolver) ResolveExternal(name string) (string, bool) {
	for _, dir := range r.path {
		candidate := filepath.Join(dir, name)
		info, err := os.Stat(candidate)
		if err != nil {
			continue
		}
		if isExecutable(info) {
			return candidate, true
		}
	}
	return "", false
}

func isExecutable(info fs.FileInfo) bool {
	return info.Mode().IsRegular() && info.Mode().Perm()&0o111 != 0
}
