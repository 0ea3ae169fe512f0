package shell

import "os"

// Environ is the process context the interpreter reads and mutates: plain
// environment variable lookups plus the current working directory. The
// dispatcher takes it as an explicit dependency rather than reaching for the
// os package at call sites, so tests can substitute a fabricated environment
// without touching real process state.
type Environ interface {
	// Getenv returns the value of the named variable, or "" when unset.
	Getenv(key string) string

	// Getwd returns the absolute path of the current working directory.
	Getwd() (string, error)

	// Chdir changes the current working directory.
	Chdir(dir string) error
}

type osEnviron struct{}

// OSEnviron returns the Environ backed by the real process environment.
func OSEnviron() Environ {
	return osEnviron{}
}

func (osEnviron) Getenv(key string) string { return os.Getenv(key) }
func (osEnviron) Getwd() (string, error)   { return os.Getwd() }
func (osEnviron) Chdir(dir string) error   { return os.Chdir(dir) }
