// Package integration provides end-to-end tests for the gush CLI using
// testscript. The scripts run the real command wiring in a child process, so
// they exercise everything from flag parsing down to process spawning.
package integration

import (
	"os"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"

	"gush/internal/cmd"
)

// TestMain registers the gush command so scripts can exec it without a
// prebuilt binary.
func TestMain(m *testing.M) {
	os.Exit(testscript.RunMain(m, map[string]func() int{
		"gush": gushMain,
	}))
}

// gushMain runs the CLI the same way cmd/gush does.
func gushMain() int {
	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}

// TestScripts runs all testscript files in testdata/scripts.
func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata/scripts",
	})
}
