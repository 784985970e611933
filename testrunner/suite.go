package testrunner

import (
	"os"

	"github.com/pkg/errors"
	"github.com/yuin/gopher-lua/parse"
)

// CheckSuite parses the Lua test definition file so a syntax error is
// reported once, before any executable is started.
func CheckSuite(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "opening test suite")
	}
	defer f.Close()

	if _, err := parse.Parse(f, path); err != nil {
		return errors.Wrapf(err, "parsing test suite %s", path)
	}
	return nil
}
