// Package testrunner runs the premake test suite with every staged
// executable.
package testrunner

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/premake/premake-testbin/log"
	"github.com/premake/premake-testbin/models"
)

const (
	DefaultPattern   = "premake*"
	DefaultSuiteFile = "test/tests.lua"
)

// Executor starts one executable and reports its exit code.
type Executor interface {
	Run(ctx context.Context, path string, args []string) (int, error)
}

// ProcessExecutor runs executables as child processes sharing our stdout and
// stderr.
type ProcessExecutor struct{}

func (ProcessExecutor) Run(ctx context.Context, path string, args []string) (int, error) {
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	err := cmd.Run()
	if exitErr, ok := err.(*exec.ExitError); ok {
		return exitErr.ExitCode(), nil
	}
	if err != nil {
		return -1, errors.Wrapf(err, "starting %s", path)
	}
	return 0, nil
}

// FailedError is returned for the first executable exiting non-zero.
type FailedError struct {
	Path     string
	ExitCode int
}

func (e *FailedError) Error() string {
	return fmt.Sprintf("%s exited with code %d", e.Path, e.ExitCode)
}

type Runner struct {
	Executor  Executor
	SuiteFile string
}

// Args are the arguments every executable is started with.
func (r *Runner) Args() []string {
	suite := r.SuiteFile
	if suite == "" {
		suite = DefaultSuiteFile
	}
	return []string{"test", "--file=" + suite, "--systemscript=-", "--scripts=./"}
}

// Discover returns the regular files in dir matching pattern, in lexical
// order.
func Discover(dir, pattern string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, errors.Wrapf(err, "bad pattern %q", pattern)
	}
	executables := []string{}
	for _, m := range matches {
		fi, err := os.Stat(m)
		if err != nil {
			return nil, err
		}
		if fi.Mode().IsRegular() {
			executables = append(executables, m)
		}
	}
	sort.Strings(executables)
	return executables, nil
}

// Run invokes each executable in turn. It stops at the first one exiting
// non-zero and returns a *FailedError for it; the results of every
// invocation made are returned either way.
func (r *Runner) Run(ctx context.Context, executables []string) ([]models.TestResult, error) {
	args := r.Args()
	results := []models.TestResult{}
	for _, exe := range executables {
		log.G(ctx).Infof("%s %s", exe, strings.Join(args, " "))

		start := time.Now()
		code, err := r.Executor.Run(ctx, exe, args)
		if err != nil {
			return results, err
		}
		results = append(results, models.TestResult{
			Path:     exe,
			ExitCode: code,
			Duration: time.Since(start),
		})
		if code != 0 {
			return results, &FailedError{Path: exe, ExitCode: code}
		}
	}
	return results, nil
}
