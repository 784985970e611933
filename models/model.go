package models

import "time"

// DesiredRepo names the upstream project whose releases are fetched.
type DesiredRepo struct {
	Org  string `yaml:"org"`
	Repo string `yaml:"repo"`
}

type Release struct {
	Name    string
	TagName string
	Assets  []Asset
}

type Asset struct {
	Name string
	URL  string
	Size int
}

// StagedExecutable is a binary renamed into the bin directory, ready for the
// test runner.
type StagedExecutable struct {
	ReleaseName string
	AssetName   string
	Path        string
	Version     string
	Sha256      string
	Size        int64
}

type TestResult struct {
	Path     string
	ExitCode int
	Duration time.Duration
}
