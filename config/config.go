// Package config holds the settings shared by the fetch and test commands.
package config

import (
	"io/ioutil"

	"github.com/go-yaml/yaml"
	"github.com/gobuffalo/envy"
	"github.com/pkg/errors"

	"github.com/premake/premake-testbin/models"
	"github.com/premake/premake-testbin/releases"
	"github.com/premake/premake-testbin/testrunner"
)

type Config struct {
	Upstream  models.DesiredRepo `yaml:"upstream"`
	Denylist  releases.Denylist  `yaml:"denylist"`
	BinDir    string             `yaml:"bin"`
	Binary    string             `yaml:"binary"`
	Pattern   string             `yaml:"pattern"`
	SuiteFile string             `yaml:"suite"`
	// Token authenticates against the GitHub API; never read from the file.
	Token string `yaml:"-"`
}

func Default() Config {
	return Config{
		Upstream:  models.DesiredRepo{Org: "premake", Repo: "premake-core"},
		Denylist:  releases.DefaultDenylist,
		BinDir:    "bin",
		Binary:    "premake5",
		Pattern:   testrunner.DefaultPattern,
		SuiteFile: testrunner.DefaultSuiteFile,
	}
}

// Load returns the defaults overridden by the YAML file at path, if any, and
// the GITHUB_TOKEN environment variable.
func Load(path string) (Config, error) {
	c := Default()
	if path != "" {
		yamlFile, err := ioutil.ReadFile(path)
		if err != nil {
			return c, errors.Wrap(err, "reading config")
		}
		if err := yaml.Unmarshal(yamlFile, &c); err != nil {
			return c, errors.Wrapf(err, "parsing %s", path)
		}
	}
	c.Token = envy.Get("GITHUB_TOKEN", "")
	return c, nil
}
