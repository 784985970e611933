package platform

import (
	"strings"

	"github.com/blang/semver"
	"github.com/pkg/errors"
)

type ArchiveFormat string

const (
	Zip   ArchiveFormat = "zip"
	TarGz ArchiveFormat = "tar.gz"
)

// Platform describes how release assets for one operating system are
// recognised, unpacked and named.
type Platform struct {
	OS        string
	Tag       string
	Format    ArchiveFormat
	ExeSuffix string
}

var platforms = map[string]Platform{
	"linux":   {OS: "linux", Tag: "linux", Format: TarGz},
	"windows": {OS: "windows", Tag: "windows", Format: Zip, ExeSuffix: ".exe"},
	"darwin":  {OS: "darwin", Tag: "osx", Format: TarGz},
}

// ForOS returns the platform entry for a GOOS value.
func ForOS(goos string) (Platform, error) {
	p, ok := platforms[goos]
	if !ok {
		return Platform{}, errors.Errorf("no release assets are published for %s", goos)
	}
	return p, nil
}

// Matches reports whether assetName is built for p.
func (p Platform) Matches(assetName string) bool {
	return strings.Contains(assetName, p.Tag)
}

// StagedName strips the archive suffix from assetName and adds the
// executable suffix of p.
func (p Platform) StagedName(assetName string) string {
	base := assetName
	for _, suffix := range []string{".zip", ".tar.gz", ".tgz"} {
		if strings.HasSuffix(base, suffix) {
			base = strings.TrimSuffix(base, suffix)
			break
		}
	}
	if p.ExeSuffix != "" && !strings.HasSuffix(base, p.ExeSuffix) {
		base += p.ExeSuffix
	}
	return base
}

// ExtractedName is the file name binary has inside an archive for p.
func (p Platform) ExtractedName(binary string) string {
	return binary + p.ExeSuffix
}

// Version guesses the semantic version embedded in a staged name such as
// "premake-5.0.0-beta1-linux". It returns "" when none can be found.
func (p Platform) Version(stagedName string) string {
	name := strings.TrimSuffix(stagedName, p.ExeSuffix)
	if i := strings.LastIndex(name, "-"); i >= 0 && strings.Contains(name[i+1:], p.Tag) {
		name = name[:i]
	}
	if i := strings.Index(name, "-"); i >= 0 {
		name = name[i+1:]
	}
	v, err := semver.ParseTolerant(name)
	if err != nil {
		return ""
	}
	return v.String()
}
