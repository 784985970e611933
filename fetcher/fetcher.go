// Package fetcher stages the premake executables of every release for the
// running operating system.
package fetcher

import (
	"context"
	"net/http"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/premake/premake-testbin/extract"
	"github.com/premake/premake-testbin/log"
	"github.com/premake/premake-testbin/models"
	"github.com/premake/premake-testbin/platform"
	"github.com/premake/premake-testbin/releases"
)

type ReleaseLister interface {
	ListReleases(ctx context.Context, repo models.DesiredRepo) ([]models.Release, error)
}

type Fetcher struct {
	Releases ReleaseLister
	HTTP     *http.Client
	Token    string
	Repo     models.DesiredRepo
	Denylist releases.Denylist
	Platform platform.Platform
	// BinDir receives the staged executables, raw downloads go to BinDir/temp.
	BinDir string
	// Binary is the executable name inside each archive, without suffix.
	Binary string
}

// Run stages every matching asset of every release not on the denylist,
// oldest release first. The first failure aborts the run.
func (f *Fetcher) Run(ctx context.Context) ([]models.StagedExecutable, error) {
	releaseList, err := f.Releases.ListReleases(ctx, f.Repo)
	if err != nil {
		return nil, err
	}

	staged := []models.StagedExecutable{}
	for _, release := range releases.Oldest(releaseList) {
		if f.Denylist.Contains(release.Name) {
			log.G(ctx).Debugf("Skipping denylisted release %s", release.Name)
			continue
		}
		log.G(ctx).Infof("Downloading %s", release.Name)

		rctx := log.WithRelease(ctx, release.Name)
		for _, asset := range release.Assets {
			if !f.Platform.Matches(asset.Name) {
				continue
			}
			s, err := f.stage(log.WithAsset(rctx, asset.Name), release, asset)
			if err != nil {
				return staged, errors.Wrapf(err, "staging %s from %s", asset.Name, release.Name)
			}
			staged = append(staged, *s)
		}
	}
	return staged, nil
}

func (f *Fetcher) stage(ctx context.Context, release models.Release, asset models.Asset) (*models.StagedExecutable, error) {
	tempPath := filepath.Join(f.BinDir, "temp", asset.Name)
	sha, size, err := download(ctx, downloadClient(f.HTTP), f.Token, asset.URL, tempPath)
	if err != nil {
		return nil, err
	}

	switch f.Platform.Format {
	case platform.Zip:
		err = extract.Zip(tempPath, f.BinDir)
	case platform.TarGz:
		err = extract.TarGz(tempPath, f.BinDir)
	default:
		err = errors.Errorf("unsupported archive format %q", f.Platform.Format)
	}
	if err != nil {
		return nil, err
	}

	stagedName := f.Platform.StagedName(asset.Name)
	from := filepath.Join(f.BinDir, f.Platform.ExtractedName(f.Binary))
	to := filepath.Join(f.BinDir, stagedName)
	if err := os.Rename(from, to); err != nil {
		return nil, errors.Wrapf(err, "moving %s", from)
	}
	log.G(ctx).Debugf("Staged %s", to)

	return &models.StagedExecutable{
		ReleaseName: release.Name,
		AssetName:   asset.Name,
		Path:        to,
		Version:     f.Platform.Version(stagedName),
		Sha256:      sha,
		Size:        size,
	}, nil
}
