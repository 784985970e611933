// Package releases lists the published releases of a GitHub project.
package releases

import (
	"context"
	"strings"

	ghApi "github.com/google/go-github/v32/github"
	"github.com/pkg/errors"

	"github.com/premake/premake-testbin/log"
	"github.com/premake/premake-testbin/models"
)

// DefaultDenylist holds releases whose assets are never staged.
var DefaultDenylist = Denylist{"Premake 5.0 alpha 4", "Premake 5.0 alpha 5"}

type Denylist []string

// Contains reports whether name occurs in any denylist entry.
func (d Denylist) Contains(name string) bool {
	for _, entry := range d {
		if strings.Contains(entry, name) {
			return true
		}
	}
	return false
}

type Lister struct {
	Client *ghApi.Client
}

// ListReleases returns every release of org/repo in the order the API
// reports them, newest first.
func (l *Lister) ListReleases(ctx context.Context, repo models.DesiredRepo) ([]models.Release, error) {
	var releaseList []*ghApi.RepositoryRelease
	opt := &ghApi.ListOptions{PerPage: 100}
	for {
		page, resp, err := l.Client.Repositories.ListReleases(ctx, repo.Org, repo.Repo, opt)
		if err != nil {
			return nil, errors.Wrapf(err, "listing releases of %s/%s", repo.Org, repo.Repo)
		}
		releaseList = append(releaseList, page...)
		if resp.NextPage == 0 {
			break
		}
		opt.Page = resp.NextPage
	}
	log.G(ctx).Debugf("Found %d releases of %s/%s", len(releaseList), repo.Org, repo.Repo)

	out := make([]models.Release, 0, len(releaseList))
	for _, r := range releaseList {
		release := models.Release{
			Name:    r.GetName(),
			TagName: r.GetTagName(),
			Assets:  []models.Asset{},
		}
		for _, a := range r.Assets {
			release.Assets = append(release.Assets, models.Asset{
				Name: a.GetName(),
				URL:  a.GetBrowserDownloadURL(),
				Size: a.GetSize(),
			})
		}
		out = append(out, release)
	}
	return out, nil
}

// Oldest returns releases reversed, so the oldest release comes first.
func Oldest(releases []models.Release) []models.Release {
	out := make([]models.Release, len(releases))
	for i, r := range releases {
		out[len(releases)-1-i] = r
	}
	return out
}
