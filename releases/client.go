package releases

import (
	"context"
	"net/http"

	ghApi "github.com/google/go-github/v32/github"
	"golang.org/x/oauth2"
)

// CreateClient returns a GitHub client. An empty token gives an
// unauthenticated client, which is subject to the lower anonymous rate limit.
func CreateClient(ctx context.Context, token string) *ghApi.Client {
	return ghApi.NewClient(apiHTTPClient(ctx, token))
}

// apiHTTPClient authenticates every request it sends, redirects included, so
// it must only be used against the API host. Asset downloads set their own
// header instead.
func apiHTTPClient(ctx context.Context, token string) *http.Client {
	if token == "" {
		return http.DefaultClient
	}
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	return oauth2.NewClient(ctx, ts)
}
