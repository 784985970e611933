package releases

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
	ghApi "github.com/google/go-github/v32/github"

	"github.com/premake/premake-testbin/models"
)

func TestDenylist_Contains(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{name: "Premake 5.0 alpha 4", want: true},
		{name: "Premake 5.0 alpha 5", want: true},
		{name: "Premake 5.0 alpha 6", want: false},
		{name: "Premake 5.0.0 beta 1", want: false},
		// Substring of an entry, as the release names are matched.
		{name: "alpha 4", want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DefaultDenylist.Contains(tt.name); got != tt.want {
				t.Errorf("Contains(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestOldest(t *testing.T) {
	in := []models.Release{{Name: "c"}, {Name: "b"}, {Name: "a"}}
	want := []models.Release{{Name: "a"}, {Name: "b"}, {Name: "c"}}
	if diff := cmp.Diff(want, Oldest(in)); diff != "" {
		t.Errorf("Oldest() mismatch (-want +got):\n%s", diff)
	}
	if in[0].Name != "c" {
		t.Errorf("Oldest() modified its input")
	}
}

func TestLister_ListReleases(t *testing.T) {
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	mux.HandleFunc("/repos/premake/premake-core/releases", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("page") {
		case "", "1":
			w.Header().Set("Link", fmt.Sprintf(`<%s/repos/premake/premake-core/releases?page=2>; rel="next"`, server.URL))
			fmt.Fprint(w, `[{"name":"Premake 5.0.0 beta 1","tag_name":"v5.0.0-beta1","assets":[
				{"name":"premake-5.0.0-beta1-linux.tar.gz","browser_download_url":"https://example.com/linux.tar.gz","size":10},
				{"name":"premake-5.0.0-beta1-windows.zip","browser_download_url":"https://example.com/windows.zip","size":20}]}]`)
		case "2":
			fmt.Fprint(w, `[{"name":"Premake 5.0 alpha 16","tag_name":"v5.0.0-alpha16","assets":[]}]`)
		default:
			http.NotFound(w, r)
		}
	})

	client := ghApi.NewClient(nil)
	client.BaseURL, _ = url.Parse(server.URL + "/")
	l := &Lister{Client: client}

	got, err := l.ListReleases(context.Background(), models.DesiredRepo{Org: "premake", Repo: "premake-core"})
	if err != nil {
		t.Fatalf("ListReleases() error = %v", err)
	}
	want := []models.Release{
		{
			Name:    "Premake 5.0.0 beta 1",
			TagName: "v5.0.0-beta1",
			Assets: []models.Asset{
				{Name: "premake-5.0.0-beta1-linux.tar.gz", URL: "https://example.com/linux.tar.gz", Size: 10},
				{Name: "premake-5.0.0-beta1-windows.zip", URL: "https://example.com/windows.zip", Size: 20},
			},
		},
		{Name: "Premake 5.0 alpha 16", TagName: "v5.0.0-alpha16", Assets: []models.Asset{}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ListReleases() mismatch (-want +got):\n%s", diff)
	}
}

func TestLister_ListReleasesError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	client := ghApi.NewClient(nil)
	client.BaseURL, _ = url.Parse(server.URL + "/")
	l := &Lister{Client: client}

	if _, err := l.ListReleases(context.Background(), models.DesiredRepo{Org: "premake", Repo: "missing"}); err == nil {
		t.Error("ListReleases() on missing repo succeeded")
	}
}
