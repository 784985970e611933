package testrunner

import (
	"io/ioutil"
	"path/filepath"
	"testing"
)

func TestCheckSuite(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{
			name: "valid suite",
			content: `local p = premake
dofile("testfx.lua")
for _, f in ipairs({"base", "api"}) do
	include(f)
end`,
		},
		{name: "syntax error", content: "function (", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "tests.lua")
			if err := ioutil.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			if err := CheckSuite(path); (err != nil) != tt.wantErr {
				t.Errorf("CheckSuite() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCheckSuiteMissingFile(t *testing.T) {
	if err := CheckSuite(filepath.Join(t.TempDir(), "missing.lua")); err == nil {
		t.Error("CheckSuite() on missing file succeeded")
	}
}
