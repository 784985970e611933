package printer

import (
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/rodaine/table"

	"github.com/premake/premake-testbin/models"
)

func newTable(w io.Writer, columns ...interface{}) table.Table {
	headerFmt := color.New(color.FgGreen, color.Underline).SprintfFunc()
	columnFmt := color.New(color.FgYellow).SprintfFunc()

	tbl := table.New(columns...).WithWriter(w)
	tbl.WithHeaderFormatter(headerFmt).WithFirstColumnFormatter(columnFmt)
	return tbl
}

// Staged prints one row per staged executable.
func Staged(w io.Writer, staged []models.StagedExecutable) {
	tbl := newTable(w, "Release", "Version", "Executable", "Size", "Sha256")
	for _, s := range staged {
		tbl.AddRow(s.ReleaseName, s.Version, s.Path, humanize.Bytes(uint64(s.Size)), s.Sha256)
	}
	tbl.Print()
}

// Results prints the outcome of every test run made.
func Results(w io.Writer, results []models.TestResult) {
	tbl := newTable(w, "Executable", "Status", "Duration")
	for _, r := range results {
		status := "ok"
		if r.ExitCode != 0 {
			status = "failed"
		}
		tbl.AddRow(r.Path, status, r.Duration.Round(time.Millisecond))
	}
	tbl.Print()
}
