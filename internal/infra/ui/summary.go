// Where: cli/internal/infra/ui/summary.go
// What: Build plan summary rendering.
// Why: Show what was dispatched for each platform in one readable block.
package ui

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var (
	summaryOnce sync.Once
	summaryTmpl *template.Template
	summaryErr  error
)

// Summary is the data rendered by RenderSummary.
type Summary struct {
	Account    string
	Project    string
	Profile    string
	User       string
	TrackingID string
	Wait       bool
	Emoji      bool
	Builds     []SummaryBuild
}

// SummaryBuild describes one dispatched platform build.
type SummaryBuild struct {
	Platform  string
	RequestID string
	Location  string
	Details   map[string]any
}

// RenderSummary writes the build plan summary to out.
func RenderSummary(out io.Writer, summary Summary) error {
	tmpl, err := loadSummaryTemplate()
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, summary); err != nil {
		return fmt.Errorf("render summary: %w", err)
	}
	buf.WriteByte('\n')
	_, err = out.Write(buf.Bytes())
	return err
}

func loadSummaryTemplate() (*template.Template, error) {
	summaryOnce.Do(func() {
		content, err := templateFS.ReadFile("templates/summary.tmpl")
		if err != nil {
			summaryErr = fmt.Errorf("read summary template: %w", err)
			return
		}
		summaryTmpl, summaryErr = template.New("summary").
			Funcs(sprig.TxtFuncMap()).
			Option("missingkey=zero").
			Parse(string(content))
	})
	return summaryTmpl, summaryErr
}
