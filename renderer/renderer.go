package renderer

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/tradebook"
)

//go:embed templates/*.md
var embedded embed.FS

// templates holds the markdown templates, at the root of the file system.
var templates = mustSub(embedded, "templates")

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

// Report is everything shown by the full report of one account.
type Report struct {
	Account  string
	Snapshot *tradebook.Snapshot // nil when the account has no entry
	Calendar *tradebook.CalendarMonth
}

// reportPartials are the sections assembled by report.md.
var reportPartials = map[string]string{
	"report_title":       "report_title.md",
	"report_performance": "report_performance.md",
	"report_streaks":     "report_streaks.md",
	"report_stats":       "report_stats.md",
	"report_calendar":    "report_calendar.md",
	"report_equity":      "report_equity.md",
}

// RenderReport renders the full report of an account to markdown.
func RenderReport(r *Report) string {
	if r.Snapshot == nil {
		return renderTemplate("report_empty", "report_empty.md", nil, r)
	}
	var b strings.Builder
	b.WriteString(renderTemplate("report", "report.md", reportPartials, r))
	ConditionalBlock(&b, func(w io.Writer) bool {
		if len(r.Snapshot.Issues) == 0 {
			return false
		}
		io.WriteString(w, "\n")
		io.WriteString(w, RenderIssues(r.Snapshot.Issues))
		return true
	})
	return b.String()
}

// RenderPerformance renders the day, week, month and overall returns.
func RenderPerformance(p *tradebook.Performance) string {
	return renderTemplate("report_performance", "report_performance.md", nil, p)
}

// RenderStats renders the trade statistics with their monthly and per-ticker breakdowns.
func RenderStats(s *tradebook.Stats) string {
	return renderTemplate("report_stats", "report_stats.md", nil, s)
}

func RenderStreaks(s *tradebook.Streaks) string {
	return renderTemplate("report_streaks", "report_streaks.md", nil, s)
}

// RenderEquity renders the equity curve as a table, one row per balance change.
func RenderEquity(c *tradebook.EquityCurve) string {
	return renderTemplate("report_equity", "report_equity.md", nil, c)
}

// RenderCalendar renders a month of daily results as a grid.
func RenderCalendar(c *tradebook.CalendarMonth) string {
	return renderTemplate("report_calendar", "report_calendar.md", nil, c)
}

// RenderIssues renders the data-quality issues as a list.
func RenderIssues(issues []tradebook.Issue) string {
	return renderTemplate("report_issues", "report_issues.md", nil, issues)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
