package report

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"ospfwatch/internal/repository"
)

// AggregateFileName is the file name of the combined report index.
const AggregateFileName = "report.html"

// aggregateData summarizes all recorded runs for the index page.
type aggregateData struct {
	Total       int
	Passed      int
	Failed      int
	SuccessRate float64
	Runs        []aggregateRun
}

type aggregateRun struct {
	Title      string
	Passed     bool
	Timestamp  string
	ReportLink string
}

// WriteAggregate renders the combined index over all recorded runs and
// returns its path. Records are expected in timestamp order, as the
// store lists them.
func (g *Generator) WriteAggregate(records []repository.RunRecord) (string, error) {
	if err := os.MkdirAll(g.dir, 0755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}

	data := aggregateData{Total: len(records)}
	for _, rec := range records {
		if rec.Passed {
			data.Passed++
		}
		link := rec.ReportPath
		// Link relative to the index when the report lives in the same tree
		if rel, err := filepath.Rel(g.dir, rec.ReportPath); err == nil && !strings.HasPrefix(rel, "..") {
			link = rel
		}
		data.Runs = append(data.Runs, aggregateRun{
			Title:      rec.Title,
			Passed:     rec.Passed,
			Timestamp:  rec.Timestamp.Format("2006-01-02 15:04:05"),
			ReportLink: link,
		})
	}
	data.Failed = data.Total - data.Passed
	if data.Total > 0 {
		data.SuccessRate = float64(data.Passed) / float64(data.Total) * 100
	}

	var buf bytes.Buffer
	if err := aggregateTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render aggregate report: %w", err)
	}

	path := filepath.Join(g.dir, AggregateFileName)
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("write aggregate report: %w", err)
	}

	return path, nil
}

var aggregateTemplate = template.Must(template.New("aggregate").Parse(`<!DOCTYPE html>
<html>
<head>
    <title>Test Results Summary</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 40px; }
        .summary { margin: 20px 0; padding: 20px; background: #f8f9fa; }
        .test-result { margin: 10px 0; }
        .pass { color: #28a745; }
        .fail { color: #dc3545; }
    </style>
</head>
<body>
    <h1>Test Results Summary</h1>

    <div class="summary">
        <h2>Executive Summary</h2>
        <p>Total Tests: {{.Total}}</p>
        <p>Passed: {{.Passed}}</p>
        <p>Failed: {{.Failed}}</p>
        <p>Success Rate: {{printf "%.1f" .SuccessRate}}%</p>
    </div>

    <h2>Test Results</h2>
    <div class="test-results">
    {{range .Runs}}
        <div class="test-result">
            <h3>{{.Title}}</h3>
            <p class="{{if .Passed}}pass{{else}}fail{{end}}">Status: {{if .Passed}}PASSED{{else}}FAILED{{end}}</p>
            <p>{{.Timestamp}}</p>
            <p><a href="{{.ReportLink}}">View Detailed Results</a></p>
        </div>
    {{end}}
    </div>
</body>
</html>
`))
