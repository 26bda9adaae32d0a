// Package report renders human-readable HTML artifacts for completed
// runs. The core hands it the ordered result trail, the overall status
// and the expected parameter tree verbatim; rendering adds no
// interpretation of its own.
package report

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"ospfwatch/internal/domain"
	"ospfwatch/internal/service"
)

// Generator writes HTML reports under a base directory.
type Generator struct {
	dir string
}

// NewGenerator creates a generator writing into dir.
func NewGenerator(dir string) *Generator {
	return &Generator{dir: dir}
}

// NeighborView is one expected neighbor flattened for templating.
type NeighborView struct {
	ID         string
	Attributes []AttributeView
}

// AttributeView is one expected attribute key/value pair.
type AttributeView struct {
	Key   string
	Value string
}

// InterfaceView is one expected interface with its neighbors.
type InterfaceView struct {
	Name      string
	Neighbors []NeighborView
}

// DeviceView is one expected device with its interfaces.
type DeviceView struct {
	Name       string
	Interfaces []InterfaceView
}

// proseContext is the data prose templates render against.
type proseContext struct {
	Devices []DeviceView
}

// flattenTree converts the parameter tree into the template view,
// preserving walk order.
func flattenTree(tree *domain.FactTree, attributes []string) []DeviceView {
	if tree == nil {
		return nil
	}
	var devices []DeviceView
	for _, deviceName := range tree.Devices() {
		dv := DeviceView{Name: deviceName}
		deviceFacts, _ := tree.Device(deviceName)
		for _, ifName := range deviceFacts.Interfaces() {
			iv := InterfaceView{Name: ifName}
			ifaceFacts, _ := deviceFacts.Interface(ifName)
			var neighborSet *domain.NeighborSet
			if ifaceFacts != nil {
				neighborSet = ifaceFacts.Neighbors
			}
			for _, neighborID := range neighborSet.IDs() {
				nv := NeighborView{ID: neighborID}
				attrs, _ := neighborSet.Get(neighborID)
				for _, key := range attributes {
					nv.Attributes = append(nv.Attributes, AttributeView{Key: key, Value: attrs[key]})
				}
				iv.Neighbors = append(iv.Neighbors, nv)
			}
			dv.Interfaces = append(dv.Interfaces, iv)
		}
		devices = append(devices, dv)
	}
	return devices
}

// resultView colors failing results for the trail section.
type resultView struct {
	Message string
	Color   string
}

// pageData is the full data set for the run report page.
type pageData struct {
	Title       string
	Passed      bool
	Description template.HTML
	Setup       template.HTML
	Procedure   template.HTML
	Criteria    template.HTML
	Results     []resultView
	GeneratedAt string
}

// WriteRun renders the report for one run and returns the file path.
// Results render in insertion order; the trail is the audit record of
// the walk, read top to bottom.
func (g *Generator) WriteRun(outcome *service.Outcome, runID string, when time.Time) (string, error) {
	if err := os.MkdirAll(g.dir, 0755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}

	prose, ok := proseForCheck(outcome.Check.Name)
	if !ok {
		return "", fmt.Errorf("no report prose registered for check %s", outcome.Check.Name)
	}

	ctx := proseContext{Devices: flattenTree(outcome.Parameters, outcome.Check.Attributes)}
	description, err := renderProse(prose.Description, ctx)
	if err != nil {
		return "", fmt.Errorf("render description: %w", err)
	}
	setup, err := renderProse(prose.Setup, ctx)
	if err != nil {
		return "", fmt.Errorf("render setup: %w", err)
	}
	procedure, err := renderProse(prose.Procedure, ctx)
	if err != nil {
		return "", fmt.Errorf("render procedure: %w", err)
	}
	criteria, err := renderProse(prose.PassFailCriteria, ctx)
	if err != nil {
		return "", fmt.Errorf("render criteria: %w", err)
	}

	data := pageData{
		Title:       outcome.Check.Title,
		Passed:      outcome.Overall == domain.StatusPassed,
		Description: description,
		Setup:       setup,
		Procedure:   procedure,
		Criteria:    criteria,
		GeneratedAt: when.Format("2006-01-02 15:04:05"),
	}
	for _, r := range outcome.Results {
		color := "#000000"
		if r.Status != domain.StatusPassed {
			color = "#dc3545"
		}
		data.Results = append(data.Results, resultView{Message: r.Message, Color: color})
	}

	var buf bytes.Buffer
	if err := runPageTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}

	path := filepath.Join(g.dir, fmt.Sprintf("%s_%s_results.html", outcome.Check.Name, runID))
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}

	return path, nil
}

// renderProse expands one prose template against the parameter view and
// returns it as trusted HTML for the page template. The prose templates
// are ours; only the parameter values inside them are escaped.
func renderProse(text string, ctx proseContext) (template.HTML, error) {
	tmpl, err := template.New("prose").Parse(text)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, ctx); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

var runPageTemplate = template.Must(template.New("run").Parse(`<!DOCTYPE html>
<html>
<head>
    <title>{{.Title}} - Test Results</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 40px; }
        .result-pass { color: #28a745; font-weight: bold; }
        .result-fail { color: #dc3545; font-weight: bold; }
        section { margin-bottom: 30px; }
        pre { background-color: #f5f5f5; padding: 10px; border-radius: 5px; overflow: auto; }
        code { font-family: Consolas, Monaco, 'Andale Mono', monospace; }
        table { border-collapse: collapse; width: 100%; margin: 15px 0; }
        th, td { border: 1px solid #ddd; padding: 8px; text-align: left; }
        th { background-color: #f2f2f2; }
    </style>
</head>
<body>
    <h1>{{.Title}}</h1>
    <div class="{{if .Passed}}result-pass{{else}}result-fail{{end}}">
        Test Status: {{if .Passed}}PASSED{{else}}FAILED{{end}}
    </div>

    <section>
        <h2>Description</h2>
        {{.Description}}
    </section>

    <section>
        <h2>Setup</h2>
        {{.Setup}}
    </section>

    <section>
        <h2>Procedure</h2>
        {{.Procedure}}
    </section>

    <section>
        <h2>Pass/Fail Criteria</h2>
        {{.Criteria}}
    </section>

    <section>
        <h2>Results</h2>
        {{range .Results}}
        <div style="color: {{.Color}};">
            {{.Message}}
        </div>
        <br />
        {{end}}
    </section>

    <footer>
        <p>Generated: {{.GeneratedAt}}</p>
    </footer>
</body>
</html>
`))
