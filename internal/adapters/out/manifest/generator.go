// Package manifest renders the operations handout for a selected route: an
// HTML route map per shipment, optionally converted to PDF by an external
// renderer binary.
//
// The generator is a post-commit collaborator. It never participates in the
// selection transaction; a failed rendering surfaces as a
// errs.DownstreamRenderError that the orchestrator degrades to a warning.
package manifest

import (
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

const routeMapTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Route Map {{.ShipmentID}}</title>
</head>
<body>
<h1>Route Map — {{.ShipmentID}}</h1>
<p class="route">{{.RouteLabel}} ({{.RouteType}})</p>
<p class="cost">Total: {{printf "%.2f" .TotalCost}} {{.Currency}}</p>
<table>
<tr><th>#</th><th>Type</th><th>Carrier</th><th>From</th><th>To</th><th>Cost</th></tr>
{{range .Legs}}<tr>
<td>{{.LegOrder}}</td>
<td>{{.LegType}}</td>
<td>{{.Carrier}}</td>
<td>{{.From}}</td>
<td>{{.To}}</td>
<td>{{printf "%.2f" .Cost}} {{.Currency}}</td>
</tr>
{{end}}</table>
<p class="generated">Generated {{.GeneratedAt}}</p>
</body>
</html>
`

// Generator renders route maps to a local directory. When pdfRenderer names
// an executable, each HTML artifact is additionally converted to PDF; a
// missing or failing renderer only downgrades the result to HTML-only.
//
// Example:
//
//	generator := manifest.NewGenerator("/var/lib/logistics/manifests", "wkhtmltopdf", "https://docs.example.com/manifests", logger)
//	routeMap, err := generator.GenerateRouteMap(ctx, input)
type Generator struct {
	outputDir   string
	pdfRenderer string
	baseURL     string
	template    *template.Template
	logger      *slog.Logger
}

// NewGenerator creates a route map generator writing to outputDir.
// pdfRenderer may be empty to disable PDF conversion entirely.
func NewGenerator(outputDir, pdfRenderer, baseURL string, logger *slog.Logger) *Generator {
	return &Generator{
		outputDir:   outputDir,
		pdfRenderer: pdfRenderer,
		baseURL:     strings.TrimRight(baseURL, "/"),
		template:    template.Must(template.New("route-map").Parse(routeMapTemplate)),
		logger:      logger.With("component", "manifest-generator"),
	}
}

// GenerateRouteMap renders the HTML route map and, when a PDF renderer is
// available, the PDF companion. Only the HTML artifact is mandatory.
func (g *Generator) GenerateRouteMap(ctx context.Context, input ports.RouteMapInput) (*ports.RouteMap, error) {
	if err := os.MkdirAll(g.outputDir, 0o755); err != nil {
		return nil, errs.NewDownstreamRenderError("html", err)
	}

	name := fmt.Sprintf("route-map-%s-%d", sanitizeName(input.ShipmentID), time.Now().UTC().Unix())
	htmlPath := filepath.Join(g.outputDir, name+".html")

	if err := g.renderHTML(htmlPath, input); err != nil {
		return nil, errs.NewDownstreamRenderError("html", err)
	}

	routeMap := &ports.RouteMap{
		HTMLPath:    htmlPath,
		DownloadURL: g.baseURL + "/" + name + ".html",
	}

	if pdfPath := g.renderPDF(ctx, htmlPath, name); pdfPath != "" {
		routeMap.PDFPath = &pdfPath
	}

	return routeMap, nil
}

func (g *Generator) renderHTML(path string, input ports.RouteMapInput) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	data := struct {
		ShipmentID  string
		RouteLabel  string
		RouteType   string
		TotalCost   float64
		Currency    string
		Legs        []legView
		GeneratedAt string
	}{
		ShipmentID:  input.ShipmentID,
		RouteLabel:  input.RouteLabel,
		RouteType:   input.RouteType.String(),
		TotalCost:   input.TotalCost,
		Currency:    input.Currency,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}
	for _, leg := range input.Legs {
		data.Legs = append(data.Legs, legView{
			LegOrder: leg.LegOrder(),
			LegType:  leg.LegType(),
			Carrier:  leg.Carrier(),
			From:     leg.From(),
			To:       leg.To(),
			Cost:     leg.Cost(),
			Currency: leg.Currency(),
		})
	}

	return g.template.Execute(file, data)
}

// renderPDF converts the HTML artifact when a renderer binary is present.
// Absence of the renderer and conversion failures both mean HTML-only.
func (g *Generator) renderPDF(ctx context.Context, htmlPath, name string) string {
	if g.pdfRenderer == "" {
		return ""
	}

	binary, err := exec.LookPath(g.pdfRenderer)
	if err != nil {
		g.logger.Info("pdf renderer not installed, producing html only", "renderer", g.pdfRenderer)
		return ""
	}

	pdfPath := filepath.Join(g.outputDir, name+".pdf")
	cmd := exec.CommandContext(ctx, binary, htmlPath, pdfPath)
	if output, err := cmd.CombinedOutput(); err != nil {
		g.logger.Warn("pdf rendering failed, producing html only",
			"renderer", g.pdfRenderer, "error", err, "output", string(output))
		return ""
	}

	return pdfPath
}

type legView struct {
	LegOrder int
	LegType  string
	Carrier  string
	From     string
	To       string
	Cost     float64
	Currency string
}

func sanitizeName(id string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, id)
}
