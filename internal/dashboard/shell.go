package dashboard

import (
	"bytes"
	"fmt"
	"html/template"

	"bikedash/internal/charts"
	"bikedash/internal/config"
)

// shellTemplate is the dark-themed page frame shared by all pages: sidebar
// navigation, the date-range form and the page content area.
const shellTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}} - NYC CitiBike Dashboard</title>
    <script src="{{.EChartsURL}}"></script>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            line-height: 1.6;
            margin: 0;
            background-color: {{.Background}};
            color: {{.FontColor}};
        }
        a { color: #00E5FF; }
        .layout { display: flex; min-height: 100vh; }
        .sidebar {
            width: 280px;
            flex-shrink: 0;
            padding: 24px 20px;
            background: rgba(255,255,255,0.03);
            border-right: 1px solid {{.GridColor}};
        }
        .sidebar h2 { margin-top: 0; font-size: 1.1em; }
        .sidebar nav a {
            display: block;
            padding: 8px 12px;
            margin-bottom: 4px;
            border-radius: 6px;
            color: {{.FontColor}};
            text-decoration: none;
        }
        .sidebar nav a.active { background: rgba(0,229,255,0.15); color: #00E5FF; }
        .sidebar nav a:hover { background: rgba(255,255,255,0.06); }
        .controls { margin-top: 24px; }
        .controls label { display: block; margin: 10px 0 4px; font-size: 0.9em; }
        .controls input, .controls select, .controls button {
            width: 100%;
            padding: 6px 8px;
            border-radius: 6px;
            border: 1px solid {{.GridColor}};
            background: {{.Background}};
            color: {{.FontColor}};
        }
        .controls button { margin-top: 12px; cursor: pointer; }
        .content { flex-grow: 1; padding: 32px 40px; max-width: 1200px; }
        .content h1 { margin-top: 0; }
        .metric-cards {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(220px, 1fr));
            gap: 20px;
            margin: 24px 0;
        }
        .card {
            background: rgba(255,255,255,0.04);
            padding: 20px;
            border-radius: 8px;
            border-left: 4px solid #00E5FF;
        }
        .metric { font-size: 1.8em; font-weight: bold; }
        .notice {
            background: rgba(0,229,255,0.1);
            border-left: 4px solid #00E5FF;
            padding: 12px 16px;
            border-radius: 6px;
            margin: 16px 0;
        }
        .error {
            background: rgba(220,53,69,0.15);
            border-left: 4px solid #dc3545;
            padding: 12px 16px;
            border-radius: 6px;
            margin: 16px 0;
        }
        .caption { color: rgba(255,255,255,0.6); font-size: 0.9em; }
        .map-frame { width: 100%; border: 1px solid {{.GridColor}}; border-radius: 8px; background: white; }
        .footer {
            margin-top: 40px;
            padding-top: 16px;
            border-top: 1px solid {{.GridColor}};
            color: rgba(255,255,255,0.5);
            font-size: 0.85em;
        }
    </style>
</head>
<body>
    <div class="layout">
        <aside class="sidebar">
            <h2>Controls</h2>
            <nav>
                {{range .Nav}}<a href="/dashboard?page={{.Name}}&start={{$.StartDate}}&end={{$.EndDate}}"{{if .Active}} class="active"{{end}}>{{.Label}}</a>
                {{end}}
            </nav>
            <form class="controls" method="get" action="/dashboard">
                <input type="hidden" name="page" value="{{.Page}}">
                <label for="start">Start date</label>
                <input type="date" id="start" name="start" value="{{.StartDate}}" min="{{.MinDate}}" max="{{.MaxDate}}">
                <label for="end">End date</label>
                <input type="date" id="end" name="end" value="{{.EndDate}}" min="{{.MinDate}}" max="{{.MaxDate}}">
                <button type="submit">Apply date range</button>
            </form>
        </aside>
        <main class="content">
            <h1>{{.Title}}</h1>
            {{.Body}}
            <div class="footer">NYC CitiBike Dashboard v{{.Version}} | Data range {{.MinDate}} to {{.MaxDate}}</div>
        </main>
    </div>
</body>
</html>`

// shellData is the data the shell template renders with.
type shellData struct {
	Title      string
	Body       template.HTML
	Page       string
	Nav        []navItem
	StartDate  string
	EndDate    string
	MinDate    string
	MaxDate    string
	Version    string
	EChartsURL string
	Background string
	GridColor  string
	FontColor  string
}

type navItem struct {
	Name   string
	Label  string
	Active bool
}

var shellTmpl = template.Must(template.New("shell").Parse(shellTemplate))

// renderShell wraps a rendered page into the complete HTML document.
func (d *Dashboard) renderShell(state State, page Page) (string, error) {
	nav := make([]navItem, len(NavPages))
	for i, p := range NavPages {
		nav[i] = navItem{Name: p.Name, Label: p.Label, Active: p.Name == state.Page}
	}

	data := shellData{
		Title:      page.Title,
		Body:       page.Body,
		Page:       state.Page,
		Nav:        nav,
		StartDate:  state.Range.Start.Format("2006-01-02"),
		EndDate:    state.Range.End.Format("2006-01-02"),
		MinDate:    d.table.MinDate.Format("2006-01-02"),
		MaxDate:    d.table.MaxDate.Format("2006-01-02"),
		Version:    config.GetVersion(),
		EChartsURL: charts.EChartsCDN,
		Background: charts.BackgroundColor,
		GridColor:  charts.GridColor,
		FontColor:  charts.FontColor,
	}

	var buf bytes.Buffer
	if err := shellTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute page shell template: %w", err)
	}
	return buf.String(), nil
}
