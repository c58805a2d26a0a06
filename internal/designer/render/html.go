package render

import (
	"bytes"
	"fmt"
	"html/template"
	"regexp"
	"strings"

	"github.com/smallbiznis/stencil/internal/designer/domain"
)

const documentHTMLTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>Invoice {{.InvoiceNumber}}</title>
  <style>
    * { box-sizing: border-box; }
    body {
      margin: 0;
      background: {{.PageBackground}};
      font-family: "{{.FontFamily}}", "Helvetica Neue", Arial, sans-serif;
      color: {{.TextColor}};
    }
    .page {
      position: relative;
      width: 210mm;
      height: 297mm;
      margin: 0 auto;
      background: #ffffff;
      overflow: hidden;
    }
    .component {
      position: absolute;
      overflow: hidden;
      padding: 4px;
      font-size: 12px;
    }
    .component.size-xs { font-size: 10px; }
    .component.size-sm { font-size: 12px; }
    .component.size-md { font-size: 14px; }
    .component.size-lg { font-size: 18px; }
    .component.size-xl { font-size: 24px; }
    .component.weight-bold { font-weight: 700; }
    .line { display: flex; justify-content: space-between; gap: 8px; }
    .line .label { color: inherit; opacity: 0.7; }
    table { width: 100%; border-collapse: collapse; }
    th, td { padding: 4px 6px; border-bottom: 1px solid {{.BorderColor}}; text-align: left; }
    th { text-transform: uppercase; font-size: 0.8em; letter-spacing: 0.04em; }
    .separator { border-top: 1px solid {{.BorderColor}}; margin-top: 0.5em; }
    .graphic {
      display: flex;
      align-items: center;
      justify-content: center;
      height: 100%;
      border: 1px dashed {{.BorderColor}};
      opacity: 0.8;
    }
    .title { text-align: center; }
    .title .invoice-label { letter-spacing: 0.2em; font-size: 0.7em; }
  </style>
</head>
<body>
  <div class="page">
    {{range .Fragments}}
    <div class="component size-{{.SizeClass}}{{if .Bold}} weight-bold{{end}}" style="left: {{.Left}}%; top: {{.Top}}%; width: {{.Width}}%; height: {{.Height}}%; color: {{.Color}}; background: {{.Background}}; text-align: {{.Align}};">
      {{if .TitleLines}}
      <div class="title">
        {{range $i, $line := .TitleLines}}
        <div{{if $i}} class="invoice-label"{{end}}>{{$line}}</div>
        {{end}}
      </div>
      {{end}}
      {{range .Lines}}
      <div class="line"><span class="label">{{.Label}}</span><span>{{.Value}}</span></div>
      {{end}}
      {{if .Table}}
      <table>
        <thead>
          <tr>{{range .Table.Header}}<th>{{.}}</th>{{end}}</tr>
        </thead>
        <tbody>
          {{range .Table.Rows}}
          <tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
          {{end}}
        </tbody>
      </table>
      {{end}}
      {{if .Text}}<div>{{.Text}}</div>{{end}}
      {{if .Separator}}<div class="separator"></div>{{end}}
      {{if .Placeholder}}<div class="graphic">{{.Placeholder}}</div>{{end}}
    </div>
    {{end}}
  </div>
</body>
</html>
`

var (
	hexColorPattern  = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
	fontFamilyFilter = regexp.MustCompile(`^[A-Za-z0-9 \-]+$`)
)

type htmlFragment struct {
	Left, Top, Width, Height string
	SizeClass                string
	Bold                     bool
	Color, Background, Align string
	TitleLines               []string
	Lines                    []Line
	Table                    *Table
	Text                     string
	Separator                bool
	Placeholder              string
}

type htmlDocument struct {
	InvoiceNumber  string
	FontFamily     string
	TextColor      string
	BorderColor    string
	PageBackground string
	Fragments      []htmlFragment
}

// HTMLRenderer emits the full document for one render target. The same
// fragment pass feeds both targets; only the style mapping differs.
type HTMLRenderer struct {
	tpl *template.Template
}

// NewHTMLRenderer parses the document template once.
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{
		tpl: template.Must(template.New("document").Parse(documentHTMLTemplate)),
	}
}

// EmitHTML renders the layout against the tokens for one target.
func (r *HTMLRenderer) EmitHTML(layout domain.TemplateLayout, tok DataTokens, target Target) (string, error) {
	fragments := RenderDocument(layout, tok, target)

	doc := htmlDocument{
		InvoiceNumber:  tok.Invoice.Number,
		FontFamily:     sanitizeFont(layout.Theme.FontFamily),
		TextColor:      sanitizeColor(layout.Theme.TextColor, "#111827"),
		BorderColor:    sanitizeColor(layout.Theme.BorderColor, "#e5e7eb"),
		PageBackground: "#f3f4f6",
		Fragments:      make([]htmlFragment, 0, len(fragments)),
	}
	if target == TargetPrint {
		doc.TextColor = "#000000"
		doc.PageBackground = "#ffffff"
	}

	for _, frag := range fragments {
		doc.Fragments = append(doc.Fragments, toHTMLFragment(frag))
	}

	var buf bytes.Buffer
	if err := r.tpl.Execute(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func toHTMLFragment(frag Fragment) htmlFragment {
	out := htmlFragment{
		Left:        formatPct(frag.Position.X),
		Top:         formatPct(frag.Position.Y),
		Width:       formatPct(frag.Size.Width),
		Height:      formatPct(frag.Size.Height),
		SizeClass:   sizeClass(frag.Style.FontSize),
		Bold:        frag.Style.FontWeight == "bold",
		Color:       sanitizeColor(frag.Style.Color, "#111827"),
		Background:  sanitizeBackground(frag.Style.BackgroundColor),
		Align:       sanitizeAlign(frag.Style.TextAlign),
		TitleLines:  frag.TitleLines,
		Lines:       frag.Lines,
		Table:       frag.Table,
		Text:        frag.Text,
		Separator:   frag.Kind == KindSeparator,
		Placeholder: frag.Placeholder,
	}
	return out
}

func formatPct(v float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.3f", v), "0"), ".")
}

func sizeClass(fontSize string) string {
	switch fontSize {
	case "xs", "sm", "md", "lg", "xl":
		return fontSize
	default:
		return "sm"
	}
}

func sanitizeColor(value, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if hexColorPattern.MatchString(trimmed) {
		return trimmed
	}
	return fallback
}

func sanitizeBackground(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" || trimmed == "transparent" {
		return "transparent"
	}
	if hexColorPattern.MatchString(trimmed) {
		return trimmed
	}
	return "transparent"
}

func sanitizeAlign(value string) string {
	switch value {
	case "left", "center", "right":
		return value
	default:
		return "left"
	}
}

func sanitizeFont(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "Inter"
	}
	if fontFamilyFilter.MatchString(trimmed) {
		return trimmed
	}
	return "Inter"
}
