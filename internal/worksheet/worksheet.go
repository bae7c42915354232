// Package worksheet renders problem sets as print-friendly A4 HTML pages,
// four problems per row, with a blank answer slot per problem.
package worksheet

import (
	"html/template"
	"io"
	"strings"

	apperrors "github.com/pencalc/pencalc/internal/errors"
	"github.com/pencalc/pencalc/internal/problems"
)

// Meta is the worksheet header content.
type Meta struct {
	Title    string
	Subtitle string
	Note     string
}

var pageTemplate = template.Must(template.New("worksheet").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>{{.Title}}</title>
  <style>
    @page {
      size: A4 portrait;
      margin: 8mm;
    }
    * {
      box-sizing: border-box;
    }
    body {
      font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', 'Helvetica Neue', Arial, sans-serif;
      line-height: 1.35;
      color: #111;
      margin: 0 auto;
      padding: 10mm 12mm 14mm;
      max-width: 208mm;
      background: #fff;
      font-size: 16px;
    }
    header h1 {
      font-size: 20px;
      margin: 0 0 2mm;
    }
    header p {
      margin: 0 0 1mm;
      font-size: 12px;
      color: #555;
    }
    .grid {
      display: grid;
      grid-template-columns: repeat(4, minmax(0, 1fr));
      column-gap: 8mm;
      row-gap: 4mm;
      font-size: 17px;
    }
    .problem {
      min-height: 26px;
      display: flex;
      align-items: center;
    }
    .problem .expression {
      font-variant-numeric: tabular-nums;
    }
    .problem .expression span {
      display: inline-block;
      min-width: 12mm;
      border-bottom: 1px solid #999;
    }
    footer {
      margin-top: 16px;
      font-size: 11px;
      color: #888;
    }
    @media print {
      body {
        margin: 0;
        padding: 0;
        max-width: none;
      }
      .problem {
        break-inside: avoid;
        page-break-inside: avoid;
      }
    }
  </style>
</head>
<body>
  <header>
    <h1>{{.Title}}</h1>
    {{if .Subtitle}}<p>{{.Subtitle}}</p>{{end}}
    {{if .Note}}<p>{{.Note}}</p>{{end}}
  </header>
  <section class="grid">
{{- range .Expressions}}
    <div class="problem"><span class="expression">{{.}}</span></div>
{{- end}}
  </section>
</body>
</html>
`))

type pageData struct {
	Title       string
	Subtitle    string
	Note        string
	Expressions []template.HTML
}

// Render writes the worksheet HTML for the given problems.
func Render(w io.Writer, set []problems.Problem, meta Meta) error {
	if len(set) == 0 {
		return apperrors.NewInvalidInputError("problems", "worksheet needs at least one problem")
	}

	expressions := make([]template.HTML, 0, len(set))
	for _, p := range set {
		escaped := template.HTMLEscapeString(p.Statement())
		// The trailing "?" becomes the blank the student writes in.
		expressions = append(expressions, template.HTML(strings.Replace(escaped, "?", "<span></span>", 1)))
	}

	data := pageData{
		Title:       meta.Title,
		Subtitle:    meta.Subtitle,
		Note:        meta.Note,
		Expressions: expressions,
	}
	if err := pageTemplate.Execute(w, data); err != nil {
		return apperrors.WrapError(err, "rendering worksheet")
	}
	return nil
}
