package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"atsresume/parsers"
)

// LayoutEngine is the external document-layout collaborator. It receives a
// complete HTML document and returns the bytes of the rendered PDF.
type LayoutEngine interface {
	RenderHTML(ctx context.Context, html string) ([]byte, error)
}

// RenderService converts a segmented resume into downloadable artifacts.
type RenderService struct {
	engine LayoutEngine
}

func NewRenderService(engine LayoutEngine) *RenderService {
	return &RenderService{engine: engine}
}

// Fixed section labels, shared by the PDF and DOCX layouts.
const (
	labelSummary    = "PROFESSIONAL SUMMARY"
	labelExperience = "WORK EXPERIENCE"
	labelEducation  = "EDUCATION"
	labelSkills     = "SKILLS"
	labelProjects   = "PROJECTS"
)

// resumeTemplate is the single-column, table-free layout handed to the PDF
// collaborator. Page margins belong to the collaborator call, not the CSS.
const resumeTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: Helvetica, Arial, sans-serif; font-size: 10pt; color: #000000; margin: 0; }
.name { font-size: 18pt; font-weight: bold; text-align: center; color: #000000; margin: 0 0 6pt 0; }
.contact { font-size: 10pt; text-align: center; color: #333333; margin: 0 0 12pt 0; }
h2 { font-size: 12pt; font-weight: bold; color: #000000; margin: 12pt 0 6pt 0; }
p { font-size: 10pt; line-height: 14pt; margin: 0 0 6pt 0; }
.spacer { height: 6pt; }
</style>
</head>
<body>
{{- if .Name}}
<div class="name">{{.Name}}</div>
{{- end}}
{{- if .Contact}}
<div class="contact">{{.Contact}}</div>
{{- end}}
{{- if .Summary}}
<h2>` + labelSummary + `</h2>
<p>{{.Summary}}</p>
{{- end}}
{{- if .Experience}}
<h2>` + labelExperience + `</h2>
{{- range .Experience}}
<p>{{.}}</p>
<div class="spacer"></div>
{{- end}}
{{- end}}
{{- if .Education}}
<h2>` + labelEducation + `</h2>
{{- range .Education}}
<p>{{.}}</p>
<div class="spacer"></div>
{{- end}}
{{- end}}
{{- if .HasSkills}}
<h2>` + labelSkills + `</h2>
<p>{{.Skills}}</p>
{{- end}}
{{- if .Projects}}
<h2>` + labelProjects + `</h2>
{{- range .Projects}}
<p>{{.}}</p>
<div class="spacer"></div>
{{- end}}
{{- end}}
</body>
</html>
`

var resumeTmpl = template.Must(template.New("resume").Parse(resumeTemplate))

// resumePage is the data handed to resumeTemplate. Item entries are
// pre-escaped so their line breaks can carry <br/> markup.
type resumePage struct {
	Title      string
	Name       string
	Contact    string
	Summary    string
	Experience []template.HTML
	Education  []template.HTML
	HasSkills  bool
	Skills     string
	Projects   []template.HTML
}

// BuildHTML produces the HTML document for a segmented resume. The output is
// deterministic: identical documents yield byte-identical HTML.
func (s *RenderService) BuildHTML(doc *parsers.ResumeDocument) (string, error) {
	page := resumePage{
		Title:      documentTitle(doc.Name),
		Name:       doc.Name,
		Contact:    doc.Contact,
		Summary:    strings.TrimSpace(doc.Summary),
		Experience: itemsHTML(doc.Experience),
		Education:  itemsHTML(doc.Education),
		HasSkills:  len(doc.Skills) > 0,
		Skills:     joinSkills(doc.Skills),
		Projects:   itemsHTML(doc.Projects),
	}

	var buf bytes.Buffer
	if err := resumeTmpl.Execute(&buf, page); err != nil {
		return "", fmt.Errorf("failed to build resume HTML: %w", err)
	}
	return buf.String(), nil
}

// RenderPDF builds the HTML document and hands it to the layout collaborator.
// Collaborator failures propagate to the caller; there is no retry.
func (s *RenderService) RenderPDF(ctx context.Context, doc *parsers.ResumeDocument) ([]byte, error) {
	html, err := s.BuildHTML(doc)
	if err != nil {
		return nil, err
	}
	return s.engine.RenderHTML(ctx, html)
}

// itemsHTML escapes each source line of every entry, then joins the lines
// with inline break markup.
func itemsHTML(items []string) []template.HTML {
	if len(items) == 0 {
		return nil
	}
	out := make([]template.HTML, len(items))
	for i, item := range items {
		lines := strings.Split(item, "\n")
		for j, line := range lines {
			lines[j] = template.HTMLEscapeString(line)
		}
		out[i] = template.HTML(strings.Join(lines, "<br/>"))
	}
	return out
}

// joinSkills strips leading/trailing bullet and dash characters from each
// skill entry and joins the entries with a bullet separator. Entries are
// never split further, so a comma-separated list stays one chunk.
func joinSkills(skills []string) string {
	parts := make([]string, 0, len(skills))
	for _, s := range skills {
		if strings.TrimSpace(s) == "" {
			continue
		}
		parts = append(parts, strings.TrimSpace(strings.Trim(s, "•-")))
	}
	return strings.Join(parts, " • ")
}

// documentTitle derives the document title metadata from the candidate name.
// A Caser is stateful, so each call builds its own.
func documentTitle(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "ATS Resume"
	}
	return cases.Title(language.English).String(name) + " - Resume"
}
