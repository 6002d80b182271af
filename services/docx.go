package services

import (
	"bytes"
	"fmt"
	"strings"

	"baliance.com/gooxml/color"
	"baliance.com/gooxml/document"
	"baliance.com/gooxml/measurement"
	"baliance.com/gooxml/schema/soo/wml"

	"atsresume/parsers"
)

const docxFontFamily = "Helvetica"

// RenderDOCX builds a Word version of the resume with the same section order,
// labels and emphasis rules as the PDF layout, entirely in memory.
func (s *RenderService) RenderDOCX(doc *parsers.ResumeDocument) ([]byte, error) {
	d := document.New()

	if doc.Name != "" {
		para := d.AddParagraph()
		para.Properties().SetAlignment(wml.ST_JcCenter)
		run := para.AddRun()
		run.Properties().SetFontFamily(docxFontFamily)
		run.Properties().SetSize(18 * measurement.Point)
		run.Properties().SetBold(true)
		run.AddText(doc.Name)
	}

	if doc.Contact != "" {
		para := d.AddParagraph()
		para.Properties().SetAlignment(wml.ST_JcCenter)
		run := para.AddRun()
		run.Properties().SetFontFamily(docxFontFamily)
		run.Properties().SetSize(10 * measurement.Point)
		run.Properties().SetColor(color.RGB(0x33, 0x33, 0x33))
		run.AddText(doc.Contact)
	}

	if summary := strings.TrimSpace(doc.Summary); summary != "" {
		addDocxHeading(d, labelSummary)
		addDocxBody(d, summary)
	}

	if len(doc.Experience) > 0 {
		addDocxHeading(d, labelExperience)
		for _, item := range doc.Experience {
			addDocxItem(d, item)
		}
	}

	if len(doc.Education) > 0 {
		addDocxHeading(d, labelEducation)
		for _, item := range doc.Education {
			addDocxItem(d, item)
		}
	}

	if len(doc.Skills) > 0 {
		addDocxHeading(d, labelSkills)
		addDocxBody(d, joinSkills(doc.Skills))
	}

	if len(doc.Projects) > 0 {
		addDocxHeading(d, labelProjects)
		for _, item := range doc.Projects {
			addDocxItem(d, item)
		}
	}

	var buf bytes.Buffer
	if err := d.Save(&buf); err != nil {
		return nil, fmt.Errorf("failed to write docx: %w", err)
	}
	return buf.Bytes(), nil
}

func addDocxHeading(d *document.Document, label string) {
	run := d.AddParagraph().AddRun()
	run.Properties().SetFontFamily(docxFontFamily)
	run.Properties().SetSize(12 * measurement.Point)
	run.Properties().SetBold(true)
	run.AddText(label)
}

func addDocxBody(d *document.Document, text string) {
	run := d.AddParagraph().AddRun()
	run.Properties().SetFontFamily(docxFontFamily)
	run.Properties().SetSize(10 * measurement.Point)
	run.AddText(text)
}

// addDocxItem writes one multi-line entry as a single paragraph, converting
// the entry's line-break markers to run breaks.
func addDocxItem(d *document.Document, item string) {
	run := d.AddParagraph().AddRun()
	run.Properties().SetFontFamily(docxFontFamily)
	run.Properties().SetSize(10 * measurement.Point)
	for i, line := range strings.Split(item, "\n") {
		if i > 0 {
			run.AddBreak()
		}
		run.AddText(line)
	}
}
