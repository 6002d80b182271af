package parsers

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ResumeDocument represents the structured resume produced by Segment.
// Experience, Education and Projects hold one string per logical entry, with
// the entry's source lines joined by "\n".
type ResumeDocument struct {
	Name       string   `json:"name"`
	Contact    string   `json:"contact"`
	Summary    string   `json:"summary"`
	Experience []string `json:"experience"`
	Education  []string `json:"education"`
	Skills     []string `json:"skills"`
	Projects   []string `json:"projects"`
}

// Section identifies the accumulation target for content lines.
type Section int

const (
	SectionNone Section = iota
	SectionContact
	SectionSummary
	SectionExperience
	SectionEducation
	SectionSkills
	SectionProjects
)

// sectionRule pairs a section with the keywords that mark a line as belonging
// to it. Rules are evaluated top to bottom; the first keyword hit wins.
type sectionRule struct {
	section  Section
	keywords []string
}

var sectionRules = []sectionRule{
	{SectionContact, []string{"email", "phone", "linkedin", "github", "@"}},
	{SectionSummary, []string{"summary", "objective", "about"}},
	{SectionExperience, []string{"experience", "work history", "employment"}},
	{SectionEducation, []string{"education", "academic"}},
	{SectionSkills, []string{"skills", "technical skills", "competencies"}},
	{SectionProjects, []string{"projects", "personal projects"}},
}

// classify matches a line against the section rules by case-insensitive
// substring containment.
func classify(line string) (Section, bool) {
	lower := strings.ToLower(line)
	for _, rule := range sectionRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.section, true
			}
		}
	}
	return SectionNone, false
}

// startsNewItem reports whether a content line begins a new entry within
// experience, education or projects: first rune is an uppercase letter or a
// digit. Bulleted continuation lines fail the check and attach to the
// current entry.
func startsNewItem(line string) bool {
	r, _ := utf8.DecodeRuneInString(line)
	return unicode.IsUpper(r) || unicode.IsDigit(r)
}

func isItemSection(s Section) bool {
	return s == SectionExperience || s == SectionEducation || s == SectionProjects
}

// Segment classifies raw resume text into sections in a single top-to-bottom
// pass. It never fails: blank input yields an empty document, and the first
// line is always taken as the name even when it looks like a section header.
func Segment(text string) *ResumeDocument {
	doc := &ResumeDocument{}

	lines := strings.Split(strings.TrimSpace(text), "\n")
	doc.Name = strings.TrimSpace(lines[0])

	current := SectionNone
	var itemBuffer []string

	// flush closes the in-progress entry into the section that accumulated it.
	flush := func(target Section) {
		if len(itemBuffer) == 0 {
			return
		}
		item := strings.Join(itemBuffer, "\n")
		switch target {
		case SectionExperience:
			doc.Experience = append(doc.Experience, item)
		case SectionEducation:
			doc.Education = append(doc.Education, item)
		case SectionProjects:
			doc.Projects = append(doc.Projects, item)
		}
		itemBuffer = nil
	}

	for _, raw := range lines[1:] {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if section, isHeader := classify(line); isHeader {
			// Only an actual section change closes the pending entry; a
			// repeated header for the current section leaves it open.
			if section != current && isItemSection(current) {
				flush(current)
			}
			// Contact lines carry content themselves; other header lines are
			// consumed purely as section delimiters.
			if section == SectionContact {
				if doc.Contact != "" {
					doc.Contact += " | " + line
				} else {
					doc.Contact = line
				}
			}
			current = section
			continue
		}

		switch current {
		case SectionSummary:
			doc.Summary += " " + line
		case SectionExperience, SectionEducation, SectionProjects:
			if startsNewItem(line) {
				flush(current)
			}
			itemBuffer = append(itemBuffer, line)
		case SectionSkills:
			doc.Skills = append(doc.Skills, line)
		default:
			// No accumulation target exists for content under the contact
			// section or before the first header; such lines are dropped.
		}
	}

	if isItemSection(current) {
		flush(current)
	}

	return doc
}
