// Package extraction locates resume sections and entities in free-form prose
// or markup. It is the fallback path used when a model response is not a
// structured candidate: everything here is heuristic, total, and returns empty
// results rather than errors when nothing recognizable is found.
package extraction

import (
	"html"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Canonical section keys for RawSections.
const (
	SectionSummary        = "summary"
	SectionSkills         = "skills"
	SectionExperience     = "experience"
	SectionEducation      = "education"
	SectionProjects       = "projects"
	SectionCertifications = "certifications"
	SectionAwards         = "awards"
	SectionVolunteer      = "volunteer"
	SectionPublications   = "publications"
)

// RawSections maps canonical section keys to the raw text span found for each
// section. Sections with no recognized span are absent.
type RawSections map[string]string

// minSectionBody is the minimum span length for a section to count as found;
// shorter spans are bare labels with no body.
const minSectionBody = 10

// sectionSynonyms lists the accepted header labels per canonical section, in
// the order they are tried. Longer labels come first so "work experience"
// wins over "experience".
var sectionSynonyms = []struct {
	Canonical string
	Labels    []string
}{
	{SectionSummary, []string{"professional summary", "career summary", "executive summary", "summary", "profile", "objective", "about me", "about"}},
	{SectionSkills, []string{"technical skills", "core competencies", "core skills", "skills", "technologies", "expertise"}},
	{SectionExperience, []string{"work experience", "professional experience", "employment history", "work history", "career history", "experience", "employment"}},
	{SectionEducation, []string{"education", "academic background", "academics", "qualifications", "degrees"}},
	{SectionProjects, []string{"personal projects", "selected projects", "side projects", "projects", "portfolio"}},
	{SectionCertifications, []string{"certifications", "certificates", "licenses", "licenses and certifications"}},
	{SectionAwards, []string{"awards", "honors", "honors and awards", "recognition"}},
	{SectionVolunteer, []string{"volunteer experience", "volunteering", "volunteer work", "volunteer", "community involvement"}},
	{SectionPublications, []string{"publications", "papers", "talks and publications"}},
}

var (
	htmlTagRe     = regexp.MustCompile(`<[^>]*>`)
	brTagRe       = regexp.MustCompile(`(?i)<br\s*/?>`)
	blankRunRe    = regexp.MustCompile(`\n{3,}`)
	spaceRunRe    = regexp.MustCompile(`[ \t]+`)
	looksLikeHTML = regexp.MustCompile(`(?i)<\s*(?:html|body|div|p|br|ul|li|h[1-6]|span|table)\b`)
)

// ReduceMarkup converts resume markup to plain text: tags removed, entities
// unescaped, whitespace collapsed, line structure preserved.
func ReduceMarkup(markup string) string {
	text := markup
	if looksLikeHTML.MatchString(markup) {
		text = htmlToText(markup)
	}
	text = html.UnescapeString(text)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(spaceRunRe.ReplaceAllString(line, " "), " ")
	}
	text = strings.Join(lines, "\n")
	text = blankRunRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// htmlToText extracts readable text from HTML, one block element per line.
func htmlToText(markup string) string {
	// Line breaks inside a block would otherwise vanish when the block's text
	// nodes are concatenated.
	markup = brTagRe.ReplaceAllString(markup, "\n")
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return htmlTagRe.ReplaceAllString(markup, " ")
	}

	doc.Find("script, style, nav, header, footer, iframe, noscript").Remove()

	var blocks []string
	doc.Find("h1, h2, h3, h4, h5, h6, p, li, td, div").Each(func(_ int, s *goquery.Selection) {
		// Only leaf-ish blocks; skip containers whose text comes from children
		// we will visit anyway.
		if s.Children().Filter("p, li, div, ul, ol, table, h1, h2, h3, h4, h5, h6").Length() > 0 {
			return
		}
		if text := strings.TrimSpace(s.Text()); text != "" {
			blocks = append(blocks, text)
		}
	})

	if len(blocks) == 0 {
		return strings.TrimSpace(doc.Text())
	}
	return strings.Join(blocks, "\n")
}

// sectionHit is one recognized section header line.
type sectionHit struct {
	canonical string
	lineIndex int
	inline    string // content following "Label:" on the same line
}

// ExtractSections locates every canonical section in reduced plain text and
// returns the span between each recognized header and the next one. Spans
// shorter than the minimum body length are dropped.
func ExtractSections(markup string) RawSections {
	text := ReduceMarkup(markup)
	lines := strings.Split(text, "\n")

	var hits []sectionHit
	seen := map[string]bool{}
	for i, line := range lines {
		canonical, inline, ok := matchSectionHeader(line)
		if !ok || seen[canonical] {
			continue
		}
		seen[canonical] = true
		hits = append(hits, sectionHit{canonical: canonical, lineIndex: i, inline: inline})
	}

	sections := RawSections{}
	for i, hit := range hits {
		end := len(lines)
		if i+1 < len(hits) {
			end = hits[i+1].lineIndex
		}
		body := strings.TrimSpace(strings.Join(lines[hit.lineIndex+1:end], "\n"))
		if hit.inline != "" {
			if body == "" {
				body = hit.inline
			} else {
				body = hit.inline + "\n" + body
			}
		}
		if len(body) >= minSectionBody {
			sections[hit.canonical] = body
		}
	}
	return sections
}

// matchSectionHeader reports whether a line is a section header, returning the
// canonical section and any inline content after a trailing colon.
func matchSectionHeader(line string) (canonical, inline string, ok bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return "", "", false
	}

	stripped := strings.TrimLeft(trimmed, "#*-•· \t")
	lower := strings.ToLower(stripped)
	normalized := strings.TrimRight(lower, ": \t")
	if normalized == "" {
		return "", "", false
	}

	for _, section := range sectionSynonyms {
		for _, label := range section.Labels {
			if normalized == label && len(trimmed) <= 60 {
				return section.Canonical, "", true
			}
			// Header with inline body, like "Skills: Go, SQL".
			if strings.HasPrefix(lower, label+":") {
				return section.Canonical, strings.TrimSpace(stripped[len(label)+1:]), true
			}
		}
	}
	return "", "", false
}
