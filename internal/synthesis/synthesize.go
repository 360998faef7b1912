// Package synthesis turns a validated structured resume into the ordered,
// styled block sequence that document renderers consume. It is pure and
// total: it never mutates its input, never returns an error, and a failure
// building one block omits that block without aborting its siblings.
package synthesis

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-pipeline/internal/types"
)

// Format selects an output document family. The block sequence is identical
// across formats so the two documents always agree on content; only the
// downstream renderer differs.
type Format string

const (
	// FormatPage is the page-layout (PDF-family) document.
	FormatPage Format = "page"
	// FormatDocx is the word-processor document.
	FormatDocx Format = "docx"
)

// Formats lists every supported output format.
func Formats() []Format {
	return []Format{FormatPage, FormatDocx}
}

// skillSeparator joins inline-run items (skills, competencies, languages).
// Inline runs save vertical space over one-item-per-line lists.
const skillSeparator = " • "

// Synthesizer builds render blocks. The zero value is usable.
type Synthesizer struct {
	// FailureHook receives the block type and recovered panic value when
	// building a block fails. The block is omitted either way. Optional.
	FailureHook func(blockType types.BlockType, cause any)
}

// New returns a Synthesizer with no failure hook.
func New() *Synthesizer {
	return &Synthesizer{}
}

// Synthesize converts a validated resume into the fixed-order block sequence
// for one output format. Blocks whose underlying field is empty are omitted
// entirely, never rendered with an empty body.
func (s *Synthesizer) Synthesize(resume *types.StructuredResume, format Format) []types.RenderBlock {
	blocks := []types.RenderBlock{}
	if resume == nil {
		return blocks
	}

	add := func(blockType types.BlockType, build func() (types.RenderBlock, bool)) {
		defer func() {
			if cause := recover(); cause != nil && s.FailureHook != nil {
				s.FailureHook(blockType, cause)
			}
		}()
		if block, ok := build(); ok {
			block.Type = blockType
			block.Style = blockStyles[blockType]
			blocks = append(blocks, block)
		}
	}

	add(types.BlockHeader, func() (types.RenderBlock, bool) {
		return headerBlock(resume.Contact)
	})
	add(types.BlockSummary, func() (types.RenderBlock, bool) {
		if resume.Summary == "" {
			return types.RenderBlock{}, false
		}
		return types.RenderBlock{Heading: "Summary", Text: resume.Summary}, true
	})
	add(types.BlockSkillsLine, func() (types.RenderBlock, bool) {
		return inlineRun("Skills", resume.Skills)
	})
	add(types.BlockCompetenciesLine, func() (types.RenderBlock, bool) {
		return inlineRun("Core Competencies", resume.Competencies)
	})

	for i, item := range mergedExperience(resume) {
		item := item
		heading := ""
		if i == 0 {
			heading = "Experience"
		}
		add(types.BlockExperienceItem, func() (types.RenderBlock, bool) {
			item.Heading = heading
			return item, true
		})
	}

	for i := range resume.Education {
		entry := resume.Education[i]
		heading := ""
		if i == 0 {
			heading = "Education"
		}
		add(types.BlockEducationItem, func() (types.RenderBlock, bool) {
			block := educationBlock(entry)
			block.Heading = heading
			return block, true
		})
	}

	s.addLooseItems(add, types.BlockCertificationItem, "Certifications", resume.Certifications)
	s.addLooseItems(add, types.BlockAwardItem, "Awards", resume.Awards)
	s.addLooseItems(add, types.BlockVolunteerItem, "Volunteer", resume.Volunteer)
	s.addLooseItems(add, types.BlockPublicationItem, "Publications", resume.Publications)

	add(types.BlockLanguagesLine, func() (types.RenderBlock, bool) {
		return inlineRun("Languages", resume.Languages)
	})

	_ = format // content parity: every format receives the same sequence
	return blocks
}

func (s *Synthesizer) addLooseItems(add func(types.BlockType, func() (types.RenderBlock, bool)), blockType types.BlockType, heading string, entries []types.LooseEntry) {
	for i := range entries {
		entry := entries[i]
		first := i == 0
		add(blockType, func() (types.RenderBlock, bool) {
			block := types.RenderBlock{
				Title:    entry.Name,
				Subtitle: entry.Details,
				Meta:     entry.Date,
			}
			if first {
				block.Heading = heading
			}
			return block, true
		})
	}
}

// Synthesize builds the block sequence with a zero-value Synthesizer.
func Synthesize(resume *types.StructuredResume, format Format) []types.RenderBlock {
	return New().Synthesize(resume, format)
}

// headerBlock builds the contact header. Omitted only when every contact
// field is empty.
func headerBlock(contact types.ContactInfo) (types.RenderBlock, bool) {
	var parts []string
	for _, part := range []string{contact.Email, contact.Phone, contact.Location} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	parts = append(parts, contact.Links...)

	if contact.Name == "" && len(parts) == 0 {
		return types.RenderBlock{}, false
	}
	return types.RenderBlock{
		Title: contact.Name,
		Meta:  strings.Join(parts, " | "),
	}, true
}

// inlineRun renders a token list as one separator-joined line.
func inlineRun(heading string, items []string) (types.RenderBlock, bool) {
	if len(items) == 0 {
		return types.RenderBlock{}, false
	}
	return types.RenderBlock{
		Heading: heading,
		Text:    strings.Join(items, skillSeparator),
	}, true
}

// educationBlock renders one degree. Secondary facts (GPA, honors,
// coursework) become bullets under the degree line.
func educationBlock(entry types.EducationEntry) types.RenderBlock {
	block := types.RenderBlock{
		Title:    entry.Degree,
		Subtitle: entry.Institution,
		Meta:     entry.Dates,
	}
	if entry.Degree == "" {
		block.Title = entry.Institution
		block.Subtitle = ""
	}
	if entry.GPA != "" {
		block.Bullets = append(block.Bullets, "GPA: "+entry.GPA)
	}
	if entry.Honors != "" {
		block.Bullets = append(block.Bullets, entry.Honors)
	}
	if entry.Coursework != "" {
		block.Bullets = append(block.Bullets, "Coursework: "+entry.Coursework)
	}
	return block
}

// projectTag marks project-sourced entries in the merged experience list.
const projectTag = "Project"

// mergedExperience folds validated projects into the experience list, most
// recent first. Projects use the same block template as jobs but carry a tag.
func mergedExperience(resume *types.StructuredResume) []types.RenderBlock {
	var items []types.RenderBlock
	for _, entry := range resume.Experience {
		items = append(items, experienceBlock(entry))
	}
	for _, entry := range resume.Projects {
		items = append(items, projectBlock(entry))
	}
	sort.SliceStable(items, func(i, j int) bool {
		return latestYear(items[i].Meta) > latestYear(items[j].Meta)
	})
	return items
}

func experienceBlock(entry types.ExperienceEntry) types.RenderBlock {
	subtitle := entry.Company
	if entry.Location != "" {
		subtitle = subtitle + " — " + entry.Location
	}
	block := types.RenderBlock{
		Title:    entry.Title,
		Subtitle: subtitle,
		Meta:     entry.Dates,
	}
	block.Bullets = append(block.Bullets, entry.Responsibilities...)
	block.Bullets = append(block.Bullets, entry.Achievements...)
	if len(entry.Technologies) > 0 {
		block.Bullets = append(block.Bullets, "Technologies: "+strings.Join(entry.Technologies, ", "))
	}
	return block
}

func projectBlock(entry types.ProjectEntry) types.RenderBlock {
	block := types.RenderBlock{
		Title: entry.Name,
		Tag:   projectTag,
	}
	if entry.Description != "" {
		block.Bullets = append(block.Bullets, entry.Description)
	}
	block.Bullets = append(block.Bullets, entry.Achievements...)
	if len(entry.Technologies) > 0 {
		block.Bullets = append(block.Bullets, "Technologies: "+strings.Join(entry.Technologies, ", "))
	}
	return block
}

var yearRe = regexp.MustCompile(`(?:19|20)\d{2}`)

var openEndedRe = regexp.MustCompile(`(?i)\b(?:present|current)\b`)

// latestYear extracts the most recent year mentioned in a date span; open
// ranges sort before any closed one. Unknown dates sort last.
func latestYear(dates string) int {
	if openEndedRe.MatchString(dates) {
		return 9999
	}
	latest := 0
	for _, match := range yearRe.FindAllString(dates, -1) {
		year := 0
		for _, digit := range match {
			year = year*10 + int(digit-'0')
		}
		if year > latest {
			latest = year
		}
	}
	return latest
}
