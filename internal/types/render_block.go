package types

// BlockType identifies one typographic unit of a synthesized document.
type BlockType string

// Block type constants, in the fixed order they appear in output documents.
const (
	BlockHeader            BlockType = "header"
	BlockSummary           BlockType = "summary"
	BlockSkillsLine        BlockType = "skillsLine"
	BlockCompetenciesLine  BlockType = "competenciesLine"
	BlockExperienceItem    BlockType = "experienceItem"
	BlockEducationItem     BlockType = "educationItem"
	BlockCertificationItem BlockType = "certificationItem"
	BlockAwardItem         BlockType = "awardItem"
	BlockVolunteerItem     BlockType = "volunteerItem"
	BlockPublicationItem   BlockType = "publicationItem"
	BlockLanguagesLine     BlockType = "languagesLine"
)

// BlockStyle is the fixed typographic descriptor attached to every block of a
// given type. Sizes are points; spacing values are points before/after.
type BlockStyle struct {
	Bold          bool    `json:"bold"`
	Italic        bool    `json:"italic"`
	FontSize      float64 `json:"font_size"`
	SpacingBefore float64 `json:"spacing_before"`
	SpacingAfter  float64 `json:"spacing_after"`
}

// RenderBlock is one styled unit of the final document. Which fields are
// populated depends on the block type: inline runs use Text, itemized entries
// use Title/Subtitle/Meta/Bullets.
type RenderBlock struct {
	Type     BlockType  `json:"type"`
	Style    BlockStyle `json:"style"`
	Heading  string     `json:"heading,omitempty"`
	Title    string     `json:"title,omitempty"`
	Subtitle string     `json:"subtitle,omitempty"`
	Meta     string     `json:"meta,omitempty"`
	Text     string     `json:"text,omitempty"`
	Bullets  []string   `json:"bullets,omitempty"`
	Tag      string     `json:"tag,omitempty"`
}
