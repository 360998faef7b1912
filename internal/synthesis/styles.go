package synthesis

import "github.com/jonathan/resume-pipeline/internal/types"

// blockStyles holds the one fixed style descriptor per block type. Styles are
// applied identically regardless of content length; nothing downstream may
// override them.
var blockStyles = map[types.BlockType]types.BlockStyle{
	types.BlockHeader:            {Bold: true, FontSize: 18, SpacingAfter: 6},
	types.BlockSummary:           {FontSize: 10.5, SpacingBefore: 4, SpacingAfter: 6},
	types.BlockSkillsLine:        {FontSize: 10, SpacingAfter: 4},
	types.BlockCompetenciesLine:  {FontSize: 10, SpacingAfter: 4},
	types.BlockExperienceItem:    {Bold: true, FontSize: 11, SpacingBefore: 6, SpacingAfter: 4},
	types.BlockEducationItem:     {FontSize: 10.5, SpacingBefore: 4, SpacingAfter: 3},
	types.BlockCertificationItem: {FontSize: 10, SpacingAfter: 2},
	types.BlockAwardItem:         {FontSize: 10, SpacingAfter: 2},
	types.BlockVolunteerItem:     {FontSize: 10, SpacingAfter: 2},
	types.BlockPublicationItem:   {Italic: true, FontSize: 10, SpacingAfter: 2},
	types.BlockLanguagesLine:     {FontSize: 10, SpacingAfter: 4},
}

// StyleFor returns the fixed style descriptor for a block type.
func StyleFor(blockType types.BlockType) types.BlockStyle {
	return blockStyles[blockType]
}
