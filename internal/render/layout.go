// Package render lays out an extracted profile and draws it into a summary PDF.
package render

import (
	"strings"

	"cv-parser/internal/constants"
	"cv-parser/internal/types"
)

// Line is one string drawn at a fixed position. Y is measured in points
// from the bottom of the page.
type Line struct {
	X    float64
	Y    float64
	Text string
}

// Layout returns the lines of the summary page for profile.
func Layout(profile *types.ExtractedProfile) []Line {
	x := constants.ReportMarginX
	lines := []Line{
		{X: x, Y: constants.ReportNameY, Text: types.ValueOr(profile.Name, constants.NotFound)},
		{X: x, Y: constants.ReportPhoneY, Text: constants.PhoneLabel + types.ValueOr(profile.Phone, constants.NotFound)},
		{X: x, Y: constants.ReportEmailY, Text: constants.EmailLabel + types.ValueOr(profile.Email, constants.NotFound)},
	}

	y := constants.ReportSkillsY
	for _, text := range SkillLines(profile.Skills, constants.SkillsPerLine) {
		lines = append(lines, Line{X: x, Y: y, Text: text})
		y -= constants.ReportLineStep
	}
	return lines
}

// SkillLines joins skills with ", ", at most perLine to a line. The first line
// carries the "Skills: " label, the rest are indented. No skills, no lines.
func SkillLines(skills []string, perLine int) []string {
	if len(skills) == 0 {
		return nil
	}
	if perLine <= 0 {
		perLine = len(skills)
	}

	var lines []string
	for start := 0; start < len(skills); start += perLine {
		end := start + perLine
		if end > len(skills) {
			end = len(skills)
		}
		prefix := constants.SkillsContinuation
		if start == 0 {
			prefix = constants.SkillsLabel
		}
		lines = append(lines, prefix+strings.Join(skills[start:end], ", "))
	}
	return lines
}
