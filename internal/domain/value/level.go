package value

import (
	"strings"

	"portfolio-api/pkg/apperror"
)

// SkillLevel is the closed, totally ordered proficiency set shared by skills,
// tools, and programming languages.
type SkillLevel string

const (
	LevelBasic        SkillLevel = "basic"
	LevelIntermediate SkillLevel = "intermediate"
	LevelAdvanced     SkillLevel = "advanced"
	LevelExpert       SkillLevel = "expert"
)

var skillLevelRank = map[SkillLevel]int{
	LevelBasic:        0,
	LevelIntermediate: 1,
	LevelAdvanced:     2,
	LevelExpert:       3,
}

// ParseSkillLevel case-folds and validates a level. Whitespace-only input is
// treated as absent and returns nil.
func ParseSkillLevel(raw string) (*SkillLevel, error) {
	v := SkillLevel(strings.ToLower(strings.TrimSpace(raw)))
	if v == "" {
		return nil, nil
	}
	if _, ok := skillLevelRank[v]; !ok {
		return nil, apperror.NewValidation("level", "unknown level: "+raw)
	}
	return &v, nil
}

func (l SkillLevel) String() string { return string(l) }

func (l SkillLevel) AtLeast(other SkillLevel) bool {
	return skillLevelRank[l] >= skillLevelRank[other]
}

// Proficiency is a CEFR language proficiency level.
type Proficiency string

const (
	ProficiencyA1 Proficiency = "a1"
	ProficiencyA2 Proficiency = "a2"
	ProficiencyB1 Proficiency = "b1"
	ProficiencyB2 Proficiency = "b2"
	ProficiencyC1 Proficiency = "c1"
	ProficiencyC2 Proficiency = "c2"
)

var proficiencyRank = map[Proficiency]int{
	ProficiencyA1: 0,
	ProficiencyA2: 1,
	ProficiencyB1: 2,
	ProficiencyB2: 3,
	ProficiencyC1: 4,
	ProficiencyC2: 5,
}

func ParseProficiency(raw string) (*Proficiency, error) {
	v := Proficiency(strings.ToLower(strings.TrimSpace(raw)))
	if v == "" {
		return nil, nil
	}
	if _, ok := proficiencyRank[v]; !ok {
		return nil, apperror.NewValidation("proficiency", "unknown CEFR level: "+raw)
	}
	return &v, nil
}

func (p Proficiency) String() string { return string(p) }

func (p Proficiency) AtLeast(other Proficiency) bool {
	return proficiencyRank[p] >= proficiencyRank[other]
}
