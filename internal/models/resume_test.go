package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeFillsMissingCollections(t *testing.T) {
	r := ResumeData{
		Projects: []Project{{Name: "CLI tool", Description: "terminal utility"}},
	}
	r.Summary.YearsExperience = -3

	r.Normalize()

	assert.NotNil(t, r.Summary.Highlights)
	assert.NotNil(t, r.Skills.Technical)
	assert.NotNil(t, r.Skills.Tools)
	assert.NotNil(t, r.Skills.Soft)
	assert.NotNil(t, r.Experience)
	assert.NotNil(t, r.Achievements)
	assert.NotNil(t, r.Projects[0].Tech, "nested project tech must be filled in too")
	assert.Equal(t, 0, r.Summary.YearsExperience, "negative experience is clamped")
}

func TestEmptyResumeDataMarshalsCompleteShape(t *testing.T) {
	data, err := json.Marshal(EmptyResumeData())
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))

	for _, key := range []string{
		"personalInfo", "landing", "summary", "skills",
		"projects", "experience", "achievements", "contact", "footer",
	} {
		require.Contains(t, doc, key)
	}

	// Arrays must serialize as [], never null, so templates can iterate
	// without defensive checks.
	assert.JSONEq(t, `[]`, string(doc["projects"]))
	assert.JSONEq(t, `[]`, string(doc["experience"]))
	assert.JSONEq(t, `[]`, string(doc["achievements"]))
}

func TestResumeDataValueScanRoundTrip(t *testing.T) {
	original := sampleResume()

	value, err := original.Value()
	require.NoError(t, err)

	var restored ResumeData
	require.NoError(t, restored.Scan(value))

	assert.Equal(t, *original, restored)
}

func TestScanRejectsUnsupportedType(t *testing.T) {
	var r ResumeData
	assert.Error(t, r.Scan(42))
}

func TestValidateResumeJSONAcceptsMinimalObject(t *testing.T) {
	assert.NoError(t, ValidateResumeJSON([]byte(`{}`)))
	assert.NoError(t, ValidateResumeJSON([]byte(`{"personalInfo":{"name":"Jane Doe"}}`)))
}

func TestValidateResumeJSONNamesOffendingPath(t *testing.T) {
	err := ValidateResumeJSON([]byte(`{"summary":{"yearsExperience":"five"}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "summary.yearsExperience")

	err = ValidateResumeJSON([]byte(`{"skills":{"technical":"Go"}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "skills.technical")
}

func TestValidateResumeJSONRejectsNonObject(t *testing.T) {
	assert.Error(t, ValidateResumeJSON([]byte(`"just a string"`)))
	assert.Error(t, ValidateResumeJSON([]byte(`[1,2,3]`)))
}

func sampleResume() *ResumeData {
	r := &ResumeData{
		PersonalInfo: PersonalInfo{Name: "Jane Doe", Title: "Software Engineer", Location: "NYC"},
		Landing:      Landing{Headline: "Building reliable backends", Subheadline: "React and Node specialist"},
		Summary: Summary{
			Content:         "Engineer with five years of full stack experience.",
			Highlights:      []string{"Scaled API to 1M requests/day"},
			YearsExperience: 5,
			Specialization:  "Backend",
		},
		Skills: Skills{
			Technical: []string{"Go", "React", "Node"},
			Tools:     []string{"Git", "Docker"},
			Soft:      []string{"Mentoring"},
		},
		Projects: []Project{
			{Name: "Rate limiter", Description: "Distributed limiter", Tech: []string{"Go", "Redis"}},
		},
		Experience: []Experience{
			{Title: "Software Engineer", Company: "Acme", Period: "Jan 2020 - Present", Description: "Backend work"},
		},
		Achievements: []string{"Speaker at GopherCon"},
		Contact:      Contact{Email: "jane@example.com", Phone: "+1 555 0100"},
		Footer: Footer{Socials: Socials{
			LinkedIn: "https://linkedin.com/in/janedoe",
			GitHub:   "https://github.com/janedoe",
		}},
	}
	r.Normalize()
	return r
}
