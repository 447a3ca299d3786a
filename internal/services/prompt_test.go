package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildResumeExtractionPromptEmbedsSchemaAndText(t *testing.T) {
	pb := NewPromptBuilder()
	resumeText := "Jane Doe, Software Engineer, NYC. 5 years experience in React and Node."

	prompt := pb.BuildResumeExtractionPrompt(resumeText)

	for _, key := range []string{
		`"personalInfo"`, `"landing"`, `"summary"`, `"skills"`,
		`"projects"`, `"experience"`, `"achievements"`, `"contact"`, `"footer"`,
		`"yearsExperience"`, `"linkedin"`, `"github"`,
	} {
		assert.Contains(t, prompt, key)
	}

	assert.Contains(t, prompt, "minified JSON")
	assert.True(t, strings.HasSuffix(prompt, resumeText), "resume text is appended verbatim at the end")
}
