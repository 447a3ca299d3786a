package services

import "fmt"

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildResumeExtractionPrompt creates the single fixed instruction sent to the
// model. It embeds the full target JSON shape and the formatting rules, then
// appends the resume text verbatim. The shape here must stay in lockstep with
// models.ResumeData and the schema in models/resume_schema.go.
func (pb *PromptBuilder) BuildResumeExtractionPrompt(resumeText string) string {
	return fmt.Sprintf(`You are an expert technical resume parser. Analyze the following resume text and convert it into a structured JSON object.
The JSON object must follow this exact schema, including all specified keys and data types. Be as accurate as possible.

{
  "personalInfo": {
    "name": "string",
    "title": "string",
    "location": "string"
  },
  "landing": {
    "headline": "string",
    "subheadline": "string"
  },
  "summary": {
    "content": "A detailed paragraph summarizing the profile.",
    "highlights": ["An array of key achievement strings."],
    "yearsExperience": 0,
    "specialization": "string"
  },
  "skills": {
    "technical": ["Array of technical skills like languages and frameworks."],
    "tools": ["Array of tools and technologies like Git, Figma, etc."],
    "soft": ["Array of soft skills or areas of expertise."]
  },
  "projects": [
    {
      "name": "string",
      "description": "string",
      "tech": ["Array of strings for technologies used."]
    }
  ],
  "experience": [
    {
      "title": "string",
      "company": "string",
      "period": "string, e.g., 'Jan 2022 - Present'",
      "description": "string"
    }
  ],
  "achievements": ["Array of strings detailing achievements."],
  "contact": {
    "email": "string",
    "phone": "string"
  },
  "footer": {
    "socials": {
      "linkedin": "Full LinkedIn URL as a string.",
      "github": "Full GitHub URL as a string."
    }
  }
}

Notes:
- yearsExperience must be a number, even if it is 0 for students.
- Add a summary of the profile in the summary section using ATS friendly keywords.
- The headline in the landing section should not be the person's name; headline and subheadline should be short and crisp.
- Preserve the order in which projects and experience appear in the resume.

Only output the raw, minified JSON object. Do not include any other text, explanation, or markdown formatting like `+"```"+`json.

Here is the resume text to parse:
---
%s`, resumeText)
}
