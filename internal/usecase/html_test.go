package usecase

import (
	"strings"
	"testing"

	"cv-exporter/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bodyOf strips everything up to <body> so assertions do not trip over the
// document title or the stylesheet.
func bodyOf(t *testing.T, doc string) string {
	t.Helper()
	idx := strings.Index(doc, "<body>")
	require.NotEqual(t, -1, idx, "composed document has a body")
	return doc[idx:]
}

func indexOf(t *testing.T, s, sub string) int {
	t.Helper()
	idx := strings.Index(s, sub)
	require.NotEqualf(t, -1, idx, "expected %q in output", sub)
	return idx
}

func sampleCV() *model.CV {
	return &model.CV{
		PersonalInfo: model.PersonalInfo{
			FullName: "Aysel Hüseynova",
			Email:    "aysel@example.com",
			Phone:    "+994 50 123 45 67",
			Location: "Bakı",
			Summary:  "Backend engineer with five years of Go experience.",
		},
		Experience: []model.Experience{
			{Position: "Backend Developer", Company: "Acme", StartDate: "2022", Current: true, Description: "Built export pipelines."},
			{Position: "Junior Developer", Company: "Startup", StartDate: "2020", EndDate: "2022"},
		},
		Skills: []model.Skill{
			{Name: "Go", Level: "Expert"},
			{Name: "PostgreSQL"},
			{Name: "Communication", Type: model.SkillSoft},
		},
		Languages: []model.Language{
			{Name: "Azərbaycan", Level: "Native"},
			{Name: "English", Level: "C1"},
		},
	}
}

func TestComposeSectionSequence(t *testing.T) {
	cv := sampleCV()
	body := bodyOf(t, NewHTMLCompositor().Compose(cv, VisibleSections(cv)))

	// headings appear in resolved order: personal info, summary,
	// experience, skills, languages
	nameIdx := indexOf(t, body, "<h1>Aysel Hüseynova</h1>")
	summaryIdx := indexOf(t, body, ">Summary</h2>")
	expIdx := indexOf(t, body, ">Work Experience</h2>")
	skillsIdx := indexOf(t, body, ">Skills</h2>")
	langIdx := indexOf(t, body, ">Languages</h2>")

	assert.Less(t, nameIdx, summaryIdx)
	assert.Less(t, summaryIdx, expIdx)
	assert.Less(t, expIdx, skillsIdx)
	assert.Less(t, skillsIdx, langIdx)
}

func TestComposeOmitsEmptySections(t *testing.T) {
	cv := sampleCV()
	body := bodyOf(t, NewHTMLCompositor().Compose(cv, VisibleSections(cv)))

	assert.NotContains(t, body, ">Education</h2>")
	assert.NotContains(t, body, ">Projects</h2>")
	assert.NotContains(t, body, ">Certifications</h2>")
	assert.NotContains(t, body, ">Volunteer Experience</h2>")
}

func TestComposeSkillGrouping(t *testing.T) {
	cv := sampleCV()
	body := bodyOf(t, NewHTMLCompositor().Compose(cv, VisibleSections(cv)))

	hardIdx := indexOf(t, body, "Hard Skills")
	softIdx := indexOf(t, body, "Soft Skills")
	assert.Less(t, hardIdx, softIdx, "hard group always precedes soft")

	// untyped skills land in the hard group, levels are appended
	assert.Contains(t, body, "Go (Expert)")
	goIdx := indexOf(t, body, "Go (Expert)")
	pgIdx := indexOf(t, body, "PostgreSQL")
	assert.Greater(t, pgIdx, hardIdx)
	assert.Less(t, goIdx, softIdx)
	commIdx := indexOf(t, body, "Communication")
	assert.Greater(t, commIdx, softIdx)
}

func TestComposeEscapesUserContent(t *testing.T) {
	cv := &model.CV{
		PersonalInfo: model.PersonalInfo{
			FullName: `Robert"; <script>alert(1)</script>`,
			Summary:  "A & B <tags>",
		},
	}
	doc := NewHTMLCompositor().Compose(cv, VisibleSections(cv))

	assert.NotContains(t, doc, "<script>alert")
	assert.Contains(t, doc, "&lt;script&gt;")
	assert.Contains(t, doc, "A &amp; B &lt;tags&gt;")
}

func TestComposeDateRanges(t *testing.T) {
	cv := sampleCV()
	body := bodyOf(t, NewHTMLCompositor().Compose(cv, VisibleSections(cv)))

	assert.Contains(t, body, "2022 - Present", "current positions render an open range")
	assert.Contains(t, body, "2020 - 2022")
}

func TestComposeContactBlock(t *testing.T) {
	cv := sampleCV()
	body := bodyOf(t, NewHTMLCompositor().Compose(cv, VisibleSections(cv)))

	assert.Contains(t, body, "aysel@example.com")
	assert.Contains(t, body, "+994 50 123 45 67")
	assert.NotContains(t, body, "LinkedIn:", "absent contact fields render nothing")
}
