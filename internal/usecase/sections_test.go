package usecase

import (
	"testing"

	"cv-exporter/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }
func intPtr(i int) *int    { return &i }

func sectionIDs(sections []ResolvedSection) []string {
	ids := make([]string, 0, len(sections))
	for _, s := range sections {
		ids = append(ids, s.ID)
	}
	return ids
}

func TestResolveSectionsDefaulting(t *testing.T) {
	// empty model, no overrides: full catalogue in catalogue order, only
	// personalInfo forced visible
	cv := &model.CV{PersonalInfo: model.PersonalInfo{FullName: "Test"}}

	resolved := ResolveSections(cv)
	require.Len(t, resolved, 9)
	assert.Equal(t, []string{
		SectionPersonalInfo, SectionSummary, SectionExperience, SectionEducation,
		SectionSkills, SectionProjects, SectionCertifications, SectionLanguages,
		SectionVolunteerExperience,
	}, sectionIDs(resolved))

	visible := VisibleSections(cv)
	require.Len(t, visible, 1)
	assert.Equal(t, SectionPersonalInfo, visible[0].ID)
}

func TestResolveSectionsDataPresence(t *testing.T) {
	cv := &model.CV{
		PersonalInfo: model.PersonalInfo{FullName: "Test", Summary: "A summary."},
		Experience:   []model.Experience{{Position: "Engineer"}},
		Skills:       []model.Skill{{Name: "Go"}},
	}

	visible := VisibleSections(cv)
	assert.Equal(t, []string{SectionPersonalInfo, SectionSummary, SectionExperience, SectionSkills}, sectionIDs(visible))
}

func TestResolveSectionsUnknownIDIgnored(t *testing.T) {
	cv := &model.CV{
		PersonalInfo: model.PersonalInfo{FullName: "Test"},
		SectionOrder: model.SectionOrder{
			{ID: "customSections", IsVisible: boolPtr(true), Order: intPtr(0)},
			{ID: "somethingElse", IsVisible: boolPtr(true)},
		},
	}

	resolved := ResolveSections(cv)
	require.Len(t, resolved, 9, "unknown override ids never add sections")
	for _, s := range resolved {
		assert.NotEqual(t, "customSections", s.ID)
	}
}

func TestVisibilityCannotFabricateContent(t *testing.T) {
	// education marked visible with no backing data stays out of every output
	cv := &model.CV{
		PersonalInfo: model.PersonalInfo{FullName: "Test"},
		SectionOrder: model.SectionOrder{
			{ID: SectionEducation, IsVisible: boolPtr(true), Order: intPtr(0)},
		},
	}

	for _, s := range ResolveSections(cv) {
		if s.ID == SectionEducation {
			assert.True(t, s.IsVisible)
			assert.False(t, s.HasData)
		}
	}

	html := NewHTMLCompositor().Compose(cv, VisibleSections(cv))
	assert.NotContains(t, html, "Education")
	assert.NotContains(t, html, "cv-section-header\"><h2 class=\"cv-section-title\">Education")
}

func TestReorderRoundTrip(t *testing.T) {
	base := &model.CV{
		PersonalInfo: model.PersonalInfo{FullName: "Test", Summary: "s"},
		Experience:   []model.Experience{{Position: "Engineer"}},
		Education:    []model.Education{{Degree: "BSc"}},
	}

	before := sectionIDs(VisibleSections(base))
	require.Equal(t, []string{SectionPersonalInfo, SectionSummary, SectionExperience, SectionEducation}, before)

	// move experience to the front; nothing else moves relative to itself
	moved := *base
	moved.SectionOrder = model.SectionOrder{
		{ID: SectionExperience, IsVisible: boolPtr(true), Order: intPtr(-1)},
	}
	after := sectionIDs(VisibleSections(&moved))
	assert.Equal(t, []string{SectionExperience, SectionPersonalInfo, SectionSummary, SectionEducation}, after)
}

func TestVisibleSectionsDenseOrder(t *testing.T) {
	cv := &model.CV{
		PersonalInfo: model.PersonalInfo{FullName: "Test", Summary: "s"},
		Experience:   []model.Experience{{Position: "Engineer"}},
		SectionOrder: model.SectionOrder{
			{ID: SectionExperience, Order: intPtr(40)},
			{ID: SectionSummary, Order: intPtr(7)},
		},
	}

	visible := VisibleSections(cv)
	for i, s := range visible {
		assert.Equal(t, i, s.Order, "orders are renumbered densely over the visible subset")
	}
}

func TestResolveScenarioExperienceFirst(t *testing.T) {
	// the documented scenario: experience reordered before the name block,
	// education absent from every output
	cv := &model.CV{
		PersonalInfo: model.PersonalInfo{FullName: "Aysel Hüseynova"},
		Experience: []model.Experience{
			{Position: "Backend Developer", Company: "Acme", StartDate: "2022", Current: true},
		},
		SectionOrder: model.SectionOrder{
			{ID: SectionExperience, IsVisible: boolPtr(true), Order: intPtr(0)},
			{ID: SectionPersonalInfo, IsVisible: boolPtr(true), Order: intPtr(1)},
		},
	}

	visible := VisibleSections(cv)
	assert.Equal(t, []string{SectionExperience, SectionPersonalInfo}, sectionIDs(visible))

	body := bodyOf(t, NewHTMLCompositor().Compose(cv, visible))
	expIdx := indexOf(t, body, "Backend Developer")
	nameIdx := indexOf(t, body, "Aysel Hüseynova")
	assert.Less(t, expIdx, nameIdx, "experience renders before the name block")
	assert.NotContains(t, body, "Təhsil")
	assert.Contains(t, body, "2022 - Present")
}
