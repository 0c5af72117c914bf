package usecase

import (
	"sort"

	"cv-exporter/internal/model"
)

// Section ids form a fixed, closed set. Overrides naming anything else are
// ignored for forward compatibility.
const (
	SectionPersonalInfo        = "personalInfo"
	SectionSummary             = "summary"
	SectionExperience          = "experience"
	SectionEducation           = "education"
	SectionSkills              = "skills"
	SectionProjects            = "projects"
	SectionCertifications      = "certifications"
	SectionLanguages           = "languages"
	SectionVolunteerExperience = "volunteerExperience"
)

// CatalogueEntry is one row of the default section catalogue. The catalogue
// is process-wide static configuration; it is never mutated.
type CatalogueEntry struct {
	ID            string
	DisplayName   string
	Icon          string
	AlwaysVisible bool
}

// defaultCatalogue defines the default order of all nine section kinds.
var defaultCatalogue = []CatalogueEntry{
	{ID: SectionPersonalInfo, DisplayName: "Şəxsi Məlumatlar", Icon: "👤", AlwaysVisible: true},
	{ID: SectionSummary, DisplayName: "Özət", Icon: "📝"},
	{ID: SectionExperience, DisplayName: "İş Təcrübəsi", Icon: "💼"},
	{ID: SectionEducation, DisplayName: "Təhsil", Icon: "🎓"},
	{ID: SectionSkills, DisplayName: "Bacarıqlar", Icon: "⚡"},
	{ID: SectionProjects, DisplayName: "Layihələr", Icon: "🚀"},
	{ID: SectionCertifications, DisplayName: "Sertifikatlar", Icon: "🏆"},
	{ID: SectionLanguages, DisplayName: "Dillər", Icon: "🌍"},
	{ID: SectionVolunteerExperience, DisplayName: "Könüllü İş", Icon: "❤️"},
}

// DefaultCatalogue returns a copy of the default section catalogue.
func DefaultCatalogue() []CatalogueEntry {
	out := make([]CatalogueEntry, len(defaultCatalogue))
	copy(out, defaultCatalogue)
	return out
}

// ResolvedSection is one entry of the resolved section list, the single
// shared contract consumed by every renderer.
type ResolvedSection struct {
	ID          string
	DisplayName string
	Icon        string
	IsVisible   bool
	HasData     bool
	Order       int
}

// HasData reports whether a section has backing content in the model.
// Visibility can never fabricate content: a visible section with no data
// renders nothing in any output format.
func HasData(cv *model.CV, sectionID string) bool {
	switch sectionID {
	case SectionPersonalInfo:
		return true
	case SectionSummary:
		return cv.PersonalInfo.Summary != ""
	case SectionExperience:
		return len(cv.Experience) > 0
	case SectionEducation:
		return len(cv.Education) > 0
	case SectionSkills:
		return len(cv.Skills) > 0
	case SectionProjects:
		return len(cv.Projects) > 0
	case SectionCertifications:
		return len(cv.Certifications) > 0
	case SectionLanguages:
		return len(cv.Languages) > 0
	case SectionVolunteerExperience:
		return len(cv.VolunteerExperience) > 0
	}
	return false
}

// ResolveSections merges the model's sectionOrder overrides with the default
// catalogue and returns all nine kinds sorted by effective order. Unknown
// override ids are ignored. A missing or malformed override list (decoded to
// nil by the model layer) yields the catalogue order with nothing hidden
// beyond the data-presence rule.
func ResolveSections(cv *model.CV) []ResolvedSection {
	overrides := map[string]model.SectionRef{}
	for _, ref := range cv.SectionOrder {
		overrides[ref.ID] = ref
	}

	sections := make([]ResolvedSection, 0, len(defaultCatalogue))
	for i, def := range defaultCatalogue {
		s := ResolvedSection{
			ID:          def.ID,
			DisplayName: def.DisplayName,
			Icon:        def.Icon,
			HasData:     HasData(cv, def.ID),
			Order:       i,
		}
		s.IsVisible = s.HasData || def.AlwaysVisible
		if ref, ok := overrides[def.ID]; ok {
			if ref.IsVisible != nil {
				s.IsVisible = *ref.IsVisible
			}
			if ref.Order != nil {
				s.Order = *ref.Order
			}
		}
		sections = append(sections, s)
	}

	sort.SliceStable(sections, func(a, b int) bool {
		return sections[a].Order < sections[b].Order
	})
	return sections
}

// VisibleSections filters the resolved list to visible sections and
// renumbers them densely. Both document builders iterate exactly this list;
// neither recomputes order on its own.
func VisibleSections(cv *model.CV) []ResolvedSection {
	resolved := ResolveSections(cv)
	visible := make([]ResolvedSection, 0, len(resolved))
	for _, s := range resolved {
		if !s.IsVisible {
			continue
		}
		s.Order = len(visible)
		visible = append(visible, s)
	}
	return visible
}
