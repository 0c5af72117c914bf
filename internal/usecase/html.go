package usecase

import (
	"html"
	"strings"

	"cv-exporter/internal/model"
)

// HTMLCompositor renders a CV into a single self-contained HTML document
// with inlined styling. The output is the PDF source of truth: geometry
// matches an A4 content area (794px at 96 DPI) and contains no scripting,
// so a deterministic snapshot can be taken from it.
type HTMLCompositor struct{}

func NewHTMLCompositor() *HTMLCompositor { return &HTMLCompositor{} }

// cvStylesheet is the fixed inline stylesheet. Page-break rules keep visual
// blocks intact when Chrome paginates the print output.
const cvStylesheet = `
* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: 'Times New Roman', serif; font-size: 9pt; line-height: 1.3; color: #333; background: white; }
.container { width: 794px; min-height: 1123px; margin: 0 auto; padding: 12px 16px 16px 16px; background: white; }
.cv-section { margin-bottom: 0.4rem; page-break-inside: avoid; break-inside: avoid; }
.text-center { text-align: center; }
h1 { font-size: 1.8rem; font-weight: 700; color: #1f2937; margin-bottom: 0.2rem; line-height: 1.1; }
p { margin-bottom: 0.3rem; color: #4b5563; font-size: 9pt; }
.cv-contact-info { display: flex; flex-wrap: wrap; gap: 0.6rem; margin-bottom: 0.6rem; padding: 0.6rem; background: #f9fafb; border-radius: 0.3rem; justify-content: center; }
.cv-contact-item { color: #4b5563; font-size: 8pt; font-weight: 500; white-space: nowrap; }
.cv-section-header { margin-bottom: 0.3rem; padding-bottom: 0.2rem; page-break-after: avoid; break-after: avoid; border-bottom: 1px solid #e5e7eb; }
.cv-section-title { font-size: 1rem; font-weight: 700; color: #1f2937; text-transform: uppercase; letter-spacing: 0.3px; }
.cv-item { margin-bottom: 0.4rem; padding: 0.4rem; border-left: 2px solid #3b82f6; background: #f8fafc; border-radius: 0 0.3rem 0.3rem 0; page-break-inside: avoid; break-inside: avoid; }
.cv-item-header { display: flex; justify-content: space-between; align-items: flex-start; gap: 0.6rem; }
.cv-item-title { font-size: 10pt; font-weight: 700; color: #1f2937; margin-bottom: 0.2rem; }
.cv-item-org { font-size: 9pt; font-weight: 600; color: #3b82f6; margin-bottom: 0.2rem; }
.cv-item-date { font-size: 8pt; color: #6b7280; font-weight: 600; text-align: right; white-space: nowrap; }
.cv-item-meta { font-size: 8pt; color: #6b7280; font-weight: 500; font-style: italic; }
.cv-item-description { color: #4b5563; line-height: 1.4; margin-top: 0.2rem; padding-top: 0.2rem; border-top: 1px solid #e5e7eb; font-size: 9pt; }
.cv-skill-group { margin-bottom: 0.3rem; }
.cv-skill-group-title { font-size: 9pt; font-weight: 700; color: #1f2937; margin-bottom: 0.25rem; }
.cv-skill-item { display: inline-block; background: #dbeafe; color: #1e40af; padding: 0.2rem 0.4rem; border-radius: 0.2rem; font-size: 8pt; font-weight: 500; margin: 0 0.3rem 0.3rem 0; }
.cv-skill-item.soft { background: #dcfce7; color: #166534; }
.cv-language-item { display: inline-block; background: #f3f4f6; padding: 0.3rem 0.5rem; border-radius: 0.3rem; font-size: 8pt; margin: 0 0.3rem 0.3rem 0; }
.cv-language-name { font-weight: 600; color: #1f2937; }
.cv-language-level { color: #6b7280; margin-left: 0.3rem; }
.cv-tech { display: inline-block; background: #dbeafe; color: #1e40af; padding: 0.2rem 0.4rem; border-radius: 0.2rem; font-size: 8pt; font-weight: 500; margin: 0.2rem 0.3rem 0 0; }
`

// sectionTitles are the headings used in the HTML output. Parity with the
// DOCX output is over section sequence, not heading text.
var sectionTitles = map[string]string{
	SectionSummary:             "Summary",
	SectionExperience:          "Work Experience",
	SectionEducation:           "Education",
	SectionSkills:              "Skills",
	SectionProjects:            "Projects",
	SectionCertifications:      "Certifications",
	SectionLanguages:           "Languages",
	SectionVolunteerExperience: "Volunteer Experience",
}

type htmlSectionFunc func(b *strings.Builder, cv *model.CV)

// htmlSections dispatches section ids to renderers, covering all nine kinds.
// Unknown ids render nothing.
var htmlSections = map[string]htmlSectionFunc{
	SectionPersonalInfo:        renderPersonalInfoHTML,
	SectionSummary:             renderSummaryHTML,
	SectionExperience:          renderExperienceHTML,
	SectionEducation:           renderEducationHTML,
	SectionSkills:              renderSkillsHTML,
	SectionProjects:            renderProjectsHTML,
	SectionCertifications:      renderCertificationsHTML,
	SectionLanguages:           renderLanguagesHTML,
	SectionVolunteerExperience: renderVolunteerHTML,
}

// Compose walks the resolved section list in order and emits the document.
// Sections without backing data contribute nothing, regardless of the
// isVisible flag they arrived with.
func (c *HTMLCompositor) Compose(cv *model.CV, sections []ResolvedSection) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"UTF-8\">\n<title>CV - ")
	b.WriteString(html.EscapeString(cv.PersonalInfo.FullName))
	b.WriteString("</title>\n<style>")
	b.WriteString(cvStylesheet)
	b.WriteString("</style>\n</head>\n<body>\n<div class=\"container\">\n")

	for _, s := range sections {
		if !s.IsVisible || !HasData(cv, s.ID) {
			continue
		}
		if render, ok := htmlSections[s.ID]; ok {
			render(&b, cv)
		}
	}

	b.WriteString("</div>\n</body>\n</html>\n")
	return b.String()
}

func writeSectionHeader(b *strings.Builder, sectionID string) {
	b.WriteString(`<div class="cv-section-header"><h2 class="cv-section-title">`)
	b.WriteString(html.EscapeString(sectionTitles[sectionID]))
	b.WriteString("</h2></div>\n")
}

func renderPersonalInfoHTML(b *strings.Builder, cv *model.CV) {
	info := cv.PersonalInfo
	b.WriteString(`<div class="cv-section"><div class="text-center"><h1>`)
	b.WriteString(html.EscapeString(info.FullName))
	b.WriteString("</h1>\n")

	contacts := []string{}
	for _, c := range []string{info.Email, info.Phone, info.Location} {
		if c != "" {
			contacts = append(contacts, html.EscapeString(c))
		}
	}
	if info.LinkedIn != "" {
		contacts = append(contacts, "LinkedIn: "+html.EscapeString(info.LinkedIn))
	}
	if info.Website != "" {
		contacts = append(contacts, "Website: "+html.EscapeString(info.Website))
	}
	if len(contacts) > 0 {
		b.WriteString(`<div class="cv-contact-info">`)
		for _, c := range contacts {
			b.WriteString(`<div class="cv-contact-item">` + c + "</div>")
		}
		b.WriteString("</div>\n")
	}
	b.WriteString("</div></div>\n")
}

func renderSummaryHTML(b *strings.Builder, cv *model.CV) {
	if cv.PersonalInfo.Summary == "" {
		return
	}
	b.WriteString(`<div class="cv-section">`)
	writeSectionHeader(b, SectionSummary)
	b.WriteString("<p>" + html.EscapeString(cv.PersonalInfo.Summary) + "</p></div>\n")
}

// writeItem emits the shared item block: title line, optional organization
// line, optional right-aligned date range, optional meta and description.
func writeItem(b *strings.Builder, title, org, meta, dates, description string) {
	b.WriteString(`<div class="cv-item"><div class="cv-item-header"><div>`)
	b.WriteString(`<div class="cv-item-title">` + html.EscapeString(title) + "</div>")
	if org != "" {
		b.WriteString(`<div class="cv-item-org">` + html.EscapeString(org) + "</div>")
	}
	if meta != "" {
		b.WriteString(`<div class="cv-item-meta">` + html.EscapeString(meta) + "</div>")
	}
	b.WriteString("</div>")
	if dates != "" {
		b.WriteString(`<div class="cv-item-date">` + html.EscapeString(dates) + "</div>")
	}
	b.WriteString("</div>")
	if description != "" {
		b.WriteString(`<div class="cv-item-description">` + html.EscapeString(description) + "</div>")
	}
	b.WriteString("</div>\n")
}

func renderExperienceHTML(b *strings.Builder, cv *model.CV) {
	if len(cv.Experience) == 0 {
		return
	}
	b.WriteString(`<div class="cv-section">`)
	writeSectionHeader(b, SectionExperience)
	for _, exp := range cv.Experience {
		writeItem(b, exp.Position, exp.Company, exp.Location,
			formatDateRange(exp.StartDate, exp.EndDate, exp.Current), exp.Description)
	}
	b.WriteString("</div>\n")
}

func renderEducationHTML(b *strings.Builder, cv *model.CV) {
	if len(cv.Education) == 0 {
		return
	}
	b.WriteString(`<div class="cv-section">`)
	writeSectionHeader(b, SectionEducation)
	for _, edu := range cv.Education {
		meta := ""
		if edu.GPA != "" {
			meta = "GPA: " + edu.GPA
		}
		writeItem(b, edu.Degree, edu.Institution, meta,
			formatDateRange(edu.StartDate, edu.EndDate, edu.Current), edu.Description)
	}
	b.WriteString("</div>\n")
}

func renderSkillsHTML(b *strings.Builder, cv *model.CV) {
	if len(cv.Skills) == 0 {
		return
	}
	var hard, soft []model.Skill
	for _, s := range cv.Skills {
		if s.Group() == model.SkillSoft {
			soft = append(soft, s)
		} else {
			hard = append(hard, s)
		}
	}

	b.WriteString(`<div class="cv-section">`)
	writeSectionHeader(b, SectionSkills)
	writeSkillGroup(b, "Hard Skills", hard, "")
	writeSkillGroup(b, "Soft Skills", soft, " soft")
	b.WriteString("</div>\n")
}

func writeSkillGroup(b *strings.Builder, title string, skills []model.Skill, class string) {
	if len(skills) == 0 {
		return
	}
	b.WriteString(`<div class="cv-skill-group"><div class="cv-skill-group-title">`)
	b.WriteString(title)
	b.WriteString("</div>")
	for _, s := range skills {
		label := s.Name
		if s.Level != "" {
			label += " (" + s.Level + ")"
		}
		b.WriteString(`<span class="cv-skill-item` + class + `">` + html.EscapeString(label) + "</span>")
	}
	b.WriteString("</div>\n")
}

func renderProjectsHTML(b *strings.Builder, cv *model.CV) {
	if len(cv.Projects) == 0 {
		return
	}
	b.WriteString(`<div class="cv-section">`)
	writeSectionHeader(b, SectionProjects)
	for _, p := range cv.Projects {
		b.WriteString(`<div class="cv-item"><div class="cv-item-title">` + html.EscapeString(p.Name) + "</div>")
		if p.Description != "" {
			b.WriteString("<p>" + html.EscapeString(p.Description) + "</p>")
		}
		if len(p.Technologies) > 0 {
			b.WriteString("<div>")
			for _, t := range p.Technologies {
				b.WriteString(`<span class="cv-tech">` + html.EscapeString(t) + "</span>")
			}
			b.WriteString("</div>")
		}
		if p.URL != "" {
			b.WriteString(`<div class="cv-item-meta">` + html.EscapeString(p.URL) + "</div>")
		}
		b.WriteString("</div>\n")
	}
	b.WriteString("</div>\n")
}

func renderCertificationsHTML(b *strings.Builder, cv *model.CV) {
	if len(cv.Certifications) == 0 {
		return
	}
	b.WriteString(`<div class="cv-section">`)
	writeSectionHeader(b, SectionCertifications)
	for _, c := range cv.Certifications {
		writeItem(b, c.Name, c.Issuer, "", c.Date, "")
	}
	b.WriteString("</div>\n")
}

func renderLanguagesHTML(b *strings.Builder, cv *model.CV) {
	if len(cv.Languages) == 0 {
		return
	}
	b.WriteString(`<div class="cv-section">`)
	writeSectionHeader(b, SectionLanguages)
	for _, l := range cv.Languages {
		b.WriteString(`<span class="cv-language-item"><span class="cv-language-name">` + html.EscapeString(l.Name) + "</span>")
		if l.Level != "" {
			b.WriteString(`<span class="cv-language-level">` + html.EscapeString(l.Level) + "</span>")
		}
		b.WriteString("</span>")
	}
	b.WriteString("</div>\n")
}

func renderVolunteerHTML(b *strings.Builder, cv *model.CV) {
	if len(cv.VolunteerExperience) == 0 {
		return
	}
	b.WriteString(`<div class="cv-section">`)
	writeSectionHeader(b, SectionVolunteerExperience)
	for _, v := range cv.VolunteerExperience {
		writeItem(b, v.Role, v.Organization, v.Cause,
			formatDateRange(v.StartDate, v.EndDate, v.Current), v.Description)
	}
	b.WriteString("</div>\n")
}
