package usecase

import (
	"bytes"
	"strings"

	"github.com/fumiama/go-docx"

	"cv-exporter/internal/model"
)

// DOCXBuilder walks the same resolved section list as the HTML compositor
// and emits a tree of heading/paragraph nodes, independent of any HTML
// intermediate. Formatting is fixed per node role. Building performs no I/O;
// serialization is the only failure-prone step.
type DOCXBuilder struct{}

func NewDOCXBuilder() *DOCXBuilder { return &DOCXBuilder{} }

// Run sizes are OOXML half-points, matching the original document layout:
// 16pt name, 12pt headings, 11pt item titles, 10pt body.
const (
	sizeName    = "32"
	sizeHeading = "24"
	sizeTitle   = "22"
	sizeBody    = "20"
)

// docxHeadings are the section heading labels in the word-processor output.
var docxHeadings = map[string]string{
	SectionSummary:             "ÖZƏT / SUMMARY",
	SectionExperience:          "İŞ TƏCRÜBƏSI / WORK EXPERIENCE",
	SectionEducation:           "TƏHSİL / EDUCATION",
	SectionSkills:              "BACARIQLAR / SKILLS",
	SectionProjects:            "LAYİHƏLƏR / PROJECTS",
	SectionCertifications:      "SERTİFİKATLAR / CERTIFICATIONS",
	SectionLanguages:           "DİLLƏR / LANGUAGES",
	SectionVolunteerExperience: "KÖNÜLLÜ TƏCRÜBƏ / VOLUNTEER EXPERIENCE",
}

type docxSectionFunc func(doc *docx.Docx, cv *model.CV)

var docxSections = map[string]docxSectionFunc{
	SectionPersonalInfo:        buildPersonalInfoDOCX,
	SectionSummary:             buildSummaryDOCX,
	SectionExperience:          buildExperienceDOCX,
	SectionEducation:           buildEducationDOCX,
	SectionSkills:              buildSkillsDOCX,
	SectionProjects:            buildProjectsDOCX,
	SectionCertifications:      buildCertificationsDOCX,
	SectionLanguages:           buildLanguagesDOCX,
	SectionVolunteerExperience: buildVolunteerDOCX,
}

// Build constructs the in-memory document from the resolved section list.
// The traversal order is identical to the HTML compositor's: both are driven
// by the same list, never recomputed independently.
func (b *DOCXBuilder) Build(cv *model.CV, sections []ResolvedSection) *docx.Docx {
	doc := docx.New().WithDefaultTheme()
	for _, s := range sections {
		if !s.IsVisible || !HasData(cv, s.ID) {
			continue
		}
		if build, ok := docxSections[s.ID]; ok {
			build(doc, cv)
		}
	}
	return doc
}

// Serialize packs the node tree into DOCX bytes. Failure here is a
// programming-error class given the fixed construction above; it never
// leaves a partially written buffer with the caller.
func (b *DOCXBuilder) Serialize(doc *docx.Docx) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, NewError(KindSerialization, "docx serialization failed", err)
	}
	return buf.Bytes(), nil
}

func addHeading(doc *docx.Docx, sectionID string) {
	doc.AddParagraph().AddText(docxHeadings[sectionID]).Size(sizeHeading).Bold()
}

func buildPersonalInfoDOCX(doc *docx.Docx, cv *model.CV) {
	info := cv.PersonalInfo
	if info.FullName != "" {
		p := doc.AddParagraph().Justification("center")
		p.AddText(info.FullName).Size(sizeName).Bold()
	}

	contacts := []string{}
	if info.Email != "" {
		contacts = append(contacts, "Email: "+info.Email)
	}
	if info.Phone != "" {
		contacts = append(contacts, "Telefon: "+info.Phone)
	}
	if info.Location != "" {
		contacts = append(contacts, "Ünvan: "+info.Location)
	}
	if info.LinkedIn != "" {
		contacts = append(contacts, "LinkedIn: "+info.LinkedIn)
	}
	if info.Website != "" {
		contacts = append(contacts, "Website: "+info.Website)
	}
	if len(contacts) > 0 {
		p := doc.AddParagraph().Justification("center")
		p.AddText(strings.Join(contacts, " | ")).Size(sizeBody)
	}
	doc.AddParagraph()
}

func buildSummaryDOCX(doc *docx.Docx, cv *model.CV) {
	if cv.PersonalInfo.Summary == "" {
		return
	}
	addHeading(doc, SectionSummary)
	doc.AddParagraph().AddText(cv.PersonalInfo.Summary).Size(sizeBody)
	doc.AddParagraph()
}

// addItem emits the fixed three-paragraph item block: bold title,
// secondary info with the formatted date range, optional description.
func addItem(doc *docx.Docx, title, secondary, description string) {
	doc.AddParagraph().AddText(title).Size(sizeTitle).Bold()
	if secondary != "" {
		doc.AddParagraph().AddText(secondary).Size(sizeBody)
	}
	if description != "" {
		doc.AddParagraph().AddText(description).Size(sizeBody)
	}
}

func secondaryLine(org, dates string) string {
	switch {
	case org == "":
		return dates
	case dates == "":
		return org
	}
	return org + " | " + dates
}

func buildExperienceDOCX(doc *docx.Docx, cv *model.CV) {
	if len(cv.Experience) == 0 {
		return
	}
	addHeading(doc, SectionExperience)
	for _, exp := range cv.Experience {
		addItem(doc, exp.Position,
			secondaryLine(exp.Company, formatDateRange(exp.StartDate, exp.EndDate, exp.Current)),
			exp.Description)
	}
	doc.AddParagraph()
}

func buildEducationDOCX(doc *docx.Docx, cv *model.CV) {
	if len(cv.Education) == 0 {
		return
	}
	addHeading(doc, SectionEducation)
	for _, edu := range cv.Education {
		addItem(doc, edu.Degree,
			secondaryLine(edu.Institution, formatDateRange(edu.StartDate, edu.EndDate, edu.Current)),
			edu.Description)
	}
	doc.AddParagraph()
}

func buildSkillsDOCX(doc *docx.Docx, cv *model.CV) {
	if len(cv.Skills) == 0 {
		return
	}
	addHeading(doc, SectionSkills)

	// hard group first, then soft, so the item sequence matches the HTML
	// output's grouping exactly
	var hard, soft []string
	for _, s := range cv.Skills {
		label := s.Name
		if s.Level != "" {
			label += " (" + s.Level + ")"
		}
		if s.Group() == model.SkillSoft {
			soft = append(soft, label)
		} else {
			hard = append(hard, label)
		}
	}
	if len(hard) > 0 {
		doc.AddParagraph().AddText("Hard Skills: " + strings.Join(hard, ", ")).Size(sizeBody)
	}
	if len(soft) > 0 {
		doc.AddParagraph().AddText("Soft Skills: " + strings.Join(soft, ", ")).Size(sizeBody)
	}
	doc.AddParagraph()
}

func buildProjectsDOCX(doc *docx.Docx, cv *model.CV) {
	if len(cv.Projects) == 0 {
		return
	}
	addHeading(doc, SectionProjects)
	for _, p := range cv.Projects {
		doc.AddParagraph().AddText(p.Name).Size(sizeTitle).Bold()
		if p.Description != "" {
			doc.AddParagraph().AddText(p.Description).Size(sizeBody)
		}
		if len(p.Technologies) > 0 {
			doc.AddParagraph().AddText("Texnologiyalar: " + strings.Join(p.Technologies, ", ")).Size(sizeBody).Italic()
		}
	}
	doc.AddParagraph()
}

func buildCertificationsDOCX(doc *docx.Docx, cv *model.CV) {
	if len(cv.Certifications) == 0 {
		return
	}
	addHeading(doc, SectionCertifications)
	for _, c := range cv.Certifications {
		addItem(doc, c.Name, secondaryLine(c.Issuer, c.Date), "")
	}
	doc.AddParagraph()
}

func buildLanguagesDOCX(doc *docx.Docx, cv *model.CV) {
	if len(cv.Languages) == 0 {
		return
	}
	addHeading(doc, SectionLanguages)
	for _, l := range cv.Languages {
		line := l.Name
		if l.Level != "" {
			line += " - " + l.Level
		}
		doc.AddParagraph().AddText(line).Size(sizeBody)
	}
	doc.AddParagraph()
}

func buildVolunteerDOCX(doc *docx.Docx, cv *model.CV) {
	if len(cv.VolunteerExperience) == 0 {
		return
	}
	addHeading(doc, SectionVolunteerExperience)
	for _, v := range cv.VolunteerExperience {
		addItem(doc, v.Role,
			secondaryLine(v.Organization, formatDateRange(v.StartDate, v.EndDate, v.Current)),
			v.Description)
	}
	doc.AddParagraph()
}
