package usecase

import "strings"

// Format selects the output pipeline for one export call.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
)

const (
	ContentTypePDF  = "application/pdf"
	ContentTypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// ParseFormat normalizes a format selector from the wire.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pdf":
		return FormatPDF, nil
	case "docx":
		return FormatDOCX, nil
	}
	return "", NewError(KindInput, "unsupported format: "+s, nil)
}

// formatDateRange renders the right-aligned date line shared by both
// builders. Both outputs must show the same text for the same item.
func formatDateRange(start, end string, current bool) string {
	switch {
	case current:
		if start == "" {
			return "Present"
		}
		return start + " - Present"
	case start == "" && end == "":
		return ""
	case end == "":
		return start
	case start == "":
		return end
	}
	return start + " - " + end
}

// Filename builds "{title}.{ext}" with characters unsafe for a
// Content-Disposition header replaced.
func Filename(title string, format Format) string {
	stem := strings.TrimSpace(title)
	if stem == "" {
		stem = "CV"
	}
	replacer := strings.NewReplacer(
		"/", "-", "\\", "-", ":", "-", "*", "-", "?", "-",
		"\"", "-", "<", "-", ">", "-", "|", "-", "\n", " ", "\r", " ",
	)
	stem = strings.TrimSpace(replacer.Replace(stem))
	if stem == "" {
		stem = "CV"
	}
	return stem + "." + string(format)
}
