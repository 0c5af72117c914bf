package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	for input, want := range map[string]Format{
		"pdf":    FormatPDF,
		"PDF":    FormatPDF,
		" docx ": FormatDOCX,
		"Docx":   FormatDOCX,
	} {
		got, err := ParseFormat(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, want, got)
	}

	_, err := ParseFormat("odt")
	require.Error(t, err)
	assert.True(t, IsKind(err, KindInput))
}

func TestFilename(t *testing.T) {
	cases := []struct {
		title  string
		format Format
		want   string
	}{
		{"Backend CV", FormatPDF, "Backend CV.pdf"},
		{"Backend CV", FormatDOCX, "Backend CV.docx"},
		{"", FormatPDF, "CV.pdf"},
		{"   ", FormatDOCX, "CV.docx"},
		{"a/b\\c:d", FormatPDF, "a-b-c-d.pdf"},
		{"who? me*", FormatDOCX, "who- me-.docx"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Filename(tc.title, tc.format), "title %q", tc.title)
	}
}

func TestFormatDateRange(t *testing.T) {
	assert.Equal(t, "2022 - Present", formatDateRange("2022", "", true))
	assert.Equal(t, "2022 - Present", formatDateRange("2022", "2023", true), "current wins over endDate")
	assert.Equal(t, "Present", formatDateRange("", "", true))
	assert.Equal(t, "2020 - 2022", formatDateRange("2020", "2022", false))
	assert.Equal(t, "2020", formatDateRange("2020", "", false))
	assert.Equal(t, "2022", formatDateRange("", "2022", false))
	assert.Equal(t, "", formatDateRange("", "", false))
}
