package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveExportURL(t *testing.T) {
	tests := []struct {
		name   string
		url    string
		want   string
		wantOK bool
	}{
		{
			name:   "edit url with fragment gid",
			url:    "https://docs.google.com/spreadsheets/d/ABC123/edit#gid=5",
			want:   "https://docs.google.com/spreadsheets/d/ABC123/export?format=csv&gid=5",
			wantOK: true,
		},
		{
			name:   "edit url without gid defaults to 0",
			url:    "https://docs.google.com/spreadsheets/d/aB3-_x9/edit",
			want:   "https://docs.google.com/spreadsheets/d/aB3-_x9/export?format=csv&gid=0",
			wantOK: true,
		},
		{
			name:   "query gid",
			url:    "https://docs.google.com/spreadsheets/d/ABC123/view?gid=42",
			want:   "https://docs.google.com/spreadsheets/d/ABC123/export?format=csv&gid=42",
			wantOK: true,
		},
		{
			name:   "already an export url passes through",
			url:    "https://docs.google.com/spreadsheets/d/ABC123/export?format=csv&gid=0",
			want:   "https://docs.google.com/spreadsheets/d/ABC123/export?format=csv&gid=0",
			wantOK: true,
		},
		{
			name:   "published csv passes through",
			url:    "https://docs.google.com/spreadsheets/d/e/2PACX/pub?output=csv",
			want:   "https://docs.google.com/spreadsheets/d/e/2PACX/pub?output=csv",
			wantOK: true,
		},
		{
			name:   "not a sheet url",
			url:    "not a sheet url",
			wantOK: false,
		},
		{
			name:   "empty url",
			url:    "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolveExportURL(tt.url)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractSheetID(t *testing.T) {
	assert.Equal(t, "ABC123", ExtractSheetID("https://docs.google.com/spreadsheets/d/ABC123/edit#gid=5"))
	assert.Equal(t, "aB3-_x9", ExtractSheetID("https://docs.google.com/spreadsheets/d/aB3-_x9/"))
	assert.Empty(t, ExtractSheetID("https://example.com/no/sheet/here"))
	assert.Empty(t, ExtractSheetID(""))
}
