package naukri

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExperienceLabel(t *testing.T) {
	tests := []struct {
		years int
		want  string
	}{
		{0, "Fresher"},
		{-1, "Fresher"},
		{1, "1 year"},
		{2, "2 years"},
		{10, "10 years"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, experienceLabel(tt.years))
	}
}

func TestMatchesSuccessPattern(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{
			name:    "standard confirmation",
			content: "<div>You have successfully applied to this job.</div>",
			want:    true,
		},
		{
			name:    "already applied counts as success",
			content: "<span>You have already applied to this job</span>",
			want:    true,
		},
		{
			name:    "case insensitive",
			content: "APPLICATION SUCCESSFUL",
			want:    true,
		},
		{
			name:    "unrelated page",
			content: "<div>Apply to 50 similar jobs</div>",
			want:    false,
		},
		{
			name:    "empty content",
			content: "",
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matchesSuccessPattern(tt.content))
		})
	}
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "devops_engineer", slug("DevOps Engineer"))
	assert.Equal(t, "site_reliability_eng", slug("Site Reliability Engineer"))
	assert.Equal(t, "acme_corp!", slug("Acme  Corp!"))
}
