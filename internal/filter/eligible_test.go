package filter

import (
	"testing"

	"github.com/Barkat444/HireMeMaybe/internal/jobs"
	"github.com/stretchr/testify/assert"
)

func TestExclude(t *testing.T) {
	tests := []struct {
		name    string
		listing jobs.Listing
		reason  string
	}{
		{
			name:    "fresh direct apply passes",
			listing: jobs.Listing{PostedAt: "Just now", ApplyMode: jobs.ApplyDirect},
			reason:  "",
		},
		{
			name:    "stale posting",
			listing: jobs.Listing{PostedAt: "3 days ago", ApplyMode: jobs.ApplyDirect},
			reason:  "stale posting",
		},
		{
			name:    "external redirect",
			listing: jobs.Listing{PostedAt: "Today", ApplyMode: jobs.ApplyExternal},
			reason:  "external redirect",
		},
		{
			name:    "already applied",
			listing: jobs.Listing{PostedAt: "Today", ApplyMode: jobs.ApplyDirect, AlreadyApplied: true},
			reason:  "already applied",
		},
		{
			name:    "freshness checked before apply mode",
			listing: jobs.Listing{PostedAt: "10 days ago", ApplyMode: jobs.ApplyExternal, AlreadyApplied: true},
			reason:  "stale posting",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.reason, Exclude(tt.listing))
		})
	}
}
