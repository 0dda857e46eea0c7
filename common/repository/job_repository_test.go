package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter_Where(t *testing.T) {
	yes, no := true, false

	testCases := []struct {
		name      string
		filter    Filter
		wantWhere string
		wantArgs  []any
	}{
		{
			name:   "empty filter",
			filter: Filter{Limit: 20},
		},
		{
			name:      "state is upper cased and city lower cased",
			filter:    Filter{State: "ny", City: "Buffalo"},
			wantWhere: " WHERE state = ? AND lower(city) = ?",
			wantArgs:  []any{"NY", "buffalo"},
		},
		{
			name: "all facets",
			filter: Filter{
				State:           "OH",
				Specialty:       "icu",
				ExperienceLevel: "new-grad",
				EmployerSlug:    "cleveland-clinic",
				JobType:         "travel",
				Remote:          &no,
				SignOnBonus:     &yes,
			},
			wantWhere: " WHERE state = ? AND specialty = ? AND experience_level = ? AND employer_slug = ? AND job_type = ? AND remote = ? AND sign_on_bonus = ?",
			wantArgs:  []any{"OH", "icu", "new-grad", "cleveland-clinic", "travel", false, true},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			where, args := tc.filter.Where()
			assert.Equal(t, tc.wantWhere, where)
			assert.Equal(t, tc.wantArgs, args)
		})
	}
}

func TestFilter_CacheKey(t *testing.T) {
	yes := true
	a := Filter{State: "ny", City: "Buffalo", Limit: 20}
	b := Filter{State: "NY", City: "buffalo", Limit: 20}
	c := Filter{State: "NY", City: "buffalo", Limit: 20, SignOnBonus: &yes}

	assert.Equal(t, a.CacheKey(), b.CacheKey())
	assert.NotEqual(t, b.CacheKey(), c.CacheKey())
	assert.NotEqual(t, b.CacheKey(), Filter{State: "NY", City: "buffalo", Limit: 20, Offset: 20}.CacheKey())
}
