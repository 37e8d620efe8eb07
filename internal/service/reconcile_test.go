package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReconcile(t *testing.T) {
	tests := []struct {
		name            string
		apiIDs          []int64
		dbIDs           []int64
		wantNew         []int64
		wantDeactivated []int64
		wantUnchanged   int
	}{
		{
			name:            "partial overlap",
			apiIDs:          []int64{3, 4, 5},
			dbIDs:           []int64{1, 2, 3, 4},
			wantNew:         []int64{5},
			wantDeactivated: []int64{1, 2},
			wantUnchanged:   2,
		},
		{
			name:          "identical sets",
			apiIDs:        []int64{1, 2, 3},
			dbIDs:         []int64{1, 2, 3},
			wantUnchanged: 3,
		},
		{
			name:    "empty database",
			apiIDs:  []int64{7, 8},
			wantNew: []int64{7, 8},
		},
		{
			name:            "empty snapshot deactivates everything",
			dbIDs:           []int64{1, 2},
			wantDeactivated: []int64{1, 2},
		},
		{
			name: "both empty",
		},
		{
			name:            "disjoint sets",
			apiIDs:          []int64{10, 20},
			dbIDs:           []int64{30, 40},
			wantNew:         []int64{10, 20},
			wantDeactivated: []int64{30, 40},
		},
		{
			name:          "duplicate input ids collapse",
			apiIDs:        []int64{1, 1, 2, 2},
			dbIDs:         []int64{2, 2},
			wantNew:       []int64{1},
			wantUnchanged: 1,
		},
		{
			name:            "output is sorted",
			apiIDs:          []int64{9, 3, 7},
			dbIDs:           []int64{8, 2},
			wantNew:         []int64{3, 7, 9},
			wantDeactivated: []int64{2, 8},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Reconcile(tt.apiIDs, tt.dbIDs)

			if tt.wantNew == nil {
				assert.Empty(t, rec.New)
			} else {
				assert.Equal(t, tt.wantNew, rec.New)
			}
			if tt.wantDeactivated == nil {
				assert.Empty(t, rec.Deactivated)
			} else {
				assert.Equal(t, tt.wantDeactivated, rec.Deactivated)
			}
			assert.Equal(t, tt.wantUnchanged, rec.Unchanged)

			// Every distinct db id is either deactivated or unchanged.
			distinct := toSet(tt.dbIDs)
			assert.Equal(t, len(distinct), rec.Unchanged+len(rec.Deactivated))
		})
	}
}
