package service

import (
	"lms_backend/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAverageProgress(t *testing.T) {
	tests := []struct {
		name        string
		enrollments []model.Enrollment
		want        string
	}{
		{
			name:        "empty",
			enrollments: nil,
			want:        "0",
		},
		{
			name: "single",
			enrollments: []model.Enrollment{
				{Progress: 50},
			},
			want: "50",
		},
		{
			name: "mixed",
			enrollments: []model.Enrollment{
				{Progress: 100},
				{Progress: 50},
				{Progress: 0},
			},
			want: "50",
		},
		{
			name: "fractional",
			enrollments: []model.Enrollment{
				{Progress: 33},
				{Progress: 34},
			},
			want: "33.5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AverageProgress(tt.enrollments)
			assert.Equal(t, tt.want, got.String())
		})
	}
}
