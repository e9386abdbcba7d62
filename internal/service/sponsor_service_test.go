package service

import (
	"testing"

	"lms_backend/internal/model"
	"lms_backend/internal/util"

	"github.com/stretchr/testify/assert"
)

func TestCanViewSponsorship(t *testing.T) {
	tests := []struct {
		name      string
		claims    *util.Claims
		sponsorID uint
		want      bool
	}{
		{
			name:      "admin sees any sponsorship",
			claims:    &util.Claims{UserID: 1, Role: model.Admin},
			sponsorID: 9,
			want:      true,
		},
		{
			name:      "owning sponsor",
			claims:    &util.Claims{UserID: 9, Role: model.Sponsor},
			sponsorID: 9,
			want:      true,
		},
		{
			name:      "other sponsor denied",
			claims:    &util.Claims{UserID: 8, Role: model.Sponsor},
			sponsorID: 9,
			want:      false,
		},
		{
			name:      "student denied even with matching id",
			claims:    &util.Claims{UserID: 9, Role: model.Student},
			sponsorID: 9,
			want:      false,
		},
		{
			name:      "instructor denied",
			claims:    &util.Claims{UserID: 9, Role: model.Instructor},
			sponsorID: 9,
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, canViewSponsorship(tt.claims, tt.sponsorID))
		})
	}
}
