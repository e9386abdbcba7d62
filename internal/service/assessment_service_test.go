package service

import (
	"testing"

	"lms_backend/internal/model"
	"lms_backend/internal/util"

	"github.com/stretchr/testify/assert"
)

func TestCanAccessAssessment(t *testing.T) {
	assessment := &model.Assessment{
		BaseModel: model.BaseModel{ID: 1},
		CourseID:  10,
		Course: &model.Course{
			BaseModel:    model.BaseModel{ID: 10},
			InstructorID: 2,
		},
	}

	tests := []struct {
		name     string
		claims   *util.Claims
		enrolled bool
		want     bool
	}{
		{
			name:   "admin sees any assessment",
			claims: &util.Claims{UserID: 1, Role: model.Admin},
			want:   true,
		},
		{
			name:   "owning instructor",
			claims: &util.Claims{UserID: 2, Role: model.Instructor},
			want:   true,
		},
		{
			name:   "other instructor denied",
			claims: &util.Claims{UserID: 3, Role: model.Instructor},
			want:   false,
		},
		{
			name:     "enrolled student",
			claims:   &util.Claims{UserID: 4, Role: model.Student},
			enrolled: true,
			want:     true,
		},
		{
			name:   "student without enrollment denied",
			claims: &util.Claims{UserID: 5, Role: model.Student},
			want:   false,
		},
		{
			name:   "sponsor denied",
			claims: &util.Claims{UserID: 6, Role: model.Sponsor},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, canAccessAssessment(tt.claims, assessment, tt.enrolled))
		})
	}
}

func TestCanAccessAssessmentMissingCourse(t *testing.T) {
	// instructor check needs the preloaded course; without it the answer is no
	bare := &model.Assessment{BaseModel: model.BaseModel{ID: 2}, CourseID: 10}
	claims := &util.Claims{UserID: 2, Role: model.Instructor}
	assert.False(t, canAccessAssessment(claims, bare, false))
}
