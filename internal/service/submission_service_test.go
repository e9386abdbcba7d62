package service

import (
	"lms_backend/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func question(id uint, expected string, points int) model.AssessmentQuestion {
	q := model.AssessmentQuestion{Expected: expected, Points: points}
	q.ID = id
	return q
}

func TestScoreAnswers(t *testing.T) {
	questions := []model.AssessmentQuestion{
		question(1, "42", 2),
		question(2, "Paris", 3),
		question(3, "", 5), // manual grading, excluded from auto-score
	}

	tests := []struct {
		name    string
		answers []model.QuestionAnswer
		want    float64
	}{
		{
			name: "all correct",
			answers: []model.QuestionAnswer{
				{QuestionID: 1, Answer: "42"},
				{QuestionID: 2, Answer: "Paris"},
			},
			want: 100,
		},
		{
			name: "case and whitespace insensitive",
			answers: []model.QuestionAnswer{
				{QuestionID: 1, Answer: " 42 "},
				{QuestionID: 2, Answer: "paris"},
			},
			want: 100,
		},
		{
			name: "partial credit by points",
			answers: []model.QuestionAnswer{
				{QuestionID: 1, Answer: "41"},
				{QuestionID: 2, Answer: "Paris"},
			},
			want: 60,
		},
		{
			name:    "no answers",
			answers: nil,
			want:    0,
		},
		{
			name: "unknown question ids ignored",
			answers: []model.QuestionAnswer{
				{QuestionID: 99, Answer: "42"},
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreAnswers(questions, tt.answers)
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}

func TestScoreAnswersNoObjectiveQuestions(t *testing.T) {
	questions := []model.AssessmentQuestion{
		question(1, "", 5),
		question(2, "", 5),
	}
	got := ScoreAnswers(questions, []model.QuestionAnswer{{QuestionID: 1, Answer: "essay"}})
	assert.Zero(t, got)
}

func TestScoreAnswersZeroPointsCountAsOne(t *testing.T) {
	questions := []model.AssessmentQuestion{
		question(1, "a", 0),
		question(2, "b", 0),
	}
	got := ScoreAnswers(questions, []model.QuestionAnswer{
		{QuestionID: 1, Answer: "a"},
	})
	assert.InDelta(t, 50.0, got, 0.001)
}
