package util

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailRegistered     = errors.New("email already registered")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrCourseNotFound      = errors.New("course not found")
	ErrAlreadyEnrolled     = errors.New("already enrolled in this course")
	ErrPaymentRequired     = errors.New("paid course requires payment or sponsorship")
	ErrAlreadySubmitted    = errors.New("assessment already submitted")
	ErrInvalidGrade        = errors.New("grade must be between 0 and 100")
	ErrInvalidProgress     = errors.New("progress must be between 0 and 100")
	ErrInvalidAmount       = errors.New("amount must be a positive number")
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrSponsorProfileReq   = errors.New("a sponsor profile is required")
	ErrProfileExists       = errors.New("sponsor profile already exists")
	ErrNotCourseInstructor = errors.New("not the instructor of this course")
)
