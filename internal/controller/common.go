package controller

import (
	"errors"
	"lms_backend/internal/util"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func parsePaging(ctx *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	return page, limit
}

func parseIDParam(ctx *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || id < 1 {
		util.BadRequest(ctx, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// respondError maps service sentinel errors onto HTTP statuses; anything
// unrecognized is logged and reported as a 500.
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound),
		errors.Is(err, util.ErrUserNotFound),
		errors.Is(err, util.ErrCourseNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrPermissionDenied),
		errors.Is(err, util.ErrNotCourseInstructor):
		util.Forbidden(ctx)
	case errors.Is(err, util.ErrPaymentRequired):
		util.Error(ctx, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, util.ErrAlreadyEnrolled),
		errors.Is(err, util.ErrAlreadySubmitted),
		errors.Is(err, util.ErrProfileExists),
		errors.Is(err, util.ErrEmailRegistered),
		errors.Is(err, util.ErrInsufficientFunds):
		util.Error(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, util.ErrInvalidGrade),
		errors.Is(err, util.ErrInvalidProgress),
		errors.Is(err, util.ErrInvalidAmount),
		errors.Is(err, util.ErrSponsorProfileReq):
		util.BadRequest(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}
