package controller

import (
	"lms_backend/internal/service"
	"lms_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type SubmissionController struct {
	Service *service.SubmissionService
}

func NewSubmissionController(svc *service.SubmissionService) *SubmissionController {
	return &SubmissionController{Service: svc}
}

// @Summary Submit answers to an assessment
// @Description One submission per student per assessment. Objective questions are auto-scored.
// @Tags submissions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.SubmissionRequest true "answers"
// @Success 201 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/submissions [post]
func (c *SubmissionController) Submit(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.SubmissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	submission, err := c.Service.Submit(user.UserID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, submission)
}

// @Summary Attach a file to a submission
// @Tags submissions
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "submission id"
// @Param file formData file true "attachment"
// @Success 200 {object} util.Response
// @Router /api/submissions/{id}/attachment [post]
func (c *SubmissionController) AttachFile(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	url, err := c.Service.AttachFile(
		ctx.Request.Context(),
		user.UserID,
		id,
		fileHeader.Filename,
		file,
		fileHeader.Size,
		fileHeader.Header.Get("Content-Type"),
	)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"url": url})
}

// @Summary Grade a submission
// @Description Only the course's instructor or an admin may grade.
// @Tags submissions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "submission id"
// @Param body body service.GradeRequest true "grade and feedback"
// @Success 200 {object} util.Response
// @Router /api/submissions/{id}/grade [put]
func (c *SubmissionController) Grade(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req service.GradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	submission, err := c.Service.Grade(user, id, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, submission)
}

// @Summary Get a submission
// @Tags submissions
// @Produce json
// @Security BearerAuth
// @Param id path int true "submission id"
// @Success 200 {object} util.Response
// @Router /api/submissions/{id} [get]
func (c *SubmissionController) Get(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	submission, err := c.Service.Get(user, id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, submission)
}

// @Summary List submissions
// @Tags submissions
// @Produce json
// @Security BearerAuth
// @Param assessmentId query int false "filter by assessment"
// @Param status query string false "filter by status" Enums(pending, graded)
// @Param page query int false "page number"
// @Param limit query int false "page size"
// @Success 200 {object} util.Response
// @Router /api/submissions [get]
func (c *SubmissionController) List(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	assessmentID := uint(0)
	if idStr := ctx.Query("assessmentId"); idStr != "" {
		if id, err := strconv.Atoi(idStr); err == nil {
			assessmentID = uint(id)
		}
	}

	page, limit := parsePaging(ctx)
	submissions, total, err := c.Service.List(user, assessmentID, ctx.Query("status"), page, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: submissions, Total: total, Page: page, Limit: limit})
}
