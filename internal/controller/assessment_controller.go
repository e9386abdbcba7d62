package controller

import (
	"lms_backend/internal/service"
	"lms_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type AssessmentController struct {
	Service *service.AssessmentService
}

func NewAssessmentController(svc *service.AssessmentService) *AssessmentController {
	return &AssessmentController{Service: svc}
}

// @Summary Create an assessment
// @Tags assessments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.AssessmentRequest true "assessment fields"
// @Success 201 {object} util.Response
// @Router /api/assessments [post]
func (c *AssessmentController) Create(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.AssessmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	assessment, err := c.Service.Create(user, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, assessment)
}

// @Summary List assessments
// @Description Instructors see their courses' assessments, students their enrolled courses', admins all.
// @Tags assessments
// @Produce json
// @Security BearerAuth
// @Param courseId query int false "filter by course"
// @Param page query int false "page number"
// @Param limit query int false "page size"
// @Success 200 {object} util.Response
// @Router /api/assessments [get]
func (c *AssessmentController) List(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	courseID := uint(0)
	if idStr := ctx.Query("courseId"); idStr != "" {
		if id, err := strconv.Atoi(idStr); err == nil {
			courseID = uint(id)
		}
	}

	page, limit := parsePaging(ctx)
	assessments, total, err := c.Service.List(user, courseID, page, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: assessments, Total: total, Page: page, Limit: limit})
}

// @Summary Get an assessment with its questions
// @Tags assessments
// @Produce json
// @Security BearerAuth
// @Param id path int true "assessment id"
// @Success 200 {object} util.Response
// @Router /api/assessments/{id} [get]
func (c *AssessmentController) Get(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	assessment, questions, err := c.Service.Get(user, id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"assessment": assessment, "questions": questions})
}

// @Summary Update an assessment
// @Tags assessments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "assessment id"
// @Param body body service.AssessmentRequest true "assessment fields"
// @Success 200 {object} util.Response
// @Router /api/assessments/{id} [put]
func (c *AssessmentController) Update(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req service.AssessmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	assessment, err := c.Service.Update(user, id, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, assessment)
}

// @Summary Delete an assessment
// @Tags assessments
// @Produce json
// @Security BearerAuth
// @Param id path int true "assessment id"
// @Success 200 {object} util.Response
// @Router /api/assessments/{id} [delete]
func (c *AssessmentController) Delete(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.Service.Delete(user, id); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// @Summary Add a question to an assessment
// @Tags assessments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "assessment id"
// @Param body body service.AssessmentQuestionRequest true "question fields"
// @Success 201 {object} util.Response
// @Router /api/assessments/{id}/questions [post]
func (c *AssessmentController) AddQuestion(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req service.AssessmentQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.Service.AddQuestion(user, id, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, question)
}

// @Summary Update a question
// @Tags assessments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "question id"
// @Param body body service.AssessmentQuestionRequest true "question fields"
// @Success 200 {object} util.Response
// @Router /api/assessments/questions/{id} [put]
func (c *AssessmentController) UpdateQuestion(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req service.AssessmentQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.Service.UpdateQuestion(user, id, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, question)
}

// @Summary Delete a question
// @Tags assessments
// @Produce json
// @Security BearerAuth
// @Param id path int true "question id"
// @Success 200 {object} util.Response
// @Router /api/assessments/questions/{id} [delete]
func (c *AssessmentController) DeleteQuestion(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.Service.DeleteQuestion(user, id); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
