package controller

import (
	"lms_backend/internal/model"
	"lms_backend/internal/service"
	"lms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Service *service.UserService
}

func NewUserController(svc *service.UserService) *UserController {
	return &UserController{Service: svc}
}

type UpdateProfileRequest struct {
	Name string `json:"name"`
}

type SetVerifiedRequest struct {
	Verified bool `json:"verified"`
}

// @Summary Update own profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body UpdateProfileRequest true "profile fields"
// @Success 200 {object} util.Response
// @Router /api/profile [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	updated, err := c.Service.UpdateProfile(user.UserID, req.Name)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, updated)
}

// @Summary Upload an avatar image
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "avatar image"
// @Success 200 {object} util.Response
// @Router /api/profile/avatar [post]
func (c *UserController) UploadAvatar(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
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

	url, err := c.Service.UploadAvatar(
		ctx.Request.Context(),
		user.UserID,
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

// @Summary List users, optionally by role
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param role query string false "role filter" Enums(admin, instructor, student, sponsor)
// @Param page query int false "page number"
// @Param limit query int false "page size"
// @Success 200 {object} util.Response
// @Router /api/admin/users [get]
func (c *UserController) List(ctx *gin.Context) {
	page, limit := parsePaging(ctx)
	role := model.UserRole(ctx.Query("role"))

	users, total, err := c.Service.List(role, page, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: users, Total: total, Page: page, Limit: limit})
}

// @Summary Mark a user account verified
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "user id"
// @Param body body SetVerifiedRequest true "verification flag"
// @Success 200 {object} util.Response
// @Router /api/admin/users/{id}/verify [put]
func (c *UserController) SetVerified(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req SetVerifiedRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.Service.SetVerified(id, req.Verified); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
