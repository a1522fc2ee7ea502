package controller

import (
	"errors"
	"net/http"
	"strconv"

	"learnquest_backend/internal/service"
	"learnquest_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ClassController struct {
	ClassService    *service.ClassService
	ActivityService *service.ActivityService
}

func NewClassController(classService *service.ClassService, activityService *service.ActivityService) *ClassController {
	return &ClassController{
		ClassService:    classService,
		ActivityService: activityService,
	}
}

func respondClassError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrClassNotFound), errors.Is(err, util.ErrInvalidJoinCode):
		util.Error(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, util.ErrNotClassTutor):
		util.Error(ctx, http.StatusForbidden, err.Error())
	case errors.Is(err, util.ErrAlreadyInClass):
		util.Error(ctx, http.StatusBadRequest, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}

type CreateClassRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateClass godoc
// @Summary Create a class
// @Tags classes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body CreateClassRequest true "class"
// @Success 201 {object} util.Response
// @Router /api/tutor/classes [post]
func (c *ClassController) CreateClass(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req CreateClassRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	class, err := c.ClassService.CreateClass(user.UserID, req.Name)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, class)
}

// ListClasses godoc
// @Summary List the tutor's classes
// @Tags classes
// @Security BearerAuth
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/tutor/classes [get]
func (c *ClassController) ListClasses(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	classes, err := c.ClassService.ListClasses(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, classes)
}

type JoinClassRequest struct {
	JoinCode string `json:"joinCode" binding:"required"`
}

// JoinClass godoc
// @Summary Join a class by code
// @Tags classes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body JoinClassRequest true "join code"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/classes/join [post]
func (c *ClassController) JoinClass(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req JoinClassRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	class, err := c.ClassService.JoinClass(user.UserID, req.JoinCode)
	if err != nil {
		respondClassError(ctx, err)
		return
	}
	util.Success(ctx, class)
}

// ClassStudents godoc
// @Summary Per-student progress for a class
// @Tags classes
// @Security BearerAuth
// @Produce json
// @Param id path int true "class id"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Router /api/tutor/classes/{id}/students [get]
func (c *ClassController) ClassStudents(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	classID := util.MustParseUint(ctx.Param("id"))
	if classID == 0 {
		util.BadRequest(ctx, "invalid class id")
		return
	}

	summaries, err := c.ClassService.ClassStudents(user.UserID, classID)
	if err != nil {
		respondClassError(ctx, err)
		return
	}
	util.Success(ctx, summaries)
}

// ClassActivity godoc
// @Summary Recent activity of a class
// @Tags classes
// @Security BearerAuth
// @Produce json
// @Param id path int true "class id"
// @Param limit query int false "max entries" default(50)
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Router /api/tutor/classes/{id}/activity [get]
func (c *ClassController) ClassActivity(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	classID := util.MustParseUint(ctx.Param("id"))
	if classID == 0 {
		util.BadRequest(ctx, "invalid class id")
		return
	}

	limit := 50
	if l := ctx.Query("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 {
			limit = v
		}
	}

	entries, err := c.ActivityService.ListClassActivity(user.UserID, classID, limit)
	if err != nil {
		respondClassError(ctx, err)
		return
	}
	util.Success(ctx, entries)
}
