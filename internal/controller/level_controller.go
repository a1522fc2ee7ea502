package controller

import (
	"errors"
	"net/http"

	"learnquest_backend/internal/service"
	"learnquest_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LevelController struct {
	ProgressService *service.ProgressService
}

func NewLevelController(progressService *service.ProgressService) *LevelController {
	return &LevelController{ProgressService: progressService}
}

// respondProgressError maps the core error taxonomy onto HTTP statuses.
func respondProgressError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrLevelNotFound), errors.Is(err, util.ErrQuestionNotFound):
		util.Error(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, util.ErrLevelNotAccessible):
		util.Error(ctx, http.StatusForbidden, err.Error())
	case errors.Is(err, util.ErrQuestionNotInLevel), errors.Is(err, util.ErrDuplicateAnswer):
		util.Error(ctx, http.StatusBadRequest, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}

// InitLevel godoc
// @Summary Open a level
// @Description Questions plus the learner's progress and any in-progress answers
// @Tags levels
// @Security BearerAuth
// @Produce json
// @Param id path int true "level id"
// @Success 200 {object} util.Response{data=model.LevelSession}
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/levels/{id}/init [get]
func (c *LevelController) InitLevel(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	levelID := util.MustParseUint(ctx.Param("id"))
	if levelID == 0 {
		util.BadRequest(ctx, "invalid level id")
		return
	}

	session, err := c.ProgressService.InitLevel(user.UserID, levelID)
	if err != nil {
		respondProgressError(ctx, err)
		return
	}
	util.Success(ctx, session)
}

type SubmitAnswerRequest struct {
	QuestionID     uint `json:"questionId" binding:"required"`
	SelectedOption *int `json:"selectedOption" binding:"required"`
}

// SubmitAnswer godoc
// @Summary Record one answer of the current attempt
// @Tags levels
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "level id"
// @Param body body SubmitAnswerRequest true "answer"
// @Success 200 {object} util.Response{data=model.AnswerResult}
// @Failure 400 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/levels/{id}/answer [post]
func (c *LevelController) SubmitAnswer(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	levelID := util.MustParseUint(ctx.Param("id"))
	if levelID == 0 {
		util.BadRequest(ctx, "invalid level id")
		return
	}

	var req SubmitAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.ProgressService.SubmitAnswer(ctx.Request.Context(), user.UserID, levelID, req.QuestionID, *req.SelectedOption)
	if err != nil {
		respondProgressError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// CompleteLevel godoc
// @Summary Finalize the current attempt
// @Description Scores the attempt, applies the best-ever update and clears the in-progress answers
// @Tags levels
// @Security BearerAuth
// @Produce json
// @Param id path int true "level id"
// @Success 200 {object} util.Response{data=model.AttemptResult}
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/levels/{id}/complete [post]
func (c *LevelController) CompleteLevel(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	levelID := util.MustParseUint(ctx.Param("id"))
	if levelID == 0 {
		util.BadRequest(ctx, "invalid level id")
		return
	}

	result, err := c.ProgressService.CompleteLevel(ctx.Request.Context(), user.UserID, levelID)
	if err != nil {
		respondProgressError(ctx, err)
		return
	}
	util.Success(ctx, result)
}
