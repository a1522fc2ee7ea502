package controller

import (
	"learnquest_backend/internal/service"
	"learnquest_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type RoadmapController struct {
	RoadmapService *service.RoadmapService
}

func NewRoadmapController(roadmapService *service.RoadmapService) *RoadmapController {
	return &RoadmapController{RoadmapService: roadmapService}
}

// GetRoadmap godoc
// @Summary Full roadmap for the current learner
// @Description All levels and topics with the learner's progress, the current level and the minigame unlock set
// @Tags roadmap
// @Security BearerAuth
// @Produce json
// @Success 200 {object} util.Response{data=model.Roadmap}
// @Router /api/roadmap [get]
func (c *RoadmapController) GetRoadmap(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	roadmap, err := c.RoadmapService.BuildRoadmap(ctx.Request.Context(), user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, roadmap)
}

// GetMinigames godoc
// @Summary Minigame catalog with unlock status
// @Tags roadmap
// @Security BearerAuth
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/minigames [get]
func (c *RoadmapController) GetMinigames(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	roadmap, err := c.RoadmapService.BuildRoadmap(ctx.Request.Context(), user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, roadmap.Minigames)
}
