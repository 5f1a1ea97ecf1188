package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.POST("/bootstrap", h.Bootstrap)
	rg.GET("/agenda", h.Agenda)
	rg.POST("/sprint", h.SelectSprint)
	rg.POST("/person", h.SelectPerson)
	rg.GET("/sprints", h.Sprints)
	rg.GET("/members", h.Members)

	tasks := rg.Group("/tasks")
	{
		tasks.POST("/:id/move", h.MoveTask)
		tasks.PUT("/:id", h.SaveTask)
		tasks.POST("/:id/advance", h.AdvanceTask)
	}
}
