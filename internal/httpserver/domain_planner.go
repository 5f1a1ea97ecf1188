package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	plannerHTTP "voice-sprint-planner/internal/planner/delivery/http"
)

// setupPlannerDomain registers the planner domain routes.
func (srv HTTPServer) setupPlannerDomain(ctx context.Context, api *gin.RouterGroup) {
	h := plannerHTTP.New(srv.l, srv.plannerUC)
	plannerHTTP.RegisterRoutes(api.Group("/planner"), h)

	srv.l.Infof(ctx, "Planner domain registered")
}
