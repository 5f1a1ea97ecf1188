package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	intakeHTTP "voice-sprint-planner/internal/intake/delivery/http"
)

// setupIntakeDomain registers the intake domain routes. The domain is
// optional: without a configured usecase the routes are skipped.
func (srv HTTPServer) setupIntakeDomain(ctx context.Context, api *gin.RouterGroup) {
	if srv.intakeUC == nil {
		srv.l.Infof(ctx, "Intake usecase not configured, skipping intake routes")
		return
	}

	h := intakeHTTP.New(srv.l, srv.intakeUC)
	intakeHTTP.RegisterRoutes(api.Group("/intake"), h)

	srv.l.Infof(ctx, "Intake domain registered")
}
