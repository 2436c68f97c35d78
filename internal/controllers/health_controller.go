package controllers

import (
	"net/http"

	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/app"
	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/dtos"
	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/utils"
)

type HealthController struct {
	app *app.App
}

func NewHealthController(a *app.App) *HealthController {
	return &HealthController{app: a}
}

func (c *HealthController) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	if err := c.app.PingStore(r.Context()); err != nil {
		utils.Logger.WithError(err).Error("document store unreachable")
		utils.RespondError(w, http.StatusServiceUnavailable, "Service unhealthy", err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.HealthCheckResponse{Status: "OK"})
}
