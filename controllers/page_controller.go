package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type AboutProps struct {
	AppName     string `json:"app_name"`
	Description string `json:"description"`
}

type HealthResponse struct {
	Status    string `json:"status" example:"ok"`
	Timestamp string `json:"timestamp" example:"2024-01-01T12:00:00Z"`
}

// PageController serves the routes that need no database.
type PageController struct {
	appName string
	now     func() time.Time
}

func NewPageController(appName string) *PageController {
	return &PageController{appName: appName, now: time.Now}
}

// About godoc
// @Summary  About page
// @Tags     pages
// @Produce  json
// @Success  200  {object}  Page{props=AboutProps}
// @Router   /about [get]
func (pc *PageController) About(c *gin.Context) {
	renderPage(c, "about", AboutProps{
		AppName:     pc.appName,
		Description: pc.appName + " publishes articles on technology, design and culture.",
	})
}

// HealthCheck godoc
// @Summary  Liveness probe
// @Tags     system
// @Produce  json
// @Success  200  {object}  HealthResponse
// @Router   /health-check [get]
func (pc *PageController) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: pc.now().UTC().Format(time.RFC3339),
	})
}
