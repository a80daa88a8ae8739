// controllers/analytics.go
package controllers

import (
	"net/http"

	"bookwise-backend/services"
	"bookwise-backend/utils"

	"github.com/gin-gonic/gin"
)

// AnalyticsController serves the per-business reporting summary.
type AnalyticsController struct {
	analytics *services.AnalyticsService
}

func NewAnalyticsController(analytics *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{analytics: analytics}
}

// GetAnalytics returns appointment counts, rates and revenue figures
func (anc *AnalyticsController) GetAnalytics(c *gin.Context) {
	businessID, ok := businessIDFromContext(c)
	if !ok {
		return
	}

	summary, err := anc.analytics.Summary(businessID)
	if err != nil {
		utils.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
