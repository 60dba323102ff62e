package handlers

import (
	portssvc "github.com/SscSPs/fin_automation_app/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// writeMiddleware guards every route that changes the ledger or the expense list.
func RegisterRoutes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
	writeMiddleware ...gin.HandlerFunc,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIRoutes(r, services, writeMiddleware)
}

// setupAPIRoutes configures the /api group and delegates to specific entity route registrations
func setupAPIRoutes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
	writeMiddleware []gin.HandlerFunc,
) {
	api := r.Group("/api")

	registerAccountRoutes(api, services.Account)
	registerJournalRoutes(api, services.Journal, writeMiddleware...)
	registerExpenseRoutes(api, services.Expense, writeMiddleware...)
	registerReportingRoutes(api, services.Reporting)
}

// guarded returns a fresh handler chain of middleware followed by h.
func guarded(middleware []gin.HandlerFunc, h gin.HandlerFunc) []gin.HandlerFunc {
	chain := make([]gin.HandlerFunc, 0, len(middleware)+1)
	chain = append(chain, middleware...)
	return append(chain, h)
}
