package handler

import (
	"net/http"

	"careerboost-api/pkg/database"
	"careerboost-api/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// HealthCheck handles the health check endpoint
func HealthCheck(c echo.Context) error {
	log := logger.FromContext(c)

	response := echo.Map{
		"status":  "ok",
		"message": "CareerBoost API is running",
	}

	// Check database connection if requested
	if c.QueryParam("check") == "db" {
		db := database.GetDB()
		if db == nil {
			// In-memory fallback: nothing to ping
			response["db_status"] = "memory"
			return c.JSON(http.StatusOK, response)
		}

		sqlDB, err := db.DB()
		if err != nil {
			log.Error("Database connection error", zap.Error(err))
			response["status"] = "error"
			response["db_status"] = "error"
			return c.JSON(http.StatusInternalServerError, response)
		}

		if err := sqlDB.Ping(); err != nil {
			log.Error("Database ping error", zap.Error(err))
			response["status"] = "error"
			response["db_status"] = "error"
			return c.JSON(http.StatusInternalServerError, response)
		}

		response["db_status"] = "ok"
	}

	return c.JSON(http.StatusOK, response)
}
