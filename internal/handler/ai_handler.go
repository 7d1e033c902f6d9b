package handler

import (
	"net/http"
	"time"

	"careerboost-api/pkg/logger"
	"careerboost-api/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// GenerateText proxies a prompt to the generative-text provider and returns
// the produced text verbatim. No retries and no streaming.
func GenerateText(c echo.Context) error {
	log := logger.FromContext(c)

	var req struct {
		Prompt string `json:"prompt"`
	}
	if err := c.Bind(&req); err != nil || req.Prompt == "" {
		prometheus.AIGenerationCounter.WithLabelValues("error").Inc()
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Prompt is required"})
	}

	if !aiClient.Configured() {
		prometheus.AIGenerationCounter.WithLabelValues("unconfigured").Inc()
		log.Error("AI generation requested but no API key is configured")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Google AI API key not configured"})
	}

	start := time.Now()
	text, err := aiClient.Generate(req.Prompt)
	prometheus.AIGenerationDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		prometheus.AIGenerationCounter.WithLabelValues("error").Inc()
		log.Error("AI generation failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to generate AI response"})
	}

	prometheus.AIGenerationCounter.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, echo.Map{"text": text})
}
