package handler

import (
	"careerboost-api/internal/ai"
	"careerboost-api/internal/storage"
	"careerboost-api/pkg/config"
)

var (
	store    storage.Storage
	aiClient *ai.Client
)

// Init wires the handlers to a storage backend and the AI provider client.
// Must be called before any route is served.
func Init(s storage.Storage, cfg *config.Config) {
	store = s
	aiClient = ai.NewClient(&cfg.AI)
}
