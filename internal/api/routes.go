package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api", handler.AuthRequired)
	api.Post("/insights", handler.PostInsights)
	api.Get("/cycle/stats", handler.CycleStats)
}
