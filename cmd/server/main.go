package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	httpadapter "cv-exporter/internal/adapter/http"
	repo "cv-exporter/internal/adapter/repository"
	"cv-exporter/internal/infrastructure/migration"
	"cv-exporter/internal/usecase"
	infra "cv-exporter/pkg/infrastructure"

	"github.com/gofiber/fiber/v2"
)

func main() {
	ctx := context.Background()

	// infra setup
	pool, err := infra.NewCVsPool(ctx)
	if err != nil {
		log.Printf("warning: cvs DB not available: %v", err)
	}
	if pool != nil {
		if err := migration.RunMigrations(ctx, pool); err != nil {
			log.Printf("warning: migrations failed: %v", err)
		}
	}

	renderer := infra.NewChromedpRenderer()
	capturer := infra.NewChromedpCapturer()
	service := usecase.NewService(renderer, capturer, slog.Default())

	cvRepo := repo.NewCVRepo(pool)

	app := fiber.New(fiber.Config{
		BodyLimit: 4 * 1024 * 1024,
	})

	h := httpadapter.NewHandler(service, cvRepo)
	app.Post("/cvs", h.SaveCV)
	app.Post("/cvs/export", h.Export)
	app.Get("/cvs/:id/export", h.ExportStored)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
