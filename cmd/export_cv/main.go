package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"cv-exporter/internal/model"
	"cv-exporter/internal/usecase"
	infra "cv-exporter/pkg/infrastructure"
)

// Offline export tool: reads a CV JSON file and writes the exported file
// next to it. Usage: export_cv <cv.json> [pdf|docx]
func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: export_cv <cv.json> [pdf|docx]")
		os.Exit(2)
	}

	formatArg := "pdf"
	if len(os.Args) > 2 {
		formatArg = os.Args[2]
	}
	format, err := usecase.ParseFormat(formatArg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "unsupported format %q\n", formatArg)
		os.Exit(2)
	}

	raw, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "read %s: %v\n", os.Args[1], err)
		os.Exit(1)
	}

	var cv model.CV
	if err := json.Unmarshal(raw, &cv); err != nil {
		fmt.Fprintf(os.Stderr, "parse cv: %v\n", err)
		os.Exit(1)
	}

	renderer := infra.NewChromedpRenderer()
	capturer := infra.NewChromedpCapturer()
	service := usecase.NewService(renderer, capturer, slog.Default())

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	res, err := service.Export(ctx, &cv, format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "export failed: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(res.Filename, res.Bytes, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write %s: %v\n", res.Filename, err)
		os.Exit(1)
	}

	fmt.Printf("wrote %s (%d bytes)\n", res.Filename, len(res.Bytes))
}
