package main

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"refmap/internal/config"
	"refmap/internal/geo"
	"refmap/internal/loader"
	"refmap/internal/regional"
	"refmap/internal/render"
)

var logger *zap.Logger

func main() {
	var err error
	logger, err = zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := config.Load("refmap.yaml")
	if err != nil {
		fatalf("failed to load configuration: %v", err)
	}

	datasetStart := time.Now()
	ds, err := loader.LoadAll(cfg.Data.Referendum, cfg.Data.Regions, cfg.Data.Departments)
	if err != nil {
		fatalf("failed to load datasets: %v", err)
	}
	fmt.Printf("Datasets loaded in %v (%d ballot rows, %d regions, %d departments)\n",
		time.Since(datasetStart).Truncate(time.Millisecond),
		len(ds.Referendum), len(ds.Regions), len(ds.Departments))

	geography := regional.JoinGeography(ds.Regions, ds.Departments)
	results, drops := regional.AggregateByRegion(ds.Referendum, geography)
	logger.Info("aggregated referendum results",
		zap.Int("regions", len(results)),
		zap.Int("dropped_overseas", drops.Overseas),
		zap.Int("dropped_unmatched", drops.Unmatched))

	printResults(os.Stdout, results)

	boundaries, err := geo.LoadBoundaries(cfg.Data.Boundaries, cfg.Map.CodeField, cfg.Map.NameField)
	if err != nil {
		fatalf("failed to load region boundaries: %v", err)
	}

	rows, err := render.Choropleth(results, boundaries, render.Options{
		Title:        cfg.Map.Title,
		LegendTitle:  cfg.Map.LegendTitle,
		OutputPath:   cfg.Map.Output,
		WidthInches:  cfg.Map.WidthInches,
		HeightInches: cfg.Map.HeightInches,
	})
	if err != nil {
		fatalf("failed to render map: %v", err)
	}
	logger.Info("map rendered",
		zap.String("output", cfg.Map.Output),
		zap.Int("boundaries", len(rows)))

	if len(os.Args) > 1 && os.Args[1] == "browse" {
		browseRegions(results)
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
