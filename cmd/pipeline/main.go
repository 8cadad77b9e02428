// Command pipeline fetches the raw festivals dataset, cleans it and
// writes the result as CSV.
package main

import (
	"context"
	"flag"
	"os"

	_ "github.com/joho/godotenv/autoload" // Autoload .env file.
	"go.uber.org/zap"

	"festivalapi/internal/config"
	"festivalapi/internal/logger"
	"festivalapi/internal/pipeline"
)

func main() {
	configPath := flag.String("config", "./cmd/app/config.yml", "path to config file")
	output := flag.String("output", "", "output CSV path (defaults to config)")
	flag.Parse()

	conf, err := config.Load(*configPath)
	if err != nil {
		panic(err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		panic(err)
	}

	if apiKey := os.Getenv("API_KEY"); apiKey != "" {
		conf.Pipeline.APIKey = apiKey
	}
	if *output == "" {
		*output = conf.Pipeline.OutputCSV
	}

	ctx := context.Background()

	extractor := pipeline.NewExtractor(conf.Pipeline.CatalogBaseURL, conf.Pipeline.APIKey)
	records, err := extractor.FetchDataset(ctx, conf.Pipeline.DatasetID)
	if err != nil {
		zap.L().Fatal("dataset extraction failed", zap.Error(err))
	}

	cleaner := pipeline.NewCleaner(pipeline.NewGeocoder(conf.Pipeline.NominatimBaseURL))
	rows := cleaner.CleanAll(ctx, records)

	if err = pipeline.WriteCSV(*output, rows); err != nil {
		zap.L().Fatal("failed to write CSV", zap.Error(err))
	}

	zap.L().Info("cleaned dataset written", zap.String("file", *output), zap.Int("rows", len(rows)))
}
