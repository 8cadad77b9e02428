// Command loader inserts a cleaned CSV dataset into the database.
package main

import (
	"context"
	"flag"
	"os"

	_ "github.com/joho/godotenv/autoload" // Autoload .env file.
	"go.uber.org/zap"
	"gorm.io/gorm"

	"festivalapi/internal/config"
	"festivalapi/internal/db"
	"festivalapi/internal/loader"
	"festivalapi/internal/logger"
	"festivalapi/internal/repository"
	"festivalapi/internal/repository/dao"
)

func main() {
	configPath := flag.String("config", "./cmd/app/config.yml", "path to config file")
	csvPath := flag.String("csv", "", "cleaned CSV path (defaults to config)")
	sqlitePath := flag.String("sqlite", "", "load into a sqlite file instead of postgres")
	flag.Parse()

	conf, err := config.Load(*configPath)
	if err != nil {
		panic(err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		panic(err)
	}

	if *csvPath == "" {
		*csvPath = conf.Pipeline.OutputCSV
	}

	var database *gorm.DB
	switch {
	case *sqlitePath != "":
		database, err = db.OpenSQLite(*sqlitePath)
	case os.Getenv("DATABASE_URL") != "":
		database, err = db.OpenPostgresWithURL(os.Getenv("DATABASE_URL"))
	default:
		database, err = db.OpenPostgres(conf.Postgres)
	}
	if err != nil {
		zap.L().Fatal("failed to open database", zap.Error(err))
	}

	if err = dao.InitTables(database); err != nil {
		zap.L().Fatal("failed to migrate tables", zap.Error(err))
	}

	repo := repository.NewFestivalRepository(dao.NewFestivalDAO(database))

	count, err := loader.New(repo).LoadCSV(context.Background(), *csvPath)
	if err != nil {
		zap.L().Fatal("load failed, transaction rolled back", zap.Error(err))
	}

	zap.L().Info("load complete", zap.Int("festivals", count))
}
