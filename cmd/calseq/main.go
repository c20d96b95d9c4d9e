package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/obsops/calseq/internal/config"
	"github.com/obsops/calseq/internal/history"
	"github.com/obsops/calseq/internal/keywords"
	"github.com/obsops/calseq/internal/logger"
	"github.com/obsops/calseq/internal/sequence"
	"github.com/obsops/calseq/migrations"
	"github.com/obsops/calseq/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("calseq")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	files := flag.Args()
	if len(files) == 0 {
		log.Fatal().Msg("no sequence files given")
	}

	ctx := log.Logger.WithContext(context.Background())

	var store history.RequestHistory
	if !cfg.History.Disabled {
		db, err := history.NewConnectSQLite(ctx, cfg.History, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error opening history database")
		}
		defer db.Close()

		if err := migrations.Migrate(db.DB); err != nil {
			log.Fatal().Err(err).Msg("error migrating history database")
		}

		store = history.NewRequestHistory(db, log)
	}

	// Every file must load and validate before anything resembling an
	// instrument action is printed.
	reqs := make([]models.ExposureRequest, 0, len(files))
	for _, file := range files {
		req, err := sequence.ParseFile(ctx, file)
		if err != nil {
			log.Fatal().Err(err).Str("file", file).Msg("sequence file rejected")
		}

		log.Info().
			Str("file", file).
			Str("request_id", req.ID.String()).
			Str("octagon_source", req.OctagonSource.String()).
			Float64("exptime", req.Exptime).
			Int("n_exp", req.NExp).
			Msg("sequence file loaded")

		reqs = append(reqs, *req)
	}

	if store != nil {
		for _, req := range reqs {
			if err := store.Save(ctx, req); err != nil {
				log.Fatal().Err(err).Str("request_id", req.ID.String()).Msg("error recording request in history")
			}
		}
	}

	program := keywords.BuildProgram(reqs, keywords.Options{
		Repeats:  cfg.Run.Repeats,
		LampsOff: cfg.Run.LampsOff,
	})
	if err := program.Render(os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("error rendering program")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
