package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"rental-marketplace/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

func main() {
	dir := flag.String("dir", "migrations", "migration directory")
	atlasBin := flag.String("atlas", "atlas", "path to the atlas binary")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall migration timeout")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := run(*dir, *atlasBin, *timeout, logger); err != nil {
		logger.Error("migration failed", "error", err)
		os.Exit(1)
	}
}

func run(dir, atlasBin string, timeout time.Duration, logger *slog.Logger) error {
	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		return err
	}

	workdir, err := atlasexec.NewWorkingDir(atlasexec.WithMigrations(os.DirFS(dir)))
	if err != nil {
		return err
	}
	defer workdir.Close()

	client, err := atlasexec.NewClient(workdir.Path(), atlasBin)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL: dbCfg.BuildDSN(),
	})
	if err != nil {
		return err
	}

	logger.Info("migrations applied",
		"applied", len(res.Applied),
		"current", res.Current,
		"target", res.Target,
		"database", dbCfg.DBName)
	return nil
}
