package main

import (
	"context"
	"flag"
	"log"
	"time"

	"matchfeed-be/internal/bootstrap"
	"matchfeed-be/internal/config"
	"matchfeed-be/internal/pkg/logger"
	"matchfeed-be/internal/service"
	"matchfeed-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
)

// Offline jobs. The container wiring is identical to the REST server,
// so a batch run scores and presorts exactly what production serves.
func main() {
	job := flag.String("job", "match-scores", "job to run: match-scores | presort | compatibility")
	user := flag.String("user", "", "limit the job to one user id (optional)")
	batchSize := flag.Int("batch-size", 0, "candidates per scoring batch (0 = default)")
	pauseMs := flag.Int("pause-ms", -1, "pause between batches in ms (-1 = default)")
	version := flag.String("version", "", "algorithm version tag (empty = default)")
	flag.Parse()

	cfg := config.Load()

	gormDB, err := database.NewGormDB(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)
	ctx := context.Background()

	// File-only logger keeps job details out of the progress output.
	jobLog := logger.NewIsolatedLogger("logs/batch.log")
	defer jobLog.Sync()
	jobLog.Info("batch", "job started", map[string]interface{}{
		"job":  *job,
		"user": *user,
	})

	var userId uuid.UUID
	if *user != "" {
		userId, err = uuid.Parse(*user)
		if err != nil {
			log.Fatalf("Invalid -user id: %v", err)
		}
	}

	opts := service.RecomputeOptions{
		BatchSize: *batchSize,
		Version:   *version,
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = cfg.Match.BatchSize
	}
	if *pauseMs >= 0 {
		opts.Pause = time.Duration(*pauseMs) * time.Millisecond
	} else {
		opts.Pause = time.Duration(cfg.Match.BatchPauseMs) * time.Millisecond
	}
	if opts.Version == "" {
		opts.Version = cfg.Match.AlgorithmVersion
	}

	started := time.Now()

	switch *job {
	case "match-scores":
		color.Cyan("🚀 Recomputing match scores\n")
		if userId != uuid.Nil {
			written, err := container.MatchService.RecomputeForViewer(ctx, userId, opts)
			if err != nil {
				color.Red("Failed: %v", err)
				log.Fatal(err)
			}
			color.Green("Wrote %d scores for viewer %s", written, userId)
		} else {
			processed, skipped, err := container.MatchService.RecomputeAll(ctx, opts)
			if err != nil {
				color.Red("Failed: %v", err)
				log.Fatal(err)
			}
			color.Green("Processed %d viewers (%d skipped)", processed, skipped)
		}

	case "presort":
		if userId == uuid.Nil {
			log.Fatal("presort job requires -user")
		}
		color.Cyan("🚀 Rebuilding presorted feed segments\n")
		if err := container.PresortService.RecomputeForUser(ctx, userId); err != nil {
			color.Red("Failed: %v", err)
			log.Fatal(err)
		}
		color.Green("Segments rebuilt for user %s", userId)

	case "compatibility":
		if userId == uuid.Nil {
			log.Fatal("compatibility job requires -user")
		}
		color.Cyan("🚀 Refreshing compatibility summaries\n")
		written, err := container.CompatibilityService.RefreshForViewer(ctx, userId)
		if err != nil {
			color.Red("Failed: %v", err)
			log.Fatal(err)
		}
		color.Green("Wrote %d summaries for viewer %s", written, userId)

	default:
		log.Fatalf("Unknown -job %q", *job)
	}

	jobLog.Info("batch", "job finished", map[string]interface{}{
		"job":      *job,
		"duration": time.Since(started).String(),
	})
	color.Yellow("Done in %s", time.Since(started).Round(time.Millisecond))
}
