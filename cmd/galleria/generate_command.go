package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"galleria/internal/config"
	"galleria/internal/gallery"
	"galleria/internal/history"
	"galleria/internal/logging"
	"galleria/internal/render"
)

func newGenerateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Scan the photos tree and write index.html",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(ctx, cmd)
		},
	}
}

func runGenerate(ctx *commandContext, cmd *cobra.Command) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return err
	}

	paths, err := gallery.Resolve(cfg)
	if err != nil {
		return err
	}

	lock := flock.New(filepath.Join(paths.Root, ".galleria.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire generation lock: %w", err)
	}
	if !locked {
		return errors.New("another galleria run is already in progress")
	}
	defer func() { _ = lock.Unlock() }()

	start := time.Now()
	version := start.Format("2006-01-02")
	runID := uuid.NewString()
	log := logger.With(slog.String("run_id", runID))
	log.Info("generating gallery",
		slog.String("photos", paths.PhotosRoot),
		slog.String("output", paths.Output),
		slog.String("version", version),
	)

	model, err := gallery.NewBuilder(cfg, paths, version, log).Build()
	if err != nil {
		return err
	}

	doc, err := render.Document(render.Options{
		Title:              cfg.Site.Title,
		Footer:             cfg.Site.Footer,
		Version:            version,
		GeneratedAt:        start,
		EmbedHeight:        cfg.Slideshow.EmbedHeight,
		AutoAdvanceSeconds: cfg.Slideshow.AutoAdvanceSeconds,
	}, model)
	if err != nil {
		return err
	}

	if err := render.WriteFile(paths.Output, doc); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Generated %s\n", paths.Output)
	for _, sec := range model.Sections {
		fmt.Fprintf(out, "  - %s: %d item(s)\n", sec.Title, len(sec.Items))
	}
	if model.Empty() {
		fmt.Fprintln(out, "No media found. Put files under photos/<section>/ and rerun.")
	}

	recordRun(cmd.Context(), cfg, log, history.Run{
		RunID:        runID,
		GeneratedAt:  start,
		OutputPath:   paths.Output,
		Version:      version,
		SectionCount: len(model.Sections),
		ItemCount:    model.ItemCount(),
		Duration:     time.Since(start),
	})

	log.Info("gallery generated",
		slog.Int("sections", len(model.Sections)),
		slog.Int("items", model.ItemCount()),
		slog.Duration("elapsed", time.Since(start)),
	)
	return nil
}

// recordRun appends the run to the journal. Journal failures never fail a
// generation that already wrote its output.
func recordRun(ctx context.Context, cfg *config.Config, log *slog.Logger, run history.Run) {
	if !cfg.History.Enabled {
		return
	}
	store, err := history.Open(cfg.History.Path)
	if err != nil {
		log.Warn("history journal unavailable", slog.String("path", cfg.History.Path), slog.Any("error", err))
		return
	}
	defer store.Close()
	if err := store.RecordRun(ctx, run); err != nil {
		log.Warn("failed to record run", slog.Any("error", err))
	}
}
