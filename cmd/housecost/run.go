package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/Simplici0/housecost/internal/config"
	"github.com/Simplici0/housecost/internal/estimate"
	"github.com/Simplici0/housecost/internal/export"
	"github.com/Simplici0/housecost/internal/kvstore"
	"github.com/Simplici0/housecost/internal/savedconfig"
)

// loadConfiguration picks the worked example, a YAML file or the defaults, in that order.
func loadConfiguration(args []string, example bool) (estimate.Configuration, error) {
	if example {
		return estimate.ExampleConfiguration(), nil
	}
	if len(args) == 1 {
		cfg, err := estimate.LoadFile(args[0])
		if err != nil {
			return estimate.Configuration{}, fmt.Errorf("loading configuration: %w", err)
		}
		return cfg, nil
	}
	return estimate.DefaultConfiguration(), nil
}

// withStore opens the store selected by the environment for the duration of fn.
func withStore(ctx context.Context, fn func(*savedconfig.Store) error) error {
	kv, closer, err := kvstore.Open(ctx, config.Load())
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer closer.Close()

	return fn(savedconfig.New(kv))
}

func runCalc(w io.Writer, cfg estimate.Configuration, asJSON bool) error {
	result := estimate.Compute(cfg)
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	printEstimate(w, cfg, result)
	return nil
}

// runExport renders into memory first so a failed export leaves no partial file.
func runExport(cfg estimate.Configuration, formatName, out string) (string, error) {
	f, err := export.Lookup(formatName)
	if err != nil {
		return "", fmt.Errorf("%w (supported: %v)", err, export.Names())
	}
	if out == "" {
		out = f.Filename()
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, f.Name, estimate.Compute(cfg)); err != nil {
		return "", err
	}
	if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", out, err)
	}
	return out, nil
}

func runSavedList(ctx context.Context, w io.Writer, store *savedconfig.Store) error {
	entries, err := store.Load(ctx)
	if err != nil {
		return err
	}
	printSavedList(w, entries)
	return nil
}

func runSavedShow(ctx context.Context, w io.Writer, store *savedconfig.Store, id string) error {
	entry, err := store.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("saved configuration %s: %w", id, err)
	}

	fmt.Fprintf(w, "%s (%s)\n\n", entry.Name, entry.SavedAt().Format(savedTimeLayout))
	printEstimate(w, entry.Data, estimate.Compute(entry.Data))
	return nil
}

func runSavedSave(ctx context.Context, w io.Writer, store *savedconfig.Store, name string, cfg estimate.Configuration) error {
	entry, err := store.Add(ctx, name, cfg)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "saved %q as %s\n", entry.Name, entry.ID)
	return nil
}

func runSavedDelete(ctx context.Context, w io.Writer, store *savedconfig.Store, id string) error {
	if err := store.Delete(ctx, id); err != nil {
		return fmt.Errorf("saved configuration %s: %w", id, err)
	}
	fmt.Fprintf(w, "deleted %s\n", id)
	return nil
}
