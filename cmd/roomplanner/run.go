package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/ChicagoDave/roomplanner/internal/server"
	"github.com/ChicagoDave/roomplanner/pkg/export"
	"github.com/ChicagoDave/roomplanner/pkg/scene2d"
	"github.com/ChicagoDave/roomplanner/pkg/session"
	"github.com/ChicagoDave/roomplanner/pkg/spec"
	"github.com/ChicagoDave/roomplanner/pkg/validation"
)

// loadAndValidate loads the project and runs schema validation.
func loadAndValidate(projectPath string) (*spec.RoomSpec, *validation.Report, error) {
	roomSpec, err := spec.LoadProject(projectPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading project: %w", err)
	}
	return roomSpec, validation.ValidateSchema(roomSpec), nil
}

func runInit(w io.Writer, projectPath string, force bool) error {
	path := filepath.Join(projectPath, spec.ProjectFile)
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists; use --force to overwrite", path)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("checking %s: %w", path, err)
	}
	if err := os.MkdirAll(projectPath, 0o755); err != nil {
		return fmt.Errorf("creating project directory: %w", err)
	}
	if err := spec.Save(path, spec.Default()); err != nil {
		return err
	}
	fmt.Fprintf(w, "Wrote %s\n", path)
	return nil
}

func runValidate(w io.Writer, projectPath string) (bool, error) {
	roomSpec, report, err := loadAndValidate(projectPath)
	if err != nil {
		return false, err
	}
	report.Merge(session.New(roomSpec).Report())
	printValidationReport(w, report)
	return report.Valid, nil
}

// openEditor loads a project and refuses to continue on schema errors.
func openEditor(w io.Writer, projectPath string) (*session.Editor, *spec.RoomSpec, error) {
	roomSpec, report, err := loadAndValidate(projectPath)
	if err != nil {
		return nil, nil, err
	}
	if !report.Valid {
		printValidationReport(w, report)
		return nil, nil, fmt.Errorf("project has validation errors")
	}
	return session.New(roomSpec), roomSpec, nil
}

func runLayout(w io.Writer, projectPath string, save bool) error {
	editor, _, err := openEditor(w, projectPath)
	if err != nil {
		return err
	}
	if save {
		path := filepath.Join(projectPath, spec.ProjectFile)
		if err := spec.Save(path, editor.Spec()); err != nil {
			return err
		}
		slog.Info("layout saved", "path", path)
	}

	output := map[string]any{
		"validation": editor.Report(),
		"scene":      scene2d.Assemble2D(editor.State()),
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

func runExport(w io.Writer, projectPath, formatName, output string) error {
	format, err := export.ParseFormat(formatName)
	if err != nil {
		return err
	}
	editor, _, err := openEditor(w, projectPath)
	if err != nil {
		return err
	}
	if output == "" {
		output = filepath.Join(projectPath, format.Filename())
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating %s: %w", output, err)
	}
	scene := scene2d.Assemble2D(editor.State())
	if err := export.Encode(f, scene, format); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}

	printLayoutSummary(w, scene)
	fmt.Fprintf(w, "\nWrote %s\n", output)
	return nil
}

func runServe(ctx context.Context, projectPath string, port int) error {
	roomSpec, err := spec.LoadProject(projectPath)
	if err != nil {
		return fmt.Errorf("loading project: %w", err)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(session.New(roomSpec), server.Config{
		Port:        port,
		ProjectPath: projectPath,
		Logger:      slog.Default(),
	})
	return srv.Run(ctx)
}
