package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/ChicagoDave/roomplanner/pkg/scene2d"
	"github.com/ChicagoDave/roomplanner/pkg/validation"
)

func printValidationReport(w io.Writer, r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Fprintf(w, "ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			printResult(w, e)
		}
		fmt.Fprintln(w)
	}

	if len(r.Warnings) > 0 {
		fmt.Fprintf(w, "WARNINGS (%d):\n", len(r.Warnings))
		for _, e := range r.Warnings {
			printResult(w, e)
		}
		fmt.Fprintln(w)
	}

	if len(r.Info) > 0 {
		fmt.Fprintf(w, "INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Fprintf(w, "  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Fprintln(w)
	}

	if r.Valid {
		fmt.Fprintf(w, "Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Fprintf(w, "Result: INVALID (%s)\n", r.Summary)
	}
}

func printResult(w io.Writer, res validation.Result) {
	fmt.Fprintf(w, "  [%s] %s\n", res.Level, res.Message)
	if res.Field != "" && res.ActualValue != nil {
		fmt.Fprintf(w, "    -> %s = %v\n", res.Field, res.ActualValue)
	}
	if res.Expected != "" {
		fmt.Fprintf(w, "    expected: %s\n", res.Expected)
	}
	for _, s := range res.Suggestions {
		fmt.Fprintf(w, "    * %s\n", s)
	}
}

func printLayoutSummary(w io.Writer, scene *scene2d.Scene2D) {
	m := scene.Metadata
	fmt.Fprintf(w, "Room %.0f x %.0f %s (%.0f x %.0f px)\n", m.Width, m.Length, m.Unit, scene.Room[0], scene.Room[1])
	fmt.Fprintf(w, "Racks placed: %d of %d\n", m.RacksPlaced, m.RacksRequested)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%-10s %10s %10s\n", "Object", "X", "Y")
	fmt.Fprintf(w, "%-10s %10s %10s\n", "----------", "----------", "----------")
	for _, r := range scene.Racks {
		fmt.Fprintf(w, "%-10s %10.1f %10.1f\n", strings.ReplaceAll(r.Label, "\n", " "), r.Position[0], r.Position[1])
	}
	for _, ac := range scene.ACUnits {
		fmt.Fprintf(w, "%-10s %10.1f %10.1f\n", "AC "+ac.Side, ac.Position[0], ac.Position[1])
	}
}
