package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/ChicagoDave/watersizer/pkg/engine"
	"github.com/ChicagoDave/watersizer/pkg/hydraulics"
	"github.com/ChicagoDave/watersizer/pkg/network"
	"github.com/ChicagoDave/watersizer/pkg/presets"
	"github.com/ChicagoDave/watersizer/pkg/spec"
	"github.com/ChicagoDave/watersizer/pkg/validation"
	"github.com/google/uuid"
)

// loadPresets returns the preset tables: --presets, then WATERSIZER_PRESETS,
// then the built-in defaults.
func loadPresets(opts *options) (*presets.Presets, error) {
	path := opts.presetsPath
	if path == "" && opts.cfg != nil {
		path = opts.cfg.PresetsPath
	}
	if path == "" {
		return presets.Default(), nil
	}

	p, err := presets.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading presets: %w", err)
	}
	slog.Debug("presets loaded", "path", path, "locations", len(p.Locations))
	return p, nil
}

// loadAndValidate loads the scheme and presets and runs schema validation.
func loadAndValidate(opts *options, projectPath string) (*spec.Scheme, *presets.Presets, *validation.Report, error) {
	p, err := loadPresets(opts)
	if err != nil {
		return nil, nil, nil, err
	}

	fileName := ""
	if opts.cfg != nil {
		fileName = opts.cfg.SchemeFile
	}
	scheme, err := spec.LoadProject(projectPath, fileName)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading scheme: %w", err)
	}
	slog.Debug("scheme loaded", "project", projectPath, "name", scheme.Name)

	return scheme, p, validation.ValidateSchema(scheme, p), nil
}

func minPressure(opts *options) float64 {
	if opts.cfg == nil {
		return network.DefaultMinResidualPressure
	}
	return opts.cfg.MinPressure
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func runValidate(w io.Writer, opts *options, projectPath string) error {
	_, _, report, err := loadAndValidate(opts, projectPath)
	if err != nil {
		return err
	}

	if opts.jsonOutput {
		if err := writeJSON(w, report); err != nil {
			return err
		}
	} else {
		printValidationReport(w, report)
	}

	if !report.Valid {
		return fmt.Errorf("scheme has validation errors")
	}
	return nil
}

func runCalculate(w io.Writer, opts *options, projectPath string) error {
	scheme, p, report, err := loadAndValidate(opts, projectPath)
	if err != nil {
		return err
	}
	if !report.Valid {
		printValidationReport(w, report)
		return fmt.Errorf("scheme has validation errors; fix before calculating")
	}

	res := engine.Calculate(scheme, p)
	report.AddWarnings(validation.LevelDesign, "hydraulics", res.Warnings)

	runID := uuid.NewString()
	slog.Info("calculation complete",
		"run_id", runID,
		"scheme", scheme.Name,
		"daily_demand_l", res.TotalDailyDemandL,
		"manometric_head_m", res.Hydraulics.ManometricHead,
		"panels", res.Solar.NumberOfPanels,
	)

	if opts.jsonOutput {
		return writeJSON(w, map[string]any{
			"run_id":     runID,
			"scheme":     scheme.Name,
			"result":     res,
			"validation": report,
		})
	}

	printResult(w, res, p.Velocity)
	if len(report.Warnings) > 0 {
		fmt.Fprintln(w)
		printValidationReport(w, report)
	}
	return nil
}

// runNetwork simulates the network. A nil initialHead falls back to the
// scheme's seed head.
func runNetwork(w io.Writer, opts *options, projectPath string, initialHead *float64) error {
	scheme, p, report, err := loadAndValidate(opts, projectPath)
	if err != nil {
		return err
	}
	if !report.Valid {
		printValidationReport(w, report)
		return fmt.Errorf("scheme has validation errors; fix before simulating")
	}

	head := scheme.SeedHead()
	if initialHead != nil {
		head = *initialHead
	}
	roughness := hydraulics.ResolveRoughness(scheme.Hydraulics, p)

	res := network.SimulateWith(scheme.Network.Segments, head, scheme.Hydraulics.Temperature, roughness, p)
	report.Merge(network.Check(res, minPressure(opts)))

	slog.Info("network simulated",
		"segments", len(res.Segments),
		"initial_head_m", head,
		"final_pressure_m", res.FinalPressure,
	)

	if opts.jsonOutput {
		return writeJSON(w, map[string]any{
			"run_id":       uuid.NewString(),
			"initial_head": head,
			"result":       res,
			"validation":   report,
		})
	}

	printNetwork(w, head, res)
	if len(report.Errors) > 0 || len(report.Warnings) > 0 {
		fmt.Fprintln(w)
		printValidationReport(w, report)
	}
	return nil
}

func runCurve(w io.Writer, opts *options, projectPath string, steps int) error {
	scheme, p, report, err := loadAndValidate(opts, projectPath)
	if err != nil {
		return err
	}
	if !report.Valid {
		printValidationReport(w, report)
		return fmt.Errorf("scheme has validation errors")
	}

	res := engine.Calculate(scheme, p)
	points := hydraulics.SystemCurve(res.Hydraulics, res.GeometricHeight, steps)

	if opts.jsonOutput {
		return writeJSON(w, map[string]any{
			"design_flow_lps": res.Hydraulics.DesignFlowLPS,
			"manometric_head": res.Hydraulics.ManometricHead,
			"points":          points,
		})
	}

	printCurve(w, res.Hydraulics, points)
	return nil
}

func runPresets(w io.Writer, opts *options) error {
	p, err := loadPresets(opts)
	if err != nil {
		return err
	}
	if opts.jsonOutput {
		return writeJSON(w, p)
	}

	data, err := p.Marshal()
	if err != nil {
		return fmt.Errorf("rendering presets: %w", err)
	}
	_, err = w.Write(data)
	return err
}
