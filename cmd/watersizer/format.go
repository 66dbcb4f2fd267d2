package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/ChicagoDave/watersizer/pkg/engine"
	"github.com/ChicagoDave/watersizer/pkg/hydraulics"
	"github.com/ChicagoDave/watersizer/pkg/network"
	"github.com/ChicagoDave/watersizer/pkg/presets"
	"github.com/ChicagoDave/watersizer/pkg/solar"
	"github.com/ChicagoDave/watersizer/pkg/validation"
	"github.com/charmbracelet/lipgloss"
)

var (
	colorOK      = lipgloss.Color("#10B981")
	colorWarning = lipgloss.Color("#F59E0B")
	colorDanger  = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0EA5E9"))
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	okStyle      = lipgloss.NewStyle().Bold(true).Foreground(colorOK)
	warningStyle = lipgloss.NewStyle().Bold(true).Foreground(colorWarning)
	dangerStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorDanger)
)

func heading(w io.Writer, title string) {
	fmt.Fprintln(w, titleStyle.Render(title))
	fmt.Fprintln(w, mutedStyle.Render(strings.Repeat("=", len(title))))
}

func printValidationReport(w io.Writer, r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Fprintln(w, dangerStyle.Render(fmt.Sprintf("ERRORS (%d):", len(r.Errors))))
		for _, e := range r.Errors {
			printFinding(w, e)
		}
		fmt.Fprintln(w)
	}

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, warningStyle.Render(fmt.Sprintf("WARNINGS (%d):", len(r.Warnings))))
		for _, wr := range r.Warnings {
			printFinding(w, wr)
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
		fmt.Fprintf(w, "Result: %s (%s)\n", okStyle.Render("VALID"), r.Summary)
	} else {
		fmt.Fprintf(w, "Result: %s (%s)\n", dangerStyle.Render("INVALID"), r.Summary)
	}
}

func printFinding(w io.Writer, f validation.Result) {
	fmt.Fprintf(w, "  [%s] %s\n", f.Level, f.Message)
	if f.SpecPath != "" && f.ActualValue != nil {
		fmt.Fprintf(w, "    -> %s = %v\n", f.SpecPath, f.ActualValue)
	}
	if f.Expected != "" {
		fmt.Fprintf(w, "    expected: %s\n", f.Expected)
	}
	for _, s := range f.Suggestions {
		fmt.Fprintf(w, "    * %s\n", s)
	}
}

func printResult(w io.Writer, r engine.Result, band presets.VelocityBand) {
	heading(w, "Water Supply Sizing")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Demand")
	fmt.Fprintln(w, "------")
	fmt.Fprintf(w, "  Future population:      %d\n", r.FuturePopulation)
	fmt.Fprintf(w, "  Human demand:           %s\n", formatLitres(r.Demand.HumanDemandL))
	fmt.Fprintf(w, "  Livestock demand:       %s\n", formatLitres(r.Demand.LivestockDemandL))
	fmt.Fprintf(w, "  Total daily demand:     %s\n", formatLitres(r.TotalDailyDemandL))
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%-14s %10s %10s\n", "Livestock", "Head", "L/day")
	for _, c := range r.Demand.Livestock {
		fmt.Fprintf(w, "%-14s %10d %10.1f\n", c.Category, c.ProjectedCount, c.DemandL)
	}
	fmt.Fprintln(w)

	v := r.Reservoir
	fmt.Fprintln(w, "Reservoir")
	fmt.Fprintln(w, "---------")
	fmt.Fprintf(w, "  Consumption:            %8.1f m³\n", v.Consumption/1000)
	fmt.Fprintf(w, "  Fire reserve:           %8.1f m³\n", v.Fire/1000)
	fmt.Fprintf(w, "  Emergency:              %8.1f m³\n", v.Emergency/1000)
	fmt.Fprintf(w, "  Equilibrium:            %8.1f m³\n", v.Equilibrium/1000)
	fmt.Fprintf(w, "  Total:                  %8.2f m³\n", v.Total/1000)
	fmt.Fprintln(w)

	h := r.Hydraulics
	fmt.Fprintln(w, "Main pipe")
	fmt.Fprintln(w, "---------")
	fmt.Fprintf(w, "  Design flow:            %.3f L/s\n", h.DesignFlowLPS)
	fmt.Fprintf(w, "  Velocity:               %s\n", velocityLabel(h.Velocity, band))
	fmt.Fprintf(w, "  Reynolds:               %.0f (%s)\n", h.Reynolds, h.Regime)
	fmt.Fprintf(w, "  Friction factor:        %.4f\n", h.FrictionFactor)
	fmt.Fprintf(w, "  Distributed loss:       %.2f m\n", h.HeadLossDistributed)
	fmt.Fprintf(w, "  Localized loss (K=%.2f): %.2f m\n", h.KTotal, h.HeadLossLocalized)
	fmt.Fprintf(w, "  Manometric head:        %.2f m\n", h.ManometricHead)
	fmt.Fprintln(w)

	s := r.Solar
	fmt.Fprintln(w, "Solar array")
	fmt.Fprintln(w, "-----------")
	fmt.Fprintf(w, "  Location:               %s\n", s.Location)
	fmt.Fprintf(w, "  Critical month:         %s (%.2f kWh/m²/day)\n", solar.MonthName(s.CriticalMonthIndex), s.SelectedIrradiation)
	fmt.Fprintf(w, "  Daily energy:           %.2f kWh\n", s.DailyEnergyKWh)
	fmt.Fprintf(w, "  PV power:               %.2f kWp\n", s.RequiredSolarPowerKW)
	fmt.Fprintf(w, "  Panels:                 %d\n", s.NumberOfPanels)
	fmt.Fprintln(w)

	fmt.Fprintln(w, mutedStyle.Render(strings.Join(r.Justification, "\n")))
}

// velocityLabel marks a velocity outside the band so it still reads as a
// warning without colour.
func velocityLabel(v float64, band presets.VelocityBand) string {
	if band.Outside(v) {
		return warningStyle.Render(fmt.Sprintf("%.2f m/s (outside %.1f-%.1f)", v, band.Min, band.Max))
	}
	return okStyle.Render(fmt.Sprintf("%.2f m/s", v))
}

func printNetwork(w io.Writer, initialHead float64, r network.Result) {
	heading(w, "Network Pressure Profile")
	fmt.Fprintf(w, "Initial head: %.2f m\n\n", initialHead)

	fmt.Fprintf(w, "%-10s %12s %12s %12s %12s\n", "Segment", "Loss (m)", "v (m/s)", "Start (m)", "End (m)")
	for _, seg := range r.Segments {
		end := fmt.Sprintf("%12.2f", seg.PressureEnd)
		if seg.PressureEnd < 0 {
			end = dangerStyle.Render(end)
		}
		fmt.Fprintf(w, "%-10s %12.2f %12.2f %12.2f %s\n", seg.ID, -seg.HeadLoss, seg.Velocity, seg.PressureStart, end)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Final residual pressure: %.2f m\n", r.FinalPressure)
}

func printCurve(w io.Writer, a hydraulics.Analysis, points []hydraulics.CurvePoint) {
	heading(w, "System Curve")
	fmt.Fprintf(w, "Operating point: %.3f L/s @ %.2f m\n\n", a.DesignFlowLPS, a.ManometricHead)
	fmt.Fprintf(w, "%10s %10s\n", "Q (L/s)", "H (m)")
	for _, pt := range points {
		fmt.Fprintf(w, "%10.2f %10.2f\n", pt.FlowLPS, pt.HeadM)
	}
}

func formatLitres(v float64) string {
	if v >= 1_000_000 {
		return fmt.Sprintf("%.2fM L/day", v/1_000_000)
	}
	if v >= 1_000 {
		return fmt.Sprintf("%.1fk L/day", v/1_000)
	}
	return fmt.Sprintf("%.0f L/day", v)
}
