package network

import (
	"fmt"

	"github.com/ChicagoDave/watersizer/pkg/validation"
)

// DefaultMinResidualPressure is the minimum service head at the network exit (m).
const DefaultMinResidualPressure = 10.0

// Check reports segments that end below zero pressure and a residual exit
// pressure under minResidual.
func Check(res Result, minResidual float64) *validation.Report {
	r := validation.NewReport()

	for i, seg := range res.Segments {
		if seg.PressureEnd < 0 {
			r.AddError(validation.Result{
				Level:       validation.LevelNetwork,
				Message:     fmt.Sprintf("segment %s ends at negative pressure %.2f m", seg.ID, seg.PressureEnd),
				SpecPath:    fmt.Sprintf("network.segments[%d]", i),
				ActualValue: seg.PressureEnd,
				Expected:    ">= 0 m",
				Suggestions: []string{
					"Increase the segment diameter to cut friction loss",
					"Raise the initial head or reduce the elevation gain",
				},
			})
		}
	}

	if len(res.Segments) > 0 && res.FinalPressure < minResidual {
		r.AddWarning(validation.Result{
			Level:       validation.LevelNetwork,
			Message:     fmt.Sprintf("residual pressure %.2f m at the network exit is below %.1f m", res.FinalPressure, minResidual),
			SpecPath:    "network",
			ActualValue: res.FinalPressure,
			Expected:    fmt.Sprintf(">= %.1f m", minResidual),
		})
	}

	return r
}
