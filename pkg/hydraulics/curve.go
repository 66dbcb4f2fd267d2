package hydraulics

// DefaultCurveSteps is the number of intervals in a system curve.
const DefaultCurveSteps = 10

// CurvePoint is one point of the system curve.
type CurvePoint struct {
	FlowLPS float64 `json:"flow_lps"`
	HeadM   float64 `json:"head_m"`
}

// SystemCurve returns H = Hgeo + R·Q² from zero to 1.5x the design flow,
// with R fitted through the design operating point. A zero design flow
// yields a single point at the geometric height.
func SystemCurve(a Analysis, geometricHeight float64, steps int) []CurvePoint {
	if steps <= 0 {
		steps = DefaultCurveSteps
	}
	if a.DesignFlowLPS == 0 {
		return []CurvePoint{{FlowLPS: 0, HeadM: geometricHeight}}
	}

	resistance := (a.ManometricHead - geometricHeight) / (a.DesignFlowLPS * a.DesignFlowLPS)
	maxQ := a.DesignFlowLPS * 1.5

	points := make([]CurvePoint, 0, steps+1)
	for i := 0; i <= steps; i++ {
		q := maxQ / float64(steps) * float64(i)
		points = append(points, CurvePoint{
			FlowLPS: q,
			HeadM:   geometricHeight + resistance*q*q,
		})
	}
	return points
}
