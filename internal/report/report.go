// Package report renders derived planet data as console text and CSV.
package report

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/subspaceue/solarconfig/pkg/core"
)

// RuleWidth is the width of the '=' banners separating report sections.
const RuleWidth = 80

// OrbitUnit is the unit a compressed orbital period is displayed in.
type OrbitUnit int

const (
	OrbitMinutes OrbitUnit = iota
	OrbitHours
	OrbitDays
)

func (u OrbitUnit) String() string {
	switch u {
	case OrbitDays:
		return "days"
	case OrbitHours:
		return "hours"
	default:
		return "minutes"
	}
}

// OrbitDisplayUnit picks the display unit for a compressed period given in hours.
// More than 24 hours shows days, more than 1 hour shows hours, anything else minutes.
func OrbitDisplayUnit(hours float64) OrbitUnit {
	switch {
	case hours > 24:
		return OrbitDays
	case hours > 1:
		return OrbitHours
	default:
		return OrbitMinutes
	}
}

// Rule returns a full-width '=' line.
func Rule() string {
	return strings.Repeat("=", RuleWidth)
}

// Banner frames a title and optional extra lines between two rules,
// preceded by an empty line.
func Banner(title string, lines ...string) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(Rule())
	b.WriteString("\n")
	b.WriteString(title)
	b.WriteString("\n")
	for _, l := range lines {
		b.WriteString(l)
		b.WriteString("\n")
	}
	b.WriteString(Rule())
	b.WriteString("\n")
	return b.String()
}

// FormatScaleHeader describes the active scale factors.
// The distance ratio is 1/distance_scale rounded to the nearest integer.
func FormatScaleHeader(f core.ScaleFactors) string {
	return Banner("SOLAR SYSTEM SCALE CALCULATIONS",
		"Distance Scale: 1:"+grouped(math.Round(1/f.DistanceScale)),
		"Planet Size Scale: "+formatFactor(f.PlanetSizeScale)+"x",
		"Time Multiplier: "+formatFactor(f.DefaultTimeMultiplier)+"x",
	) + "\n"
}

// FormatReport renders the human-readable block for each derived planet.
func FormatReport(records []core.DerivedPlanet) string {
	var b strings.Builder
	for _, r := range records {
		fmt.Fprintf(&b, "%s:\n", r.Name)
		fmt.Fprintf(&b, "  Real Distance: %.3f AU (%s km)\n", r.DistanceAU, grouped(r.DistanceKm))
		fmt.Fprintf(&b, "  Game Distance: %s km (%s UU)\n", grouped(r.DistanceGameKm), grouped(r.DistanceUU))
		fmt.Fprintf(&b, "  Real Radius: %s km\n", grouped(r.RadiusRealKm))
		fmt.Fprintf(&b, "  Game Radius: %s km (%s UU)\n", grouped1(r.RadiusGameKm), grouped(r.RadiusUU))
		fmt.Fprintf(&b, "  Real Orbit: %.1f days\n", r.OrbitRealDays)
		fmt.Fprintf(&b, "  Game Orbit: %s\n", FormatOrbit(r))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatOrbit renders the compressed orbital period in its display unit,
// with the next smaller unit in parentheses.
func FormatOrbit(r core.DerivedPlanet) string {
	switch OrbitDisplayUnit(r.OrbitScaledHours) {
	case OrbitDays:
		return fmt.Sprintf("%.1f days (%.1f hours)", r.OrbitScaledHours/24, r.OrbitScaledHours)
	case OrbitHours:
		return fmt.Sprintf("%.1f hours (%.0f minutes)", r.OrbitScaledHours, r.OrbitScaledMinutes)
	default:
		return fmt.Sprintf("%.1f minutes (%.0f seconds)", r.OrbitScaledMinutes, r.OrbitScaledSeconds)
	}
}

// FormatCameraDistances renders the recommended viewing band for each planet.
func FormatCameraDistances(ranges []core.CameraRange) string {
	var b strings.Builder
	for _, r := range ranges {
		fmt.Fprintf(&b, "%s:\n", r.Name)
		fmt.Fprintf(&b, "  Planet Radius: %s UU\n", grouped(r.RadiusUU))
		fmt.Fprintf(&b, "  Min View Distance: %s UU (%s km)\n", grouped(r.MinDistance), grouped(r.MinDistance/core.CmPerKm))
		fmt.Fprintf(&b, "  Max View Distance: %s UU (%s km)\n", grouped(r.MaxDistance), grouped(r.MaxDistance/core.CmPerKm))
		b.WriteString("\n")
	}
	return b.String()
}

// grouped formats v with thousands separators and no decimals.
func grouped(v float64) string {
	return groupedFixed(v, 0)
}

// grouped1 formats v with thousands separators and one decimal.
func grouped1(v float64) string {
	return groupedFixed(v, 1)
}

// groupedFixed groups the integer digits of v rendered with the given decimals.
// The digits come from the exact decimal expansion, so magnitudes beyond int64 stay correct.
func groupedFixed(v float64, decimals int) string {
	s := strconv.FormatFloat(v, 'f', decimals, 64)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, hasFrac := strings.Cut(s, ".")

	digits, ok := new(big.Int).SetString(intPart, 10)
	if !ok {
		// Inf or NaN
		return sign + s
	}
	out := sign + humanize.BigComma(digits)
	if hasFrac {
		out += "." + frac
	}
	return out
}

// formatFactor prints whole factors as "50.0" rather than "50".
func formatFactor(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
