package format

import "github.com/charmbracelet/lipgloss"

// RiskLevel is the categorical label attached to a dropout prediction.
type RiskLevel string

const (
	RiskHigh    RiskLevel = "High Risk"
	RiskMedium  RiskLevel = "Medium Risk"
	RiskLow     RiskLevel = "Low Risk"
	RiskUnknown RiskLevel = "Unknown"
)

type riskStyle struct {
	badge string
	card  string
	color string
	icon  string
}

var riskStyles = map[RiskLevel]riskStyle{
	RiskHigh:    {badge: "bg-danger", card: "risk-high", color: "#dc3545", icon: "🔴"},
	RiskMedium:  {badge: "bg-warning text-dark", card: "risk-medium", color: "#ffc107", icon: "🟠"},
	RiskLow:     {badge: "bg-success", card: "risk-low", color: "#28a745", icon: "🟢"},
	RiskUnknown: {badge: "bg-secondary", color: "#6c757d", icon: "⚪"},
}

func styleOf(r RiskLevel) riskStyle {
	if s, ok := riskStyles[r]; ok {
		return s
	}
	return riskStyles[RiskUnknown]
}

// BadgeClass is the CSS class pair used for the risk badge.
func BadgeClass(r RiskLevel) string { return styleOf(r).badge }

// CardClass is the border class of a student card; "" for unknown levels.
func CardClass(r RiskLevel) string {
	if s, ok := riskStyles[r]; ok {
		return s.card
	}
	return ""
}

// Color is the hex colour of the level.
func Color(r RiskLevel) string { return styleOf(r).color }

func Icon(r RiskLevel) string { return styleOf(r).icon }

// FormatScore shows a risk score with two decimals.
func FormatScore(score any) string {
	if s, ok := score.(string); ok && s == Placeholder {
		return Placeholder
	}
	return Number(score, 2)
}

// Style is a terminal style in the level's colour.
func Style(r RiskLevel) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(Color(r))).Bold(r == RiskHigh)
}

// Badge renders icon and label in the level's colour.
func Badge(r RiskLevel) string {
	label := string(r)
	if label == "" {
		label = string(RiskUnknown)
	}
	return Style(r).Render(Icon(r) + " " + label)
}
