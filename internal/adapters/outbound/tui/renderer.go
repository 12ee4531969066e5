package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/riskgate/riskgate/internal/domain"
)

// ── Warm terminal palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	neutral = lipgloss.Color("#4B5563") // dark gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)

	approveBadge = badgeStyle(success)
	reviewBadge  = badgeStyle(warning)
	rejectBadge  = badgeStyle(danger)
	pendingBadge = badgeStyle(neutral)

	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

func badgeStyle(bg lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#111111")).
		Background(bg).
		Padding(0, 1)
}

// RenderState renders whatever phase the submission is in. It never fails:
// unknown decisions fall back to the neutral pending badge.
func RenderState(state domain.SubmissionState) string {
	switch state.Phase {
	case domain.PhaseSucceeded:
		return RenderResult(state.Result)
	case domain.PhaseFailed:
		return RenderError(state.Err)
	case domain.PhasePending:
		return "  " + dimStyle.Render("Evaluating…") + "\n"
	default:
		return "  " + dimStyle.Render("No submission yet.") + "\n"
	}
}

// RenderResult renders an evaluation verdict: decision badge, risk score,
// issues and summary. A nil result renders the same neutral state a missing
// decision does.
func RenderResult(result *domain.EvaluationResult) string {
	if result == nil {
		result = &domain.EvaluationResult{}
	}

	var b strings.Builder

	// ── Header ──
	title := headerStyle.Render("riskgate")
	subtitle := dimStyle.Render("Network Onboarding Evaluation")
	score := fmt.Sprintf("%d / 100", result.RiskScore)
	scoreStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(riskColor(result.RiskScore)).
		Render(score)

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + decisionBadge(result.Decision) + "  " + scoreStyled))
	b.WriteString("\n\n")

	// ── Risk bar ──
	b.WriteString("  " + titleStyle.Render(padRight("Risk", 10)) + riskBar(result.RiskScore, 40))
	b.WriteString("\n\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n\n")

	// ── Issues ──
	if len(result.Issues) > 0 {
		b.WriteString("  ")
		b.WriteString(titleStyle.Render("Issues"))
		b.WriteString("  ")
		b.WriteString(errorTagStyle.Render(fmt.Sprintf("%d found", len(result.Issues))))
		b.WriteString("\n\n")
		for _, issue := range result.Issues {
			b.WriteString(fmt.Sprintf("    %s %s\n", failStyle.Render("●"), dimStyle.Render(issue)))
		}
	} else {
		b.WriteString("  " + passStyle.Render("No issues found.") + "\n")
	}

	// ── Summary ──
	if result.Summary != "" {
		b.WriteString("\n")
		b.WriteString("  " + titleStyle.Render("Summary") + "\n")
		b.WriteString("    " + dimStyle.Render(result.Summary) + "\n")
	}

	b.WriteString("\n")
	return b.String()
}

// RenderError renders the single error banner shown for a failed attempt.
func RenderError(message string) string {
	banner := errorTagStyle.Render("evaluation failed") + "  " + dimStyle.Render(message)
	return "  " + banner + "\n"
}

func decisionBadge(decision string) string {
	switch domain.VerdictFor(decision) {
	case domain.VerdictApprove:
		return approveBadge.Render("APPROVE")
	case domain.VerdictReview:
		return reviewBadge.Render("REVIEW")
	case domain.VerdictReject:
		return rejectBadge.Render("REJECT")
	default:
		return pendingBadge.Render("PENDING")
	}
}

// riskColor maps a risk score to a color. Low risk is good, so the scale is
// the inverse of a quality score.
func riskColor(score int) lipgloss.Color {
	switch {
	case score < 30:
		return success
	case score < 60:
		return warning
	default:
		return danger
	}
}

func riskBar(score, width int) string {
	filled := max(0, min(score*width/100, width))
	empty := width - filled

	filledStr := lipgloss.NewStyle().Foreground(riskColor(score)).Render(strings.Repeat("█", filled))
	emptyStr := faintStyle.Render(strings.Repeat("░", empty))
	return filledStr + emptyStr
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
