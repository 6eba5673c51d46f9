package status

import (
	"fmt"
	"time"

	"github.com/bnema/authflow-cli/internal/application"
	"github.com/charmbracelet/lipgloss"
)

func renderView(status application.SessionStatus, s styles) string {
	lines := []string{
		s.title.Render("Session"),
	}

	if !status.Authenticated {
		lines = append(lines, s.empty.Render("signed out"))
		if status.PendingFlow {
			lines = append(lines, s.warning.Render("a login attempt is awaiting the provider's return"))
		}
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	lines = append(lines, s.state.Render("authenticated"))
	lines = append(lines, s.section.Render(renderTokens(status, s)))

	if status.Identity != nil {
		lines = append(lines, s.section.Render(renderIdentity(status, s)))
	}

	if status.PendingFlow {
		lines = append(lines, s.warning.Render("a stale login attempt is still recorded"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderTokens(status application.SessionStatus, s styles) string {
	parts := []string{
		detailLine(s, "access token", fmt.Sprintf("%s (expires in %ds)", status.AccessToken, status.ExpiresIn)),
		detailLine(s, "id token", yesNo(status.HasIDToken)),
		detailLine(s, "refresh token", yesNo(status.HasRefreshToken)),
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderIdentity(status application.SessionStatus, s styles) string {
	identity := status.Identity
	parts := make([]string, 0, 4)

	if identity.Email != "" {
		parts = append(parts, detailLine(s, "email", identity.Email))
	}
	if identity.Subject != "" {
		parts = append(parts, detailLine(s, "subject", identity.Subject))
	}
	if identity.Issuer != "" {
		parts = append(parts, detailLine(s, "issuer", identity.Issuer))
	}
	if !identity.ExpiresAt.IsZero() {
		line := detailLine(s, "identity expires", formatExpiresAt(identity.ExpiresAt))
		if status.IdentityExpired {
			line += " " + s.warning.Render("[expired]")
		}
		parts = append(parts, line)
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func detailLine(s styles, label string, value string) string {
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.label.Render(label+":"),
		" ",
		s.value.Render(value),
	)
}

func yesNo(present bool) string {
	if present {
		return "yes"
	}
	return "no"
}

func formatExpiresAt(expiresAt time.Time) string {
	return expiresAt.UTC().Format("15:04 on 02 Jan 2006")
}
