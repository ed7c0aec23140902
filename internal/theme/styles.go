package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/arlon/internal/domain"
)

// Table styles
var (
	HashStyle = lipgloss.NewStyle().
			Foreground(ColorHash)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	BranchStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)
)

// File status styles
var (
	AddedStyle = lipgloss.NewStyle().
			Foreground(ColorAdded)

	DeletedStyle = lipgloss.NewStyle().
			Foreground(ColorDeleted)

	ModifiedStyle = lipgloss.NewStyle().
			Foreground(ColorModified)

	MovedStyle = lipgloss.NewStyle().
			Foreground(ColorMoved)

	OtherStyle = lipgloss.NewStyle().
			Foreground(ColorOther)
)

// StatusStyle returns the style for a file status token
func StatusStyle(token string) lipgloss.Style {
	switch token {
	case domain.StatusAdded.String():
		return AddedStyle
	case domain.StatusDeleted.String():
		return DeletedStyle
	case domain.StatusModified.String():
		return ModifiedStyle
	case domain.StatusRenamed.String(), domain.StatusCopied.String():
		return MovedStyle
	default:
		return OtherStyle
	}
}
