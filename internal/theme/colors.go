package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - branch names
)

// File change colors
const (
	ColorAdded    Color = "2"   // Green
	ColorDeleted  Color = "1"   // Red
	ColorModified Color = "3"   // Yellow
	ColorMoved    Color = "33"  // Blue - renamed, copied
	ColorOther    Color = "141" // Purple - typechange, conflicted and the rest
)

// UI semantic colors
const (
	ColorHash  Color = "214" // Orange - short commit ids
	ColorMuted Color = "241" // Gray - ages and paths
)
