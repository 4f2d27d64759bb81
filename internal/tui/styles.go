package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle         = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	errorStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	warnStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	helperStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

	heroAccentColor        = lipgloss.Color("#2ec4b6")
	heroEmberColor         = lipgloss.Color("#0b2a2a")
	heroTextColor          = lipgloss.Color("#e8fff9")
	heroSecondaryTextColor = lipgloss.Color("#8fe3d8")

	taglineStyle       = lipgloss.NewStyle().Foreground(heroSecondaryTextColor).Italic(true)
	statusBarStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#8ecae6")).Padding(0, 1)
	keyStyle           = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#ffd166")).Padding(0, 1)
	keyDescStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#e0def4"))
	levelActiveStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0f0f0f")).Background(heroAccentColor).Padding(0, 1)
	levelInactiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Padding(0, 1)
	mainPanelStyle     = lipgloss.NewStyle().PaddingRight(2)
	sidebarStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#56526e")).Padding(0, 1)
	sidebarFocusStyle  = sidebarStyle.Copy().BorderForeground(heroAccentColor)
	logoFaceStyle      = lipgloss.NewStyle().Bold(true).Foreground(heroTextColor).Background(heroEmberColor)
	logoShadowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#041414"))
	logoContainerStyle = lipgloss.NewStyle().Padding(0, 1)
	logoArtLines       = []string{
		"███╗   ██╗  ██████╗  ████████╗ ███████╗ ███████╗  █████╗  ",
		"████╗  ██║ ██╔═══██╗ ╚══██╔══╝ ██╔════╝ ╚══███╔╝ ██╔══██╗ ",
		"██╔██╗ ██║ ██║   ██║    ██║    █████╗     ███╔╝  ███████║ ",
		"██║╚██╗██║ ██║   ██║    ██║    ██╔══╝    ███╔╝   ██╔══██║ ",
		"██║ ╚████║ ╚██████╔╝    ██║    ███████╗ ███████╗ ██║  ██║ ",
		"╚═╝  ╚═══╝  ╚═════╝     ╚═╝    ╚══════╝ ╚══════╝ ╚═╝  ╚═╝ ",
	}
)
