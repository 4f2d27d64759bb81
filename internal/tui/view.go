package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/csheth/noteza/internal/notes"
)

func (m *model) View() string {
	if m.quitting {
		return ""
	}
	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		mainPanelStyle.Width(m.layout.viewportWidth+2).Render(m.mainPanel()),
		m.sidebarView(),
	)
	return joinNonEmpty([]string{
		m.heroView(),
		body,
		m.messagesView(),
		m.sessionMeterView(),
		m.keyLegendView(),
	})
}

func (m *model) mainPanel() string {
	switch m.stage {
	case stageLoading:
		return joinNonEmpty([]string{
			sectionHeaderStyle.Render("Working"),
			fmt.Sprintf("%s %s", m.spinner.View(), loadingMessage),
		})
	case stageDisplay:
		title := "Notes"
		if m.snapshot.Selected != nil {
			title = m.snapshot.Selected.Label()
		}
		return strings.Join([]string{
			titleStyle.Render(title),
			m.viewport.View(),
		}, "\n")
	default:
		return joinNonEmpty([]string{
			sectionHeaderStyle.Render("New Notes"),
			strings.Join([]string{m.topicInput.View(), m.levelSelector()}, "\n\n"),
		})
	}
}

func (m *model) levelSelector() string {
	parts := []string{helperStyle.Render("Detail level")}
	for _, level := range notes.Levels {
		if level == m.level {
			parts = append(parts, levelActiveStyle.Render(level.String()))
			continue
		}
		parts = append(parts, levelInactiveStyle.Render(level.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

func (m *model) sidebarView() string {
	style := sidebarStyle
	if m.focus == focusHistory {
		style = sidebarFocusStyle
	}
	return style.Width(m.layout.sidebarWidth - 2).Render(m.history.View())
}

func (m *model) messagesView() string {
	var lines []string
	if m.errorMessage != "" {
		lines = append(lines, errorStyle.Render(m.errorMessage))
	}
	if m.warnMessage != "" {
		lines = append(lines, warnStyle.Render("⚠ "+m.warnMessage))
	}
	if m.infoMessage != "" && m.stage != stageLoading {
		lines = append(lines, helperStyle.Render(m.infoMessage))
	}
	return strings.Join(lines, "\n")
}

func (m *model) heroView() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		renderLogo(),
		taglineStyle.Render(heroTagline),
	)
}

func joinNonEmpty(parts []string) string {
	filtered := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		filtered = append(filtered, part)
	}
	return strings.Join(filtered, "\n\n")
}

func (m *model) focusLabel() string {
	if m.focus == focusHistory {
		return "HISTORY"
	}
	return "MAIN"
}

func (m *model) sessionMeterView() string {
	stats := []string{
		fmt.Sprintf("Focus %s", m.focusLabel()),
		fmt.Sprintf("Level %s", m.level),
		fmt.Sprintf("Notes %d", m.snapshot.Total),
	}
	if m.stage == stageDisplay {
		stats = append(stats, fmt.Sprintf("%3.f%%", m.viewport.ScrollPercent()*100))
	}
	stats = append(stats, m.jobStatusBadges()...)
	return statusBarStyle.Render(strings.Join(stats, "  •  "))
}

func (m *model) jobStatusBadges() []string {
	if len(m.activeJobs) == 0 {
		return nil
	}
	ids := make([]string, 0, len(m.activeJobs))
	for id := range m.activeJobs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	badges := make([]string, 0, len(ids))
	for _, id := range ids {
		badges = append(badges, fmt.Sprintf("%s %s…", m.spinner.View(), m.activeJobs[id].Kind))
	}
	return badges
}

func (m *model) keyLegendView() string {
	var cells []string
	for _, binding := range m.keys.hintsFor(m.stage, m.focus) {
		help := binding.Help()
		if help.Key == "" {
			continue
		}
		cells = append(cells, lipgloss.JoinHorizontal(lipgloss.Top, keyStyle.Render(help.Key), keyDescStyle.Render(" "+help.Desc+" ")))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func renderLogo() string {
	if len(logoArtLines) == 0 {
		return ""
	}
	width := 0
	lineRunes := make([][]rune, len(logoArtLines))
	for i, line := range logoArtLines {
		runes := []rune(line)
		lineRunes[i] = runes
		if len(runes) > width {
			width = len(runes)
		}
	}
	width += 1
	height := len(logoArtLines) + 1

	type cell struct {
		r     rune
		style lipgloss.Style
	}

	grid := make([][]cell, height)
	for i := range grid {
		grid[i] = make([]cell, width)
	}

	for y, runes := range lineRunes {
		for x, r := range runes {
			if r == ' ' {
				continue
			}
			if y+1 < height && x+1 < width {
				grid[y+1][x+1] = cell{r: r, style: logoShadowStyle}
			}
		}
	}

	for y, runes := range lineRunes {
		for x, r := range runes {
			if r == ' ' {
				continue
			}
			grid[y][x] = cell{r: r, style: logoFaceStyle}
		}
	}

	lines := make([]string, height)
	for y, row := range grid {
		var b strings.Builder
		for _, c := range row {
			if c.r == 0 {
				b.WriteRune(' ')
				continue
			}
			b.WriteString(c.style.Render(string(c.r)))
		}
		lines[y] = b.String()
	}
	return logoContainerStyle.Render(strings.Join(lines, "\n"))
}
