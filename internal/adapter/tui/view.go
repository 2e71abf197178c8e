package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"pawledger/internal/domain/pet"
)

var gameStyles = struct {
	title   lipgloss.Style
	status  lipgloss.Style
	stats   lipgloss.Style
	menu    lipgloss.Style
	menuBox lipgloss.Style
	tabs    lipgloss.Style
	money   lipgloss.Style
}{
	title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FF75B5")).
		Padding(0, 1),

	status: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF75B5")).
		Width(44),

	stats: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF75B5")).
		Width(44),

	menu: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF75B5")),

	menuBox: lipgloss.NewStyle().
		Padding(0, 2),

	tabs: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#87CEEB")),

	money: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFD700")),
}

// View implements tea.Model
func (m Model) View() string {
	if m.Quitting {
		return "Thanks for playing!\n"
	}
	if m.Err != nil {
		return gameStyles.status.Render("Error: "+m.Err.Error()) + "\n"
	}
	if m.ShowingAdoptPrompt {
		return m.adoptView()
	}

	p := m.Status.State.Pet
	title := gameStyles.title.Render(m.Status.Emoji + " " + p.Name + " " + m.Status.Emoji)
	clock := m.renderClock()
	stats := m.renderStats()
	body := m.renderPane()

	var messageView string
	if m.Message != "" && time.Now().Before(m.MessageExpires) {
		messageView = gameStyles.status.Render(m.Message)
	}

	sections := []string{
		title,
		clock,
		"",
		stats,
		"",
		m.renderTabs(),
		body,
	}

	if messageView != "" {
		sections = append(sections, "", messageView)
	}

	sections = append(sections,
		"",
		gameStyles.status.Render("tab: switch panes • s: sleep to morning • q: quit"),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderClock() string {
	gt := m.Status.GameTime
	periodIcon := "☀️"
	if gt.Period == pet.PeriodNight {
		periodIcon = "🌙"
	}
	return gameStyles.status.Render(fmt.Sprintf("%s Day %d • %02d:%02d • %s  %s",
		periodIcon, m.Status.GameDay, gt.Hour, gt.Minute, gt.Period,
		gameStyles.money.Render(fmt.Sprintf("$%.0f", m.Status.State.Money))))
}

func makeBar(value float64) string {
	filled := int(value) / 20
	var bar strings.Builder
	for i := 0; i < 5; i++ {
		if i < filled {
			bar.WriteString("█")
		} else {
			bar.WriteString("░")
		}
	}
	return bar.String()
}

func (m Model) renderStats() string {
	p := m.Status.State.Pet
	needs := []struct {
		name  string
		value float64
	}{
		{"Hunger", p.Needs.Hunger},
		{"Happiness", p.Needs.Happiness},
		{"Health", p.Needs.Health},
		{"Energy", p.Needs.Energy},
		{"Hygiene", p.Needs.Hygiene},
	}

	lines := []string{
		fmt.Sprintf("%-10s %s (level %d, %d xp)", "Stage:", p.Stage, p.Level, p.Experience),
		fmt.Sprintf("%-10s %s %s", "Mood:", m.Status.View.Emoji, m.Status.View.Mood),
	}
	for _, n := range needs {
		lines = append(lines, fmt.Sprintf("%-10s [%s] %3.0f%%", n.name+":", makeBar(n.value), n.value))
	}
	lines = append(lines, "", m.Status.View.Message)

	return gameStyles.stats.Render(strings.Join(lines, "\n"))
}

var paneTitles = []string{"Actions", "Chores", "Ledger", "Achievements"}

func (m Model) renderTabs() string {
	var tabs []string
	for i, t := range paneTitles {
		if pane(i) == m.Pane {
			tabs = append(tabs, "["+t+"]")
		} else {
			tabs = append(tabs, " "+t+" ")
		}
	}
	return gameStyles.tabs.Render(strings.Join(tabs, " "))
}

func (m Model) renderPane() string {
	switch m.Pane {
	case paneActions:
		return m.renderActions()
	case paneChores:
		return m.renderChores()
	case paneLedger:
		return m.renderLedger()
	default:
		return m.renderAchievements()
	}
}

func (m Model) renderActions() string {
	var items []string
	for i, spec := range m.Status.Actions {
		cursor := " "
		if m.Pane == paneActions && m.Choice == i {
			cursor = ">"
		}
		price := "free"
		if spec.Cost > 0 {
			price = fmt.Sprintf("$%.0f", spec.Cost)
		}
		note := ""
		if spec.NightOnly {
			note = " (night)"
		} else if spec.Chore && m.Status.State.Pet.ChoreDoneToday(spec.ID) {
			note = " (done)"
		}
		items = append(items, fmt.Sprintf("%s %s %-10s %5s%s", cursor, spec.Icon, spec.Label, price, note))
	}
	return gameStyles.menuBox.Render(gameStyles.menu.Render(strings.Join(items, "\n")))
}

func (m Model) renderChores() string {
	now := time.Now()
	var items []string
	for i, chore := range m.Status.Chores {
		cursor := " "
		if m.Pane == paneChores && m.Choice == i {
			cursor = ">"
		}
		note := ""
		if ready := m.Status.State.ChoreReadyAt(chore.ID); now.Before(ready) {
			note = fmt.Sprintf(" (%ds)", int(ready.Sub(now).Seconds())+1)
		}
		items = append(items, fmt.Sprintf("%s %s %-18s $%.0f%s", cursor, chore.Icon, chore.Label, chore.Reward, note))
	}
	return gameStyles.menuBox.Render(gameStyles.menu.Render(strings.Join(items, "\n")))
}

func (m Model) renderLedger() string {
	lines := []string{
		fmt.Sprintf("Balance: $%.2f  •  Lifetime earned: $%.2f", m.Ledger.Balance, m.Ledger.LifetimeEarned),
		"",
	}
	if len(m.Ledger.Transactions) == 0 {
		lines = append(lines, "No transactions yet.")
	}
	shown := m.Ledger.Transactions
	if len(shown) > 10 {
		shown = shown[:10]
	}
	for _, tx := range shown {
		sign := "+"
		if tx.Amount < 0 {
			sign = "-"
		}
		lines = append(lines, fmt.Sprintf("%s  %-18s %s$%.2f",
			tx.Timestamp.Format("15:04:05"), tx.Description, sign, abs(tx.Amount)))
	}
	return gameStyles.menuBox.Render(gameStyles.menu.Render(strings.Join(lines, "\n")))
}

func (m Model) renderAchievements() string {
	p := m.Status.State.Pet
	var lines []string
	for _, a := range m.Status.Achievements {
		icon := a.Icon
		note := ""
		if p.HasUnlocked(a.ID) {
			icon = a.UnlockedIcon
			note = " ✓"
		}
		lines = append(lines, fmt.Sprintf("%s %-22s %s%s", icon, a.Title, a.Description, note))
	}
	return gameStyles.menuBox.Render(gameStyles.menu.Render(strings.Join(lines, "\n")))
}

func (m Model) adoptView() string {
	p := m.Status.State.Pet
	return lipgloss.JoinVertical(
		lipgloss.Center,
		gameStyles.title.Render("💀 "+p.Name+" 💀"),
		"",
		gameStyles.status.Render("Your pet has passed away..."),
		gameStyles.status.Render(fmt.Sprintf("They reached level %d over %d game days.", p.Level, m.Status.GameDay)),
		"",
		gameStyles.menuBox.Render("Would you like to adopt a new pet?"),
		"",
		gameStyles.status.Render("Press 'y' for yes, 'n' for no, 'q' to quit"),
	)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
