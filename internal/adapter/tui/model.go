// Package tui is the terminal client. It drives the same use cases as the
// HTTP server, over a local store, so the simulation rules live in exactly
// one place.
package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"pawledger/internal/app/care"
	"pawledger/internal/app/daycycle"
	"pawledger/internal/app/earn"
	"pawledger/internal/app/ledgerview"
	"pawledger/internal/app/sessionmgmt"
	"pawledger/internal/app/status"
	"pawledger/internal/app/tick"
	"pawledger/internal/domain/pet"
	"pawledger/internal/domain/session"
)

// Services bundles the use cases the client drives.
type Services struct {
	Session sessionmgmt.UseCase
	Status  status.UseCase
	Care    care.UseCase
	Earn    earn.UseCase
	Tick    tick.UseCase
	Skip    daycycle.UseCase
	Ledger  ledgerview.UseCase
}

type pane int

const (
	paneActions pane = iota
	paneChores
	paneLedger
	paneAchievements
)

// Model represents the client state.
type Model struct {
	Svc       Services
	SessionID string
	PetName   string
	Species   pet.Species

	Status status.Response
	Ledger ledgerview.Response

	Pane     pane
	Choice   int
	Quitting bool

	ShowingAdoptPrompt bool

	Message        string
	MessageExpires time.Time

	Err error
}

type refreshMsg time.Time

// NewModel loads the current status so the first frame is already populated.
func NewModel(svc Services, sessionID, petName string, species pet.Species) Model {
	m := Model{
		Svc:       svc,
		SessionID: sessionID,
		PetName:   petName,
		Species:   species,
	}
	m.refresh()
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return refreshTick()
}

func refreshTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return refreshMsg(t)
	})
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.ShowingAdoptPrompt {
			switch msg.String() {
			case "ctrl+c", "q":
				m.Quitting = true
				return m, tea.Quit
			case "y":
				m.readopt()
				return m, nil
			case "n":
				m.ShowingAdoptPrompt = false
				return m, nil
			}
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c", "q":
			m.Quitting = true
			return m, tea.Quit
		case "tab":
			m.Pane = (m.Pane + 1) % 4
			m.Choice = 0
			if m.Pane == paneLedger {
				m.refreshLedger()
			}
		case "up", "k":
			if m.Choice > 0 {
				m.Choice--
			}
		case "down", "j":
			if m.Choice < m.menuSize()-1 {
				m.Choice++
			}
		case "s":
			m.skipNight()
		case "enter", " ":
			switch m.Pane {
			case paneActions:
				m.performAction()
			case paneChores:
				m.performChore()
			}
		}

	case refreshMsg:
		m.advanceClock()
		return m, refreshTick()
	}

	return m, nil
}

func (m Model) menuSize() int {
	switch m.Pane {
	case paneActions:
		return len(m.Status.Actions)
	case paneChores:
		return len(m.Status.Chores)
	default:
		return 1
	}
}

func (m *Model) setMessage(msg string) {
	m.Message = msg
	m.MessageExpires = time.Now().Add(3 * time.Second)
}

func (m *Model) refresh() {
	resp, err := m.Svc.Status.Execute(context.Background(), status.Request{SessionID: m.SessionID})
	if err != nil {
		m.Err = err
		return
	}
	m.Err = nil
	m.Status = resp
	if resp.State.Pet.Dead() {
		m.ShowingAdoptPrompt = true
	}
}

func (m *Model) refreshLedger() {
	resp, err := m.Svc.Ledger.Execute(context.Background(), ledgerview.Request{SessionID: m.SessionID})
	if err != nil {
		m.Err = err
		return
	}
	m.Ledger = resp
}

// advanceClock persists accrued decay and re-reads the status snapshot.
func (m *Model) advanceClock() {
	resp, err := m.Svc.Tick.Execute(context.Background(), tick.Request{SessionID: m.SessionID})
	if err != nil {
		m.Err = err
		return
	}
	for _, ev := range resp.Events {
		if ev.Type == "pet_died" {
			m.setMessage("💀 " + m.Status.State.Pet.Name + " has passed away...")
		}
	}
	m.refresh()
}

func (m *Model) performAction() {
	if m.Choice >= len(m.Status.Actions) {
		return
	}
	spec := m.Status.Actions[m.Choice]
	resp, err := m.Svc.Care.Execute(context.Background(), care.Request{
		SessionID: m.SessionID,
		Action:    spec.ID,
	})
	if err != nil {
		m.setMessage(actionErrorMessage(err))
		return
	}
	m.announceUnlocks(resp.Unlocked)
	if m.Message == "" || time.Now().After(m.MessageExpires) {
		m.setMessage(spec.Icon + " " + resp.View.Message)
	}
	m.refresh()
}

func (m *Model) performChore() {
	if m.Choice >= len(m.Status.Chores) {
		return
	}
	chore := m.Status.Chores[m.Choice]
	resp, err := m.Svc.Earn.Execute(context.Background(), earn.Request{
		SessionID: m.SessionID,
		ChoreID:   chore.ID,
	})
	if err != nil {
		m.setMessage(actionErrorMessage(err))
		return
	}
	m.announceUnlocks(resp.Unlocked)
	if m.Message == "" || time.Now().After(m.MessageExpires) {
		m.setMessage(fmt.Sprintf("%s Earned $%.0f!", chore.Icon, resp.Reward))
	}
	m.refresh()
}

func (m *Model) skipNight() {
	resp, err := m.Svc.Skip.Execute(context.Background(), daycycle.Request{SessionID: m.SessionID})
	if err != nil {
		m.setMessage(actionErrorMessage(err))
		return
	}
	if resp.ResultCode == pet.ResultUnavailable {
		m.setMessage("☀️ Can only sleep through the night (8 PM - 6 AM)")
		return
	}
	m.setMessage("🌅 Good morning! A new day begins")
	m.refresh()
}

func (m *Model) readopt() {
	ctx := context.Background()
	if err := m.Svc.Session.Reset(ctx, sessionmgmt.ResetRequest{SessionID: m.SessionID}); err != nil {
		m.Err = err
		return
	}
	if _, err := m.Svc.Session.Create(ctx, sessionmgmt.CreateRequest{
		SessionID: m.SessionID,
		Name:      m.PetName,
		Species:   m.Species,
	}); err != nil {
		m.Err = err
		return
	}
	m.ShowingAdoptPrompt = false
	m.Choice = 0
	m.setMessage("🐾 Welcome home, " + m.PetName + "!")
	m.refresh()
}

func (m *Model) announceUnlocks(unlocked []pet.Achievement) {
	for _, a := range unlocked {
		m.setMessage("🏆 Achievement unlocked: " + a.Title)
	}
}

func actionErrorMessage(err error) string {
	switch {
	case errors.Is(err, care.ErrInsufficientFunds):
		return "💸 Not enough money!"
	case errors.Is(err, pet.ErrChoreDone):
		return "✅ Already done today!"
	case errors.Is(err, pet.ErrWrongPeriod):
		return "🌙 Not the right time for that"
	case errors.Is(err, pet.ErrPetDead), errors.Is(err, earn.ErrSessionTerminated):
		return "💀 Your pet is no longer with us..."
	case errors.Is(err, earn.ErrCooldownActive):
		return "⏳ That chore needs a short break"
	case errors.Is(err, session.ErrInvalidName), errors.Is(err, session.ErrInvalidSpecies):
		return "❌ Invalid pet"
	default:
		return "❌ " + err.Error()
	}
}
