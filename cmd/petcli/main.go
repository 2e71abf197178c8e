package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	sqliterepo "pawledger/internal/adapter/repo/sqlite"
	"pawledger/internal/adapter/tui"
	"pawledger/internal/app/care"
	"pawledger/internal/app/daycycle"
	"pawledger/internal/app/earn"
	"pawledger/internal/app/ledgerview"
	"pawledger/internal/app/ports"
	"pawledger/internal/app/sessionmgmt"
	"pawledger/internal/app/status"
	"pawledger/internal/app/tick"
	"pawledger/internal/domain/pet"
)

const localSessionID = "local"

func main() {
	name := flag.String("name", "Buddy", "pet name used when adopting")
	species := flag.String("species", "dog", "pet species: dog, cat, rabbit, hamster")
	dbPath := flag.String("db", defaultDBPath(), "path to the local state database")
	flag.Parse()

	db, err := sqliterepo.Open(*dbPath)
	if err != nil {
		fmt.Printf("open database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	sessionRepo := sqliterepo.NewSessionRepo(db)
	txRepo := sqliterepo.NewTransactionRepo(db)
	eventRepo := sqliterepo.NewEventRepo(db)
	txManager := sqliterepo.NewTxManager(db)

	svc := tui.Services{
		Session: sessionmgmt.UseCase{
			TxManager:   txManager,
			SessionRepo: sessionRepo,
			TxRepo:      txRepo,
			EventRepo:   eventRepo,
			Now:         time.Now,
		},
		Status: status.UseCase{SessionRepo: sessionRepo, Now: time.Now},
		Care: care.UseCase{
			TxManager:   txManager,
			SessionRepo: sessionRepo,
			TxRepo:      txRepo,
			EventRepo:   eventRepo,
			Now:         time.Now,
		},
		Earn: earn.UseCase{
			TxManager:   txManager,
			SessionRepo: sessionRepo,
			TxRepo:      txRepo,
			EventRepo:   eventRepo,
			Now:         time.Now,
		},
		Tick: tick.UseCase{
			TxManager:   txManager,
			SessionRepo: sessionRepo,
			EventRepo:   eventRepo,
			Now:         time.Now,
		},
		Skip: daycycle.UseCase{
			TxManager:   txManager,
			SessionRepo: sessionRepo,
			EventRepo:   eventRepo,
			Now:         time.Now,
		},
		Ledger: ledgerview.UseCase{SessionRepo: sessionRepo, TxRepo: txRepo},
	}

	if err := ensureSession(svc, *name, pet.Species(*species)); err != nil {
		fmt.Printf("adopt pet: %v\n", err)
		os.Exit(1)
	}

	m := tui.NewModel(svc, localSessionID, *name, pet.Species(*species))
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

func ensureSession(svc tui.Services, name string, species pet.Species) error {
	ctx := context.Background()
	_, err := svc.Status.Execute(ctx, status.Request{SessionID: localSessionID})
	if err == nil {
		return nil
	}
	if !errors.Is(err, ports.ErrNotFound) {
		return err
	}
	_, err = svc.Session.Create(ctx, sessionmgmt.CreateRequest{
		SessionID: localSessionID,
		Name:      name,
		Species:   species,
	})
	return err
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "pawledger.db"
	}
	return filepath.Join(home, ".pawledger", "pet.db")
}
