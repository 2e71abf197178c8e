package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	httpadapter "pawledger/internal/adapter/http"
	metricsinmem "pawledger/internal/adapter/metrics/inmemory"
	gormrepo "pawledger/internal/adapter/repo/gorm"
	"pawledger/internal/app/care"
	"pawledger/internal/app/daycycle"
	"pawledger/internal/app/earn"
	"pawledger/internal/app/ledgerview"
	"pawledger/internal/app/ports"
	"pawledger/internal/app/replay"
	"pawledger/internal/app/sessionmgmt"
	"pawledger/internal/app/status"
	"pawledger/internal/app/tick"

	"github.com/cloudwego/hertz/pkg/app/server"
)

func main() {
	sessionRepo, txRepo, eventRepo, txManager := mustBuildRepos()
	kpiRecorder := metricsinmem.NewRecorder()

	h := httpadapter.Handler{
		SessionUC: sessionmgmt.UseCase{
			TxManager:   txManager,
			SessionRepo: sessionRepo,
			TxRepo:      txRepo,
			EventRepo:   eventRepo,
			Now:         time.Now,
		},
		StatusUC: status.UseCase{SessionRepo: sessionRepo, Now: time.Now},
		CareUC: care.UseCase{
			TxManager:   txManager,
			SessionRepo: sessionRepo,
			TxRepo:      txRepo,
			EventRepo:   eventRepo,
			Metrics:     kpiRecorder,
			Now:         time.Now,
		},
		EarnUC: earn.UseCase{
			TxManager:   txManager,
			SessionRepo: sessionRepo,
			TxRepo:      txRepo,
			EventRepo:   eventRepo,
			Now:         time.Now,
		},
		TickUC: tick.UseCase{
			TxManager:   txManager,
			SessionRepo: sessionRepo,
			EventRepo:   eventRepo,
			Now:         time.Now,
		},
		SkipUC: daycycle.UseCase{
			TxManager:   txManager,
			SessionRepo: sessionRepo,
			EventRepo:   eventRepo,
			Now:         time.Now,
		},
		LedgerUC: ledgerview.UseCase{SessionRepo: sessionRepo, TxRepo: txRepo},
		ReplayUC: replay.UseCase{Events: eventRepo},
		KPI:      kpiRecorder,
	}

	addr := ":" + strconv.Itoa(intEnv("PAWLEDGER_PORT", 8080))
	s := server.Default(server.WithHostPorts(addr))
	h.RegisterRoutes(s)

	log.Printf("pawledger server listening on %s", addr)
	s.Spin()
}

func mustBuildRepos() (ports.SessionRepository, ports.TransactionRepository, ports.EventRepository, ports.TxManager) {
	dsn := os.Getenv("PAWLEDGER_DB_DSN")
	if dsn == "" {
		log.Fatal("PAWLEDGER_DB_DSN is required")
	}
	db, err := gormrepo.OpenPostgres(dsn)
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}

	migrationsDir := strings.TrimSpace(os.Getenv("PAWLEDGER_MIGRATIONS_DIR"))
	if migrationsDir == "" {
		migrationsDir = "./migrations"
	}
	if err := gormrepo.ApplyMigrations(context.Background(), db, migrationsDir); err != nil {
		log.Fatalf("apply migrations: %v", err)
	}

	return gormrepo.NewSessionRepo(db), gormrepo.NewTransactionRepo(db), gormrepo.NewEventRepo(db), gormrepo.NewTxManager(db)
}

func intEnv(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
