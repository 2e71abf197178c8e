// Package model holds the gorm row types. JSON columns carry the small
// set-valued pieces of the aggregate; everything the simulation or a query
// filters on gets its own column.
package model

import "time"

type PetSession struct {
	SessionID      string `gorm:"primaryKey;column:session_id"`
	Name           string
	Species        string
	Stage          string
	Level          int32
	Experience     int32
	Hunger         float64
	Happiness      float64
	Health         float64
	Energy         float64
	Hygiene        float64
	CreatedAtMs    int64 `gorm:"column:created_at_ms"`
	LastGameDay    int32
	CompletedToday []byte `gorm:"type:jsonb"`
	CleanCount     int32
	VetCount       int32
	TreatCount     int32
	SleepCount     int32
	Unlocked       []byte `gorm:"type:jsonb"`
	DaysPassed     int32
	HappyStreak    int32
	Money          float64
	LifetimeEarned float64
	LastUpdate     time.Time
	ChoreNotBefore []byte `gorm:"type:jsonb"`
	Version        int64
	UpdatedAt      time.Time
}

func (PetSession) TableName() string { return "pet_sessions" }

type Transaction struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	SessionID   string `gorm:"index"`
	TxID        string
	Description string
	Amount      float64
	Timestamp   time.Time
}

func (Transaction) TableName() string { return "transactions" }

type DomainEvent struct {
	ID         string `gorm:"primaryKey"`
	SessionID  string `gorm:"index"`
	Type       string
	OccurredAt time.Time
	Payload    []byte `gorm:"type:jsonb"`
}

func (DomainEvent) TableName() string { return "domain_events" }
