package audit

import (
	"encoding/json"
	"log/slog"

	"gorm.io/gorm"

	"github.com/pontolago/ponto-api/internal/models"
)

type Event struct {
	ActorEmail string
	Action     string
	Entity     string
	EntityID   string
	Metadata   any
}

// Sink receives audit events. The postgres deployment writes them to
// the audit_logs table; the other store drivers fall back to the
// structured log.
type Sink interface {
	Log(ev Event) error
}

// --------------------------------------------------
// Database sink
// --------------------------------------------------

type DBLogger struct {
	db *gorm.DB
}

func NewDBLogger(db *gorm.DB) *DBLogger {
	return &DBLogger{db: db}
}

func (l *DBLogger) Log(ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	rec := models.AuditLog{
		ActorEmail: ev.ActorEmail,
		Action:     ev.Action,
		Entity:     ev.Entity,
		EntityID:   ev.EntityID,
		Metadata:   metaJSON,
	}

	return l.db.Create(&rec).Error
}

// --------------------------------------------------
// Log sink
// --------------------------------------------------

type SlogLogger struct {
	logger *slog.Logger
}

func NewSlogLogger(logger *slog.Logger) *SlogLogger {
	return &SlogLogger{logger: logger}
}

func (l *SlogLogger) Log(ev Event) error {
	l.logger.Info("audit",
		"actor", ev.ActorEmail,
		"action", ev.Action,
		"entity", ev.Entity,
		"entity_id", ev.EntityID,
	)
	return nil
}
