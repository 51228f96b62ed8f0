package audit

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/restaurant-hours/internal/models"
)

// Logger writes dropped import records to import_logs.
type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(ctx context.Context, ev Event) error {
	log := models.ImportLog{
		Source: ev.Source,
		Line:   ev.Line,
		Name:   ev.Name,
		Reason: ev.Reason,
	}

	return l.db.WithContext(ctx).Create(&log).Error
}
