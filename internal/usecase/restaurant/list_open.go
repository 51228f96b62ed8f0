package restaurant

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/restaurant-hours/internal/domain/openhours"
	"github.com/BruksfildServices01/restaurant-hours/internal/httperr"
)

const (
	SourceMemory  = "memory"
	SourceSQL     = "sql"
	SourceBuilder = "builder"
)

// ListOpenRestaurants answers "who is open" from one of several Finder
// backends, selected by name.
type ListOpenRestaurants struct {
	finders       map[string]openhours.Finder
	defaultSource string
	loc           *time.Location
	log           *zap.Logger
}

func NewListOpenRestaurants(
	finders map[string]openhours.Finder,
	defaultSource string,
	loc *time.Location,
	log *zap.Logger,
) *ListOpenRestaurants {
	return &ListOpenRestaurants{
		finders:       finders,
		defaultSource: defaultSource,
		loc:           loc,
		log:           log,
	}
}

func (uc *ListOpenRestaurants) finder(source string) (openhours.Finder, string, error) {
	if source == "" {
		source = uc.defaultSource
	}
	f, ok := uc.finders[source]
	if !ok {
		return nil, source, httperr.ErrBusiness("unknown_source")
	}
	return f, source, nil
}

func (uc *ListOpenRestaurants) Execute(
	ctx context.Context,
	source string,
	day openhours.Day,
	at openhours.Clock,
) ([]openhours.Restaurant, error) {

	if !day.Valid() {
		return nil, httperr.ErrBusiness("invalid_day")
	}
	if !at.Valid() {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	f, name, err := uc.finder(source)
	if err != nil {
		return nil, err
	}

	rs, err := f.ListOpen(ctx, day, at)
	if err != nil {
		uc.log.Error("list open restaurants failed",
			zap.String("source", name),
			zap.Stringer("day", day),
			zap.Stringer("time", at),
			zap.Error(err),
		)
		return nil, err
	}

	uc.log.Debug("listed open restaurants",
		zap.String("source", name),
		zap.Stringer("day", day),
		zap.Stringer("time", at),
		zap.Int("count", len(rs)),
	)
	return rs, nil
}

// ExecuteAt reads the day and minute of ts in the configured zone. Seconds
// are truncated.
func (uc *ListOpenRestaurants) ExecuteAt(
	ctx context.Context,
	source string,
	ts time.Time,
) ([]openhours.Restaurant, error) {

	local := ts.In(uc.loc)
	return uc.Execute(ctx, source, openhours.DayOf(local.Weekday()), openhours.ClockOf(local))
}
