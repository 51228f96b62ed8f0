package restaurant

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/restaurant-hours/internal/audit"
	"github.com/BruksfildServices01/restaurant-hours/internal/domain/openhours"
	"github.com/BruksfildServices01/restaurant-hours/internal/infra/source"
)

type RecordOpener interface {
	Open(ctx context.Context, location string) (io.ReadCloser, error)
}

type Auditor interface {
	Dispatch(ev audit.Event)
}

// DroppedRecord is a source line that produced no restaurant.
type DroppedRecord struct {
	Line   int    `json:"line"`
	Name   string `json:"name,omitempty"`
	Reason string `json:"reason"`
}

type ImportResult struct {
	Restaurants []openhours.Restaurant
	Dropped     []DroppedRecord
}

func (r *ImportResult) Accepted() int {
	return len(r.Restaurants)
}

// ImportRestaurants reads the restaurant source, keeps every record that
// parses and replaces the stored set with them. Hooks run after a
// successful import, in order.
type ImportRestaurants struct {
	opener   RecordOpener
	location string
	store    openhours.Store
	audit    Auditor
	log      *zap.Logger
	hooks    []func([]openhours.Restaurant)
}

// NewImportRestaurants accepts a nil store, in which case nothing is
// persisted and only the hooks see the result.
func NewImportRestaurants(
	opener RecordOpener,
	location string,
	store openhours.Store,
	audit Auditor,
	log *zap.Logger,
	hooks ...func([]openhours.Restaurant),
) *ImportRestaurants {
	return &ImportRestaurants{
		opener:   opener,
		location: location,
		store:    store,
		audit:    audit,
		log:      log,
		hooks:    hooks,
	}
}

func (uc *ImportRestaurants) Execute(ctx context.Context) (*ImportResult, error) {
	rc, err := uc.opener.Open(ctx, uc.location)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return uc.ExecuteFrom(ctx, rc)
}

func (uc *ImportRestaurants) ExecuteFrom(ctx context.Context, r io.Reader) (*ImportResult, error) {
	records, err := source.ReadRecords(r)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{
		Restaurants: make([]openhours.Restaurant, 0, len(records)),
	}

	for _, rec := range records {
		rest, err := parse(rec)
		if err != nil {
			uc.drop(result, rec, err)
			continue
		}
		result.Restaurants = append(result.Restaurants, rest)
	}

	if uc.store != nil {
		if err := uc.store.ReplaceAll(ctx, result.Restaurants); err != nil {
			return nil, fmt.Errorf("store restaurants: %w", err)
		}
	}

	uc.dispatchDropped(result.Dropped)

	for _, hook := range uc.hooks {
		hook(result.Restaurants)
	}

	uc.log.Info("restaurants imported",
		zap.String("location", uc.location),
		zap.Int("accepted", result.Accepted()),
		zap.Int("dropped", len(result.Dropped)),
	)
	return result, nil
}

func parse(rec source.Record) (openhours.Restaurant, error) {
	if rec.Err != nil {
		return openhours.Restaurant{}, rec.Err
	}
	return openhours.ParseRecord(rec.Fields)
}

func (uc *ImportRestaurants) drop(result *ImportResult, rec source.Record, err error) {
	d := DroppedRecord{
		Line:   rec.Line,
		Reason: reason(err),
	}
	if len(rec.Fields) > 0 {
		d.Name = strings.TrimSpace(rec.Fields[0])
	}
	result.Dropped = append(result.Dropped, d)

	uc.log.Warn("dropping restaurant record",
		zap.Int("line", d.Line),
		zap.String("name", d.Name),
		zap.String("reason", d.Reason),
	)
}

// dispatchDropped must only run after the store has committed.
func (uc *ImportRestaurants) dispatchDropped(dropped []DroppedRecord) {
	if uc.audit == nil {
		return
	}
	for _, d := range dropped {
		uc.audit.Dispatch(audit.Event{
			Source: uc.location,
			Line:   d.Line,
			Name:   d.Name,
			Reason: d.Reason,
		})
	}
}

func reason(err error) string {
	var me *openhours.MalformedScheduleError
	if errors.As(err, &me) {
		return me.Reason
	}
	return err.Error()
}
