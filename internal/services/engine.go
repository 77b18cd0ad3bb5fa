package services

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	apperrors "propfund/internal/errors"
	"propfund/internal/events"
	"propfund/internal/logger"
	"propfund/internal/models"
	"propfund/internal/telemetry"
)

// engine is the execution scaffolding shared by the ledger services: every
// mutating operation runs under the operation lock, inside one database
// transaction and one span. Events emitted by the operation are published
// only after the transaction commits.
type engine struct {
	db      *gorm.DB
	lock    *OperationLock
	journal events.Journal
	tracer  trace.Tracer
	now     func() time.Time
}

func newEngine(db *gorm.DB, lock *OperationLock, journal events.Journal) engine {
	return engine{db: db, lock: lock, journal: journal, tracer: telemetry.Tracer(), now: time.Now}
}

// opScope is the state of one running operation.
type opScope struct {
	tx     *gorm.DB
	actor  string
	now    time.Time
	events []events.Event
}

func (o *opScope) emit(typ events.Type, propertyID uint, data map[string]any) {
	o.events = append(o.events, events.Event{
		Type:       typ,
		PropertyID: propertyID,
		Actor:      o.actor,
		Data:       data,
		At:         o.now,
	})
}

func (e *engine) run(ctx context.Context, op, actor string, fn func(o *opScope) error) error {
	ctx, span := e.tracer.Start(ctx, "ledger."+op, trace.WithAttributes(attribute.String("ledger.actor", actor)))
	defer span.End()

	var emitted []events.Event
	err := e.lock.Run(ctx, op, func(ctx context.Context) error {
		return e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			scope := &opScope{tx: tx, actor: actor, now: e.now().UTC()}
			if err := fn(scope); err != nil {
				return err
			}
			emitted = scope.events
			return nil
		})
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	e.publish(ctx, emitted)
	return nil
}

// publish writes events to the journal. Journal failures are logged and
// never reach the caller.
func (e *engine) publish(ctx context.Context, evts []events.Event) {
	if e.journal == nil {
		return
	}
	for _, evt := range evts {
		if err := e.journal.Publish(ctx, evt); err != nil {
			logger.FromContext(ctx).Warnw("failed to publish ledger event",
				"error", err,
				"type", evt.Type,
				"property_id", evt.PropertyID,
				"actor", evt.Actor,
			)
		}
	}
}

func loadProperty(tx *gorm.DB, id uint) (*models.Property, error) {
	var p models.Property
	if err := tx.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPropertyNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &p, nil
}

func loadFees(tx *gorm.DB, id uint) (*models.FeeAccumulator, error) {
	var f models.FeeAccumulator
	if err := tx.Where("property_id = ?", id).First(&f).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPropertyNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &f, nil
}

// loadLedger returns the investor's entry, or nil when there is none.
func loadLedger(tx *gorm.DB, id uint, investor string) (*models.InvestorLedger, error) {
	var l models.InvestorLedger
	err := tx.Where("property_id = ? AND investor = ?", id, investor).First(&l).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &l, nil
}

func save(tx *gorm.DB, values ...any) error {
	for _, v := range values {
		if err := tx.Save(v).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return nil
}
