// Package events keeps an append-only journal of property lifecycle
// notifications. Events are observability only: the ledger never reads them
// back to make decisions.
package events

import (
	"context"
	"time"
)

// Type names a lifecycle notification.
type Type string

const (
	PropertyCreated    Type = "property.created"
	PropertyApproved   Type = "property.approved"
	PropertyCanceled   Type = "property.canceled"
	RaiseExtended      Type = "raise.extended"
	RaiseCompleted     Type = "raise.completed"
	Invested           Type = "investment.created"
	AdminInvested      Type = "investment.admin_created"
	InvestmentReverted Type = "investment.reverted"
	FundsRecovered     Type = "investment.recovered"
	TokensClaimed      Type = "shares.claimed"
	SharesTransferred  Type = "shares.transferred"
	RevenueDistributed Type = "revenue.distributed"
	RevenueClaimed     Type = "revenue.claimed"
)

// Event is one journal record. Seq is assigned by the journal.
type Event struct {
	Seq        uint64         `json:"seq"`
	Type       Type           `json:"type"`
	PropertyID uint           `json:"property_id"`
	Actor      string         `json:"actor"`
	Data       map[string]any `json:"data,omitempty"`
	At         time.Time      `json:"at"`
}

// Journal records and lists lifecycle events.
type Journal interface {
	Publish(ctx context.Context, evt Event) error
	ListByProperty(ctx context.Context, propertyID uint, limit int) ([]Event, error)
}
