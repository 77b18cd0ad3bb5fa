package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"gorm.io/gorm"

	apperrors "propfund/internal/errors"
	"propfund/internal/events"
	"propfund/internal/models"
	"propfund/internal/pagination"
	"propfund/internal/uuid"
)

// PropertyDeps are the collaborators of the property ledger.
type PropertyDeps struct {
	Lock      *OperationLock
	Access    AccessServicer
	Assets    AssetLedgerServicer
	Referrals ReferralServicer
	Platform  PlatformServicer
	Dividends DividendServicer
	Journal   events.Journal

	// Escrow is the custody account of collected funds and undelivered shares.
	Escrow string
	// MaxExtension bounds how far ExtendRaise may move a deadline.
	MaxExtension time.Duration
}

// propertyService is the property ledger and fee engine.
type propertyService struct {
	engine
	access       AccessServicer
	assets       AssetLedgerServicer
	referrals    ReferralServicer
	platform     PlatformServicer
	dividends    DividendServicer
	escrow       string
	maxExtension time.Duration
}

// NewPropertyService creates a new PropertyServicer.
func NewPropertyService(db *gorm.DB, deps PropertyDeps) PropertyServicer {
	return &propertyService{
		engine:       newEngine(db, deps.Lock, deps.Journal),
		access:       deps.Access,
		assets:       deps.Assets,
		referrals:    deps.Referrals,
		platform:     deps.Platform,
		dividends:    deps.Dividends,
		escrow:       deps.Escrow,
		maxExtension: deps.MaxExtension,
	}
}

// CreateProperty opens a new raise. The share asset is issued to escrow in
// full; shares leave escrow only when investors claim them.
func (s *propertyService) CreateProperty(ctx context.Context, caller string, params CreatePropertyParams) (*models.Property, error) {
	if params.SharesForSale <= 0 || params.PricePerShare <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "share count and price per share must be positive")
	}
	if params.SharesForSale > math.MaxInt64/params.PricePerShare {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "raise value overflows")
	}
	if params.ThresholdValue <= 0 || params.ThresholdValue > params.SharesForSale*params.PricePerShare {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "threshold must be positive and reachable")
	}
	if params.OwnerFeeBasisPoints < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrFeeOutOfBounds, "owner fee must not be negative")
	}
	if !uuid.Valid(params.PaymentAssetID) || !uuid.Valid(params.RevenueAssetID) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "payment and revenue asset ids must be uuids")
	}
	if params.OwnerPayoutAddress == "" {
		params.OwnerPayoutAddress = caller
	}
	if err := rejectReserved(s.access, params.OwnerPayoutAddress); err != nil {
		return nil, err
	}

	var property *models.Property
	err := s.run(ctx, "createProperty", caller, func(o *opScope) error {
		tx := o.tx
		if err := requireNotPaused(s.access, tx); err != nil {
			return err
		}
		cfg, err := requireInitialized(s.platform, tx)
		if err != nil {
			return err
		}
		if err := requireInvestor(s.access, tx, caller); err != nil {
			return err
		}
		if params.OwnerFeeBasisPoints >= cfg.FeeCapBasisPoints {
			return apperrors.WithMessage(apperrors.ErrFeeOutOfBounds, "owner fee must be below the fee cap")
		}
		for _, assetID := range []string{params.PaymentAssetID, params.RevenueAssetID} {
			ok, err := s.platform.IsWhitelisted(tx, assetID)
			if err != nil {
				return err
			}
			if !ok {
				return apperrors.WithMessage(apperrors.ErrAssetNotWhitelisted, "asset "+assetID+" is not whitelisted")
			}
		}

		p := &models.Property{
			PricePerShare:      params.PricePerShare,
			SharesForSale:      params.SharesForSale,
			ThresholdValue:     params.ThresholdValue,
			Creator:            caller,
			OwnerPayoutAddress: params.OwnerPayoutAddress,
			PaymentAssetID:     params.PaymentAssetID,
			RevenueAssetID:     params.RevenueAssetID,
			Metadata:           params.Metadata,
		}
		if err := tx.Omit("ShareAssetID").Create(p).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		share, err := s.assets.RegisterAsset(tx, fmt.Sprintf("PROP-%d", p.ID), models.AssetKindShare, &p.ID)
		if err != nil {
			return err
		}
		if err := s.assets.Mint(tx, share.ID, s.escrow, p.SharesForSale); err != nil {
			return err
		}
		p.ShareAssetID = share.ID

		fees := &models.FeeAccumulator{PropertyID: p.ID, OwnerFeeBasisPoints: params.OwnerFeeBasisPoints}
		if err := save(tx, p, fees); err != nil {
			return err
		}
		if err := s.dividends.CreatePool(tx, p); err != nil {
			return err
		}

		o.emit(events.PropertyCreated, p.ID, map[string]any{
			"shares_for_sale": p.SharesForSale,
			"price_per_share": p.PricePerShare,
			"threshold_value": p.ThresholdValue,
			"share_asset_id":  p.ShareAssetID,
		})
		property = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return property, nil
}

// ApproveProperty opens an unapproved raise for investment until deadline.
func (s *propertyService) ApproveProperty(ctx context.Context, caller string, id uint, deadline time.Time) (*models.Property, error) {
	var property *models.Property
	err := s.run(ctx, "approveProperty", caller, func(o *opScope) error {
		if err := requireAdmin(s.access, o.tx, caller); err != nil {
			return err
		}
		p, err := loadProperty(o.tx, id)
		if err != nil {
			return err
		}
		if p.IsDead {
			return apperrors.ErrPropertyDead
		}
		if p.IsApproved {
			return apperrors.WithMessage(apperrors.ErrAlreadyDone, "property is already approved")
		}
		if !deadline.After(o.now) {
			return apperrors.WithMessage(apperrors.ErrInvalidInput, "deadline must be in the future")
		}

		p.IsApproved = true
		p.RaiseDeadline = deadline.UTC()
		if err := save(o.tx, p); err != nil {
			return err
		}
		o.emit(events.PropertyApproved, p.ID, map[string]any{"deadline": p.RaiseDeadline})
		property = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return property, nil
}

// CancelProperty terminates a raise before completion. The deadline is reset
// to the zero time so every investor can recover at once.
func (s *propertyService) CancelProperty(ctx context.Context, caller string, id uint) (*models.Property, error) {
	var property *models.Property
	err := s.run(ctx, "cancelProperty", caller, func(o *opScope) error {
		if err := requireAdmin(s.access, o.tx, caller); err != nil {
			return err
		}
		p, err := loadProperty(o.tx, id)
		if err != nil {
			return err
		}
		if p.IsCompleted {
			return apperrors.ErrRaiseCompleted
		}
		if p.IsDead {
			return apperrors.WithMessage(apperrors.ErrAlreadyDone, "property is already canceled")
		}

		p.RaiseDeadline = time.Time{}
		p.IsApproved = false
		p.IsDead = true
		if err := save(o.tx, p); err != nil {
			return err
		}
		o.emit(events.PropertyCanceled, p.ID, nil)
		property = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return property, nil
}

// ExtendRaise moves an open raise's deadline forward, once.
func (s *propertyService) ExtendRaise(ctx context.Context, caller string, id uint, newDeadline time.Time) (*models.Property, error) {
	var property *models.Property
	err := s.run(ctx, "extendRaise", caller, func(o *opScope) error {
		if err := requireAdmin(s.access, o.tx, caller); err != nil {
			return err
		}
		p, err := loadProperty(o.tx, id)
		if err != nil {
			return err
		}
		if err := checkOpen(p, o.now); err != nil {
			return err
		}
		if p.WasExtended {
			return apperrors.ErrAlreadyExtended
		}
		if !newDeadline.After(p.RaiseDeadline) || newDeadline.After(p.RaiseDeadline.Add(s.maxExtension)) {
			return apperrors.WithMessage(apperrors.ErrInvalidInput,
				fmt.Sprintf("new deadline must be after the current one and at most %s later", s.maxExtension))
		}

		previous := p.RaiseDeadline
		p.RaiseDeadline = newDeadline.UTC()
		p.WasExtended = true
		if err := save(o.tx, p); err != nil {
			return err
		}
		o.emit(events.RaiseExtended, p.ID, map[string]any{"from": previous, "to": p.RaiseDeadline})
		property = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return property, nil
}

// SetOwnerFee overrides the owner fee rate of a property. It applies to
// investments made after the change.
func (s *propertyService) SetOwnerFee(ctx context.Context, caller string, id uint, bps int64) (*models.FeeAccumulator, error) {
	var fees *models.FeeAccumulator
	err := s.run(ctx, "setOwnerFee", caller, func(o *opScope) error {
		if err := requireAdmin(s.access, o.tx, caller); err != nil {
			return err
		}
		cfg, err := s.platform.GetConfig(o.tx)
		if err != nil {
			return err
		}
		if bps < 0 || bps >= cfg.FeeCapBasisPoints {
			return apperrors.WithMessage(apperrors.ErrFeeOutOfBounds, "owner fee must be below the fee cap")
		}
		p, err := loadProperty(o.tx, id)
		if err != nil {
			return err
		}
		if p.IsCompleted {
			return apperrors.ErrRaiseCompleted
		}
		if p.IsDead {
			return apperrors.ErrPropertyDead
		}
		f, err := loadFees(o.tx, id)
		if err != nil {
			return err
		}
		f.OwnerFeeBasisPoints = bps
		if err := save(o.tx, f); err != nil {
			return err
		}
		fees = f
		return nil
	})
	if err != nil {
		return nil, err
	}
	return fees, nil
}

// GetProperty retrieves a property by ID.
func (s *propertyService) GetProperty(ctx context.Context, id uint) (*models.Property, error) {
	return loadProperty(s.db.WithContext(ctx), id)
}

// ListProperties returns properties in creation order.
func (s *propertyService) ListProperties(ctx context.Context, page pagination.PageRequest) (*pagination.PageResponse[models.Property], error) {
	query := s.db.WithContext(ctx).Model(&models.Property{})
	resp, err := pagination.FindPage[models.Property](query, page, "id ASC")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &resp, nil
}

// GetFees returns the fee accumulators of a property.
func (s *propertyService) GetFees(ctx context.Context, id uint) (*models.FeeAccumulator, error) {
	return loadFees(s.db.WithContext(ctx), id)
}

// GetLedgerEntry returns one investor's position in a property.
func (s *propertyService) GetLedgerEntry(ctx context.Context, id uint, investor string) (*models.InvestorLedger, error) {
	db := s.db.WithContext(ctx)
	if _, err := loadProperty(db, id); err != nil {
		return nil, err
	}
	entry, err := loadLedger(db, id, investor)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, apperrors.ErrLedgerNotFound
	}
	return entry, nil
}

// ListLedger returns a property's investor entries in arrival order.
func (s *propertyService) ListLedger(ctx context.Context, id uint, page pagination.PageRequest) (*pagination.PageResponse[models.InvestorLedger], error) {
	db := s.db.WithContext(ctx)
	if _, err := loadProperty(db, id); err != nil {
		return nil, err
	}

	query := db.Model(&models.InvestorLedger{}).Where("property_id = ?", id)
	resp, err := pagination.FindPage[models.InvestorLedger](query, page, "created_at ASC", "investor ASC")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &resp, nil
}

// ListEvents returns the most recent lifecycle events of a property.
func (s *propertyService) ListEvents(ctx context.Context, id uint, limit int) ([]events.Event, error) {
	if _, err := loadProperty(s.db.WithContext(ctx), id); err != nil {
		return nil, err
	}
	if s.journal == nil {
		return []events.Event{}, nil
	}
	evts, err := s.journal.ListByProperty(ctx, id, limit)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if evts == nil {
		evts = []events.Event{}
	}
	return evts, nil
}

// checkOpen reports whether a property is accepting investment at now.
func checkOpen(p *models.Property, now time.Time) error {
	switch {
	case p.IsDead:
		return apperrors.ErrPropertyDead
	case !p.IsApproved:
		return apperrors.ErrNotApproved
	case p.IsCompleted:
		return apperrors.ErrRaiseCompleted
	case p.DeadlinePassed(now):
		return apperrors.ErrRaiseExpired
	}
	return nil
}
