package services

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"propfund/internal/accrual"
	apperrors "propfund/internal/errors"
	"propfund/internal/events"
	"propfund/internal/models"
)

// dividendService is the cumulative revenue accrual engine. Shares held in
// escrow are excluded from the accruing supply.
type dividendService struct {
	engine
	access   AccessServicer
	assets   AssetLedgerServicer
	platform PlatformServicer
	escrow   string
}

// NewDividendService creates a new DividendServicer.
func NewDividendService(db *gorm.DB, lock *OperationLock, journal events.Journal, access AccessServicer, assets AssetLedgerServicer, platform PlatformServicer, escrow string) DividendServicer {
	return &dividendService{
		engine:   newEngine(db, lock, journal),
		access:   access,
		assets:   assets,
		platform: platform,
		escrow:   escrow,
	}
}

// CreatePool starts an empty accumulator for a property's share asset.
func (s *dividendService) CreatePool(tx *gorm.DB, property *models.Property) error {
	pool := &models.DividendPool{
		ShareAssetID:              property.ShareAssetID,
		PropertyID:                property.ID,
		RevenueAssetID:            property.RevenueAssetID,
		CumulativeRevenuePerShare: decimal.Zero,
	}
	if err := tx.Create(pool).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// DistributeRevenue pulls amount of the revenue asset from the caller and
// spreads it over the circulating shares. Truncation dust stays in escrow.
func (s *dividendService) DistributeRevenue(ctx context.Context, caller string, id uint, amount int64) (*models.DividendPool, error) {
	var pool *models.DividendPool
	err := s.run(ctx, "distributeRevenue", caller, func(o *opScope) error {
		tx := o.tx
		if err := requireNotPaused(s.access, tx); err != nil {
			return err
		}
		if err := requireNotBlacklisted(s.access, tx, caller); err != nil {
			return err
		}
		p, err := loadProperty(tx, id)
		if err != nil {
			return err
		}
		if !p.IsCompleted {
			return apperrors.ErrRaiseNotCompleted
		}
		cfg, err := s.platform.GetConfig(tx)
		if err != nil {
			return err
		}
		if amount < cfg.MinRevenueDeposit {
			return apperrors.ErrDepositTooSmall
		}

		circulating, err := s.circulatingSupply(tx, p.ShareAssetID)
		if err != nil {
			return err
		}
		inc, err := accrual.PerShareIncrement(amount, circulating)
		switch {
		case errors.Is(err, accrual.ErrZeroSupply):
			return apperrors.ErrNoCirculatingSupply
		case errors.Is(err, accrual.ErrZeroIncrement):
			return apperrors.WithMessage(apperrors.ErrDepositTooSmall, "deposit rounds to zero per share")
		case err != nil:
			return apperrors.Wrap(apperrors.ErrInvalidInput, err)
		}

		if err := s.assets.TransferFrom(tx, p.RevenueAssetID, s.escrow, caller, s.escrow, amount); err != nil {
			return err
		}

		pl, err := loadPool(tx, p.ShareAssetID)
		if err != nil {
			return err
		}
		pl.CumulativeRevenuePerShare = pl.CumulativeRevenuePerShare.Add(inc)
		pl.TotalDeposited += amount
		if err := save(tx, pl); err != nil {
			return err
		}

		o.emit(events.RevenueDistributed, id, map[string]any{
			"amount":                       amount,
			"circulating_supply":           circulating,
			"cumulative_revenue_per_share": pl.CumulativeRevenuePerShare.String(),
		})
		pool = pl
		return nil
	})
	if err != nil {
		return nil, err
	}
	return pool, nil
}

// ClaimRevenue pays a holder everything accrued since its last settlement.
func (s *dividendService) ClaimRevenue(ctx context.Context, holder string, id uint) (int64, error) {
	var paid int64
	err := s.run(ctx, "claimRevenue", holder, func(o *opScope) error {
		p, err := loadProperty(o.tx, id)
		if err != nil {
			return err
		}
		pool, err := loadPool(o.tx, p.ShareAssetID)
		if err != nil {
			return err
		}
		owed, err := s.settle(o.tx, pool, holder)
		if err != nil {
			return err
		}
		if err := save(o.tx, pool); err != nil {
			return err
		}
		if owed > 0 {
			o.emit(events.RevenueClaimed, id, map[string]any{"holder": holder, "amount": owed})
		}
		paid = owed
		return nil
	})
	if err != nil {
		return 0, err
	}
	return paid, nil
}

// PendingRevenue returns what ClaimRevenue would pay now.
func (s *dividendService) PendingRevenue(ctx context.Context, holder string, id uint) (int64, error) {
	if holder == s.escrow {
		return 0, nil
	}
	db := s.db.WithContext(ctx)
	p, err := loadProperty(db, id)
	if err != nil {
		return 0, err
	}
	pool, err := loadPool(db, p.ShareAssetID)
	if err != nil {
		return 0, err
	}
	snap, err := loadSnapshot(db, pool.ShareAssetID, holder)
	if err != nil {
		return 0, err
	}
	bal, err := s.assets.BalanceOf(db, p.ShareAssetID, holder)
	if err != nil {
		return 0, err
	}
	return owedTo(pool, snap, bal)
}

// TransferShares moves shares between two holders, settling both first.
func (s *dividendService) TransferShares(ctx context.Context, from, to string, id uint, amount int64) error {
	if amount <= 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be positive")
	}
	if from == s.escrow {
		return apperrors.WithMessage(apperrors.ErrReservedAddress, "escrowed shares cannot be transferred")
	}
	if to == "" || to == from || to == s.escrow {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid recipient")
	}

	return s.run(ctx, "transferShares", from, func(o *opScope) error {
		tx := o.tx
		if err := requireNotPaused(s.access, tx); err != nil {
			return err
		}
		for _, addr := range []string{from, to} {
			if err := requireNotBlacklisted(s.access, tx, addr); err != nil {
				return err
			}
		}
		p, err := loadProperty(tx, id)
		if err != nil {
			return err
		}
		if !p.IsCompleted {
			return apperrors.ErrRaiseNotCompleted
		}
		if err := s.MoveShares(tx, p, from, to, amount); err != nil {
			return err
		}
		o.emit(events.SharesTransferred, id, map[string]any{"from": from, "to": to, "shares": amount})
		return nil
	})
}

// GetPool returns the accrual state of a property's share asset.
func (s *dividendService) GetPool(ctx context.Context, id uint) (*models.DividendPool, error) {
	db := s.db.WithContext(ctx)
	p, err := loadProperty(db, id)
	if err != nil {
		return nil, err
	}
	return loadPool(db, p.ShareAssetID)
}

// MoveShares settles both sides against their pre-transfer balances, then
// moves the shares.
func (s *dividendService) MoveShares(tx *gorm.DB, property *models.Property, from, to string, amount int64) error {
	pool, err := loadPool(tx, property.ShareAssetID)
	if err != nil {
		return err
	}
	for _, holder := range []string{from, to} {
		if _, err := s.settle(tx, pool, holder); err != nil {
			return err
		}
	}
	if err := s.assets.Transfer(tx, property.ShareAssetID, from, to, amount); err != nil {
		return err
	}
	return save(tx, pool)
}

// settle pays a holder its accrued revenue and moves its snapshot up to the
// pool's cumulative value. The caller saves the pool.
func (s *dividendService) settle(tx *gorm.DB, pool *models.DividendPool, holder string) (int64, error) {
	if holder == s.escrow {
		return 0, nil
	}
	snap, err := loadSnapshot(tx, pool.ShareAssetID, holder)
	if err != nil {
		return 0, err
	}
	bal, err := s.assets.BalanceOf(tx, pool.ShareAssetID, holder)
	if err != nil {
		return 0, err
	}
	owed, err := owedTo(pool, snap, bal)
	if err != nil {
		return 0, err
	}

	snap.SettledRevenuePerShare = pool.CumulativeRevenuePerShare
	if owed > 0 {
		if err := s.assets.Transfer(tx, pool.RevenueAssetID, s.escrow, holder, owed); err != nil {
			return 0, err
		}
		snap.TotalClaimed += owed
		pool.TotalClaimed += owed
	}
	if err := save(tx, snap); err != nil {
		return 0, err
	}
	return owed, nil
}

func (s *dividendService) circulatingSupply(tx *gorm.DB, shareAssetID string) (int64, error) {
	total, err := s.assets.TotalSupply(tx, shareAssetID)
	if err != nil {
		return 0, err
	}
	held, err := s.assets.BalanceOf(tx, shareAssetID, s.escrow)
	if err != nil {
		return 0, err
	}
	return total - held, nil
}

func owedTo(pool *models.DividendPool, snap *models.DividendSnapshot, balance int64) (int64, error) {
	owed, err := accrual.Owed(pool.CumulativeRevenuePerShare, snap.SettledRevenuePerShare, balance)
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return owed, nil
}

func loadPool(tx *gorm.DB, shareAssetID string) (*models.DividendPool, error) {
	var pool models.DividendPool
	if err := tx.Where("share_asset_id = ?", shareAssetID).First(&pool).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.WithMessage(apperrors.ErrNotFound, "dividend pool not found")
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &pool, nil
}

// loadSnapshot returns the holder's snapshot, starting at zero for a holder
// that was never settled.
func loadSnapshot(tx *gorm.DB, shareAssetID, holder string) (*models.DividendSnapshot, error) {
	var snap models.DividendSnapshot
	err := tx.Where("share_asset_id = ? AND holder = ?", shareAssetID, holder).First(&snap).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.DividendSnapshot{
			ShareAssetID:           shareAssetID,
			Holder:                 holder,
			SettledRevenuePerShare: decimal.Zero,
		}, nil
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &snap, nil
}
