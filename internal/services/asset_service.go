package services

import (
	"context"

	"gorm.io/gorm"

	apperrors "propfund/internal/errors"
	"propfund/internal/models"
)

// assetService guards the asset ledger for direct use over the API.
type assetService struct {
	db     *gorm.DB
	lock   *OperationLock
	access AccessServicer
	assets AssetLedgerServicer
	escrow string
}

// NewAssetService creates a new AssetServicer. Allowances granted through
// it are reported against the escrow spender.
func NewAssetService(db *gorm.DB, lock *OperationLock, access AccessServicer, assets AssetLedgerServicer, escrow string) AssetServicer {
	return &assetService{db: db, lock: lock, access: access, assets: assets, escrow: escrow}
}

// CreateAsset registers a payment or revenue asset. Admin only.
func (s *assetService) CreateAsset(ctx context.Context, actor, symbol string, kind models.AssetKind) (*models.Asset, error) {
	if kind != models.AssetKindPayment && kind != models.AssetKindRevenue {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "only payment and revenue assets can be registered")
	}
	var asset *models.Asset
	err := s.lock.Run(ctx, "createAsset", func(ctx context.Context) error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := requireAdmin(s.access, tx, actor); err != nil {
				return err
			}
			a, err := s.assets.RegisterAsset(tx, symbol, kind, nil)
			if err != nil {
				return err
			}
			asset = a
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return asset, nil
}

// MintAsset issues units of a payment or revenue asset. Admin only; share
// supply is fixed at property creation.
func (s *assetService) MintAsset(ctx context.Context, actor, assetID, to string, amount int64) error {
	return s.lock.Run(ctx, "mintAsset", func(ctx context.Context) error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := requireAdmin(s.access, tx, actor); err != nil {
				return err
			}
			asset, err := s.assets.GetAsset(tx, assetID)
			if err != nil {
				return err
			}
			if asset.Kind == models.AssetKindShare {
				return apperrors.WithMessage(apperrors.ErrInvalidInput, "share assets cannot be minted")
			}
			return s.assets.Mint(tx, assetID, to, amount)
		})
	})
}

// ApproveSpend sets the allowance spender may pull from owner's balance.
// An empty spender means the escrow.
func (s *assetService) ApproveSpend(ctx context.Context, owner, assetID, spender string, amount int64) error {
	if spender == "" {
		spender = s.escrow
	}
	return s.lock.Run(ctx, "approveSpend", func(ctx context.Context) error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := requireNotBlacklisted(s.access, tx, owner); err != nil {
				return err
			}
			return s.assets.Approve(tx, assetID, owner, spender, amount)
		})
	})
}

// Holding returns holder's balance and the allowance it granted the escrow.
func (s *assetService) Holding(ctx context.Context, assetID, holder string) (*AssetHolding, error) {
	db := s.db.WithContext(ctx)
	if _, err := s.assets.GetAsset(db, assetID); err != nil {
		return nil, err
	}
	bal, err := s.assets.BalanceOf(db, assetID, holder)
	if err != nil {
		return nil, err
	}
	allowance, err := s.assets.Allowance(db, assetID, holder, s.escrow)
	if err != nil {
		return nil, err
	}
	return &AssetHolding{AssetID: assetID, Holder: holder, Balance: bal, EscrowAllowance: allowance}, nil
}
