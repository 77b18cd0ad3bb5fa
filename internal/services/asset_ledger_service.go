package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "propfund/internal/errors"
	"propfund/internal/models"
)

// assetLedgerService is the built-in fungible balance ledger.
type assetLedgerService struct {
	db *gorm.DB
}

// NewAssetLedgerService creates a new AssetLedgerServicer.
func NewAssetLedgerService(db *gorm.DB) AssetLedgerServicer {
	return &assetLedgerService{db: db}
}

func (s *assetLedgerService) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return s.db
}

// atomic runs fn inside tx, or inside a new transaction when tx is nil.
func (s *assetLedgerService) atomic(tx *gorm.DB, fn func(db *gorm.DB) error) error {
	if tx != nil {
		return fn(tx)
	}
	return s.db.Transaction(fn)
}

// RegisterAsset creates a new asset with zero supply.
func (s *assetLedgerService) RegisterAsset(tx *gorm.DB, symbol string, kind models.AssetKind, propertyID *uint) (*models.Asset, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "asset symbol is required")
	}
	switch kind {
	case models.AssetKindPayment, models.AssetKindRevenue, models.AssetKindShare:
	default:
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown asset kind")
	}

	db := s.conn(tx)
	var count int64
	if err := db.Model(&models.Asset{}).Where("symbol = ?", symbol).Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateAssetCode
	}

	asset := &models.Asset{Symbol: symbol, Kind: kind, PropertyID: propertyID}
	if err := db.Create(asset).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return asset, nil
}

// GetAsset retrieves an asset by ID.
func (s *assetLedgerService) GetAsset(tx *gorm.DB, assetID string) (*models.Asset, error) {
	var asset models.Asset
	if err := s.conn(tx).Where("id = ?", assetID).First(&asset).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &asset, nil
}

// Mint issues amount new units of an asset to a holder.
func (s *assetLedgerService) Mint(tx *gorm.DB, assetID, to string, amount int64) error {
	if err := validateMovement(to, amount); err != nil {
		return err
	}
	return s.atomic(tx, func(db *gorm.DB) error {
		res := db.Model(&models.Asset{}).Where("id = ?", assetID).
			Update("total_supply", gorm.Expr("total_supply + ?", amount))
		if res.Error != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrAssetNotFound
		}
		return credit(db, assetID, to, amount)
	})
}

// Approve sets the amount spender may move out of owner's balance.
func (s *assetLedgerService) Approve(tx *gorm.DB, assetID, owner, spender string, amount int64) error {
	if owner == "" || spender == "" || amount < 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "owner, spender and a non-negative amount are required")
	}
	db := s.conn(tx)
	if _, err := s.GetAsset(db, assetID); err != nil {
		return err
	}

	allowance := &models.AssetAllowance{AssetID: assetID, Owner: owner, Spender: spender, Amount: amount}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "asset_id"}, {Name: "owner"}, {Name: "spender"}},
		DoUpdates: clause.AssignmentColumns([]string{"amount"}),
	}).Create(allowance).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// Transfer moves amount from one holder to another.
func (s *assetLedgerService) Transfer(tx *gorm.DB, assetID, from, to string, amount int64) error {
	if err := validateMovement(to, amount); err != nil {
		return err
	}
	if from == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "sender address is required")
	}
	return s.atomic(tx, func(db *gorm.DB) error {
		if err := debit(db, assetID, from, amount); err != nil {
			return err
		}
		return credit(db, assetID, to, amount)
	})
}

// TransferFrom moves amount out of from's balance on behalf of spender,
// consuming spender's allowance.
func (s *assetLedgerService) TransferFrom(tx *gorm.DB, assetID, spender, from, to string, amount int64) error {
	if err := validateMovement(to, amount); err != nil {
		return err
	}
	return s.atomic(tx, func(db *gorm.DB) error {
		res := db.Model(&models.AssetAllowance{}).
			Where("asset_id = ? AND owner = ? AND spender = ? AND amount >= ?", assetID, from, spender, amount).
			Update("amount", gorm.Expr("amount - ?", amount))
		if res.Error != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrAllowanceExceeded
		}
		if err := debit(db, assetID, from, amount); err != nil {
			return err
		}
		return credit(db, assetID, to, amount)
	})
}

// BalanceOf returns a holder's balance; unknown holders have zero.
func (s *assetLedgerService) BalanceOf(tx *gorm.DB, assetID, holder string) (int64, error) {
	var bal models.AssetBalance
	err := s.conn(tx).Where("asset_id = ? AND holder = ?", assetID, holder).First(&bal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return bal.Amount, nil
}

// Allowance returns what spender may still move out of owner's balance.
func (s *assetLedgerService) Allowance(tx *gorm.DB, assetID, owner, spender string) (int64, error) {
	var a models.AssetAllowance
	err := s.conn(tx).Where("asset_id = ? AND owner = ? AND spender = ?", assetID, owner, spender).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return a.Amount, nil
}

// TotalSupply returns the number of units ever minted.
func (s *assetLedgerService) TotalSupply(tx *gorm.DB, assetID string) (int64, error) {
	asset, err := s.GetAsset(tx, assetID)
	if err != nil {
		return 0, err
	}
	return asset.TotalSupply, nil
}

func validateMovement(to string, amount int64) error {
	if to == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "recipient address is required")
	}
	if amount <= 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be positive")
	}
	return nil
}

// debit subtracts amount from a balance in a single conditional update so
// a balance can never go negative.
func debit(db *gorm.DB, assetID, holder string, amount int64) error {
	res := db.Model(&models.AssetBalance{}).
		Where("asset_id = ? AND holder = ? AND amount >= ?", assetID, holder, amount).
		Update("amount", gorm.Expr("amount - ?", amount))
	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrInsufficientFunds
	}
	return nil
}

func credit(db *gorm.DB, assetID, holder string, amount int64) error {
	bal := &models.AssetBalance{AssetID: assetID, Holder: holder, Amount: amount}
	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "asset_id"}, {Name: "holder"}},
		DoUpdates: clause.Assignments(map[string]any{
			"amount": gorm.Expr("asset_balances.amount + ?", amount),
		}),
	}).Create(bal).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
