package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"propfund/internal/accrual"
	apperrors "propfund/internal/errors"
	"propfund/internal/models"
)

// DefaultMinRevenueDeposit bounds the rounding loss of a single revenue deposit.
const DefaultMinRevenueDeposit int64 = 1000

// platformService manages the global configuration singleton and the
// payment/revenue asset whitelist.
type platformService struct {
	db     *gorm.DB
	lock   *OperationLock
	access AccessServicer
	assets AssetLedgerServicer
}

// NewPlatformService creates a new PlatformServicer.
func NewPlatformService(db *gorm.DB, lock *OperationLock, access AccessServicer, assets AssetLedgerServicer) PlatformServicer {
	return &platformService{db: db, lock: lock, access: access, assets: assets}
}

// Initialize performs the one-time platform setup. Admin only.
func (s *platformService) Initialize(ctx context.Context, actor string, params InitializeParams) (*models.GlobalConfig, error) {
	if params.TreasuryAddress == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "treasury address is required")
	}
	if err := rejectReserved(s.access, params.TreasuryAddress); err != nil {
		return nil, err
	}
	if params.FeeCapBasisPoints <= 0 || params.FeeCapBasisPoints > accrual.BasisPoints {
		return nil, apperrors.WithMessage(apperrors.ErrFeeOutOfBounds, "fee cap must be within (0, 10000]")
	}
	if err := checkFeeOrder(params.PlatformFeeBasisPoints, params.ReferralFeeBasisPoints, params.FeeCapBasisPoints); err != nil {
		return nil, err
	}
	if params.MinInvestmentValue < 0 || params.MaxReferralsPerReferrer < 0 || params.MaxReferralRevenuePerReferrer < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "limits must not be negative")
	}

	var cfg *models.GlobalConfig
	err := s.lock.Run(ctx, "initialize", func(ctx context.Context) error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := requireAdmin(s.access, tx, actor); err != nil {
				return err
			}
			current, err := s.GetConfig(tx)
			if err != nil {
				return err
			}
			if current.Initialized {
				return apperrors.WithMessage(apperrors.ErrAlreadyDone, "platform is already initialized")
			}

			current.Initialized = true
			current.TreasuryAddress = params.TreasuryAddress
			current.PlatformFeeBasisPoints = params.PlatformFeeBasisPoints
			current.ReferralFeeBasisPoints = params.ReferralFeeBasisPoints
			current.FeeCapBasisPoints = params.FeeCapBasisPoints
			current.MinInvestmentValue = params.MinInvestmentValue
			current.MaxReferralsPerReferrer = params.MaxReferralsPerReferrer
			current.MaxReferralRevenuePerReferrer = params.MaxReferralRevenuePerReferrer
			if err := tx.Save(current).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			cfg = current
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// GetConfig returns the configuration singleton. Before initialization it
// returns the defaults with Initialized unset.
func (s *platformService) GetConfig(tx *gorm.DB) (*models.GlobalConfig, error) {
	db := s.db
	if tx != nil {
		db = tx
	}
	var cfg models.GlobalConfig
	err := db.Where("id = ?", models.GlobalConfigID).First(&cfg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.GlobalConfig{
			ID:                models.GlobalConfigID,
			FeeCapBasisPoints: accrual.BasisPoints,
			MinRevenueDeposit: DefaultMinRevenueDeposit,
		}, nil
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &cfg, nil
}

// SetPlatformFee changes the platform fee rate, keeping it at or above the
// referral rate and below the fee cap.
func (s *platformService) SetPlatformFee(ctx context.Context, actor string, bps int64) (*models.GlobalConfig, error) {
	return s.update(ctx, actor, "setPlatformFee", func(cfg *models.GlobalConfig) error {
		if err := checkFeeOrder(bps, cfg.ReferralFeeBasisPoints, cfg.FeeCapBasisPoints); err != nil {
			return err
		}
		cfg.PlatformFeeBasisPoints = bps
		return nil
	})
}

// SetReferralFee changes the referral carve-out rate.
func (s *platformService) SetReferralFee(ctx context.Context, actor string, bps int64) (*models.GlobalConfig, error) {
	return s.update(ctx, actor, "setReferralFee", func(cfg *models.GlobalConfig) error {
		if err := checkFeeOrder(cfg.PlatformFeeBasisPoints, bps, cfg.FeeCapBasisPoints); err != nil {
			return err
		}
		cfg.ReferralFeeBasisPoints = bps
		return nil
	})
}

// SetTreasury changes the address that receives platform fees.
func (s *platformService) SetTreasury(ctx context.Context, actor, address string) (*models.GlobalConfig, error) {
	return s.update(ctx, actor, "setTreasury", func(cfg *models.GlobalConfig) error {
		if address == "" {
			return apperrors.WithMessage(apperrors.ErrInvalidInput, "treasury address is required")
		}
		if err := rejectReserved(s.access, address); err != nil {
			return err
		}
		cfg.TreasuryAddress = address
		return nil
	})
}

// SetMinInvestment changes the minimum value of a single purchase.
func (s *platformService) SetMinInvestment(ctx context.Context, actor string, value int64) (*models.GlobalConfig, error) {
	return s.update(ctx, actor, "setMinInvestment", func(cfg *models.GlobalConfig) error {
		if value < 0 {
			return apperrors.WithMessage(apperrors.ErrInvalidInput, "minimum investment must not be negative")
		}
		cfg.MinInvestmentValue = value
		return nil
	})
}

// SetReferralCaps changes the per-referrer count and revenue caps.
func (s *platformService) SetReferralCaps(ctx context.Context, actor string, maxReferrals, maxRevenue int64) (*models.GlobalConfig, error) {
	return s.update(ctx, actor, "setReferralCaps", func(cfg *models.GlobalConfig) error {
		if maxReferrals < 0 || maxRevenue < 0 {
			return apperrors.WithMessage(apperrors.ErrInvalidInput, "referral caps must not be negative")
		}
		cfg.MaxReferralsPerReferrer = maxReferrals
		cfg.MaxReferralRevenuePerReferrer = maxRevenue
		return nil
	})
}

// SetWhitelisted adds or removes a payment/revenue asset from the whitelist.
func (s *platformService) SetWhitelisted(ctx context.Context, actor, assetID string, whitelisted bool) error {
	return s.lock.Run(ctx, "setWhitelisted", func(ctx context.Context) error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := requireAdmin(s.access, tx, actor); err != nil {
				return err
			}
			if !whitelisted {
				if err := tx.Where("asset_id = ?", assetID).Delete(&models.WhitelistedAsset{}).Error; err != nil {
					return apperrors.Wrap(apperrors.ErrInternalServer, err)
				}
				return nil
			}

			asset, err := s.assets.GetAsset(tx, assetID)
			if err != nil {
				return err
			}
			if asset.Kind == models.AssetKindShare {
				return apperrors.WithMessage(apperrors.ErrInvalidInput, "share assets cannot be whitelisted")
			}
			if err := tx.Save(&models.WhitelistedAsset{AssetID: assetID}).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			return nil
		})
	})
}

// IsWhitelisted reports whether an asset may back a new property.
func (s *platformService) IsWhitelisted(tx *gorm.DB, assetID string) (bool, error) {
	db := s.db
	if tx != nil {
		db = tx
	}
	var count int64
	if err := db.Model(&models.WhitelistedAsset{}).Where("asset_id = ?", assetID).Count(&count).Error; err != nil {
		return false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return count > 0, nil
}

// update applies mutate to the initialized configuration under the lock.
func (s *platformService) update(ctx context.Context, actor, op string, mutate func(cfg *models.GlobalConfig) error) (*models.GlobalConfig, error) {
	var cfg *models.GlobalConfig
	err := s.lock.Run(ctx, op, func(ctx context.Context) error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := requireAdmin(s.access, tx, actor); err != nil {
				return err
			}
			current, err := requireInitialized(s, tx)
			if err != nil {
				return err
			}
			if err := mutate(current); err != nil {
				return err
			}
			if err := tx.Save(current).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			cfg = current
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func requireInitialized(platform PlatformServicer, tx *gorm.DB) (*models.GlobalConfig, error) {
	cfg, err := platform.GetConfig(tx)
	if err != nil {
		return nil, err
	}
	if !cfg.Initialized {
		return nil, apperrors.ErrNotInitialized
	}
	return cfg, nil
}

// checkFeeOrder enforces 0 <= referral <= platform < cap.
func checkFeeOrder(platformBps, referralBps, capBps int64) error {
	if referralBps < 0 || platformBps < 0 {
		return apperrors.WithMessage(apperrors.ErrFeeOutOfBounds, "fees must not be negative")
	}
	if platformBps >= capBps {
		return apperrors.WithMessage(apperrors.ErrFeeOutOfBounds, "platform fee must be below the fee cap")
	}
	if referralBps > platformBps {
		return apperrors.WithMessage(apperrors.ErrFeeOutOfBounds, "referral fee must not exceed the platform fee")
	}
	return nil
}
