package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "propfund/internal/errors"
	"propfund/internal/models"
)

// referralService is the built-in referral subsystem.
type referralService struct {
	db      *gorm.DB
	lock    *OperationLock
	access  AccessServicer
	holding string
}

// NewReferralService creates a new ReferralServicer whose credited fees
// are paid into the holding address at raise completion.
func NewReferralService(db *gorm.DB, lock *OperationLock, access AccessServicer, holding string) ReferralServicer {
	return &referralService{db: db, lock: lock, access: access, holding: holding}
}

// RegisterReferrer adds an active referrer. Admin only.
func (s *referralService) RegisterReferrer(ctx context.Context, actor, address string) (*models.Referrer, error) {
	if address == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "referrer address is required")
	}
	if err := rejectReserved(s.access, address); err != nil {
		return nil, err
	}

	var ref *models.Referrer
	err := s.lock.Run(ctx, "registerReferrer", func(ctx context.Context) error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := requireAdmin(s.access, tx, actor); err != nil {
				return err
			}
			existing, err := s.GetReferrerDetails(tx, address)
			if err == nil {
				if existing.IsActive {
					return apperrors.WithMessage(apperrors.ErrAlreadyDone, "referrer is already registered")
				}
				existing.IsActive = true
				if err := tx.Save(existing).Error; err != nil {
					return apperrors.Wrap(apperrors.ErrInternalServer, err)
				}
				ref = existing
				return nil
			}
			if !errors.Is(err, apperrors.ErrReferrerNotFound) {
				return err
			}
			ref = &models.Referrer{Address: address, IsActive: true}
			if err := tx.Create(ref).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return ref, nil
}

// GetReferrerDetails returns a referrer's cumulative count and revenue.
func (s *referralService) GetReferrerDetails(tx *gorm.DB, address string) (*models.Referrer, error) {
	db := s.db
	if tx != nil {
		db = tx
	}
	var ref models.Referrer
	if err := db.Where("address = ?", address).First(&ref).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrReferrerNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &ref, nil
}

// AddRewards credits a referral fee. The referral count grows once per
// newly referred beneficiary.
func (s *referralService) AddRewards(tx *gorm.DB, referrer, beneficiary string, propertyID uint, amount int64) error {
	if amount <= 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "reward must be positive")
	}
	if tx == nil {
		tx = s.db
	}
	ref, err := s.GetReferrerDetails(tx, referrer)
	if err != nil {
		return err
	}
	if !ref.IsActive {
		return apperrors.ErrReferrerInactive
	}

	var seen int64
	if err := tx.Model(&models.ReferralReward{}).
		Where("referrer = ? AND beneficiary = ?", referrer, beneficiary).
		Count(&seen).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	reward := &models.ReferralReward{Referrer: referrer, Beneficiary: beneficiary, PropertyID: propertyID, Amount: amount}
	if err := tx.Create(reward).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	updates := map[string]any{"revenue": gorm.Expr("revenue + ?", amount)}
	if seen == 0 {
		updates["referral_count"] = gorm.Expr("referral_count + 1")
	}
	if err := tx.Model(&models.Referrer{}).Where("address = ?", referrer).Updates(updates).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// ReverseRewards withdraws every reward credited for beneficiary's
// investment in a property and takes the amounts back out of each referrer's
// revenue. A referrer's count drops when no reward for beneficiary remains.
// Returns the total withdrawn.
func (s *referralService) ReverseRewards(tx *gorm.DB, beneficiary string, propertyID uint) (int64, error) {
	if tx == nil {
		tx = s.db
	}
	var rewards []models.ReferralReward
	if err := tx.Where("beneficiary = ? AND property_id = ?", beneficiary, propertyID).
		Find(&rewards).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if len(rewards) == 0 {
		return 0, nil
	}

	perReferrer := make(map[string]int64)
	var total int64
	for _, r := range rewards {
		perReferrer[r.Referrer] += r.Amount
		total += r.Amount
	}
	if err := tx.Delete(&rewards).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	for referrer, amount := range perReferrer {
		var remaining int64
		if err := tx.Model(&models.ReferralReward{}).
			Where("referrer = ? AND beneficiary = ?", referrer, beneficiary).
			Count(&remaining).Error; err != nil {
			return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		updates := map[string]any{"revenue": gorm.Expr("revenue - ?", amount)}
		if remaining == 0 {
			updates["referral_count"] = gorm.Expr("referral_count - 1")
		}
		if err := tx.Model(&models.Referrer{}).Where("address = ?", referrer).Updates(updates).Error; err != nil {
			return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return total, nil
}

// HoldingAddress returns the vault that receives accrued referral fees.
func (s *referralService) HoldingAddress() string {
	return s.holding
}
