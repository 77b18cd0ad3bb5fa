package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "propfund/internal/errors"
	"propfund/internal/models"
)

// accessService is the persisted authorization oracle.
type accessService struct {
	db       *gorm.DB
	lock     *OperationLock
	reserved reservedSet
}

// NewAccessService creates a new AccessServicer. The reserved addresses are
// the engine's custody accounts; they can never hold a grant.
func NewAccessService(db *gorm.DB, lock *OperationLock, reserved ...string) AccessServicer {
	return &accessService{db: db, lock: lock, reserved: newReservedSet(reserved...)}
}

// IsReserved reports whether address is one of the custody accounts.
func (s *accessService) IsReserved(address string) bool {
	return s.reserved.has(address)
}

// GetGrant returns the capabilities of address. Unknown addresses have none.
func (s *accessService) GetGrant(tx *gorm.DB, address string) (*models.AccessGrant, error) {
	db := s.db
	if tx != nil {
		db = tx
	}
	var grant models.AccessGrant
	err := db.Where("address = ?", address).First(&grant).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.AccessGrant{Address: address}, nil
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &grant, nil
}

// IsPaused reports the global pause switch.
func (s *accessService) IsPaused(tx *gorm.DB) (bool, error) {
	db := s.db
	if tx != nil {
		db = tx
	}
	var state models.SystemState
	err := db.Where("id = ?", models.SystemStateID).First(&state).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return state.Paused, nil
}

// SetGrant updates the capabilities of an address. Admin only.
func (s *accessService) SetGrant(ctx context.Context, actor string, update GrantUpdate) (*models.AccessGrant, error) {
	if update.Address == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "address is required")
	}
	if err := rejectReserved(s, update.Address); err != nil {
		return nil, err
	}

	var grant *models.AccessGrant
	err := s.lock.Run(ctx, "setGrant", func(ctx context.Context) error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := requireAdmin(s, tx, actor); err != nil {
				return err
			}
			g, err := s.GetGrant(tx, update.Address)
			if err != nil {
				return err
			}
			if update.IsAdmin != nil {
				if !*update.IsAdmin && update.Address == actor {
					return apperrors.WithMessage(apperrors.ErrInvalidInput, "admins cannot revoke their own admin grant")
				}
				g.IsAdmin = *update.IsAdmin
			}
			if update.IsFundsManager != nil {
				g.IsFundsManager = *update.IsFundsManager
			}
			if update.KYCApproved != nil {
				g.KYCApproved = *update.KYCApproved
			}
			if update.Blacklisted != nil {
				g.Blacklisted = *update.Blacklisted
			}
			if err := tx.Save(g).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			grant = g
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return grant, nil
}

// SetPaused flips the global pause switch. Admin only.
func (s *accessService) SetPaused(ctx context.Context, actor string, paused bool) error {
	return s.lock.Run(ctx, "setPaused", func(ctx context.Context) error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := requireAdmin(s, tx, actor); err != nil {
				return err
			}
			state := &models.SystemState{ID: models.SystemStateID, Paused: paused}
			if err := tx.Save(state).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			return nil
		})
	})
}

// Bootstrap grants every capability to address. It is called once at
// startup for the configured bootstrap admin.
func (s *accessService) Bootstrap(address string) error {
	if address == "" {
		return nil
	}
	if err := rejectReserved(s, address); err != nil {
		return err
	}
	grant := &models.AccessGrant{Address: address, IsAdmin: true, IsFundsManager: true, KYCApproved: true}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "address"}},
		DoUpdates: clause.AssignmentColumns([]string{"is_admin", "is_funds_manager", "kyc_approved", "updated_at"}),
	}).Create(grant).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

type reservedSet map[string]struct{}

func newReservedSet(addresses ...string) reservedSet {
	set := make(reservedSet, len(addresses))
	for _, a := range addresses {
		if a != "" {
			set[a] = struct{}{}
		}
	}
	return set
}

func (r reservedSet) has(address string) bool {
	_, ok := r[address]
	return ok
}

// rejectReserved fails when any of addresses is a custody account.
func rejectReserved(access AccessServicer, addresses ...string) error {
	for _, a := range addresses {
		if access.IsReserved(a) {
			return apperrors.WithMessage(apperrors.ErrReservedAddress, fmt.Sprintf("%q is a custody account", a))
		}
	}
	return nil
}

func requireAdmin(access AccessServicer, tx *gorm.DB, address string) error {
	grant, err := access.GetGrant(tx, address)
	if err != nil {
		return err
	}
	if !grant.IsAdmin {
		return apperrors.WithMessage(apperrors.ErrForbidden, "admin role required")
	}
	return nil
}

func requireFundsManager(access AccessServicer, tx *gorm.DB, address string) error {
	grant, err := access.GetGrant(tx, address)
	if err != nil {
		return err
	}
	if !grant.IsFundsManager {
		return apperrors.WithMessage(apperrors.ErrForbidden, "funds manager role required")
	}
	return nil
}

// requireInvestor checks that address may take part in a raise.
func requireInvestor(access AccessServicer, tx *gorm.DB, address string) error {
	grant, err := access.GetGrant(tx, address)
	if err != nil {
		return err
	}
	if grant.Blacklisted {
		return apperrors.ErrBlacklisted
	}
	if !grant.KYCApproved {
		return apperrors.ErrNotKYCApproved
	}
	return nil
}

func requireNotBlacklisted(access AccessServicer, tx *gorm.DB, address string) error {
	grant, err := access.GetGrant(tx, address)
	if err != nil {
		return err
	}
	if grant.Blacklisted {
		return apperrors.ErrBlacklisted
	}
	return nil
}

func requireNotPaused(access AccessServicer, tx *gorm.DB) error {
	paused, err := access.IsPaused(tx)
	if err != nil {
		return err
	}
	if paused {
		return apperrors.ErrSystemPaused
	}
	return nil
}
