package services

import (
	"context"
	"encoding/json"

	"gorm.io/gorm"

	apperrors "propfund/internal/errors"
	"propfund/internal/logger"
	"propfund/internal/models"
	"propfund/internal/pagination"
)

// auditService records and lists administrative actions.
type auditService struct {
	db     *gorm.DB
	access AccessServicer
}

// NewAuditService creates a new AuditServicer.
func NewAuditService(db *gorm.DB, access AccessServicer) AuditServicer {
	return &auditService{db: db, access: access}
}

// Log records an action taken through the API. Errors are logged but never
// propagate; the action it describes has already committed.
func (s *auditService) Log(actor, action, resourceType, resourceID, ipAddress string, changes map[string]any) {
	entry := &models.AuditLog{
		Actor:        actor,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		IPAddress:    ipAddress,
	}
	if changes != nil {
		data, err := json.Marshal(changes)
		if err != nil {
			logger.Get().Errorw("failed to marshal audit changes", "error", err, "action", action)
			data = []byte("{}")
		}
		entry.Changes = string(data)
	}

	if err := s.db.Create(entry).Error; err != nil {
		logger.Get().Errorw("failed to create audit log entry",
			"error", err,
			"actor", actor,
			"action", action,
			"resource_type", resourceType,
			"resource_id", resourceID,
		)
	}
}

// List returns audit entries newest first. Admin only.
func (s *auditService) List(ctx context.Context, caller string, filter AuditFilter, page pagination.PageRequest) (*pagination.PageResponse[models.AuditLog], error) {
	db := s.db.WithContext(ctx)
	if err := requireAdmin(s.access, db, caller); err != nil {
		return nil, err
	}

	query := db.Model(&models.AuditLog{})
	for column, value := range map[string]string{
		"actor":         filter.Actor,
		"action":        filter.Action,
		"resource_type": filter.ResourceType,
		"resource_id":   filter.ResourceID,
	} {
		if value != "" {
			query = query.Where(column+" = ?", value)
		}
	}

	resp, err := pagination.FindPage[models.AuditLog](query, page, "created_at DESC", "id DESC")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &resp, nil
}
