package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"geoshare/internal/domain/authorization"
	"geoshare/internal/infrastructure/persistence/models"
	"geoshare/internal/shared/db"
)

// AssignmentRepository reads and maintains responsibility assignments.
type AssignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

func (r *AssignmentRepository) FindByUserID(ctx context.Context, userID uint) ([]authorization.Assignment, error) {
	var rows []models.AssignmentModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load assignments: %w", err)
	}

	out := make([]authorization.Assignment, 0, len(rows))
	for _, row := range rows {
		out = append(out, authorization.Assignment{
			UserID:           row.UserID,
			RegionID:         row.RegionID,
			EPCIID:           row.EPCIID,
			CommuneID:        row.CommuneID,
			InfrastructureID: row.InfrastructureID,
		})
	}
	return out, nil
}

func (r *AssignmentRepository) CreateForInfrastructure(ctx context.Context, userID uint, infrastructureID string) error {
	tx := db.GetTxFromContext(ctx, r.db)
	row := models.AssignmentModel{
		UserID:           userID,
		InfrastructureID: &infrastructureID,
	}
	if err := tx.Create(&row).Error; err != nil {
		return fmt.Errorf("failed to create infrastructure assignment: %w", err)
	}
	return nil
}

func (r *AssignmentRepository) DeleteForInfrastructure(ctx context.Context, infrastructureID string) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("infrastructure_id = ?", infrastructureID).
		Delete(&models.AssignmentModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete infrastructure assignments: %w", err)
	}
	return nil
}
