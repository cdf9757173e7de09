package authorization

import "context"

// AssignmentRepository loads the direct responsibility assignments of a
// user. Rows are granted elsewhere; this service only reads them.
type AssignmentRepository interface {
	FindByUserID(ctx context.Context, userID uint) ([]Assignment, error)

	// CreateForInfrastructure grants a user direct responsibility over a
	// facility, used when a facility is created.
	CreateForInfrastructure(ctx context.Context, userID uint, infrastructureID string) error

	// DeleteForInfrastructure removes every assignment pointing at a
	// facility, used when the facility is deleted.
	DeleteForInfrastructure(ctx context.Context, infrastructureID string) error
}
