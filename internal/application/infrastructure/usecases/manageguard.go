package usecases

import (
	"context"

	"geoshare/internal/domain/authorization"
	"geoshare/internal/domain/infrastructure"
	"geoshare/internal/domain/user"
	"geoshare/internal/shared/errors"
)

// authorizeManagement checks that the caller may administer an existing
// facility: a management-capable account type, plus either a direct
// assignment on the facility or area authority over its commune.
func authorizeManagement(
	ctx context.Context,
	identity user.Identity,
	infra *infrastructure.Infrastructure,
	assignmentRepo authorization.AssignmentRepository,
	resolver *authorization.Resolver,
) error {
	if !identity.CanManageInfrastructures() {
		return errors.NewForbiddenError("this account type cannot manage infrastructures")
	}

	assignments, err := assignmentRepo.FindByUserID(ctx, identity.ID)
	if err != nil {
		return err
	}

	authorized, err := resolver.Resolve(ctx, assignments)
	if err != nil {
		return err
	}

	if !authorized.CanManageInfrastructure(infra.ID(), infra.CommuneID()) {
		return errors.NewForbiddenError("you are not responsible for this infrastructure")
	}
	return nil
}
