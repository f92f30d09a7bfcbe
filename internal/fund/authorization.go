package fund

import (
	"context"

	"github.com/Vaishali054/talawa-api/pkg/database/dbmodel"
	"github.com/Vaishali054/talawa-api/pkg/errormsg"
)

// authorize lets the user manage the organization's funds when they are one of its admins
// or a super admin. A user without an app profile is never authorized.
//
// FIXME: a missing profile is reported as "not authorized" rather than as its own error.
// Callers rely on that today; revisit once profiles are guaranteed to exist for every user.
func (config *FundsService) authorize(ctx context.Context, dbUser *dbmodel.User, organizationID uint, organizations dbmodel.OrganizationRepository) error {
	notAuthorized := &errormsg.UserNotAuthorizedError{Message: config.translate(ctx, errormsg.UserNotAuthorizedMessage)}

	profile, err := config.AppUserProfileRepository.FindByUserID(ctx, dbUser.ID, nil)

	if err != nil {
		return err
	}

	if profile == nil {
		return notAuthorized
	}

	if profile.IsSuperAdmin {
		return nil
	}

	organization, err := organizations.FindByID(ctx, organizationID)

	if err != nil {
		return err
	}

	if organization == nil || !organization.IsAdmin(dbUser.ID) {
		return notAuthorized
	}

	return nil
}

// Authorize runs the fund management check for the user with the given id against an
// organization. It returns a UserNotFoundError when the user does not exist and a
// UserNotAuthorizedError when the user may not manage the organization's funds.
//
// The organization may come from the cache, so the answer can lag behind admin changes by
// the cache TTL. Use it for display only; Remove always reads the organization from the database.
func (config *FundsService) Authorize(ctx context.Context, userID uint, organizationID uint) error {
	dbUser, err := config.requireUser(ctx, userID)
	if err != nil {
		return err
	}

	organizations := config.OrganizationCache
	if organizations == nil {
		organizations = config.OrganizationRepository
	}

	return config.authorize(ctx, dbUser, organizationID, organizations)
}
