package dbmodel

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

type cachedOrganizationRepository struct {
	next  OrganizationRepository
	cache *expirable.LRU[uint, *Organization]
}

// NewCachedOrganizationRepository keeps up to size organizations (with their admins) in memory
// for ttl. Missing organizations are never cached.
//
// There is no invalidation: an admin removed from the organization stays an admin here until the
// entry expires. Do not use it for checks that guard writes.
func NewCachedOrganizationRepository(next OrganizationRepository, size int, ttl time.Duration) OrganizationRepository {
	return &cachedOrganizationRepository{
		next:  next,
		cache: expirable.NewLRU[uint, *Organization](size, nil, ttl),
	}
}

func (r *cachedOrganizationRepository) FindByID(ctx context.Context, id uint) (*Organization, error) {
	if organization, ok := r.cache.Get(id); ok {
		return organization, nil
	}

	organization, err := r.next.FindByID(ctx, id)

	if err != nil || organization == nil {
		return organization, err
	}

	r.cache.Add(id, organization)

	return organization, nil
}
