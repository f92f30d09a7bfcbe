package resolver

// Resolver is the root resolver for the GraphQL schema.
// It serves as dependency injection for the app, add any dependencies you require here.

import (
	"context"
	"errors"
	"strconv"

	"github.com/Vaishali054/talawa-api/internal/fund"
	"github.com/Vaishali054/talawa-api/pkg/errormsg"
	graphql "github.com/graph-gophers/graphql-go"
	"github.com/rs/zerolog"
)

var errInternal = errors.New("internal server error")

type Resolver struct {
	FundsService *fund.FundsService
}

// parseID turns a GraphQL ID into a database id. Malformed ids map to 0, which matches no row,
// so they surface as the usual "not found" errors.
func parseID(id graphql.ID) uint {
	value, err := strconv.ParseUint(string(id), 10, 64)
	if err != nil {
		return 0
	}

	return uint(value)
}

func toID(id uint) graphql.ID {
	return graphql.ID(strconv.FormatUint(uint64(id), 10))
}

// publicError returns coded errors unwrapped, so their extensions reach the client. Any other
// error is logged and replaced by a generic one.
func publicError(ctx context.Context, err error) error {
	var coded errormsg.CodedError
	if errors.As(err, &coded) {
		return coded
	}

	zerolog.Ctx(ctx).Error().Err(err).Msg("resolver failed")

	return errInternal
}
