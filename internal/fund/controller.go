package fund

import (
	"net/http"
	"strconv"

	"github.com/Vaishali054/talawa-api/internal/authentication"
	"github.com/Vaishali054/talawa-api/pkg/httperrors"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/rs/zerolog"
)

// RemoveFund godoc
//
//	@Summary		Remove a fund
//	@Description	Remove a fund with its campaigns and pledges
//	@ID				remove-fund
//	@Tags			Funds
//	@Success		204
//	@Failure		403	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
//	@Router			/funds/{id} [delete]
func (config *FundsService) RemoveFund(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		render.Render(w, r, httperrors.ErrInvalidRequest(err))
		return
	}

	err = config.Remove(r.Context(), authentication.ForContext(r.Context()), uint(id))
	if err != nil {
		zerolog.Ctx(r.Context()).Warn().Err(err).Uint64("fundId", id).Msg("remove fund failed")
		render.Render(w, r, httperrors.FromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
