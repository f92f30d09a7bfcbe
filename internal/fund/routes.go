package fund

import "github.com/go-chi/chi/v5"

func (config *FundsService) Routes() *chi.Mux {
	router := chi.NewRouter()

	router.Delete("/{id}", config.RemoveFund)

	return router
}
