package main

import (
	"net/http"

	"github.com/99designs/gqlgen/graphql/playground"
	"github.com/Vaishali054/talawa-api/config"
	"github.com/Vaishali054/talawa-api/graph"
	"github.com/Vaishali054/talawa-api/graph/resolver"
	"github.com/Vaishali054/talawa-api/internal/authentication"
	"github.com/Vaishali054/talawa-api/internal/fund"
	"github.com/Vaishali054/talawa-api/pkg/i18n"
	"github.com/Vaishali054/talawa-api/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/graph-gophers/graphql-go/relay"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
)

const defaultPort = "8080"

// NewRouter mounts the GraphQL endpoint, the playground and the REST routes.
func NewRouter(configuration *config.Config) http.Handler {
	router := chi.NewRouter()

	router.Use(logger.Middleware(configuration.Logger))
	router.Use(cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}).Handler)
	router.Use(i18n.Middleware)
	router.Use(authentication.Middleware(configuration.Constants.JWT.Secret))

	fundsService := fund.New(configuration)

	router.Mount("/funds", fundsService.Routes())

	schema := graph.NewSchema(&resolver.Resolver{
		FundsService: fundsService,
	})

	router.Handle("/", playground.Handler("GraphQL playground", "/query"))
	router.Handle("/query", &relay.Handler{Schema: schema})

	return router
}

func main() {
	configuration, err := config.New()

	if err != nil {
		log.Fatal().Err(err).Msg("error loading configuration")
	}

	port := configuration.Port

	if port == "" {
		port = defaultPort
	}

	configuration.Logger.Info().Msgf("connect to http://localhost:%s/ for GraphQL playground", port)

	if err := http.ListenAndServe(":"+port, NewRouter(configuration)); err != nil {
		configuration.Logger.Fatal().Err(err).Msg("server stopped")
	}
}
