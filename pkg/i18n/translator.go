package i18n

import (
	"context"
	"net/http"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

var languageCtxKey = contextKey{"language"}

type contextKey struct {
	name string
}

// Translator turns a message key into the text shown to the caller.
type Translator interface {
	Translate(ctx context.Context, key string) string
}

type identityTranslator struct{}

// Identity returns a Translator that hands every key back unchanged.
func Identity() Translator {
	return identityTranslator{}
}

func (identityTranslator) Translate(_ context.Context, key string) string {
	return key
}

var supported = []language.Tag{
	language.English, // first one is the fallback
	language.French,
}

var messages = map[language.Tag]map[string]string{
	language.English: {
		"user.notFound":      "User not found",
		"fund.notFound":      "Fund not found",
		"user.notAuthorized": "User is not authorized for performing this operation",
	},
	language.French: {
		"user.notFound":      "Utilisateur introuvable",
		"fund.notFound":      "Fonds introuvable",
		"user.notAuthorized": "L'utilisateur n'est pas autorisé à effectuer cette opération",
	},
}

type catalogTranslator struct {
	catalog catalog.Catalog
	matcher language.Matcher
}

// New builds the message catalog and returns a Translator picking the language stored
// in the context by Middleware.
func New() (Translator, error) {
	builder := catalog.NewBuilder(catalog.Fallback(supported[0]))

	for tag, entries := range messages {
		for key, msg := range entries {
			if err := builder.SetString(tag, key, msg); err != nil {
				return nil, err
			}
		}
	}

	return &catalogTranslator{
		catalog: builder,
		matcher: language.NewMatcher(supported),
	}, nil
}

func (t *catalogTranslator) Translate(ctx context.Context, key string) string {
	_, index, _ := t.matcher.Match(LanguageFromContext(ctx)...)
	printer := message.NewPrinter(supported[index], message.Catalog(t.catalog))

	return printer.Sprintf(message.Key(key, key))
}

// WithLanguage stores the caller's preferred languages in the context.
func WithLanguage(ctx context.Context, tags ...language.Tag) context.Context {
	return context.WithValue(ctx, languageCtxKey, tags)
}

func LanguageFromContext(ctx context.Context) []language.Tag {
	tags, _ := ctx.Value(languageCtxKey).([]language.Tag)

	return tags
}

// Middleware reads Accept-Language and makes it available to the translator.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Accept-Language")

		if header == "" {
			next.ServeHTTP(w, r)
			return
		}

		tags, _, err := language.ParseAcceptLanguage(header)
		if err != nil || len(tags) == 0 {
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithLanguage(r.Context(), tags...)))
	})
}
