package graph

import (
	_ "embed"

	graphql "github.com/graph-gophers/graphql-go"
)

//go:embed schema.graphqls
var Schema string

// NewSchema parses the schema against the root resolver. It panics when the resolver
// does not match the schema, which is caught at startup and by tests.
func NewSchema(root interface{}) *graphql.Schema {
	return graphql.MustParseSchema(Schema, root)
}
