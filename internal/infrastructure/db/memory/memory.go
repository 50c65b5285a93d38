// Package memory holds map-backed repositories used by tests and by the
// "memory" storage driver. Identifiers are ObjectID hex strings so they pass the
// same validation as MongoDB ids.
package memory

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newID() string {
	return primitive.NewObjectID().Hex()
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
