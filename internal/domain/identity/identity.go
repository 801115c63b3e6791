// Package identity defines the record identifier format shared by every
// persistence adapter: a 24 character hexadecimal MongoDB ObjectID.
package identity

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IsValid reports whether id matches ^[0-9a-fA-F]{24}$.
func IsValid(id string) bool {
	return primitive.IsValidObjectID(id)
}

// New returns a freshly minted identifier.
func New() string {
	return primitive.NewObjectID().Hex()
}

// Normalize lowercases a well-formed id so that stores keyed by the hex text
// match ids in either case. ok is false for ids that can never match a record.
func Normalize(id string) (string, bool) {
	if !IsValid(id) {
		return "", false
	}
	return strings.ToLower(id), true
}
