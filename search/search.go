// Package search filters directory records by a free-text query.
// Matching is case-insensitive substring containment over a fixed set of
// fields. There is no ranking and results keep the order of the input.
package search

import (
	"strings"

	"github.com/samber/lo"

	"github.com/rwandapathways/pathways-api/models"
)

// TypeAll disables the institution type filter
const TypeAll = "all"

// normalize returns the lower-cased query and whether it holds anything to match
func normalize(query string) (string, bool) {
	if strings.TrimSpace(query) == "" {
		return "", false
	}
	return strings.ToLower(query), true
}

func containsAny(needle string, fields ...string) bool {
	return lo.SomeBy(fields, func(f string) bool {
		return strings.Contains(strings.ToLower(f), needle)
	})
}

// Institutions keeps the institutions whose name, description, location or
// type contains query. An empty or whitespace-only query returns insts as is.
func Institutions(query string, insts []models.Institution) []models.Institution {
	q, ok := normalize(query)
	if !ok {
		return insts
	}
	return lo.Filter(insts, func(i models.Institution, _ int) bool {
		return containsAny(q, i.Name, i.Description, i.Location, string(i.Type))
	})
}

// Users keeps the users whose name or bio contains query. An empty or
// whitespace-only query returns users as is.
func Users(query string, users []models.User) []models.User {
	q, ok := normalize(query)
	if !ok {
		return users
	}
	return lo.Filter(users, func(u models.User, _ int) bool {
		return containsAny(q, u.Name, u.Bio)
	})
}

// ByType keeps the institutions of type t. An empty t or TypeAll returns insts as is.
func ByType(t string, insts []models.Institution) []models.Institution {
	if t == "" || t == TypeAll {
		return insts
	}
	return lo.Filter(insts, func(i models.Institution, _ int) bool {
		return string(i.Type) == t
	})
}

// Counselors keeps the users with the counselor role
func Counselors(users []models.User) []models.User {
	return lo.Filter(users, func(u models.User, _ int) bool { return u.IsCounselor() })
}
