// Package catalog holds the static character reference data used by the draft.
package catalog

import (
	"strings"

	"golang.org/x/text/cases"
)

type Role string

const (
	RoleTop     Role = "TOP"
	RoleJungle  Role = "JG"
	RoleMid     Role = "MID"
	RoleBottom  Role = "BOT"
	RoleSupport Role = "SUP"
	RoleSpecial Role = "SPECIAL"
)

// Sentinel entries. NoBan skips a ban step, Random asks the server to pick for you.
const (
	NoBan  = "special_none"
	Random = "special_random"
)

type Character struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Roles []Role `json:"roles"`
}

var sentinels = []Character{
	{ID: NoBan, Name: "NO BAN", Roles: []Role{RoleSpecial}},
	{ID: Random, Name: "RANDOM", Roles: []Role{RoleSpecial}},
}

var byID = func() map[string]Character {
	m := make(map[string]Character, len(champions)+len(sentinels))
	for _, c := range sentinels {
		m[c.ID] = c
	}
	for _, c := range champions {
		m[c.ID] = c
	}
	return m
}()

var fold = cases.Fold()

// Normalize trims and case-folds an id so "Aatrox " and "aatrox" resolve to the same entry.
func Normalize(id string) string {
	return fold.String(strings.TrimSpace(id))
}

// Lookup returns the catalog entry for id, sentinels included.
func Lookup(id string) (Character, bool) {
	c, ok := byID[Normalize(id)]
	return c, ok
}

func IsSentinel(id string) bool {
	id = Normalize(id)
	return id == NoBan || id == Random
}

// All returns the sentinels followed by every real character. The slice is a copy.
func All() []Character {
	out := make([]Character, 0, len(sentinels)+len(champions))
	out = append(out, sentinels...)
	out = append(out, champions...)
	return out
}

// Champions returns only the real characters, in catalog order.
func Champions() []Character {
	out := make([]Character, len(champions))
	copy(out, champions)
	return out
}
