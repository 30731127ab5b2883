package model

import (
	"net/url"
	"strings"
	"time"
)

// avatarBaseURL is the external image-generation endpoint. The seed query
// parameter carries the percent-encoded hero name, so the URL varies with
// the name and is stable for identical names.
const avatarBaseURL = "https://api.dicebear.com/9.x/notionists/svg?scale=100&seed="

// Superhero is the persisted entity. The JSON shape is the wire contract:
// exactly id, name, superpower, humilityScore and avatar. Timestamps are
// kept on the relational row but never serialized.
type Superhero struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Superpower    string    `json:"superpower"`
	HumilityScore int       `json:"humilityScore"`
	Avatar        string    `json:"avatar"`
	CreatedAt     time.Time `json:"-"`
	UpdatedAt     time.Time `json:"-"`
}

// AvatarURL derives the avatar for a hero name. Derivation happens once at
// creation; updates never re-derive (a renamed hero keeps its old avatar).
func AvatarURL(name string) string {
	// QueryEscape encodes a space as "+"; the upstream image service expects
	// "%20", matching JavaScript's encodeURIComponent.
	seed := strings.ReplaceAll(url.QueryEscape(name), "+", "%20")
	return avatarBaseURL + seed
}
