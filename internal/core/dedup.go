package core

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/gerbilkit/distill/pkg/models"
)

// dedupBy keeps the first occurrence of each key, preserving order.
// Entries whose key function returns "" are keyed by a content hash
// over their JSON encoding instead, so identical anonymous entries
// still collapse deterministically.
func dedupBy[T any](entries []T, key func(T) string) []T {
	seen := make(map[string]bool, len(entries))
	deduped := make([]T, 0, len(entries))
	for _, e := range entries {
		k := key(e)
		if k == "" {
			k = contentHash(e)
		}
		if seen[k] {
			continue
		}
		seen[k] = true
		deduped = append(deduped, e)
	}
	return deduped
}

// DedupConversations removes duplicate conversation entries by source
// identifier, first occurrence wins.
func DedupConversations(entries []models.ConversationEntry) []models.ConversationEntry {
	return dedupBy(entries, func(e models.ConversationEntry) string { return e.Source })
}

// DedupFlats removes duplicate flat entries by source identifier,
// first occurrence wins.
func DedupFlats(entries []models.FlatEntry) []models.FlatEntry {
	return dedupBy(entries, func(e models.FlatEntry) string { return e.Source })
}

// contentHash returns a deterministic hash of an entry's full
// structure. Struct fields marshal in declaration order, so the JSON
// encoding is canonical for a given type.
func contentHash(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		// Entries are plain string structs; marshalling cannot fail in
		// practice, but fall back to an empty key rather than panic.
		return "unhashable"
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
