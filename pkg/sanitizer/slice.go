package sanitizer

import "strings"

const IDSeparator = ";"

// SplitIDs turns the raw participant field into IDs. Order and duplicates are
// kept; empty tokens are dropped.
func SplitIDs(raw string) []string {
	return CompactValues(strings.Split(raw, IDSeparator))
}

// JoinIDs is the inverse of SplitIDs for storage.
func JoinIDs(ids []string) string {
	return strings.Join(ids, IDSeparator)
}

// CompactValues trims every item and drops the empty ones, keeping order and duplicates.
func CompactValues(items []string) []string {
	result := make([]string, 0, len(items))

	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed == "" {
			continue
		}
		result = append(result, trimmed)
	}

	return result
}
