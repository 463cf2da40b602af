package kvstore

import "strings"

// DefaultKeyPrefix namespaces every key written by flowly
const DefaultKeyPrefix = "flowly"

// Key builds "<prefix>:<aggregate>:<account>"
func Key(prefix, aggregate, accountID string) string {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return strings.Join([]string{prefix, aggregate, accountID}, ":")
}
