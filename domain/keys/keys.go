package keys

import "strings"

const (
	// PfxPrimaryName prefixes cached reverse records
	PfxPrimaryName = "primaryName"
	// PfxResolve prefixes cached forward and reverse resolutions
	PfxResolve = "resolve"
)

// RedisKey joins key components with ":"
func RedisKey(components ...string) string {
	return strings.Join(components, ":")
}
