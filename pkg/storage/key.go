package storage

import "strings"

// GenerateCacheKey allows to generate consistent keys with a small probability of conflicts
/**
version: model version which is stored under this key, if model has inconsistent changes, the version can be increased, example v1, v2, v3
domain: "summary, figure" etc
uniqueParts: dataset name, group column, value columns
*/
func GenerateCacheKey(version, domain string, uniqueParts ...string) string {
	parts := []string{
		version,
		strings.ToLower(domain),
	}

	for _, p := range uniqueParts {
		parts = append(parts, strings.ReplaceAll(p, "/", "_"))
	}

	return strings.Join(parts, "/")
}
