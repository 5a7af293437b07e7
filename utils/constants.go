// File: utils/constants.go
package utils

import "time"

// AuthSessionPrefix is the prefix used for Redis admin session keys.
const AuthSessionPrefix = "adminSession:"

// AuthSessionTTL is the time-to-live for cached admin sessions.
const AuthSessionTTL = 12 * time.Hour

// StatsCachePrefix is the prefix used for cached analytics aggregates.
const StatsCachePrefix = "stats:"

// StatsCacheTTL is the time-to-live for cached analytics aggregates.
const StatsCacheTTL = 5 * time.Minute
