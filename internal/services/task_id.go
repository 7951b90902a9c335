package services

import (
	"strconv"
	"strings"
	"time"
)

// DeriveTaskID builds the wire identifier for a new task from its creation
// time and normalized title. Uniqueness holds per user list; two identical
// titles created in the same millisecond would collide, which the data model
// tolerates as a vanishingly unlikely degenerate case.
func DeriveTaskID(createdAt time.Time, title string) string {
	return strconv.FormatInt(createdAt.UnixMilli(), 10) + "-" + normalizeTaskTitle(title)
}

func normalizeTaskTitle(title string) string {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(title)))
	return strings.Join(fields, "-")
}
