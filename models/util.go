package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned by every store when a record is absent.
// Absence is always signaled, never silently ignored.
var ErrNotFound = errors.New("record not found")

// NewRecordID builds an identifier from a textual prefix and the given
// time expressed as integer seconds, plus a short random suffix.
// The suffix removes the one-second collision window that a plain
// timestamp id would have under concurrent load.
// Example: NewRecordID("GP", t) -> "GP1751190000-3f2a1b"
func NewRecordID(prefix string, t time.Time) string {
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:6]
	return fmt.Sprintf("%s%d-%s", prefix, t.Unix(), suffix)
}
