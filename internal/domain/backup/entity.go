package backup

import (
	"bytes"
	"encoding/json"
	"time"
)

// Version is written into every exported backup.
const Version = "1.0"

// Backup is the downloadable wrapper around a full document.
type Backup struct {
	Version   string          `json:"version"`
	Timestamp time.Time       `json:"timestamp"`
	Data      json.RawMessage `json:"data"`
}

// Validate checks that the wrapper carries a version and an object payload.
func (b *Backup) Validate() error {
	if b.Version == "" {
		return ErrMissingVersion
	}
	data := bytes.TrimSpace(b.Data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return ErrMissingData
	}
	if data[0] != '{' {
		return ErrInvalidData
	}
	return nil
}

// AutoSnapshot is the periodic backup kept alongside the live document.
type AutoSnapshot struct {
	Timestamp time.Time       `json:"timestamp"`
	Data      json.RawMessage `json:"data"`
}
