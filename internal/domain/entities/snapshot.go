package entities

import "time"

// SnapshotInfo describes one export of the registry to an external store.
type SnapshotInfo struct {
	ID        string    `json:"id"`
	People    int       `json:"people"`
	Relations int       `json:"relations"`
	CreatedAt time.Time `json:"created_at"`
}
