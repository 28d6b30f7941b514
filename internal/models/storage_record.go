package models

import "time"

// StorageRecord is one top-level record of the snapshot store when it
// is backed by Postgres: a fixed key ("entries", "profile_overrides")
// and the full JSON document under it. Every save replaces the value
// wholesale.
type StorageRecord struct {
	Key   string `gorm:"primaryKey;size:50" json:"key"`
	Value string `gorm:"type:text" json:"value"`

	UpdatedAt time.Time `json:"updated_at"`
}
