package model

import "time"

// PondFile is a file stored in a user's data pond area. The content lives in
// object storage under StorageKey; this record is the metadata row.
type PondFile struct {
	ID          string    `json:"id,omitempty" bson:"-"`
	Username    string    `json:"username" bson:"username"`
	Filename    string    `json:"filename" bson:"filename"`
	StorageKey  string    `json:"-" bson:"storage_key"`
	Size        int64     `json:"size" bson:"size"`
	ContentType string    `json:"content_type,omitempty" bson:"content_type,omitempty"`
	Modified    time.Time `json:"modified" bson:"modified"`
}
