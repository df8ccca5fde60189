package models

import "time"

// Base carries the identity and timestamps shared by every stored document.
// Timestamps are stamped by the service layer so both storage backends agree.
type Base struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" bson:"_id" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime:false;not null" bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false;not null" bson:"updated_at" json:"updatedAt"`
}

// Meta returns the document's identity block.
func (b *Base) Meta() *Base {
	return b
}

// Owned links a document to the user that created it.
type Owned struct {
	UserID string `gorm:"type:varchar(36);not null;default:''" bson:"user_id" json:"userId"`
}

// Owner returns the document's ownership block.
func (o *Owned) Owner() *Owned {
	return o
}

// Document is implemented by every user-managed resource.
type Document interface {
	Meta() *Base
	Owner() *Owned
	// DuplicateKey returns the column/value tuple two documents of the same
	// owner may not share.
	DuplicateKey() map[string]any
}

// Normalizer is implemented by documents that fill defaults or canonicalize
// values before they are written.
type Normalizer interface {
	Normalize()
}

// Enum is implemented by string enumerations checked by the "enum" validation tag.
type Enum interface {
	IsValid() bool
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

func timeOrNil(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}
