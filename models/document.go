package models

import (
	"time"

	"gorm.io/datatypes"
)

// Document is one stored record of any collection. Seq keeps insertion order,
// DocID is the identifier handed to callers.
type Document struct {
	Seq        uint64         `gorm:"primaryKey;autoIncrement" json:"-"`
	DocID      string         `gorm:"column:doc_id;size:36;uniqueIndex" json:"_id"`
	Collection string         `gorm:"size:64;index" json:"collection"`
	Body       datatypes.JSON `gorm:"column:body" json:"body"`
	CreatedAt  time.Time      `json:"created_at"`
}

func (Document) TableName() string { return "documents" }
