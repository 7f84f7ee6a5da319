package models

import "time"

type Base struct {
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

func NewBase() Base {
	now := time.Now().UTC()
	return Base{
		CreatedAt: now,
		UpdatedAt: now,
	}
}
