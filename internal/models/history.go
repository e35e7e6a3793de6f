package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type HistoryEntry struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID    string             `json:"user_id" bson:"user_id"`
	ListID    string             `json:"list_id,omitempty" bson:"list_id,omitempty"`
	Items     []string           `json:"items" bson:"items"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}

type HistoryRequest struct {
	UserID string   `json:"user_id"`
	ListID string   `json:"list_id,omitempty"`
	Items  []string `json:"items"`
}
