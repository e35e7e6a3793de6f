package models

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ShoppingList is the subset of a list service document the recommender reads.
type ShoppingList struct {
	ID     interface{} `json:"id" bson:"_id"`
	UserID string      `json:"user_id,omitempty" bson:"user_id,omitempty"`
	Name   string      `json:"name,omitempty" bson:"name,omitempty"`
	Items  []ListItem  `json:"items" bson:"items"`
}

type ListItem struct {
	ItemID string `json:"item_id" bson:"item_id"`
}

// IDString renders the document id the way clients see it.
func (l ShoppingList) IDString() string {
	switch id := l.ID.(type) {
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	case nil:
		return ""
	default:
		return fmt.Sprint(id)
	}
}

// ItemIDs returns the item ids on the list in stored order.
func (l ShoppingList) ItemIDs() []string {
	ids := make([]string, 0, len(l.Items))
	for _, item := range l.Items {
		if item.ItemID == "" {
			continue
		}
		ids = append(ids, item.ItemID)
	}
	return ids
}
