package models

import "time"

// ActivityItem is one row of the super-administrator activity feed.
type ActivityItem struct {
	ID        string    `json:"id"`
	Actor     string    `json:"actor"`
	Action    string    `json:"action"`
	Detail    string    `json:"detail"`
	CreatedAt time.Time `json:"created_at"`
}
