// Package queue defines message payloads exchanged over the message broker
// and the background consumer that drains them.
package queue

// ReviewPostedEvent is published when a review is successfully created. It
// carries enough context for downstream consumers to log or notify without
// querying the primary store.
type ReviewPostedEvent struct {
	ReviewID   string `json:"review_id"`
	PlaceID    string `json:"place_id"`
	PlaceTitle string `json:"place_title"`
	UserID     string `json:"user_id"`
	Rating     int    `json:"rating"`
	PostedAt   string `json:"posted_at"`
}
