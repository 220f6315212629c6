// api/model/event.go
package model

import "time"

type Event struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Venue       string     `json:"venue"`
	City        string     `json:"city"`
	StartsAt    time.Time  `json:"startsAt"`
	EndsAt      *time.Time `json:"endsAt,omitempty"`
	Description string     `json:"description"`
	CoverImage  string     `json:"coverImage"`
	TicketURL   string     `json:"ticketUrl"`
	Published   bool       `json:"published"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type EventInput struct {
	Title       string `json:"title"`
	Venue       string `json:"venue"`
	City        string `json:"city"`
	StartsAt    string `json:"startsAt"`
	EndsAt      string `json:"endsAt"`
	Description string `json:"description"`
	CoverImage  string `json:"coverImage"`
	TicketURL   string `json:"ticketUrl"`
	Published   bool   `json:"published"`
}

type EventFilter struct {
	UpcomingOnly  bool
	PublishedOnly bool
}
