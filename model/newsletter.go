// api/model/newsletter.go
package model

import "time"

type Subscriber struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	SubscribedAt time.Time `json:"subscribedAt"`
}

type SubscribeRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type UnsubscribeRequest struct {
	Email string `json:"email"`
}
