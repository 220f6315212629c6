// api/model/settings.go
package model

// Settings is the public site configuration, stored as a flat key/value set.
type Settings map[string]string

type UpdateSettingsRequest struct {
	Values map[string]string `json:"values"`
}

// Homepage aggregates the landing-page sections in one response.
type Homepage struct {
	Articles []*Article `json:"articles"`
	Events   []*Event   `json:"events"`
	Mixes    []*Mix     `json:"mixes"`
	Products []*Product `json:"products"`
}

// Upload is the object-storage result returned to the client.
type Upload struct {
	Key string `json:"key"`
	URL string `json:"url"`
}
