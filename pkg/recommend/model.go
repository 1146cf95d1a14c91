package recommend

import (
	"encoding/json"
	"fmt"

	"personalityPairing/pkg/profile"
)

type Song struct {
	Track        string
	Artist       string
	Valence      float64
	Energy       float64
	Danceability float64
}

func (s Song) String() string {
	return fmt.Sprintf("%s — %s", s.Track, s.Artist)
}

type Wine struct {
	Title       string
	Country     string
	Variety     string
	Description string
	Points      float64
}

func (w Wine) String() string {
	return fmt.Sprintf("%s (%s) — %g pts", w.Title, w.Country, w.Points)
}

type Recommendation struct {
	Profile  profile.Profile
	Songs    []Song
	Wines    []Wine
	Warnings []string
}

func (r Recommendation) String() string {
	recJson, err := json.Marshal(r)
	if err != nil {
		return fmt.Sprint(r.Profile.Code)
	}

	return string(recJson)
}
