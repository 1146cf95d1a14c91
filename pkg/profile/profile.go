package profile

import "strings"

type Profile struct {
	Code        string
	Description string
	// Wine is the variety searched for in the wine reviews.
	Wine  string
	Color string
}

var profiles = []Profile{
	{Code: "INFP", Description: "Dreamy, sensitive, introspective", Wine: "Pinot Noir", Color: "#e6ccff"},
	{Code: "ENFP", Description: "Spontaneous, creative, sociable", Wine: "Sauvignon Blanc", Color: "#ffe680"},
	{Code: "INTJ", Description: "Analytical, reserved, strategic", Wine: "Cabernet Sauvignon", Color: "#c2f0c2"},
	{Code: "ISFJ", Description: "Warm, protective, loyal", Wine: "Merlot", Color: "#f0d9b5"},
	{Code: "ENTP", Description: "Innovative, talkative, curious", Wine: "Rosé", Color: "#ffcce6"},
	{Code: "ESFP", Description: "Cheerful, impulsive, energetic", Wine: "Sparkling", Color: "#ffcccc"},
	{Code: "INFJ", Description: "Visionary, intuitive, deep", Wine: "Syrah", Color: "#d9d2e9"},
	{Code: "ISTJ", Description: "Traditional, methodical, practical", Wine: "Malbec", Color: "#d9ead3"},
}

var byCode = func() map[string]Profile {
	m := make(map[string]Profile, len(profiles))
	for _, p := range profiles {
		m[p.Code] = p
	}
	return m
}()

func Lookup(code string) (Profile, bool) {
	p, ok := byCode[strings.ToUpper(strings.TrimSpace(code))]
	return p, ok
}

func Codes() []string {
	codes := make([]string, len(profiles))
	for i, p := range profiles {
		codes[i] = p.Code
	}
	return codes
}

func All() []Profile {
	return append([]Profile{}, profiles...)
}
