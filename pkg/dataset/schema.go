package dataset

import "personalityPairing/pkg/table"

// Logical song fields.
const (
	SongTrack        = "track"
	SongArtist       = "artist"
	SongValence      = "valence"
	SongEnergy       = "energy"
	SongDanceability = "danceability"
	SongMBTI         = "mbti"
)

// Logical wine review fields.
const (
	WineTitle       = "title"
	WineCountry     = "country"
	WineDescription = "description"
	WineVariety     = "variety"
	WinePoints      = "points"
	WinePrice       = "price"
)

var SongSchema = table.Schema{
	Name: "songs",
	Fields: []table.Field{
		{Name: SongTrack, Candidates: []string{"track_name"}},
		{Name: SongArtist, Candidates: []string{"artist(s)_name", "artist_name"}},
		{Name: SongValence, Candidates: []string{"valence_%"}},
		{Name: SongEnergy, Candidates: []string{"energy_%"}},
		{Name: SongDanceability, Candidates: []string{"danceability_%"}, Optional: true},
		{Name: SongMBTI, Candidates: []string{"mbti"}, Optional: true},
	},
}

// WineSchema prefers the translated review columns when the export carries them.
var WineSchema = table.Schema{
	Name: "wines",
	Fields: []table.Field{
		{Name: WineTitle, Candidates: []string{"title_es", "title", "designation"}},
		{Name: WineCountry, Candidates: []string{"country_es", "country"}},
		{Name: WineDescription, Candidates: []string{"description_es", "description"}, Optional: true},
		{Name: WineVariety, Candidates: []string{"variety"}},
		{Name: WinePoints, Candidates: []string{"points"}},
		{Name: WinePrice, Candidates: []string{"price"}, Optional: true},
	},
}
