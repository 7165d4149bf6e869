package model

// Movie mirrors the movie service's representation.  The gateway never
// owns movie records; instances exist only while a response is in flight.
//
// Fields:
//  ID          – movie service identifier.
//  Title       – display title.
//  Language    – audio language shown next to the title.
//  Genre       – comma separated genre list.
//  Duration    – human readable runtime such as "2h 12m".
//  ReleaseDate – release date string as the movie service formats it.
//  Synopsis    – short plot description.
//  Cast        – leading cast members.
//  IMDBRating  – aggregate rating out of 10.
//  PosterURL   – location of the poster asset.
//  Status      – listing status (e.g. NOW_SHOWING, COMING_SOON).
type Movie struct {
	ID          uint64   `json:"id"`
	Title       string   `json:"title"`
	Language    string   `json:"language"`
	Genre       string   `json:"genre"`
	Duration    string   `json:"duration"`
	ReleaseDate string   `json:"releaseDate"`
	Synopsis    string   `json:"synopsis"`
	Cast        []string `json:"cast"`
	IMDBRating  float64  `json:"imdbRating"`
	PosterURL   string   `json:"posterUrl"`
	Status      string   `json:"status"`
}
