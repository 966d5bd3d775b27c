package model

// Genre is one of the fixed music genres a venue or artist can be tagged
// with.  The stored value is the identifier (e.g. "HipHop"); Label gives the
// human readable form used in templates.
type Genre string

const (
	GenreAlternative    Genre = "Alternative"
	GenreBlues          Genre = "Blues"
	GenreClassical      Genre = "Classical"
	GenreElectronic     Genre = "Electronic"
	GenreFolk           Genre = "Folk"
	GenreFunk           Genre = "Funk"
	GenreHipHop         Genre = "HipHop"
	GenreHeavyMetal     Genre = "HeavyMetal"
	GenreInstrumental   Genre = "Instrumental"
	GenreJazz           Genre = "Jazz"
	GenreMusicalTheatre Genre = "MusicalTheatre"
	GenrePop            Genre = "Pop"
	GenrePunk           Genre = "Punk"
	GenreRnB            Genre = "RnB"
	GenreReggae         Genre = "Reggae"
	GenreRocknRoll      Genre = "RocknRoll"
	GenreSoul           Genre = "Soul"
	GenreOther          Genre = "Other"
)

var genres = []Genre{
	GenreAlternative, GenreBlues, GenreClassical, GenreElectronic,
	GenreFolk, GenreFunk, GenreHipHop, GenreHeavyMetal, GenreInstrumental,
	GenreJazz, GenreMusicalTheatre, GenrePop, GenrePunk, GenreRnB,
	GenreReggae, GenreRocknRoll, GenreSoul, GenreOther,
}

var genreLabels = map[Genre]string{
	GenreHipHop:         "Hip-Hop",
	GenreHeavyMetal:     "Heavy Metal",
	GenreMusicalTheatre: "Musical Theatre",
	GenreRnB:            "R&B",
	GenreRocknRoll:      "Rock n Roll",
}

// AllGenres returns every genre in display order.
func AllGenres() []Genre {
	out := make([]Genre, len(genres))
	copy(out, genres)
	return out
}

// Valid reports whether g is one of the known genres.
func (g Genre) Valid() bool {
	for _, known := range genres {
		if g == known {
			return true
		}
	}
	return false
}

// Label returns the display name of the genre.
func (g Genre) Label() string {
	if l, ok := genreLabels[g]; ok {
		return l
	}
	return string(g)
}

// GenreStrings converts genres to their stored identifiers.
func GenreStrings(gs []Genre) []string {
	out := make([]string, len(gs))
	for i, g := range gs {
		out[i] = string(g)
	}
	return out
}

// ParseGenres converts identifiers to genres.  ok is false when any
// identifier is unknown.
func ParseGenres(ss []string) (gs []Genre, ok bool) {
	gs = make([]Genre, 0, len(ss))
	for _, s := range ss {
		g := Genre(s)
		if !g.Valid() {
			return nil, false
		}
		gs = append(gs, g)
	}
	return gs, true
}
