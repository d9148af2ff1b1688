package models

import "fmt"

// ContentType classifies what kind of media or software an item is.
type ContentType string

const (
	ContentTypeOther    ContentType = "Other"
	ContentTypeGame     ContentType = "Game"
	ContentTypeNovel    ContentType = "Novel"
	ContentTypeComic    ContentType = "Comic"
	ContentTypeAnime    ContentType = "Anime"
	ContentTypeMusic    ContentType = "Music"
	ContentTypeMovie    ContentType = "Movie"
	ContentTypeSoftware ContentType = "Software"
)

// ContentTypes lists every content type in display order.
var ContentTypes = []ContentType{
	ContentTypeOther,
	ContentTypeGame,
	ContentTypeNovel,
	ContentTypeComic,
	ContentTypeAnime,
	ContentTypeMusic,
	ContentTypeMovie,
	ContentTypeSoftware,
}

// Valid reports whether c is one of the known content types.
func (c ContentType) Valid() bool {
	for _, known := range ContentTypes {
		if c == known {
			return true
		}
	}
	return false
}

// ParseContentType converts a selector string to a [ContentType].
func ParseContentType(s string) (ContentType, error) {
	c := ContentType(s)
	if !c.Valid() {
		return "", fmt.Errorf("%w: content type %q", ErrUnknownVariant, s)
	}
	return c, nil
}
