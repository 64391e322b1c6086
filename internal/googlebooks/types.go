package googlebooks

import (
	"strings"
	"time"

	"pilealire/internal/library"
)

// Volume represents a single volume from the Google Books API.

type Volume struct {
	ID         string     `json:"id"`
	VolumeInfo VolumeInfo `json:"volumeInfo"`
}

type VolumeInfo struct {
	Title         string     `json:"title"`
	Subtitle      string     `json:"subtitle"`
	Authors       []string   `json:"authors"`
	Description   string     `json:"description"`
	PublishedDate string     `json:"publishedDate"`
	PageCount     int        `json:"pageCount"`
	Categories    []string   `json:"categories"`
	ImageLinks    ImageLinks `json:"imageLinks"`
}

type ImageLinks struct {
	SmallThumbnail string `json:"smallThumbnail"`
	Thumbnail      string `json:"thumbnail"`
}

// ToBook maps the volume to a new to_read library entry. fallbackTitle is
// used when the catalog has no title.
func (v Volume) ToBook(now time.Time, fallbackTitle string) library.Book {
	info := v.VolumeInfo

	title := strings.TrimSpace(info.Title)
	if title == "" {
		title = fallbackTitle
	} else if sub := strings.TrimSpace(info.Subtitle); sub != "" {
		title += ": " + sub
	}

	b := library.NewBook(v.ID, title, now)
	b.Authors = info.Authors
	b.Description = info.Description
	b.Categories = info.Categories
	b.PublishedDate = info.PublishedDate
	if info.PageCount > 0 {
		pages := info.PageCount
		b.PageCount = &pages
	}

	thumb := info.ImageLinks.Thumbnail
	if thumb == "" {
		thumb = info.ImageLinks.SmallThumbnail
	}
	// The API still hands out http:// cover links.
	b.Thumbnail = strings.Replace(thumb, "http://", "https://", 1)
	return b
}
