package docstore

import "time"

// Author identifies the author of a document.
type Author struct {
	ID   string
	Name string
}

// Document is a stored record. ID may be empty on Save; the store assigns one.
type Document struct {
	ID      string
	Title   string
	Content string
	Author  Author
	Created time.Time
}

// SearchCriteria filters documents. Every field is optional.
type SearchCriteria struct {
	TitlePrefixes    []string   // title starts with any of these
	ContainsContents []string   // content contains any of these
	AuthorIDs        []string   // author ID equals any of these
	CreatedFrom      *time.Time // inclusive
	CreatedTo        *time.Time // inclusive
}
