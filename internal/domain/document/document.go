package document

import "time"

// Author is the document author (immutable value object).
type Author struct {
	id   string
	name string
}

// NewAuthor creates an Author.
func NewAuthor(id, name string) Author {
	return Author{id: id, name: name}
}

// ID returns the author identifier.
func (a Author) ID() string { return a.id }

// Name returns the author display name.
func (a Author) Name() string { return a.name }

// Document is the document aggregate (immutable value object).
type Document struct {
	id      string
	title   string
	content string
	author  Author
	created time.Time
}

// New creates a Document. The creation timestamp is normalized to UTC.
// An empty id is allowed: the store assigns one on save.
func New(id, title, content string, author Author, created time.Time) Document {
	return Document{
		id:      id,
		title:   title,
		content: content,
		author:  author,
		created: created.UTC(),
	}
}

// ID returns the document identifier.
func (d *Document) ID() string { return d.id }

// Title returns the document title.
func (d *Document) Title() string { return d.title }

// Content returns the document text content.
func (d *Document) Content() string { return d.content }

// Author returns the document author.
func (d *Document) Author() Author { return d.author }

// Created returns the creation timestamp (UTC).
func (d *Document) Created() time.Time { return d.created }

// HasID reports whether the document carries an identifier.
func (d *Document) HasID() bool { return d.id != "" }

// WithID returns a copy with the given identifier set.
func (d *Document) WithID(id string) Document {
	return Document{
		id: id, title: d.title, content: d.content,
		author: d.author, created: d.created,
	}
}
