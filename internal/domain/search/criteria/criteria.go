// Package criteria holds the search criteria value object and its matching rules.
//
// Dimensions combine with AND; values inside a list-valued dimension combine
// with OR. An empty list or nil bound leaves the dimension unconstrained.
// A document field without data (empty string, empty author id, zero time)
// never satisfies a constrained dimension.
package criteria

import (
	"slices"
	"strings"
	"time"

	domdoc "github.com/kailas-cloud/docstore/internal/domain/document"
)

// Criteria is a multi-dimension document filter (immutable value object).
type Criteria struct {
	titlePrefixes    []string
	containsContents []string
	authorIDs        []string
	createdFrom      *time.Time
	createdTo        *time.Time
}

// New creates Criteria. All arguments are optional; slices and bounds are copied.
func New(titlePrefixes, containsContents, authorIDs []string, createdFrom, createdTo *time.Time) Criteria {
	return Criteria{
		titlePrefixes:    slices.Clone(titlePrefixes),
		containsContents: slices.Clone(containsContents),
		authorIDs:        slices.Clone(authorIDs),
		createdFrom:      cloneTime(createdFrom),
		createdTo:        cloneTime(createdTo),
	}
}

// TitlePrefixes returns the accepted title prefixes.
func (c *Criteria) TitlePrefixes() []string { return c.titlePrefixes }

// ContainsContents returns the accepted content substrings.
func (c *Criteria) ContainsContents() []string { return c.containsContents }

// AuthorIDs returns the accepted author identifiers.
func (c *Criteria) AuthorIDs() []string { return c.authorIDs }

// CreatedFrom returns the inclusive lower bound, or nil.
func (c *Criteria) CreatedFrom() *time.Time { return c.createdFrom }

// CreatedTo returns the inclusive upper bound, or nil.
func (c *Criteria) CreatedTo() *time.Time { return c.createdTo }

// IsEmpty reports whether no dimension is constrained.
func (c *Criteria) IsEmpty() bool {
	if c == nil {
		return true
	}
	return len(c.titlePrefixes) == 0 && len(c.containsContents) == 0 &&
		len(c.authorIDs) == 0 && c.createdFrom == nil && c.createdTo == nil
}

// Matches reports whether doc satisfies every constrained dimension.
// A nil receiver matches everything.
func (c *Criteria) Matches(doc *domdoc.Document) bool {
	if c == nil {
		return true
	}
	return c.matchTitle(doc.Title()) &&
		c.matchContent(doc.Content()) &&
		c.matchAuthor(doc.Author().ID()) &&
		c.matchCreated(doc.Created())
}

func (c *Criteria) matchTitle(title string) bool {
	if len(c.titlePrefixes) == 0 {
		return true
	}
	if title == "" {
		return false
	}
	return slices.ContainsFunc(c.titlePrefixes, func(p string) bool {
		return strings.HasPrefix(title, p)
	})
}

func (c *Criteria) matchContent(content string) bool {
	if len(c.containsContents) == 0 {
		return true
	}
	if content == "" {
		return false
	}
	return slices.ContainsFunc(c.containsContents, func(s string) bool {
		return strings.Contains(content, s)
	})
}

func (c *Criteria) matchAuthor(authorID string) bool {
	if len(c.authorIDs) == 0 {
		return true
	}
	if authorID == "" {
		return false
	}
	return slices.Contains(c.authorIDs, authorID)
}

// matchCreated applies inclusive bounds on both ends.
func (c *Criteria) matchCreated(created time.Time) bool {
	if c.createdFrom == nil && c.createdTo == nil {
		return true
	}
	if created.IsZero() {
		return false
	}
	if c.createdFrom != nil && created.Before(*c.createdFrom) {
		return false
	}
	if c.createdTo != nil && created.After(*c.createdTo) {
		return false
	}
	return true
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
