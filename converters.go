package docstore

import (
	domdoc "github.com/kailas-cloud/docstore/internal/domain/document"
	"github.com/kailas-cloud/docstore/internal/domain/search/criteria"
)

func toDomainDocument(d *Document) domdoc.Document {
	return domdoc.New(
		d.ID, d.Title, d.Content,
		domdoc.NewAuthor(d.Author.ID, d.Author.Name),
		d.Created,
	)
}

func fromDomainDocument(d *domdoc.Document) Document {
	a := d.Author()
	return Document{
		ID:      d.ID(),
		Title:   d.Title(),
		Content: d.Content(),
		Author:  Author{ID: a.ID(), Name: a.Name()},
		Created: d.Created(),
	}
}

func fromDomainDocuments(docs []domdoc.Document) []Document {
	out := make([]Document, len(docs))
	for i := range docs {
		out[i] = fromDomainDocument(&docs[i])
	}
	return out
}

// toCriteria returns nil for nil input so the search layer matches everything.
func toCriteria(sc *SearchCriteria) *criteria.Criteria {
	if sc == nil {
		return nil
	}
	c := criteria.New(sc.TitlePrefixes, sc.ContainsContents, sc.AuthorIDs, sc.CreatedFrom, sc.CreatedTo)
	return &c
}
