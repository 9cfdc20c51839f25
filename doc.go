// Package docstore provides an embeddable, concurrency-safe in-memory document store
// with upsert, lookup by ID and multi-criteria filtered search.
//
//	store, _ := docstore.New(docstore.WithLogger(logger))
//
//	doc := &docstore.Document{
//	    Title:   "Title One",
//	    Content: "Content One",
//	    Author:  docstore.Author{ID: "1", Name: "Author One"},
//	    Created: time.Now(),
//	}
//	saved, _ := store.Save(ctx, doc) // doc.ID is populated
//
//	got, ok := store.FindByID(ctx, saved.ID)
//
//	results := store.Search(ctx, &docstore.SearchCriteria{
//	    TitlePrefixes: []string{"Title"},
//	    AuthorIDs:     []string{"1", "2"},
//	})
//
// # Search semantics
//
// Dimensions combine with AND; values inside a list combine with OR.
// An empty list or nil bound leaves a dimension unconstrained, and a nil
// *SearchCriteria returns every document. CreatedFrom and CreatedTo are
// inclusive. A document field without data (empty title, empty content,
// empty author ID, zero Created) never matches a constrained dimension.
// Result order is unspecified.
package docstore
