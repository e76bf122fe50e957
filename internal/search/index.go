// Package search provides full-text search over boards using Bleve.
package search

import (
	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/mapping"

	"github.com/hmans/boards/internal/model"
)

// DefaultSearchLimit is the default maximum number of search results.
const DefaultSearchLimit = 100

// Index wraps a Bleve in-memory index for searching boards.
type Index struct {
	index bleve.Index
}

// boardDocument is the structure stored in the Bleve index.
type boardDocument struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	UserID  string `json:"user_id"`
}

func newBoardDocument(b *model.Board) boardDocument {
	return boardDocument{
		ID:      b.ID,
		Title:   b.Title,
		Content: b.Content,
		UserID:  b.UserID,
	}
}

// NewIndex creates a new in-memory Bleve index.
func NewIndex() (*Index, error) {
	idx, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, err
	}

	return &Index{index: idx}, nil
}

// buildIndexMapping creates the Bleve index mapping for board documents.
func buildIndexMapping() mapping.IndexMapping {
	textFieldMapping := bleve.NewTextFieldMapping()
	textFieldMapping.Analyzer = "standard"

	keywordFieldMapping := bleve.NewKeywordFieldMapping()

	boardMapping := bleve.NewDocumentMapping()
	boardMapping.AddFieldMappingsAt("id", keywordFieldMapping)
	boardMapping.AddFieldMappingsAt("title", textFieldMapping)
	boardMapping.AddFieldMappingsAt("content", textFieldMapping)
	boardMapping.AddFieldMappingsAt("user_id", keywordFieldMapping)

	indexMapping := bleve.NewIndexMapping()
	indexMapping.DefaultMapping = boardMapping
	indexMapping.DefaultAnalyzer = "standard"
	indexMapping.IndexDynamic = false
	indexMapping.StoreDynamic = false
	indexMapping.ScoringModel = "bm25"

	return indexMapping
}

// Close closes the index.
func (idx *Index) Close() error {
	return idx.index.Close()
}

// IndexBoard adds or updates a board in the search index.
func (idx *Index) IndexBoard(b *model.Board) error {
	return idx.index.Index(b.ID, newBoardDocument(b))
}

// DeleteBoard removes a board from the search index.
func (idx *Index) DeleteBoard(id string) error {
	return idx.index.Delete(id)
}

// Reset drops every indexed board and indexes the given ones in a single batch.
func (idx *Index) Reset(boards []*model.Board) error {
	count, err := idx.index.DocCount()
	if err != nil {
		return err
	}

	batch := idx.index.NewBatch()

	if count > 0 {
		req := bleve.NewSearchRequest(bleve.NewMatchAllQuery())
		req.Size = int(count)
		result, err := idx.index.Search(req)
		if err != nil {
			return err
		}
		for _, hit := range result.Hits {
			batch.Delete(hit.ID)
		}
	}

	for _, b := range boards {
		if err := batch.Index(b.ID, newBoardDocument(b)); err != nil {
			return err
		}
	}

	return idx.index.Batch(batch)
}

// Search executes a query-string query and returns matching board IDs, best match first.
// The limit parameter controls the maximum number of results (0 uses DefaultSearchLimit).
func (idx *Index) Search(queryStr string, limit int) ([]string, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	// Query string syntax supports terms, phrases, wildcards and
	// field-specific clauses such as "title:notes" or "user_id:1".
	query := bleve.NewQueryStringQuery(queryStr)

	searchRequest := bleve.NewSearchRequest(query)
	searchRequest.Size = limit

	result, err := idx.index.Search(searchRequest)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(result.Hits))
	for _, hit := range result.Hits {
		ids = append(ids, hit.ID)
	}

	return ids, nil
}
