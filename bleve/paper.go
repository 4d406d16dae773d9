package bleve

import (
	"github.com/blevesearch/bleve"
	"github.com/blevesearch/bleve/analysis/analyzer/simple"
	"github.com/blevesearch/bleve/analysis/lang/en"
	"github.com/blevesearch/bleve/mapping"
	"github.com/blevesearch/bleve/search/query"

	paperwatch "github.com/tranhoang77/HybridRAG-paper-recommendation-system"
)

// PaperIndex is the keyword leg of the paper search: titles, summaries and
// tags analyzed for english, documents keyed by arXiv id.
type PaperIndex struct {
	index bleve.Index
}

// Open opens the index at path, creating it if it does not exist yet.
func (s *PaperIndex) Open(path string) error {
	index, err := bleve.Open(path)
	if err == bleve.ErrorIndexPathDoesNotExist {
		index, err = bleve.New(path, paperMapping())
	}
	if err != nil {
		return err
	}

	s.index = index
	return nil
}

func (s *PaperIndex) Close() error {
	if s.index == nil {
		return nil
	}

	return s.index.Close()
}

func (s *PaperIndex) Index(paper *paperwatch.Paper) error {
	data := map[string]interface{}{
		"title":   paper.Title,
		"summary": paper.Summary,
		"tags":    paper.Tags,
	}

	return s.index.Index(paper.ArxivID, data)
}

func (s *PaperIndex) Delete(id string) error {
	return s.index.Delete(id)
}

func (s *PaperIndex) Search(search paperwatch.PaperSearch) (paperwatch.PaperSearchResults, error) {
	var q query.Query = query.NewMatchAllQuery()
	if search.Q != "" {
		title := query.NewMatchQuery(search.Q)
		title.SetField("title")
		title.SetBoost(2)

		summary := query.NewMatchQuery(search.Q)
		summary.SetField("summary")

		tags := query.NewMatchQuery(search.Q)
		tags.SetField("tags")

		q = query.NewDisjunctionQuery([]query.Query{title, summary, tags})
	}

	searchRequest := bleve.NewSearchRequest(q)
	if search.Limit > 0 {
		searchRequest.Size = search.Limit
	}
	searchRequest.From = search.Offset

	searchResults, err := s.index.Search(searchRequest)
	if err != nil {
		return paperwatch.PaperSearchResults{}, err
	}

	ids := make([]string, len(searchResults.Hits))
	for i, hit := range searchResults.Hits {
		ids[i] = hit.ID
	}

	return paperwatch.PaperSearchResults{
		IDs:   ids,
		Total: searchResults.Total,
	}, nil
}

func paperMapping() mapping.IndexMapping {
	title := bleve.NewTextFieldMapping()
	title.Analyzer = en.AnalyzerName

	summary := bleve.NewTextFieldMapping()
	summary.Analyzer = en.AnalyzerName

	tags := bleve.NewTextFieldMapping()
	tags.Analyzer = simple.Name

	paper := bleve.NewDocumentMapping()
	paper.AddFieldMappingsAt("title", title)
	paper.AddFieldMappingsAt("summary", summary)
	paper.AddFieldMappingsAt("tags", tags)

	m := bleve.NewIndexMapping()
	m.DefaultMapping = paper
	return m
}
