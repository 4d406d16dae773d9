package paperwatch

import (
	"time"
)

// Paper is the unit flowing through the whole pipeline: fetched from arXiv,
// stored, indexed, and eventually rendered in a digest email.
type Paper struct {
	ArxivID string `json:"arxivId"`

	Title   string `json:"title"`
	Summary string `json:"summary"`

	// Novelty is filled by the offline summarization pipeline. It is empty
	// for papers that have only been fetched, and digests render it as N/A.
	Novelty string `json:"novelty,omitempty"`

	Tags []string `json:"tags,omitempty"`

	ArxivURL string `json:"arxivUrl"`
	PDFURL   string `json:"pdfUrl"`

	PublishedAt time.Time `json:"publishedAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type PaperStore interface {
	// Get retrieves papers by arXiv id. Unknown ids are skipped, not errors.
	Get(ids ...string) ([]*Paper, error)
	Upsert(*Paper) error
	List() ([]*Paper, error)
}

type PaperSearch struct {
	Q      string
	Limit  int
	Offset int
}

type PaperSearchResults struct {
	IDs   []string
	Total uint64
}

type PaperIndex interface {
	Index(*Paper) error
	Delete(id string) error
	Search(PaperSearch) (PaperSearchResults, error)
	Close() error
}
