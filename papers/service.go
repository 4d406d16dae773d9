package papers

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/tranhoang77/HybridRAG-paper-recommendation-system/errors"
)

// Service is a read-through cache over the per-topic JSON artifacts written
// by the offline search job. It resolves and parses files, nothing more.
type Service struct {
	dir string
}

func NewService(dir string) *Service {
	return &Service{
		dir: dir,
	}
}

// Get returns the artifact document for topic, parsed but otherwise
// untouched.
func (s *Service) Get(topic string) (interface{}, error) {
	// A topic that slugs to nothing can never have an artifact, so it is
	// indistinguishable from an unknown topic.
	slug := Slug(topic)
	if slug == "" {
		return nil, errors.New(fmt.Sprintf("no papers for topic %q", topic), errors.NotFound())
	}

	data, err := ioutil.ReadFile(filepath.Join(s.dir, slug+".json"))
	if os.IsNotExist(err) {
		return nil, errors.New(fmt.Sprintf("no papers for topic %q", topic), errors.NotFound())
	} else if err != nil {
		return nil, errors.New("could not read papers file", errors.WithCause(err))
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.New("error reading data file", errors.WithCause(err))
	}

	return doc, nil
}
