package digest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// CSVRecipientSource reads the fan-out list from a flat file with a
// Name,email,topic header, the hand-maintained per-topic recipient file the
// batch has always consumed.
type CSVRecipientSource struct {
	path string
}

func NewCSVRecipientSource(path string) *CSVRecipientSource {
	return &CSVRecipientSource{
		path: path,
	}
}

func (s *CSVRecipientSource) Recipients() ([]Recipient, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("could not read header: %v", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"name", "email", "topic"} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("missing column %q in %s", required, s.path)
		}
	}

	var recipients []Recipient
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}

		recipients = append(recipients, Recipient{
			Name:  record[columns["name"]],
			Email: record[columns["email"]],
			Topic: record[columns["topic"]],
		})
	}

	return recipients, nil
}
