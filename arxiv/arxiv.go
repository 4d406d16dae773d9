package arxiv

import (
	"context"
	"encoding/xml"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	paperwatch "github.com/tranhoang77/HybridRAG-paper-recommendation-system"
)

var (
	apiURLStr = "http://export.arxiv.org/api/query"

	summaryPipe = CleaningPipe(
		strings.TrimSpace,
		OneLine,
		strings.TrimSpace,
	)

	idRegexp *regexp.Regexp
)

func init() {
	idRegexp = regexp.MustCompile("https?://arxiv.org/abs/([0-9.]+)(v[0-9]+)?")

	// Check if arxiv URL is valid
	if _, err := url.Parse(apiURLStr); err != nil {
		panic(err)
	}
}

// arxivCategories translates the taxonomy terms of the areas this pipeline
// ingests into readable tags. Unknown terms are dropped.
var arxivCategories = map[string]string{
	"cs.AI":   "Computer Science - Artificial Intelligence",
	"cs.CL":   "Computer Science - Computation and Language",
	"cs.CV":   "Computer Science - Computer Vision and Pattern Recognition",
	"cs.DB":   "Computer Science - Databases",
	"cs.DC":   "Computer Science - Distributed; Parallel; and Cluster Computing",
	"cs.GR":   "Computer Science - Graphics",
	"cs.IR":   "Computer Science - Information Retrieval",
	"cs.LG":   "Computer Science - Learning",
	"cs.MA":   "Computer Science - Multiagent Systems",
	"cs.NE":   "Computer Science - Neural and Evolutionary Computing",
	"cs.RO":   "Computer Science - Robotics",
	"cs.SD":   "Computer Science - Sound",
	"eess.AS": "Electrical Engineering - Audio and Speech Processing",
	"eess.IV": "Electrical Engineering - Image and Video Processing",
	"math.OC": "Mathematics - Optimization and Control",
	"math.ST": "Mathematics - Statistics",
	"stat.AP": "Statistics - Applications",
	"stat.ML": "Statistics - Machine Learning",
	"stat.ME": "Statistics - Methodology",
}

type responseEntry struct {
	Title   string `xml:"title"`
	ID      string `xml:"id"`
	Summary string `xml:"summary"`
	Links   []struct {
		HRef string `xml:"href,attr"`
		Type string `xml:"type,attr"`
		Rel  string `xml:"rel,attr"`
	} `xml:"link"`
	Categories []struct {
		Term string `xml:"term,attr"`
	} `xml:"category"`
	Published time.Time `xml:"published"`
	Updated   time.Time `xml:"updated"`
}

type response struct {
	Total struct {
		Value uint64 `xml:",chardata"`
	} `xml:"totalResults"`
	Offset struct {
		Value uint64 `xml:",chardata"`
	} `xml:"startIndex"`
	Limit struct {
		Value uint64 `xml:",chardata"`
	} `xml:"itemsPerPage"`
	Entries []responseEntry `xml:"entry"`
}

type SearchResults struct {
	Papers []*paperwatch.Paper
	Total  uint64
}

// Spider queries the arXiv Atom API.
type Spider struct {
	client *http.Client
	apiURL string
}

func NewSpider() *Spider {
	return &Spider{
		client: &http.Client{Timeout: 20 * time.Second},
		apiURL: apiURLStr,
	}
}

// Search queries arXiv for q, most recently submitted first.
func (s *Spider) Search(ctx context.Context, q string, limit, offset int) (SearchResults, error) {
	u, err := craftURL(s.apiURL, q, limit, offset)
	if err != nil {
		return SearchResults{}, err
	}

	req, err := http.NewRequest("GET", u.String(), nil)
	if err != nil {
		return SearchResults{}, err
	}
	req = req.WithContext(ctx)

	resp, err := s.client.Do(req)
	if err != nil {
		return SearchResults{}, err
	}
	defer resp.Body.Close()

	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return SearchResults{}, err
	}

	var r response
	if err := xml.Unmarshal(data, &r); err != nil {
		return SearchResults{}, err
	}

	return SearchResults{
		Papers: parsePapers(r),
		Total:  r.Total.Value,
	}, nil
}

func parsePapers(r response) []*paperwatch.Paper {
	papers := make([]*paperwatch.Paper, 0, len(r.Entries))
	for _, entry := range r.Entries {
		tags := make([]string, 0, len(entry.Categories))
		for _, cat := range entry.Categories {
			if tag, ok := arxivCategories[cat.Term]; ok {
				tags = append(tags, tag)
			}
		}

		paper := &paperwatch.Paper{
			ArxivID:     extractID(entry.ID),
			Title:       summaryPipe(entry.Title),
			Summary:     summaryPipe(entry.Summary),
			Tags:        tags,
			ArxivURL:    entry.ID,
			PublishedAt: entry.Published,
			UpdatedAt:   entry.Updated,
		}

		for _, link := range entry.Links {
			if link.Type == "application/pdf" {
				paper.PDFURL = link.HRef
			}
		}

		papers = append(papers, paper)
	}
	return papers
}

func extractID(abs string) string {
	matches := idRegexp.FindStringSubmatch(abs)
	if len(matches) < 2 {
		return abs
	}
	return matches[1]
}

func craftURL(base, q string, limit, offset int) (*url.URL, error) {
	u, err := url.Parse(base)
	if err != nil {
		return nil, err
	}

	query := u.Query()
	if q != "" {
		re := regexp.MustCompile("[A-Za-z0-9]+")
		matches := re.FindAllString(q, -1)
		if len(matches) == 0 {
			return nil, fmt.Errorf("empty query %q", q)
		}
		query.Add("search_query", fmt.Sprintf("all:%s", strings.Join(matches, " AND ")))
	}

	query.Add("start", strconv.Itoa(offset))
	query.Add("max_results", strconv.Itoa(limit))
	query.Add("sortBy", "submittedDate")
	query.Add("sortOrder", "descending")
	u.RawQuery = query.Encode()

	return u, nil
}
