package digest

import (
	"bytes"
	"html/template"

	"github.com/russross/blackfriday"

	paperwatch "github.com/tranhoang77/HybridRAG-paper-recommendation-system"
)

const digestTemplate = `<html>
<head>
  <meta charset="UTF-8">
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.5; }
    .paper-container {
        border: 1px solid #ddd;
        border-radius: 8px;
        padding: 12px;
        margin-bottom: 20px;
        background-color: #f9f9f9;
    }
    .paper-title { font-size: 18px; font-weight: bold; color: #333; margin-bottom: 8px; }
    .paper-novelty { font-size: 14px; font-style: italic; color: #555; margin-bottom: 8px; }
    .paper-content { font-size: 14px; color: #444; white-space: pre-wrap; }
  </style>
</head>
<body>
  <p>Hello <strong>{{.Name}}</strong>!</p>
  <p>Here is a summary of recent papers matching your topic: <em>{{.Topic}}</em>.</p>
  {{ if .Papers }}{{ range .Papers }}<div class="paper-container">
    <div class="paper-title">{{.Index}}. {{.Title}}</div>
    <div class="paper-novelty"><strong>Novelty:</strong> {{.Novelty}}</div>
    <div class="paper-content"><strong>Summary:</strong><br>{{.Summary}}</div>
    <a href="{{.PDFURL}}">Read the paper on arXiv</a>
  </div>
  {{ end }}{{ else }}<p>No recent papers matched your topic.</p>
  {{ end }}<p>Best,<br>The Paper Summary team</p>
</body>
</html>
`

var tmpl = template.Must(template.New("digest").Parse(digestTemplate))

type paperView struct {
	Index   int
	Title   string
	Novelty string
	Summary template.HTML
	PDFURL  string
}

type digestView struct {
	Name   string
	Topic  string
	Papers []paperView
}

// renderDigest builds the full HTML body for one recipient. Fields the
// pipeline has not filled render as a literal N/A, never as an error.
func renderDigest(r Recipient, papers []paperwatch.Paper) (string, error) {
	views := make([]paperView, len(papers))
	for i, paper := range papers {
		views[i] = paperView{
			Index:   i + 1,
			Title:   orNA(paper.Title),
			Novelty: orNA(paper.Novelty),
			Summary: renderSummary(paper.Summary),
			PDFURL:  orNA(paper.PDFURL),
		}
	}

	var buf bytes.Buffer
	err := tmpl.Execute(&buf, digestView{
		Name:   r.Name,
		Topic:  r.Topic,
		Papers: views,
	})
	if err != nil {
		return "", err
	}

	return buf.String(), nil
}

// renderSummary renders the markdown summary produced by the offline
// pipeline into HTML.
func renderSummary(summary string) template.HTML {
	if summary == "" {
		return "N/A"
	}
	return template.HTML(blackfriday.MarkdownCommon([]byte(summary)))
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
