// Package ingestion fetches job postings from URLs and extracts the
// posting text for use as a tailoring job description.
package ingestion

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	// DefaultTimeout is the HTTP request timeout.
	DefaultTimeout = 30 * time.Second
	// DefaultUserAgent is the user agent string for HTTP requests.
	DefaultUserAgent = "Mozilla/5.0 (compatible; ResumeTailor/1.0)"
	// maxBodySize caps how much HTML is read from a posting page.
	maxBodySize = 5 << 20
)

// contentSelectors are tried in order to locate the posting body;
// the first match wins, with <body> as the final fallback.
var contentSelectors = []string{
	"main",
	"article",
	".job-description",
	"#job-description",
	".description",
	"#content",
	".content",
}

// noiseSelector matches elements removed before text extraction.
const noiseSelector = "nav, footer, header, script, style, noscript, .ad, .ads, .sidebar, .cookie-banner, .popup"

// Posting holds the extracted content of a job posting page.
type Posting struct {
	URL   string
	Title string
	Text  string
}

// FetchPosting downloads a job posting page and extracts its title
// and main text.
func FetchPosting(ctx context.Context, rawURL string) (*Posting, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return nil, fmt.Errorf("invalid URL: %s", rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", DefaultUserAgent)

	client := &http.Client{Timeout: DefaultTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("HTTP request failed: %s returned status %d", rawURL, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	title, text, err := extractText(string(body))
	if err != nil {
		return nil, err
	}
	if text == "" {
		return nil, fmt.Errorf("no text content extracted from %s", rawURL)
	}

	return &Posting{URL: rawURL, Title: title, Text: text}, nil
}

// extractText parses HTML, removes noise elements, and returns the
// page title plus the main content text.
func extractText(html string) (title, text string, err error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	title = strings.TrimSpace(doc.Find("title").First().Text())

	doc.Find(noiseSelector).Remove()

	var main *goquery.Selection
	for _, selector := range contentSelectors {
		if selection := doc.Find(selector); selection.Length() > 0 {
			main = selection.First()
			break
		}
	}
	if main == nil {
		main = doc.Find("body")
	}

	return title, cleanWhitespace(main.Text()), nil
}

var (
	spaceRun = regexp.MustCompile(`[ \t]+`)
	blankRun = regexp.MustCompile(`\n{3,}`)
)

// cleanWhitespace collapses runs of spaces and blank lines.
func cleanWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(spaceRun.ReplaceAllString(line, " "))
	}
	joined := strings.Join(lines, "\n")
	joined = blankRun.ReplaceAllString(joined, "\n\n")
	return strings.TrimSpace(joined)
}
