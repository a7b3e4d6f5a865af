package ingestion

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const postingHTML = `<!DOCTYPE html>
<html>
<head><title>Platform Engineer - Acme Corp</title></head>
<body>
	<nav>Home | Jobs | About</nav>
	<header>Acme Careers</header>
	<main>
		<h1>Platform Engineer</h1>
		<p>We are looking for a    platform engineer.</p>


		<p>You will build internal tooling in Go.</p>
	</main>
	<div class="sidebar">Related jobs</div>
	<footer>Copyright Acme</footer>
	<script>trackPageView()</script>
</body>
</html>`

func TestFetchPosting(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		w.Write([]byte(postingHTML))
	}))
	defer srv.Close()

	posting, err := FetchPosting(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Equal(t, srv.URL, posting.URL)
	assert.Equal(t, "Platform Engineer - Acme Corp", posting.Title)

	assert.Contains(t, posting.Text, "Platform Engineer")
	assert.Contains(t, posting.Text, "looking for a platform engineer", "space runs must collapse")
	assert.Contains(t, posting.Text, "internal tooling in Go")

	// Noise elements are stripped.
	assert.NotContains(t, posting.Text, "Home | Jobs")
	assert.NotContains(t, posting.Text, "Related jobs")
	assert.NotContains(t, posting.Text, "Copyright Acme")
	assert.NotContains(t, posting.Text, "trackPageView")
}

func TestFetchPosting_BodyFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`<html><head><title>Job</title></head><body><p>Plain posting text.</p></body></html>`))
	}))
	defer srv.Close()

	posting, err := FetchPosting(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "Plain posting text.", posting.Text)
}

func TestFetchPosting_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := FetchPosting(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestFetchPosting_InvalidURL(t *testing.T) {
	tests := []string{
		"ftp://example.com/job",
		"not a url",
		"",
	}
	for _, rawURL := range tests {
		_, err := FetchPosting(context.Background(), rawURL)
		require.Error(t, err, rawURL)
		assert.Contains(t, err.Error(), "invalid URL")
	}
}

func TestFetchPosting_EmptyPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`<html><body><script>only();</script></body></html>`))
	}))
	defer srv.Close()

	_, err := FetchPosting(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no text content")
}

func TestCleanWhitespace(t *testing.T) {
	in := "a   b\t\tc\n\n\n\n\nd  \n"
	assert.Equal(t, "a b c\n\nd", cleanWhitespace(in))
}
