package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLFetchesHTML(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body>Job posting</body></html>"))
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Contains(t, result.HTML, "Job posting")
	assert.Contains(t, result.ContentType, "text/html")
}

func TestURLNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.Error(t, err)
	require.NotNil(t, result)
	assert.Equal(t, http.StatusNotFound, result.StatusCode)

	var fetchErr *Error
	require.True(t, errors.As(err, &fetchErr))
	assert.Contains(t, fetchErr.Message, "404")
}

func TestURLInvalidURL(t *testing.T) {
	for _, bad := range []string{"", "not a url", "/relative/path"} {
		_, err := URL(context.Background(), bad, nil)
		assert.Error(t, err, "URL %q should be rejected", bad)
	}
}

func TestExtractJobTextPrefersPostingSelectors(t *testing.T) {
	html := `<html><body>
		<nav>Site navigation</nav>
		<div class="job-description">Senior Go developer wanted.</div>
		<footer>Copyright</footer>
	</body></html>`

	text, err := ExtractJobText(html)
	require.NoError(t, err)
	assert.Equal(t, "Senior Go developer wanted.", text)
}

func TestExtractJobTextStripsNoise(t *testing.T) {
	html := `<html><body>
		<script>alert("x")</script>
		<div class="sidebar">Trending jobs</div>
		<p>We need a backend engineer.</p>
	</body></html>`

	text, err := ExtractJobText(html)
	require.NoError(t, err)
	assert.Contains(t, text, "We need a backend engineer.")
	assert.NotContains(t, text, "alert")
	assert.NotContains(t, text, "Trending jobs")
}

func TestExtractJobTextFallsBackToBody(t *testing.T) {
	html := `<html><body><p>Plain page without posting markup.</p></body></html>`

	text, err := ExtractJobText(html)
	require.NoError(t, err)
	assert.Equal(t, "Plain page without posting markup.", text)
}

func TestCollapseWhitespace(t *testing.T) {
	in := "  line one  \n\n\n   line two\n   \n"
	assert.Equal(t, "line one\nline two", collapseWhitespace(in))
}

func TestShouldUseBrowser(t *testing.T) {
	assert.True(t, ShouldUseBrowser("tiny"))
	assert.False(t, ShouldUseBrowser(strings.Repeat("a", MinContentLength)))
	assert.True(t, ShouldUseBrowser(strings.Repeat(" ", MinContentLength*2)))
}
