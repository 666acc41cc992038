package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"playground_backend/internal/config"
	"playground_backend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const sampleAtomFeed = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom" xmlns:arxiv="http://arxiv.org/schemas/atom">
  <title>ArXiv Query Results</title>
  <entry>
    <id>http://arxiv.org/abs/2401.00001v1</id>
    <title> Prime Gaps and
  Their Distribution </title>
    <summary>
  A survey of recent results on gaps between consecutive primes.
</summary>
    <published>2024-01-02T10:00:00Z</published>
    <author><name>Ada Lovelace</name></author>
    <author><name>Carl Gauss</name></author>
    <link href="http://arxiv.org/abs/2401.00001v1" rel="alternate" type="text/html"/>
    <link title="pdf" href="http://arxiv.org/pdf/2401.00001v1" rel="related" type="application/pdf"/>
    <arxiv:primary_category term="math.HO"/>
  </entry>
  <entry>
    <id>http://arxiv.org/abs/2401.00002v1</id>
    <title>Why Planets Stay in Orbit</title>
    <summary>Gravity explained for a general audience.</summary>
    <published>2024-01-03T10:00:00Z</published>
    <author><name>Isaac Newton</name></author>
    <link href="http://arxiv.org/pdf/2401.00002v1" rel="related" type="application/pdf"/>
    <arxiv:primary_category term="physics.pop-ph"/>
  </entry>
</feed>`

func newArxivTestService(baseURL string) *ArxivService {
	logger.Log = zap.NewNop()
	return NewArxivService(&config.ArxivConfig{
		BaseURL:        baseURL,
		MaxResults:     10,
		TimeoutSeconds: 5,
		CacheTTLMin:    10,
	}, nil)
}

func TestArxivSearch_ParsesFeed(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("search_query")
		w.Header().Set("Content-Type", "application/atom+xml")
		w.Write([]byte(sampleAtomFeed))
	}))
	defer server.Close()

	svc := newArxivTestService(server.URL)
	papers := svc.Search(context.Background(), "prime gaps", "")

	assert.Equal(t, "all:prime gaps", gotQuery)
	require.Len(t, papers, 2)

	first := papers[0]
	assert.Equal(t, "http://arxiv.org/abs/2401.00001v1", first.ID)
	// 标题和摘要里的换行与缩进要被裁掉
	assert.Equal(t, "Prime Gaps and\n  Their Distribution", first.Title)
	assert.Equal(t, "A survey of recent results on gaps between consecutive primes.", first.Summary)
	assert.Equal(t, []string{"Ada Lovelace", "Carl Gauss"}, first.Authors)
	assert.Equal(t, "http://arxiv.org/pdf/2401.00001v1", first.PDFURL)
	assert.Equal(t, "math.HO", first.Category)

	// 第二条没有 title="pdf" 的链接，按 MIME 类型也能找到 PDF
	assert.Equal(t, "http://arxiv.org/pdf/2401.00002v1", papers[1].PDFURL)
}

func TestArxivSearch_CategoryPreset(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("search_query")
		w.Write([]byte(sampleAtomFeed))
	}))
	defer server.Close()

	svc := newArxivTestService(server.URL)
	svc.Search(context.Background(), "", "physics")

	assert.Equal(t, "cat:physics.pop-ph", gotQuery)
}

func TestArxivSearch_EmptyInputSkipsRequest(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	svc := newArxivTestService(server.URL)

	// 没有关键词也没有可识别的学科预设：不外呼，直接空结果
	papers := svc.Search(context.Background(), "", "astrology")

	assert.Empty(t, papers)
	assert.False(t, called)
}

func TestArxivSearch_DegradesToEmpty(t *testing.T) {
	t.Run("upstream 5xx", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		svc := newArxivTestService(server.URL)
		papers := svc.Search(context.Background(), "primes", "")

		assert.NotNil(t, papers)
		assert.Empty(t, papers)
	})

	t.Run("malformed feed", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<feed><entry>"))
		}))
		defer server.Close()

		svc := newArxivTestService(server.URL)
		papers := svc.Search(context.Background(), "primes", "")

		assert.Empty(t, papers)
	})

	t.Run("unreachable host", func(t *testing.T) {
		svc := newArxivTestService("http://127.0.0.1:1")
		papers := svc.Search(context.Background(), "primes", "")

		assert.Empty(t, papers)
	})
}

func TestParseAtomFeed_EmptyFeed(t *testing.T) {
	papers, err := parseAtomFeed([]byte(`<feed xmlns="http://www.w3.org/2005/Atom"></feed>`))

	require.NoError(t, err)
	assert.Empty(t, papers)
}
