package service

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"playground_backend/internal/config"
	"playground_backend/pkg/logger"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// ArxivPaper 对外返回的论文条目
type ArxivPaper struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Summary   string   `json:"summary"`
	Authors   []string `json:"authors"`
	Published string   `json:"published"`
	Link      string   `json:"link"`
	PDFURL    string   `json:"pdfUrl"`
	Category  string   `json:"category"`
}

// arXiv Atom feed 的解析结构，只取需要的字段
type atomFeed struct {
	XMLName xml.Name    `xml:"feed"`
	Entries []atomEntry `xml:"entry"`
}

type atomEntry struct {
	ID        string       `xml:"id"`
	Title     string       `xml:"title"`
	Summary   string       `xml:"summary"`
	Published string       `xml:"published"`
	Authors   []atomAuthor `xml:"author"`
	Links     []atomLink   `xml:"link"`
	Category  atomCategory `xml:"primary_category"`
}

type atomAuthor struct {
	Name string `xml:"name"`
}

type atomLink struct {
	Href  string `xml:"href,attr"`
	Title string `xml:"title,attr"`
	Type  string `xml:"type,attr"`
}

type atomCategory struct {
	Term string `xml:"term,attr"`
}

// ArxivCategories 研究中心页面提供的学科预设
var ArxivCategories = map[string]string{
	"math":    "math.HO",
	"physics": "physics.pop-ph",
	"biology": "q-bio.PE",
	"cs":      "cs.CY",
}

// ArxivService 调 arXiv 公开 Atom API 做论文检索。
// 外部源不稳定：失败降级为空列表，结果短暂缓存在 Redis 减少外呼。
type ArxivService struct {
	Cfg    *config.ArxivConfig
	Client *http.Client
	Redis  *redis.Client
}

func NewArxivService(cfg *config.ArxivConfig, rdb *redis.Client) *ArxivService {
	return &ArxivService{
		Cfg: cfg,
		Client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
		Redis: rdb,
	}
}

// Search 按关键词或学科预设检索论文。任何失败都返回空列表加日志，
// 不把外部源的故障暴露给页面。
func (s *ArxivService) Search(ctx context.Context, term, category string) []ArxivPaper {
	query := s.buildQuery(term, category)
	if query == "" {
		return []ArxivPaper{}
	}

	cacheKey := "arxiv:" + query
	if cached := s.fromCache(ctx, cacheKey); cached != nil {
		return cached
	}

	reqURL := fmt.Sprintf("%s?search_query=%s&start=0&max_results=%d&sortBy=submittedDate&sortOrder=descending",
		s.Cfg.BaseURL, url.QueryEscape(query), s.Cfg.MaxResults)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		logger.Log.Warn("arxiv: request build failed", zap.Error(err))
		return []ArxivPaper{}
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		logger.Log.Warn("arxiv: request failed", zap.String("query", query), zap.Error(err))
		return []ArxivPaper{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Log.Warn("arxiv: unexpected status", zap.Int("status", resp.StatusCode))
		return []ArxivPaper{}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Log.Warn("arxiv: read body failed", zap.Error(err))
		return []ArxivPaper{}
	}

	papers, err := parseAtomFeed(body)
	if err != nil {
		logger.Log.Warn("arxiv: feed parse failed", zap.Error(err))
		return []ArxivPaper{}
	}

	s.toCache(ctx, cacheKey, papers)
	return papers
}

func (s *ArxivService) buildQuery(term, category string) string {
	term = strings.TrimSpace(term)
	if term != "" {
		return "all:" + term
	}
	if cat, ok := ArxivCategories[category]; ok {
		return "cat:" + cat
	}
	return ""
}

func parseAtomFeed(data []byte) ([]ArxivPaper, error) {
	var feed atomFeed
	if err := xml.Unmarshal(data, &feed); err != nil {
		return nil, err
	}

	papers := make([]ArxivPaper, 0, len(feed.Entries))
	for _, entry := range feed.Entries {
		paper := ArxivPaper{
			ID:        entry.ID,
			Title:     strings.TrimSpace(entry.Title),
			Summary:   strings.TrimSpace(entry.Summary),
			Published: entry.Published,
			Link:      entry.ID,
			Category:  entry.Category.Term,
		}
		for _, author := range entry.Authors {
			paper.Authors = append(paper.Authors, author.Name)
		}
		for _, link := range entry.Links {
			if link.Title == "pdf" || link.Type == "application/pdf" {
				paper.PDFURL = link.Href
			}
		}
		papers = append(papers, paper)
	}
	return papers, nil
}

func (s *ArxivService) fromCache(ctx context.Context, key string) []ArxivPaper {
	if s.Redis == nil {
		return nil
	}
	data, err := s.Redis.Get(ctx, key).Bytes()
	if err != nil {
		return nil
	}
	var papers []ArxivPaper
	if err := json.Unmarshal(data, &papers); err != nil {
		return nil
	}
	return papers
}

func (s *ArxivService) toCache(ctx context.Context, key string, papers []ArxivPaper) {
	if s.Redis == nil {
		return
	}
	data, err := json.Marshal(papers)
	if err != nil {
		return
	}
	ttl := time.Duration(s.Cfg.CacheTTLMin) * time.Minute
	if err := s.Redis.Set(ctx, key, data, ttl).Err(); err != nil {
		logger.Log.Debug("arxiv: cache write failed", zap.Error(err))
	}
}
