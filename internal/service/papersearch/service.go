// Package papersearch 服务端代理的多源文献检索
// 统一在服务端发起外部API调用，前端不直连（绕开CORS并集中限流）
package papersearch

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"
)

// Service 文献检索服务
type Service struct {
	client *http.Client

	// 外部来源基础地址，测试时可替换
	CrossRefURL        string
	ArxivURL           string
	OpenAlexURL        string
	SemanticScholarURL string
}

// NewService 创建检索服务
func NewService() *Service {
	return &Service{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		CrossRefURL:        "https://api.crossref.org",
		ArxivURL:           "https://export.arxiv.org",
		OpenAlexURL:        "https://api.openalex.org",
		SemanticScholarURL: "https://api.semanticscholar.org",
	}
}

// ErrEmptyQuery 检索词为空
var ErrEmptyQuery = fmt.Errorf("query is required")

// Search 并发检索各来源并合并去重
// 任一来源失败只记录日志并跳过，不影响其余来源
func (s *Service) Search(ctx context.Context, query SearchQuery) (*SearchResult, error) {
	if strings.TrimSpace(query.Query) == "" {
		return nil, ErrEmptyQuery
	}

	maxResults := query.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}
	sources := query.Sources
	if len(sources) == 0 {
		sources = DefaultSources
	}

	type fetcher func(ctx context.Context, query string, limit int) ([]Paper, error)
	fetchers := map[string]fetcher{
		SourceCrossRef:        s.searchCrossRef,
		SourceArxiv:           s.searchArxiv,
		SourceOpenAlex:        s.searchOpenAlex,
		SourceSemanticScholar: s.searchSemanticScholar,
	}

	var (
		mutex   sync.Mutex
		results []Paper
	)
	g, gctx := errgroup.WithContext(ctx)

	for _, source := range sources {
		fetch, ok := fetchers[source]
		if !ok {
			klog.V(6).Infof("跳过未知检索来源: %s", source)
			continue
		}
		name := source
		g.Go(func() error {
			papers, err := fetch(gctx, query.Query, maxResults)
			if err != nil {
				// 单个来源失败不终止整体检索
				klog.Errorf("检索来源失败: source=%s, error=%v", name, err)
				return nil
			}
			klog.V(6).Infof("检索来源返回: source=%s, papers=%d", name, len(papers))
			mutex.Lock()
			results = append(results, papers...)
			mutex.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := dedupe(results)
	if len(merged) > maxResults {
		merged = merged[:maxResults]
	}

	return &SearchResult{
		Papers:       merged,
		TotalResults: len(merged),
		Query:        query.Query,
		Timestamp:    time.Now().UnixMilli(),
	}, nil
}

// dedupe 按 DOI 优先、标题兜底去重，保持输入顺序
func dedupe(papers []Paper) []Paper {
	seen := make(map[string]bool, len(papers))
	out := make([]Paper, 0, len(papers))
	for _, p := range papers {
		key := strings.ToLower(p.DOI)
		if key == "" {
			key = "title:" + normalizeTitle(p.Title)
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, p)
	}
	return out
}

func normalizeTitle(title string) string {
	return strings.Join(strings.Fields(strings.ToLower(title)), " ")
}
