package papersearch

// Paper 文献检索结果条目
type Paper struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Authors  []string `json:"authors"`
	Abstract string   `json:"abstract,omitempty"`
	Year     int      `json:"year,omitempty"`
	DOI      string   `json:"doi,omitempty"`
	URL      string   `json:"url,omitempty"`
	Source   string   `json:"source"` // crossref, arxiv, openalex, semantic_scholar
}

// SearchQuery 检索请求
type SearchQuery struct {
	Query      string   `json:"query"`
	MaxResults int      `json:"maxResults,omitempty"`
	Sources    []string `json:"sources,omitempty"`
}

// SearchResult 检索应答
type SearchResult struct {
	Papers       []Paper `json:"papers"`
	TotalResults int     `json:"totalResults"`
	Query        string  `json:"query"`
	Timestamp    int64   `json:"timestamp"`
}

// Source names
const (
	SourceCrossRef        = "crossref"
	SourceArxiv           = "arxiv"
	SourceOpenAlex        = "openalex"
	SourceSemanticScholar = "semantic_scholar"
)

// DefaultSources 未指定时查询的全部来源
var DefaultSources = []string{SourceCrossRef, SourceArxiv, SourceOpenAlex, SourceSemanticScholar}
