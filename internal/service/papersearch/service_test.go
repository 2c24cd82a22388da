package papersearch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newStubService(crossref, arxiv, openalex, semantic http.HandlerFunc) (*Service, func()) {
	crossrefSrv := httptest.NewServer(crossref)
	arxivSrv := httptest.NewServer(arxiv)
	openalexSrv := httptest.NewServer(openalex)
	semanticSrv := httptest.NewServer(semantic)

	s := NewService()
	s.CrossRefURL = crossrefSrv.URL
	s.ArxivURL = arxivSrv.URL
	s.OpenAlexURL = openalexSrv.URL
	s.SemanticScholarURL = semanticSrv.URL

	return s, func() {
		crossrefSrv.Close()
		arxivSrv.Close()
		openalexSrv.Close()
		semanticSrv.Close()
	}
}

func TestSearchMergesAndDedupes(t *testing.T) {
	crossref := func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message": {"items": [
			{"DOI": "10.1/abc", "title": ["Shared Paper"], "URL": "https://doi.org/10.1/abc"},
			{"DOI": "10.1/only-crossref", "title": ["CrossRef Paper"], "URL": "https://doi.org/10.1/only-crossref"}
		]}}`))
	}
	arxiv := func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<?xml version="1.0"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <entry>
    <id>http://arxiv.org/abs/1234.5678</id>
    <title>ArXiv Paper</title>
    <summary>An abstract.</summary>
    <author><name>A. Author</name></author>
    <published>2023-01-15T00:00:00Z</published>
  </entry>
</feed>`))
	}
	openalex := func(w http.ResponseWriter, r *http.Request) {
		// 与 crossref 重复的 DOI
		w.Write([]byte(`{"results": [
			{"id": "https://openalex.org/W1", "doi": "https://doi.org/10.1/abc", "title": "Shared Paper", "publication_year": 2022}
		]}`))
	}
	semantic := func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": []}`))
	}

	s, cleanup := newStubService(crossref, arxiv, openalex, semantic)
	defer cleanup()

	result, err := s.Search(context.Background(), SearchQuery{Query: "research methods"})
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}

	// crossref 2 + arxiv 1 + openalex 去重后 0
	if result.TotalResults != 3 {
		t.Fatalf("expected 3 deduped papers, got %d", result.TotalResults)
	}

	sources := map[string]int{}
	for _, p := range result.Papers {
		sources[p.Source]++
	}
	// 重复 DOI 的条目只保留一份，保留哪个来源取决于返回顺序
	if sources[SourceArxiv] != 1 || sources[SourceCrossRef]+sources[SourceOpenAlex] != 2 {
		t.Fatalf("unexpected source distribution: %v", sources)
	}
}

func TestSearchToleratesSourceFailure(t *testing.T) {
	failing := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}
	arxiv := func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<?xml version="1.0"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <entry>
    <id>http://arxiv.org/abs/1234.5678</id>
    <title>Surviving Paper</title>
    <summary>ok</summary>
    <author><name>A. Author</name></author>
    <published>2024-06-01T00:00:00Z</published>
  </entry>
</feed>`))
	}

	s, cleanup := newStubService(failing, arxiv, failing, failing)
	defer cleanup()

	result, err := s.Search(context.Background(), SearchQuery{Query: "anything"})
	if err != nil {
		t.Fatalf("expected per-source failures to be tolerated, got %v", err)
	}
	if result.TotalResults != 1 {
		t.Fatalf("expected the surviving source's paper, got %d", result.TotalResults)
	}
	if result.Papers[0].Title != "Surviving Paper" {
		t.Fatalf("unexpected paper: %+v", result.Papers[0])
	}
	if result.Papers[0].Year != 2024 {
		t.Fatalf("expected year parsed from published date, got %d", result.Papers[0].Year)
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	s := NewService()
	if _, err := s.Search(context.Background(), SearchQuery{Query: "   "}); err != ErrEmptyQuery {
		t.Fatalf("expected ErrEmptyQuery, got %v", err)
	}
}

func TestSearchRespectsMaxResults(t *testing.T) {
	crossref := func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message": {"items": [
			{"DOI": "10.1/a", "title": ["A"]},
			{"DOI": "10.1/b", "title": ["B"]},
			{"DOI": "10.1/c", "title": ["C"]}
		]}}`))
	}
	empty := func(w http.ResponseWriter, r *http.Request) { w.Write([]byte(`{}`)) }

	s, cleanup := newStubService(crossref, empty, empty, empty)
	defer cleanup()

	result, err := s.Search(context.Background(), SearchQuery{
		Query:      "q",
		MaxResults: 2,
		Sources:    []string{SourceCrossRef},
	})
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if result.TotalResults != 2 {
		t.Fatalf("expected results capped at 2, got %d", result.TotalResults)
	}
}
