package papersearch

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

func (s *Service) fetch(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "ThesisAI/1.0 (paper search)")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// searchCrossRef 查询 CrossRef works API
func (s *Service) searchCrossRef(ctx context.Context, query string, limit int) ([]Paper, error) {
	u := fmt.Sprintf("%s/works?query=%s&rows=%d", s.CrossRefURL, url.QueryEscape(query), limit)
	body, err := s.fetch(ctx, u)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Message struct {
			Items []struct {
				DOI    string   `json:"DOI"`
				Title  []string `json:"title"`
				URL    string   `json:"URL"`
				Author []struct {
					Given  string `json:"given"`
					Family string `json:"family"`
				} `json:"author"`
				Published struct {
					DateParts [][]int `json:"date-parts"`
				} `json:"published"`
			} `json:"items"`
		} `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse crossref response: %w", err)
	}

	papers := make([]Paper, 0, len(payload.Message.Items))
	for _, item := range payload.Message.Items {
		if len(item.Title) == 0 {
			continue
		}
		p := Paper{
			ID:     item.DOI,
			Title:  item.Title[0],
			DOI:    item.DOI,
			URL:    item.URL,
			Source: SourceCrossRef,
		}
		for _, a := range item.Author {
			p.Authors = append(p.Authors, strings.TrimSpace(a.Given+" "+a.Family))
		}
		if len(item.Published.DateParts) > 0 && len(item.Published.DateParts[0]) > 0 {
			p.Year = item.Published.DateParts[0][0]
		}
		papers = append(papers, p)
	}
	return papers, nil
}

// searchArxiv 查询 arXiv Atom API
func (s *Service) searchArxiv(ctx context.Context, query string, limit int) ([]Paper, error) {
	u := fmt.Sprintf("%s/api/query?search_query=all:%s&max_results=%d",
		s.ArxivURL, url.QueryEscape(query), limit)
	body, err := s.fetch(ctx, u)
	if err != nil {
		return nil, err
	}

	var feed struct {
		Entries []struct {
			ID      string `xml:"id"`
			Title   string `xml:"title"`
			Summary string `xml:"summary"`
			Authors []struct {
				Name string `xml:"name"`
			} `xml:"author"`
			Published string `xml:"published"`
		} `xml:"entry"`
	}
	if err := xml.Unmarshal(body, &feed); err != nil {
		return nil, fmt.Errorf("failed to parse arxiv response: %w", err)
	}

	papers := make([]Paper, 0, len(feed.Entries))
	for _, e := range feed.Entries {
		p := Paper{
			ID:       e.ID,
			Title:    strings.Join(strings.Fields(e.Title), " "),
			Abstract: strings.TrimSpace(e.Summary),
			URL:      e.ID,
			Source:   SourceArxiv,
		}
		for _, a := range e.Authors {
			p.Authors = append(p.Authors, a.Name)
		}
		if len(e.Published) >= 4 {
			fmt.Sscanf(e.Published[:4], "%d", &p.Year)
		}
		papers = append(papers, p)
	}
	return papers, nil
}

// searchOpenAlex 查询 OpenAlex works API
func (s *Service) searchOpenAlex(ctx context.Context, query string, limit int) ([]Paper, error) {
	u := fmt.Sprintf("%s/works?search=%s&per-page=%d", s.OpenAlexURL, url.QueryEscape(query), limit)
	body, err := s.fetch(ctx, u)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Results []struct {
			ID              string `json:"id"`
			DOI             string `json:"doi"`
			Title           string `json:"title"`
			PublicationYear int    `json:"publication_year"`
			Authorships     []struct {
				Author struct {
					DisplayName string `json:"display_name"`
				} `json:"author"`
			} `json:"authorships"`
		} `json:"results"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse openalex response: %w", err)
	}

	papers := make([]Paper, 0, len(payload.Results))
	for _, item := range payload.Results {
		if item.Title == "" {
			continue
		}
		p := Paper{
			ID:     item.ID,
			Title:  item.Title,
			DOI:    strings.TrimPrefix(item.DOI, "https://doi.org/"),
			URL:    item.ID,
			Year:   item.PublicationYear,
			Source: SourceOpenAlex,
		}
		for _, a := range item.Authorships {
			p.Authors = append(p.Authors, a.Author.DisplayName)
		}
		papers = append(papers, p)
	}
	return papers, nil
}

// searchSemanticScholar 查询 Semantic Scholar graph API
func (s *Service) searchSemanticScholar(ctx context.Context, query string, limit int) ([]Paper, error) {
	u := fmt.Sprintf("%s/graph/v1/paper/search?query=%s&limit=%d&fields=title,abstract,year,externalIds,url,authors",
		s.SemanticScholarURL, url.QueryEscape(query), limit)
	body, err := s.fetch(ctx, u)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Data []struct {
			PaperID     string `json:"paperId"`
			Title       string `json:"title"`
			Abstract    string `json:"abstract"`
			Year        int    `json:"year"`
			URL         string `json:"url"`
			ExternalIDs struct {
				DOI string `json:"DOI"`
			} `json:"externalIds"`
			Authors []struct {
				Name string `json:"name"`
			} `json:"authors"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse semantic scholar response: %w", err)
	}

	papers := make([]Paper, 0, len(payload.Data))
	for _, item := range payload.Data {
		if item.Title == "" {
			continue
		}
		p := Paper{
			ID:       item.PaperID,
			Title:    item.Title,
			Abstract: item.Abstract,
			Year:     item.Year,
			DOI:      item.ExternalIDs.DOI,
			URL:      item.URL,
			Source:   SourceSemanticScholar,
		}
		for _, a := range item.Authors {
			p.Authors = append(p.Authors, a.Name)
		}
		papers = append(papers, p)
	}
	return papers, nil
}
