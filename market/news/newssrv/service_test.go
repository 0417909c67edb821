package newssrv

import (
	"context"
	"errors"
	"testing"

	"github.com/careerbuddy/compass/market/news"
)

type fakeProvider struct {
	articles   []news.Article
	err        error
	configured bool
	lastQuery  string
	lastPage   int
}

func (p *fakeProvider) Fetch(ctx context.Context, query string, page int) ([]news.Article, error) {
	p.lastQuery = query
	p.lastPage = page
	return p.articles, p.err
}

func (p *fakeProvider) Configured() bool { return p.configured }

func article(title, image string) news.Article {
	return news.Article{Title: title, ImageURL: image, URL: "https://example.com/a", Source: "Test"}
}

func TestHeadlines_UnconfiguredProviderServesFallback(t *testing.T) {
	fallback := news.FallbackHeadlines()
	svc := NewNewsService(&fakeProvider{configured: false}, fallback)

	got := svc.Headlines(context.Background(), "", 1)
	if len(got) != len(fallback) {
		t.Fatalf("got %d articles, want %d", len(got), len(fallback))
	}
}

func TestHeadlines_ProviderErrorServesFallback(t *testing.T) {
	provider := &fakeProvider{configured: true, err: errors.New("upstream 502")}
	svc := NewNewsService(provider, news.FallbackHeadlines())

	got := svc.Headlines(context.Background(), "golang jobs", 2)
	if len(got) != 3 {
		t.Fatalf("got %d articles, want fallback of 3", len(got))
	}
	if provider.lastQuery != "golang jobs" || provider.lastPage != 2 {
		t.Errorf("provider called with (%q, %d)", provider.lastQuery, provider.lastPage)
	}
}

func TestHeadlines_DefaultsCategoryAndPage(t *testing.T) {
	provider := &fakeProvider{configured: true, articles: []news.Article{
		article("one", "https://img/1.jpg"),
	}}
	svc := NewNewsService(provider, nil)

	svc.Headlines(context.Background(), "", 0)
	if provider.lastQuery != "technology careers" {
		t.Errorf("query = %q", provider.lastQuery)
	}
	if provider.lastPage != 1 {
		t.Errorf("page = %d, want 1", provider.lastPage)
	}
}

func TestHeadlines_DropsImagelessArticles(t *testing.T) {
	provider := &fakeProvider{configured: true, articles: []news.Article{
		article("with image", "https://img/1.jpg"),
		article("no image", ""),
		article("bad scheme", "ftp://img/2.jpg"),
	}}
	svc := NewNewsService(provider, nil)

	got := svc.Headlines(context.Background(), "tech", 1)
	if len(got) != 1 {
		t.Fatalf("got %d articles, want 1", len(got))
	}
	if got[0].Title != "with image" {
		t.Errorf("kept %q", got[0].Title)
	}
}

func TestHeadlines_DedupesByTitle(t *testing.T) {
	provider := &fakeProvider{configured: true, articles: []news.Article{
		article("Breaking News", "https://img/1.jpg"),
		article("breaking news", "https://img/2.jpg"),
		article("Other Story", "https://img/3.jpg"),
	}}
	svc := NewNewsService(provider, nil)

	got := svc.Headlines(context.Background(), "tech", 1)
	if len(got) != 2 {
		t.Fatalf("got %d articles, want 2", len(got))
	}
	if got[0].ImageURL != "https://img/1.jpg" {
		t.Errorf("first occurrence should win, got %q", got[0].ImageURL)
	}
}

func TestHeadlines_EmptyAfterCleaningServesFallback(t *testing.T) {
	provider := &fakeProvider{configured: true, articles: []news.Article{
		article("no image", ""),
	}}
	svc := NewNewsService(provider, news.FallbackHeadlines())

	got := svc.Headlines(context.Background(), "tech", 1)
	if len(got) != 3 {
		t.Fatalf("got %d articles, want fallback of 3", len(got))
	}
}
