package main

import (
	"context"
	"os"
	"time"

	"github.com/careerbuddy/compass/market/chat/chatapi"
	"github.com/careerbuddy/compass/market/chat/chatinfra"
	"github.com/careerbuddy/compass/market/chat/chatsrv"
	"github.com/careerbuddy/compass/market/insight"
	"github.com/careerbuddy/compass/market/insight/insightapi"
	"github.com/careerbuddy/compass/market/insight/insightsrv"
	"github.com/careerbuddy/compass/market/match/matchapi"
	"github.com/careerbuddy/compass/market/match/matchsrv"
	"github.com/careerbuddy/compass/market/news"
	"github.com/careerbuddy/compass/market/news/newsapi"
	"github.com/careerbuddy/compass/market/news/newsinfra"
	"github.com/careerbuddy/compass/market/news/newssrv"
	"github.com/careerbuddy/compass/market/posting"
	"github.com/careerbuddy/compass/market/posting/postingapi"
	"github.com/careerbuddy/compass/market/posting/postinginfra"
	"github.com/careerbuddy/compass/market/posting/postingsrv"
	"github.com/careerbuddy/compass/pkg/logx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

// Container holds all application dependencies
type Container struct {
	// Infrastructure
	Redis       *redis.Client
	JobProvider *postinginfra.AdzunaClient

	// Services
	SearchService         *postingsrv.SearchService
	RecommendationService *matchsrv.RecommendationService
	InsightService        *insightsrv.InsightService
	ChatService           *chatsrv.ChatService
	NewsService           *newssrv.NewsService

	// API Handlers
	PostingHandlers *postingapi.Handlers
	MatchHandlers   *matchapi.Handlers
	InsightHandlers *insightapi.Handlers
	ChatHandlers    *chatapi.Handlers
	NewsHandlers    *newsapi.Handlers
}

// NewContainer initializes the dependency injection container
func NewContainer() *Container {
	if err := godotenv.Load(); err != nil {
		logx.Debugf("No .env file loaded: %v", err)
	}

	c := &Container{}
	c.initInfrastructure()
	c.initServices()
	return c
}

func (c *Container) initInfrastructure() {
	// 1. Redis (optional) — provider page cache only
	if redisAddr := os.Getenv("REDIS_ADDR"); redisAddr != "" {
		c.Redis = redis.NewClient(&redis.Options{
			Addr:     redisAddr,
			Password: os.Getenv("REDIS_PASS"),
			DB:       0,
		})
		if _, err := c.Redis.Ping(context.Background()).Result(); err != nil {
			logx.Warnf("Failed to connect to Redis, page cache disabled: %v", err)
			c.Redis = nil
		}
	}

	// 2. Job provider
	var cache posting.PageCache
	if c.Redis != nil {
		cache = postinginfra.NewRedisPageCache(c.Redis, "jobs")
	}

	enricher := posting.NewEnricher(posting.DefaultSkillVocabulary())
	c.JobProvider = postinginfra.NewAdzunaClient(postinginfra.AdzunaConfig{
		AppID:   os.Getenv("ADZUNA_APP_ID"),
		AppKey:  os.Getenv("ADZUNA_APP_KEY"),
		Timeout: providerTimeout(),
	}, enricher, cache)

	if !c.JobProvider.Configured() {
		logx.Warn("Adzuna credentials not set, job search serves sample data only")
	}
}

func (c *Container) initServices() {
	// --- Domain Services ---
	c.SearchService = postingsrv.NewSearchService(c.JobProvider, posting.SampleCatalog())
	c.RecommendationService = matchsrv.NewRecommendationService(c.SearchService)
	c.InsightService = insightsrv.NewInsightService(insight.DefaultTables())

	openaiKey := os.Getenv("OPENAI_API_KEY")
	if openaiKey == "" {
		logx.Warn("OPENAI_API_KEY is not set, /chat will fail upstream")
	}
	c.ChatService = chatsrv.NewChatService(chatinfra.NewOpenAIGenerator(openaiKey))

	c.NewsService = newssrv.NewNewsService(
		newsinfra.NewNewsAPIClient(os.Getenv("NEWS_API_KEY")),
		news.FallbackHeadlines(),
	)

	// --- Handlers ---
	c.PostingHandlers = postingapi.NewHandlers(c.SearchService)
	c.MatchHandlers = matchapi.NewHandlers(c.RecommendationService)
	c.InsightHandlers = insightapi.NewHandlers(c.InsightService)
	c.ChatHandlers = chatapi.NewHandlers(c.ChatService)
	c.NewsHandlers = newsapi.NewHandlers(c.NewsService)
}

// Close releases infrastructure connections
func (c *Container) Close() {
	if c.Redis != nil {
		c.Redis.Close()
	}
}

func providerTimeout() time.Duration {
	raw := os.Getenv("PROVIDER_TIMEOUT")
	if raw == "" {
		return 10 * time.Second
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		logx.Warnf("Invalid PROVIDER_TIMEOUT %q, using default: %v", raw, err)
		return 10 * time.Second
	}
	return d
}
