package cache

import (
	"context"
	"time"

	"bulletin-board-be/pkg/llm"

	gocache "github.com/patrickmn/go-cache"
)

// CachedProvider memoises completions by model and prompt. Failures are not cached.
type CachedProvider struct {
	inner llm.LLMProvider
	cache *gocache.Cache
}

var _ llm.LLMProvider = &CachedProvider{}

// NewCachedProvider wraps inner when ttl is positive and returns inner unchanged otherwise.
func NewCachedProvider(inner llm.LLMProvider, ttl time.Duration) llm.LLMProvider {
	if ttl <= 0 {
		return inner
	}
	return &CachedProvider{
		inner: inner,
		cache: gocache.New(ttl, 2*ttl),
	}
}

func cacheKey(prompt string, options *llm.Options) string {
	return options.Model + "\x00" + prompt
}

func (p *CachedProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	key := cacheKey(prompt, llm.ApplyOptions(opts...))
	if x, found := p.cache.Get(key); found {
		return x.(string), nil
	}

	out, err := p.inner.Generate(ctx, prompt, opts...)
	if err != nil {
		return "", err
	}
	p.cache.Set(key, out, gocache.DefaultExpiration)
	return out, nil
}
