package medicine

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// NoSideEffectsFound is the placeholder entry returned when openFDA has no
// data for a medicine or the lookup fails. Side-effect lookup is best-effort:
// callers never see an error from this path.
const NoSideEffectsFound = "No side effects found."

const sideEffectsCachePrefix = "scan2heal:side-effects:"

type fdaLabelResponse struct {
	Results []struct {
		AdverseReactions []string `json:"adverse_reactions"`
		Warnings         []string `json:"warnings"`
	} `json:"results"`
}

// SideEffectsClient queries the openFDA drug-label API for adverse reactions
// by generic name. Responses are optionally cached in Redis; a nil redis
// client disables caching.
type SideEffectsClient struct {
	httpClient *resty.Client
	cache      *redis.Client
	cacheTTL   time.Duration
	logger     *zap.Logger
}

func NewSideEffectsClient(baseURL string, timeout time.Duration, retryCount int, cache *redis.Client, cacheTTL time.Duration, logger *zap.Logger) *SideEffectsClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(retryCount).
		SetHeader("Accept", "application/json")

	return &SideEffectsClient{
		httpClient: client,
		cache:      cache,
		cacheTTL:   cacheTTL,
		logger:     logger,
	}
}

// Lookup returns the side-effect texts for a medicine. Adverse reactions are
// preferred, warnings are the fallback; any failure degrades to the
// placeholder list.
func (c *SideEffectsClient) Lookup(ctx context.Context, medicineName string) []string {
	if cached := c.fromCache(ctx, medicineName); cached != nil {
		return cached
	}

	var response fdaLabelResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("search", "openfda.generic_name:"+medicineName).
		SetQueryParam("limit", "1").
		SetResult(&response).
		Get("/drug/label.json")

	if err != nil {
		c.logger.Warn("openFDA lookup failed",
			zap.String("medicine", medicineName),
			zap.Error(err),
		)
		return []string{NoSideEffectsFound}
	}
	if resp.IsError() || len(response.Results) == 0 {
		return []string{NoSideEffectsFound}
	}

	effects := response.Results[0].AdverseReactions
	if len(effects) == 0 {
		effects = response.Results[0].Warnings
	}
	if len(effects) == 0 {
		effects = []string{NoSideEffectsFound}
	}

	c.toCache(ctx, medicineName, effects)
	return effects
}

func (c *SideEffectsClient) fromCache(ctx context.Context, medicineName string) []string {
	if c.cache == nil {
		return nil
	}
	data, err := c.cache.Get(ctx, sideEffectsCachePrefix+medicineName).Bytes()
	if err != nil {
		return nil
	}
	var effects []string
	if err := json.Unmarshal(data, &effects); err != nil {
		return nil
	}
	return effects
}

func (c *SideEffectsClient) toCache(ctx context.Context, medicineName string, effects []string) {
	if c.cache == nil {
		return
	}
	data, err := json.Marshal(effects)
	if err != nil {
		return
	}
	if err := c.cache.Set(ctx, sideEffectsCachePrefix+medicineName, data, c.cacheTTL).Err(); err != nil {
		c.logger.Warn("Failed to cache side effects",
			zap.String("medicine", medicineName),
			zap.Error(err),
		)
	}
}
