package cryptofolio

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/PaesslerAG/jsonpath"
	gocache "github.com/patrickmn/go-cache"
)

// This file contains the adapter for the CoinGecko API, the quote and search
// source of the tracker.

const (
	// DefaultBaseURL is the public CoinGecko v3 endpoint.
	DefaultBaseURL = "https://api.coingecko.com/api/v3"

	coingeckoKeyEnv    = "COINGECKO_API_KEY"
	coingeckoKeyHeader = "x-cg-demo-api-key"

	// searchResultLimit caps the number of search results, whatever the
	// service returns beyond it is dropped without re-ranking.
	searchResultLimit = 5

	searchCacheTTL = 5 * time.Minute
)

// CoinSummary is one search result, as returned by the search source.
type CoinSummary struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// MarketOverview is a snapshot of the global crypto market.
type MarketOverview struct {
	TotalMarketCap         Money   `json:"total_market_cap_usd"`
	MarketCapChange24h     Percent `json:"market_cap_change_percentage_24h_usd"`
	BTCDominance           Percent `json:"btc_dominance"`
	ActiveCryptocurrencies int     `json:"active_cryptocurrencies"`
	Markets                int     `json:"markets"`
}

// CoinGecko is the price and search source.
//
// Search responses are cached for a few minutes because the add flow queries
// the same term repeatedly. Price quotes are deliberately never cached: a
// valuation issues one live lookup per holding.
type CoinGecko struct {
	baseURL  string
	client   *http.Client
	searches *gocache.Cache
}

// NewCoinGecko creates an adapter for the service at baseURL (DefaultBaseURL
// for the real one). The API key, if any, is read from COINGECKO_API_KEY.
func NewCoinGecko(baseURL string) *CoinGecko {
	client := &http.Client{
		Transport: &apiKeyTransport{
			base:   http.DefaultTransport,
			header: coingeckoKeyHeader,
			key:    os.Getenv(coingeckoKeyEnv),
		},
	}
	return &CoinGecko{
		baseURL:  baseURL,
		client:   client,
		searches: gocache.New(searchCacheTTL, 2*searchCacheTTL),
	}
}

// Quote fetches the current USD quote for a coin id. Network failure, a
// non-200 status, a parse error or an unknown id all come back as an error;
// the caller decides whether that is fatal (it is not during a valuation).
func (g *CoinGecko) Quote(ctx context.Context, coinID string) (Quote, error) {
	addr := fmt.Sprintf("%s/simple/price?ids=%s&vs_currencies=usd&include_24hr_change=true&include_market_cap=true",
		g.baseURL, url.QueryEscape(coinID))

	// that's the payload, keyed by coin id
	content := make(map[string]struct {
		USD       float64 `json:"usd"`
		Change24h float64 `json:"usd_24h_change"`
		MarketCap float64 `json:"usd_market_cap"`
	})
	if err := jwget(ctx, g.client, addr, &content); err != nil {
		return Quote{}, fmt.Errorf("cannot fetch quote for %q: %w", coinID, err)
	}

	info, ok := content[coinID]
	if !ok {
		return Quote{}, fmt.Errorf("no quote for %q: unknown coin id", coinID)
	}
	return Quote{
		USD:       M(info.USD),
		Change24h: Percent(info.Change24h),
		MarketCap: M(info.MarketCap),
	}, nil
}

// QuoteFunc adapts the adapter to the valuation engine's lookup contract:
// a failed lookup is logged and reported absent, so the engine skips the
// holding instead of valuing it at zero.
func (g *CoinGecko) QuoteFunc(ctx context.Context) QuoteFunc {
	return func(coinID string) (Quote, bool) {
		quote, err := g.Quote(ctx, coinID)
		if err != nil {
			log.Printf("skipping %s: %v", coinID, err)
			return Quote{}, false
		}
		return quote, true
	}
}

// Search looks a coin up by name or symbol and returns at most five results,
// in the order the service returned them.
func (g *CoinGecko) Search(ctx context.Context, query string) ([]CoinSummary, error) {
	if cached, ok := g.searches.Get(query); ok {
		return cached.([]CoinSummary), nil
	}

	addr := fmt.Sprintf("%s/search?query=%s", g.baseURL, url.QueryEscape(query))

	// that's the payload
	var content struct {
		Coins []CoinSummary `json:"coins"`
	}
	if err := jwget(ctx, g.client, addr, &content); err != nil {
		return nil, fmt.Errorf("cannot search for %q: %w", query, err)
	}

	results := content.Coins
	if len(results) > searchResultLimit {
		results = results[:searchResultLimit]
	}
	g.searches.Set(query, results, gocache.DefaultExpiration)
	return results, nil
}

// GlobalMarket fetches the global market snapshot from the /global endpoint.
func (g *CoinGecko) GlobalMarket(ctx context.Context) (MarketOverview, error) {
	addr := g.baseURL + "/global"

	var jobj any
	if err := jwget(ctx, g.client, addr, &jobj); err != nil {
		return MarketOverview{}, fmt.Errorf("cannot fetch global market data: %w", err)
	}

	mcap, err := jfloat(jobj, "$.data.total_market_cap.usd")
	if err != nil {
		return MarketOverview{}, err
	}
	capChange, err := jfloat(jobj, "$.data.market_cap_change_percentage_24h_usd")
	if err != nil {
		return MarketOverview{}, err
	}
	dominance, err := jfloat(jobj, "$.data.market_cap_percentage.btc")
	if err != nil {
		return MarketOverview{}, err
	}
	coins, err := jfloat(jobj, "$.data.active_cryptocurrencies")
	if err != nil {
		return MarketOverview{}, err
	}
	markets, err := jfloat(jobj, "$.data.markets")
	if err != nil {
		return MarketOverview{}, err
	}

	return MarketOverview{
		TotalMarketCap:         M(mcap),
		MarketCapChange24h:     Percent(capChange),
		BTCDominance:           Percent(dominance),
		ActiveCryptocurrencies: int(coins),
		Markets:                int(markets),
	}, nil
}

// jfloat extracts a float value from a decoded JSON payload.
func jfloat(jobj any, path string) (float64, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0, fmt.Errorf("error parsing global market data: %q %w", path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1
	// answer, or a single answer: by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return 0, fmt.Errorf("error parsing global market data: %q is not a number: %v", path, jval)
	}
	return val, nil
}
