package cryptofolio

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newQuoteServer(t *testing.T) (*httptest.Server, *int) {
	t.Helper()
	hits := new(int)

	mux := http.NewServeMux()
	mux.HandleFunc("/simple/price", func(w http.ResponseWriter, r *http.Request) {
		*hits++
		switch r.URL.Query().Get("ids") {
		case "bitcoin":
			fmt.Fprint(w, `{"bitcoin": {"usd": 62000.5, "usd_24h_change": -1.25, "usd_market_cap": 1200000000000}}`)
		case "flaky":
			http.Error(w, "upstream down", http.StatusBadGateway)
		default:
			fmt.Fprint(w, `{}`)
		}
	})
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		*hits++
		fmt.Fprint(w, `{"coins": [
			{"id": "bitcoin", "name": "Bitcoin", "symbol": "BTC"},
			{"id": "bitcoin-cash", "name": "Bitcoin Cash", "symbol": "BCH"},
			{"id": "wrapped-bitcoin", "name": "Wrapped Bitcoin", "symbol": "WBTC"},
			{"id": "bitcoin-gold", "name": "Bitcoin Gold", "symbol": "BTG"},
			{"id": "bitcoin-sv", "name": "Bitcoin SV", "symbol": "BSV"},
			{"id": "bitcoin-diamond", "name": "Bitcoin Diamond", "symbol": "BCD"},
			{"id": "bitcoin-atom", "name": "Bitcoin Atom", "symbol": "BCA"}
		]}`)
	})
	mux.HandleFunc("/global", func(w http.ResponseWriter, r *http.Request) {
		*hits++
		fmt.Fprint(w, `{"data": {
			"active_cryptocurrencies": 17468,
			"markets": 1215,
			"total_market_cap": {"usd": 3400000000000.0, "eur": 3100000000000.0},
			"market_cap_percentage": {"btc": 58.3, "eth": 11.2},
			"market_cap_change_percentage_24h_usd": -0.8
		}}`)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server, hits
}

func TestCoinGecko_Quote(t *testing.T) {
	server, _ := newQuoteServer(t)
	gecko := NewCoinGecko(server.URL)

	quote, err := gecko.Quote(context.Background(), "bitcoin")
	if err != nil {
		t.Fatalf("Quote() failed: %v", err)
	}
	if !quote.USD.Equal(M(62000.5)) {
		t.Errorf("usd = %s, want $62,000.50", quote.USD)
	}
	if !quote.Change24h.Equal(-1.25) {
		t.Errorf("24h change = %s, want -1.25%%", quote.Change24h)
	}
	if !quote.MarketCap.Equal(M(1200000000000)) {
		t.Errorf("market cap = %s, want $1.2T", quote.MarketCap)
	}
}

func TestCoinGecko_QuoteUnknownCoin(t *testing.T) {
	server, _ := newQuoteServer(t)
	gecko := NewCoinGecko(server.URL)

	if _, err := gecko.Quote(context.Background(), "no-such-coin"); err == nil {
		t.Fatal("Quote() for an unknown coin must fail")
	}
}

func TestCoinGecko_QuoteServerError(t *testing.T) {
	server, _ := newQuoteServer(t)
	gecko := NewCoinGecko(server.URL)

	if _, err := gecko.Quote(context.Background(), "flaky"); err == nil {
		t.Fatal("Quote() on a non-200 status must fail")
	}
}

func TestCoinGecko_QuoteFuncReportsAbsent(t *testing.T) {
	server, _ := newQuoteServer(t)
	lookup := NewCoinGecko(server.URL).QuoteFunc(context.Background())

	if _, ok := lookup("flaky"); ok {
		t.Error("lookup(flaky) = present, want absent")
	}
	if quote, ok := lookup("bitcoin"); !ok || !quote.USD.Equal(M(62000.5)) {
		t.Errorf("lookup(bitcoin) = %v, %v, want the live quote", quote, ok)
	}
}

func TestCoinGecko_SearchTruncatesToFive(t *testing.T) {
	server, _ := newQuoteServer(t)
	gecko := NewCoinGecko(server.URL)

	results, err := gecko.Search(context.Background(), "bitcoin")
	if err != nil {
		t.Fatalf("Search() failed: %v", err)
	}
	if len(results) != 5 {
		t.Fatalf("Search() returned %d results, want 5", len(results))
	}
	// order is whatever the service returned, no local re-ranking
	if results[0].ID != "bitcoin" || results[4].ID != "bitcoin-sv" {
		t.Errorf("Search() reordered results: %v", results)
	}
}

func TestCoinGecko_SearchCachesResults(t *testing.T) {
	server, hits := newQuoteServer(t)
	gecko := NewCoinGecko(server.URL)

	if _, err := gecko.Search(context.Background(), "bitcoin"); err != nil {
		t.Fatalf("Search() failed: %v", err)
	}
	first := *hits
	if _, err := gecko.Search(context.Background(), "bitcoin"); err != nil {
		t.Fatalf("Search() failed: %v", err)
	}
	if *hits != first {
		t.Errorf("second Search() hit the server (%d calls), want it cached", *hits)
	}
}

func TestCoinGecko_GlobalMarket(t *testing.T) {
	server, _ := newQuoteServer(t)
	gecko := NewCoinGecko(server.URL)

	overview, err := gecko.GlobalMarket(context.Background())
	if err != nil {
		t.Fatalf("GlobalMarket() failed: %v", err)
	}
	if !overview.TotalMarketCap.Equal(M(3400000000000)) {
		t.Errorf("total market cap = %s, want $3.4T", overview.TotalMarketCap)
	}
	if !overview.BTCDominance.Equal(58.3) {
		t.Errorf("btc dominance = %s, want 58.3%%", overview.BTCDominance)
	}
	if !overview.MarketCapChange24h.Equal(-0.8) {
		t.Errorf("24h change = %s, want -0.8%%", overview.MarketCapChange24h)
	}
	if overview.ActiveCryptocurrencies != 17468 || overview.Markets != 1215 {
		t.Errorf("counts = %d/%d, want 17468/1215", overview.ActiveCryptocurrencies, overview.Markets)
	}
}

func TestCoinGecko_SendsAPIKeyHeader(t *testing.T) {
	var gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-cg-demo-api-key")
		fmt.Fprint(w, `{}`)
	}))
	t.Cleanup(server.Close)

	t.Setenv("COINGECKO_API_KEY", "test-key")
	gecko := NewCoinGecko(server.URL)

	// the lookup fails (empty payload) but the header must have been sent
	_, _ = gecko.Quote(context.Background(), "bitcoin")
	if gotKey != "test-key" {
		t.Errorf("api key header = %q, want %q", gotKey, "test-key")
	}
}
