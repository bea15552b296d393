package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
)

// Provider is one independent price-quote source. Implementations return
// the current native->USD rate or an error; validation and fallback policy
// live in the Resolver.
type Provider interface {
	Name() string
	FetchPrice(ctx context.Context) (float64, error)
}

func fetchJSON(ctx context.Context, client *http.Client, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// CoinGecko queries the coingecko simple-price endpoint.
type CoinGecko struct {
	BaseURL string
	CoinID  string
	Client  *http.Client
}

func NewCoinGecko(client *http.Client) *CoinGecko {
	return &CoinGecko{
		BaseURL: "https://api.coingecko.com",
		CoinID:  "ethereum",
		Client:  client,
	}
}

func (p *CoinGecko) Name() string { return "coingecko" }

func (p *CoinGecko) FetchPrice(ctx context.Context) (float64, error) {
	url := fmt.Sprintf("%s/api/v3/simple/price?ids=%s&vs_currencies=usd", p.BaseURL, p.CoinID)

	var body map[string]map[string]float64
	if err := fetchJSON(ctx, p.Client, url, &body); err != nil {
		return 0, err
	}

	price, ok := body[p.CoinID]["usd"]
	if !ok {
		return 0, fmt.Errorf("missing %s.usd in response", p.CoinID)
	}
	return price, nil
}

// Binance queries the binance spot ticker endpoint.
type Binance struct {
	BaseURL string
	Symbol  string
	Client  *http.Client
}

func NewBinance(client *http.Client) *Binance {
	return &Binance{
		BaseURL: "https://api.binance.com",
		Symbol:  "ETHUSDT",
		Client:  client,
	}
}

func (p *Binance) Name() string { return "binance" }

func (p *Binance) FetchPrice(ctx context.Context) (float64, error) {
	url := fmt.Sprintf("%s/api/v3/ticker/price?symbol=%s", p.BaseURL, p.Symbol)

	var body struct {
		Symbol string `json:"symbol"`
		Price  string `json:"price"`
	}
	if err := fetchJSON(ctx, p.Client, url, &body); err != nil {
		return 0, err
	}

	price, err := strconv.ParseFloat(body.Price, 64)
	if err != nil {
		return 0, fmt.Errorf("unparseable price %q: %w", body.Price, err)
	}
	return price, nil
}

// CryptoCompare queries the cryptocompare single-symbol price endpoint.
type CryptoCompare struct {
	BaseURL string
	Symbol  string
	Client  *http.Client
}

func NewCryptoCompare(client *http.Client) *CryptoCompare {
	return &CryptoCompare{
		BaseURL: "https://min-api.cryptocompare.com",
		Symbol:  "ETH",
		Client:  client,
	}
}

func (p *CryptoCompare) Name() string { return "cryptocompare" }

func (p *CryptoCompare) FetchPrice(ctx context.Context) (float64, error) {
	url := fmt.Sprintf("%s/data/price?fsym=%s&tsyms=USD", p.BaseURL, p.Symbol)

	var body map[string]float64
	if err := fetchJSON(ctx, p.Client, url, &body); err != nil {
		return 0, err
	}

	price, ok := body["USD"]
	if !ok {
		return 0, fmt.Errorf("missing USD in response")
	}
	return price, nil
}
