package coindesk

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/btc-tracker/internal/entity/price"
	"max.ks1230/btc-tracker/internal/logger"
)

const maxBodyBytes = 1 << 20

// ErrUnexpectedShape is returned when the body lacks time.updated or bpi.USD.rate_float.
var ErrUnexpectedShape = errors.New("unexpected response shape")

type config interface {
	APIURL() string
	RequestTimeout() time.Duration
}

type Client struct {
	url  string
	http *http.Client
}

type currentPriceResponse struct {
	Time *struct {
		Updated *string `json:"updated"`
	} `json:"time"`
	Bpi *struct {
		USD *struct {
			RateFloat *float64 `json:"rate_float"`
		} `json:"USD"`
	} `json:"bpi"`
}

func New(cfg config) *Client {
	return &Client{
		url:  cfg.APIURL(),
		http: &http.Client{Timeout: cfg.RequestTimeout()},
	}
}

// FetchPrice issues one GET against the configured url.
func (c *Client) FetchPrice(ctx context.Context) (price.Quote, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return price.Quote{}, errors.Wrap(err, "building request")
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return price.Quote{}, errors.Wrap(err, "requesting price")
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, maxBodyBytes))
	if err != nil {
		return price.Quote{}, errors.Wrap(err, "reading response")
	}
	logger.Info("new response from price api", zap.Int("status", res.StatusCode), zap.Int("bytes", len(body)))

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return price.Quote{}, errors.Errorf("price api responded with status %d", res.StatusCode)
	}

	return parseQuote(body)
}

func parseQuote(body []byte) (price.Quote, error) {
	var resp currentPriceResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return price.Quote{}, errors.Wrap(err, "unmarshalling response")
	}

	if resp.Time == nil || resp.Time.Updated == nil {
		return price.Quote{}, errors.Wrap(ErrUnexpectedShape, "missing time.updated")
	}
	if resp.Bpi == nil || resp.Bpi.USD == nil || resp.Bpi.USD.RateFloat == nil {
		return price.Quote{}, errors.Wrap(ErrUnexpectedShape, "missing bpi.USD.rate_float")
	}

	return price.Quote{
		UpdatedAt: *resp.Time.Updated,
		PriceUSD:  *resp.Bpi.USD.RateFloat,
	}, nil
}
