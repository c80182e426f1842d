package price

import "github.com/pkg/errors"

// ErrNoRecord means a mirror holds no record yet.
var ErrNoRecord = errors.New("no record")

// Quote is what the price API reports for one request.
type Quote struct {
	UpdatedAt string
	PriceUSD  float64
}

// Record is one persisted observation.
type Record struct {
	Time            string  `json:"time"`
	BitcoinPriceUSD float64 `json:"bitcoinPriceUSD"`
	FetchedAt       string  `json:"fetchedAt"`
}

func NewRecord(q Quote, fetchedAt string) Record {
	return Record{
		Time:            q.UpdatedAt,
		BitcoinPriceUSD: q.PriceUSD,
		FetchedAt:       fetchedAt,
	}
}
