// Package market is the client for the marketplace trading API.
package market

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/osse101/MarketBot_Go/internal/domain"
	"github.com/osse101/MarketBot_Go/internal/logger"
	"github.com/osse101/MarketBot_Go/internal/remote"
)

// Config holds the marketplace connection settings
type Config struct {
	BaseURL  string
	APIKey   string
	Currency string
}

// Client talks to the marketplace. Every method degrades to a sentinel value
// (empty result, 0, false) when the call fails after all attempts.
type Client struct {
	exec *remote.Executor
	cfg  Config
}

// NewClient creates a marketplace client using exec for all requests
func NewClient(exec *remote.Executor, cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Currency == "" {
		cfg.Currency = domain.DefaultCurrency
	}
	return &Client{exec: exec, cfg: cfg}
}

type response struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

func (r response) check() error {
	if !r.Success {
		if r.Error != "" {
			return fmt.Errorf("%s: %s", ErrMsgNotSuccessful, r.Error)
		}
		return fmt.Errorf("%s", ErrMsgNotSuccessful)
	}
	return nil
}

// flexString accepts both JSON strings and numbers. The API is not
// consistent about ids and status codes.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

type itemsResponse struct {
	response
	Items []struct {
		ItemID   flexString      `json:"item_id"`
		HashName string          `json:"market_hash_name"`
		Position int             `json:"position"`
		Price    decimal.Decimal `json:"price"`
		Currency string          `json:"currency"`
		Status   flexString      `json:"status"`
	} `json:"items"`
}

// FetchListings returns the seller's actively listed items and the items
// sold but waiting for the seller to transfer them.
func (c *Client) FetchListings(ctx context.Context) (onSale, pending []domain.ListedItem) {
	log := logger.FromContext(ctx)

	var resp itemsResponse
	err := c.exec.Get(ctx, OpFetchListings, c.endpoint(PathItems, nil), func(body []byte) error {
		resp = itemsResponse{}
		if err := json.Unmarshal(body, &resp); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgDecode, err)
		}
		return resp.check()
	})
	if err != nil {
		log.Warn(LogMsgListingsFailed, "error", err)
		return []domain.ListedItem{}, []domain.ListedItem{}
	}

	onSale = make([]domain.ListedItem, 0, len(resp.Items))
	pending = []domain.ListedItem{}
	for _, raw := range resp.Items {
		status, err := strconv.Atoi(string(raw.Status))
		if err != nil || raw.ItemID == "" {
			log.Warn(LogMsgSkippedListing, "item_id", raw.ItemID, "status", raw.Status)
			continue
		}
		item := domain.ListedItem{
			ID:            string(raw.ItemID),
			HashName:      raw.HashName,
			Price:         domain.PriceFromDecimal(raw.Price),
			Currency:      raw.Currency,
			QueuePosition: raw.Position,
			Status:        domain.ItemStatus(status),
		}
		switch item.Status {
		case domain.StatusOnSale:
			onSale = append(onSale, item)
		case domain.StatusNeedsTransfer:
			pending = append(pending, item)
		}
	}

	log.Debug(LogMsgListingsFetched, "on_sale", len(onSale), "pending", len(pending))
	return onSale, pending
}

// ApplyPrice sets a new fixed-point price on one listing and reports success
func (c *Client) ApplyPrice(ctx context.Context, itemID string, price int64) bool {
	log := logger.FromContext(ctx)

	q := url.Values{}
	q.Set(ParamItemID, itemID)
	q.Set(ParamPrice, strconv.FormatInt(price, 10))
	q.Set(ParamCurrency, c.cfg.Currency)

	err := c.exec.Get(ctx, OpApplyPrice, c.endpoint(PathSetPrice, q), func(body []byte) error {
		var resp response
		if err := json.Unmarshal(body, &resp); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgDecode, err)
		}
		return resp.check()
	})
	if err != nil {
		log.Warn(LogMsgPriceRejected, "item_id", itemID, "price", domain.FormatPrice(price), "error", err)
		return false
	}

	log.Debug(LogMsgPriceApplied, "item_id", itemID, "price", domain.FormatPrice(price))
	return true
}

// offer prices on the search endpoints are already fixed point
type offer struct {
	HashName string `json:"market_hash_name"`
	Price    int64  `json:"price"`
}

type searchResponse struct {
	response
	Data []offer `json:"data"`
}

// FetchLowestPrice returns the lowest competing price for hashName, or 0 when
// there are no offers or the call failed.
func (c *Client) FetchLowestPrice(ctx context.Context, hashName string) int64 {
	q := url.Values{}
	q.Set(ParamHashName, hashName)

	var lowest int64
	err := c.exec.Get(ctx, OpLowestPrice, c.endpoint(PathSearchItem, q), func(body []byte) error {
		var resp searchResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgDecode, err)
		}
		if err := resp.check(); err != nil {
			return err
		}
		lowest = lowestOf(resp.Data)
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgLowestPriceError, "hash_name", hashName, "error", err)
		return 0
	}
	return lowest
}

type searchAllResponse struct {
	response
	// Data is an object keyed by hash name, or an empty array when nothing matched
	Data json.RawMessage `json:"data"`
}

// FetchLowestPrices returns the lowest competing price per hash name. Names
// without offers, or whose batch failed, are absent from the map.
func (c *Client) FetchLowestPrices(ctx context.Context, hashNames []string) map[string]int64 {
	prices := make(map[string]int64, len(hashNames))

	for start := 0; start < len(hashNames); start += MaxBatchNames {
		end := start + MaxBatchNames
		if end > len(hashNames) {
			end = len(hashNames)
		}
		batch := hashNames[start:end]

		q := url.Values{}
		for _, name := range batch {
			q.Add(ParamListHashNames, name)
		}

		var found map[string]int64
		err := c.exec.Get(ctx, OpLowestPriceAll, c.endpoint(PathSearchListAll, q), func(body []byte) error {
			var resp searchAllResponse
			if err := json.Unmarshal(body, &resp); err != nil {
				return fmt.Errorf("%s: %w", ErrMsgDecode, err)
			}
			if err := resp.check(); err != nil {
				return err
			}
			var perr error
			found, perr = parseOffersByName(resp.Data)
			return perr
		})
		if err != nil {
			logger.FromContext(ctx).Warn(LogMsgLowestPriceError, "hash_names", len(batch), "error", err)
			continue
		}
		for name, p := range found {
			prices[name] = p
		}
	}
	return prices
}

func parseOffersByName(data json.RawMessage) (map[string]int64, error) {
	data = bytes.TrimSpace(data)
	out := map[string]int64{}
	if len(data) == 0 || data[0] != '{' {
		// null or [] means no offers
		return out, nil
	}

	var byName map[string][]offer
	if err := json.Unmarshal(data, &byName); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgDecode, err)
	}
	for name, offers := range byName {
		if p := lowestOf(offers); p > 0 {
			out[name] = p
		}
	}
	return out, nil
}

func lowestOf(offers []offer) int64 {
	var lowest int64
	for _, o := range offers {
		if o.Price <= 0 {
			continue
		}
		if lowest == 0 || o.Price < lowest {
			lowest = o.Price
		}
	}
	return lowest
}

func (c *Client) endpoint(path string, q url.Values) string {
	if q == nil {
		q = url.Values{}
	}
	q.Set(ParamKey, c.cfg.APIKey)
	return c.cfg.BaseURL + path + "?" + q.Encode()
}
