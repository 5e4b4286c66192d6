package providers

import (
	"context"
	"errors"
	"fmt"
	"io"
	stdlog "log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"

	"tripbudget/internal/domain/entities"
	"tripbudget/internal/usecase/interfaces"
)

var ErrMissingProviderURL = errors.New("missing PROVIDER_API_URL")

// HTTPProviderGateway queries the external travel-provider aggregation API
// for substitute items.
//
// Env vars:
//   - PROVIDER_API_URL   base URL of the aggregator
//   - PROVIDER_API_KEY   optional bearer token
//   - PROVIDER_GATEWAY_MOCK  set truthy for local development without the API
type HTTPProviderGateway struct {
	client   *retryablehttp.Client
	baseURL  string
	apiKey   string
	mockMode bool
	log      zerolog.Logger
}

var _ interfaces.IProviderGateway = (*HTTPProviderGateway)(nil)

func NewHTTPProviderGateway(log zerolog.Logger) (*HTTPProviderGateway, error) {
	if isProviderGatewayMockEnabled() {
		log.Info().Msg("provider gateway mock mode enabled")
		return &HTTPProviderGateway{mockMode: true, log: log}, nil
	}

	baseURL := strings.TrimRight(os.Getenv("PROVIDER_API_URL"), "/")
	if baseURL == "" {
		return nil, ErrMissingProviderURL
	}

	client := retryablehttp.NewClient()
	client.Logger = stdlog.New(io.Discard, "", 0)
	client.RetryMax = 3
	client.HTTPClient.Timeout = 10 * time.Second

	return &HTTPProviderGateway{
		client:  client,
		baseURL: baseURL,
		apiKey:  os.Getenv("PROVIDER_API_KEY"),
		log:     log,
	}, nil
}

// SearchAlternatives asks the aggregator for substitutes of the given item.
// The caller bounds the call through ctx; an empty result is not an error.
func (g *HTTPProviderGateway) SearchAlternatives(ctx context.Context, item entities.BudgetItem, criteria map[string]string) ([]entities.BudgetItem, error) {
	if g.mockMode {
		return g.mockAlternatives(item), nil
	}

	q := url.Values{}
	q.Set("type", string(item.Type))
	if item.ProviderID != "" {
		q.Set("exclude_provider", item.ProviderID)
	}
	if !item.StartDate.IsZero() {
		q.Set("start_date", item.StartDate.UTC().Format("2006-01-02"))
	}
	if !item.EndDate.IsZero() {
		q.Set("end_date", item.EndDate.UTC().Format("2006-01-02"))
	}
	for k, v := range criteria {
		q.Set(k, v)
	}

	reqURL := fmt.Sprintf("%s/v1/alternatives?%s", g.baseURL, q.Encode())
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	if g.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+g.apiKey)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("provider search returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	alternatives := []entities.BudgetItem{}
	gjson.GetBytes(body, "alternatives").ForEach(func(_, v gjson.Result) bool {
		alternatives = append(alternatives, entities.BudgetItem{
			ID:           v.Get("id").Str,
			Type:         item.Type,
			Description:  v.Get("description").Str,
			ProviderID:   v.Get("provider_id").Str,
			Price:        v.Get("price").Float(),
			Cost:         v.Get("cost").Float(),
			Quantity:     item.Quantity,
			Currency:     v.Get("currency").Str,
			Rating:       v.Get("rating").Float(),
			Availability: v.Get("availability").Float(),
			StartDate:    item.StartDate,
			EndDate:      item.EndDate,
		})
		return true
	})

	g.log.Debug().Str("item_id", item.ID).Int("count", len(alternatives)).
		Msg("provider search completed")
	return alternatives, nil
}

// mockAlternatives fabricates two plausible substitutes off the input item
// so the full reconstruction path works against local stacks.
func (g *HTTPProviderGateway) mockAlternatives(item entities.BudgetItem) []entities.BudgetItem {
	cheaper := item
	cheaper.ID = item.ID + "-alt-1"
	cheaper.Description = item.Description + " (alternative)"
	cheaper.Price = item.Price * 0.95
	cheaper.Cost = item.Cost * 0.95
	cheaper.Availability = 0.9

	better := item
	better.ID = item.ID + "-alt-2"
	better.Description = item.Description + " (premium alternative)"
	better.Price = item.Price * 1.05
	better.Cost = item.Cost * 1.05
	better.Availability = 0.8
	if better.Rating < 4.5 {
		better.Rating = 4.5
	}

	return []entities.BudgetItem{cheaper, better}
}

func isProviderGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PROVIDER_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
