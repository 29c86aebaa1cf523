// Package dcclient provides the outbound client for the distribution center
// catalog service, plus a cache-aside decorator over it.
package dcclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"fulfillment/internal/core/domain/model/dc"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

const (
	serviceName    = "distribution-centers"
	defaultTimeout = 10 * time.Second
)

type centerResponse struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Address struct {
		Street    string  `json:"street"`
		Number    string  `json:"number"`
		City      string  `json:"city"`
		State     string  `json:"state"`
		Country   string  `json:"country"`
		ZipCode   string  `json:"zipCode"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"address"`
}

// Client fetches distribution centers by region over HTTP. All transport and
// decoding failures are reported as external service errors so callers can
// distinguish them from domain conditions.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the catalog service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// GetByRegion returns every distribution center serving the given region.
// An empty result is not an error: it means no center covers the region.
func (c *Client) GetByRegion(ctx context.Context, region string) ([]dc.DistributionCenter, error) {
	endpoint := fmt.Sprintf("%s/api/v1/distribution-centers?region=%s", c.baseURL, url.QueryEscape(region))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errs.NewExternalServiceErrorWithCause(serviceName, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errs.NewExternalServiceErrorWithCause(serviceName, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, errs.NewExternalServiceErrorWithCause(serviceName,
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var payload []centerResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errs.NewExternalServiceErrorWithCause(serviceName, err)
	}

	return toDomain(payload)
}

func toDomain(payload []centerResponse) ([]dc.DistributionCenter, error) {
	centers := make([]dc.DistributionCenter, 0, len(payload))
	for _, item := range payload {
		coordinates, err := kernel.NewCoordinates(item.Address.Latitude, item.Address.Longitude)
		if err != nil {
			return nil, errs.NewExternalServiceErrorWithCause(serviceName, err)
		}

		address, err := kernel.NewAddress(
			item.Address.Street,
			item.Address.Number,
			item.Address.City,
			item.Address.State,
			item.Address.Country,
			item.Address.ZipCode,
			coordinates,
		)
		if err != nil {
			return nil, errs.NewExternalServiceErrorWithCause(serviceName, err)
		}

		center, err := dc.NewDistributionCenter(item.Code, item.Name, address)
		if err != nil {
			return nil, errs.NewExternalServiceErrorWithCause(serviceName, err)
		}

		centers = append(centers, center)
	}

	return centers, nil
}
