package remote

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bnema/rxscan/internal/adapters/catalog/jsondoc"
	"github.com/bnema/rxscan/internal/domain"
	"github.com/bnema/rxscan/internal/ports"
	"github.com/rs/zerolog"
)

const (
	maxDocumentBytes = 8 << 20
	defaultTimeout   = 5 * time.Second
	userAgent        = "rx-catalog"
)

// Catalog fetches the medicines document from a URL on every call, so a
// published update is visible to the next scan without restarting.
type Catalog struct {
	url    string
	client *http.Client
	logger zerolog.Logger
}

var (
	_ ports.Catalog       = (*Catalog)(nil)
	_ ports.CatalogLister = (*Catalog)(nil)
)

func NewCatalog(url string, client *http.Client, logger zerolog.Logger) (*Catalog, error) {
	if strings.TrimSpace(url) == "" {
		return nil, errors.New("catalog url is empty")
	}
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}

	return &Catalog{url: url, client: client, logger: logger}, nil
}

func (c *Catalog) Lookup(ctx context.Context, barcode domain.Barcode) (domain.MedicineRecord, error) {
	doc, err := c.fetch(ctx)
	if err != nil {
		return domain.MedicineRecord{}, err
	}

	return doc.Lookup(barcode)
}

func (c *Catalog) List(ctx context.Context) ([]domain.MedicineRecord, error) {
	doc, err := c.fetch(ctx)
	if err != nil {
		return nil, err
	}

	return doc.Records(), nil
}

func (c *Catalog) fetch(ctx context.Context) (jsondoc.Document, error) {
	started := time.Now()

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return jsondoc.Document{}, fmt.Errorf("build catalog request: %w", err)
	}
	request.Header.Set("Accept", "application/json")
	request.Header.Set("User-Agent", userAgent)

	response, err := c.client.Do(request)
	if err != nil {
		return jsondoc.Document{}, fmt.Errorf("fetch catalog: %w", err)
	}
	defer func() { _ = response.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(response.Body, maxDocumentBytes))
	if err != nil {
		return jsondoc.Document{}, fmt.Errorf("read catalog response: %w", err)
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return jsondoc.Document{}, fmt.Errorf("fetch catalog: status %d: %s", response.StatusCode, strings.TrimSpace(string(body)))
	}

	doc, err := jsondoc.Decode(body)
	if err != nil {
		return jsondoc.Document{}, err
	}

	c.logger.Debug().
		Str("url", c.url).
		Int("medicines", len(doc.Barcodes)).
		Dur("elapsed", time.Since(started)).
		Msg("Fetched catalog document")

	return doc, nil
}
