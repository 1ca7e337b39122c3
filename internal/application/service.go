package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/rxscan/internal/domain"
	"github.com/bnema/rxscan/internal/ports"
	"golang.org/x/sync/errgroup"
)

var ErrNoBarcodes = errors.New("at least one barcode is required")

type Service struct {
	catalog ports.Catalog
	clock   ports.Clock
}

func NewService(catalog ports.Catalog, clock ports.Clock) *Service {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Service{
		catalog: catalog,
		clock:   clock,
	}
}

func (s *Service) Lookup(ctx context.Context, barcode domain.Barcode) (LookupResult, error) {
	record, err := s.catalog.Lookup(ctx, barcode)
	switch {
	case err == nil:
		if record.Barcode == "" {
			record.Barcode = barcode
		}
		return LookupResult{Barcode: barcode, Status: ports.ScanFound, Record: &record}, nil
	case errors.Is(err, domain.ErrMedicineNotFound):
		return LookupResult{Barcode: barcode, Status: ports.ScanNotFound}, nil
	case ctx.Err() != nil:
		return LookupResult{}, ctx.Err()
	default:
		return LookupResult{Barcode: barcode, Status: ports.ScanLookupUnavailable},
			fmt.Errorf("%w: barcode %s: %w", domain.ErrLookupUnavailable, barcode, err)
	}
}

const maxConcurrentLookups = 4

// Check resolves the barcodes as one session, appended in argument order the
// same way a run of physical scans would be, and reports the interaction
// status of the result. Unknown barcodes and failed lookups are listed but
// never abort the check.
func (s *Service) Check(ctx context.Context, barcodes []domain.Barcode) (CheckReport, error) {
	if len(barcodes) == 0 {
		return CheckReport{}, ErrNoBarcodes
	}

	results := make([]LookupResult, len(barcodes))
	failures := make([]error, len(barcodes))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(maxConcurrentLookups)
	for i, barcode := range barcodes {
		group.Go(func() error {
			result, err := s.Lookup(groupCtx, barcode)
			if err != nil && !errors.Is(err, domain.ErrLookupUnavailable) {
				return err
			}
			results[i] = result
			failures[i] = err
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return CheckReport{}, err
	}

	session := domain.NewSession()
	for _, result := range results {
		if result.Record != nil {
			session.Append(*result.Record, s.clock.Now())
		}
	}

	report := CheckReport{
		SessionID: session.ID(),
		Scans:     results,
		Medicines: session.Snapshot(),
	}
	report.Interactions = domain.AggregateInteractions(report.Medicines)
	report.Severity = domain.ClassifySeverity(report.Interactions.Count)
	report.SeverityLabel = report.Severity.Label()
	report.LookupErrors = errorStrings(failures)

	return report, nil
}

func (s *Service) ListCatalog(ctx context.Context) ([]domain.MedicineRecord, error) {
	lister, ok := s.catalog.(ports.CatalogLister)
	if !ok {
		return nil, ErrCatalogNotListable
	}

	records, err := lister.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}

	return records, nil
}

// ImportCatalog copies every medicine listed by source into dest.
func (s *Service) ImportCatalog(ctx context.Context, source ports.CatalogLister, dest ports.CatalogWriter) (int, error) {
	records, err := source.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list import source: %w", err)
	}
	if len(records) == 0 {
		return 0, nil
	}

	if err := dest.Put(ctx, records...); err != nil {
		return 0, fmt.Errorf("write catalog: %w", err)
	}

	return len(records), nil
}

func errorStrings(errs []error) []string {
	if len(errs) == 0 {
		return nil
	}

	messages := make([]string, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			messages = append(messages, err.Error())
		}
	}
	if len(messages) == 0 {
		return nil
	}
	return messages
}
