/*
service.go - Employee lookup over the published sheets

PURPOSE:
  Service.Lookup is the single inbound operation: given a human-entered
  employee ID, fetch the six sheets and build the Aggregate.

LOOKUP FLOW:
  1. Fetch all six sources concurrently; wait for every one to settle
  2. Check statuses in source order; the first non-2xx fails the lookup
  3. Read all six bodies concurrently; wait for every one
  4. Build (pure, synchronous)

  Source order is Admin, CurrentSalary, ArchiveSalary, Bonuses,
  Dispatches, ExtraHours. It determines which failure is reported when
  several sources fail at once.

STATE:
  Service holds configuration only. Nothing is cached between lookups;
  every lookup fetches fresh exports.

SEE ALSO:
  - fetch/client.go: Transport and the two barriers
  - aggregate.go: Build
*/
package employee

import (
	"context"
	"errors"
	"time"

	"github.com/warp/employee-portal/fetch"
	"go.uber.org/zap"
)

// Sheet names one of the six published sources.
type Sheet string

const (
	SheetAdmin         Sheet = "admin"
	SheetCurrentSalary Sheet = "current_salary"
	SheetArchiveSalary Sheet = "archive_salary"
	SheetBonuses       Sheet = "bonuses"
	SheetDispatches    Sheet = "dispatches"
	SheetExtraHours    Sheet = "extra_hours"
)

// Sources holds the export URL of each sheet.
type Sources struct {
	Admin         string
	CurrentSalary string
	ArchiveSalary string
	Bonuses       string
	Dispatches    string
	ExtraHours    string
}

// List returns the sources in lookup order.
func (s Sources) List() []fetch.Source {
	return []fetch.Source{
		{Name: string(SheetAdmin), URL: s.Admin},
		{Name: string(SheetCurrentSalary), URL: s.CurrentSalary},
		{Name: string(SheetArchiveSalary), URL: s.ArchiveSalary},
		{Name: string(SheetBonuses), URL: s.Bonuses},
		{Name: string(SheetDispatches), URL: s.Dispatches},
		{Name: string(SheetExtraHours), URL: s.ExtraHours},
	}
}

// Fetcher retrieves sources. *fetch.Client implements it.
type Fetcher interface {
	FetchAll(ctx context.Context, sources []fetch.Source) ([]*fetch.Response, error)
}

// Service looks up employees.
type Service struct {
	fetcher Fetcher
	sources Sources
	opts    Options
	logger  *zap.Logger
}

// NewService creates a Service. A nil logger disables logging.
func NewService(fetcher Fetcher, sources Sources, logger *zap.Logger, opts Options) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		fetcher: fetcher,
		sources: sources,
		opts:    opts.withDefaults(),
		logger:  logger.Named("employee"),
	}
}

// Lookup returns the Aggregate of employee id. id is used as entered:
// it is not trimmed.
func (s *Service) Lookup(ctx context.Context, id string) (*Aggregate, error) {
	start := time.Now()

	texts, err := s.fetchTexts(ctx)
	if err != nil {
		s.logger.Warn("lookup failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	agg, err := build(texts, id, s.opts, func(sheet Sheet) {
		s.logger.Debug("sheet has no identity column, skipped", zap.String("sheet", string(sheet)))
	})
	if err != nil {
		s.logger.Info("lookup rejected", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("lookup complete",
		zap.String("id", id),
		zap.Int("salary_periods", len(agg.SalaryHistory)),
		zap.Int("bonuses", len(agg.Bonuses)),
		zap.Int("dispatches", len(agg.Dispatches)),
		zap.Int("extra_hours", len(agg.ExtraHours)),
		zap.Duration("elapsed", time.Since(start)))
	return agg, nil
}

func (s *Service) fetchTexts(ctx context.Context) (SheetTexts, error) {
	responses, err := s.fetcher.FetchAll(ctx, s.sources.List())
	if err != nil {
		return SheetTexts{}, connectivityError(err)
	}

	for _, r := range responses {
		if !r.OK() {
			fetch.CloseAll(responses)
			return SheetTexts{}, &ConnectivityError{Source: r.Source.Name, Status: r.StatusCode}
		}
	}

	bodies, err := fetch.ReadAll(ctx, responses)
	if err != nil {
		return SheetTexts{}, connectivityError(err)
	}

	return SheetTexts{
		Admin:         bodies[0],
		CurrentSalary: bodies[1],
		ArchiveSalary: bodies[2],
		Bonuses:       bodies[3],
		Dispatches:    bodies[4],
		ExtraHours:    bodies[5],
	}, nil
}

func connectivityError(err error) error {
	ce := &ConnectivityError{Err: err}
	var fe *fetch.Error
	if errors.As(err, &fe) {
		ce.Source = fe.Source
	}
	return ce
}
