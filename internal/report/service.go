package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/fittrack/internal/clock"
	"github.com/2beens/fittrack/internal/profile"
	"github.com/2beens/fittrack/internal/progress"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=report_test

var ErrUnknownFormat = errors.New("unknown report format")

type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatXLSX, FormatPDF:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

func (f Format) ContentType() string {
	if f == FormatPDF {
		return pkg.ContentType.PDF
	}
	return pkg.ContentType.XLSX
}

func (f Format) encode(rep Report) ([]byte, error) {
	if f == FormatPDF {
		return EncodePDF(rep)
	}
	return EncodeXLSX(rep)
}

type profileGetter interface {
	Get(ctx context.Context, id string) (*profile.Profile, error)
}

type sourcesFetcher interface {
	Fetch(ctx context.Context, userID string, rng clock.Range) progress.Sources
}

type Export struct {
	FileName    string
	ContentType string
	Content     []byte
	// Location is where the stored copy was put, empty when not stored.
	Location string
}

type Service struct {
	profiles       profileGetter
	fetcher        sourcesFetcher
	storage        Storage
	clock          clock.Clock
	metricsManager *metrics.Manager
}

// NewService creates the export service. storage may be nil.
func NewService(
	profiles profileGetter,
	fetcher sourcesFetcher,
	storage Storage,
	clk clock.Clock,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		profiles:       profiles,
		fetcher:        fetcher,
		storage:        storage,
		clock:          clk,
		metricsManager: metricsManager,
	}
}

// Export builds the whole report in memory from the user's full history.
// A cancelled context aborts before anything is stored.
func (s *Service) Export(ctx context.Context, userID string, format Format) (_ *Export, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.report.export")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("format", string(format)))

	start := time.Now()

	p, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	src := s.fetcher.Fetch(ctx, userID, progress.Window(s.clock, 0))
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	rep := Assemble(*p, src, now)
	content, err := format.encode(rep)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", format, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	export := &Export{
		FileName:    FileName(now, string(format)),
		ContentType: format.ContentType(),
		Content:     content,
	}

	if s.storage != nil {
		location, err := s.storage.Store(ctx, export.FileName, export.ContentType, content)
		if err != nil {
			log.Errorf("store report %s for user %s: %s", export.FileName, userID, err)
		} else {
			export.Location = location
		}
	}

	if failed := src.FailedStreams(); len(failed) > 0 {
		log.WithFields(log.Fields{
			"user_id": userID,
			"streams": failed,
		}).Warn("report built with unavailable sections")
	}

	s.metricsManager.CounterReportsExported.WithLabelValues(string(format)).Inc()
	s.metricsManager.HistReportBuildDuration.WithLabelValues(string(format)).Observe(time.Since(start).Seconds())

	return export, nil
}
