package services

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/ghuser/namesort/pkg/logger"
	pkgvalidator "github.com/ghuser/namesort/pkg/validator"
	"github.com/ghuser/namesort/services/names/domain/models"
	"github.com/ghuser/namesort/services/names/domain/repositories"
	domainsvcs "github.com/ghuser/namesort/services/names/domain/services"
)

// OutputPath is where the sorted list is always written.
const OutputPath = "sorted-names-list.txt"

const instrumentationName = "github.com/ghuser/namesort/services/names"

// Console messages.
const (
	msgPrompt       = "Enter 'A' for ascending order or 'D' for descending order:"
	msgInvalidOrder = "Invalid input. Sorting in ascending order by default."
	msgSortedHeader = "Sorted Names:"
	msgWrittenTo    = "Sorted names have been written to %s\n"
)

// Prompter reads one line of user input.
type Prompter interface {
	ReadLine(ctx context.Context) (string, error)
}

// SortRequest describes one sort run.
type SortRequest struct {
	InputPath  string `json:"input_path"  validate:"required"`
	OutputPath string `json:"output_path" validate:"required"`
	// OrderInput pre-supplies the direction ("A" or "D"). Empty means ask the
	// Prompter. Unrecognized values fall back to ascending with a warning.
	OrderInput string `json:"order_input"`
}

// SortResult describes a completed run.
type SortResult struct {
	RunID      uuid.UUID
	Order      models.Order
	Names      []models.Name
	OutputPath string
}

// SortService runs the read → parse → choose order → sort → print → write
// workflow. Every stage either completes or aborts the run; nothing is
// retried and nothing is written unless every line parsed.
type SortService struct {
	source   repositories.NameSource
	sink     repositories.NameSink
	prompter Prompter
	out      io.Writer
	log      logger.Logger
	tracer   trace.Tracer
	metrics  *sortMetrics
}

// NewSortService returns a SortService wired with the given collaborators.
// out receives the prompt, warnings and the sorted names.
func NewSortService(
	source repositories.NameSource,
	sink repositories.NameSink,
	prompter Prompter,
	out io.Writer,
	log logger.Logger,
) *SortService {
	return &SortService{
		source:   source,
		sink:     sink,
		prompter: prompter,
		out:      out,
		log:      log,
		tracer:   otel.Tracer(instrumentationName),
		metrics:  newSortMetrics(otel.Meter(instrumentationName), log),
	}
}

// Sort executes one run. The returned error wraps one of the domain
// sentinels (ErrNotFound, ErrEmpty, ErrInvalidFormat, ErrWrite) for expected
// failures. When writing fails the sorted names have already been printed.
func (s *SortService) Sort(ctx context.Context, req SortRequest) (res *SortResult, err error) {
	runID := uuid.New()
	ctx = logger.ContextWithRunID(ctx, runID.String())

	ctx, span := s.tracer.Start(ctx, "names.sort", trace.WithAttributes(
		attribute.String("run.id", runID.String()),
	))
	defer func() {
		outcome := "ok"
		if err != nil {
			outcome = "error"
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		s.metrics.runs.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
		span.End()
	}()

	if err := pkgvalidator.Validate(req); err != nil {
		return nil, fmt.Errorf("invalid sort request: %s", pkgvalidator.Summary(err))
	}

	lines, err := s.read(ctx, req.InputPath)
	if err != nil {
		return nil, err
	}

	names, err := s.parseAll(ctx, lines)
	if err != nil {
		return nil, err
	}

	order, err := s.chooseOrder(ctx, req.OrderInput)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("sort.order", order.String()))

	s.sort(ctx, names, order)

	rendered := render(names)
	if err := s.print(rendered); err != nil {
		return nil, err
	}

	if err := s.write(ctx, req.OutputPath, rendered); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "names sorted",
		"count", len(names),
		"order", order.String(),
		"output", req.OutputPath,
	)

	return &SortResult{
		RunID:      runID,
		Order:      order,
		Names:      names,
		OutputPath: req.OutputPath,
	}, nil
}

func (s *SortService) read(ctx context.Context, path string) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "names.read")
	defer span.End()

	lines, err := s.source.ReadLines(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("read names: %w", err)
	}
	s.metrics.linesRead.Add(ctx, int64(len(lines)))
	s.log.DebugContext(ctx, "input read", "path", path, "lines", len(lines))
	return lines, nil
}

// parseAll is all-or-nothing: the first malformed line aborts the batch.
func (s *SortService) parseAll(ctx context.Context, lines []string) ([]models.Name, error) {
	_, span := s.tracer.Start(ctx, "names.parse")
	defer span.End()

	names := make([]models.Name, 0, len(lines))
	for i, line := range lines {
		name, err := models.ParseName(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		if err := domainsvcs.ValidateName(name); err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		names = append(names, name)
	}
	return names, nil
}

// chooseOrder uses preset when given, otherwise asks the Prompter. Any value
// other than A or D, including a failed or empty read, means ascending.
func (s *SortService) chooseOrder(ctx context.Context, preset string) (models.Order, error) {
	input := preset
	if input == "" {
		if _, err := fmt.Fprintln(s.out, msgPrompt); err != nil {
			return models.Ascending, fmt.Errorf("write prompt: %w", err)
		}
		line, err := s.prompter.ReadLine(ctx)
		if err != nil {
			s.log.DebugContext(ctx, "no order input", "error", err)
		}
		input = line
	}

	order, ok := models.ParseOrder(input)
	if !ok {
		s.log.WarnContext(ctx, "unrecognized order input, using ascending", "input", input)
		if _, err := fmt.Fprintln(s.out, msgInvalidOrder); err != nil {
			return models.Ascending, fmt.Errorf("write warning: %w", err)
		}
	}
	return order, nil
}

func (s *SortService) sort(ctx context.Context, names []models.Name, order models.Order) {
	_, span := s.tracer.Start(ctx, "names.order", trace.WithAttributes(
		attribute.Int("names.count", len(names)),
	))
	defer span.End()

	domainsvcs.SortNames(names, order)
}

func (s *SortService) print(rendered []string) error {
	if _, err := fmt.Fprintln(s.out, msgSortedHeader); err != nil {
		return fmt.Errorf("print names: %w", err)
	}
	for _, line := range rendered {
		if _, err := fmt.Fprintln(s.out, line); err != nil {
			return fmt.Errorf("print names: %w", err)
		}
	}
	return nil
}

func (s *SortService) write(ctx context.Context, path string, rendered []string) error {
	ctx, span := s.tracer.Start(ctx, "names.write")
	defer span.End()

	if err := s.sink.WriteLines(ctx, path, rendered); err != nil {
		return fmt.Errorf("write sorted names to %s: %w", path, err)
	}
	s.metrics.namesWritten.Add(ctx, int64(len(rendered)))

	if _, err := fmt.Fprintf(s.out, msgWrittenTo, path); err != nil {
		return fmt.Errorf("print confirmation: %w", err)
	}
	return nil
}

func render(names []models.Name) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = n.String()
	}
	return out
}
