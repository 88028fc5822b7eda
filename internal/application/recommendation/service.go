package recommendation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dietpartner/v2/internal/domain/diet"
	"github.com/dietpartner/v2/internal/ports/inbound"
	"github.com/dietpartner/v2/internal/ports/outbound"
	apperrors "github.com/dietpartner/v2/pkg/errors"
	"github.com/dietpartner/v2/pkg/healthcheck"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	DefaultRemoteTimeout  = 15 * time.Second
	DefaultHealthTimeout  = 5 * time.Second
	DefaultStatusCacheTTL = 5 * time.Second

	// emergencySymptoms drives the generic plan of the error tier. It matches
	// no category keyword and passes profile validation.
	emergencySymptoms = "general balanced nutrition guidance"

	tracerName = "github.com/dietpartner/v2/internal/application/recommendation"
)

// Remote call outcomes reported to the Recorder
const (
	OutcomeSuccess  = "success"
	OutcomeFailure  = "failure"
	OutcomeRejected = "circuit_open"
)

// Recorder receives the orchestrator's operational signals
type Recorder interface {
	RecordTier(tier diet.Tier)
	RecordUseCase(useCase string)
	RecordRemoteCall(outcome string, duration time.Duration)
}

type nopRecorder struct{}

func (nopRecorder) RecordTier(diet.Tier)                   {}
func (nopRecorder) RecordUseCase(string)                   {}
func (nopRecorder) RecordRemoteCall(string, time.Duration) {}

// Config holds the orchestrator's settings
type Config struct {
	RemoteTimeout  time.Duration
	HealthTimeout  time.Duration
	StatusCacheTTL time.Duration
	Version        string
	Mode           string
}

// Option customises a Service
type Option func(*Service)

// WithBreaker guards the remote call with a circuit breaker
func WithBreaker(cb *healthcheck.CircuitBreaker) Option {
	return func(s *Service) { s.breaker = cb }
}

// WithRecorder sets the metrics sink
func WithRecorder(r Recorder) Option {
	return func(s *Service) { s.recorder = r }
}

// WithTracer overrides the global tracer
func WithTracer(t trace.Tracer) Option {
	return func(s *Service) { s.tracer = t }
}

// WithSeedSource sets where per-request random seeds come from
func WithSeedSource(seeds SeedSource) Option {
	return func(s *Service) { s.seeds = seeds }
}

// WithClock overrides the time source
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// Service is the resilience orchestrator. Every request walks a fixed state
// machine and ends with an envelope; failures only lower the tier.
type Service struct {
	backend   outbound.RecommendationBackend
	generator DocumentGenerator
	kb        *KnowledgeBase
	breaker   *healthcheck.CircuitBreaker
	probes    *healthcheck.HealthCheck
	recorder  Recorder
	tracer    trace.Tracer
	seeds     SeedSource
	now       func() time.Time
	cfg       Config
	logger    *zap.Logger
}

var _ inbound.RecommendationService = (*Service)(nil)

// NewService creates the orchestrator
func NewService(
	backend outbound.RecommendationBackend,
	generator DocumentGenerator,
	kb *KnowledgeBase,
	cfg Config,
	logger *zap.Logger,
	opts ...Option,
) *Service {
	if cfg.RemoteTimeout <= 0 {
		cfg.RemoteTimeout = DefaultRemoteTimeout
	}
	if cfg.HealthTimeout <= 0 {
		cfg.HealthTimeout = DefaultHealthTimeout
	}
	if cfg.StatusCacheTTL <= 0 {
		cfg.StatusCacheTTL = DefaultStatusCacheTTL
	}
	if cfg.Version == "" {
		cfg.Version = diet.DocumentVersion
	}

	s := &Service{
		backend:   backend,
		generator: generator,
		kb:        kb,
		recorder:  nopRecorder{},
		tracer:    otel.Tracer(tracerName),
		seeds:     TimeSeed(),
		now:       time.Now,
		cfg:       cfg,
		logger:    logger.Named("recommendation"),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.probes = healthcheck.New(cfg.Version, s.logger)
	s.probes.SetTimeout(cfg.HealthTimeout)
	s.probes.SetCacheTTL(cfg.StatusCacheTTL)
	s.probes.Register("backend", healthcheck.NewPingChecker(backend.HealthCheck))
	s.probes.Register("knowledge_base", healthcheck.NewCustomChecker(func(context.Context) (healthcheck.Status, string, interface{}) {
		stats := kb.Stats()
		if stats.Conditions == 0 || stats.Allergens == 0 {
			return healthcheck.StatusUnhealthy, "knowledge tables are empty", stats
		}
		return healthcheck.StatusHealthy, "", stats
	}))

	return s
}

type state int

const (
	stateStart state = iota
	stateAttemptRemote
	stateConnected
	stateAttemptLocal
	stateLocalSucceeded
	stateAttemptEmergency
	stateStatic
	stateRespond
)

func (s state) String() string {
	switch s {
	case stateStart:
		return "start"
	case stateAttemptRemote:
		return "attempt_remote"
	case stateConnected:
		return "connected"
	case stateAttemptLocal:
		return "attempt_local"
	case stateLocalSucceeded:
		return "local_succeeded"
	case stateAttemptEmergency:
		return "attempt_emergency"
	case stateStatic:
		return "static"
	case stateRespond:
		return "respond"
	}
	return "unknown"
}

// run carries one request through the state machine
type run struct {
	req     diet.RecommendationRequest
	rng     Picker
	doc     diet.RecommendationDocument
	tier    diet.Tier
	message string
	cause   error
}

// Recommend produces a response envelope for a validated request
func (s *Service) Recommend(ctx context.Context, req diet.RecommendationRequest) diet.ResponseEnvelope {
	ctx, span := s.tracer.Start(ctx, "recommendation.Recommend")
	defer span.End()

	r := &run{req: req, rng: NewPicker(s.seeds())}
	for st := stateStart; st != stateRespond; {
		st = s.step(ctx, st, r)
	}

	span.SetAttributes(
		attribute.String("recommendation.tier", string(r.tier)),
		attribute.String("recommendation.use_case", r.doc.UseCase),
	)
	s.recorder.RecordTier(r.tier)
	s.recorder.RecordUseCase(r.doc.UseCase)

	return diet.ResponseEnvelope{
		RecommendationDocument: r.doc,
		BackendStatus:          r.tier,
		Message:                r.message,
	}
}

func (s *Service) step(ctx context.Context, st state, r *run) state {
	ctx, span := s.tracer.Start(ctx, "recommendation."+st.String())
	defer span.End()

	switch st {
	case stateStart:
		return stateAttemptRemote

	case stateAttemptRemote:
		doc, err := s.attemptRemote(ctx, r.req)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "remote attempt failed")
			r.cause = err
			s.logger.Warn("Remote recommendation failed, using local generator",
				zap.Error(err),
				zap.String("error_code", string(apperrors.GetCode(err))),
				zap.Int("symptom_length", len(r.req.Profile.Text())),
			)
			return stateAttemptLocal
		}
		r.doc = *doc
		return stateConnected

	case stateConnected:
		r.doc = s.normalizeRemote(r.doc, r.req.Profile.Allergies())
		r.tier = diet.TierConnected
		r.message = "Recommendation generated by the AI backend"
		return stateRespond

	case stateAttemptLocal:
		doc, err := s.generateSafely(r.req.Profile, r.rng)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "local generation failed")
			r.cause = err
			s.logger.Error("Local generation failed, using emergency plan", zap.Error(err))
			return stateAttemptEmergency
		}
		r.doc = doc
		return stateLocalSucceeded

	case stateLocalSucceeded:
		r.tier = diet.TierOffline
		r.message = "AI backend unavailable; recommendation generated locally"
		s.logger.Warn("Served local recommendation",
			zap.String("tier", string(r.tier)),
			zap.String("use_case", r.doc.UseCase),
			zap.NamedError("cause", r.cause),
		)
		return stateRespond

	case stateAttemptEmergency:
		doc, err := s.emergencyDocument(r.req.Profile.Allergies(), r.rng)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "emergency generation failed")
			s.logger.Error("Emergency generation failed, using static plan", zap.Error(err))
			return stateStatic
		}
		r.doc = doc
		r.tier = diet.TierError
		r.message = "Personalised analysis failed; showing general guidance"
		s.logger.Error("Served emergency recommendation", zap.String("tier", string(r.tier)))
		return stateRespond

	case stateStatic:
		r.doc = staticDocument(s.now().UTC(), r.req.Profile.Allergies(), s.kb.Sources())
		r.tier = diet.TierEmergency
		r.message = "Recommendation service degraded; showing minimal safe guidance"
		s.logger.Error("Served static recommendation", zap.String("tier", string(r.tier)))
		return stateRespond
	}

	return stateRespond
}

// attemptRemote performs the single bounded remote call. The deadline
// cancels the underlying request.
func (s *Service) attemptRemote(ctx context.Context, req diet.RecommendationRequest) (*diet.RecommendationDocument, error) {
	if s.breaker != nil {
		if err := s.breaker.Allow(); err != nil {
			s.recorder.RecordRemoteCall(OutcomeRejected, 0)
			return nil, apperrors.NewBackendUnavailableError(s.backend.BaseURL(), err)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.RemoteTimeout)
	defer cancel()

	start := time.Now()
	doc, err := s.backend.Recommend(ctx, req)
	if err == nil && doc == nil {
		err = apperrors.NewBackendMalformedError(s.backend.BaseURL(), errors.New("empty document"))
	}
	elapsed := time.Since(start)

	if err != nil {
		s.recorder.RecordRemoteCall(OutcomeFailure, elapsed)
		if s.breaker != nil {
			s.breaker.Failure()
		}
		var appErr *apperrors.AppError
		if !errors.As(err, &appErr) {
			err = apperrors.NewBackendUnavailableError(s.backend.BaseURL(), err)
		}
		return nil, err
	}

	s.recorder.RecordRemoteCall(OutcomeSuccess, elapsed)
	if s.breaker != nil {
		s.breaker.Success()
	}
	return doc, nil
}

// generateSafely runs the local generator and turns a panic into an error
func (s *Service) generateSafely(profile diet.SymptomProfile, rng Picker) (doc diet.RecommendationDocument, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = apperrors.NewLocalGenerationError(fmt.Errorf("panic: %v", rec))
		}
	}()

	doc, err = s.generator.Generate(profile, rng)
	if err != nil {
		return diet.RecommendationDocument{}, apperrors.NewLocalGenerationError(err)
	}
	return doc, nil
}

// emergencyDocument generates the generic plan. The declared allergies are
// not screened on this path, so each one gets a caution entry instead.
func (s *Service) emergencyDocument(allergies []string, rng Picker) (diet.RecommendationDocument, error) {
	profile, err := diet.NewSymptomProfile(emergencySymptoms, nil)
	if err != nil {
		return diet.RecommendationDocument{}, err
	}
	doc, err := s.generateSafely(profile, rng)
	if err != nil {
		return diet.RecommendationDocument{}, err
	}
	doc.AllergyMasked = cautionEntries(allergies, "Not screened - generic plan, verify ingredients manually")
	doc.SafetyScore = SafetyScore(allergies)
	return doc, nil
}

// normalizeRemote fills the fields a remote document may leave out
func (s *Service) normalizeRemote(doc diet.RecommendationDocument, allergies []string) diet.RecommendationDocument {
	if doc.ID == "" {
		doc.ID = NewRecommendationID()
	}
	if doc.Timestamp.IsZero() {
		doc.Timestamp = s.now().UTC()
	}
	if doc.Version == "" {
		doc.Version = diet.DocumentVersion
	}
	if doc.AnalysisType == "" {
		doc.AnalysisType = diet.AnalysisType
	}
	if doc.UseCase == "" {
		doc.UseCase = diet.GeneralWellness.String()
	}
	if len(doc.Sources) == 0 {
		doc.Sources = s.kb.Sources()
	}
	if doc.SafetyScore <= 0 || doc.SafetyScore > 100 {
		doc.SafetyScore = SafetyScore(allergies)
	}
	if doc.Confidence <= 0 || doc.Confidence > 100 {
		doc.Confidence = LocalConfidence
	}

	switch {
	case len(allergies) == 0:
		doc.AllergyMasked = []string{}
	case len(doc.AllergyMasked) == 0:
		doc.AllergyMasked = cautionEntries(allergies, "Filtered by AI backend - verify ingredients manually")
	}

	doc.Sources = nonNilSources(doc.Sources)
	doc.NutritionalHighlights = nonNil(doc.NutritionalHighlights)
	doc.SupplementSuggestions = nonNil(doc.SupplementSuggestions)
	doc.LifestyleRecommendations = nonNil(doc.LifestyleRecommendations)
	doc.Timeline = diet.Timeline{
		Immediate: nonNil(doc.Timeline.Immediate),
		ShortTerm: nonNil(doc.Timeline.ShortTerm),
		LongTerm:  nonNil(doc.Timeline.LongTerm),
	}
	for _, slot := range diet.MealSlots() {
		doc.MealPlan = doc.MealPlan.WithItems(slot, nonNil(doc.MealPlan.Items(slot)))
	}
	return doc
}

func cautionEntries(allergies []string, note string) []string {
	entries := make([]string, 0, len(allergies))
	for _, a := range allergies {
		entries = append(entries, fmt.Sprintf("%s [%s]", titleCase(a), note))
	}
	return entries
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}

func nonNilSources(items []diet.Source) []diet.Source {
	if items == nil {
		return []diet.Source{}
	}
	return items
}

// Health probes the remote service within the health timeout
func (s *Service) Health(ctx context.Context) diet.HealthReport {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.HealthTimeout)
	defer cancel()

	status := diet.HealthHealthy
	if err := s.backend.HealthCheck(ctx); err != nil {
		s.logger.Debug("Backend health probe failed", zap.Error(err))
		status = diet.HealthBackendOffline
	}

	return diet.HealthReport{
		Status: status,
		Frontend: diet.FrontendInfo{
			Timestamp: s.now().UTC(),
			Version:   s.cfg.Version,
			Mode:      s.cfg.Mode,
		},
	}
}

// Sources lists the local reference catalog
func (s *Service) Sources() inbound.SourceCatalog {
	sources := s.kb.Sources()
	var types []string
	seen := make(map[string]struct{})
	for _, src := range sources {
		if _, ok := seen[src.Type]; ok {
			continue
		}
		seen[src.Type] = struct{}{}
		types = append(types, src.Type)
	}
	return inbound.SourceCatalog{
		Sources:      sources,
		SourceTypes:  nonNil(types),
		TotalSources: len(sources),
	}
}

// Status reports the backend and local component state
func (s *Service) Status(ctx context.Context) inbound.StatusReport {
	result := s.probes.Check(ctx)

	backend := inbound.BackendStatus{
		URL:     s.backend.BaseURL(),
		Status:  diet.HealthHealthy,
		Circuit: "disabled",
	}
	if check, ok := result.Find("backend"); ok && check.Status != healthcheck.StatusHealthy {
		backend.Status = diet.HealthBackendOffline
		backend.Error = check.Message
	}
	if s.breaker != nil {
		backend.Breaker = s.breaker.Name()
		backend.Circuit = s.breaker.State().String()
	}

	stats := s.kb.Stats()
	return inbound.StatusReport{
		Timestamp: s.now().UTC(),
		Version:   s.cfg.Version,
		Mode:      s.cfg.Mode,
		Backend:   backend,
		Components: map[string]inbound.ComponentStatus{
			"knowledge": {
				Ready: stats.Conditions > 0,
				Details: map[string]int{
					"conditions":   stats.Conditions,
					"placeholders": stats.Placeholders,
					"sources":      stats.Sources,
				},
			},
			"allergyFilter": {
				Ready:   stats.Allergens > 0,
				Details: map[string]int{"allergens": stats.Allergens},
			},
		},
		Capabilities: []string{
			"condition_classification",
			"template_meal_planning",
			"allergy_substitution",
			"remote_recommendations",
			"offline_fallback",
		},
	}
}
