package recommendation

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dietpartner/v2/internal/domain/diet"
	apperrors "github.com/dietpartner/v2/pkg/errors"
	"github.com/dietpartner/v2/pkg/healthcheck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"
)

// MockBackend is a mock implementation of outbound.RecommendationBackend
type MockBackend struct {
	mock.Mock
}

func (m *MockBackend) Recommend(ctx context.Context, req diet.RecommendationRequest) (*diet.RecommendationDocument, error) {
	args := m.Called(ctx, req)
	doc, _ := args.Get(0).(*diet.RecommendationDocument)
	return doc, args.Error(1)
}

func (m *MockBackend) HealthCheck(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockBackend) BaseURL() string {
	return "http://backend.test"
}

// panickingGenerator panics for every profile whose text contains trigger
type panickingGenerator struct {
	next    DocumentGenerator
	trigger string
}

func (g panickingGenerator) Generate(profile diet.SymptomProfile, rng Picker) (diet.RecommendationDocument, error) {
	if strings.Contains(profile.Text(), g.trigger) {
		panic("template table corrupted")
	}
	return g.next.Generate(profile, rng)
}

type failingGenerator struct{}

func (failingGenerator) Generate(diet.SymptomProfile, Picker) (diet.RecommendationDocument, error) {
	return diet.RecommendationDocument{}, ErrEmptyMealPlan
}

type recordingRecorder struct {
	mu       sync.Mutex
	tiers    []diet.Tier
	useCases []string
	outcomes []string
}

func (r *recordingRecorder) RecordTier(tier diet.Tier) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tiers = append(r.tiers, tier)
}

func (r *recordingRecorder) RecordUseCase(useCase string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.useCases = append(r.useCases, useCase)
}

func (r *recordingRecorder) RecordRemoteCall(outcome string, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcomes = append(r.outcomes, outcome)
}

type ServiceTestSuite struct {
	suite.Suite
	kb       *KnowledgeBase
	backend  *MockBackend
	recorder *recordingRecorder
}

func (s *ServiceTestSuite) SetupTest() {
	s.kb = NewKnowledgeBase()
	s.backend = new(MockBackend)
	s.recorder = &recordingRecorder{}
}

func (s *ServiceTestSuite) newService(generator DocumentGenerator, opts ...Option) *Service {
	opts = append([]Option{
		WithRecorder(s.recorder),
		WithSeedSource(FixedSeed(17)),
		WithClock(fixedClock),
	}, opts...)
	return NewService(s.backend, generator, s.kb, Config{Mode: "test"}, zaptest.NewLogger(s.T()), opts...)
}

func (s *ServiceTestSuite) request(text string, allergies ...string) diet.RecommendationRequest {
	profile, err := diet.NewSymptomProfile(text, allergies)
	s.Require().NoError(err)
	return diet.RecommendationRequest{Profile: profile}
}

func (s *ServiceTestSuite) TestConnected() {
	// Arrange
	remote := &diet.RecommendationDocument{
		NarrativeMarkdown: "# Remote plan",
		UseCase:           "Cardiovascular Health",
		SafetyScore:       92,
		MealPlan:          diet.MealPlan{Breakfast: []string{"Oats"}},
	}
	s.backend.On("Recommend", mock.Anything, mock.Anything).Return(remote, nil).Once()
	svc := s.newService(NewLocalGenerator(s.kb, fixedClock))

	// Act
	env := svc.Recommend(context.Background(), s.request("heart palpitations at night", "dairy"))

	// Assert
	s.Equal(diet.TierConnected, env.BackendStatus)
	s.Equal("# Remote plan", env.NarrativeMarkdown)
	s.Equal(92, env.SafetyScore)
	s.Equal(LocalConfidence, env.Confidence)
	s.Len(env.ID, 8)
	s.Equal(fixedNow, env.Timestamp)
	s.Equal(diet.DocumentVersion, env.Version)
	s.Len(env.Sources, 4)
	s.Equal([]string{"Dairy [Filtered by AI backend - verify ingredients manually]"}, env.AllergyMasked)
	s.NotNil(env.MealPlan.Lunch)
	s.Equal([]string{OutcomeSuccess}, s.recorder.outcomes)
	s.Equal([]diet.Tier{diet.TierConnected}, s.recorder.tiers)
	s.backend.AssertExpectations(s.T())
}

func (s *ServiceTestSuite) TestConnectedClearsMaskWithoutAllergies() {
	remote := &diet.RecommendationDocument{
		NarrativeMarkdown: "# Remote plan",
		AllergyMasked:     []string{"Milk recommendations [Removed]"},
	}
	s.backend.On("Recommend", mock.Anything, mock.Anything).Return(remote, nil).Once()
	svc := s.newService(NewLocalGenerator(s.kb, fixedClock))

	env := svc.Recommend(context.Background(), s.request("just want to eat better"))

	s.Equal(diet.TierConnected, env.BackendStatus)
	s.NotNil(env.AllergyMasked)
	s.Empty(env.AllergyMasked)
	s.Equal(SafetyScoreNoAllergies, env.SafetyScore)
}

func (s *ServiceTestSuite) TestRemoteFailuresFallBackToOffline() {
	failures := map[string]error{
		"unavailable": apperrors.NewBackendUnavailableError("backend", errors.New("connection refused")),
		"malformed":   apperrors.NewBackendMalformedError("backend", errors.New("unexpected content type text/html")),
		"plain error": errors.New("boom"),
	}

	for name, failure := range failures {
		s.Run(name, func() {
			backend := new(MockBackend)
			backend.On("Recommend", mock.Anything, mock.Anything).Return(nil, failure).Once()
			svc := NewService(backend, NewLocalGenerator(s.kb, fixedClock), s.kb, Config{}, zaptest.NewLogger(s.T()),
				WithSeedSource(FixedSeed(3)))

			env := svc.Recommend(context.Background(), s.request("I have high blood pressure and diabetes", "dairy"))

			s.Equal(diet.TierOffline, env.BackendStatus)
			s.Equal("Diabetes Management", env.UseCase)
			s.NotEmpty(env.AllergyMasked)
			s.NotEmpty(env.Message)
			for _, item := range env.MealPlan.Breakfast {
				s.NotRegexp(termPattern("milk"), item)
			}
		})
	}
}

func (s *ServiceTestSuite) TestRemoteNilDocumentIsMalformed() {
	s.backend.On("Recommend", mock.Anything, mock.Anything).Return(nil, nil).Once()
	svc := s.newService(NewLocalGenerator(s.kb, fixedClock))

	env := svc.Recommend(context.Background(), s.request("tired all afternoon"))

	s.Equal(diet.TierOffline, env.BackendStatus)
	s.Equal(diet.EnergyVitality.String(), env.UseCase)
}

func (s *ServiceTestSuite) TestRemoteTimeoutCancelsCall() {
	var sawDeadline bool
	s.backend.On("Recommend", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			ctx := args.Get(0).(context.Context)
			_, sawDeadline = ctx.Deadline()
			<-ctx.Done()
		}).
		Return(nil, context.DeadlineExceeded).Once()
	svc := NewService(s.backend, NewLocalGenerator(s.kb, fixedClock), s.kb,
		Config{RemoteTimeout: 30 * time.Millisecond}, zaptest.NewLogger(s.T()))

	start := time.Now()
	env := svc.Recommend(context.Background(), s.request("constant bloating and reflux"))

	s.True(sawDeadline)
	s.Less(time.Since(start), 5*time.Second)
	s.Equal(diet.TierOffline, env.BackendStatus)
	s.Equal(diet.DigestiveHealth.String(), env.UseCase)
}

func (s *ServiceTestSuite) TestLocalPanicFallsBackToErrorTier() {
	s.backend.On("Recommend", mock.Anything, mock.Anything).Return(nil, errors.New("offline")).Once()
	generator := panickingGenerator{next: NewLocalGenerator(s.kb, fixedClock), trigger: "arthritis"}
	svc := s.newService(generator)

	env := svc.Recommend(context.Background(), s.request("arthritis flares in winter", "nuts", "kiwi"))

	s.Equal(diet.TierError, env.BackendStatus)
	s.Equal(diet.GeneralWellness.String(), env.UseCase)
	s.Equal(SafetyScoreWithAllergies, env.SafetyScore)
	s.Equal([]string{
		"Nuts [Not screened - generic plan, verify ingredients manually]",
		"Kiwi [Not screened - generic plan, verify ingredients manually]",
	}, env.AllergyMasked)
	s.NotEmpty(env.NarrativeMarkdown)
}

func (s *ServiceTestSuite) TestAlwaysFailingGeneratorReachesStaticTier() {
	s.backend.On("Recommend", mock.Anything, mock.Anything).Return(nil, errors.New("offline")).Once()
	svc := s.newService(failingGenerator{})

	env := svc.Recommend(context.Background(), s.request("fatigue and low energy", "eggs"))

	s.Equal(diet.TierEmergency, env.BackendStatus)
	s.Equal(diet.GeneralWellness.String(), env.UseCase)
	s.NotEmpty(env.AllergyMasked)
	s.Equal(SafetyScoreWithAllergies, env.SafetyScore)
	s.NotEmpty(env.MealPlan.Breakfast)
	s.Equal([]diet.Tier{diet.TierEmergency}, s.recorder.tiers)
}

func (s *ServiceTestSuite) TestStaticDocumentIsAllergenFree() {
	doc := staticDocument(fixedNow, nil, s.kb.Sources())

	for _, slot := range diet.MealSlots() {
		for _, item := range doc.MealPlan.Items(slot) {
			assertNoTermSurvives(s.T(), s.kb, item, s.kb.Allergens())
		}
	}
	s.Empty(doc.AllergyMasked)
	s.Equal(SafetyScoreNoAllergies, doc.SafetyScore)
}

func (s *ServiceTestSuite) TestOpenCircuitSkipsRemote() {
	breaker := healthcheck.NewCircuitBreaker("backend", healthcheck.CircuitBreakerConfig{
		FailureThreshold: 1,
		Timeout:          time.Hour,
	})
	s.backend.On("Recommend", mock.Anything, mock.Anything).Return(nil, errors.New("offline")).Once()
	svc := s.newService(NewLocalGenerator(s.kb, fixedClock), WithBreaker(breaker))

	first := svc.Recommend(context.Background(), s.request("joint pain every morning"))
	second := svc.Recommend(context.Background(), s.request("joint pain every morning"))

	s.Equal(diet.TierOffline, first.BackendStatus)
	s.Equal(diet.TierOffline, second.BackendStatus)
	s.Equal(healthcheck.StateOpen, breaker.State())
	s.Equal([]string{OutcomeFailure, OutcomeRejected}, s.recorder.outcomes)
	s.backend.AssertNumberOfCalls(s.T(), "Recommend", 1)
}

func (s *ServiceTestSuite) TestEnvelopeEncodesTierFields() {
	s.backend.On("Recommend", mock.Anything, mock.Anything).Return(nil, errors.New("offline")).Once()
	svc := s.newService(NewLocalGenerator(s.kb, fixedClock))

	env := svc.Recommend(context.Background(), s.request("need to lose some weight"))
	data, err := json.Marshal(env)
	s.Require().NoError(err)

	var body map[string]interface{}
	s.Require().NoError(json.Unmarshal(data, &body))
	s.Equal("offline", body["_backendStatus"])
	s.Equal("Weight Management", body["useCase"])
	s.Contains(body, "narrativeMarkdown")
	s.Contains(body, "mealPlan")
}

func (s *ServiceTestSuite) TestHealth() {
	s.backend.On("HealthCheck", mock.Anything).Return(nil).Once()
	s.backend.On("HealthCheck", mock.Anything).Return(errors.New("refused")).Once()
	svc := s.newService(NewLocalGenerator(s.kb, fixedClock))

	healthy := svc.Health(context.Background())
	offline := svc.Health(context.Background())

	s.Equal(diet.HealthHealthy, healthy.Status)
	s.Equal(diet.HealthBackendOffline, offline.Status)
	s.Equal("test", offline.Frontend.Mode)
	s.Equal(diet.DocumentVersion, offline.Frontend.Version)
	s.Equal(fixedNow, offline.Frontend.Timestamp)
}

func (s *ServiceTestSuite) TestHealthBoundsProbe() {
	s.backend.On("HealthCheck", mock.Anything).
		Run(func(args mock.Arguments) { <-args.Get(0).(context.Context).Done() }).
		Return(context.DeadlineExceeded).Once()
	svc := NewService(s.backend, NewLocalGenerator(s.kb, fixedClock), s.kb,
		Config{HealthTimeout: 20 * time.Millisecond}, zaptest.NewLogger(s.T()))

	report := svc.Health(context.Background())

	s.Equal(diet.HealthBackendOffline, report.Status)
}

func (s *ServiceTestSuite) TestSources() {
	svc := s.newService(NewLocalGenerator(s.kb, fixedClock))

	catalog := svc.Sources()

	s.Equal(4, catalog.TotalSources)
	s.Equal([]string{"pubmed", "usda", "eatright", "harvard"}, catalog.SourceTypes)
}

func (s *ServiceTestSuite) TestStatus() {
	s.backend.On("HealthCheck", mock.Anything).Return(errors.New("refused"))
	breaker := healthcheck.NewCircuitBreaker("backend", healthcheck.DefaultCircuitBreakerConfig())
	svc := s.newService(NewLocalGenerator(s.kb, fixedClock), WithBreaker(breaker))

	report := svc.Status(context.Background())

	s.Equal("http://backend.test", report.Backend.URL)
	s.Equal(diet.HealthBackendOffline, report.Backend.Status)
	s.Equal("refused", report.Backend.Error)
	s.Equal("backend", report.Backend.Breaker)
	s.Equal("closed", report.Backend.Circuit)
	s.True(report.Components["knowledge"].Ready)
	s.Equal(10, report.Components["allergyFilter"].Details["allergens"])
	s.Contains(report.Capabilities, "offline_fallback")
}

func (s *ServiceTestSuite) TestStatusWithoutBreaker() {
	s.backend.On("HealthCheck", mock.Anything).Return(nil)
	svc := s.newService(NewLocalGenerator(s.kb, fixedClock))

	report := svc.Status(context.Background())

	s.Equal(diet.HealthHealthy, report.Backend.Status)
	s.Empty(report.Backend.Breaker)
	s.Equal("disabled", report.Backend.Circuit)
}

func (s *ServiceTestSuite) TestStatusReusesProbeWithinCacheTTL() {
	s.backend.On("HealthCheck", mock.Anything).Return(nil)
	svc := NewService(s.backend, NewLocalGenerator(s.kb, fixedClock), s.kb,
		Config{StatusCacheTTL: time.Minute}, zaptest.NewLogger(s.T()))

	svc.Status(context.Background())
	svc.Status(context.Background())

	s.backend.AssertNumberOfCalls(s.T(), "HealthCheck", 1)
}

func (s *ServiceTestSuite) TestStatusProbesAgainAfterCacheTTL() {
	s.backend.On("HealthCheck", mock.Anything).Return(nil)
	svc := NewService(s.backend, NewLocalGenerator(s.kb, fixedClock), s.kb,
		Config{StatusCacheTTL: time.Nanosecond}, zaptest.NewLogger(s.T()))

	svc.Status(context.Background())
	time.Sleep(time.Millisecond)
	svc.Status(context.Background())

	s.backend.AssertNumberOfCalls(s.T(), "HealthCheck", 2)
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func TestService_ConcurrentRequestsAreIndependent(t *testing.T) {
	kb := NewKnowledgeBase()
	backend := new(MockBackend)
	backend.On("Recommend", mock.Anything, mock.Anything).Return(nil, errors.New("offline"))
	svc := NewService(backend, NewLocalGenerator(kb, fixedClock), kb, Config{}, zaptest.NewLogger(t),
		WithSeedSource(FixedSeed(99)))
	profile, err := diet.NewSymptomProfile("blood sugar and insulin concerns", []string{"gluten"})
	require.NoError(t, err)

	results := make([]diet.ResponseEnvelope, 16)
	var wg sync.WaitGroup
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = svc.Recommend(context.Background(), diet.RecommendationRequest{Profile: profile})
		}(i)
	}
	wg.Wait()

	for _, env := range results[1:] {
		assert.Equal(t, results[0].MealPlan, env.MealPlan)
		assert.Equal(t, diet.TierOffline, env.BackendStatus)
	}
}
