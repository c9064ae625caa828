package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/reelcraft/spindle/internal/models"
	"github.com/reelcraft/spindle/internal/random"
	"github.com/reelcraft/spindle/internal/renderer"
	"github.com/reelcraft/spindle/internal/repositories/spin_history"
	"github.com/reelcraft/spindle/internal/services/spin"
)

type HandlerTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	memory  *renderer.Memory
	service spin.Service
	server  *httptest.Server
}

func (s *HandlerTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	historyRepo, err := spin_history.NewRedis(&spin_history.Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)

	s.memory = renderer.NewMemory()

	// A huge stop delay unit keeps the reels spinning for the whole
	// test, so the dispatch gate is observable
	service, err := spin.New(&spin.Config{
		SegmentCount:  4,
		StopDelayUnit: time.Hour,
		Reels: []models.ReelConfig{
			{
				Items: []models.Item{
					{Position: 0, Weight: 1, Symbol: "cherry"},
					{Position: 100, Weight: 3, Symbol: "lemon"},
				},
			},
			{
				Items: []models.Item{
					{Position: 0, Weight: 2, Symbol: "bell"},
					{Position: 150, Weight: 2, Symbol: "seven"},
				},
			},
		},
		Renderer:    s.memory,
		Source:      random.New(&random.Config{Seed: 42}),
		HistoryRepo: historyRepo,
	})
	s.Require().NoError(err)
	s.service = service

	handler := NewHandler(HandlerDeps{
		Spin:    s.service,
		State:   s.memory,
		History: historyRepo,
	})
	s.server = httptest.NewServer(handler.Router())
}

func (s *HandlerTestSuite) TearDownTest() {
	s.server.Close()
	s.service.Close()
	s.client.Close()
	s.mr.Close()
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) postSpin() SpinResponse {
	resp, err := http.Post(s.server.URL+"/machine/spin", "application/json", nil)
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var payload SpinResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&payload))
	return payload
}

func (s *HandlerTestSuite) TestSpin() {
	payload := s.postSpin()

	s.True(payload.Dispatched)
	s.NotEmpty(payload.SpinID)
	s.Require().Len(payload.Reels, 2)
	s.Equal(0, payload.Reels[0].Reel)
	s.NotEmpty(payload.Reels[0].Symbol)
	s.GreaterOrEqual(payload.Reels[0].StopDelayMS, time.Hour.Milliseconds())
}

func (s *HandlerTestSuite) TestSpinWhileAnimatingIsDropped() {
	first := s.postSpin()
	s.True(first.Dispatched)

	second := s.postSpin()
	s.False(second.Dispatched)
	s.Empty(second.SpinID)
	s.Empty(second.Reels)
}

func (s *HandlerTestSuite) TestState() {
	s.postSpin()

	resp, err := http.Get(s.server.URL + "/machine/state")
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var payload StateResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&payload))

	s.Require().Len(payload.Reels, 2)
	for _, reel := range payload.Reels {
		s.Equal(string(models.ReelStateSpinning), reel.State)
		s.Len(reel.Offsets, 4)
	}
}

func (s *HandlerTestSuite) TestHistory() {
	dispatched := s.postSpin()

	resp, err := http.Get(s.server.URL + "/machine/history")
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var payload HistoryResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&payload))

	s.Require().Len(payload.Spins, 1)
	s.Equal(dispatched.SpinID, payload.Spins[0].SpinID)
	s.Len(payload.Spins[0].Reels, 2)
}

func (s *HandlerTestSuite) TestHistoryRejectsBadLimit() {
	resp, err := http.Get(s.server.URL + "/machine/history?limit=soon")
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Equal(http.StatusBadRequest, resp.StatusCode)
}
