package spin_history

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/reelcraft/spindle/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	// Create a Redis client connected to the miniredis server
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	// Create the repository
	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	// Set up test time
	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) spinAt(id string, at time.Time) *models.Spin {
	return &models.Spin{
		ID: id,
		Results: []models.ReelResult{
			{Reel: 0, Position: 0, Symbol: "cherry", StopDelay: time.Second},
			{Reel: 1, Position: 100, Symbol: "lemon", StopDelay: 3 * time.Second},
		},
		CreatedAt: at,
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetSpin() {
	spin := s.spinAt("test-spin-id", s.testNow)

	err := s.repo.SaveSpin(context.Background(), &SaveSpinInput{
		Spin: spin,
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetSpin(context.Background(), &GetSpinInput{
		SpinID: "test-spin-id",
	})
	s.Require().NoError(err)
	s.Require().NotNil(retrieved)

	s.Equal("test-spin-id", retrieved.ID)
	s.Require().Len(retrieved.Results, 2)
	s.Equal("cherry", retrieved.Results[0].Symbol)
	s.Equal(100, retrieved.Results[1].Position)
	s.Equal(3*time.Second, retrieved.Results[1].StopDelay)
	s.True(retrieved.CreatedAt.Equal(s.testNow))
}

func (s *RedisRepositoryTestSuite) TestGetSpinNotFound() {
	_, err := s.repo.GetSpin(context.Background(), &GetSpinInput{
		SpinID: "missing-spin-id",
	})
	s.Require().ErrorIs(err, ErrSpinNotFound)
}

func (s *RedisRepositoryTestSuite) TestSaveSpinRequiresID() {
	err := s.repo.SaveSpin(context.Background(), &SaveSpinInput{
		Spin: s.spinAt("", s.testNow),
	})
	s.Error(err)
}

func (s *RedisRepositoryTestSuite) TestGetRecentSpinsNewestFirst() {
	for i, id := range []string{"spin-a", "spin-b", "spin-c"} {
		spin := s.spinAt(id, s.testNow.Add(time.Duration(i)*time.Minute))
		err := s.repo.SaveSpin(context.Background(), &SaveSpinInput{Spin: spin})
		s.Require().NoError(err)
	}

	output, err := s.repo.GetRecentSpins(context.Background(), &GetRecentSpinsInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Spins, 3)

	s.Equal("spin-c", output.Spins[0].ID)
	s.Equal("spin-b", output.Spins[1].ID)
	s.Equal("spin-a", output.Spins[2].ID)
}

func (s *RedisRepositoryTestSuite) TestGetRecentSpinsHonorsLimit() {
	for i, id := range []string{"spin-a", "spin-b", "spin-c"} {
		spin := s.spinAt(id, s.testNow.Add(time.Duration(i)*time.Minute))
		err := s.repo.SaveSpin(context.Background(), &SaveSpinInput{Spin: spin})
		s.Require().NoError(err)
	}

	output, err := s.repo.GetRecentSpins(context.Background(), &GetRecentSpinsInput{
		Limit: 2,
	})
	s.Require().NoError(err)
	s.Require().Len(output.Spins, 2)
	s.Equal("spin-c", output.Spins[0].ID)
	s.Equal("spin-b", output.Spins[1].ID)
}
