package machine

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/reelcraft/spindle/internal/models"
	"github.com/reelcraft/spindle/internal/random"
	randomMocks "github.com/reelcraft/spindle/internal/random/mocks"
)

type SelectorTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockSource *randomMocks.MockSource

	testItems []models.Item
}

func (s *SelectorTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSource = randomMocks.NewMockSource(s.mockCtrl)

	s.testItems = []models.Item{
		{Position: 0, Weight: 1, Symbol: "cherry"},
		{Position: 100, Weight: 3, Symbol: "lemon"},
		{Position: 200, Weight: 2, Symbol: "seven"},
	}
}

func TestSelectorTestSuite(t *testing.T) {
	suite.Run(t, new(SelectorTestSuite))
}

func (s *SelectorTestSuite) TestEmptyStrip() {
	_, err := SelectWeighted(nil, s.mockSource)
	s.ErrorIs(err, ErrNoItems)
}

func (s *SelectorTestSuite) TestNegativeWeight() {
	items := []models.Item{
		{Position: 0, Weight: 2},
		{Position: 100, Weight: -1},
	}

	_, err := SelectWeighted(items, s.mockSource)
	s.ErrorIs(err, ErrInvalidWeight)
}

func (s *SelectorTestSuite) TestAllZeroWeights() {
	items := []models.Item{
		{Position: 0, Weight: 0},
		{Position: 100, Weight: 0},
	}

	_, err := SelectWeighted(items, s.mockSource)
	s.ErrorIs(err, ErrZeroTotalWeight)
}

func (s *SelectorTestSuite) TestZeroDrawSelectsFirstWeightedItem() {
	s.mockSource.EXPECT().Float64().Return(0.0)

	item, err := SelectWeighted(s.testItems, s.mockSource)
	s.Require().NoError(err)
	s.Equal(0, item.Position)
}

func (s *SelectorTestSuite) TestZeroDrawSkipsZeroWeightItems() {
	items := []models.Item{
		{Position: 0, Weight: 0},
		{Position: 100, Weight: 5},
	}

	s.mockSource.EXPECT().Float64().Return(0.0)

	item, err := SelectWeighted(items, s.mockSource)
	s.Require().NoError(err)
	s.Equal(100, item.Position)
}

func (s *SelectorTestSuite) TestDrawNearOneSelectsLastItem() {
	s.mockSource.EXPECT().Float64().Return(0.999999)

	item, err := SelectWeighted(s.testItems, s.mockSource)
	s.Require().NoError(err)
	s.Equal(200, item.Position)
}

func (s *SelectorTestSuite) TestCumulativeBoundaries() {
	// Total weight is 4: draws below 0.25 land on the first item,
	// the rest on the second.
	items := []models.Item{
		{Position: 0, Weight: 1},
		{Position: 100, Weight: 3},
	}

	s.mockSource.EXPECT().Float64().Return(0.9)

	item, err := SelectWeighted(items, s.mockSource)
	s.Require().NoError(err)
	s.Equal(100, item.Position)

	s.mockSource.EXPECT().Float64().Return(0.2)

	item, err = SelectWeighted(items, s.mockSource)
	s.Require().NoError(err)
	s.Equal(0, item.Position)
}

func (s *SelectorTestSuite) TestSeededSourceIsDeterministic() {
	first := make([]int, 0, 50)
	src := random.New(&random.Config{Seed: 7})
	for i := 0; i < 50; i++ {
		item, err := SelectWeighted(s.testItems, src)
		s.Require().NoError(err)
		first = append(first, item.Position)
	}

	src = random.New(&random.Config{Seed: 7})
	for i := 0; i < 50; i++ {
		item, err := SelectWeighted(s.testItems, src)
		s.Require().NoError(err)
		s.Equal(first[i], item.Position)
	}
}

func (s *SelectorTestSuite) TestFrequenciesTrackWeights() {
	src := random.New(&random.Config{Seed: 1})

	const samples = 60000
	counts := make(map[int]int)
	for i := 0; i < samples; i++ {
		item, err := SelectWeighted(s.testItems, src)
		s.Require().NoError(err)
		counts[item.Position]++
	}

	totalWeight := 0
	for _, item := range s.testItems {
		totalWeight += item.Weight
	}

	for _, item := range s.testItems {
		expected := float64(item.Weight) / float64(totalWeight)
		observed := float64(counts[item.Position]) / float64(samples)
		s.InDelta(expected, observed, 0.01)
	}
}
