package daily_minutes

import (
	"context"
	"sync"
	"testing"

	"github.com/KirkDiggler/flowly/internal/kvstore"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type KVRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
	ctx    context.Context
}

func (s *KVRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	store, err := kvstore.NewRedis(&kvstore.RedisConfig{
		RedisClient: s.client,
	})
	s.Require().NoError(err)

	repo, err := NewKV(&Config{
		Store: store,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
}

func (s *KVRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestKVRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(KVRepositoryTestSuite))
}

func (s *KVRepositoryTestSuite) TestGetMinutesDefaultsToZero() {
	minutes, err := s.repo.GetMinutes(s.ctx, &GetMinutesInput{AccountID: "alice"})
	s.Require().NoError(err)
	s.Equal(0, minutes)

	// Reading does not write
	s.False(s.mr.Exists("flowly:today_minutes:alice"))
}

func (s *KVRepositoryTestSuite) TestSetMinutesStoresDecimalString() {
	err := s.repo.SetMinutes(s.ctx, &SetMinutesInput{AccountID: "alice", Minutes: 42})
	s.Require().NoError(err)

	raw, err := s.mr.Get("flowly:today_minutes:alice")
	s.Require().NoError(err)
	s.Equal("42", raw)

	minutes, err := s.repo.GetMinutes(s.ctx, &GetMinutesInput{AccountID: "alice"})
	s.Require().NoError(err)
	s.Equal(42, minutes)
}

func (s *KVRepositoryTestSuite) TestAddMinutesAccumulates() {
	total, err := s.repo.AddMinutes(s.ctx, &AddMinutesInput{AccountID: "alice", Minutes: 10})
	s.Require().NoError(err)
	s.Equal(10, total)

	total, err = s.repo.AddMinutes(s.ctx, &AddMinutesInput{AccountID: "alice", Minutes: 5})
	s.Require().NoError(err)
	s.Equal(15, total)

	// Other accounts are untouched
	minutes, err := s.repo.GetMinutes(s.ctx, &GetMinutesInput{AccountID: "bob"})
	s.Require().NoError(err)
	s.Equal(0, minutes)
}

func (s *KVRepositoryTestSuite) TestAddMinutesIsSerialized() {
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.repo.AddMinutes(s.ctx, &AddMinutesInput{AccountID: "alice", Minutes: 1})
			s.NoError(err)
		}()
	}
	wg.Wait()

	minutes, err := s.repo.GetMinutes(s.ctx, &GetMinutesInput{AccountID: "alice"})
	s.Require().NoError(err)
	s.Equal(20, minutes)
}

func (s *KVRepositoryTestSuite) TestUnparsableValues() {
	testCases := []struct {
		raw      string
		expected int
	}{
		{raw: "abc", expected: 0},
		{raw: "", expected: 0},
		{raw: "12abc", expected: 12},
		{raw: " 7 ", expected: 7},
		{raw: "-5", expected: 0},
		{raw: "3.9", expected: 3},
	}

	for _, tc := range testCases {
		s.Require().NoError(s.mr.Set("flowly:today_minutes:alice", tc.raw))

		minutes, err := s.repo.GetMinutes(s.ctx, &GetMinutesInput{AccountID: "alice"})
		s.Require().NoError(err)
		s.Equal(tc.expected, minutes, "raw value %q", tc.raw)
	}
}

func (s *KVRepositoryTestSuite) TestNegativeWritesAreRejected() {
	s.ErrorIs(s.repo.SetMinutes(s.ctx, &SetMinutesInput{AccountID: "alice", Minutes: -1}), ErrNegativeMinutes)

	_, err := s.repo.AddMinutes(s.ctx, &AddMinutesInput{AccountID: "alice", Minutes: -1})
	s.ErrorIs(err, ErrNegativeMinutes)
}

func (s *KVRepositoryTestSuite) TestStoreFailure() {
	s.mr.SetError("ERR simulated failure")

	_, err := s.repo.GetMinutes(s.ctx, &GetMinutesInput{AccountID: "alice"})
	s.Error(err)

	_, err = s.repo.AddMinutes(s.ctx, &AddMinutesInput{AccountID: "alice", Minutes: 1})
	s.Error(err)
}

func (s *KVRepositoryTestSuite) TestInputValidation() {
	_, err := s.repo.GetMinutes(s.ctx, nil)
	s.Error(err)

	_, err = s.repo.AddMinutes(s.ctx, &AddMinutesInput{Minutes: 1})
	s.Error(err)

	s.Error(s.repo.SetMinutes(s.ctx, &SetMinutesInput{}))

	_, err = NewKV(nil)
	s.Error(err)
}
