package weekly_summary

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	mockclock "github.com/KirkDiggler/flowly/internal/common/clock/mocks"
	"github.com/KirkDiggler/flowly/internal/kvstore"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type KVRepositoryTestSuite struct {
	suite.Suite
	mr        *miniredis.Miniredis
	client    *redis.Client
	mockCtrl  *gomock.Controller
	mockClock *mockclock.MockClock
	repo      Repository
	ctx       context.Context
	testNow   time.Time
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

	s.mockCtrl = gomock.NewController(s.T())
	s.mockClock = mockclock.NewMockClock(s.mockCtrl)
	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().Return(s.testNow).AnyTimes()

	repo, err := NewKV(&Config{
		Store: store,
		Clock: s.mockClock,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
}

func (s *KVRepositoryTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
	s.client.Close()
	s.mr.Close()
}

func TestKVRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(KVRepositoryTestSuite))
}

func (s *KVRepositoryTestSuite) add(subjectID string, minutes int) *AddEntryOutput {
	output, err := s.repo.AddEntry(s.ctx, &AddEntryInput{
		AccountID: "alice@example.com",
		SubjectID: subjectID,
		Minutes:   minutes,
	})
	s.Require().NoError(err)
	return output
}

func (s *KVRepositoryTestSuite) TestGetSummaryDefaultsToEmpty() {
	summary, err := s.repo.GetSummary(s.ctx, &GetSummaryInput{AccountID: "alice@example.com"})
	s.Require().NoError(err)
	s.NotNil(summary.Subjects)
	s.Empty(summary.Subjects)
	s.True(summary.UpdatedAt.Equal(s.testNow))

	s.False(s.mr.Exists("flowly:weekly_summary:alice@example.com"))
}

func (s *KVRepositoryTestSuite) TestAddEntryUpserts() {
	s.add("s1", 10)
	output := s.add("s1", 5)

	s.True(output.Applied)
	s.Require().Len(output.Summary.Subjects, 1)
	s.Equal("s1", output.Summary.Subjects[0].SubjectID)
	s.Equal(15, output.Summary.Subjects[0].Minutes)

	summary, err := s.repo.GetSummary(s.ctx, &GetSummaryInput{AccountID: "alice@example.com"})
	s.Require().NoError(err)
	s.Require().Len(summary.Subjects, 1)
	s.Equal(15, summary.Subjects[0].Minutes)
	s.Equal(15, summary.TotalMinutes())
}

func (s *KVRepositoryTestSuite) TestAddEntryKeepsFirstCreditOrder() {
	s.add("s2", 10)
	s.add("", 7)
	s.add("s1", 3)
	s.add("s2", 1)
	s.add("", 3)

	summary, err := s.repo.GetSummary(s.ctx, &GetSummaryInput{AccountID: "alice@example.com"})
	s.Require().NoError(err)
	s.Require().Len(summary.Subjects, 3)

	s.Equal("s2", summary.Subjects[0].SubjectID)
	s.Equal(11, summary.Subjects[0].Minutes)
	s.Equal("", summary.Subjects[1].SubjectID)
	s.Equal(10, summary.Subjects[1].Minutes)
	s.Equal("s1", summary.Subjects[2].SubjectID)
	s.Equal(3, summary.Subjects[2].Minutes)
}

func (s *KVRepositoryTestSuite) TestAddEntryStoredShape() {
	s.add("s1", 10)
	s.add("", 4)

	raw, err := s.mr.Get("flowly:weekly_summary:alice@example.com")
	s.Require().NoError(err)

	var record map[string]any
	s.Require().NoError(json.Unmarshal([]byte(raw), &record))
	s.Equal(float64(s.testNow.UnixMilli()), record["updatedAt"])

	subjects, ok := record["subjects"].([]any)
	s.Require().True(ok)
	s.Require().Len(subjects, 2)

	first := subjects[0].(map[string]any)
	s.Equal("s1", first["subjectId"])
	s.Equal(float64(10), first["minutes"])

	second := subjects[1].(map[string]any)
	s.Nil(second["subjectId"])
	s.Equal(float64(4), second["minutes"])
}

func (s *KVRepositoryTestSuite) TestAddEntryIgnoresNonPositiveMinutes() {
	s.False(s.add("s1", 0).Applied)
	s.False(s.add("s1", -3).Applied)

	s.False(s.mr.Exists("flowly:weekly_summary:alice@example.com"))
}

func (s *KVRepositoryTestSuite) TestAddEntryIsSerialized() {
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.repo.AddEntry(s.ctx, &AddEntryInput{AccountID: "alice@example.com", SubjectID: "s1", Minutes: 2})
			s.NoError(err)
		}()
	}
	wg.Wait()

	summary, err := s.repo.GetSummary(s.ctx, &GetSummaryInput{AccountID: "alice@example.com"})
	s.Require().NoError(err)
	s.Require().Len(summary.Subjects, 1)
	s.Equal(20, summary.Subjects[0].Minutes)
}

func (s *KVRepositoryTestSuite) TestSummariesAreScopedPerAccount() {
	s.add("s1", 10)

	summary, err := s.repo.GetSummary(s.ctx, &GetSummaryInput{AccountID: "bob@example.com"})
	s.Require().NoError(err)
	s.Empty(summary.Subjects)
}

func (s *KVRepositoryTestSuite) TestDeleteSummary() {
	s.add("s1", 10)

	err := s.repo.DeleteSummary(s.ctx, &DeleteSummaryInput{AccountID: "alice@example.com"})
	s.Require().NoError(err)
	s.False(s.mr.Exists("flowly:weekly_summary:alice@example.com"))

	// Deleting again is fine
	err = s.repo.DeleteSummary(s.ctx, &DeleteSummaryInput{AccountID: "alice@example.com"})
	s.NoError(err)
}

func (s *KVRepositoryTestSuite) TestMalformedEntriesAreCoerced() {
	s.Require().NoError(s.mr.Set("flowly:weekly_summary:alice@example.com", `{
		"subjects": [
			{"subjectId": "s1", "minutes": 10},
			{"subjectId": 42, "minutes": 5},
			{"subjectId": "s2", "minutes": "many"},
			{"subjectId": null, "minutes": 2}
		],
		"updatedAt": "yesterday"
	}`))

	summary, err := s.repo.GetSummary(s.ctx, &GetSummaryInput{AccountID: "alice@example.com"})
	s.Require().NoError(err)
	s.True(summary.UpdatedAt.Equal(s.testNow))
	s.Require().Len(summary.Subjects, 3)

	s.Equal("s1", summary.Subjects[0].SubjectID)
	s.Equal(10, summary.Subjects[0].Minutes)

	// A non-string id and a null id are the same entry
	s.Equal("", summary.Subjects[1].SubjectID)
	s.Equal(7, summary.Subjects[1].Minutes)

	s.Equal("s2", summary.Subjects[2].SubjectID)
	s.Equal(0, summary.Subjects[2].Minutes)
}

func (s *KVRepositoryTestSuite) TestStoredUpdatedAtIsKept() {
	s.Require().NoError(s.mr.Set("flowly:weekly_summary:alice@example.com",
		`{"subjects": "nope", "updatedAt": 1700000000000}`))

	summary, err := s.repo.GetSummary(s.ctx, &GetSummaryInput{AccountID: "alice@example.com"})
	s.Require().NoError(err)
	s.Empty(summary.Subjects)
	s.Equal(int64(1700000000000), summary.UpdatedAt.UnixMilli())
}

func (s *KVRepositoryTestSuite) TestUnparsablePayloadIsReplacedOnCredit() {
	s.Require().NoError(s.mr.Set("flowly:weekly_summary:alice@example.com", `not json`))

	summary, err := s.repo.GetSummary(s.ctx, &GetSummaryInput{AccountID: "alice@example.com"})
	s.Require().NoError(err)
	s.Empty(summary.Subjects)

	output := s.add("s1", 5)
	s.Require().Len(output.Summary.Subjects, 1)
	s.Equal(5, output.Summary.Subjects[0].Minutes)
}

func (s *KVRepositoryTestSuite) TestStoreFailure() {
	s.mr.SetError("ERR simulated failure")

	_, err := s.repo.AddEntry(s.ctx, &AddEntryInput{AccountID: "alice@example.com", SubjectID: "s1", Minutes: 5})
	s.Error(err)

	_, err = s.repo.GetSummary(s.ctx, &GetSummaryInput{AccountID: "alice@example.com"})
	s.Error(err)

	s.Error(s.repo.DeleteSummary(s.ctx, &DeleteSummaryInput{AccountID: "alice@example.com"}))
}

func (s *KVRepositoryTestSuite) TestInputValidation() {
	_, err := s.repo.AddEntry(s.ctx, nil)
	s.Error(err)

	_, err = s.repo.GetSummary(s.ctx, &GetSummaryInput{})
	s.Error(err)

	s.Error(s.repo.DeleteSummary(s.ctx, nil))

	_, err = NewKV(nil)
	s.Error(err)
}
