package subject

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	mockclock "github.com/KirkDiggler/flowly/internal/common/clock/mocks"
	mockuuid "github.com/KirkDiggler/flowly/internal/common/uuid/mocks"
	"github.com/KirkDiggler/flowly/internal/kvstore"
	"github.com/KirkDiggler/flowly/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type KVRepositoryTestSuite struct {
	suite.Suite
	mr       *miniredis.Miniredis
	client   *redis.Client
	mockCtrl *gomock.Controller
	mockUUID *mockuuid.MockUUID
	repo     Repository
	ctx      context.Context
	testNow  time.Time
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
	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)

	mockClock := mockclock.NewMockClock(s.mockCtrl)
	mockClock.EXPECT().Now().Return(s.testNow).AnyTimes()

	s.mockUUID = mockuuid.NewMockUUID(s.mockCtrl)
	s.mockUUID.EXPECT().NewUUID().Return("a1b2c3d4-e5f6-7890-abcd-ef1234567890").AnyTimes()

	repo, err := NewKV(&Config{
		Store:         store,
		Clock:         mockClock,
		UUIDGenerator: s.mockUUID,
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

func (s *KVRepositoryTestSuite) create(name string, category models.SubjectCategory) *models.Subject {
	subject, err := s.repo.CreateSubject(s.ctx, &CreateSubjectInput{
		AccountID: "alice",
		Name:      name,
		Category:  category,
	})
	s.Require().NoError(err)
	return subject
}

func (s *KVRepositoryTestSuite) list() []*models.Subject {
	subjects, err := s.repo.ListSubjects(s.ctx, &ListSubjectsInput{AccountID: "alice"})
	s.Require().NoError(err)
	return subjects
}

func (s *KVRepositoryTestSuite) TestListSubjectsEmpty() {
	subjects := s.list()
	s.NotNil(subjects)
	s.Empty(subjects)
}

func (s *KVRepositoryTestSuite) TestCreateSubjectRoundTrip() {
	subject := s.create("Math", models.SubjectCategoryEscola)

	s.Equal("1743847200000-a1b2c3", subject.ID)
	s.Equal("Math", subject.Name)
	s.Equal(models.SubjectCategoryEscola, subject.Category)
	s.Equal(0, subject.TotalMinutes)

	subjects := s.list()
	s.Require().Len(subjects, 1)
	s.Equal(subject, subjects[0])

	// Stored with the documented field names
	raw, err := s.mr.Get("flowly:subjects:alice")
	s.Require().NoError(err)
	var records []map[string]any
	s.Require().NoError(json.Unmarshal([]byte(raw), &records))
	s.Require().Len(records, 1)
	s.Equal("1743847200000-a1b2c3", records[0]["id"])
	s.Equal("Math", records[0]["name"])
	s.Equal("escola", records[0]["category"])
	s.Equal(float64(0), records[0]["totalMinutes"])
}

func (s *KVRepositoryTestSuite) TestListKeepsInsertionOrder() {
	s.create("Math", models.SubjectCategoryEscola)
	s.create("Physics", models.SubjectCategoryFaculdade)
	s.create("Guitar", models.SubjectCategoryOutros)

	subjects := s.list()
	s.Require().Len(subjects, 3)
	s.Equal("Math", subjects[0].Name)
	s.Equal("Physics", subjects[1].Name)
	s.Equal("Guitar", subjects[2].Name)
}

func (s *KVRepositoryTestSuite) TestUpdateSubject() {
	subject := s.create("Math", models.SubjectCategoryEscola)

	name := "Calculus"
	output, err := s.repo.UpdateSubject(s.ctx, &UpdateSubjectInput{
		AccountID: "alice",
		SubjectID: subject.ID,
		Name:      &name,
	})
	s.Require().NoError(err)
	s.True(output.Found)
	s.Equal("Calculus", output.Subject.Name)
	s.Equal(models.SubjectCategoryEscola, output.Subject.Category)

	category := models.SubjectCategoryFaculdade
	output, err = s.repo.UpdateSubject(s.ctx, &UpdateSubjectInput{
		AccountID: "alice",
		SubjectID: subject.ID,
		Category:  &category,
	})
	s.Require().NoError(err)
	s.True(output.Found)

	subjects := s.list()
	s.Require().Len(subjects, 1)
	s.Equal("Calculus", subjects[0].Name)
	s.Equal(models.SubjectCategoryFaculdade, subjects[0].Category)
}

func (s *KVRepositoryTestSuite) TestUpdateMissingSubjectIsNoOp() {
	s.create("Math", models.SubjectCategoryEscola)
	before, err := s.mr.Get("flowly:subjects:alice")
	s.Require().NoError(err)

	name := "Ghost"
	output, err := s.repo.UpdateSubject(s.ctx, &UpdateSubjectInput{
		AccountID: "alice",
		SubjectID: "missing",
		Name:      &name,
	})
	s.Require().NoError(err)
	s.False(output.Found)
	s.Nil(output.Subject)

	after, err := s.mr.Get("flowly:subjects:alice")
	s.Require().NoError(err)
	s.Equal(before, after)
}

func (s *KVRepositoryTestSuite) TestRemoveSubject() {
	subject := s.create("Math", models.SubjectCategoryEscola)

	output, err := s.repo.RemoveSubject(s.ctx, &RemoveSubjectInput{
		AccountID: "alice",
		SubjectID: "missing",
	})
	s.Require().NoError(err)
	s.False(output.Found)
	s.Len(s.list(), 1)

	output, err = s.repo.RemoveSubject(s.ctx, &RemoveSubjectInput{
		AccountID: "alice",
		SubjectID: subject.ID,
	})
	s.Require().NoError(err)
	s.True(output.Found)
	s.Empty(s.list())
}

func (s *KVRepositoryTestSuite) TestCreditMinutesIsAdditive() {
	subject := s.create("Math", models.SubjectCategoryEscola)

	_, err := s.repo.CreditMinutes(s.ctx, &CreditMinutesInput{AccountID: "alice", SubjectID: subject.ID, Minutes: 10})
	s.Require().NoError(err)

	output, err := s.repo.CreditMinutes(s.ctx, &CreditMinutesInput{AccountID: "alice", SubjectID: subject.ID, Minutes: 5})
	s.Require().NoError(err)
	s.True(output.Found)
	s.Equal(15, output.Subject.TotalMinutes)

	subjects := s.list()
	s.Require().Len(subjects, 1)
	s.Equal(15, subjects[0].TotalMinutes)
}

func (s *KVRepositoryTestSuite) TestCreditMinutesMissingSubject() {
	output, err := s.repo.CreditMinutes(s.ctx, &CreditMinutesInput{AccountID: "alice", SubjectID: "missing", Minutes: 10})
	s.Require().NoError(err)
	s.False(output.Found)

	// Nothing was written for an account with no subjects
	s.False(s.mr.Exists("flowly:subjects:alice"))
}

func (s *KVRepositoryTestSuite) TestCreditMinutesRejectsNegative() {
	subject := s.create("Math", models.SubjectCategoryEscola)

	_, err := s.repo.CreditMinutes(s.ctx, &CreditMinutesInput{AccountID: "alice", SubjectID: subject.ID, Minutes: -5})
	s.ErrorIs(err, ErrNegativeMinutes)

	s.Equal(0, s.list()[0].TotalMinutes)
}

func (s *KVRepositoryTestSuite) TestConcurrentCreditsAreNotLost() {
	subject := s.create("Math", models.SubjectCategoryEscola)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.repo.CreditMinutes(s.ctx, &CreditMinutesInput{AccountID: "alice", SubjectID: subject.ID, Minutes: 3})
			s.NoError(err)
		}()
	}
	wg.Wait()

	s.Equal(30, s.list()[0].TotalMinutes)
}

func (s *KVRepositoryTestSuite) TestResetSubjects() {
	s.create("Math", models.SubjectCategoryEscola)
	s.create("Physics", models.SubjectCategoryFaculdade)

	err := s.repo.ResetSubjects(s.ctx, &ResetSubjectsInput{AccountID: "alice"})
	s.Require().NoError(err)

	s.Empty(s.list())

	raw, err := s.mr.Get("flowly:subjects:alice")
	s.Require().NoError(err)
	s.Equal("[]", raw)
}

func (s *KVRepositoryTestSuite) TestSubjectsAreScopedPerAccount() {
	s.create("Math", models.SubjectCategoryEscola)

	subjects, err := s.repo.ListSubjects(s.ctx, &ListSubjectsInput{AccountID: "bob"})
	s.Require().NoError(err)
	s.Empty(subjects)
}

func (s *KVRepositoryTestSuite) TestMalformedEntriesAreCoerced() {
	s.Require().NoError(s.mr.Set("flowly:subjects:alice", `[
		{"id": "s1", "name": "Math"},
		{"id": 7, "name": "Physics", "category": "space", "totalMinutes": "lots"},
		"garbage",
		{"id": "s3", "name": "Art", "category": "faculdade", "totalMinutes": 40}
	]`))

	subjects := s.list()
	s.Require().Len(subjects, 3)

	s.Equal("s1", subjects[0].ID)
	s.Equal(models.SubjectCategoryOutros, subjects[0].Category)
	s.Equal(0, subjects[0].TotalMinutes)

	s.Equal("7", subjects[1].ID)
	s.Equal(models.SubjectCategoryOutros, subjects[1].Category)
	s.Equal(0, subjects[1].TotalMinutes)

	s.Equal("s3", subjects[2].ID)
	s.Equal(models.SubjectCategoryFaculdade, subjects[2].Category)
	s.Equal(40, subjects[2].TotalMinutes)
}

func (s *KVRepositoryTestSuite) TestUnparsablePayloadReadsEmpty() {
	s.Require().NoError(s.mr.Set("flowly:subjects:alice", `{"not": "a list"}`))
	s.Empty(s.list())

	s.Require().NoError(s.mr.Set("flowly:subjects:alice", `not json`))
	s.Empty(s.list())
}

func (s *KVRepositoryTestSuite) TestStoreFailure() {
	s.mr.SetError("ERR simulated failure")

	_, err := s.repo.ListSubjects(s.ctx, &ListSubjectsInput{AccountID: "alice"})
	s.Error(err)

	_, err = s.repo.CreateSubject(s.ctx, &CreateSubjectInput{AccountID: "alice", Name: "Math", Category: models.SubjectCategoryEscola})
	s.Error(err)
}

func (s *KVRepositoryTestSuite) TestInputValidation() {
	_, err := s.repo.ListSubjects(s.ctx, nil)
	s.Error(err)

	_, err = s.repo.CreateSubject(s.ctx, &CreateSubjectInput{Name: "Math"})
	s.Error(err)

	s.Error(s.repo.ResetSubjects(s.ctx, &ResetSubjectsInput{}))

	_, err = NewKV(nil)
	s.Error(err)
	_, err = NewKV(&Config{})
	s.Error(err)
}
