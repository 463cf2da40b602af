package habit

import (
	"context"
	"errors"
	"testing"
	"time"

	mockclock "github.com/KirkDiggler/flowly/internal/common/clock/mocks"
	mockuuid "github.com/KirkDiggler/flowly/internal/common/uuid/mocks"
	"github.com/KirkDiggler/flowly/internal/kvstore"
	mockstore "github.com/KirkDiggler/flowly/internal/kvstore/mocks"
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
	repo     Repository
	ctx      context.Context
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

	mockClock := mockclock.NewMockClock(s.mockCtrl)
	mockClock.EXPECT().Now().Return(time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)).AnyTimes()

	mockUUID := mockuuid.NewMockUUID(s.mockCtrl)
	mockUUID.EXPECT().NewUUID().Return("0f0e0d0c-0b0a-0908-0706-050403020100").AnyTimes()

	repo, err := NewKV(&Config{
		Store:         store,
		Clock:         mockClock,
		UUIDGenerator: mockUUID,
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

func (s *KVRepositoryTestSuite) list() []*models.Habit {
	habits, err := s.repo.ListHabits(s.ctx, &ListHabitsInput{AccountID: "alice"})
	s.Require().NoError(err)
	return habits
}

func (s *KVRepositoryTestSuite) TestListHabitsSeedsDefaults() {
	habits := s.list()
	s.Equal(models.DefaultHabits(), habits)

	// The defaults were persisted
	s.True(s.mr.Exists("flowly:habits:alice"))
}

func (s *KVRepositoryTestSuite) TestUnparsableHabitsReadAsDefaults() {
	s.Require().NoError(s.mr.Set("flowly:habits:alice", `not json`))
	s.Equal(models.DefaultHabits(), s.list())
}

func (s *KVRepositoryTestSuite) TestEmptyListIsKept() {
	s.Require().NoError(s.mr.Set("flowly:habits:alice", `[]`))
	s.Empty(s.list())
}

func (s *KVRepositoryTestSuite) TestCreateHabit() {
	habit, err := s.repo.CreateHabit(s.ctx, &CreateHabitInput{
		AccountID: "alice",
		Name:      "Química",
		Category:  "estudo",
	})
	s.Require().NoError(err)
	s.Equal("1743847200000-0f0e0d", habit.ID)

	habits := s.list()
	s.Require().Len(habits, 5)
	s.Equal(habit, habits[4])
}

func (s *KVRepositoryTestSuite) TestUpdateHabit() {
	name := "Matemática Avançada"
	output, err := s.repo.UpdateHabit(s.ctx, &UpdateHabitInput{
		AccountID: "alice",
		HabitID:   "1",
		Name:      &name,
	})
	s.Require().NoError(err)
	s.True(output.Found)
	s.Equal("Matemática Avançada", output.Habit.Name)
	s.Equal("estudo", output.Habit.Category)

	s.Equal("Matemática Avançada", s.list()[0].Name)

	output, err = s.repo.UpdateHabit(s.ctx, &UpdateHabitInput{
		AccountID: "alice",
		HabitID:   "missing",
		Name:      &name,
	})
	s.Require().NoError(err)
	s.False(output.Found)
}

func (s *KVRepositoryTestSuite) TestDeleteHabit() {
	output, err := s.repo.DeleteHabit(s.ctx, &DeleteHabitInput{AccountID: "alice", HabitID: "2"})
	s.Require().NoError(err)
	s.True(output.Found)

	habits := s.list()
	s.Require().Len(habits, 3)
	for _, habit := range habits {
		s.NotEqual("2", habit.ID)
	}

	output, err = s.repo.DeleteHabit(s.ctx, &DeleteHabitInput{AccountID: "alice", HabitID: "2"})
	s.Require().NoError(err)
	s.False(output.Found)
}

func (s *KVRepositoryTestSuite) TestGetTodayStartsFromCurrentHabits() {
	_, err := s.repo.DeleteHabit(s.ctx, &DeleteHabitInput{AccountID: "alice", HabitID: "4"})
	s.Require().NoError(err)

	today, err := s.repo.GetToday(s.ctx, &GetTodayInput{AccountID: "alice"})
	s.Require().NoError(err)
	s.Len(today.Habits, 3)
	s.NotNil(today.CompletedIDs)
	s.Empty(today.CompletedIDs)
	s.True(s.mr.Exists("flowly:habits_today:alice"))
}

func (s *KVRepositoryTestSuite) TestToggleHabitToday() {
	today, err := s.repo.ToggleHabitToday(s.ctx, &ToggleHabitTodayInput{AccountID: "alice", HabitID: "1"})
	s.Require().NoError(err)
	s.True(today.IsCompleted("1"))

	today, err = s.repo.ToggleHabitToday(s.ctx, &ToggleHabitTodayInput{AccountID: "alice", HabitID: "3"})
	s.Require().NoError(err)
	s.Equal([]string{"1", "3"}, today.CompletedIDs)

	today, err = s.repo.ToggleHabitToday(s.ctx, &ToggleHabitTodayInput{AccountID: "alice", HabitID: "1"})
	s.Require().NoError(err)
	s.False(today.IsCompleted("1"))
	s.Equal([]string{"3"}, today.CompletedIDs)

	stored, err := s.repo.GetToday(s.ctx, &GetTodayInput{AccountID: "alice"})
	s.Require().NoError(err)
	s.Equal([]string{"3"}, stored.CompletedIDs)
}

func (s *KVRepositoryTestSuite) TestMalformedTodayIsCoerced() {
	s.Require().NoError(s.mr.Set("flowly:habits_today:alice",
		`{"habits": [{"id": 1, "name": "Math"}, "junk"], "completedIds": ["1", 2, null]}`))

	today, err := s.repo.GetToday(s.ctx, &GetTodayInput{AccountID: "alice"})
	s.Require().NoError(err)
	s.Require().Len(today.Habits, 1)
	s.Equal("1", today.Habits[0].ID)
	s.Equal([]string{"1"}, today.CompletedIDs)
}

func (s *KVRepositoryTestSuite) TestResetHabits() {
	_, err := s.repo.CreateHabit(s.ctx, &CreateHabitInput{AccountID: "alice", Name: "Química", Category: "estudo"})
	s.Require().NoError(err)
	_, err = s.repo.ToggleHabitToday(s.ctx, &ToggleHabitTodayInput{AccountID: "alice", HabitID: "1"})
	s.Require().NoError(err)

	s.Require().NoError(s.repo.ResetHabits(s.ctx, &ResetHabitsInput{AccountID: "alice"}))

	s.Equal(models.DefaultHabits(), s.list())
	s.False(s.mr.Exists("flowly:habits_today:alice"))
}

func (s *KVRepositoryTestSuite) TestStoreFailure() {
	s.mr.SetError("ERR simulated failure")

	_, err := s.repo.ListHabits(s.ctx, &ListHabitsInput{AccountID: "alice"})
	s.Error(err)

	_, err = s.repo.ToggleHabitToday(s.ctx, &ToggleHabitTodayInput{AccountID: "alice", HabitID: "1"})
	s.Error(err)
}

func (s *KVRepositoryTestSuite) TestInputValidation() {
	_, err := s.repo.ListHabits(s.ctx, nil)
	s.Error(err)

	_, err = s.repo.ToggleHabitToday(s.ctx, &ToggleHabitTodayInput{AccountID: "alice"})
	s.Error(err)

	s.Error(s.repo.ResetHabits(s.ctx, &ResetHabitsInput{}))

	_, err = NewKV(nil)
	s.Error(err)
}

func (s *KVRepositoryTestSuite) TestResetHabitsReportsFailedTodayClear() {
	store := mockstore.NewMockStore(s.mockCtrl)
	repo, err := NewKV(&Config{Store: store})
	s.Require().NoError(err)

	gomock.InOrder(
		store.EXPECT().Set(gomock.Any(), "flowly:habits:user1", gomock.Any()).Return(nil),
		store.EXPECT().Remove(gomock.Any(), "flowly:habits_today:user1").Return(errors.New("io error")),
	)

	err = repo.ResetHabits(s.ctx, &ResetHabitsInput{AccountID: "user1"})
	s.Require().Error(err)
	s.Contains(err.Error(), "failed to clear today's habits")
}
