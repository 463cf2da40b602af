package habit

import (
	"context"
	"errors"
	"testing"

	"github.com/KirkDiggler/flowly/internal/common/account"
	"github.com/KirkDiggler/flowly/internal/models"
	habitRepo "github.com/KirkDiggler/flowly/internal/repositories/habit"
	habitMocks "github.com/KirkDiggler/flowly/internal/repositories/habit/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type HabitServiceTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockHabitRepo *habitMocks.MockRepository
	habitService  Service
	ctx           context.Context
}

func (s *HabitServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockHabitRepo = habitMocks.NewMockRepository(s.mockCtrl)

	svc, err := New(&Config{HabitRepo: s.mockHabitRepo})
	s.Require().NoError(err)
	s.habitService = svc

	s.ctx = account.WithID(context.Background(), "1234567890")
}

func (s *HabitServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestHabitServiceSuite(t *testing.T) {
	suite.Run(t, new(HabitServiceTestSuite))
}

func (s *HabitServiceTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{})
	s.ErrorIs(err, ErrNilHabitRepo)
}

func (s *HabitServiceTestSuite) TestListHabits() {
	s.mockHabitRepo.EXPECT().
		ListHabits(gomock.Any(), &habitRepo.ListHabitsInput{AccountID: "1234567890"}).
		Return(models.DefaultHabits(), nil)

	output, err := s.habitService.ListHabits(s.ctx, &ListHabitsInput{})
	s.Require().NoError(err)
	s.Len(output.Habits, 4)
}

func (s *HabitServiceTestSuite) TestListHabitsWithoutAccountUsesLocal() {
	s.mockHabitRepo.EXPECT().
		ListHabits(gomock.Any(), &habitRepo.ListHabitsInput{AccountID: account.Local}).
		Return(models.DefaultHabits(), nil)

	_, err := s.habitService.ListHabits(context.Background(), &ListHabitsInput{})
	s.NoError(err)
}

func (s *HabitServiceTestSuite) TestCreateHabitDefaultsCategory() {
	created := &models.Habit{ID: "h1", Name: "Química", Category: DefaultHabitCategory}
	s.mockHabitRepo.EXPECT().
		CreateHabit(gomock.Any(), &habitRepo.CreateHabitInput{
			AccountID: "1234567890",
			Name:      "Química",
			Category:  DefaultHabitCategory,
		}).
		Return(created, nil)

	output, err := s.habitService.CreateHabit(s.ctx, &CreateHabitInput{Name: " Química "})
	s.Require().NoError(err)
	s.Equal(created, output.Habit)
}

func (s *HabitServiceTestSuite) TestCreateHabitValidation() {
	_, err := s.habitService.CreateHabit(s.ctx, &CreateHabitInput{Name: ""})
	s.ErrorIs(err, ErrInvalidHabitName)
}

func (s *HabitServiceTestSuite) TestCreateHabitPropagatesFailure() {
	s.mockHabitRepo.EXPECT().CreateHabit(gomock.Any(), gomock.Any()).Return(nil, errors.New("io error"))

	_, err := s.habitService.CreateHabit(s.ctx, &CreateHabitInput{Name: "Química"})
	s.Error(err)
}

func (s *HabitServiceTestSuite) TestUpdateHabit() {
	name := "Álgebra"
	s.mockHabitRepo.EXPECT().
		UpdateHabit(gomock.Any(), &habitRepo.UpdateHabitInput{AccountID: "1234567890", HabitID: "1", Name: &name}).
		Return(&habitRepo.UpdateHabitOutput{Found: true, Habit: &models.Habit{ID: "1", Name: name}}, nil)

	output, err := s.habitService.UpdateHabit(s.ctx, &UpdateHabitInput{HabitID: "1", Name: &name})
	s.Require().NoError(err)
	s.True(output.Found)

	blank := "  "
	_, err = s.habitService.UpdateHabit(s.ctx, &UpdateHabitInput{HabitID: "1", Name: &blank})
	s.ErrorIs(err, ErrInvalidHabitName)
}

func (s *HabitServiceTestSuite) TestDeleteHabit() {
	s.mockHabitRepo.EXPECT().
		DeleteHabit(gomock.Any(), &habitRepo.DeleteHabitInput{AccountID: "1234567890", HabitID: "2"}).
		Return(&habitRepo.DeleteHabitOutput{Found: true}, nil)

	output, err := s.habitService.DeleteHabit(s.ctx, &DeleteHabitInput{HabitID: "2"})
	s.Require().NoError(err)
	s.True(output.Found)
}

func (s *HabitServiceTestSuite) TestGetToday() {
	s.mockHabitRepo.EXPECT().
		GetToday(gomock.Any(), &habitRepo.GetTodayInput{AccountID: "1234567890"}).
		Return(&models.HabitsToday{Habits: models.DefaultHabits(), CompletedIDs: []string{"2", "4"}}, nil)

	output, err := s.habitService.GetToday(s.ctx, &GetTodayInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Habits, 4)
	s.Equal(2, output.CompletedCount)
	s.False(output.Habits[0].Completed)
	s.True(output.Habits[1].Completed)
}

func (s *HabitServiceTestSuite) TestToggleHabit() {
	s.mockHabitRepo.EXPECT().
		GetToday(gomock.Any(), gomock.Any()).
		Return(&models.HabitsToday{Habits: models.DefaultHabits(), CompletedIDs: []string{}}, nil)
	s.mockHabitRepo.EXPECT().
		ToggleHabitToday(gomock.Any(), &habitRepo.ToggleHabitTodayInput{AccountID: "1234567890", HabitID: "3"}).
		Return(&models.HabitsToday{Habits: models.DefaultHabits(), CompletedIDs: []string{"3"}}, nil)

	output, err := s.habitService.ToggleHabit(s.ctx, &ToggleHabitInput{HabitID: "3"})
	s.Require().NoError(err)
	s.True(output.Completed)
	s.Equal(1, output.Today.CompletedCount)
}

func (s *HabitServiceTestSuite) TestToggleHabitNotOnTodayList() {
	s.mockHabitRepo.EXPECT().
		GetToday(gomock.Any(), gomock.Any()).
		Return(&models.HabitsToday{Habits: models.DefaultHabits(), CompletedIDs: []string{}}, nil)

	_, err := s.habitService.ToggleHabit(s.ctx, &ToggleHabitInput{HabitID: "99"})
	s.ErrorIs(err, ErrHabitNotFound)
}

func (s *HabitServiceTestSuite) TestResetHabits() {
	s.mockHabitRepo.EXPECT().
		ResetHabits(gomock.Any(), &habitRepo.ResetHabitsInput{AccountID: "1234567890"}).
		Return(nil)

	s.NoError(s.habitService.ResetHabits(s.ctx, &ResetHabitsInput{}))
}
