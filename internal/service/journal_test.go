package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"journal_monitor/internal/domain"
	"journal_monitor/internal/service/mocks"
	"journal_monitor/testdata/utils"
)

type JournalServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	registry *mocks.MockRegistry
	journals *mocks.MockJournalStore
	follows  *mocks.MockFollowStore

	service *JournalService
}

func (s *JournalServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.registry = mocks.NewMockRegistry(s.ctrl)
	s.journals = mocks.NewMockJournalStore(s.ctrl)
	s.follows = mocks.NewMockFollowStore(s.ctrl)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.service = NewJournalService(s.registry, s.journals, s.follows, logger)
}

func (s *JournalServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestJournalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JournalServiceTestSuite))
}

func (s *JournalServiceTestSuite) TestRegisterCustom_New() {
	ctx := context.Background()

	s.journals.EXPECT().FindByISSN(ctx, "1234-5678").Return(nil, nil)
	s.registry.EXPECT().LookupJournal(ctx, "1234-5678").Return("Validated Journal", nil)
	s.journals.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, journal *domain.Journal) (int64, error) {
			s.Equal("Validated Journal", journal.Title)
			s.Equal("1234-5678", *journal.PrintISSN)
			s.True(journal.IsCustom)
			return 42, nil
		},
	)

	journal, err := s.service.RegisterCustom(ctx, " 1234-5678 ")

	s.NoError(err)
	s.Equal(int64(42), journal.ID)
	s.Equal("Validated Journal", journal.Title)
}

func (s *JournalServiceTestSuite) TestRegisterCustom_AlreadyInCatalog() {
	ctx := context.Background()

	existing := &domain.Journal{ID: 7, Title: "Known Journal", PrintISSN: utils.Ptr("1234-5678")}
	s.journals.EXPECT().FindByISSN(ctx, "1234-5678").Return(existing, nil)

	journal, err := s.service.RegisterCustom(ctx, "1234-5678")

	s.NoError(err)
	s.Equal(existing, journal)
}

func (s *JournalServiceTestSuite) TestRegisterCustom_UnknownISSN() {
	ctx := context.Background()

	s.journals.EXPECT().FindByISSN(ctx, "0000-0000").Return(nil, nil)
	s.registry.EXPECT().LookupJournal(ctx, "0000-0000").Return("", errors.New("journal not found in registry"))

	journal, err := s.service.RegisterCustom(ctx, "0000-0000")

	s.Error(err)
	s.Nil(journal)
	s.Contains(err.Error(), "validate issn")
}

func (s *JournalServiceTestSuite) TestRegisterCustom_EmptyISSN() {
	journal, err := s.service.RegisterCustom(context.Background(), "   ")

	s.Error(err)
	s.Nil(journal)
}

func (s *JournalServiceTestSuite) TestFollow_LimitPropagates() {
	ctx := context.Background()

	s.follows.EXPECT().Follow(ctx, "user-1", int64(5)).Return(domain.ErrFollowLimit)

	err := s.service.Follow(ctx, "user-1", 5)

	s.ErrorIs(err, domain.ErrFollowLimit)
}

func (s *JournalServiceTestSuite) TestUnfollow() {
	ctx := context.Background()

	s.follows.EXPECT().Unfollow(ctx, "user-1", int64(5)).Return(nil)

	s.NoError(s.service.Unfollow(ctx, "user-1", 5))
}
