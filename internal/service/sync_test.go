package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"journal_monitor/internal/domain"
	"journal_monitor/internal/service/mocks"
	"journal_monitor/testdata/utils"
)

type SyncServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	registry     *mocks.MockRegistry
	follows      *mocks.MockFollowStore
	articles     *mocks.MockArticleStore
	userArticles *mocks.MockUserArticleStore
	settings     *mocks.MockSettingsStore
	txManager    *mocks.MockTransactionManager
	publisher    *mocks.MockPublisher

	service *SyncService
	logger  *slog.Logger
}

func (s *SyncServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.registry = mocks.NewMockRegistry(s.ctrl)
	s.follows = mocks.NewMockFollowStore(s.ctrl)
	s.articles = mocks.NewMockArticleStore(s.ctrl)
	s.userArticles = mocks.NewMockUserArticleStore(s.ctrl)
	s.settings = mocks.NewMockSettingsStore(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)

	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.service = NewSyncService(
		s.registry,
		s.follows,
		s.articles,
		s.userArticles,
		s.settings,
		s.txManager,
		s.publisher,
		s.logger,
		2,
	)
}

func (s *SyncServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestSyncServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SyncServiceTestSuite))
}

func (s *SyncServiceTestSuite) expectTransaction() {
	s.txManager.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()
}

func (s *SyncServiceTestSuite) TestSyncUser_NewArticle() {
	ctx := context.Background()
	published := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	journal := domain.Journal{ID: 1, Title: "Journal of Business Venturing", PrintISSN: utils.Ptr("0883-9026")}

	s.settings.EXPECT().Get(ctx, "user-1").Return(&domain.UserSettings{UserID: "user-1"}, nil)
	s.follows.EXPECT().ListFollowed(ctx, "user-1").Return([]domain.Journal{journal}, nil)

	s.registry.EXPECT().FetchRecent(gomock.Any(), "0883-9026", time.Time{}).Return([]domain.Publication{
		{DOI: "10.1/x", Title: "Title A", Authors: "Jane Roe", CreatedAt: published, URL: "https://example.com/a"},
	}, nil)

	s.expectTransaction()

	s.articles.EXPECT().FindOrCreate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, article *domain.Article) (int64, bool, error) {
			s.Equal("10.1/x", article.DOI)
			s.Equal("Title A", article.Title)
			s.Equal(int64(1), article.JournalID)
			return 100, true, nil
		},
	)
	s.userArticles.EXPECT().FindOrCreate(gomock.Any(), "user-1", int64(100)).Return(true, nil)
	s.publisher.EXPECT().Publish(gomock.Any(), "user-1", gomock.Any()).Return(nil)

	s.settings.EXPECT().UpdateCursor(ctx, "user-1", 0, true).Return(nil)

	newArticles, err := s.service.SyncUser(ctx, "user-1", SyncOptions{})

	s.NoError(err)
	s.Len(newArticles, 1)
	s.Equal("10.1/x", newArticles[0].DOI)
	s.Equal(int64(100), newArticles[0].Article.ID)
	s.Equal("Journal of Business Venturing", newArticles[0].Journal.Title)
}

func (s *SyncServiceTestSuite) TestSyncUser_AlreadySeenArticle() {
	ctx := context.Background()

	journal := domain.Journal{ID: 1, Title: "Journal of Business Venturing", PrintISSN: utils.Ptr("0883-9026")}

	s.settings.EXPECT().Get(ctx, "user-1").Return(&domain.UserSettings{UserID: "user-1"}, nil)
	s.follows.EXPECT().ListFollowed(ctx, "user-1").Return([]domain.Journal{journal}, nil)

	s.registry.EXPECT().FetchRecent(gomock.Any(), "0883-9026", time.Time{}).Return([]domain.Publication{
		{DOI: "10.1/x", Title: "Title A", CreatedAt: time.Now()},
	}, nil)

	s.expectTransaction()

	s.articles.EXPECT().FindOrCreate(gomock.Any(), gomock.Any()).Return(int64(100), false, nil)
	s.userArticles.EXPECT().FindOrCreate(gomock.Any(), "user-1", int64(100)).Return(false, nil)

	s.settings.EXPECT().UpdateCursor(ctx, "user-1", 0, true).Return(nil)

	newArticles, err := s.service.SyncUser(ctx, "user-1", SyncOptions{})

	s.NoError(err)
	s.Empty(newArticles)
}

func (s *SyncServiceTestSuite) TestSyncUser_SharedArticleNewToThisUser() {
	ctx := context.Background()

	journal := domain.Journal{ID: 1, Title: "Journal of Business Venturing", PrintISSN: utils.Ptr("0883-9026")}

	s.settings.EXPECT().Get(ctx, "user-2").Return(&domain.UserSettings{UserID: "user-2"}, nil)
	s.follows.EXPECT().ListFollowed(ctx, "user-2").Return([]domain.Journal{journal}, nil)

	s.registry.EXPECT().FetchRecent(gomock.Any(), "0883-9026", time.Time{}).Return([]domain.Publication{
		{DOI: "10.1/x", Title: "Title A", CreatedAt: time.Now()},
	}, nil)

	s.expectTransaction()

	// Another user's sync already created the article; it is still new for
	// this user because their link row did not exist.
	s.articles.EXPECT().FindOrCreate(gomock.Any(), gomock.Any()).Return(int64(100), false, nil)
	s.userArticles.EXPECT().FindOrCreate(gomock.Any(), "user-2", int64(100)).Return(true, nil)
	s.publisher.EXPECT().Publish(gomock.Any(), "user-2", gomock.Any()).Return(nil)

	s.settings.EXPECT().UpdateCursor(ctx, "user-2", 0, true).Return(nil)

	newArticles, err := s.service.SyncUser(ctx, "user-2", SyncOptions{})

	s.NoError(err)
	s.Len(newArticles, 1)
}

func (s *SyncServiceTestSuite) TestSyncUser_SkipsJournalWithoutISSN() {
	ctx := context.Background()

	journal := domain.Journal{ID: 1, Title: "No ISSN Journal"}

	s.settings.EXPECT().Get(ctx, "user-1").Return(&domain.UserSettings{UserID: "user-1"}, nil)
	s.follows.EXPECT().ListFollowed(ctx, "user-1").Return([]domain.Journal{journal}, nil)
	s.settings.EXPECT().UpdateCursor(ctx, "user-1", 0, true).Return(nil)

	newArticles, err := s.service.SyncUser(ctx, "user-1", SyncOptions{})

	s.NoError(err)
	s.Empty(newArticles)
}

func (s *SyncServiceTestSuite) TestSyncUser_RegistryErrorIsolatedPerJournal() {
	ctx := context.Background()

	journals := []domain.Journal{
		{ID: 1, Title: "Broken", PrintISSN: utils.Ptr("1111-1111")},
		{ID: 2, Title: "Working", PrintISSN: utils.Ptr("2222-2222")},
	}

	s.settings.EXPECT().Get(ctx, "user-1").Return(&domain.UserSettings{UserID: "user-1"}, nil)
	s.follows.EXPECT().ListFollowed(ctx, "user-1").Return(journals, nil)

	s.registry.EXPECT().FetchRecent(gomock.Any(), "1111-1111", time.Time{}).Return(nil, errors.New("registry down"))
	s.registry.EXPECT().FetchRecent(gomock.Any(), "2222-2222", time.Time{}).Return([]domain.Publication{
		{DOI: "10.2/y", Title: "Title B", CreatedAt: time.Now()},
	}, nil)

	s.expectTransaction()

	s.articles.EXPECT().FindOrCreate(gomock.Any(), gomock.Any()).Return(int64(200), true, nil)
	s.userArticles.EXPECT().FindOrCreate(gomock.Any(), "user-1", int64(200)).Return(true, nil)
	s.publisher.EXPECT().Publish(gomock.Any(), "user-1", gomock.Any()).Return(nil)

	s.settings.EXPECT().UpdateCursor(ctx, "user-1", 0, true).Return(nil)

	newArticles, err := s.service.SyncUser(ctx, "user-1", SyncOptions{})

	s.NoError(err)
	s.Len(newArticles, 1)
	s.Equal("10.2/y", newArticles[0].DOI)
}

func (s *SyncServiceTestSuite) TestSyncUser_BatchResumesAtCursor() {
	ctx := context.Background()

	journals := []domain.Journal{
		{ID: 1, Title: "First", PrintISSN: utils.Ptr("1111-1111")},
		{ID: 2, Title: "Second", PrintISSN: utils.Ptr("2222-2222")},
		{ID: 3, Title: "Third", PrintISSN: utils.Ptr("3333-3333")},
	}

	s.settings.EXPECT().Get(ctx, "user-1").Return(&domain.UserSettings{UserID: "user-1", CheckIndex: 1}, nil)
	s.follows.EXPECT().ListFollowed(ctx, "user-1").Return(journals, nil)

	// Only the journal at the cursor position is fetched.
	s.registry.EXPECT().FetchRecent(gomock.Any(), "2222-2222", time.Time{}).Return(nil, nil)

	s.settings.EXPECT().UpdateCursor(ctx, "user-1", 2, false).Return(nil)

	newArticles, err := s.service.SyncUser(ctx, "user-1", SyncOptions{BatchSize: 1})

	s.NoError(err)
	s.Empty(newArticles)
}

func (s *SyncServiceTestSuite) TestSyncUser_FinalBatchWrapsCursor() {
	ctx := context.Background()

	journals := []domain.Journal{
		{ID: 1, Title: "First", PrintISSN: utils.Ptr("1111-1111")},
		{ID: 2, Title: "Second", PrintISSN: utils.Ptr("2222-2222")},
		{ID: 3, Title: "Third", PrintISSN: utils.Ptr("3333-3333")},
	}

	s.settings.EXPECT().Get(ctx, "user-1").Return(&domain.UserSettings{UserID: "user-1", CheckIndex: 2}, nil)
	s.follows.EXPECT().ListFollowed(ctx, "user-1").Return(journals, nil)

	s.registry.EXPECT().FetchRecent(gomock.Any(), "3333-3333", time.Time{}).Return(nil, nil)

	s.settings.EXPECT().UpdateCursor(ctx, "user-1", 0, true).Return(nil)

	_, err := s.service.SyncUser(ctx, "user-1", SyncOptions{BatchSize: 2})

	s.NoError(err)
}

func (s *SyncServiceTestSuite) TestSyncUser_IgnoreCursorStartsAtTop() {
	ctx := context.Background()

	journals := []domain.Journal{
		{ID: 1, Title: "First", PrintISSN: utils.Ptr("1111-1111")},
		{ID: 2, Title: "Second", PrintISSN: utils.Ptr("2222-2222")},
	}

	s.settings.EXPECT().Get(ctx, "user-1").Return(&domain.UserSettings{UserID: "user-1", CheckIndex: 1}, nil)
	s.follows.EXPECT().ListFollowed(ctx, "user-1").Return(journals, nil)

	s.registry.EXPECT().FetchRecent(gomock.Any(), "1111-1111", time.Time{}).Return(nil, nil)
	s.registry.EXPECT().FetchRecent(gomock.Any(), "2222-2222", time.Time{}).Return(nil, nil)

	s.settings.EXPECT().UpdateCursor(ctx, "user-1", 0, true).Return(nil)

	_, err := s.service.SyncUser(ctx, "user-1", SyncOptions{IgnoreCursor: true})

	s.NoError(err)
}

func (s *SyncServiceTestSuite) TestSyncUser_PersistErrorSkipsPublication() {
	ctx := context.Background()

	journal := domain.Journal{ID: 1, Title: "Journal", PrintISSN: utils.Ptr("0883-9026")}

	s.settings.EXPECT().Get(ctx, "user-1").Return(&domain.UserSettings{UserID: "user-1"}, nil)
	s.follows.EXPECT().ListFollowed(ctx, "user-1").Return([]domain.Journal{journal}, nil)

	s.registry.EXPECT().FetchRecent(gomock.Any(), "0883-9026", time.Time{}).Return([]domain.Publication{
		{DOI: "10.1/bad", Title: "Bad", CreatedAt: time.Now()},
		{DOI: "10.1/good", Title: "Good", CreatedAt: time.Now()},
	}, nil)

	s.expectTransaction()

	s.articles.EXPECT().FindOrCreate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, article *domain.Article) (int64, bool, error) {
			if article.DOI == "10.1/bad" {
				return 0, false, errors.New("constraint violation")
			}
			return 101, true, nil
		},
	).Times(2)
	s.userArticles.EXPECT().FindOrCreate(gomock.Any(), "user-1", int64(101)).Return(true, nil)
	s.publisher.EXPECT().Publish(gomock.Any(), "user-1", gomock.Any()).Return(nil)

	s.settings.EXPECT().UpdateCursor(ctx, "user-1", 0, true).Return(nil)

	newArticles, err := s.service.SyncUser(ctx, "user-1", SyncOptions{})

	s.NoError(err)
	s.Len(newArticles, 1)
	s.Equal("10.1/good", newArticles[0].DOI)
}

func (s *SyncServiceTestSuite) TestSyncUser_PublisherNil() {
	ctx := context.Background()

	service := NewSyncService(
		s.registry,
		s.follows,
		s.articles,
		s.userArticles,
		s.settings,
		s.txManager,
		nil,
		s.logger,
		2,
	)

	journal := domain.Journal{ID: 1, Title: "Journal", PrintISSN: utils.Ptr("0883-9026")}

	s.settings.EXPECT().Get(ctx, "user-1").Return(&domain.UserSettings{UserID: "user-1"}, nil)
	s.follows.EXPECT().ListFollowed(ctx, "user-1").Return([]domain.Journal{journal}, nil)

	s.registry.EXPECT().FetchRecent(gomock.Any(), "0883-9026", time.Time{}).Return([]domain.Publication{
		{DOI: "10.1/x", Title: "Title A", CreatedAt: time.Now()},
	}, nil)

	s.expectTransaction()

	s.articles.EXPECT().FindOrCreate(gomock.Any(), gomock.Any()).Return(int64(100), true, nil)
	s.userArticles.EXPECT().FindOrCreate(gomock.Any(), "user-1", int64(100)).Return(true, nil)

	s.settings.EXPECT().UpdateCursor(ctx, "user-1", 0, true).Return(nil)

	newArticles, err := service.SyncUser(ctx, "user-1", SyncOptions{})

	s.NoError(err)
	s.Len(newArticles, 1)
}

func (s *SyncServiceTestSuite) TestSyncUser_SettingsError() {
	ctx := context.Background()

	s.settings.EXPECT().Get(ctx, "user-1").Return(nil, errors.New("db down"))

	newArticles, err := s.service.SyncUser(ctx, "user-1", SyncOptions{})

	s.Error(err)
	s.Nil(newArticles)
	s.Contains(err.Error(), "load settings")
}

func (s *SyncServiceTestSuite) TestSyncUser_CursorUpdateError() {
	ctx := context.Background()

	s.settings.EXPECT().Get(ctx, "user-1").Return(&domain.UserSettings{UserID: "user-1"}, nil)
	s.follows.EXPECT().ListFollowed(ctx, "user-1").Return(nil, nil)
	s.settings.EXPECT().UpdateCursor(ctx, "user-1", 0, true).Return(errors.New("db down"))

	_, err := s.service.SyncUser(ctx, "user-1", SyncOptions{})

	s.Error(err)
	s.Contains(err.Error(), "update cursor")
}
