package traps_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/KirkDiggler/dnd-trap-bot/internal/domain/trap"
	dnderr "github.com/KirkDiggler/dnd-trap-bot/internal/errors"
	"github.com/KirkDiggler/dnd-trap-bot/internal/repositories/traps"
	"github.com/KirkDiggler/dnd-trap-bot/internal/repositories/traps/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// RepositoryTestSuite runs the same behaviour checks against every backend
type RepositoryTestSuite struct {
	suite.Suite
	newRepo      func(t *testing.T, tp traps.TimeProvider) traps.Repository
	mockCtrl     *gomock.Controller
	timeProvider *mocks.MockTimeProvider
	now          time.Time
	repo         traps.Repository
	ctx          context.Context
}

func (s *RepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s.mockCtrl = gomock.NewController(s.T())
	s.timeProvider = mocks.NewMockTimeProvider(s.mockCtrl)
	s.timeProvider.EXPECT().Now().DoAndReturn(func() time.Time { return s.now }).AnyTimes()
	s.repo = s.newRepo(s.T(), s.timeProvider)
}

func (s *RepositoryTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestInMemoryRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func(_ *testing.T, tp traps.TimeProvider) traps.Repository {
			return traps.NewInMemoryRepository(tp)
		},
	})
}

func TestSQLiteRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func(t *testing.T, tp traps.TimeProvider) traps.Repository {
			store, err := traps.OpenSQLite(filepath.Join(t.TempDir(), "traps.db"), tp)
			if err != nil {
				t.Fatalf("open sqlite: %v", err)
			}
			t.Cleanup(func() { _ = store.Close() })
			return store
		},
	})
}

func (s *RepositoryTestSuite) newTrap(id, name, channel string) *trap.Trap {
	return &trap.Trap{ID: id, Name: name, ChannelID: channel}
}

func (s *RepositoryTestSuite) TestCreateAndGet() {
	t := s.newTrap("t1", "Pit", "chan-1")
	t.GMNotes = `{"message":"A pit opens!"}`

	s.Require().NoError(s.repo.Create(s.ctx, t))
	s.Equal(s.now, t.CreatedAt)

	got, err := s.repo.Get(s.ctx, "t1")
	s.Require().NoError(err)
	s.Equal("Pit", got.Name)
	s.Equal("chan-1", got.ChannelID)
	s.Equal(`{"message":"A pit opens!"}`, got.GMNotes)
	s.Equal(s.now, got.CreatedAt)
	s.Equal(s.now, got.UpdatedAt)
}

func (s *RepositoryTestSuite) TestCreateDuplicate() {
	s.Require().NoError(s.repo.Create(s.ctx, s.newTrap("t1", "Pit", "chan-1")))

	err := s.repo.Create(s.ctx, s.newTrap("t1", "Other", "chan-1"))
	s.True(dnderr.IsAlreadyExists(err))
}

func (s *RepositoryTestSuite) TestCreateInvalid() {
	s.True(dnderr.IsInvalidArgument(s.repo.Create(s.ctx, nil)))
	s.True(dnderr.IsInvalidArgument(s.repo.Create(s.ctx, s.newTrap("", "Pit", "chan-1"))))
}

func (s *RepositoryTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, "nope")
	s.True(dnderr.IsNotFound(err))
}

func (s *RepositoryTestSuite) TestUpdateReplacesWholeDocument() {
	t := s.newTrap("t1", "Pit", "chan-1")
	t.GMNotes = `{"attack":5,"defense":"ac","damage":"2d6"}`
	s.Require().NoError(s.repo.Create(s.ctx, t))

	created := s.now
	s.now = s.now.Add(time.Minute)

	t.GMNotes = `{"message":"Only this"}`
	s.Require().NoError(s.repo.Update(s.ctx, t))

	got, err := s.repo.Get(s.ctx, "t1")
	s.Require().NoError(err)
	s.Equal(`{"message":"Only this"}`, got.GMNotes)
	s.Equal(created, got.CreatedAt)
	s.Equal(s.now, got.UpdatedAt)
}

func (s *RepositoryTestSuite) TestUpdateMissing() {
	err := s.repo.Update(s.ctx, s.newTrap("ghost", "Ghost", "chan-1"))
	s.True(dnderr.IsNotFound(err))
}

func (s *RepositoryTestSuite) TestReturnedCopiesAreIsolated() {
	t := s.newTrap("t1", "Pit", "chan-1")
	s.Require().NoError(s.repo.Create(s.ctx, t))
	t.GMNotes = "mutated after create"

	got, err := s.repo.Get(s.ctx, "t1")
	s.Require().NoError(err)
	s.Empty(got.GMNotes)
}

func (s *RepositoryTestSuite) TestDelete() {
	s.Require().NoError(s.repo.Create(s.ctx, s.newTrap("t1", "Pit", "chan-1")))
	s.Require().NoError(s.repo.Delete(s.ctx, "t1"))

	_, err := s.repo.Get(s.ctx, "t1")
	s.True(dnderr.IsNotFound(err))
	s.True(dnderr.IsNotFound(s.repo.Delete(s.ctx, "t1")))
}

func (s *RepositoryTestSuite) TestListByChannel() {
	s.Require().NoError(s.repo.Create(s.ctx, s.newTrap("t2", "Spikes", "chan-1")))
	s.Require().NoError(s.repo.Create(s.ctx, s.newTrap("t1", "Pit", "chan-1")))
	s.Require().NoError(s.repo.Create(s.ctx, s.newTrap("t3", "Darts", "chan-2")))

	list, err := s.repo.ListByChannel(s.ctx, "chan-1")
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal("Pit", list[0].Name)
	s.Equal("Spikes", list[1].Name)

	empty, err := s.repo.ListByChannel(s.ctx, "chan-9")
	s.Require().NoError(err)
	s.Empty(empty)
}
