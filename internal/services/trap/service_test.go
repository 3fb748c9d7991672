package trap_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/dnd-trap-bot/internal/dice"
	mockdice "github.com/KirkDiggler/dnd-trap-bot/internal/dice/mock"
	trapdomain "github.com/KirkDiggler/dnd-trap-bot/internal/domain/trap"
	dnderr "github.com/KirkDiggler/dnd-trap-bot/internal/errors"
	"github.com/KirkDiggler/dnd-trap-bot/internal/repositories/characters"
	"github.com/KirkDiggler/dnd-trap-bot/internal/repositories/traps"
	"github.com/KirkDiggler/dnd-trap-bot/internal/services/defense"
	trapservice "github.com/KirkDiggler/dnd-trap-bot/internal/services/trap"
	mocktrap "github.com/KirkDiggler/dnd-trap-bot/internal/services/trap/mock"
	"github.com/KirkDiggler/dnd-trap-bot/internal/testutils"
	"github.com/KirkDiggler/dnd-trap-bot/internal/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ServiceTestSuite struct {
	suite.Suite
	ctx       context.Context
	ctrl      *gomock.Controller
	repo      traps.Repository
	roller    *mockdice.ManualMockRoller
	announcer *mocktrap.MockAnnouncer
	reporter  *mocktrap.MockErrorReporter
	svc       trapservice.Service
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.repo = traps.NewInMemoryRepository(nil)
	s.roller = mockdice.NewManualMockRoller()
	s.announcer = mocktrap.NewMockAnnouncer(s.ctrl)
	s.reporter = mocktrap.NewMockErrorReporter(s.ctrl)

	chars := characters.NewInMemoryRepository()
	s.Require().NoError(chars.Put(s.ctx, testutils.CreateTestCharacter("char-1", "Lyra")))

	s.svc = trapservice.NewService(&trapservice.ServiceConfig{
		Repository:    s.repo,
		Characters:    trapservice.NewRepositoryCharacterResolver(chars),
		Defenses:      defense.NewAttributeResolver(defense.FourthEditionAttributes),
		Dice:          dice.NewExpressionRoller(s.roller),
		Announcer:     s.announcer,
		ErrorReporter: s.reporter,
		UUIDGenerator: uuid.NewSequenceGenerator("trap-1", "trap-2", "trap-3"),
	})
}

func (s *ServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ServiceTestSuite) createTrap(name string) *trapdomain.Trap {
	t, err := s.svc.CreateTrap(s.ctx, &trapservice.CreateTrapInput{Name: name, ChannelID: "chan-1"})
	s.Require().NoError(err)
	return t
}

func (s *ServiceTestSuite) storedNotes(id string) string {
	t, err := s.repo.Get(s.ctx, id)
	s.Require().NoError(err)
	return t.GMNotes
}

func (s *ServiceTestSuite) TestCreateTrap() {
	t, err := s.svc.CreateTrap(s.ctx, &trapservice.CreateTrapInput{
		Name:      "  Pit  ",
		ChannelID: "chan-1",
		Message:   "The floor gives way!",
	})
	s.Require().NoError(err)

	s.Equal("trap-1", t.ID)
	s.Equal("Pit", t.Name)

	cfg, err := t.Configuration()
	s.Require().NoError(err)
	s.Equal("The floor gives way!", cfg.Message)
	s.False(cfg.HasAttack())
}

func (s *ServiceTestSuite) TestCreateTrapValidation() {
	_, err := s.svc.CreateTrap(s.ctx, nil)
	s.True(dnderr.IsInvalidArgument(err))

	_, err = s.svc.CreateTrap(s.ctx, &trapservice.CreateTrapInput{Name: " ", ChannelID: "chan-1"})
	s.True(dnderr.IsInvalidArgument(err))

	_, err = s.svc.CreateTrap(s.ctx, &trapservice.CreateTrapInput{Name: "Pit"})
	s.True(dnderr.IsInvalidArgument(err))
}

func (s *ServiceTestSuite) TestGetAndDeleteTrap() {
	created := s.createTrap("Pit")

	got, err := s.svc.GetTrap(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal(created.Name, got.Name)

	s.Require().NoError(s.svc.DeleteTrap(s.ctx, created.ID))

	_, err = s.svc.GetTrap(s.ctx, created.ID)
	s.True(dnderr.IsNotFound(err))
	s.Equal(created.ID, dnderr.GetMeta(err)["trap_id"])

	s.True(dnderr.IsNotFound(s.svc.DeleteTrap(s.ctx, created.ID)))
}

func (s *ServiceTestSuite) TestListChannelTraps() {
	s.createTrap("Pit")
	s.createTrap("Alarm")

	list, err := s.svc.ListChannelTraps(s.ctx, "chan-1")
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal("Alarm", list[0].Name)
	s.Equal("Pit", list[1].Name)

	_, err = s.svc.ListChannelTraps(s.ctx, "")
	s.True(dnderr.IsInvalidArgument(err))
}

func (s *ServiceTestSuite) TestModifyPropertyWritesWholeDocument() {
	t := s.createTrap("Needle")

	cfg, err := s.svc.ModifyProperty(s.ctx, t.ID, []string{"attack", "5", "ac"})
	s.Require().NoError(err)
	s.Equal(5, *cfg.Attack)
	s.Equal(trapdomain.DefenseAC, cfg.Defense)

	_, err = s.svc.ModifyProperty(s.ctx, t.ID, []string{"damage", "2d6+3"})
	s.Require().NoError(err)

	stored, err := trapdomain.ParseConfiguration(s.storedNotes(t.ID))
	s.Require().NoError(err)
	s.Equal(5, *stored.Attack)
	s.Equal("2d6+3", stored.Damage)

	// A bad bonus clears attack and defense together
	cfg, err = s.svc.ModifyProperty(s.ctx, t.ID, []string{"attack", "abc", "ac"})
	s.Require().NoError(err)
	s.Nil(cfg.Attack)
	s.Empty(cfg.Defense)

	stored, err = trapdomain.ParseConfiguration(s.storedNotes(t.ID))
	s.Require().NoError(err)
	s.Nil(stored.Attack)
	s.Empty(stored.Defense)
	s.Equal("2d6+3", stored.Damage)
}

func (s *ServiceTestSuite) TestModifyPropertyIsIdempotent() {
	t := s.createTrap("Needle")

	_, err := s.svc.ModifyProperty(s.ctx, t.ID, []string{"spotDC", "17"})
	s.Require().NoError(err)
	first := s.storedNotes(t.ID)

	_, err = s.svc.ModifyProperty(s.ctx, t.ID, []string{"spotDC", "17"})
	s.Require().NoError(err)
	s.Equal(first, s.storedNotes(t.ID))
}

func (s *ServiceTestSuite) TestModifyPropertyUnknownNameLeavesConfiguration() {
	t := s.createTrap("Needle")
	_, err := s.svc.ModifyProperty(s.ctx, t.ID, []string{"missHalf", "yes"})
	s.Require().NoError(err)
	before := s.storedNotes(t.ID)

	cfg, err := s.svc.ModifyProperty(s.ctx, t.ID, []string{"colour", "red"})
	s.Require().NoError(err)
	s.True(cfg.MissHalf)
	s.Equal(before, s.storedNotes(t.ID))
}

func (s *ServiceTestSuite) TestModifyPropertyErrors() {
	t := s.createTrap("Needle")

	_, err := s.svc.ModifyProperty(s.ctx, t.ID, nil)
	s.True(dnderr.IsInvalidArgument(err))

	_, err = s.svc.ModifyProperty(s.ctx, "missing", []string{"damage", "1d6"})
	s.True(dnderr.IsNotFound(err))
}

func (s *ServiceTestSuite) TestSetMessage() {
	t := s.createTrap("Needle")
	_, err := s.svc.ModifyProperty(s.ctx, t.ID, []string{"damage", "1d4"})
	s.Require().NoError(err)

	cfg, err := s.svc.SetMessage(s.ctx, t.ID, "A tiny needle pricks your finger.")
	s.Require().NoError(err)
	s.Equal("A tiny needle pricks your finger.", cfg.Message)
	s.Equal("1d4", cfg.Damage)
}

func (s *ServiceTestSuite) TestProperties() {
	t := s.createTrap("Needle")
	_, err := s.svc.ModifyProperty(s.ctx, t.ID, []string{"attack", "5", "ref"})
	s.Require().NoError(err)

	props, err := s.svc.Properties(s.ctx, t.ID)
	s.Require().NoError(err)
	s.Require().NotEmpty(props)
	s.Equal("attack", props[0].ID)
	s.Equal("+5 vs ref", props[0].Value)
}

func (s *ServiceTestSuite) TestTriggerActivatesStoredTrap() {
	t := s.createTrap("Needle")
	_, err := s.svc.ModifyProperty(s.ctx, t.ID, []string{"attack", "5", "ac"})
	s.Require().NoError(err)
	s.roller.SetNextRoll(20)

	s.announcer.EXPECT().Announce(gomock.Any(), "chan-1", gomock.Any()).
		Do(func(_ context.Context, _ string, content *trapdomain.Content) {
			s.Equal("Needle", content.Title)
			s.Equal("HIT!", content.Blocks[2].Label)
		})

	s.svc.Trigger(s.ctx, t.ID, testutils.CreateTestVictim("token-1", "Lyra", "char-1"))
}

func (s *ServiceTestSuite) TestTriggerUnknownTrapIsReported() {
	s.reporter.EXPECT().ReportError(gomock.Any(), "", gomock.Any()).
		Do(func(_ context.Context, _ string, err error) {
			s.True(dnderr.IsNotFound(err))
		})

	s.svc.Trigger(s.ctx, "missing", testutils.CreateTestVictim("token-1", "Lyra", "char-1"))
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func TestNewService_PanicsWithoutDependencies(t *testing.T) {
	ctrl := gomock.NewController(t)
	full := func() *trapservice.ServiceConfig {
		return &trapservice.ServiceConfig{
			Repository:    traps.NewInMemoryRepository(nil),
			Characters:    mocktrap.NewMockCharacterResolver(ctrl),
			Defenses:      defense.NewFixedResolver(nil),
			Dice:          mocktrap.NewMockDiceRoller(ctrl),
			Announcer:     mocktrap.NewMockAnnouncer(ctrl),
			ErrorReporter: mocktrap.NewMockErrorReporter(ctrl),
		}
	}

	require.NotPanics(t, func() { trapservice.NewService(full()) })

	strip := []func(*trapservice.ServiceConfig){
		func(c *trapservice.ServiceConfig) { c.Repository = nil },
		func(c *trapservice.ServiceConfig) { c.Characters = nil },
		func(c *trapservice.ServiceConfig) { c.Defenses = nil },
		func(c *trapservice.ServiceConfig) { c.Dice = nil },
		func(c *trapservice.ServiceConfig) { c.Announcer = nil },
		func(c *trapservice.ServiceConfig) { c.ErrorReporter = nil },
	}
	for _, remove := range strip {
		cfg := full()
		remove(cfg)
		assert.Panics(t, func() { trapservice.NewService(cfg) })
	}
}
