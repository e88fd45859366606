package preferences_test

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/atlas-api/internal/errors"
	"github.com/KirkDiggler/atlas-api/internal/preferences"
	prefrepo "github.com/KirkDiggler/atlas-api/internal/repositories/preferences"
	preferencesmock "github.com/KirkDiggler/atlas-api/internal/repositories/preferences/mock"
	"github.com/KirkDiggler/atlas-api/internal/testutils"
)

const testClientID = "client_1"

type StoreTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *preferencesmock.MockRepository
	store    *preferences.Store
	ctx      context.Context
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (s *StoreTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = preferencesmock.NewMockRepository(s.ctrl)
	s.ctx = context.Background()

	store, err := preferences.NewStore(&preferences.StoreConfig{Repository: s.mockRepo})
	s.Require().NoError(err)
	s.store = store
}

func (s *StoreTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *StoreTestSuite) TestNewStoreValidation() {
	_, err := preferences.NewStore(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = preferences.NewStore(&preferences.StoreConfig{})
	s.Require().Error(err)
	s.Contains(err.Error(), "Repository: is required")
}

func (s *StoreTestSuite) TestLoadReadsRepositoryEveryTime() {
	s.mockRepo.EXPECT().
		Load(s.ctx, prefrepo.LoadInput{ClientID: testClientID, Key: preferences.KeyMenuOpen}).
		Return(&prefrepo.LoadOutput{Value: json.RawMessage(`false`)}, nil).
		Times(3)

	for n := 0; n < 3; n++ {
		value, ok, err := s.store.Load(s.ctx, testClientID, preferences.KeyMenuOpen)
		s.Require().NoError(err)
		s.True(ok)
		s.Equal("false", string(value))
	}
}

func (s *StoreTestSuite) TestLoadMissing() {
	s.mockRepo.EXPECT().
		Load(s.ctx, gomock.Any()).
		Return(nil, errors.NotFound("preference not found"))

	value, ok, err := s.store.Load(s.ctx, testClientID, preferences.KeyMenuOpen)
	s.Require().NoError(err)
	s.False(ok)
	s.Nil(value)
}

func (s *StoreTestSuite) TestLoadFailureIsReturned() {
	s.mockRepo.EXPECT().
		Load(s.ctx, gomock.Any()).
		Return(nil, errors.Unavailable("connection refused"))

	_, ok, err := s.store.Load(s.ctx, testClientID, preferences.KeyMenuOpen)
	s.Require().Error(err)
	s.False(ok)
	s.True(errors.IsInternal(err))
	s.Contains(err.Error(), "connection refused")
}

func (s *StoreTestSuite) TestToggleAfterFailedLoadDoesNotSave() {
	atoms, err := preferences.NewAtoms(s.store, nil)
	s.Require().NoError(err)

	// no Save expectation: any write fails the test
	s.mockRepo.EXPECT().
		Load(s.ctx, gomock.Any()).
		Return(nil, errors.Internal("connection reset")).
		Times(2)

	set, present, err := atoms.MarkedMarkers.Toggle(s.ctx, testClientID, "m1")
	s.Require().Error(err)
	s.True(errors.IsInternal(err))
	s.Nil(set)
	s.False(present)

	flags, value, err := atoms.CategoryVisibility.Toggle(s.ctx, testClientID, "chests")
	s.Require().Error(err)
	s.True(errors.IsInternal(err))
	s.Nil(flags)
	s.False(value)
}

func (s *StoreTestSuite) TestGetAfterFailedLoadFallsBack() {
	atoms, err := preferences.NewAtoms(s.store, nil)
	s.Require().NoError(err)

	s.mockRepo.EXPECT().
		Load(s.ctx, gomock.Any()).
		Return(nil, errors.Internal("connection reset")).
		Times(3)

	s.Equal(0, atoms.MarkedMarkers.Get(s.ctx, testClientID).Len())
	s.Empty(atoms.CategoryExpanded.Get(s.ctx, testClientID))
	s.Equal(preferences.DefaultSidebarWidth, atoms.SidebarWidth.Get(s.ctx, testClientID))
}

func (s *StoreTestSuite) TestSaveFailureIsSwallowed() {
	s.mockRepo.EXPECT().
		Save(s.ctx, prefrepo.SaveInput{
			ClientID: testClientID,
			Key:      preferences.KeySidebarWidth,
			Value:    json.RawMessage(`480`),
		}).
		Return(nil, errors.Internal("quota exceeded"))
	s.mockRepo.EXPECT().
		Load(s.ctx, gomock.Any()).
		Return(nil, errors.NotFound("preference not found"))

	s.store.Save(s.ctx, testClientID, preferences.KeySidebarWidth, 480)

	_, ok, err := s.store.Load(s.ctx, testClientID, preferences.KeySidebarWidth)
	s.Require().NoError(err)
	s.False(ok)
}

func (s *StoreTestSuite) TestDelete() {
	s.mockRepo.EXPECT().
		Delete(s.ctx, prefrepo.DeleteInput{ClientID: testClientID, Key: preferences.KeySelectedMap}).
		Return(nil, errors.Internal("down"))

	s.store.Delete(s.ctx, testClientID, preferences.KeySelectedMap)
}

func (s *StoreTestSuite) TestLockedSerializesClients() {
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		overlap bool
	)
	inside := make(map[string]int)
	for i := 0; i < 200; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			clientID := fmt.Sprintf("client_%d", i%20)
			s.store.Locked(clientID, func() {
				mu.Lock()
				inside[clientID]++
				if inside[clientID] > 1 {
					overlap = true
				}
				mu.Unlock()

				mu.Lock()
				inside[clientID]--
				mu.Unlock()
			})
		}()
	}
	wg.Wait()

	s.False(overlap)
}

type SharedStoreTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	first  *preferences.Atoms
	second *preferences.Atoms
	ctx    context.Context
}

func TestSharedStoreSuite(t *testing.T) {
	suite.Run(t, new(SharedStoreTestSuite))
}

func (s *SharedStoreTestSuite) SetupTest() {
	client, mr := testutils.CreateTestRedisClient(s.T())
	s.mr = mr
	s.ctx = context.Background()

	repo, err := prefrepo.NewRedis(&prefrepo.RedisConfig{Client: client, TTL: time.Hour})
	s.Require().NoError(err)

	s.first = s.newAtoms(repo)
	s.second = s.newAtoms(repo)
}

func (s *SharedStoreTestSuite) newAtoms(repo prefrepo.Repository) *preferences.Atoms {
	store, err := preferences.NewStore(&preferences.StoreConfig{Repository: repo})
	s.Require().NoError(err)

	atoms, err := preferences.NewAtoms(store, nil)
	s.Require().NoError(err)
	return atoms
}

func (s *SharedStoreTestSuite) TestInstancesSeeEachOthersWrites() {
	_, _, err := s.first.MarkedMarkers.Toggle(s.ctx, testClientID, "m1")
	s.Require().NoError(err)

	set, present, err := s.second.MarkedMarkers.Toggle(s.ctx, testClientID, "m2")
	s.Require().NoError(err)
	s.True(present)
	s.Equal([]string{"m1", "m2"}, set.Items())

	s.Equal([]string{"m1", "m2"}, s.first.MarkedMarkers.Get(s.ctx, testClientID).Items())

	s.second.SidebarWidth.Set(s.ctx, testClientID, 500)
	s.Equal(500, s.first.SidebarWidth.Get(s.ctx, testClientID))
}

func (s *SharedStoreTestSuite) TestExpiredPreferencesReadAsDefaults() {
	_, _, err := s.first.MarkedMarkers.Toggle(s.ctx, testClientID, "m1")
	s.Require().NoError(err)
	s.first.SidebarWidth.Set(s.ctx, testClientID, 500)

	s.mr.FastForward(2 * time.Hour)

	for _, atoms := range []*preferences.Atoms{s.first, s.second} {
		s.Equal(0, atoms.MarkedMarkers.Get(s.ctx, testClientID).Len())
		s.Equal(preferences.DefaultSidebarWidth, atoms.SidebarWidth.Get(s.ctx, testClientID))
	}
}
