package preferences_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/atlas-api/internal/errors"
	"github.com/KirkDiggler/atlas-api/internal/repositories/preferences"
	"github.com/KirkDiggler/atlas-api/internal/testutils"
)

const (
	testClientID = "client_test123"
	testKey      = "markedMarkers"
)

type RedisPreferencesTestSuite struct {
	suite.Suite
	mr   *miniredis.Miniredis
	repo preferences.Repository
	ctx  context.Context
}

func TestRedisPreferencesSuite(t *testing.T) {
	suite.Run(t, new(RedisPreferencesTestSuite))
}

func (s *RedisPreferencesTestSuite) SetupTest() {
	client, mr := testutils.CreateTestRedisClient(s.T())
	s.mr = mr
	s.ctx = context.Background()

	repo, err := preferences.NewRedis(&preferences.RedisConfig{
		Client: client,
		TTL:    time.Hour,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisPreferencesTestSuite) TestNewRedis() {
	client, _ := testutils.CreateTestRedisClient(s.T())

	testCases := []struct {
		name    string
		config  *preferences.RedisConfig
		wantErr bool
		errMsg  string
	}{
		{
			name:   "success with valid config",
			config: &preferences.RedisConfig{Client: client},
		},
		{
			name:    "error with nil config",
			wantErr: true,
			errMsg:  "config cannot be nil",
		},
		{
			name:    "error with nil client",
			config:  &preferences.RedisConfig{},
			wantErr: true,
			errMsg:  "client cannot be nil",
		},
		{
			name:    "error with negative ttl",
			config:  &preferences.RedisConfig{Client: client, TTL: -time.Second},
			wantErr: true,
			errMsg:  "ttl cannot be negative",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			repo, err := preferences.NewRedis(tc.config)
			if tc.wantErr {
				s.Error(err)
				s.Contains(err.Error(), tc.errMsg)
				s.Nil(repo)
				return
			}
			s.NoError(err)
			s.NotNil(repo)
		})
	}
}

func (s *RedisPreferencesTestSuite) TestSaveAndLoad() {
	value := json.RawMessage(`["m1","m2"]`)

	_, err := s.repo.Save(s.ctx, preferences.SaveInput{ClientID: testClientID, Key: testKey, Value: value})
	s.Require().NoError(err)

	stored, err := s.mr.Get("preferences:client_test123:markedMarkers")
	s.Require().NoError(err)
	s.JSONEq(`["m1","m2"]`, stored)
	s.Equal(time.Hour, s.mr.TTL(preferences.GetKey(testClientID, testKey)))

	output, err := s.repo.Load(s.ctx, preferences.LoadInput{ClientID: testClientID, Key: testKey})
	s.Require().NoError(err)
	s.JSONEq(`["m1","m2"]`, string(output.Value))
}

func (s *RedisPreferencesTestSuite) TestSaveOverwrites() {
	for _, v := range []string{`true`, `false`} {
		_, err := s.repo.Save(s.ctx, preferences.SaveInput{ClientID: testClientID, Key: "menuOpen", Value: json.RawMessage(v)})
		s.Require().NoError(err)
	}

	output, err := s.repo.Load(s.ctx, preferences.LoadInput{ClientID: testClientID, Key: "menuOpen"})
	s.Require().NoError(err)
	s.Equal("false", string(output.Value))
}

func (s *RedisPreferencesTestSuite) TestLoadMissing() {
	output, err := s.repo.Load(s.ctx, preferences.LoadInput{ClientID: testClientID, Key: testKey})
	s.Nil(output)
	s.True(errors.IsNotFound(err))
}

func (s *RedisPreferencesTestSuite) TestLoadReturnsRawStoredValue() {
	// values written by other tools are returned as is; shape checks happen above
	s.Require().NoError(s.mr.Set(preferences.GetKey(testClientID, testKey), `42`))

	output, err := s.repo.Load(s.ctx, preferences.LoadInput{ClientID: testClientID, Key: testKey})
	s.Require().NoError(err)
	s.Equal("42", string(output.Value))
}

func (s *RedisPreferencesTestSuite) TestDelete() {
	_, err := s.repo.Save(s.ctx, preferences.SaveInput{ClientID: testClientID, Key: testKey, Value: json.RawMessage(`[]`)})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, preferences.DeleteInput{ClientID: testClientID, Key: testKey})
	s.Require().NoError(err)
	s.False(s.mr.Exists(preferences.GetKey(testClientID, testKey)))

	// deleting again is not an error
	_, err = s.repo.Delete(s.ctx, preferences.DeleteInput{ClientID: testClientID, Key: testKey})
	s.NoError(err)
}

func (s *RedisPreferencesTestSuite) TestInvalidInput() {
	testCases := []struct {
		name   string
		call   func() error
		errMsg string
	}{
		{
			name: "load without client",
			call: func() error {
				_, err := s.repo.Load(s.ctx, preferences.LoadInput{Key: testKey})
				return err
			},
			errMsg: "client ID cannot be empty",
		},
		{
			name: "save without key",
			call: func() error {
				_, err := s.repo.Save(s.ctx, preferences.SaveInput{ClientID: testClientID, Value: json.RawMessage(`1`)})
				return err
			},
			errMsg: "preference key cannot be empty",
		},
		{
			name: "save invalid json",
			call: func() error {
				_, err := s.repo.Save(s.ctx, preferences.SaveInput{ClientID: testClientID, Key: testKey, Value: json.RawMessage(`{`)})
				return err
			},
			errMsg: "must be valid JSON",
		},
		{
			name: "delete without client",
			call: func() error {
				_, err := s.repo.Delete(s.ctx, preferences.DeleteInput{Key: testKey})
				return err
			},
			errMsg: "client ID cannot be empty",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.call()
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Contains(err.Error(), tc.errMsg)
		})
	}
}

func (s *RedisPreferencesTestSuite) TestStorageFailure() {
	s.mr.SetError("ERR storage unavailable")
	defer s.mr.SetError("")

	_, err := s.repo.Save(s.ctx, preferences.SaveInput{ClientID: testClientID, Key: testKey, Value: json.RawMessage(`[]`)})
	s.Require().Error(err)
	s.True(errors.IsInternal(err))
	s.Contains(err.Error(), "failed to save preference markedMarkers")

	_, err = s.repo.Load(s.ctx, preferences.LoadInput{ClientID: testClientID, Key: testKey})
	s.Require().Error(err)
	s.True(errors.IsInternal(err))
}
