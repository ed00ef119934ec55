package session

import (
	"log/slog"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/suite"

	"plutusgrip-client/internal/models"
	"plutusgrip-client/internal/storage"
)

type StoreTestSuite struct {
	suite.Suite
	repo  storage.CredentialRepositoryInterface
	store *Store
}

func (s *StoreTestSuite) SetupTest() {
	db := storage.SetupTestDB(s.T())
	s.repo = storage.NewCredentialRepository(db.DB)

	var err error
	s.store, err = NewStore(s.repo, "", slog.Default())
	s.Require().NoError(err)
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (s *StoreTestSuite) TestIsAuthenticated_FollowsStorage() {
	s.False(s.store.IsAuthenticated())

	s.Require().NoError(s.store.SetTokens("access", "refresh"))
	s.True(s.store.IsAuthenticated())

	s.Require().NoError(s.store.ClearTokens())
	s.False(s.store.IsAuthenticated())
}

func (s *StoreTestSuite) TestAccessToken_ReadThrough() {
	// Prime the mirror with an empty read, then write behind the store's
	// back. A cached nil must not shadow the new token.
	s.Empty(s.store.AccessToken())

	s.Require().NoError(s.repo.Set(models.CredentialKeyAccessToken, "written-externally"))

	s.Equal("written-externally", s.store.AccessToken())
	s.True(s.store.IsAuthenticated())
}

func (s *StoreTestSuite) TestSetTokens_PersistsBoth() {
	s.Require().NoError(s.store.SetTokens("token_abc123", "refresh_xyz"))

	access, err := s.repo.Get(models.CredentialKeyAccessToken)
	s.NoError(err)
	s.Equal("token_abc123", access)

	refresh, err := s.repo.Get(models.CredentialKeyRefreshToken)
	s.NoError(err)
	s.Equal("refresh_xyz", refresh)
}

func (s *StoreTestSuite) TestSetAccessToken_LeavesRefreshUntouched() {
	s.Require().NoError(s.store.SetTokens("old-access", "keep-me"))
	s.Require().NoError(s.store.SetAccessToken("new-access"))

	s.Equal("new-access", s.store.AccessToken())
	s.Equal("keep-me", s.store.RefreshToken())
}

func (s *StoreTestSuite) TestClearTokens_RemovesUserRecord() {
	s.Require().NoError(s.store.SetTokens("a", "r"))
	s.Require().NoError(s.store.SetUser(&models.User{ID: "u1", Name: gofakeit.Name(), Email: gofakeit.Email()}))

	s.Require().NoError(s.store.ClearTokens())

	user, err := s.store.User()
	s.NoError(err)
	s.Nil(user)
}

func (s *StoreTestSuite) TestUser_RoundTrip() {
	want := &models.User{ID: "u42", Name: "João Silva", Email: "joao@example.com"}
	s.Require().NoError(s.store.SetTokens("a", "r"))
	s.Require().NoError(s.store.SetUser(want))

	got, err := s.store.User()
	s.NoError(err)
	s.Require().NotNil(got)
	s.Equal(want.ID, got.ID)
	s.Equal(want.Email, got.Email)
}

func (s *StoreTestSuite) TestUser_CorruptedRecordClearsSession() {
	s.Require().NoError(s.store.SetTokens("a", "r"))
	s.Require().NoError(s.repo.Set(models.CredentialKeyUser, "{not valid json"))

	user, err := s.store.User()
	s.NoError(err)
	s.Nil(user)

	// The whole trio is gone, not just the user record.
	s.False(s.store.IsAuthenticated())
	s.Empty(s.store.RefreshToken())
}

func TestNewStore_RepairsUserWithoutAccessToken(t *testing.T) {
	db := storage.SetupTestDB(t)
	repo := storage.NewCredentialRepository(db.DB)

	if err := repo.Set(models.CredentialKeyUser, `{"id":"u1","name":"x","email":"x@example.com"}`); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := repo.Set(models.CredentialKeyRefreshToken, "dangling-refresh"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	store, err := NewStore(repo, "", slog.Default())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	if store.IsAuthenticated() {
		t.Fatal("expected unauthenticated after repair")
	}
	if got := store.RefreshToken(); got != "" {
		t.Fatalf("expected refresh token cleared, got %q", got)
	}
	if user, _ := store.User(); user != nil {
		t.Fatalf("expected user cleared, got %+v", user)
	}
}

func TestNewStore_EncryptedValuesAtRest(t *testing.T) {
	db := storage.SetupTestDB(t)
	repo := storage.NewCredentialRepository(db.DB)

	store, err := NewStore(repo, "correct horse battery staple", slog.Default())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	if err := store.SetTokens("secret-access", "secret-refresh"); err != nil {
		t.Fatalf("set tokens: %v", err)
	}

	// The raw persisted value must not be the plaintext token.
	raw, err := repo.Get(models.CredentialKeyAccessToken)
	if err != nil {
		t.Fatalf("raw read: %v", err)
	}
	if raw == "secret-access" {
		t.Fatal("token persisted in plaintext despite passphrase")
	}

	if got := store.AccessToken(); got != "secret-access" {
		t.Fatalf("decrypted read: got %q", got)
	}
}

func TestNewStore_WrongPassphraseReadsAsAbsent(t *testing.T) {
	db := storage.SetupTestDB(t)
	repo := storage.NewCredentialRepository(db.DB)

	first, err := NewStore(repo, "right-passphrase", slog.Default())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if err := first.SetTokens("secret-access", "secret-refresh"); err != nil {
		t.Fatalf("set tokens: %v", err)
	}

	second, err := NewStore(repo, "wrong-passphrase", slog.Default())
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}

	if got := second.AccessToken(); got != "" {
		t.Fatalf("expected unreadable token to read as absent, got %q", got)
	}
	if second.IsAuthenticated() {
		t.Fatal("expected unauthenticated with wrong passphrase")
	}
}
