package mongo

import (
	"context"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/pos-system/auth-service/internal/core/domain"
)

/*
 * These tests run against a real MongoDB started with testcontainers. The
 * container is shared by the package and each test gets its own database.
 */

var (
	containerOnce sync.Once
	container     testcontainers.Container
	containerURI  string
	containerErr  error
)

func TestMain(m *testing.M) {
	code := m.Run()
	if container != nil {
		_ = container.Terminate(context.Background())
	}
	os.Exit(code)
}

func mongoURI(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping MongoDB container tests in -short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	containerOnce.Do(func() {
		ctx := context.Background()
		container, containerErr = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "mongo:7",
				ExposedPorts: []string{"27017/tcp"},
				WaitingFor:   wait.ForListeningPort("27017/tcp").WithStartupTimeout(60 * time.Second),
			},
			Started: true,
		})
		if containerErr != nil {
			return
		}
		containerURI, containerErr = container.PortEndpoint(ctx, "27017/tcp", "mongodb")
	})
	require.NoError(t, containerErr)
	return containerURI
}

func newTestRepo(t *testing.T) *UserRepository {
	t.Helper()
	ctx := context.Background()

	client, db, err := Connect(ctx, Config{
		URI:      mongoURI(t),
		Database: strings.ToLower(strings.ReplaceAll(t.Name(), "/", "_")),
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Drop(context.Background())
		_ = client.Disconnect(context.Background())
	})

	repo := NewUserRepository(db)
	require.NoError(t, repo.EnsureIndexes(ctx))
	return repo
}

func newUser(username string, role domain.Role) *domain.User {
	return &domain.User{
		Username:     username,
		PasswordHash: "hash-" + username,
		Role:         role,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, newUser("alice", domain.RoleAdmin))
	require.NoError(t, err)
	require.Len(t, created.ID, 24)

	byName, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, created.ID, byName.ID)
	require.True(t, byName.IsActive)

	byID, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, domain.RoleAdmin, byID.Role)

	_, err = repo.FindByID(ctx, "not-an-object-id")
	require.ErrorIs(t, err, domain.ErrUserNotFound)
	_, err = repo.FindByUsername(ctx, "ghost")
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserRepository_UniqueIndexes(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, newUser("alice", domain.RoleAdmin))
	require.NoError(t, err)

	_, err = repo.Create(ctx, newUser("alice", domain.RoleCashier))
	require.ErrorIs(t, err, domain.ErrUsernameTaken)

	_, err = repo.Create(ctx, newUser("mallory", domain.RoleAdmin))
	require.ErrorIs(t, err, domain.ErrAdminExists)

	_, err = repo.Create(ctx, newUser("bob", domain.RoleCashier))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newUser("carol", domain.RoleCashier))
	require.NoError(t, err)
}

func TestUserRepository_ListByRoleAndExistsAdmin(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	exists, err := repo.ExistsAdmin(ctx)
	require.NoError(t, err)
	require.False(t, exists)

	_, err = repo.Create(ctx, newUser("alice", domain.RoleAdmin))
	require.NoError(t, err)
	for _, name := range []string{"bob", "carol"} {
		_, err := repo.Create(ctx, newUser(name, domain.RoleCashier))
		require.NoError(t, err)
	}

	exists, err = repo.ExistsAdmin(ctx)
	require.NoError(t, err)
	require.True(t, exists)

	cashiers, err := repo.ListByRole(ctx, domain.RoleCashier)
	require.NoError(t, err)
	require.Len(t, cashiers, 2)
	require.Equal(t, "carol", cashiers[0].Username)
	require.Equal(t, "bob", cashiers[1].Username)
}

func TestUserRepository_SetActive(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	bob, err := repo.Create(ctx, newUser("bob", domain.RoleCashier))
	require.NoError(t, err)

	require.NoError(t, repo.SetActive(ctx, bob.ID, false))
	got, err := repo.FindByID(ctx, bob.ID)
	require.NoError(t, err)
	require.False(t, got.IsActive)

	require.ErrorIs(t, repo.SetActive(ctx, "bad", false), domain.ErrUserNotFound)
	require.NoError(t, repo.Ping(ctx))
}
