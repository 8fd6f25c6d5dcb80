package db

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"todogql/internal/config"
)

// startContainer runs req and terminates it when the test ends.
func startContainer(t *testing.T, req testcontainers.ContainerRequest) testcontainers.Container {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})
	return container
}

func endpoint(t *testing.T, container testcontainers.Container, port string) string {
	t.Helper()
	ctx := context.Background()
	mappedPort, err := container.MappedPort(ctx, nat.Port(port))
	require.NoError(t, err)
	host, err := container.Host(ctx)
	require.NoError(t, err)
	return fmt.Sprintf("%s:%s", host, mappedPort.Port())
}

func TestOpen_Mongo(t *testing.T) {
	container := startContainer(t, testcontainers.ContainerRequest{
		Image:        "mongo:7",
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor:   wait.ForListeningPort("27017/tcp").WithStartupTimeout(60 * time.Second),
	})
	addr := endpoint(t, container, "27017/tcp")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	store, err := Open(ctx, &config.Config{
		StoreDriver:   config.DriverMongo,
		MongoURI:      "mongodb://" + addr,
		MongoDatabase: "todos_test",
	})
	require.NoError(t, err)
	defer store.Close(context.Background())

	exerciseStore(t, store)
}

func TestOpen_MySQL(t *testing.T) {
	container := startContainer(t, testcontainers.ContainerRequest{
		Image:        "mysql:8.0",
		ExposedPorts: []string{"3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": "secret",
			"MYSQL_DATABASE":      "todos_test",
		},
		WaitingFor: wait.ForLog("port: 3306  MySQL Community Server").WithStartupTimeout(120 * time.Second),
	})
	addr := endpoint(t, container, "3306/tcp")

	store, err := Open(context.Background(), &config.Config{
		StoreDriver: config.DriverMySQL,
		MySQLDSN:    "root:secret@tcp(" + addr + ")/todos_test?charset=utf8mb4&parseTime=True&loc=UTC",
	})
	require.NoError(t, err)
	defer store.Close(context.Background())

	exerciseStore(t, store)
}
