//go:build integration

package repository_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"deskhub/infras/otel/mocks"
	"deskhub/infras/postgres"
	"deskhub/internal/domains/office/model"
	dto "deskhub/internal/domains/office/model/dto"
	"deskhub/internal/domains/office/repository"
	gDto "deskhub/shared/dto"
)

func setupPostgresContainer(t *testing.T, ctx context.Context) (*postgres.Connection, func()) {
	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "testdb",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connString := fmt.Sprintf("postgres://test:test@%s:%s/testdb?sslmode=disable", host, port.Port())

	mig, err := migrate.New("file://../../../../migrations/postgres", connString)
	require.NoError(t, err)
	require.NoError(t, mig.Up())
	srcErr, dbErr := mig.Close()
	require.NoError(t, srcErr)
	require.NoError(t, dbErr)

	db, err := sqlx.Connect("postgres", connString)
	require.NoError(t, err)

	conn := &postgres.Connection{Read: db, Write: db}
	cleanup := func() {
		_ = db.Close()
		_ = container.Terminate(ctx)
	}

	return conn, cleanup
}

func insertUser(t *testing.T, conn *postgres.Connection) string {
	id := uuid.NewString()

	_, err := conn.Write.Exec(
		"INSERT INTO users (id, name, email) VALUES ($1, $2, $3)",
		id, "Owner "+id[:8], id[:8]+"@deskhub.test",
	)
	require.NoError(t, err)

	return id
}

func insertOffice(t *testing.T, conn *postgres.Connection, userID, title string, lat, lng float64, hidden bool, status string) string {
	id := uuid.NewString()

	_, err := conn.Write.Exec(
		"INSERT INTO offices (id, user_id, title, description, address_line1, lat, lng, price_per_day, hidden, approval_status) "+
			"VALUES ($1, $2, $3, '', '', $4, $5, 10000, $6, $7)",
		id, userID, title, lat, lng, hidden, status,
	)
	require.NoError(t, err)

	return id
}

func TestIntegration_OfficeList(t *testing.T) {
	ctx := context.Background()
	conn, cleanup := setupPostgresContainer(t, ctx)
	defer cleanup()

	repo := repository.New(conn, mocks.NewOtel())
	ownerID := insertUser(t, conn)

	// All offices approved and visible; distance from Lisbon decides order.
	leiriaID := insertOffice(t, conn, ownerID, "Leiria Loft", 39.7436, -8.8071, false, model.ApprovalStatusApproved)
	portoID := insertOffice(t, conn, ownerID, "Porto Studio", 41.1579, -8.6291, false, model.ApprovalStatusApproved)
	faroID := insertOffice(t, conn, ownerID, "Faro Desk", 37.0194, -7.9322, false, model.ApprovalStatusApproved)

	params := gDto.QueryParams{Page: 1, Limit: 20}

	t.Run("near offices come back before far ones", func(t *testing.T) {
		lat, lng := 38.7223, -9.1393 // Lisbon

		offices, err := repo.List(ctx, params, dto.ListOfficesQuery{Lat: &lat, Lng: &lng}, true)
		require.NoError(t, err)
		require.Len(t, offices, 3)
		require.Equal(t, leiriaID, offices[0].ID)
		require.Equal(t, faroID, offices[1].ID)
		require.Equal(t, portoID, offices[2].ID)
	})

	t.Run("ordering flips with the reference point", func(t *testing.T) {
		lat, lng := 41.1496, -8.6109 // Porto

		offices, err := repo.List(ctx, params, dto.ListOfficesQuery{Lat: &lat, Lng: &lng}, true)
		require.NoError(t, err)
		require.Len(t, offices, 3)
		require.Equal(t, portoID, offices[0].ID)
		require.Equal(t, leiriaID, offices[1].ID)
		require.Equal(t, faroID, offices[2].ID)
	})

	t.Run("hidden and pending offices are filtered in SQL", func(t *testing.T) {
		insertOffice(t, conn, ownerID, "Hidden Office", 38.72, -9.14, true, model.ApprovalStatusApproved)
		insertOffice(t, conn, ownerID, "Pending Office", 38.72, -9.14, false, model.ApprovalStatusPending)

		offices, err := repo.List(ctx, params, dto.ListOfficesQuery{}, true)
		require.NoError(t, err)
		require.Len(t, offices, 3)

		count, err := repo.CountList(ctx, dto.ListOfficesQuery{}, true)
		require.NoError(t, err)
		require.Equal(t, 3, count)

		// The owner browsing their own listings sees everything.
		all, err := repo.List(ctx, params, dto.ListOfficesQuery{UserID: ownerID}, false)
		require.NoError(t, err)
		require.Len(t, all, 5)
	})
}
