package relation

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"pairchat/internal/dbmysql"
)

func setupTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
	}

	return gormDB, mock, cleanup
}

func relationshipRows(rels ...*dbmysql.Relationship) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "requester_id", "recipient_id", "status", "created_at", "updated_at"})
	for _, rel := range rels {
		rows.AddRow(rel.ID, rel.RequesterID, rel.RecipientID, rel.Status, rel.CreatedAt, rel.UpdatedAt)
	}
	return rows
}

func TestRelationRepository_ByPair(t *testing.T) {
	gormDB, mock, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewRepository(gormDB)
	ctx := context.Background()

	stored := &dbmysql.Relationship{
		ID:          "rel-1",
		RequesterID: "alice",
		RecipientID: "bob",
		Status:      dbmysql.RelationPending,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	// The pair is unordered: the lookup must match whichever side requested.
	mock.ExpectQuery("SELECT \\* FROM `relationships`").
		WithArgs("bob", "alice", "alice", "bob", 1).
		WillReturnRows(relationshipRows(stored))

	rel, err := repo.ByPair(ctx, "bob", "alice")
	require.NoError(t, err)
	assert.Equal(t, "rel-1", rel.ID)
	assert.Equal(t, "alice", rel.RequesterID)

	mock.ExpectQuery("SELECT \\* FROM `relationships`").
		WithArgs("alice", "carol", "carol", "alice", 1).
		WillReturnRows(relationshipRows())

	_, err = repo.ByPair(ctx, "alice", "carol")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRelationRepository_Create(t *testing.T) {
	gormDB, mock, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewRepository(gormDB)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `relationships`").
		WithArgs("rel-1", "alice", "bob", dbmysql.RelationPending, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.Create(ctx, &dbmysql.Relationship{
		ID:          "rel-1",
		RequesterID: "alice",
		RecipientID: "bob",
		Status:      dbmysql.RelationPending,
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRelationRepository_ListPendingIncoming(t *testing.T) {
	gormDB, mock, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewRepository(gormDB)
	ctx := context.Background()

	mock.ExpectQuery("SELECT \\* FROM `relationships`").
		WithArgs("bob", dbmysql.RelationPending).
		WillReturnRows(relationshipRows(
			&dbmysql.Relationship{ID: "rel-2", RequesterID: "carol", RecipientID: "bob", Status: dbmysql.RelationPending},
			&dbmysql.Relationship{ID: "rel-1", RequesterID: "alice", RecipientID: "bob", Status: dbmysql.RelationPending},
		))

	rels, err := repo.ListPendingIncoming(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, rels, 2)
	assert.Equal(t, "carol", rels[0].RequesterID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRelationRepository_IsAccepted(t *testing.T) {
	gormDB, mock, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewRepository(gormDB)
	ctx := context.Background()

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `relationships`").
		WithArgs("alice", "bob", "bob", "alice", dbmysql.RelationAccepted).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	ok, err := repo.IsAccepted(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRelationRepository_AcceptedPeerIDs(t *testing.T) {
	gormDB, mock, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewRepository(gormDB)
	ctx := context.Background()

	mock.ExpectQuery("SELECT \\* FROM `relationships`").
		WithArgs("alice", "alice", dbmysql.RelationAccepted).
		WillReturnRows(relationshipRows(
			&dbmysql.Relationship{ID: "rel-1", RequesterID: "alice", RecipientID: "bob", Status: dbmysql.RelationAccepted},
			&dbmysql.Relationship{ID: "rel-2", RequesterID: "carol", RecipientID: "alice", Status: dbmysql.RelationAccepted},
		))

	peers, err := repo.AcceptedPeerIDs(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"bob", "carol"}, peers)

	require.NoError(t, mock.ExpectationsWereMet())
}
