package conversation

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

func conversationRows(convs ...*dbmysql.Conversation) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "user_low_id", "user_high_id", "created_at", "last_message_at"})
	for _, c := range convs {
		rows.AddRow(c.ID, c.UserLowID, c.UserHighID, c.CreatedAt, c.LastMessageAt)
	}
	return rows
}

func TestConversationRepository_ByPair(t *testing.T) {
	gormDB, mock, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewRepository(gormDB)
	ctx := context.Background()

	mock.ExpectQuery("SELECT \\* FROM `conversations`").
		WithArgs("alice", "bob", 1).
		WillReturnRows(conversationRows(&dbmysql.Conversation{
			ID: "conv-1", UserLowID: "alice", UserHighID: "bob",
			CreatedAt: time.Now(), LastMessageAt: time.Now(),
		}))

	conv, err := repo.ByPair(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.Equal(t, "conv-1", conv.ID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestConversationRepository_ListByUser(t *testing.T) {
	gormDB, mock, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewRepository(gormDB)
	ctx := context.Background()

	newer := time.Now()
	older := newer.Add(-time.Hour)

	mock.ExpectQuery("SELECT \\* FROM `conversations`").
		WithArgs("alice", "alice").
		WillReturnRows(conversationRows(
			&dbmysql.Conversation{ID: "conv-2", UserLowID: "alice", UserHighID: "carol", LastMessageAt: newer},
			&dbmysql.Conversation{ID: "conv-1", UserLowID: "alice", UserHighID: "bob", LastMessageAt: older},
		))

	convs, err := repo.ListByUser(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, convs, 2)
	assert.Equal(t, "conv-2", convs[0].ID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestConversationRepository_TouchLastMessage(t *testing.T) {
	gormDB, mock, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewRepository(gormDB)
	ctx := context.Background()
	at := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `conversations` SET `last_message_at`").
		WithArgs(at, "conv-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.TouchLastMessage(ctx, "conv-1", at))
	require.NoError(t, mock.ExpectationsWereMet())
}
