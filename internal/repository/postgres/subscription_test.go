package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shubhajit-paul-web/youtube-fullstack/internal/domain"
	apperrors "github.com/shubhajit-paul-web/youtube-fullstack/pkg/errors"
)

func newSubscriptionTestFixture(t *testing.T) (*SubscriptionRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := NewSubscriptionRepository(mock)
	return repo, mock
}

func TestSubscriptionRepository_Create_Duplicate(t *testing.T) {
	repo, mock := newSubscriptionTestFixture(t)
	defer mock.Close()

	s := &domain.Subscription{
		ID:           "s-1",
		SubscriberID: "u-1",
		ChannelID:    "u-2",
		CreatedAt:    time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO subscriptions").
		WithArgs(s.ID, s.SubscriberID, s.ChannelID, s.CreatedAt).
		WillReturnError(fmt.Errorf("ERROR: duplicate key value violates unique constraint (SQLSTATE 23505)"))

	err := repo.Create(context.Background(), s)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrAlreadyExists), "expected ErrAlreadyExists, got: %v", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubscriptionRepository_Create_UnknownChannel(t *testing.T) {
	repo, mock := newSubscriptionTestFixture(t)
	defer mock.Close()

	s := &domain.Subscription{
		ID:           "s-1",
		SubscriberID: "u-1",
		ChannelID:    "missing-channel",
		CreatedAt:    time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO subscriptions").
		WithArgs(s.ID, s.SubscriberID, s.ChannelID, s.CreatedAt).
		WillReturnError(fmt.Errorf("ERROR: insert or update on table violates foreign key constraint (SQLSTATE 23503)"))

	err := repo.Create(context.Background(), s)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound), "expected ErrNotFound, got: %v", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubscriptionRepository_Delete_NotSubscribed(t *testing.T) {
	repo, mock := newSubscriptionTestFixture(t)
	defer mock.Close()

	mock.ExpectExec("DELETE FROM subscriptions").
		WithArgs("u-1", "u-2").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.Delete(context.Background(), "u-1", "u-2")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound), "expected ErrNotFound, got: %v", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubscriptionRepository_ListSubscribedChannels(t *testing.T) {
	repo, mock := newSubscriptionTestFixture(t)
	defer mock.Close()

	rows := pgxmock.NewRows([]string{"id", "username", "first_name", "last_name", "avatar_url"}).
		AddRow("u-2", "bob", "Bob", "Jones", "bob.png").
		AddRow("u-3", "carol", "Carol", "Lee", "carol.png")

	mock.ExpectQuery("SELECT .+ FROM subscriptions").
		WithArgs("u-1").
		WillReturnRows(rows)

	channels, err := repo.ListSubscribedChannels(context.Background(), "u-1")
	require.NoError(t, err)
	require.Len(t, channels, 2)
	assert.Equal(t, "bob", channels[0].Username)
	assert.Equal(t, "carol", channels[1].Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}
