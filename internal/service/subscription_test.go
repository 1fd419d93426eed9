package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/shubhajit-paul-web/youtube-fullstack/pkg/errors"
)

func TestSubscriptionService_Subscribe_Self(t *testing.T) {
	subRepo := new(mockSubscriptionRepository)
	svc := NewSubscriptionService(subRepo, testLogger())

	_, err := svc.Subscribe(context.Background(), "u-1", "u-1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
	subRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubscriptionService_Subscribe_Success(t *testing.T) {
	subRepo := new(mockSubscriptionRepository)
	svc := NewSubscriptionService(subRepo, testLogger())

	subRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Subscription")).Return(nil)

	sub, err := svc.Subscribe(context.Background(), "u-1", "u-2")
	require.NoError(t, err)
	assert.Equal(t, "u-1", sub.SubscriberID)
	assert.Equal(t, "u-2", sub.ChannelID)
	subRepo.AssertExpectations(t)
}

func TestSubscriptionService_Subscribe_Duplicate(t *testing.T) {
	subRepo := new(mockSubscriptionRepository)
	svc := NewSubscriptionService(subRepo, testLogger())

	subRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Subscription")).
		Return(apperrors.AlreadyExists("subscription", "channel_id", "u-2"))

	_, err := svc.Subscribe(context.Background(), "u-1", "u-2")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrAlreadyExists))
}

func TestSubscriptionService_Unsubscribe_NotSubscribed(t *testing.T) {
	subRepo := new(mockSubscriptionRepository)
	svc := NewSubscriptionService(subRepo, testLogger())

	subRepo.On("Delete", mock.Anything, "u-1", "u-2").Return(apperrors.NotFound("subscription", "u-2"))

	err := svc.Unsubscribe(context.Background(), "u-1", "u-2")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}
