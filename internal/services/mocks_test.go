package services

import (
	"context"
	"time"

	"github.com/pawradius/backend/internal/models"
	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetUserByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdatePushToken(id uint, token string) error {
	args := m.Called(id, token)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateLocation(id uint, lat, lng float64) error {
	args := m.Called(id, lat, lng)
	return args.Error(0)
}

func (m *MockUserRepository) FindNearbyEligible(ctx context.Context, lat, lng float64, radiusMeters, minVouchScore int, excludeUserID uint) ([]models.NearbyRecipient, error) {
	args := m.Called(ctx, lat, lng, radiusMeters, minVouchScore, excludeUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.NearbyRecipient), args.Error(1)
}

type MockCreditRepository struct {
	mock.Mock
}

func (m *MockCreditRepository) HasActiveCredit(userID uint, now time.Time) (bool, error) {
	args := m.Called(userID, now)
	return args.Bool(0), args.Error(1)
}

func (m *MockCreditRepository) GrantCredit(userID uint, expiresAt time.Time) error {
	args := m.Called(userID, expiresAt)
	return args.Error(0)
}

type MockAlertRepository struct {
	mock.Mock
}

func (m *MockAlertRepository) CreateAlert(alert *models.BroadcastAlert) error {
	args := m.Called(alert)
	return args.Error(0)
}

func (m *MockAlertRepository) GetAlertByID(id uint) (*models.BroadcastAlert, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BroadcastAlert), args.Error(1)
}

func (m *MockAlertRepository) GetAlertsByCreatorID(creatorID uint) ([]models.BroadcastAlert, error) {
	args := m.Called(creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BroadcastAlert), args.Error(1)
}

func (m *MockAlertRepository) ListActive(now time.Time, limit int) ([]models.BroadcastAlert, error) {
	args := m.Called(now, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BroadcastAlert), args.Error(1)
}

func (m *MockAlertRepository) UpdateContent(id uint, title, description string) error {
	args := m.Called(id, title, description)
	return args.Error(0)
}

func (m *MockAlertRepository) Deactivate(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockAlertRepository) SetSocialResult(id uint, postID, status string) error {
	args := m.Called(id, postID, status)
	return args.Error(0)
}

type MockCommunityPostRepository struct {
	mock.Mock
}

func (m *MockCommunityPostRepository) CreatePost(ctx context.Context, post *models.CommunityPost) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockCommunityPostRepository) GetPostByID(ctx context.Context, id string) (*models.CommunityPost, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CommunityPost), args.Error(1)
}

func (m *MockCommunityPostRepository) DeletePost(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockDispatchRecordRepository struct {
	mock.Mock
}

func (m *MockDispatchRecordRepository) CreateRecord(record *models.NotificationDispatchRecord) error {
	args := m.Called(record)
	return args.Error(0)
}

func (m *MockDispatchRecordRepository) GetByAlertID(alertID uint) ([]models.NotificationDispatchRecord, error) {
	args := m.Called(alertID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.NotificationDispatchRecord), args.Error(1)
}
