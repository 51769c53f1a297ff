package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/go-stream-panel/internal/config"
	"github.com/MKhiriev/go-stream-panel/internal/logger"
	"github.com/MKhiriev/go-stream-panel/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeNotifyingStore — in-memory NotifyingStore, no mockgen required.
type fakeNotifyingStore struct {
	users    []models.User
	revision uint64
	handlers []func()

	listErr   error
	insertErr error
	deleteErr error
}

func (f *fakeNotifyingStore) List(_ context.Context) ([]models.User, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	roster := make([]models.User, len(f.users))
	copy(roster, f.users)
	return roster, nil
}

func (f *fakeNotifyingStore) Insert(_ context.Context, user models.User) (models.User, error) {
	if f.insertErr != nil {
		return models.User{}, f.insertErr
	}
	user.ID = fmt.Sprintf("fake-id-%d", len(f.users)+1)
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	f.users = append([]models.User{user}, f.users...)
	f.bump()
	return user, nil
}

func (f *fakeNotifyingStore) Update(_ context.Context, id string, patch models.UserPatch) (bool, error) {
	for i, user := range f.users {
		if user.ID != id {
			continue
		}
		if patch.Email != nil {
			user.Email = *patch.Email
		}
		if patch.Password != nil {
			user.Password = *patch.Password
		}
		if patch.Status != nil {
			user.Status = *patch.Status
		}
		if patch.ExpireTime != nil {
			user.ExpireTime = *patch.ExpireTime
		}
		user.UpdatedAt = time.Now()
		f.users[i] = user
		f.bump()
		return true, nil
	}
	return false, nil
}

func (f *fakeNotifyingStore) Delete(_ context.Context, id string) (bool, error) {
	if f.deleteErr != nil {
		return false, f.deleteErr
	}
	for i, user := range f.users {
		if user.ID == id {
			f.users = append(f.users[:i], f.users[i+1:]...)
			f.bump()
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeNotifyingStore) Subscribe(handler func()) func() {
	f.handlers = append(f.handlers, handler)
	return func() {}
}

func (f *fakeNotifyingStore) Revision() uint64 {
	return f.revision
}

func (f *fakeNotifyingStore) bump() {
	f.revision++
	for _, handler := range f.handlers {
		handler()
	}
}

func testAppConfig() config.App {
	return config.App{
		AdminEmail:      adminEmail,
		AdminAccessCode: "786391",
		TokenSignKey:    "test-sign-key",
		TokenIssuer:     "stream-panel-test",
		TokenDuration:   time.Hour,
	}
}

func seededStore(now time.Time) *fakeNotifyingStore {
	return &fakeNotifyingStore{users: []models.User{
		{ID: "member-id", Email: "viewer@example.com", Password: "viewer-pass", Status: models.StatusLive, ExpireTime: now.Add(time.Hour)},
		{ID: "admin-id", Email: adminEmail, Password: "admin123", Status: models.StatusLive, ExpireTime: now.Add(time.Hour)},
	}}
}

func newTestRosterService(fake *fakeNotifyingStore) RosterService {
	return NewRosterService(fake, testAppConfig(), logger.NewLogger("test"))
}

func TestRosterService_Create(t *testing.T) {
	fake := seededStore(time.Now())
	svc := newTestRosterService(fake)

	draft := models.UserDraft{
		Email:      "new@example.com",
		Password:   "new-pass",
		Status:     models.StatusLive,
		ExpireTime: "2030-12-31T23:59:59Z",
	}

	saved, err := svc.Create(context.Background(), draft)
	require.NoError(t, err)

	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, "new@example.com", saved.Email)
	assert.Equal(t, models.StatusLive, saved.Status)
	assert.Equal(t, 2030, saved.ExpireTime.Year())

	roster, err := svc.List(context.Background())
	require.NoError(t, err)

	occurrences := 0
	for _, user := range roster {
		if user.Email == "new@example.com" {
			occurrences++
		}
	}
	assert.Equal(t, 1, occurrences, "new record present exactly once")
}

func TestRosterService_CreateDefaultsStatusToLive(t *testing.T) {
	svc := newTestRosterService(seededStore(time.Now()))

	saved, err := svc.Create(context.Background(), models.UserDraft{
		Email:      "new@example.com",
		Password:   "new-pass",
		ExpireTime: "2030-12-31T23:59",
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusLive, saved.Status)
}

func TestRosterService_CreateUnparsableExpiry(t *testing.T) {
	svc := newTestRosterService(seededStore(time.Now()))

	_, err := svc.Create(context.Background(), models.UserDraft{
		Email:      "new@example.com",
		Password:   "new-pass",
		ExpireTime: "soon",
	})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestRosterService_Update(t *testing.T) {
	fake := seededStore(time.Now())
	svc := newTestRosterService(fake)

	updated, err := svc.Update(context.Background(), "member-id", models.UserDraft{Status: models.StatusOff})
	require.NoError(t, err)
	assert.True(t, updated)
	assert.Equal(t, models.StatusOff, fake.users[0].Status)
}

func TestRosterService_UpdateUnknownID(t *testing.T) {
	svc := newTestRosterService(seededStore(time.Now()))

	updated, err := svc.Update(context.Background(), "no-such-id", models.UserDraft{Status: models.StatusOff})
	require.NoError(t, err)
	assert.False(t, updated)
}

func TestRosterService_DeleteMember(t *testing.T) {
	fake := seededStore(time.Now())
	svc := newTestRosterService(fake)

	deleted, err := svc.Delete(context.Background(), "member-id")
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Len(t, fake.users, 1)
}

func TestRosterService_DeleteReservedAdmin(t *testing.T) {
	fake := seededStore(time.Now())
	svc := newTestRosterService(fake)

	deleted, err := svc.Delete(context.Background(), "admin-id")
	assert.ErrorIs(t, err, ErrAdminUndeletable)
	assert.False(t, deleted)
	assert.Len(t, fake.users, 2, "roster unchanged")
	assert.Equal(t, uint64(0), fake.revision, "no mutation event fired")
}

func TestRosterService_DeleteAfterAdminEmailChange(t *testing.T) {
	fake := seededStore(time.Now())
	svc := newTestRosterService(fake)

	// renaming the admin record redefines who the administrator is,
	// so the old record becomes deletable
	updated, err := svc.Update(context.Background(), "admin-id", models.UserDraft{Email: "former-admin@example.com"})
	require.NoError(t, err)
	require.True(t, updated)

	deleted, err := svc.Delete(context.Background(), "admin-id")
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestRosterService_DeleteStoreError(t *testing.T) {
	fake := seededStore(time.Now())
	fake.deleteErr = errors.New("db down")
	svc := newTestRosterService(fake)

	_, err := svc.Delete(context.Background(), "member-id")
	assert.Error(t, err)
}

func TestRosterService_Revision(t *testing.T) {
	fake := seededStore(time.Now())
	svc := newTestRosterService(fake)

	revision, err := svc.Revision(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(0), revision)

	_, err = svc.Create(context.Background(), models.UserDraft{
		Email:      "new@example.com",
		Password:   "new-pass",
		ExpireTime: "2030-12-31T23:59:59Z",
	})
	require.NoError(t, err)

	revision, err = svc.Revision(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(1), revision)
}
