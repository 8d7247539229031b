package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/AliHsynvv/airen-media-sub002/internal/data/entity"
	"github.com/AliHsynvv/airen-media-sub002/internal/data/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeUserRepo struct {
	byID map[uuid.UUID]*entity.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	f.byID[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return f.byID[id], nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range f.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	for _, u := range f.byID {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) UpdateProfile(ctx context.Context, user *entity.User) error { return nil }

type followKey struct {
	follower uuid.UUID
	followee uuid.UUID
}

type fakeFollowRepo struct {
	edges map[followKey]bool
}

func (f *fakeFollowRepo) Create(ctx context.Context, follow *entity.Follow) error {
	key := followKey{follow.FollowerID, follow.FolloweeID}
	if f.edges[key] {
		return repository.ErrDuplicate
	}
	f.edges[key] = true
	return nil
}

func (f *fakeFollowRepo) Delete(ctx context.Context, followerID, followeeID uuid.UUID) error {
	delete(f.edges, followKey{followerID, followeeID})
	return nil
}

func (f *fakeFollowRepo) CountFollowers(ctx context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	for key := range f.edges {
		if key.followee == userID {
			n++
		}
	}
	return n, nil
}

func (f *fakeFollowRepo) CountFollowing(ctx context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	for key := range f.edges {
		if key.follower == userID {
			n++
		}
	}
	return n, nil
}

type fakeNotificationRepo struct {
	byID map[uuid.UUID]*entity.Notification
}

func (f *fakeNotificationRepo) Create(ctx context.Context, notification *entity.Notification) error {
	f.byID[notification.ID] = notification
	return nil
}

func (f *fakeNotificationRepo) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Notification, error) {
	return nil, nil
}

func (f *fakeNotificationRepo) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	return 0, nil
}

func (f *fakeNotificationRepo) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	for _, notif := range f.byID {
		if notif.UserID == userID && !notif.IsRead {
			n++
		}
	}
	return n, nil
}

func (f *fakeNotificationRepo) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	notif, ok := f.byID[id]
	if !ok || notif.UserID != userID {
		return repository.ErrNotFound
	}
	notif.IsRead = true
	return nil
}

func (f *fakeNotificationRepo) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	for _, notif := range f.byID {
		if notif.UserID == userID {
			notif.IsRead = true
		}
	}
	return nil
}

func newSocialFixture() (SocialService, *fakeUserRepo, *fakeFollowRepo, *fakeNotificationRepo) {
	users := &fakeUserRepo{byID: map[uuid.UUID]*entity.User{}}
	follows := &fakeFollowRepo{edges: map[followKey]bool{}}
	notifications := &fakeNotificationRepo{byID: map[uuid.UUID]*entity.Notification{}}

	svc := NewSocialService(
		&repository.Repository{User: users, Follow: follows, Notification: notifications},
		nil,
		zap.NewNop(),
	)

	return svc, users, follows, notifications
}

func newTestUser(users *fakeUserRepo, username string) *entity.User {
	user := &entity.User{
		Base:     entity.Base{ID: uuid.New(), CreatedAt: time.Now().UTC()},
		Email:    username + "@example.com",
		Username: username,
		Role:     entity.RoleUser,
	}
	users.byID[user.ID] = user
	return user
}

func TestFollow_Idempotent(t *testing.T) {
	svc, users, follows, _ := newSocialFixture()
	alice := newTestUser(users, "alice")
	bob := newTestUser(users, "bob")

	require.NoError(t, svc.Follow(context.Background(), alice.ID, bob.ID))
	require.NoError(t, svc.Follow(context.Background(), alice.ID, bob.ID))

	assert.Len(t, follows.edges, 1)
}

func TestFollow_SelfRejected(t *testing.T) {
	svc, users, _, _ := newSocialFixture()
	alice := newTestUser(users, "alice")

	err := svc.Follow(context.Background(), alice.ID, alice.ID)

	require.ErrorIs(t, err, ErrSelfFollow)
}

func TestFollow_UnknownTarget(t *testing.T) {
	svc, users, _, _ := newSocialFixture()
	alice := newTestUser(users, "alice")

	err := svc.Follow(context.Background(), alice.ID, uuid.New())

	require.ErrorIs(t, err, ErrNotFound)
}

func TestUnfollow_Idempotent(t *testing.T) {
	svc, users, follows, _ := newSocialFixture()
	alice := newTestUser(users, "alice")
	bob := newTestUser(users, "bob")

	require.NoError(t, svc.Follow(context.Background(), alice.ID, bob.ID))
	require.NoError(t, svc.Unfollow(context.Background(), alice.ID, bob.ID))
	require.NoError(t, svc.Unfollow(context.Background(), alice.ID, bob.ID))

	assert.Empty(t, follows.edges)
}

func TestGetProfile_Counts(t *testing.T) {
	svc, users, _, _ := newSocialFixture()
	alice := newTestUser(users, "alice")
	bob := newTestUser(users, "bob")
	carol := newTestUser(users, "carol")

	require.NoError(t, svc.Follow(context.Background(), bob.ID, alice.ID))
	require.NoError(t, svc.Follow(context.Background(), carol.ID, alice.ID))
	require.NoError(t, svc.Follow(context.Background(), alice.ID, bob.ID))

	profile, err := svc.GetProfile(context.Background(), "alice")

	require.NoError(t, err)
	assert.Equal(t, int64(2), profile.Followers)
	assert.Equal(t, int64(1), profile.Following)
}

func TestMarkRead_OwnRowsOnly(t *testing.T) {
	svc, users, _, notifications := newSocialFixture()
	alice := newTestUser(users, "alice")
	bob := newTestUser(users, "bob")

	notif := &entity.Notification{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now().UTC()},
		UserID:     alice.ID,
		Type:       entity.NotificationNewFollower,
		Title:      "New follower",
	}
	notifications.byID[notif.ID] = notif

	// bob cannot mark alice's notification
	err := svc.MarkRead(context.Background(), bob.ID, notif.ID)
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, svc.MarkRead(context.Background(), alice.ID, notif.ID))
	assert.True(t, notif.IsRead)

	unread, err := svc.UnreadCount(context.Background(), alice.ID)
	require.NoError(t, err)
	assert.Zero(t, unread)
}
