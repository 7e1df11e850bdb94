package serviceimpl

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"school-cms/domain/models"
	"school-cms/domain/services"
	"school-cms/domain/validation"
	"school-cms/pkg/utils"
)

func newUserRepoWith(t *testing.T, email, password string, active bool) (*fakeUserRepo, *models.UserProfile) {
	t.Helper()
	hash, err := hashPassword(password)
	require.NoError(t, err)

	user := &models.UserProfile{ID: uuid.New(), Email: email, Role: models.RoleEditor, PasswordHash: hash, IsActive: active}
	return &fakeUserRepo{users: map[string]*models.UserProfile{email: user}}, user
}

func TestLogin(t *testing.T) {
	repo, user := newUserRepoWith(t, "editor@school.example", "correct horse", true)
	svc := NewAuthService(repo, "secret", time.Hour)
	ctx := context.Background()

	token, got, err := svc.Login(ctx, "editor@school.example", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.NotNil(t, got.LastLoginAt)
	require.Len(t, repo.updates, 1)

	claims, err := utils.ValidateTokenStringToUUID(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.ID)
	assert.Equal(t, string(models.RoleEditor), claims.Role)

	_, _, err = svc.Login(ctx, "editor@school.example", "wrong")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "nobody@school.example", "correct horse")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestLoginDisabledAccount(t *testing.T) {
	repo, _ := newUserRepoWith(t, "old@school.example", "pw", false)
	svc := NewAuthService(repo, "secret", 0)

	_, _, err := svc.Login(context.Background(), "old@school.example", "pw")
	assert.ErrorIs(t, err, services.ErrAccountDisabled)
}

func TestUserDeleteSelf(t *testing.T) {
	svc := NewUserService(&fakeUserRepo{})
	id := uuid.New()

	assert.ErrorIs(t, svc.Delete(context.Background(), id, id), services.ErrCannotDeleteSelf)
}

func TestUserCreateRejectsUnknownRole(t *testing.T) {
	svc := NewUserService(&fakeUserRepo{})

	_, err := svc.Create(context.Background(), services.CreateUserInput{Email: "x@school.example", Password: "pw", Role: "owner"})

	var vErr *validation.Error
	assert.ErrorAs(t, err, &vErr)
}

func TestSubmitContact(t *testing.T) {
	repo := &fakeNotificationRepo{}
	broadcaster := &fakeBroadcaster{}
	svc := NewNotificationService(repo, broadcaster)

	svc.SubmitContact(context.Background(), services.ContactInput{
		Name:    "Parent",
		Email:   "parent@home.example",
		Phone:   "0812345678",
		Message: "When does term start?",
	})

	require.Len(t, repo.created, 1)
	n := repo.created[0]
	assert.Equal(t, models.NotificationContact, n.Type)
	assert.Equal(t, "New contact message from Parent", n.Title)
	assert.Contains(t, n.Message, "parent@home.example")
	assert.Contains(t, n.Message, "When does term start?")
	assert.Equal(t, []string{"notification"}, broadcaster.messages)
}

func TestSubmitContactStorageFailureIsSwallowed(t *testing.T) {
	broadcaster := &fakeBroadcaster{}
	svc := NewNotificationService(&fakeNotificationRepo{err: errBackend}, broadcaster)

	assert.NotPanics(t, func() {
		svc.SubmitContact(context.Background(), services.ContactInput{Name: "A", Email: "a@b.example", Message: "hi"})
	})
	assert.Empty(t, broadcaster.messages)
}

func TestSliderReorderRejectsDuplicates(t *testing.T) {
	svc := NewSliderService(nil)
	id := uuid.New()

	err := svc.Reorder(context.Background(), []uuid.UUID{id, id})

	var vErr *validation.Error
	assert.ErrorAs(t, err, &vErr)
}

func TestNormalizePage(t *testing.T) {
	page, limit := normalizePage(0, 500)
	assert.Equal(t, 1, page)
	assert.Equal(t, 100, limit)

	page, limit = normalizePage(3, 0)
	assert.Equal(t, 3, page)
	assert.Equal(t, 20, limit)
}
