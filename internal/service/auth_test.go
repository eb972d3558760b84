package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"auth-service/internal/config"
	"auth-service/internal/models"
	"auth-service/internal/storage"
	"auth-service/mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func testCfg() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:       "unit-secret",
		AccessTokenTTL:  30 * time.Minute,
		RefreshTokenTTL: 24 * time.Hour,
		Issuer:          "auth-service",
	}
}

func newSvc(t *testing.T) (*Service, *mocks.MockStorage, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	st := mocks.NewMockStorage(ctrl)
	svc := New(st, testCfg())
	return svc, st, ctrl
}

func mustHashPW(t *testing.T, pw string) string {
	t.Helper()
	h, err := hashPassword(pw)
	require.NoError(t, err)
	return h
}

func TestRegisterUser_OK(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	ctx := context.Background()
	email := "User@Example.com"
	norm := "user@example.com"
	pw := "Pass1234"

	st.EXPECT().UserByEmail(gomock.Any(), norm).Return(nil, storage.ErrNotFound)
	st.EXPECT().SaveUser(gomock.Any(), gomock.Any()).Return(nil)

	user, err := svc.RegisterUser(ctx, email, pw)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, user.ID)
	require.Equal(t, norm, user.Email)

	// Хэш не пустой, не равен паролю и проверяется обратно.
	require.NotEmpty(t, user.PasswordHash)
	require.NotEqual(t, pw, user.PasswordHash)
	require.True(t, checkPassword(user.PasswordHash, pw))
	require.False(t, checkPassword(user.PasswordHash, "Pass1235"))
}

func TestRegisterUser_InvalidEmail(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	// Хранилище не должно вызываться: конструирование прерывается до хэша.
	_, err := svc.RegisterUser(context.Background(), "bad-email", "Pass1234")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidEmail)
}

func TestRegisterUser_WeakOrEmptyPassword(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	_, err := svc.RegisterUser(context.Background(), "a@b.com", "")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrEmptyPassword)

	_, err = svc.RegisterUser(context.Background(), "a@b.com", "short1")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrWeakPassword)

	_, err = svc.RegisterUser(context.Background(), "a@b.com", "onlyletters")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrWeakPassword)

	_, err = svc.RegisterUser(context.Background(), "a@b.com", "12345678")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrWeakPassword)
}

func TestRegisterUser_EmailAlreadyExists_OnLookup(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	// Если UserByEmail вернул пользователя (err == nil) - считается занятым email.
	st.EXPECT().UserByEmail(gomock.Any(), "user@example.com").
		Return(&models.User{ID: uuid.New(), Email: "user@example.com"}, nil)

	_, err := svc.RegisterUser(context.Background(), "user@example.com", "Pass1234")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterUser_EmailAlreadyExists_OnSave(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	// Гонка: между проверкой и вставкой email заняли — уникальный индекс.
	st.EXPECT().UserByEmail(gomock.Any(), "user@example.com").Return(nil, storage.ErrNotFound)
	st.EXPECT().SaveUser(gomock.Any(), gomock.Any()).Return(storage.ErrAlreadyExists)

	_, err := svc.RegisterUser(context.Background(), "user@example.com", "Pass1234")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterUser_StorageLookupError_Propagated(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().UserByEmail(gomock.Any(), "user@example.com").
		Return(nil, errors.New("db down"))

	_, err := svc.RegisterUser(context.Background(), "user@example.com", "Pass1234")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrEmailTaken)
}

func TestHashPassword_SaltRandomized(t *testing.T) {
	t.Parallel()

	h1 := mustHashPW(t, "Pass1234")
	h2 := mustHashPW(t, "Pass1234")

	require.NotEqual(t, h1, h2)
	require.True(t, checkPassword(h1, "Pass1234"))
	require.True(t, checkPassword(h2, "Pass1234"))
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	t.Parallel()

	require.False(t, checkPassword("", "Pass1234"))
	require.False(t, checkPassword("not-a-bcrypt-hash", "Pass1234"))
}

func TestLoginUser_OK(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	uid := uuid.New()
	hash := mustHashPW(t, "Pass1234")

	st.EXPECT().UserByEmail(gomock.Any(), "user@example.com").
		Return(&models.User{ID: uid, Email: "user@example.com", PasswordHash: hash}, nil)

	pair, err := svc.LoginUser(context.Background(), "User@Example.com", "Pass1234")
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	require.NotEqual(t, pair.AccessToken, pair.RefreshToken)
	require.WithinDuration(t, time.Now().Add(svc.cfg.AccessTokenTTL), pair.AccessExpiresAt, 2*time.Second)
}

// Неизвестный email и неверный пароль дают один и тот же результат:
// вызывающая сторона не может понять, существует ли аккаунт.
func TestLoginUser_UnknownEmail_And_WrongPassword_Indistinguishable(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	hash := mustHashPW(t, "Pass1234")

	st.EXPECT().UserByEmail(gomock.Any(), "missing@example.com").
		Return(nil, storage.ErrNotFound)
	st.EXPECT().UserByEmail(gomock.Any(), "user@example.com").
		Return(&models.User{ID: uuid.New(), Email: "user@example.com", PasswordHash: hash}, nil)

	_, errMissing := svc.LoginUser(context.Background(), "missing@example.com", "Pass1234")
	_, errWrongPW := svc.LoginUser(context.Background(), "user@example.com", "WrongPass1")

	require.ErrorIs(t, errMissing, ErrInvalidCredentials)
	require.ErrorIs(t, errWrongPW, ErrInvalidCredentials)
}

func TestLoginUser_MalformedEmail_SameFailure(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	// На логине формат email не валидируется отдельно — только общий отказ.
	_, err := svc.LoginUser(context.Background(), "not-an-email", "Pass1234")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.LoginUser(context.Background(), "user@example.com", "")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshToken_OK(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	uid := uuid.New()
	user := &models.User{ID: uid, Email: "user@example.com"}

	refresh, err := svc.generateToken(context.Background(), uid, tokenTypeRefresh, time.Now().UTC())
	require.NoError(t, err)

	st.EXPECT().UserByID(gomock.Any(), uid).Return(user, nil)

	token, err := svc.RefreshToken(context.Background(), refresh)
	require.NoError(t, err)
	require.NotEmpty(t, token.Token)
	require.NotEqual(t, refresh, token.Token)

	// Новый access-токен валиден и указывает на того же пользователя.
	gotUID, err := svc.parseToken(token.Token, tokenTypeAccess)
	require.NoError(t, err)
	require.Equal(t, uid, gotUID)
}

func TestRefreshToken_AccessTokenRejected(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	access, err := svc.generateToken(context.Background(), uuid.New(), tokenTypeAccess, time.Now().UTC())
	require.NoError(t, err)

	_, err = svc.RefreshToken(context.Background(), access)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrWrongTokenType)
}

func TestRefreshToken_Expired(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	// Выпускаем токен "в прошлом" ровно на RefreshTokenTTL назад:
	// на границе срока токен уже недействителен.
	issuedAt := time.Now().UTC().Add(-svc.cfg.RefreshTokenTTL)
	refresh, err := svc.generateToken(context.Background(), uuid.New(), tokenTypeRefresh, issuedAt)
	require.NoError(t, err)

	_, err = svc.RefreshToken(context.Background(), refresh)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestRefreshToken_UserDeleted(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	uid := uuid.New()
	refresh, err := svc.generateToken(context.Background(), uid, tokenTypeRefresh, time.Now().UTC())
	require.NoError(t, err)

	st.EXPECT().UserByID(gomock.Any(), uid).Return(nil, storage.ErrNotFound)

	_, err = svc.RefreshToken(context.Background(), refresh)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateToken_OK(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	uid := uuid.New()
	user := &models.User{ID: uid, Email: "user@example.com"}

	access, err := svc.generateToken(context.Background(), uid, tokenTypeAccess, time.Now().UTC())
	require.NoError(t, err)

	st.EXPECT().UserByID(gomock.Any(), uid).Return(user, nil)

	got, err := svc.AuthenticateToken(context.Background(), access)
	require.NoError(t, err)
	require.Equal(t, user, got)
}

func TestAuthenticateToken_RefreshTokenRejected(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	refresh, err := svc.generateToken(context.Background(), uuid.New(), tokenTypeRefresh, time.Now().UTC())
	require.NoError(t, err)

	_, err = svc.AuthenticateToken(context.Background(), refresh)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrWrongTokenType)
}

func TestAuthenticateToken_UserDeleted(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	uid := uuid.New()
	access, err := svc.generateToken(context.Background(), uid, tokenTypeAccess, time.Now().UTC())
	require.NoError(t, err)

	st.EXPECT().UserByID(gomock.Any(), uid).Return(nil, storage.ErrNotFound)

	_, err = svc.AuthenticateToken(context.Background(), access)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

// Полный сценарий: регистрация -> логин -> аутентификация по access ->
// refresh -> аутентификация по новому access.
func TestAuthFlow_EndToEnd(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	ctx := context.Background()

	var saved *models.User
	st.EXPECT().UserByEmail(gomock.Any(), "a@b.com").Return(nil, storage.ErrNotFound)
	st.EXPECT().SaveUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.User) error {
			saved = u
			return nil
		})

	user, err := svc.RegisterUser(ctx, "a@b.com", "Pass1234")
	require.NoError(t, err)
	require.Equal(t, saved, user)

	st.EXPECT().UserByEmail(gomock.Any(), "a@b.com").Return(saved, nil)

	pair, err := svc.LoginUser(ctx, "a@b.com", "Pass1234")
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	require.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	st.EXPECT().UserByID(gomock.Any(), user.ID).Return(saved, nil).Times(3)

	principal, err := svc.AuthenticateToken(ctx, pair.AccessToken)
	require.NoError(t, err)
	require.Equal(t, user.ID, principal.ID)

	newAccess, err := svc.RefreshToken(ctx, pair.RefreshToken)
	require.NoError(t, err)
	require.NotEmpty(t, newAccess.Token)

	principal, err = svc.AuthenticateToken(ctx, newAccess.Token)
	require.NoError(t, err)
	require.Equal(t, user.ID, principal.ID)
}
