package usecase

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/danishhshk/FreshBasket/internal/domain/model"
	repo "github.com/danishhshk/FreshBasket/internal/repository"
)

// ログイン成功時にセッショントークン（JWT）を発行する約束
type SessionTokenIssuer interface {
	Issue(userID int64, isAdmin bool, now time.Time) (token string, expiresAt time.Time, err error)
}

type AuthUsecase struct {
	userRepo repo.UserRepository
	hasher   PasswordHasher
	verifier PasswordVerifier
	issuer   SessionTokenIssuer
}

func NewAuthUsecase(
	userRepo repo.UserRepository,
	hasher PasswordHasher,
	verifier PasswordVerifier,
	issuer SessionTokenIssuer,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo: userRepo,
		hasher:   hasher,
		verifier: verifier,
		issuer:   issuer,
	}
}

type RegisterInput struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
	FirstName       string
	LastName        string
}

type LoginInput struct {
	Username string
	Password string
}

type LoginOutput struct {
	User      model.User `json:"user"`
	Token     string     `json:"-"`
	ExpiresAt time.Time  `json:"-"`
}

// Register は会員登録。username/emailの重複は ErrDuplicate。
func (u *AuthUsecase) Register(ctx context.Context, in RegisterInput) (model.User, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.TrimSpace(in.Email)

	//必須チェック
	if username == "" || email == "" || in.Password == "" || in.ConfirmPassword == "" {
		return model.User{}, ErrValidation
	}
	if in.Password != in.ConfirmPassword {
		return model.User{}, ErrValidation
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return model.User{}, ErrValidation
	}

	//重複チェック（usernameとemailを別々に見る）
	if _, err := u.userRepo.FindByUsername(ctx, username); err == nil {
		return model.User{}, ErrDuplicate
	} else if !errors.Is(err, repo.ErrNotFound) {
		return model.User{}, err
	}
	if _, err := u.userRepo.FindByEmail(ctx, email); err == nil {
		return model.User{}, ErrDuplicate
	} else if !errors.Is(err, repo.ErrNotFound) {
		return model.User{}, err
	}

	//パスワードは必ずハッシュ化して保存（平文保存しない）
	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return model.User{}, err
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashed,
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		IsAdmin:      false,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return model.User{}, err
	}

	return *user, nil
}

// Login はusernameで照合してセッショントークンを発行する。
// 「ユーザーが居ない」と「パスワード違い」は呼び出し側から区別できない。
func (u *AuthUsecase) Login(ctx context.Context, in LoginInput) (LoginOutput, error) {
	if in.Username == "" || in.Password == "" {
		return LoginOutput{}, ErrValidation
	}

	user, err := u.userRepo.FindByUsername(ctx, strings.TrimSpace(in.Username))
	if errors.Is(err, repo.ErrNotFound) {
		return LoginOutput{}, ErrUnauthenticated
	}
	if err != nil {
		return LoginOutput{}, err
	}

	if ok := u.verifier.Verify(in.Password, user.PasswordHash); !ok {
		return LoginOutput{}, ErrUnauthenticated
	}

	token, expiresAt, err := u.issuer.Issue(user.ID, user.IsAdmin, time.Now())
	if err != nil {
		return LoginOutput{}, err
	}

	return LoginOutput{
		User:      user,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}
