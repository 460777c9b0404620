package domain

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/wishwall/backend/internal/entity"
	"github.com/wishwall/backend/internal/model"
	"github.com/wishwall/backend/internal/repository"
	"github.com/wishwall/backend/pkg/crypto"
	"github.com/wishwall/backend/pkg/errorx"
	"github.com/wishwall/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type AuthDomain interface {
	Register(context.Context, *model.RegisterRequest) (*model.RegisterResponse, error)
	Login(context.Context, *model.LoginRequest) (*model.LoginResponse, error)
	Logout(context.Context, *model.LogoutRequest) (*model.LogoutResponse, error)
	GetMe(context.Context, *model.GetMeRequest) (*model.GetMeResponse, error)
}

type authDomain struct {
	userRepo repository.UserRepository
	notifier *GraphNotifier
}

func NewAuthDomain(userRepo repository.UserRepository, notifier *GraphNotifier) *authDomain {
	return &authDomain{
		userRepo: userRepo,
		notifier: notifier,
	}
}

func (d *authDomain) Register(
	ctx context.Context, req *model.RegisterRequest,
) (*model.RegisterResponse, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	name := strings.TrimSpace(req.Name)

	if email == "" || !strings.Contains(email, "@") {
		return nil, errorx.New(errorx.BadRequest, "Invalid email address")
	}

	if name == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty name")
	}

	if len(req.Password) < 8 {
		return nil, errorx.New(errorx.BadRequest, "Password must have at least 8 characters")
	}

	_, err := d.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, errorx.New(errorx.AlreadyExists, "Email is already registered")
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot check email: %v", err)
		return nil, errorx.Unknown
	}

	hashed, err := crypto.HashPassword(req.Password)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot hash password: %v", err)
		return nil, errorx.Unknown
	}

	user := &entity.User{
		Base:           entity.Base{ID: uuid.NewString()},
		Name:           name,
		Email:          email,
		HashedPassword: hashed,
	}

	if err := d.userRepo.Create(ctx, user); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create user: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.RegisterResponse{User: model.ConvertUser(user, true)}
	return &resp, nil
}

func (d *authDomain) Login(
	ctx context.Context, req *model.LoginRequest,
) (*model.LoginResponse, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))

	user, err := d.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.Unauthenticated, "Invalid email or password")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	if !crypto.ComparePassword(user.HashedPassword, req.Password) {
		return nil, errorx.New(errorx.Unauthenticated, "Invalid email or password")
	}

	token, err := xcontext.TokenEngine(ctx).Generate(user.ID, model.AccessToken{
		ID:   user.ID,
		Name: user.Name,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate access token: %v", err)
		return nil, errorx.Unknown
	}

	d.notifier.Notify(GraphEvent{UserID: user.ID, Change: GraphChangeLogin})

	resp := model.LoginResponse{
		User:        model.ConvertUser(user, true),
		AccessToken: token,
	}
	return &resp, nil
}

func (d *authDomain) Logout(
	ctx context.Context, req *model.LogoutRequest,
) (*model.LogoutResponse, error) {
	if userID := xcontext.RequestUserID(ctx); userID != "" {
		d.notifier.Notify(GraphEvent{UserID: userID, Change: GraphChangeLogout})
	}

	return &model.LogoutResponse{Success: true}, nil
}

func (d *authDomain) GetMe(
	ctx context.Context, req *model.GetMeRequest,
) (*model.GetMeResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	if userID == "" {
		return nil, errorx.New(errorx.Unauthenticated, "You need to authenticate before")
	}

	user, err := d.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found user")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.GetMeResponse{User: model.ConvertUser(user, true)}
	return &resp, nil
}
