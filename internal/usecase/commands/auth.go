package commands

import (
	"context"

	"stitchcart/internal/domain/user"
	reqdto "stitchcart/internal/handler/dto/request"
	"stitchcart/internal/infra"
	"stitchcart/internal/pkg/errs"
	"stitchcart/internal/pkg/jwt"
	"stitchcart/internal/pkg/password"
	"stitchcart/internal/usecase/queries"
)

var (
	ErrInvalidCredentials = errs.New("invalid email or password")
	ErrUserInactive       = errs.New("user account is inactive")
)

type LoginResult struct {
	Token string
	User  *queries.UserView
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
}

type authUseCaseImpl struct {
	userRepo   UserRepository
	jwtService *jwt.Service
}

func NewAuthCommands(userRepo UserRepository, jwtService *jwt.Service) AuthCommands {
	return &authUseCaseImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

func (u *authUseCaseImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	snapshot, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Same response as a wrong password, account existence stays private.
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Wrap(err, "failed to look up user")
	}

	if !snapshot.IsActive {
		return nil, ErrUserInactive
	}

	if err := password.Compare(snapshot.PasswordHash, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(snapshot.Role)
	if err != nil {
		return nil, errs.Wrap(err, "stored role is invalid")
	}

	token, err := u.jwtService.GenerateToken(snapshot.ID, role)
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate token")
	}

	return &LoginResult{
		Token: token,
		User: &queries.UserView{
			ID:          snapshot.ID,
			Email:       snapshot.Email,
			Role:        snapshot.Role,
			CompanyName: snapshot.CompanyName,
		},
	}, nil
}
