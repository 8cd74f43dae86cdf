package commands

import (
	"context"
	"log/slog"

	"salon-booking/internal/domain/staff"
	reqdto "salon-booking/internal/handler/dto/request"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/pkg/jwt"
	"salon-booking/internal/pkg/password"
	"salon-booking/internal/usecase/queries"
	"salon-booking/internal/usecase/shared"
)

var (
	ErrAccountNotFound    = errs.New("account not found")
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrAccountInactive    = errs.New("account inactive")
	ErrTokenGeneration    = errs.New("token generation failed")
)

type LoginResult struct {
	Account *queries.AccountView
	Token   string
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.StaffReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.StaffReadStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	account, hashedPassword, err := a.readStore.FindByEmail(ctx, req.Email)
	if err != nil {
		// Same error as a password mismatch to prevent account enumeration
		return nil, ErrInvalidCredentials
	}
	if account == nil {
		return nil, ErrInvalidCredentials
	}
	if !account.IsActive {
		return nil, ErrAccountInactive
	}
	if err := password.ComparePassword(hashedPassword, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := staff.NewRole(account.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	token, err := a.jwtService.GenerateToken(account.ID, account.SalonID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if updateErr := tx.Staff().UpdateLastLogin(ctx, tx.DB(), account.ID); updateErr != nil {
			slog.Warn("failed to update last login", "account_id", account.ID, "error", updateErr.Error())
		}
		return nil
	})
	if err != nil {
		// Login itself succeeded; only the bookkeeping write failed.
		slog.Warn("transaction failed during login", "account_id", account.ID, "error", err.Error())
	}

	return &LoginResult{Account: account, Token: token}, nil
}
