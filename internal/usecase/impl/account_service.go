// Package impl contains the concrete usecase implementations.
package impl

import (
	"context"
	"strings"
	"unicode"

	"kirana/config"
	"kirana/internal/domain/entity"
	domainerrors "kirana/internal/domain/errors"
	"kirana/internal/domain/repository"
	"kirana/internal/domain/service"
	"kirana/internal/errors"
	"kirana/internal/usecase"
)

// minOTPDigits matches the original demo flow: any code of at least four
// digits verifies.
const minOTPDigits = 4

type accountService struct {
	cfg          *config.Config
	ownerRepo    repository.OwnerRepository
	customerRepo repository.CustomerRepository
	hasher       service.PasswordHasher
	tokenSvc     service.TokenService
}

// NewAccountService creates a new account service instance.
func NewAccountService(
	cfg *config.Config,
	ownerRepo repository.OwnerRepository,
	customerRepo repository.CustomerRepository,
	hasher service.PasswordHasher,
	tokenSvc service.TokenService,
) usecase.AccountUsecase {
	return &accountService{
		cfg:          cfg,
		ownerRepo:    ownerRepo,
		customerRepo: customerRepo,
		hasher:       hasher,
		tokenSvc:     tokenSvc,
	}
}

// RegisterOwner stores the owner profile with a hashed password and opens an
// owner session. Only one owner exists per store.
func (s *accountService) RegisterOwner(ctx context.Context, input *usecase.RegisterOwnerInput) (*usecase.OwnerSessionOutput, error) {
	if _, err := s.ownerRepo.GetProfile(ctx); err == nil {
		return nil, domainerrors.ErrOwnerAlreadyExists
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("hash owner password")
	}

	profile := &entity.OwnerProfile{
		ID:       entity.NewID(),
		FullName: input.FullName,
		Mobile:   input.Mobile,
		Email:    input.Email,
		Password: hash,
	}
	if err := s.ownerRepo.SaveProfile(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "save owner profile")
	}

	return s.ownerSession(profile)
}

// LoginOwner verifies either the registration password or the demo OTP.
func (s *accountService) LoginOwner(ctx context.Context, input *usecase.LoginOwnerInput) (*usecase.OwnerSessionOutput, error) {
	profile, err := s.ownerRepo.GetProfile(ctx)
	if err != nil {
		return nil, domainerrors.ErrOwnerNotRegistered
	}
	if profile.Mobile != input.Mobile {
		return nil, domainerrors.ErrInvalidCredentials
	}

	switch {
	case input.Password != "":
		if !s.hasher.Check(input.Password, profile.Password) {
			return nil, domainerrors.ErrInvalidCredentials
		}
	default:
		if !validOTP(input.OTP) {
			return nil, domainerrors.ErrInvalidOTP
		}
	}

	return s.ownerSession(profile)
}

// LoginCustomer verifies the demo OTP and creates the customer profile on
// first login.
func (s *accountService) LoginCustomer(ctx context.Context, input *usecase.LoginCustomerInput) (*usecase.CustomerSessionOutput, error) {
	if !validOTP(input.OTP) {
		return nil, domainerrors.ErrInvalidOTP
	}

	profile, err := s.customerRepo.GetProfile(ctx)
	if err != nil {
		profile = &entity.CustomerProfile{ID: entity.NewID()}
	}
	profile.Mobile = input.Mobile
	profile.Name = input.Name
	if input.Email != "" {
		profile.Email = input.Email
	}

	if err := s.customerRepo.SaveProfile(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "save customer profile")
	}

	token, err := s.tokenSvc.GenerateSessionToken(profile.ID, entity.RoleCustomer)
	if err != nil {
		return nil, errors.Wrap(err, "issue customer session")
	}

	return &usecase.CustomerSessionOutput{
		Session:  usecase.SessionOutput{Token: token, Role: entity.RoleCustomer},
		Customer: profile,
	}, nil
}

// LoginAdmin compares against the fixed credentials from config. There is no
// admin account record anywhere in the store.
func (s *accountService) LoginAdmin(ctx context.Context, input *usecase.LoginAdminInput) (*usecase.SessionOutput, error) {
	if input.Email != s.cfg.Admin.Email || input.Password != s.cfg.Admin.Password {
		return nil, domainerrors.ErrAdminCredentials
	}

	token, err := s.tokenSvc.GenerateSessionToken(input.Email, entity.RoleAdmin)
	if err != nil {
		return nil, errors.Wrap(err, "issue admin session")
	}

	return &usecase.SessionOutput{Token: token, Role: entity.RoleAdmin}, nil
}

func (s *accountService) ownerSession(profile *entity.OwnerProfile) (*usecase.OwnerSessionOutput, error) {
	token, err := s.tokenSvc.GenerateSessionToken(profile.ID, entity.RoleOwner)
	if err != nil {
		return nil, errors.Wrap(err, "issue owner session")
	}

	return &usecase.OwnerSessionOutput{
		Session: usecase.SessionOutput{Token: token, Role: entity.RoleOwner},
		Owner:   profile,
	}, nil
}

func validOTP(otp string) bool {
	if len(otp) < minOTPDigits {
		return false
	}
	for _, r := range otp {
		if !unicode.IsDigit(r) {
			return false
		}
	}

	return strings.TrimSpace(otp) == otp
}
