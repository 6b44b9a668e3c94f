package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"licitaya-api/internal/entity"
	"licitaya-api/internal/repo"
	"licitaya-api/internal/repo/repo_errors"
	"licitaya-api/internal/token"
)

// Verification tokens stay valid for one day after (re)issuance.
const tokenTTL = 24 * time.Hour

type RegisterOutcome string

const (
	OutcomeRegistered RegisterOutcome = "registered"
	OutcomeResent     RegisterOutcome = "resent"
)

type UserService struct {
	userRepo   repo.User
	dispatcher MailDispatcher
	now        func() time.Time
}

func NewUserService(repos *repo.Repositories, dispatcher MailDispatcher) *UserService {
	return newUserService(repos.User, dispatcher)
}

func newUserService(userRepo repo.User, dispatcher MailDispatcher) *UserService {
	return &UserService{
		userRepo:   userRepo,
		dispatcher: dispatcher,
		now:        time.Now,
	}
}

// Register moves a user into pending_verification. A new email creates the
// row; a pending email gets a fresh token and another mail; a verified
// email is a conflict. The email is enqueued only after the row commit, so
// a failed dispatch can never leave a phantom user behind.
func (s *UserService) Register(ctx context.Context, input *entity.RegisterInput) (RegisterOutcome, error) {
	if len(input.Preferences.Keywords) > entity.MaxPreferenceKeywords {
		return "", ErrTooManyKeywords
	}

	user, err := s.userRepo.GetUserByEmail(ctx, input.Email)
	if err == nil {
		return s.registerExisting(ctx, user)
	}
	if !errors.Is(err, repo_errors.ErrNotFound) {
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	verificationToken, err := token.New()
	if err != nil {
		return "", err
	}

	_, err = s.userRepo.CreateUser(ctx, &entity.CreateUserInput{
		Name:                     input.Name,
		Email:                    input.Email,
		Phone:                    input.Phone,
		Company:                  input.Company,
		Preferences:              input.Preferences,
		VerificationToken:        verificationToken,
		VerificationTokenExpires: s.now().Add(tokenTTL),
	})
	if err != nil {
		if errors.Is(err, repo_errors.ErrUniqueViolation) {
			// Lost a concurrent registration race on the email unique index.
			// Re-read and take the resend/conflict path instead of surfacing
			// the raw constraint error.
			user, lookupErr := s.userRepo.GetUserByEmail(ctx, input.Email)
			if lookupErr != nil {
				return "", fmt.Errorf("failed to look up user: %w", lookupErr)
			}

			return s.registerExisting(ctx, user)
		}

		return "", fmt.Errorf("failed to create user: %w", err)
	}

	s.dispatcher.Enqueue(entity.VerificationEmail{
		Name:  input.Name,
		Email: input.Email,
		Token: verificationToken,
	})

	return OutcomeRegistered, nil
}

// registerExisting handles the duplicate-email paths: a verified user is a
// conflict, a pending one gets a fresh token. Overwriting the stored token
// invalidates the previous one, it no longer matches any row.
func (s *UserService) registerExisting(ctx context.Context, user *entity.User) (RegisterOutcome, error) {
	if user.IsVerified {
		return "", ErrAlreadyVerified
	}

	verificationToken, err := token.New()
	if err != nil {
		return "", err
	}

	err = s.userRepo.UpdateVerificationToken(ctx, user.Id, verificationToken, s.now().Add(tokenTTL))
	if err != nil {
		return "", fmt.Errorf("failed to reissue verification token: %w", err)
	}

	s.dispatcher.Enqueue(entity.VerificationEmail{
		Name:  user.Name,
		Email: user.Email,
		Token: verificationToken,
	})

	return OutcomeResent, nil
}

// Verify consumes a token. An expired token is left in place: the user has
// to register again to get a fresh one.
func (s *UserService) Verify(ctx context.Context, verificationToken string) error {
	user, err := s.userRepo.GetUserByToken(ctx, verificationToken)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return ErrTokenNotFound
		}

		return fmt.Errorf("failed to look up token: %w", err)
	}

	if s.now().After(user.VerificationTokenExpires) {
		return ErrTokenExpired
	}

	if err := s.userRepo.MarkUserVerified(ctx, user.Id); err != nil {
		return fmt.Errorf("failed to verify user: %w", err)
	}

	return nil
}
