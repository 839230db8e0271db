package usecase

import (
	"context"
	"net/http"
	"strings"

	"store/internal/domain/model"
	repo "store/internal/repository"
)

type ProfileUsecase struct {
	userRepo repo.UserRepository
}

// DI
func NewProfileUsecase(userRepo repo.UserRepository) *ProfileUsecase {
	return &ProfileUsecase{userRepo: userRepo}
}

type ProfileOutput struct {
	ID          int64      `json:"id"`
	Email       string     `json:"email"`
	Role        model.Role `json:"role"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	Phone       string     `json:"phone"`
	Address     string     `json:"address"`
	City        string     `json:"city"`
	PostalCode  string     `json:"postal_code"`
	Country     string     `json:"country"`
	FullAddress string     `json:"full_address"`
}

func (u *ProfileUsecase) GetProfile(ctx context.Context, userID int64) (ProfileOutput, error) {
	if userID <= 0 {
		return ProfileOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		return ProfileOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if user == nil {
		return ProfileOutput{}, NewHTTPError(http.StatusNotFound, "user not found")
	}
	return toProfileOutput(*user), nil
}

type UpdateProfileInput struct {
	Email      string
	FirstName  string
	LastName   string
	Phone      string
	Address    string
	City       string
	PostalCode string
	Country    string
}

func (u *ProfileUsecase) UpdateProfile(ctx context.Context, userID int64, in UpdateProfileInput) (ProfileOutput, error) {
	if userID <= 0 {
		return ProfileOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || !strings.Contains(email, "@") {
		return ProfileOutput{}, NewHTTPError(http.StatusBadRequest, "invalid email")
	}

	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		return ProfileOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if user == nil {
		return ProfileOutput{}, NewHTTPError(http.StatusNotFound, "user not found")
	}

	//email変更時は重複チェック
	if email != user.Email {
		taken, err := u.userRepo.EmailTakenByOther(ctx, email, userID)
		if err != nil {
			return ProfileOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if taken {
			return ProfileOutput{}, NewHTTPError(http.StatusConflict, "email already in use")
		}
	}

	user.Email = email
	user.FirstName = strings.TrimSpace(in.FirstName)
	user.LastName = strings.TrimSpace(in.LastName)
	user.Phone = strings.TrimSpace(in.Phone)
	user.Address = strings.TrimSpace(in.Address)
	user.City = strings.TrimSpace(in.City)
	user.PostalCode = strings.TrimSpace(in.PostalCode)
	user.Country = strings.TrimSpace(in.Country)

	if err := u.userRepo.Update(ctx, user); err != nil {
		return ProfileOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return toProfileOutput(*user), nil
}

func toProfileOutput(u model.User) ProfileOutput {
	return ProfileOutput{
		ID:          u.ID,
		Email:       u.Email,
		Role:        u.Role,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Phone:       u.Phone,
		Address:     u.Address,
		City:        u.City,
		PostalCode:  u.PostalCode,
		Country:     u.Country,
		FullAddress: u.FullAddress(),
	}
}
