package usecase_test

import (
	"context"
	"testing"

	"store/internal/domain/model"
	"store/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func profileFixture() (*usecase.ProfileUsecase, *UserRepoMock) {
	users := new(UserRepoMock)
	return usecase.NewProfileUsecase(users), users
}

func TestProfileUsecase_UpdateProfile_EmailTakenByOther(t *testing.T) {
	ctx := context.Background()
	uc, users := profileFixture()

	users.On("FindByID", mock.Anything, int64(1)).
		Return(&model.User{ID: 1, Email: "ivan@example.com"}, nil)
	users.On("EmailTakenByOther", mock.Anything, "petr@example.com", int64(1)).Return(true, nil)

	_, err := uc.UpdateProfile(ctx, 1, usecase.UpdateProfileInput{Email: "petr@example.com"})
	assertErrContains(t, err, "email already in use")

	users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestProfileUsecase_UpdateProfile_SameEmailSkipsCheck(t *testing.T) {
	ctx := context.Background()
	uc, users := profileFixture()

	users.On("FindByID", mock.Anything, int64(1)).
		Return(&model.User{ID: 1, Email: "ivan@example.com"}, nil)
	users.On("Update", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.Email == "ivan@example.com" && u.City == "Москва"
	})).Return(nil)

	out, err := uc.UpdateProfile(ctx, 1, usecase.UpdateProfileInput{
		Email: " Ivan@Example.com ",
		City:  " Москва ",
	})
	assert.NoError(t, err)
	assert.Equal(t, "Москва", out.City)

	users.AssertNotCalled(t, "EmailTakenByOther", mock.Anything, mock.Anything, mock.Anything)
}

func TestProfileUsecase_GetProfile_BuildsFullAddress(t *testing.T) {
	ctx := context.Background()
	uc, users := profileFixture()

	users.On("FindByID", mock.Anything, int64(1)).Return(&model.User{
		ID:         1,
		Email:      "ivan@example.com",
		Address:    "ул. Ленина 1",
		City:       "Москва",
		PostalCode: "101000",
		Country:    "Россия",
	}, nil)

	out, err := uc.GetProfile(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, "101000, Россия, г. Москва, ул. Ленина 1", out.FullAddress)
}

func TestProfileUsecase_UpdateProfile_InvalidEmail(t *testing.T) {
	uc, _ := profileFixture()

	_, err := uc.UpdateProfile(context.Background(), 1, usecase.UpdateProfileInput{Email: "not-an-email"})
	assertErrContains(t, err, "invalid email")
}
