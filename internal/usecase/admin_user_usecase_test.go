package usecase_test

import (
	"context"
	"testing"

	"store/internal/domain/model"
	"store/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func adminUserFixture() (*usecase.AdminUserUsecase, *UserRepoMock, *AuditLogRepoMock) {
	users := new(UserRepoMock)
	auditLog := new(AuditLogRepoMock)
	return usecase.NewAdminUserUsecase(users, auditLog), users, auditLog
}

func TestAdminUserUsecase_Update_CannotDemoteYourself(t *testing.T) {
	ctx := context.Background()
	uc, users, _ := adminUserFixture()

	users.On("FindByID", mock.Anything, int64(9)).
		Return(&model.User{ID: 9, Role: model.RoleAdmin, IsActive: true}, nil)

	role := model.RoleUser
	err := uc.Update(ctx, 9, 9, usecase.AdminUpdateUserInput{Role: &role})
	assertErrContains(t, err, "cannot demote yourself")

	users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAdminUserUsecase_Update_CannotDeactivateYourself(t *testing.T) {
	ctx := context.Background()
	uc, users, _ := adminUserFixture()

	users.On("FindByID", mock.Anything, int64(9)).
		Return(&model.User{ID: 9, Role: model.RoleAdmin, IsActive: true}, nil)

	inactive := false
	err := uc.Update(ctx, 9, 9, usecase.AdminUpdateUserInput{IsActive: &inactive})
	assertErrContains(t, err, "cannot deactivate yourself")
}

func TestAdminUserUsecase_Update_DeactivationBumpsTokenVersion(t *testing.T) {
	ctx := context.Background()
	uc, users, auditLog := adminUserFixture()

	users.On("FindByID", mock.Anything, int64(3)).
		Return(&model.User{ID: 3, Role: model.RoleUser, IsActive: true}, nil)
	users.On("Update", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.ID == 3 && !u.IsActive
	})).Return(nil)
	//無効化したユーザーの手持ちアクセストークンを全部失効させる
	users.On("IncrementTokenVersion", mock.Anything, int64(3)).Return(nil)
	auditLog.On("Create", mock.Anything, mock.MatchedBy(func(l model.AuditLog) bool {
		return l.Action == model.AuditActionUpdateUser && l.ResourceID == 3 &&
			l.BeforeJSON == `{"role":"user","is_active":true}` &&
			l.AfterJSON == `{"role":"user","is_active":false}`
	})).Return(nil)

	inactive := false
	err := uc.Update(ctx, 9, 3, usecase.AdminUpdateUserInput{IsActive: &inactive})
	assert.NoError(t, err)

	users.AssertExpectations(t)
	auditLog.AssertExpectations(t)
}

func TestAdminUserUsecase_Update_PromotionDoesNotBumpTokenVersion(t *testing.T) {
	ctx := context.Background()
	uc, users, auditLog := adminUserFixture()

	users.On("FindByID", mock.Anything, int64(3)).
		Return(&model.User{ID: 3, Role: model.RoleUser, IsActive: true}, nil)
	users.On("Update", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.ID == 3 && u.Role == model.RoleAdmin
	})).Return(nil)
	auditLog.On("Create", mock.Anything, mock.Anything).Return(nil)

	role := model.RoleAdmin
	err := uc.Update(ctx, 9, 3, usecase.AdminUpdateUserInput{Role: &role})
	assert.NoError(t, err)

	users.AssertNotCalled(t, "IncrementTokenVersion", mock.Anything, mock.Anything)
}

func TestAdminUserUsecase_Update_NothingToUpdate(t *testing.T) {
	uc, _, _ := adminUserFixture()

	err := uc.Update(context.Background(), 9, 3, usecase.AdminUpdateUserInput{})
	assertErrContains(t, err, "nothing to update")
}

func TestAdminUserUsecase_GetDetail_NotFound(t *testing.T) {
	uc, users, _ := adminUserFixture()

	users.On("FindByID", mock.Anything, int64(404)).Return(nil, nil)

	_, err := uc.GetDetail(context.Background(), 404)
	assertErrContains(t, err, "not found")
}
