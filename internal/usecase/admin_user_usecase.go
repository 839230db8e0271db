package usecase

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"store/internal/domain/model"
	repo "store/internal/repository"
)

type AdminUserUsecase struct {
	userRepo repo.UserRepository
	auditLog repo.AuditLogRepository
}

// DI
func NewAdminUserUsecase(userRepo repo.UserRepository, auditLog repo.AuditLogRepository) *AdminUserUsecase {
	return &AdminUserUsecase{userRepo: userRepo, auditLog: auditLog}
}

type AdminUserOutput struct {
	ID          int64      `json:"id"`
	Email       string     `json:"email"`
	Role        model.Role `json:"role"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	Phone       string     `json:"phone"`
	IsActive    bool       `json:"is_active"`
	LastLoginAt *time.Time `json:"last_login_at"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (u *AdminUserUsecase) List(ctx context.Context, f repo.AdminUserListFilter) ([]AdminUserOutput, int64, error) {
	if f.Page < 1 {
		return nil, 0, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if f.Limit < 1 || f.Limit > 100 {
		return nil, 0, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}
	switch f.Role {
	case "", string(model.RoleUser), string(model.RoleAdmin):
	default:
		return nil, 0, NewHTTPError(http.StatusBadRequest, "invalid role")
	}

	users, total, err := u.userRepo.ListAdmin(ctx, f)
	if err != nil {
		return nil, 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	outs := make([]AdminUserOutput, 0, len(users))
	for _, usr := range users {
		outs = append(outs, toAdminUserOutput(usr))
	}
	return outs, total, nil
}

func (u *AdminUserUsecase) GetDetail(ctx context.Context, userID int64) (AdminUserOutput, error) {
	if userID <= 0 {
		return AdminUserOutput{}, NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		return AdminUserOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if user == nil {
		return AdminUserOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	return toAdminUserOutput(*user), nil
}

type AdminUpdateUserInput struct {
	Role     *model.Role
	IsActive *bool
}

// Update はロール・有効状態の変更。
// 自分自身の降格・無効化は禁止。無効化時は既存トークンも失効させる。
func (u *AdminUserUsecase) Update(ctx context.Context, adminUserID int64, userID int64, in AdminUpdateUserInput) error {
	if adminUserID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if userID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid user id")
	}
	if in.Role == nil && in.IsActive == nil {
		return NewHTTPError(http.StatusBadRequest, "nothing to update")
	}
	if in.Role != nil && *in.Role != model.RoleUser && *in.Role != model.RoleAdmin {
		return NewHTTPError(http.StatusBadRequest, "invalid role")
	}

	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if user == nil {
		return NewHTTPError(http.StatusNotFound, "not found")
	}

	if userID == adminUserID {
		if in.Role != nil && *in.Role != model.RoleAdmin {
			return NewHTTPError(http.StatusBadRequest, "cannot demote yourself")
		}
		if in.IsActive != nil && !*in.IsActive {
			return NewHTTPError(http.StatusBadRequest, "cannot deactivate yourself")
		}
	}

	beforeRole, beforeActive := user.Role, user.IsActive

	if in.Role != nil {
		user.Role = *in.Role
	}
	deactivated := false
	if in.IsActive != nil {
		if beforeActive && !*in.IsActive {
			deactivated = true
		}
		user.IsActive = *in.IsActive
	}

	if err := u.userRepo.Update(ctx, user); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//無効化されたユーザーの発行済みアクセストークンを無効にする
	if deactivated {
		if err := u.userRepo.IncrementTokenVersion(ctx, userID); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
	}

	if err := u.auditLog.Create(ctx, model.AuditLog{
		ActorUserID:  adminUserID,
		Action:       model.AuditActionUpdateUser,
		ResourceType: model.AuditResourceUser,
		ResourceID:   userID,
		BeforeJSON:   fmt.Sprintf(`{"role":%q,"is_active":%t}`, beforeRole, beforeActive),
		AfterJSON:    fmt.Sprintf(`{"role":%q,"is_active":%t}`, user.Role, user.IsActive),
		CreatedAt:    time.Now(),
	}); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return nil
}

func toAdminUserOutput(u model.User) AdminUserOutput {
	return AdminUserOutput{
		ID:          u.ID,
		Email:       u.Email,
		Role:        u.Role,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Phone:       u.Phone,
		IsActive:    u.IsActive,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
	}
}
