package entities

import (
	"errors"
	"time"
)

var (
	ErrInvalidUserData = errors.New("invalid user data")
)

// User representa um usuário do sistema
// A identidade vem de fora (seed ou token); não há credenciais locais.
type User struct {
	ID        string
	Name      string
	Role      Role
	AvatarURL *string
	CreatedAt time.Time
	DeletedAt *time.Time // Soft delete
}

// IsAdmin verifica se o usuário é admin
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsDeleted verifica se o usuário foi deletado (soft delete)
func (u *User) IsDeleted() bool {
	return u.DeletedAt != nil
}

// SoftDelete marca o usuário como deletado
func (u *User) SoftDelete() {
	now := time.Now()
	u.DeletedAt = &now
}

// Validate valida regras de negócio da entidade User
func (u *User) Validate() error {
	if u.Name == "" {
		return errors.New("name is required")
	}

	if len(u.Name) < 2 {
		return errors.New("name must be at least 2 characters")
	}

	if !u.Role.IsValid() {
		return errors.New("invalid role")
	}

	return nil
}
