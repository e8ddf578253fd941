package domain

import (
	"fmt"
	"strings"
	"time"
)

type Role int

const (
	RoleOwner Role = iota + 1
	RoleManager
	RoleCashier
	RoleKitchen
	RoleWaiter
)

func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "owner":
		return RoleOwner, nil
	case "manager":
		return RoleManager, nil
	case "cashier":
		return RoleCashier, nil
	case "kitchen":
		return RoleKitchen, nil
	case "waiter":
		return RoleWaiter, nil
	}
	return 0, fmt.Errorf("unknown staff role %q", s)
}

func (r Role) String() string {
	switch r {
	case RoleOwner:
		return "owner"
	case RoleManager:
		return "manager"
	case RoleCashier:
		return "cashier"
	case RoleKitchen:
		return "kitchen"
	case RoleWaiter:
		return "waiter"
	}
	return "unknown"
}

func (r Role) MarshalText() ([]byte, error) {
	if r.String() == "unknown" {
		return nil, fmt.Errorf("invalid role %d", int(r))
	}
	return []byte(r.String()), nil
}

func (r *Role) UnmarshalText(text []byte) error {
	parsed, err := ParseRole(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// HomeRoute is the dashboard a staff member lands on after login.
func (r Role) HomeRoute() string {
	switch r {
	case RoleOwner, RoleManager:
		return "/dashboard"
	case RoleCashier:
		return "/dashboard/payments"
	case RoleKitchen:
		return "/dashboard/kitchen"
	case RoleWaiter:
		return "/dashboard/tables"
	}
	return "/login"
}

func (r Role) CanManageMenu() bool {
	return r == RoleOwner || r == RoleManager
}

func (r Role) CanManageStaff() bool {
	return r == RoleOwner
}

func (r Role) CanUpdateOrders() bool {
	switch r {
	case RoleOwner, RoleManager, RoleCashier, RoleKitchen, RoleWaiter:
		return true
	}
	return false
}

func (r Role) CanVerifyPayments() bool {
	return r == RoleOwner || r == RoleManager || r == RoleCashier
}

type Staff struct {
	ID           int       `json:"id"`
	RestaurantID int       `json:"restaurant_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         Role      `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
