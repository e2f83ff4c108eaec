package domain

import "errors"

// Role represents a user role in the parking system
type Role string

const (
	RoleUser      Role = "user"
	RoleManager   Role = "manager"
	RoleSecretary Role = "secretary"
)

// ErrUnknownRole возвращается при неизвестной роли пользователя
var ErrUnknownRole = errors.New("unknown user role")

// roleDurationCaps таблица политики: роль -> максимальная длительность брони в днях.
// Секретари не бронируют сами, поэтому для них действует базовый лимит.
var roleDurationCaps = map[Role]int{
	RoleUser:      MaxReservationDaysUser,
	RoleManager:   MaxReservationDaysManager,
	RoleSecretary: MaxReservationDaysUser,
}

// ParseRole валидирует строку роли. Неизвестные роли отклоняются.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if _, ok := roleDurationCaps[r]; !ok {
		return "", ErrUnknownRole
	}
	return r, nil
}

// MaxReservationDays returns the maximum inclusive day count this role may reserve
func (r Role) MaxReservationDays() int {
	if cap, ok := roleDurationCaps[r]; ok {
		return cap
	}
	return MaxReservationDaysUser
}

// CanRefuseRequests returns true if the role is allowed to refuse pending requests
func (r Role) CanRefuseRequests() bool {
	return r == RoleSecretary
}
