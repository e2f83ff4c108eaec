package accept_request

import (
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/integrations/userservice"
)

// evaluatePolicy проверяет кандидата брони по правилам политики в строгом порядке:
// обязательные поля, корректность дат, порядок дат, существование пользователя,
// лимит длительности роли. Чистая функция без побочных эффектов.
func evaluatePolicy(candidate *domain.Reservation, user *userservice.User) error {
	// 1. Обязательные поля: пользователь, место, даты
	if candidate.UserID <= 0 || candidate.Spot.ID <= 0 {
		return ErrMissingFields
	}
	if candidate.StartDate.IsZero() || candidate.EndDate.IsZero() {
		return ErrMissingFields
	}

	// 2. Даты должны быть корректными календарными датами.
	// Неудачный парсинг на границе API оставляет нулевое значение года.
	if candidate.StartDate.Year() <= 1 || candidate.EndDate.Year() <= 1 {
		return ErrInvalidDateFormat
	}

	// 3. Конец диапазона не раньше начала
	if candidate.EndDate.Before(candidate.StartDate) {
		return ErrEndBeforeStart
	}

	// 4. Пользователь должен существовать
	if user == nil {
		return ErrUserNotFound
	}

	role, err := domain.ParseRole(user.Role)
	if err != nil {
		return fmt.Errorf("%w: role %q", ErrUserNotFound, user.Role)
	}

	// 5. Лимит длительности роли (количество дней с включёнными границами)
	days := candidate.DurationDays()
	if cap := role.MaxReservationDays(); days > cap {
		return fmt.Errorf("%w: %s role can reserve a spot for at most %d days, requested %d",
			ErrDurationExceeded, role, cap, days)
	}

	return nil
}
