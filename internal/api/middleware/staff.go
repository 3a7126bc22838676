package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TourService/internal/api/handlers"
	"github.com/m04kA/SMC-TourService/internal/domain"
	userRepo "github.com/m04kA/SMC-TourService/internal/infra/storage/user"
)

const msgStaffOnly = "доступ только для сотрудников агентства"

// UserProvider источник пользователей для проверки роли
type UserProvider interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// RequireStaff пропускает только сотрудников (tour_agent, manager, operator, admin)
// Должен стоять после Auth
func RequireStaff(users UserProvider, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := GetUserID(r.Context())
			if !ok {
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			user, err := users.GetByID(r.Context(), userID)
			switch {
			case errors.Is(err, userRepo.ErrUserNotFound):
				logger.Warn("%s %s - unknown user_id=%d", r.Method, r.URL.Path, userID)
				handlers.RespondForbidden(w, msgStaffOnly)
				return

			case err != nil:
				logger.Error("%s %s - failed to get user_id=%d: %v", r.Method, r.URL.Path, userID, err)
				handlers.RespondInternalError(w)
				return

			case !user.Role.IsStaff():
				logger.Warn("%s %s - staff access denied for user_id=%d, role=%s", r.Method, r.URL.Path, userID, user.Role)
				handlers.RespondForbidden(w, msgStaffOnly)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
