package components

import (
	"store-reservation/internal/handler"
	"store-reservation/internal/handler/api"
	"store-reservation/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewUserHandler,
		api.NewPartnerHandler,
		api.NewStoreHandler,
		api.NewReservationHandler,
		api.NewReviewHandler,
		middleware.NewAuthMiddleware,
		func(auth *api.AuthHandler, user *api.UserHandler, partner *api.PartnerHandler, store *api.StoreHandler, reservation *api.ReservationHandler, review *api.ReviewHandler) handler.Handlers {
			return handler.Handlers{
				Auth:        auth,
				User:        user,
				Partner:     partner,
				Store:       store,
				Reservation: reservation,
				Review:      review,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)
