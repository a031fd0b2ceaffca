package components

import (
	"store-reservation/internal/infra/db"
	"store-reservation/internal/infra/readstore"
	"store-reservation/internal/infra/uow"
	"store-reservation/internal/usecase"
	"store-reservation/internal/usecase/queries"
	"store-reservation/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		fx.Annotate(
			readstore.NewReviewReadStore,
			fx.As(new(queries.ReviewReadStore)),
		),
		fx.Annotate(
			readstore.NewStoreReadStore,
			fx.As(new(queries.StoreReadStore)),
		),
		fx.Annotate(
			readstore.NewAccountReadStore,
			fx.As(new(usecase.CredentialStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
