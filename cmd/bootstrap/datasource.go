package bootstrap

import (
	"stayfinder/internal/infra/datasource"
	"stayfinder/internal/usecase/queries"

	"go.uber.org/fx"
)

var DataSourceModule = fx.Module("datasource",
	fx.Provide(
		fx.Annotate(
			NewPropertyStore,
			fx.As(new(queries.PropertyReadStore)),
		),
		fx.Annotate(
			NewReviewStore,
			fx.As(new(queries.ReviewReadStore)),
		),
	),
)

func NewPropertyStore() *datasource.MemoryPropertyStore {
	return datasource.NewMemoryPropertyStore(datasource.SampleProperties())
}

func NewReviewStore() *datasource.MemoryReviewStore {
	return datasource.NewMemoryReviewStore(datasource.SampleReviews())
}
