package sales

import (
	"context"
	"fmt"
	"sort"

	"go-apre/internal/aggregation"
	"go-apre/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type SalesRepository interface {
	Regions(ctx context.Context) ([]string, error)
	SalesByRegion(ctx context.Context, region string) ([]SalespersonSales, error)
	SalesByProduct(ctx context.Context, product string) ([]SalespersonSales, error)
}

type SalesRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewSalesRepository(db *database.MongodbDB) SalesRepository {
	return &SalesRepositoryImpl{
		Collection: db.DB.Collection(database.SalesCollection),
	}
}

func (r *SalesRepositoryImpl) Regions(ctx context.Context) ([]string, error) {
	values, err := r.Collection.Distinct(ctx, "region", bson.D{})
	if err != nil {
		return nil, fmt.Errorf("distinct regions: %w", err)
	}

	regions := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			regions = append(regions, s)
		}
	}
	sort.Strings(regions)
	return regions, nil
}

func (r *SalesRepositoryImpl) SalesByRegion(ctx context.Context, region string) ([]SalespersonSales, error) {
	report := aggregation.GroupReport{
		Match:   aggregation.MatchEqual("region", region),
		GroupBy: "salesperson",
		Accumulators: []aggregation.Accumulator{
			{As: "totalSales", Op: aggregation.OpSum, Source: "amount"},
		},
	}
	rows, err := r.aggregate(ctx, report.Pipeline())
	if err != nil {
		return nil, fmt.Errorf("sales by region %q: %w", region, err)
	}
	return rows, nil
}

func (r *SalesRepositoryImpl) SalesByProduct(ctx context.Context, product string) ([]SalespersonSales, error) {
	report := aggregation.GroupReport{
		Match:   aggregation.MatchEqual("product", product),
		GroupBy: "salesperson",
		Accumulators: []aggregation.Accumulator{
			{As: "totalSales", Op: aggregation.OpSum, Source: "amount"},
			{As: "product", Op: aggregation.OpFirst, Source: "product"},
		},
	}
	rows, err := r.aggregate(ctx, report.Pipeline())
	if err != nil {
		return nil, fmt.Errorf("sales by product %q: %w", product, err)
	}
	return rows, nil
}

func (r *SalesRepositoryImpl) aggregate(ctx context.Context, pipeline mongo.Pipeline) ([]SalespersonSales, error) {
	cursor, err := r.Collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	rows := []SalespersonSales{}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []SalespersonSales{}
	}
	return rows, nil
}
