package sales

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestSalesRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("regions are strings sorted ascending", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "values", Value: bson.A{"South", "North", int32(7), "East"}},
		))
		repo := &SalesRepositoryImpl{Collection: mt.Coll}

		regions, err := repo.Regions(context.Background())
		require.NoError(mt, err)
		assert.Equal(mt, []string{"East", "North", "South"}, regions)
	})

	mt.Run("sales by region", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "apre.sales", mtest.FirstBatch,
			bson.D{{Key: "salesperson", Value: "Adam"}, {Key: "totalSales", Value: 1500.5}},
			bson.D{{Key: "salesperson", Value: "Zoe"}, {Key: "totalSales", Value: int32(200)}},
		))
		repo := &SalesRepositoryImpl{Collection: mt.Coll}

		rows, err := repo.SalesByRegion(context.Background(), "North")
		require.NoError(mt, err)
		assert.Equal(mt, []SalespersonSales{
			{Salesperson: "Adam", TotalSales: 1500.5},
			{Salesperson: "Zoe", TotalSales: 200},
		}, rows)
	})

	mt.Run("sales by product keeps the product", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "apre.sales", mtest.FirstBatch,
			bson.D{{Key: "salesperson", Value: "Mia"}, {Key: "totalSales", Value: 99.0}, {Key: "product", Value: "Laptop Pro 15"}},
		))
		repo := &SalesRepositoryImpl{Collection: mt.Coll}

		rows, err := repo.SalesByProduct(context.Background(), "Laptop Pro 15")
		require.NoError(mt, err)
		assert.Equal(mt, []SalespersonSales{{Salesperson: "Mia", TotalSales: 99, Product: "Laptop Pro 15"}}, rows)
	})

	mt.Run("empty product result", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "apre.sales", mtest.FirstBatch))
		repo := &SalesRepositoryImpl{Collection: mt.Coll}

		rows, err := repo.SalesByProduct(context.Background(), "Nothing")
		require.NoError(mt, err)
		assert.NotNil(mt, rows)
		assert.Empty(mt, rows)
	})

	mt.Run("distinct failure", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 13, Name: "Unauthorized", Message: "not authorized"}))
		repo := &SalesRepositoryImpl{Collection: mt.Coll}

		_, err := repo.Regions(context.Background())
		assert.ErrorContains(mt, err, "distinct regions")
	})
}
