// Package seed loads fixture documents into the report collections.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go-apre/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Feedback is one stored customer feedback document.
type Feedback struct {
	Channel  string    `json:"channel" bson:"channel"`
	Rating   float64   `json:"rating" bson:"rating"`
	Date     time.Time `json:"date" bson:"date"`
	Product  string    `json:"product" bson:"product"`
	Customer string    `json:"customer" bson:"customer"`
	Comments string    `json:"comments" bson:"comments"`
}

// Sale is one stored sales document.
type Sale struct {
	Date        time.Time `json:"date" bson:"date"`
	Region      string    `json:"region" bson:"region"`
	Product     string    `json:"product" bson:"product"`
	Category    string    `json:"category" bson:"category"`
	Customer    string    `json:"customer" bson:"customer"`
	Salesperson string    `json:"salesperson" bson:"salesperson"`
	Channel     string    `json:"channel" bson:"channel"`
	Amount      float64   `json:"amount" bson:"amount"`
}

// Fixtures holds the documents read from a data directory.
type Fixtures struct {
	Feedback []Feedback
	Sales    []Sale
}

// Load reads feedback.json and sales.json from dir.
func Load(dir string) (*Fixtures, error) {
	fixtures := &Fixtures{}
	if err := readJSON(filepath.Join(dir, "feedback.json"), &fixtures.Feedback); err != nil {
		return nil, err
	}
	if err := readJSON(filepath.Join(dir, "sales.json"), &fixtures.Sales); err != nil {
		return nil, err
	}
	return fixtures, nil
}

func readJSON(path string, v any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// Seeder replaces the contents of the report collections.
type Seeder struct {
	Feedback *mongo.Collection
	Sales    *mongo.Collection
	Logger   *zap.Logger
}

func NewSeeder(db *database.MongodbDB, log *zap.Logger) *Seeder {
	return &Seeder{
		Feedback: db.DB.Collection(database.FeedbackCollection),
		Sales:    db.DB.Collection(database.SalesCollection),
		Logger:   log.Named("seed"),
	}
}

// Run clears both collections and inserts the fixtures, one collection per
// goroutine. The first failure cancels the other.
func (s *Seeder) Run(ctx context.Context, fixtures *Fixtures) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.replace(ctx, s.Feedback, toDocs(fixtures.Feedback))
	})
	g.Go(func() error {
		return s.replace(ctx, s.Sales, toDocs(fixtures.Sales))
	})

	return g.Wait()
}

func (s *Seeder) replace(ctx context.Context, coll *mongo.Collection, docs []any) error {
	if _, err := coll.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("clear %s: %w", coll.Name(), err)
	}
	if len(docs) == 0 {
		s.Logger.Info("collection cleared", zap.String("collection", coll.Name()))
		return nil
	}

	res, err := coll.InsertMany(ctx, docs)
	if err != nil {
		return fmt.Errorf("insert %s: %w", coll.Name(), err)
	}
	s.Logger.Info("collection seeded", zap.String("collection", coll.Name()), zap.Int("documents", len(res.InsertedIDs)))
	return nil
}

func toDocs[T any](items []T) []any {
	docs := make([]any, len(items))
	for i := range items {
		docs[i] = items[i]
	}
	return docs
}
