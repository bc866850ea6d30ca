package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"moneyfi-advisor/internal/config"
	"moneyfi-advisor/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore wraps the MongoDB client for the durable collections: reports
// (unique per type), strategy templates (non-unique per type) and the
// mutual-fund metrics documents.
type MongoStore struct {
	client     *mongo.Client
	database   *mongo.Database
	reports    *mongo.Collection
	strategies *mongo.Collection
	funds      *mongo.Collection
}

// NewMongoStore connects to MongoDB and prepares the collections.
func NewMongoStore(cfg config.MongoDBConfig) (*MongoStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	database := client.Database(cfg.Database)
	store := &MongoStore{
		client:     client,
		database:   database,
		reports:    database.Collection(cfg.ReportCollection),
		strategies: database.Collection(cfg.StrategyCollection),
		funds:      database.Collection(cfg.FundCollection),
	}

	// Unique index on type enforces the one-report-per-bucket invariant.
	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "type", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := store.reports.Indexes().CreateOne(ctx, indexModel); err != nil {
		// Index might already exist, that's okay
		log.Printf("Note: MongoDB report index creation: %v", err)
	}

	strategyIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "type", Value: 1}},
	}
	if _, err := store.strategies.Indexes().CreateOne(ctx, strategyIndex); err != nil {
		log.Printf("Note: MongoDB strategy index creation: %v", err)
	}

	return store, nil
}

// Close closes the MongoDB client connection
func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

// ReplaceReport deletes any report with the same type and inserts the new
// one. Replacement is whole-document; reports are never partially updated.
func (s *MongoStore) ReplaceReport(ctx context.Context, report models.Report) error {
	if _, err := s.reports.DeleteOne(ctx, bson.M{"type": report.Type}); err != nil {
		return fmt.Errorf("failed to delete existing report for type %d: %w", report.Type, err)
	}
	if _, err := s.reports.InsertOne(ctx, report); err != nil {
		return fmt.Errorf("failed to insert report for type %d: %w", report.Type, err)
	}
	return nil
}

// GetReportByType retrieves the report for a bucket type. Returns nil when
// no report exists for the type.
func (s *MongoStore) GetReportByType(ctx context.Context, reportType int) (*models.Report, error) {
	var report models.Report
	err := s.reports.FindOne(ctx, bson.M{"type": reportType}).Decode(&report)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query report for type %d: %w", reportType, err)
	}
	return &report, nil
}

// UpdateReportAllocations merges the supplied allocation maps into the stored
// report. Only allocation entries are touched; last write wins per class.
func (s *MongoStore) UpdateReportAllocations(ctx context.Context, reportType int, monthly, lumpsum map[string]float64) (*models.Report, error) {
	set := bson.M{}
	for class, amount := range monthly {
		set["monthly_allocations."+class] = amount
	}
	for class, amount := range lumpsum {
		set["lumpsum_allocations."+class] = amount
	}
	if len(set) == 0 {
		return s.GetReportByType(ctx, reportType)
	}

	after := options.After
	opts := options.FindOneAndUpdate().SetReturnDocument(after)
	var report models.Report
	err := s.reports.FindOneAndUpdate(ctx, bson.M{"type": reportType}, bson.M{"$set": set}, opts).Decode(&report)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update allocations for type %d: %w", reportType, err)
	}
	return &report, nil
}

// InsertStrategy inserts a raw strategy template document as-is.
func (s *MongoStore) InsertStrategy(ctx context.Context, template models.StrategyTemplate) error {
	if _, err := s.strategies.InsertOne(ctx, template); err != nil {
		return fmt.Errorf("failed to insert strategy template: %w", err)
	}
	return nil
}

// GetStrategiesByType returns all strategy templates stored for a bucket
// type. Multiple documents may share a bucket; callers concatenate them.
func (s *MongoStore) GetStrategiesByType(ctx context.Context, bucketType int) ([]models.StrategyTemplate, error) {
	cursor, err := s.strategies.Find(ctx, bson.M{"type": bucketType})
	if err != nil {
		return nil, fmt.Errorf("failed to query strategies for type %d: %w", bucketType, err)
	}
	defer cursor.Close(ctx)

	var templates []models.StrategyTemplate
	if err := cursor.All(ctx, &templates); err != nil {
		return nil, fmt.Errorf("failed to decode strategy templates: %w", err)
	}
	return templates, nil
}

// ReplaceStrategies deletes all templates for a bucket type and inserts the
// regenerated one.
func (s *MongoStore) ReplaceStrategies(ctx context.Context, template models.StrategyTemplate) error {
	if _, err := s.strategies.DeleteMany(ctx, bson.M{"type": template.Type}); err != nil {
		return fmt.Errorf("failed to delete strategies for type %d: %w", template.Type, err)
	}
	return s.InsertStrategy(ctx, template)
}

// InsertMutualFund inserts a fund-metrics document and returns its id.
func (s *MongoStore) InsertMutualFund(ctx context.Context, fund models.MutualFund) (string, error) {
	result, err := s.funds.InsertOne(ctx, fund)
	if err != nil {
		return "", fmt.Errorf("failed to insert mutual fund: %w", err)
	}
	return fmt.Sprintf("%v", result.InsertedID), nil
}

// ListMutualFunds returns all stored fund-metrics documents.
func (s *MongoStore) ListMutualFunds(ctx context.Context) ([]models.MutualFund, error) {
	cursor, err := s.funds.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to query mutual funds: %w", err)
	}
	defer cursor.Close(ctx)

	var funds []models.MutualFund
	if err := cursor.All(ctx, &funds); err != nil {
		return nil, fmt.Errorf("failed to decode mutual funds: %w", err)
	}
	return funds, nil
}
