package schema

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBIndexer struct {
	ctx      context.Context
	dbName   string
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDBIndexer(connectionString, dbName string) *MongoDBIndexer {
	ctx := context.Background()
	opts := options.Client().ApplyURI(connectionString)
	client, err := mongo.NewClient(opts)
	if err != nil {
		panic(err)
	}
	if err := client.Connect(ctx); err != nil {
		panic(err)
	}

	return &MongoDBIndexer{
		ctx:      ctx,
		dbName:   dbName,
		Client:   client,
		Database: client.Database(dbName),
	}
}

func (m *MongoDBIndexer) createIndex(collection string, index mongo.IndexModel) error {
	c := m.Database.Collection(collection)
	_, err := c.Indexes().CreateOne(m.ctx, index)
	return err
}

func panicIfError(err error) {
	if err != nil {
		panic(err)
	}
}

func (m *MongoDBIndexer) IndexAll() {
	panicIfError(m.IndexReportRowCollection())
	panicIfError(m.IndexScoreboardCollection())
}

func (m *MongoDBIndexer) IndexReportRowCollection() error {
	if err := m.createIndex(ReportRowCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "dataset_id", Value: 1},
			{Key: "country", Value: 1},
			{Key: "report_date", Value: 1},
		},
	}); err != nil {
		return err
	}

	return m.createIndex(ReportRowCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "dataset_id", Value: 1},
			{Key: "clade", Value: 1},
		},
	})
}

func (m *MongoDBIndexer) IndexScoreboardCollection() error {
	return m.createIndex(ScoreboardCollection, mongo.IndexModel{
		Keys: bson.M{
			"dataset_id": 1,
		},
		Options: options.Index().SetUnique(true),
	})
}
