package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

const namespaceExistsErrCode = 48

// ErrConnectionFailed wraps every bootstrap failure so callers can pick an exit code.
var ErrConnectionFailed = errors.New("mongodb connection failed")

type MongoDBClient struct {
	Client               *mongo.Client
	Database             *mongo.Database
	supportsTransactions bool
}

// NewMongoDBClient wraps an already connected client.
func NewMongoDBClient(client *mongo.Client, databaseName string, supportsTransactions bool) *MongoDBClient {
	return &MongoDBClient{
		Client:               client,
		Database:             client.Database(databaseName),
		supportsTransactions: supportsTransactions,
	}
}

// InitializeDatabaseConnection connects, pings and probes transaction support.
func InitializeDatabaseConnection(cfg MongoDbConfigModel, logger *zap.Logger) (*MongoDBClient, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(cfg.ConnectionUrl).
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnectionFailed, err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("%w: ping: %v", ErrConnectionFailed, err)
	}

	supportsTransactions := false
	switch cfg.Transactions {
	case TransactionsOn:
		supportsTransactions = true
	case TransactionsAuto:
		supportsTransactions, err = probeTransactionSupport(ctx, client)
		if err != nil {
			logger.Warn("MongoDB -> InitializeDatabaseConnection -> transaction probe failed, using two-step writes", zap.Error(err))
		}
	}

	logger.Info("✅ Connected to MongoDB",
		zap.String("database", cfg.DatabaseName),
		zap.Bool("transactions", supportsTransactions),
	)

	return NewMongoDBClient(client, cfg.DatabaseName, supportsTransactions), nil
}

type helloResult struct {
	SetName                      string `bson:"setName"`
	Msg                          string `bson:"msg"`
	LogicalSessionTimeoutMinutes *int64 `bson:"logicalSessionTimeoutMinutes"`
}

// probeTransactionSupport reports whether the deployment is a replica set member
// or a mongos, the two topologies that accept multi-document transactions.
func probeTransactionSupport(ctx context.Context, client *mongo.Client) (bool, error) {
	var hello helloResult
	err := client.Database("admin").RunCommand(ctx, bson.D{{Key: "hello", Value: 1}}).Decode(&hello)
	if err != nil {
		return false, err
	}
	return supportsTransactions(hello), nil
}

func supportsTransactions(hello helloResult) bool {
	if hello.LogicalSessionTimeoutMinutes == nil {
		return false
	}
	return hello.SetName != "" || hello.Msg == "isdbgrid"
}

func (c *MongoDBClient) GetCollectionByName(name string) *mongo.Collection {
	return c.Database.Collection(name)
}

// Ping issues a liveness probe against the primary.
func (c *MongoDBClient) Ping(ctx context.Context) error {
	return c.Client.Ping(ctx, readpref.Primary())
}

// EnsureCollection creates the collection, treating an existing one as success.
func (c *MongoDBClient) EnsureCollection(ctx context.Context, name string) error {
	err := c.Database.CreateCollection(ctx, name)
	if err == nil {
		return nil
	}

	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) && cmdErr.Code == namespaceExistsErrCode {
		return nil
	}
	return err
}

func (c *MongoDBClient) SupportsTransactions() bool {
	return c.supportsTransactions
}

// WithTransaction runs fn inside a session transaction. The context passed to fn
// must be used for every operation that belongs to the transaction.
func (c *MongoDBClient) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := c.Client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}

func (c *MongoDBClient) Disconnect(ctx context.Context) error {
	return c.Client.Disconnect(ctx)
}
