package client

import (
	"context"
	"time"

	"trainbook/pkg/kafka"
	"trainbook/pkg/logger"
	"trainbook/pkg/workbook"
)

// Client holds the connections a service opened so they can be shut down together.
// Only the fields for the configured backend are set.
type Client struct {
	Mongo    *MongoClient
	Workbook *workbook.Workbook
	Producer *kafka.Producer
}

func NewClient() *Client {
	return &Client{}
}

func (c *Client) SetMongo(log *logger.Logger, mongoURI string, mongoConnTimeout time.Duration) {
	mongoClient, err := NewMongoClient(log, mongoURI, mongoConnTimeout)
	if err != nil {
		log.Fatal("MongoDB is not reachable", "error", err)
	}
	c.Mongo = mongoClient
}

func (c *Client) SetWorkbook(log *logger.Logger, path string, sheets []workbook.Sheet) {
	wb, err := workbook.EnsureSheets(path, sheets)
	if err != nil {
		log.Fatal("Failed to open workbook", "path", path, "error", err)
	}
	log.Info("Workbook ready", "path", path)
	c.Workbook = wb
}

func (c *Client) SetProducer(producer *kafka.Producer) {
	c.Producer = producer
}

func (c *Client) GracefulShutdown(log *logger.Logger, timeout time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if c.Producer != nil {
		if err := c.Producer.Close(); err != nil {
			log.Error("Failed to close Kafka producer", "error", err)
		}
	}
	if c.Mongo != nil {
		if err := c.Mongo.Disconnect(ctx); err != nil {
			log.Error("Failed to disconnect from MongoDB", "error", err)
		}
	}
}
