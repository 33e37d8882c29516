package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	AccountCollection      = "accounts"
	AppointmentCollection  = "appointments"
	PrescriptionCollection = "prescriptions"
)

const connectAttempts = 5

// session is the subset of *mongo.Client the retry loop needs; tests swap
// dial to exercise the loop without a server.
type session interface {
	Ping(ctx context.Context, rp *readpref.ReadPref) error
	Disconnect(ctx context.Context) error
	Database(name string, opts ...*options.DatabaseOptions) *mongo.Database
}

var (
	client session
	db     *mongo.Database

	connectDelay = 2 * time.Second

	dial = func(ctx context.Context, uri string) (session, error) {
		return mongo.Connect(ctx, options.Client().ApplyURI(uri))
	}
)

/*
* Connect to mongo with a fixed number of attempts
* A client whose ping fails is disconnected before the next attempt
* Retry happens at startup only
 */
func Connect(ctx context.Context, uri, name string) error {
	var err error
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		var c session
		c, err = dial(ctx, uri)
		if err == nil {
			if err = c.Ping(ctx, nil); err == nil {
				client = c
				db = c.Database(name)
				return nil
			}
			if derr := c.Disconnect(ctx); derr != nil {
				log.Println("Error while closing unreachable mongo client:", derr)
			}
		}
		log.Println("Mongo connect attempt", attempt, "failed:", err)
		time.Sleep(connectDelay)
	}
	return err
}

// UseDatabase swaps the active handle; tests point it at a mock deployment.
func UseDatabase(d *mongo.Database) {
	db = d
}

func Disconnect(ctx context.Context) {
	if client == nil {
		return
	}
	if err := client.Disconnect(ctx); err != nil {
		log.Println("Error while disconnecting mongo:", err)
	}
}

func OpenCollection(name string) *mongo.Collection {
	return db.Collection(name)
}

/*
* Unique index on accounts.email makes cross-role email uniqueness a real
* constraint instead of an application-level pre-check
* Compound participant index backs the derived appointment lookups
 */
func EnsureIndexes(ctx context.Context) error {
	_, err := OpenCollection(AccountCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}
	_, err = OpenCollection(AppointmentCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "patientId", Value: 1}}},
		{Keys: bson.D{{Key: "doctorId", Value: 1}}},
		{Keys: bson.D{{Key: "appointmentDate", Value: 1}}},
	})
	if err != nil {
		return err
	}
	_, err = OpenCollection(PrescriptionCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "patientId", Value: 1}}},
		{Keys: bson.D{{Key: "doctorId", Value: 1}}},
		{Keys: bson.D{{Key: "deliveryStatus", Value: 1}}},
	})
	return err
}

func FindOne(ctx context.Context, coll *mongo.Collection, filter interface{}, out interface{}) error {
	return coll.FindOne(ctx, filter).Decode(out)
}

func CreateOne(ctx context.Context, coll *mongo.Collection, doc interface{}) (*mongo.InsertOneResult, error) {
	return coll.InsertOne(ctx, doc)
}

func UpdateOne(ctx context.Context, coll *mongo.Collection, filter, update interface{}) (*mongo.UpdateResult, error) {
	return coll.UpdateOne(ctx, filter, update)
}

func DeleteOne(ctx context.Context, coll *mongo.Collection, filter interface{}) (*mongo.DeleteResult, error) {
	return coll.DeleteOne(ctx, filter)
}

func FindAll(ctx context.Context, coll *mongo.Collection, filter interface{}, opts *options.FindOptions, out interface{}) error {
	if filter == nil {
		filter = bson.M{}
	}
	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)
	return cursor.All(ctx, out)
}

func Aggregate(ctx context.Context, coll *mongo.Collection, pipeline interface{}) ([]bson.M, error) {
	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	rows := []bson.M{}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
