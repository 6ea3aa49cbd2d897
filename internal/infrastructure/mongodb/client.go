package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/jhoicas/packages-api/pkg/config"
)

// Nombres de las colecciones.
const (
	usersCollection    = "users"
	adminsCollection   = "admins"
	packagesCollection = "packages"
)

// Connect abre la conexión a MongoDB, verifica con ping y devuelve el handle
// de la base. El cliente es process-wide y se cierra en el shutdown.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, *mongo.Database, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(10 * time.Second)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("conectar a MongoDB: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, fmt.Errorf("ping MongoDB: %w", err)
	}

	return client, client.Database(cfg.Database), nil
}

// EnsureIndexes crea los índices únicos de email por colección. La unicidad
// es por colección: el mismo email puede existir como user y como admin.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	emailIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	for _, name := range []string{usersCollection, adminsCollection} {
		if _, err := db.Collection(name).Indexes().CreateOne(ctx, emailIndex); err != nil {
			return fmt.Errorf("crear índice email en %s: %w", name, err)
		}
	}
	return nil
}
