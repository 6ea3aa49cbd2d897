package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/packages-api/internal/domain"
	"github.com/jhoicas/packages-api/internal/domain/entity"
	"github.com/jhoicas/packages-api/internal/domain/repository"
)

var _ repository.PackageRepository = (*PackageRepo)(nil)

// packageDoc documento BSON de la colección packages. userId se guarda como
// ObjectID referenciando al usuario dueño (por convención, sin FK).
type packageDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	Price       int                `bson:"price"`
	ExpiresAt   time.Time          `bson:"expiresAt"`
	UserID      primitive.ObjectID `bson:"userId"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

func (d *packageDoc) toEntity() *entity.Package {
	return &entity.Package{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price,
		ExpiresAt:   d.ExpiresAt,
		UserID:      d.UserID.Hex(),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// ownerDoc proyección {_id, name, email} del usuario dueño en la agregación.
type ownerDoc struct {
	ID    primitive.ObjectID `bson:"_id"`
	Name  string             `bson:"name"`
	Email string             `bson:"email"`
}

// filterDoc fila de salida de la agregación por rango de expiración.
type filterDoc struct {
	ID          primitive.ObjectID `bson:"_id"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	Price       int                `bson:"price"`
	ExpiresAt   time.Time          `bson:"expiresAt"`
	UserID      primitive.ObjectID `bson:"userId"`
	User        *ownerDoc          `bson:"user,omitempty"`
}

// PackageRepo implementación del puerto PackageRepository sobre MongoDB.
type PackageRepo struct {
	col *mongo.Collection
}

// NewPackageRepository construye el adaptador de persistencia para paquetes.
func NewPackageRepository(db *mongo.Database) *PackageRepo {
	return &PackageRepo{col: db.Collection(packagesCollection)}
}

// Insert persiste un nuevo paquete.
func (r *PackageRepo) Insert(ctx context.Context, pkg *entity.Package) (*entity.Package, error) {
	userOID, err := primitive.ObjectIDFromHex(pkg.UserID)
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	now := time.Now().UTC()
	doc := packageDoc{
		Name:        pkg.Name,
		Description: pkg.Description,
		Price:       pkg.Price,
		ExpiresAt:   pkg.ExpiresAt,
		UserID:      userOID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert package: %w", err)
	}
	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toEntity(), nil
}

// FindByID obtiene un paquete por id. Devuelve (nil, nil) si no existe.
func (r *PackageRepo) FindByID(ctx context.Context, id string) (*entity.Package, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	var doc packageDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find package by id: %w", err)
	}
	return doc.toEntity(), nil
}

// FindByUserID devuelve los paquetes del usuario indicado.
func (r *PackageRepo) FindByUserID(ctx context.Context, userID string) ([]*entity.Package, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	return r.find(ctx, bson.M{"userId": oid})
}

// FindAll devuelve todos los paquetes.
func (r *PackageRepo) FindAll(ctx context.Context) ([]*entity.Package, error) {
	return r.find(ctx, bson.M{})
}

func (r *PackageRepo) find(ctx context.Context, filter bson.M) ([]*entity.Package, error) {
	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find packages: %w", err)
	}
	defer cursor.Close(ctx)

	var list []*entity.Package
	for cursor.Next(ctx) {
		var doc packageDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode package: %w", err)
		}
		list = append(list, doc.toEntity())
	}
	return list, cursor.Err()
}

// UpdateFields aplica una actualización parcial ($set solo de los campos
// provistos) y devuelve el documento ya actualizado. Devuelve (nil, nil) si
// el id no existe.
func (r *PackageRepo) UpdateFields(ctx context.Context, id string, fields entity.UpdatePackage) (*entity.Package, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	set := bson.M{"updatedAt": time.Now().UTC()}
	if fields.Name != nil {
		set["name"] = *fields.Name
	}
	if fields.Description != nil {
		set["description"] = *fields.Description
	}
	if fields.Price != nil {
		set["price"] = *fields.Price
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc packageDoc
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("update package: %w", err)
	}
	return doc.toEntity(), nil
}

// Delete elimina un paquete por id.
func (r *PackageRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrInvalidID
	}
	if _, err := r.col.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("delete package: %w", err)
	}
	return nil
}

// FilterByExpiryRange agrega los paquetes cuyo expiresAt, normalizado a
// YYYY-MM-DD, cae dentro de [startDate, endDate] inclusivo. Con userID
// restringe al dueño; sin userID (scope admin) hace $lookup con users y
// proyecta {_id, name, email} del dueño.
func (r *PackageRepo) FilterByExpiryRange(ctx context.Context, startDate, endDate, userID string) ([]*entity.Package, error) {
	match := bson.M{
		"date": bson.M{"$gte": startDate, "$lte": endDate},
	}
	if userID != "" {
		oid, err := primitive.ObjectIDFromHex(userID)
		if err != nil {
			return nil, domain.ErrInvalidID
		}
		match["userId"] = oid
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$addFields", Value: bson.M{
			"date": bson.M{"$dateToString": bson.M{
				"format": "%Y-%m-%d",
				"date":   "$expiresAt",
			}},
		}}},
		bson.D{{Key: "$match", Value: match}},
	}

	if userID == "" {
		pipeline = append(pipeline,
			bson.D{{Key: "$lookup", Value: bson.M{
				"from":         usersCollection,
				"localField":   "userId",
				"foreignField": "_id",
				"as":           "user",
			}}},
			bson.D{{Key: "$unwind", Value: bson.M{
				"path":                       "$user",
				"preserveNullAndEmptyArrays": true,
			}}},
			bson.D{{Key: "$project", Value: bson.M{
				"_id": 1, "name": 1, "description": 1, "price": 1,
				"expiresAt": 1, "userId": 1,
				"user": bson.M{"_id": 1, "name": 1, "email": 1},
			}}},
		)
	} else {
		pipeline = append(pipeline,
			bson.D{{Key: "$project", Value: bson.M{
				"_id": 1, "name": 1, "description": 1, "price": 1,
				"expiresAt": 1, "userId": 1,
			}}},
		)
	}

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate packages by expiry range: %w", err)
	}
	defer cursor.Close(ctx)

	var list []*entity.Package
	for cursor.Next(ctx) {
		var doc filterDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode package aggregate: %w", err)
		}
		pkg := &entity.Package{
			ID:          doc.ID.Hex(),
			Name:        doc.Name,
			Description: doc.Description,
			Price:       doc.Price,
			ExpiresAt:   doc.ExpiresAt,
			UserID:      doc.UserID.Hex(),
		}
		if doc.User != nil {
			pkg.Owner = &entity.PackageOwner{
				ID:    doc.User.ID.Hex(),
				Name:  doc.User.Name,
				Email: doc.User.Email,
			}
		}
		list = append(list, pkg)
	}
	return list, cursor.Err()
}
