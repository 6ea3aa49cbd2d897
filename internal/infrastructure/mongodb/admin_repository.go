package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/packages-api/internal/domain"
	"github.com/jhoicas/packages-api/internal/domain/entity"
	"github.com/jhoicas/packages-api/internal/domain/repository"
)

var _ repository.AdminRepository = (*AdminRepo)(nil)

// adminDoc documento BSON de la colección admins (sin campo status).
type adminDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Password  string             `bson:"password"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func (d *adminDoc) toEntity() *entity.Admin {
	return &entity.Admin{
		ID:           d.ID.Hex(),
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.Password,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// AdminRepo implementación del puerto AdminRepository sobre MongoDB.
type AdminRepo struct {
	col *mongo.Collection
}

// NewAdminRepository construye el adaptador de persistencia para admins.
func NewAdminRepository(db *mongo.Database) *AdminRepo {
	return &AdminRepo{col: db.Collection(adminsCollection)}
}

// Insert persiste un nuevo admin.
func (r *AdminRepo) Insert(ctx context.Context, admin *entity.Admin) (*entity.Admin, error) {
	now := time.Now().UTC()
	doc := adminDoc{
		Name:      admin.Name,
		Email:     admin.Email,
		Password:  admin.PasswordHash,
		CreatedAt: now,
		UpdatedAt: now,
	}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("insert admin: %w", err)
	}
	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toEntity(), nil
}

// FindByID obtiene un admin por id. Devuelve (nil, nil) si no existe.
func (r *AdminRepo) FindByID(ctx context.Context, id string) (*entity.Admin, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	var doc adminDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find admin by id: %w", err)
	}
	return doc.toEntity(), nil
}

// FindByEmail obtiene un admin por email. Devuelve (nil, nil) si no existe.
func (r *AdminRepo) FindByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	var doc adminDoc
	if err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find admin by email: %w", err)
	}
	return doc.toEntity(), nil
}

// ExistsByID verifica que el id siga existiendo en la colección.
func (r *AdminRepo) ExistsByID(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, domain.ErrInvalidID
	}
	count, err := r.col.CountDocuments(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("count admin by id: %w", err)
	}
	return count > 0, nil
}
