package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/pawradius/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CommunityPostRepository defines the interface for companion-post operations
type CommunityPostRepository interface {
	CreatePost(ctx context.Context, post *models.CommunityPost) error
	GetPostByID(ctx context.Context, id string) (*models.CommunityPost, error)
	DeletePost(ctx context.Context, id string) error
}

// MongoCommunityPostRepository implements CommunityPostRepository for MongoDB
type MongoCommunityPostRepository struct {
	collection *mongo.Collection
}

// NewMongoCommunityPostRepository creates a new MongoCommunityPostRepository
func NewMongoCommunityPostRepository(db *mongo.Database) *MongoCommunityPostRepository {
	return &MongoCommunityPostRepository{collection: db.Collection("community_posts")}
}

// CreatePost creates a new community post in MongoDB
func (r *MongoCommunityPostRepository) CreatePost(ctx context.Context, post *models.CommunityPost) error {
	post.ID = primitive.NewObjectID()
	post.CreatedAt = time.Now()
	post.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, post)
	return err
}

// GetPostByID retrieves a community post by ID from MongoDB
func (r *MongoCommunityPostRepository) GetPostByID(ctx context.Context, id string) (*models.CommunityPost, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid post ID format: %w", err)
	}

	var post models.CommunityPost
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&post)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("post not found")
		}
		return nil, err
	}
	return &post, nil
}

// DeletePost removes a community post from MongoDB
func (r *MongoCommunityPostRepository) DeletePost(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid post ID format: %w", err)
	}
	_, err = r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	return err
}
