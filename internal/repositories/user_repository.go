package repositories

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/proconnect-app/backend/internal/interactions"
	"github.com/proconnect-app/backend/internal/models"
)

// MongoUserRepository stores user profile documents in MongoDB and
// implements interactions.UserStore
type MongoUserRepository struct {
	collection *mongo.Collection
}

// NewMongoUserRepository creates a new MongoUserRepository
func NewMongoUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{collection: db.Collection("users")}
}

// Create persists a new user profile with a server-assigned id
func (r *MongoUserRepository) Create(ctx context.Context, user *models.User) error {
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	if user.Posts == nil {
		user.Posts = []primitive.ObjectID{}
	}
	if user.Likes == nil {
		user.Likes = []models.LikeEntry{}
	}
	if user.Comments == nil {
		user.Comments = []models.CommentEntry{}
	}
	_, err := r.collection.InsertOne(ctx, user)
	return err
}

// GetByID retrieves a user profile by id
func (r *MongoUserRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("user %s: %w", id.Hex(), interactions.ErrNotFound)
		}
		return nil, err
	}
	return &user, nil
}

// GetByIDs resolves user ids to display-safe summaries in one query.
// Unknown ids are absent from the result map.
func (r *MongoUserRepository) GetByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.UserSummary, error) {
	summaries := make(map[primitive.ObjectID]models.UserSummary, len(ids))
	if len(ids) == 0 {
		return summaries, nil
	}

	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err = cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	for i := range users {
		summaries[users[i].ID] = users[i].Summary()
	}
	return summaries, nil
}

// List retrieves one page of user profiles for the directory listing
func (r *MongoUserRepository) List(ctx context.Context, skip, limit int64) ([]models.User, error) {
	findOptions := options.Find().
		SetSkip(skip).
		SetLimit(limit).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err = cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Count returns the total number of user profiles
func (r *MongoUserRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// UpdateProfile applies the non-empty fields of the request to the
// user's profile document
func (r *MongoUserRepository) UpdateProfile(ctx context.Context, id primitive.ObjectID, req models.UpdateProfileRequest) (*models.User, error) {
	set := bson.M{"updatedAt": time.Now()}
	if req.Name != "" {
		set["name"] = req.Name
	}
	if req.Bio != "" {
		set["bio"] = req.Bio
	}
	if req.Location != "" {
		set["location"] = req.Location
	}
	if req.Website != "" {
		set["website"] = req.Website
	}
	if req.ProfilePicture != "" {
		set["profilePicture"] = req.ProfilePicture
	}

	res := r.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	var user models.User
	if err := res.Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("user %s: %w", id.Hex(), interactions.ErrNotFound)
		}
		return nil, err
	}
	return &user, nil
}

// AddPostRef appends a post id to the user's post list
func (r *MongoUserRepository) AddPostRef(ctx context.Context, userID, postID primitive.ObjectID) error {
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$push": bson.M{"posts": postID}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("user %s: %w", userID.Hex(), interactions.ErrNotFound)
	}
	return nil
}

// RemovePostRef pulls a post id from the user's post list
func (r *MongoUserRepository) RemovePostRef(ctx context.Context, userID, postID primitive.ObjectID) error {
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$pull": bson.M{"posts": postID}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("user %s: %w", userID.Hex(), interactions.ErrNotFound)
	}
	return nil
}
