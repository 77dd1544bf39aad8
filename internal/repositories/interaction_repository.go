package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/proconnect-app/backend/internal/interactions"
	"github.com/proconnect-app/backend/internal/models"
)

// MongoInteractionRepository implements interactions.Store over the
// posts and users collections. All sub-collection writes are single
// conditional update operations, never load-modify-save of the whole
// document, so concurrent likes from different users cannot clobber
// each other.
type MongoInteractionRepository struct {
	posts *mongo.Collection
	users *mongo.Collection
}

// NewMongoInteractionRepository creates a new MongoInteractionRepository
func NewMongoInteractionRepository(db *mongo.Database) *MongoInteractionRepository {
	return &MongoInteractionRepository{
		posts: db.Collection("posts"),
		users: db.Collection("users"),
	}
}

func (r *MongoInteractionRepository) collection(kind interactions.TargetKind) (*mongo.Collection, error) {
	switch kind {
	case interactions.TargetPost:
		return r.posts, nil
	case interactions.TargetProfile:
		return r.users, nil
	default:
		return nil, fmt.Errorf("unknown target kind %q", kind)
	}
}

// GetTarget loads the likeable slice of a post or a profile
func (r *MongoInteractionRepository) GetTarget(ctx context.Context, kind interactions.TargetKind, id primitive.ObjectID) (*interactions.Target, error) {
	coll, err := r.collection(kind)
	if err != nil {
		return nil, err
	}

	var doc struct {
		ID       primitive.ObjectID `bson:"_id"`
		AuthorID primitive.ObjectID `bson:"author,omitempty"` // posts only
		Likes    []models.LikeEntry `bson:"likes"`
	}
	if err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("%s %s: %w", kind, id.Hex(), interactions.ErrNotFound)
		}
		return nil, err
	}

	owner := doc.AuthorID
	if kind == interactions.TargetProfile {
		owner = doc.ID
	}
	return &interactions.Target{ID: doc.ID, OwnerID: owner, Likes: doc.Likes}, nil
}

// AddLike pushes the like entry unless one for the same user already
// exists. The membership check is part of the update filter, making the
// insert add-if-absent at the store level.
func (r *MongoInteractionRepository) AddLike(ctx context.Context, kind interactions.TargetKind, id primitive.ObjectID, like models.LikeEntry) (bool, error) {
	coll, err := r.collection(kind)
	if err != nil {
		return false, err
	}

	res, err := coll.UpdateOne(ctx,
		bson.M{"_id": id, "likes.user": bson.M{"$ne": like.UserID}},
		bson.M{
			"$push":        bson.M{"likes": like},
			"$currentDate": bson.M{"updatedAt": true},
		},
	)
	if err != nil {
		return false, err
	}
	// MatchedCount is 0 both for a missing document and for an already
	// present like; callers check existence via GetTarget first.
	return res.MatchedCount > 0, nil
}

// RemoveLike pulls the caller's like entry if present
func (r *MongoInteractionRepository) RemoveLike(ctx context.Context, kind interactions.TargetKind, id, likerID primitive.ObjectID) (bool, error) {
	coll, err := r.collection(kind)
	if err != nil {
		return false, err
	}

	res, err := coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{
			"$pull":        bson.M{"likes": bson.M{"user": likerID}},
			"$currentDate": bson.M{"updatedAt": true},
		},
	)
	if err != nil {
		return false, err
	}
	if res.MatchedCount == 0 {
		return false, fmt.Errorf("%s %s: %w", kind, id.Hex(), interactions.ErrNotFound)
	}
	return res.ModifiedCount > 0, nil
}

// AppendComment pushes a comment entry onto the target's comment
// sequence. Storage order is insertion order.
func (r *MongoInteractionRepository) AppendComment(ctx context.Context, kind interactions.TargetKind, id primitive.ObjectID, comment models.CommentEntry) error {
	coll, err := r.collection(kind)
	if err != nil {
		return err
	}

	res, err := coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{
			"$push":        bson.M{"comments": comment},
			"$currentDate": bson.M{"updatedAt": true},
		},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%s %s: %w", kind, id.Hex(), interactions.ErrNotFound)
	}
	return nil
}

// CountLikes returns len(likes) for the target; there is no separate
// counter field to drift from the set contents.
func (r *MongoInteractionRepository) CountLikes(ctx context.Context, kind interactions.TargetKind, id primitive.ObjectID) (int64, error) {
	target, err := r.GetTarget(ctx, kind, id)
	if err != nil {
		return 0, err
	}
	return int64(len(target.Likes)), nil
}
