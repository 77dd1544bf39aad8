package interactions

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/proconnect-app/backend/internal/models"
)

// TargetKind selects which entity a like or comment is attached to.
type TargetKind string

const (
	TargetPost    TargetKind = "post"
	TargetProfile TargetKind = "profile"
)

// Target is the slice of a stored entity that the toggle engine and the
// comment ledger operate on.
type Target struct {
	ID      primitive.ObjectID
	OwnerID primitive.ObjectID // the profile owner, or the post author
	Likes   []models.LikeEntry
}

// Store is the entity-store contract for sub-collection mutation.
// AddLike must be atomic add-if-absent and RemoveLike atomic
// remove-if-present at the store level, so concurrent likes from
// different users on the same target never clobber each other.
// Concurrent toggles from the same user may race to either end state,
// which the toggle contract permits.
type Store interface {
	// GetTarget loads a target of the given kind. Returns ErrNotFound
	// when the entity does not exist.
	GetTarget(ctx context.Context, kind TargetKind, id primitive.ObjectID) (*Target, error)

	// AddLike inserts the like unless an entry for the same user is
	// already present. Returns false when the entry already existed.
	AddLike(ctx context.Context, kind TargetKind, id primitive.ObjectID, like models.LikeEntry) (bool, error)

	// RemoveLike removes the caller's like if present. Returns false
	// when there was no entry to remove.
	RemoveLike(ctx context.Context, kind TargetKind, id, likerID primitive.ObjectID) (bool, error)

	// AppendComment appends the entry to the target's comment sequence.
	AppendComment(ctx context.Context, kind TargetKind, id primitive.ObjectID, comment models.CommentEntry) error

	// CountLikes returns the cardinality of the target's likes set.
	CountLikes(ctx context.Context, kind TargetKind, id primitive.ObjectID) (int64, error)
}

// PostStore is the typed store contract for post records.
type PostStore interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error)
	List(ctx context.Context, skip, limit int64) ([]models.Post, error)
	ListByAuthor(ctx context.Context, authorID primitive.ObjectID, skip, limit int64) ([]models.Post, error)
	Count(ctx context.Context) (int64, error)
	CountByAuthor(ctx context.Context, authorID primitive.ObjectID) (int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// UserStore is the typed store contract for user profile records, as
// consumed by the interaction service.
type UserStore interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	// GetByIDs resolves user ids to display-safe summaries in one
	// batched lookup. Unknown ids are simply absent from the result.
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.UserSummary, error)
	AddPostRef(ctx context.Context, userID, postID primitive.ObjectID) error
	RemovePostRef(ctx context.Context, userID, postID primitive.ObjectID) error
}
