package interactions

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/proconnect-app/backend/internal/models"
)

// canLike rejects self-likes on profiles. Liking one's own post is
// allowed; there is no such restriction for posts.
func canLike(callerID primitive.ObjectID, kind TargetKind, targetID primitive.ObjectID) error {
	if kind == TargetProfile && callerID == targetID {
		return fmt.Errorf("%w: cannot like own profile", ErrForbidden)
	}
	return nil
}

// canDeletePost permits deletion only by the post's author.
func canDeletePost(callerID primitive.ObjectID, post *models.Post) error {
	if post.AuthorID != callerID {
		return fmt.Errorf("%w: only the author can delete a post", ErrForbidden)
	}
	return nil
}
