package interactions

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/proconnect-app/backend/internal/metrics"
	"github.com/proconnect-app/backend/internal/models"
)

// ToggleResult reports the new like state after a toggle.
type ToggleResult struct {
	Liked     bool `json:"liked"`
	LikeCount int  `json:"likeCount"`
}

// ToggleLike flips the caller's like on the target: liked targets are
// unliked and vice versa. Callers needing "ensure liked" semantics must
// check current state first; two consecutive calls always return to the
// original state. The like count is derived from the stored set, never
// from a counter field.
func (s *service) ToggleLike(ctx context.Context, callerID primitive.ObjectID, kind TargetKind, targetID primitive.ObjectID) (*ToggleResult, error) {
	if err := canLike(callerID, kind, targetID); err != nil {
		return nil, err
	}

	target, err := s.store.GetTarget(ctx, kind, targetID)
	if err != nil {
		return nil, err
	}

	liked := false
	for _, l := range target.Likes {
		if l.UserID == callerID {
			liked = true
			break
		}
	}

	if liked {
		if _, err := s.store.RemoveLike(ctx, kind, targetID, callerID); err != nil {
			return nil, err
		}
	} else {
		entry := models.LikeEntry{UserID: callerID, LikedAt: s.now()}
		if _, err := s.store.AddLike(ctx, kind, targetID, entry); err != nil {
			return nil, err
		}
	}

	count, err := s.store.CountLikes(ctx, kind, targetID)
	if err != nil {
		return nil, err
	}

	metrics.LikesToggled.WithLabelValues(string(kind)).Inc()
	return &ToggleResult{Liked: !liked, LikeCount: int(count)}, nil
}
