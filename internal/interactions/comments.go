package interactions

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/proconnect-app/backend/internal/metrics"
	"github.com/proconnect-app/backend/internal/models"
)

// AddComment validates and appends a comment to the target's comment
// sequence, then returns the new entry with its author expanded for
// immediate rendering. Any authenticated caller may comment on any
// target, including their own. Comments are never edited or removed by
// this service.
func (s *service) AddComment(ctx context.Context, callerID primitive.ObjectID, kind TargetKind, targetID primitive.ObjectID, content string) (*CommentView, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, &ValidationError{Field: "content", Reason: "must not be empty"}
	}
	if len([]rune(content)) > models.MaxCommentContentLength {
		return nil, &ValidationError{
			Field:  "content",
			Reason: fmt.Sprintf("must be at most %d characters", models.MaxCommentContentLength),
		}
	}

	if _, err := s.store.GetTarget(ctx, kind, targetID); err != nil {
		return nil, err
	}

	entry := models.CommentEntry{
		ID:        s.newID(),
		UserID:    callerID,
		Content:   content,
		CreatedAt: s.now(),
	}
	if err := s.store.AppendComment(ctx, kind, targetID, entry); err != nil {
		return nil, err
	}

	author, err := s.users.GetByID(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("expanding comment author: %w", err)
	}

	metrics.CommentsAdded.WithLabelValues(string(kind)).Inc()
	return &CommentView{
		ID:        entry.ID,
		User:      author.Summary(),
		Content:   entry.Content,
		CreatedAt: entry.CreatedAt,
	}, nil
}
