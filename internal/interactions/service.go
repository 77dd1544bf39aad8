package interactions

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/proconnect-app/backend/internal/metrics"
	"github.com/proconnect-app/backend/internal/models"
	"github.com/proconnect-app/backend/internal/pagination"
)

// Service composes the toggle engine, the comment ledger and the
// ownership guard into the user-facing interaction operations. Every
// operation receives the resolved caller id explicitly; nothing is read
// from ambient state.
type Service interface {
	CreatePost(ctx context.Context, callerID primitive.ObjectID, req models.CreatePostRequest) (*PostView, error)
	GetPost(ctx context.Context, postID primitive.ObjectID) (*PostView, error)
	ListPosts(ctx context.Context, page, limit int) ([]PostView, pagination.Pagination, error)
	ListUserPosts(ctx context.Context, userID primitive.ObjectID, page, limit int) ([]PostView, pagination.Pagination, error)
	DeletePost(ctx context.Context, callerID, postID primitive.ObjectID) error
	ToggleLike(ctx context.Context, callerID primitive.ObjectID, kind TargetKind, targetID primitive.ObjectID) (*ToggleResult, error)
	AddComment(ctx context.Context, callerID primitive.ObjectID, kind TargetKind, targetID primitive.ObjectID, content string) (*CommentView, error)
	GetProfile(ctx context.Context, userID primitive.ObjectID) (*ProfileView, error)
}

// LikeView is a like entry with its user expanded.
type LikeView struct {
	User      models.UserSummary `json:"user"`
	CreatedAt time.Time          `json:"createdAt"`
}

// CommentView is a comment entry with its author expanded.
type CommentView struct {
	ID        primitive.ObjectID `json:"id"`
	User      models.UserSummary `json:"user"`
	Content   string             `json:"content"`
	CreatedAt time.Time          `json:"createdAt"`
}

// PostView is a post with author, likers and commenters expanded at
// read time. The persisted record stores only ids.
type PostView struct {
	ID        primitive.ObjectID `json:"id"`
	Author    models.UserSummary `json:"author"`
	Content   string             `json:"content"`
	Image     string             `json:"image,omitempty"`
	Likes     []LikeView         `json:"likes"`
	Comments  []CommentView      `json:"comments"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// ProfileView is a user profile with its reaction sub-collections
// expanded.
type ProfileView struct {
	ID             primitive.ObjectID `json:"id"`
	Name           string             `json:"name"`
	Email          string             `json:"email"`
	Bio            string             `json:"bio,omitempty"`
	Location       string             `json:"location,omitempty"`
	Website        string             `json:"website,omitempty"`
	ProfilePicture string             `json:"profilePicture,omitempty"`
	Likes          []LikeView         `json:"likes"`
	Comments       []CommentView      `json:"comments"`
	CreatedAt      time.Time          `json:"createdAt"`
}

type service struct {
	posts PostStore
	users UserStore
	store Store

	now   func() time.Time
	newID func() primitive.ObjectID
}

// NewService creates the interaction service on top of the given stores.
func NewService(posts PostStore, users UserStore, store Store) Service {
	return &service{
		posts: posts,
		users: users,
		store: store,
		now:   time.Now,
		newID: primitive.NewObjectID,
	}
}

// CreatePost validates content, persists the post and appends its id to
// the author's post list. The two writes are not transactional; a
// failure between them surfaces as a store error with the post already
// persisted. Closing that gap needs a multi-document transaction or a
// single-document denormalization.
func (s *service) CreatePost(ctx context.Context, callerID primitive.ObjectID, req models.CreatePostRequest) (*PostView, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, &ValidationError{Field: "content", Reason: "must not be empty"}
	}
	if len([]rune(content)) > models.MaxPostContentLength {
		return nil, &ValidationError{
			Field:  "content",
			Reason: fmt.Sprintf("must be at most %d characters", models.MaxPostContentLength),
		}
	}

	post := &models.Post{
		AuthorID: callerID,
		Content:  content,
		Image:    req.Image,
		Likes:    []models.LikeEntry{},
		Comments: []models.CommentEntry{},
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	if err := s.users.AddPostRef(ctx, callerID, post.ID); err != nil {
		return nil, fmt.Errorf("updating author post list: %w", err)
	}

	metrics.PostsCreated.Inc()
	views, err := s.expandPosts(ctx, []models.Post{*post})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// GetPost returns one post with all references expanded.
func (s *service) GetPost(ctx context.Context, postID primitive.ObjectID) (*PostView, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	views, err := s.expandPosts(ctx, []models.Post{*post})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// ListPosts returns one feed page sorted by creation time descending.
func (s *service) ListPosts(ctx context.Context, page, limit int) ([]PostView, pagination.Pagination, error) {
	total, err := s.posts.Count(ctx)
	if err != nil {
		return nil, pagination.Pagination{}, err
	}
	window := pagination.Paginate(total, page, limit, pagination.DefaultFeedLimit)

	posts, err := s.posts.List(ctx, window.Skip, window.Limit)
	if err != nil {
		return nil, pagination.Pagination{}, err
	}
	views, err := s.expandPosts(ctx, posts)
	if err != nil {
		return nil, pagination.Pagination{}, err
	}
	return views, window, nil
}

// ListUserPosts returns one page of a single user's posts. Fails
// ErrNotFound when the user does not exist.
func (s *service) ListUserPosts(ctx context.Context, userID primitive.ObjectID, page, limit int) ([]PostView, pagination.Pagination, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, pagination.Pagination{}, err
	}

	total, err := s.posts.CountByAuthor(ctx, userID)
	if err != nil {
		return nil, pagination.Pagination{}, err
	}
	window := pagination.Paginate(total, page, limit, pagination.DefaultFeedLimit)

	posts, err := s.posts.ListByAuthor(ctx, userID, window.Skip, window.Limit)
	if err != nil {
		return nil, pagination.Pagination{}, err
	}
	views, err := s.expandPosts(ctx, posts)
	if err != nil {
		return nil, pagination.Pagination{}, err
	}
	return views, window, nil
}

// DeletePost removes a post and pulls its id from the author's post
// list. Only the author may delete.
func (s *service) DeletePost(ctx context.Context, callerID, postID primitive.ObjectID) error {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if err := canDeletePost(callerID, post); err != nil {
		return err
	}
	if err := s.posts.Delete(ctx, postID); err != nil {
		return err
	}
	if err := s.users.RemovePostRef(ctx, post.AuthorID, postID); err != nil {
		return fmt.Errorf("updating author post list: %w", err)
	}
	return nil
}

// GetProfile returns a user profile with its likes and comments
// expanded. Presentation order of comments (createdAt descending) is a
// read-side concern; storage order stays insertion order.
func (s *service) GetProfile(ctx context.Context, userID primitive.ObjectID) (*ProfileView, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(user.Likes)+len(user.Comments))
	for _, l := range user.Likes {
		ids = append(ids, l.UserID)
	}
	for _, c := range user.Comments {
		ids = append(ids, c.UserID)
	}
	summaries, err := s.users.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	view := &ProfileView{
		ID:             user.ID,
		Name:           user.Name,
		Email:          user.Email,
		Bio:            user.Bio,
		Location:       user.Location,
		Website:        user.Website,
		ProfilePicture: user.ProfilePicture,
		Likes:          expandLikes(user.Likes, summaries),
		Comments:       expandComments(user.Comments, summaries),
		CreatedAt:      user.CreatedAt,
	}
	return view, nil
}

// expandPosts resolves every referenced user id across the given posts
// in one batched lookup, then assembles the read-side views.
func (s *service) expandPosts(ctx context.Context, posts []models.Post) ([]PostView, error) {
	seen := make(map[primitive.ObjectID]struct{})
	var ids []primitive.ObjectID
	add := func(id primitive.ObjectID) {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	for _, p := range posts {
		add(p.AuthorID)
		for _, l := range p.Likes {
			add(l.UserID)
		}
		for _, c := range p.Comments {
			add(c.UserID)
		}
	}

	summaries, err := s.users.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	views := make([]PostView, len(posts))
	for i, p := range posts {
		views[i] = PostView{
			ID:        p.ID,
			Author:    summaries[p.AuthorID],
			Content:   p.Content,
			Image:     p.Image,
			Likes:     expandLikes(p.Likes, summaries),
			Comments:  expandComments(p.Comments, summaries),
			CreatedAt: p.CreatedAt,
			UpdatedAt: p.UpdatedAt,
		}
	}
	return views, nil
}

func expandLikes(likes []models.LikeEntry, summaries map[primitive.ObjectID]models.UserSummary) []LikeView {
	views := make([]LikeView, len(likes))
	for i, l := range likes {
		views[i] = LikeView{User: summaries[l.UserID], CreatedAt: l.LikedAt}
	}
	return views
}

func expandComments(comments []models.CommentEntry, summaries map[primitive.ObjectID]models.UserSummary) []CommentView {
	views := make([]CommentView, len(comments))
	for i, c := range comments {
		views[i] = CommentView{
			ID:        c.ID,
			User:      summaries[c.UserID],
			Content:   c.Content,
			CreatedAt: c.CreatedAt,
		}
	}
	return views
}
