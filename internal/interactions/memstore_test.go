package interactions

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/proconnect-app/backend/internal/models"
)

// memStore is an in-memory document store backing the service tests.
// It implements Store directly; its post and user facets implement
// PostStore and UserStore.
type memStore struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]*models.User
	posts map[primitive.ObjectID]*models.Post
}

func newMemStore() *memStore {
	return &memStore{
		users: make(map[primitive.ObjectID]*models.User),
		posts: make(map[primitive.ObjectID]*models.Post),
	}
}

// newTestService wires a service onto a fresh in-memory store.
func newTestService() (Service, *memStore) {
	store := newMemStore()
	return NewService(&memPostStore{store}, &memUserStore{store}, store), store
}

func (m *memStore) addUser(name string) primitive.ObjectID {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := primitive.NewObjectID()
	m.users[id] = &models.User{
		ID:       id,
		Name:     name,
		Email:    name + "@example.com",
		Posts:    []primitive.ObjectID{},
		Likes:    []models.LikeEntry{},
		Comments: []models.CommentEntry{},
	}
	return id
}

func (m *memStore) user(id primitive.ObjectID) (*models.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id.Hex(), ErrNotFound)
	}
	return user, nil
}

func (m *memStore) target(kind TargetKind, id primitive.ObjectID) (likes *[]models.LikeEntry, comments *[]models.CommentEntry, owner primitive.ObjectID, err error) {
	switch kind {
	case TargetPost:
		post, ok := m.posts[id]
		if !ok {
			return nil, nil, primitive.NilObjectID, fmt.Errorf("post %s: %w", id.Hex(), ErrNotFound)
		}
		return &post.Likes, &post.Comments, post.AuthorID, nil
	case TargetProfile:
		user, ok := m.users[id]
		if !ok {
			return nil, nil, primitive.NilObjectID, fmt.Errorf("user %s: %w", id.Hex(), ErrNotFound)
		}
		return &user.Likes, &user.Comments, user.ID, nil
	default:
		return nil, nil, primitive.NilObjectID, fmt.Errorf("unknown target kind %q", kind)
	}
}

func (m *memStore) GetTarget(_ context.Context, kind TargetKind, id primitive.ObjectID) (*Target, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	likes, _, owner, err := m.target(kind, id)
	if err != nil {
		return nil, err
	}
	cp := make([]models.LikeEntry, len(*likes))
	copy(cp, *likes)
	return &Target{ID: id, OwnerID: owner, Likes: cp}, nil
}

func (m *memStore) AddLike(_ context.Context, kind TargetKind, id primitive.ObjectID, like models.LikeEntry) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	likes, _, _, err := m.target(kind, id)
	if err != nil {
		return false, err
	}
	for _, l := range *likes {
		if l.UserID == like.UserID {
			return false, nil
		}
	}
	*likes = append(*likes, like)
	return true, nil
}

func (m *memStore) RemoveLike(_ context.Context, kind TargetKind, id, likerID primitive.ObjectID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	likes, _, _, err := m.target(kind, id)
	if err != nil {
		return false, err
	}
	kept := (*likes)[:0]
	removed := false
	for _, l := range *likes {
		if l.UserID == likerID {
			removed = true
			continue
		}
		kept = append(kept, l)
	}
	*likes = kept
	return removed, nil
}

func (m *memStore) AppendComment(_ context.Context, kind TargetKind, id primitive.ObjectID, comment models.CommentEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, comments, _, err := m.target(kind, id)
	if err != nil {
		return err
	}
	*comments = append(*comments, comment)
	return nil
}

func (m *memStore) CountLikes(_ context.Context, kind TargetKind, id primitive.ObjectID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	likes, _, _, err := m.target(kind, id)
	if err != nil {
		return 0, err
	}
	return int64(len(*likes)), nil
}

// memPostStore implements PostStore over a memStore.
type memPostStore struct {
	s *memStore
}

func (p *memPostStore) Create(_ context.Context, post *models.Post) error {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	post.ID = primitive.NewObjectID()
	cp := *post
	p.s.posts[post.ID] = &cp
	return nil
}

func (p *memPostStore) GetByID(_ context.Context, id primitive.ObjectID) (*models.Post, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	post, ok := p.s.posts[id]
	if !ok {
		return nil, fmt.Errorf("post %s: %w", id.Hex(), ErrNotFound)
	}
	cp := *post
	return &cp, nil
}

func (p *memPostStore) List(_ context.Context, skip, limit int64) ([]models.Post, error) {
	return p.page(nil, skip, limit), nil
}

func (p *memPostStore) ListByAuthor(_ context.Context, authorID primitive.ObjectID, skip, limit int64) ([]models.Post, error) {
	return p.page(&authorID, skip, limit), nil
}

func (p *memPostStore) page(authorID *primitive.ObjectID, skip, limit int64) []models.Post {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	all := []models.Post{}
	for _, post := range p.s.posts {
		if authorID == nil || post.AuthorID == *authorID {
			all = append(all, *post)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	if skip >= int64(len(all)) {
		return []models.Post{}
	}
	all = all[skip:]
	if limit < int64(len(all)) {
		all = all[:limit]
	}
	return all
}

func (p *memPostStore) Count(_ context.Context) (int64, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	return int64(len(p.s.posts)), nil
}

func (p *memPostStore) CountByAuthor(_ context.Context, authorID primitive.ObjectID) (int64, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	var n int64
	for _, post := range p.s.posts {
		if post.AuthorID == authorID {
			n++
		}
	}
	return n, nil
}

func (p *memPostStore) Delete(_ context.Context, id primitive.ObjectID) error {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	if _, ok := p.s.posts[id]; !ok {
		return fmt.Errorf("post %s: %w", id.Hex(), ErrNotFound)
	}
	delete(p.s.posts, id)
	return nil
}

// memUserStore implements UserStore over a memStore.
type memUserStore struct {
	s *memStore
}

func (u *memUserStore) GetByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	user, err := u.s.user(id)
	if err != nil {
		return nil, err
	}
	cp := *user
	return &cp, nil
}

func (u *memUserStore) GetByIDs(_ context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.UserSummary, error) {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	summaries := make(map[primitive.ObjectID]models.UserSummary, len(ids))
	for _, id := range ids {
		if user, ok := u.s.users[id]; ok {
			summaries[id] = user.Summary()
		}
	}
	return summaries, nil
}

func (u *memUserStore) AddPostRef(_ context.Context, userID, postID primitive.ObjectID) error {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	user, err := u.s.user(userID)
	if err != nil {
		return err
	}
	user.Posts = append(user.Posts, postID)
	return nil
}

func (u *memUserStore) RemovePostRef(_ context.Context, userID, postID primitive.ObjectID) error {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	user, err := u.s.user(userID)
	if err != nil {
		return err
	}
	kept := user.Posts[:0]
	for _, id := range user.Posts {
		if id != postID {
			kept = append(kept, id)
		}
	}
	user.Posts = kept
	return nil
}
