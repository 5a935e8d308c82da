package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wuddevdet/platform-api/internal/domain/contract"
	"github.com/wuddevdet/platform-api/internal/domain/entity"
)

// In-memory fakes shared by the usecase tests.

type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...interface{}) {}
func (nopLogger) Infof(format string, args ...interface{})  {}
func (nopLogger) Warnf(format string, args ...interface{})  {}
func (nopLogger) Errorf(format string, args ...interface{}) {}
func (nopLogger) Fatalf(format string, args ...interface{}) {}

type seqUUIDGen struct {
	n int
}

func (g *seqUUIDGen) NewUUID() string {
	g.n++
	return fmt.Sprintf("uuid-%d", g.n)
}

type fakeHasher struct{}

func (fakeHasher) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) ComparePasswordHash(password, hashedPassword string) error {
	if "hashed:"+password != hashedPassword {
		return errors.New("hash mismatch")
	}
	return nil
}

type fakeTokenService struct{}

func (fakeTokenService) GenerateToken(userID string, role entity.UserRole) (string, error) {
	return "token-" + userID, nil
}

func (fakeTokenService) ParseToken(tokenStr string) (*entity.Claims, error) {
	return nil, errors.New("not implemented")
}

type fakeUserRepo struct {
	users map[string]*entity.User // keyed by id

	deletedIDs []string
}

var _ contract.IUserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) CreateUser(ctx context.Context, user *entity.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return errors.New(ErrMsgEmailTaken)
		}
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, errors.New(ErrMsgUserNotFound)
	}
	return u, nil
}

func (r *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, errors.New(ErrMsgUserNotFound)
}

func (r *fakeUserRepo) ListUsers(ctx context.Context, page, limit int) ([]*entity.User, int64, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, int64(len(out)), nil
}

func (r *fakeUserRepo) UpdateUser(ctx context.Context, id string, updates map[string]interface{}) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, errors.New(ErrMsgUserNotFound)
	}
	if name, ok := updates["name"].(string); ok {
		u.Name = name
	}
	if bio, ok := updates["bio"].(string); ok {
		u.Bio = bio
	}
	if loc, ok := updates["location"].(string); ok {
		u.Location = loc
	}
	if pic, ok := updates["profile_pic"].(string); ok {
		u.ProfilePic = pic
	}
	return u, nil
}

func (r *fakeUserRepo) UpdateUserRole(ctx context.Context, id string, role entity.UserRole) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, errors.New(ErrMsgUserNotFound)
	}
	u.Role = role
	return u, nil
}

func (r *fakeUserRepo) DeleteUser(ctx context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return errors.New(ErrMsgUserNotFound)
	}
	delete(r.users, id)
	r.deletedIDs = append(r.deletedIDs, id)
	return nil
}

func (r *fakeUserRepo) CountUsers(ctx context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

type fakePostRepo struct {
	posts map[string]*entity.Post

	bulkPinned    []string
	bulkDeleted   []string
	modifiedCount int64
}

var _ contract.IPostRepository = (*fakePostRepo)(nil)

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[string]*entity.Post)}
}

func (r *fakePostRepo) CreatePost(ctx context.Context, post *entity.Post) error {
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now()
	}
	r.posts[post.ID] = post
	return nil
}

func (r *fakePostRepo) GetPostByID(ctx context.Context, id string) (*entity.Post, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, errors.New(ErrMsgPostNotFound)
	}
	return p, nil
}

func (r *fakePostRepo) ListPosts(ctx context.Context, opts contract.PostListOptions) ([]*entity.Post, int64, error) {
	out := make([]*entity.Post, 0, len(r.posts))
	for _, p := range r.posts {
		out = append(out, p)
	}
	return out, int64(len(out)), nil
}

func (r *fakePostRepo) UpdatePost(ctx context.Context, id string, updates map[string]interface{}) error {
	p, ok := r.posts[id]
	if !ok {
		return errors.New(ErrMsgPostNotFound)
	}
	if title, ok := updates["title"].(string); ok {
		p.Title = title
	}
	if content, ok := updates["content"].(string); ok {
		p.Content = content
	}
	return nil
}

func (r *fakePostRepo) DeletePost(ctx context.Context, id string) error {
	if _, ok := r.posts[id]; !ok {
		return errors.New(ErrMsgPostNotFound)
	}
	delete(r.posts, id)
	return nil
}

func (r *fakePostRepo) SetPinned(ctx context.Context, id string, pinned bool) error {
	p, ok := r.posts[id]
	if !ok {
		return errors.New(ErrMsgPostNotFound)
	}
	p.IsPinned = pinned
	return nil
}

func (r *fakePostRepo) AddComment(ctx context.Context, postID string, comment *entity.Comment) error {
	p, ok := r.posts[postID]
	if !ok {
		return errors.New(ErrMsgPostNotFound)
	}
	p.Comments = append(p.Comments, *comment)
	return nil
}

func (r *fakePostRepo) RemoveComment(ctx context.Context, postID, commentID string) error {
	p, ok := r.posts[postID]
	if !ok {
		return errors.New(ErrMsgPostNotFound)
	}
	for i := range p.Comments {
		if p.Comments[i].ID == commentID {
			p.Comments = append(p.Comments[:i], p.Comments[i+1:]...)
			return nil
		}
	}
	return errors.New(ErrMsgCommentNotFound)
}

func (r *fakePostRepo) FindForContent(ctx context.Context, q contract.ContentQuery) ([]*entity.Post, int64, error) {
	out := make([]*entity.Post, 0, len(r.posts))
	for _, p := range r.posts {
		out = append(out, p)
	}
	return out, int64(len(out)), nil
}

func (r *fakePostRepo) PostsWithComments(ctx context.Context) ([]*entity.Post, error) {
	var out []*entity.Post
	for _, p := range r.posts {
		if len(p.Comments) > 0 {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePostRepo) BulkSetPinned(ctx context.Context, ids []string, pinned bool) (int64, error) {
	r.bulkPinned = append(r.bulkPinned, ids...)
	if r.modifiedCount > 0 {
		return r.modifiedCount, nil
	}
	var n int64
	for _, id := range ids {
		if p, ok := r.posts[id]; ok && p.IsPinned != pinned {
			p.IsPinned = pinned
			n++
		}
	}
	return n, nil
}

func (r *fakePostRepo) BulkDelete(ctx context.Context, ids []string) (int64, error) {
	r.bulkDeleted = append(r.bulkDeleted, ids...)
	var n int64
	for _, id := range ids {
		if _, ok := r.posts[id]; ok {
			delete(r.posts, id)
			n++
		}
	}
	return n, nil
}

func (r *fakePostRepo) CountPosts(ctx context.Context) (int64, error) {
	return int64(len(r.posts)), nil
}

func (r *fakePostRepo) CountComments(ctx context.Context) (int64, error) {
	var n int64
	for _, p := range r.posts {
		n += int64(len(p.Comments))
	}
	return n, nil
}

type fakeProjectRepo struct {
	projects map[string]*entity.Project
}

var _ contract.IProjectRepository = (*fakeProjectRepo)(nil)

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: make(map[string]*entity.Project)}
}

func (r *fakeProjectRepo) CreateProject(ctx context.Context, project *entity.Project) error {
	r.projects[project.ID] = project
	return nil
}

func (r *fakeProjectRepo) GetProjectByID(ctx context.Context, id string) (*entity.Project, error) {
	p, ok := r.projects[id]
	if !ok {
		return nil, errors.New(ErrMsgProjectNotFound)
	}
	return p, nil
}

func (r *fakeProjectRepo) ListProjects(ctx context.Context, page, limit int) ([]*entity.Project, int64, error) {
	out := make([]*entity.Project, 0, len(r.projects))
	for _, p := range r.projects {
		out = append(out, p)
	}
	return out, int64(len(out)), nil
}

func (r *fakeProjectRepo) UpdateProject(ctx context.Context, id string, updates map[string]interface{}) error {
	if _, ok := r.projects[id]; !ok {
		return errors.New(ErrMsgProjectNotFound)
	}
	return nil
}

func (r *fakeProjectRepo) DeleteProject(ctx context.Context, id string) error {
	if _, ok := r.projects[id]; !ok {
		return errors.New(ErrMsgProjectNotFound)
	}
	delete(r.projects, id)
	return nil
}

func (r *fakeProjectRepo) FindForContent(ctx context.Context, q contract.ContentQuery) ([]*entity.Project, int64, error) {
	out := make([]*entity.Project, 0, len(r.projects))
	for _, p := range r.projects {
		out = append(out, p)
	}
	return out, int64(len(out)), nil
}

func (r *fakeProjectRepo) BulkSetFeatured(ctx context.Context, ids []string, featured bool) (int64, error) {
	var n int64
	for _, id := range ids {
		if p, ok := r.projects[id]; ok && p.Featured != featured {
			p.Featured = featured
			n++
		}
	}
	return n, nil
}

func (r *fakeProjectRepo) BulkDelete(ctx context.Context, ids []string) (int64, error) {
	var n int64
	for _, id := range ids {
		if _, ok := r.projects[id]; ok {
			delete(r.projects, id)
			n++
		}
	}
	return n, nil
}

func (r *fakeProjectRepo) CountProjects(ctx context.Context) (int64, error) {
	return int64(len(r.projects)), nil
}

type fakeContactRepo struct {
	messages map[string]*entity.ContactMessage
}

var _ contract.IContactRepository = (*fakeContactRepo)(nil)

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{messages: make(map[string]*entity.ContactMessage)}
}

func (r *fakeContactRepo) CreateMessage(ctx context.Context, msg *entity.ContactMessage) error {
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
	}
	r.messages[msg.ID] = msg
	return nil
}

func (r *fakeContactRepo) GetMessageByID(ctx context.Context, id string) (*entity.ContactMessage, error) {
	m, ok := r.messages[id]
	if !ok {
		return nil, errors.New(ErrMsgMessageNotFound)
	}
	return m, nil
}

func (r *fakeContactRepo) ListMessages(ctx context.Context, page, limit int) ([]*entity.ContactMessage, int64, error) {
	out := make([]*entity.ContactMessage, 0, len(r.messages))
	for _, m := range r.messages {
		out = append(out, m)
	}
	return out, int64(len(out)), nil
}

func (r *fakeContactRepo) SetResponded(ctx context.Context, id string, responded bool) error {
	m, ok := r.messages[id]
	if !ok {
		return errors.New(ErrMsgMessageNotFound)
	}
	m.IsResponded = responded
	return nil
}

func (r *fakeContactRepo) DeleteMessage(ctx context.Context, id string) error {
	if _, ok := r.messages[id]; !ok {
		return errors.New(ErrMsgMessageNotFound)
	}
	delete(r.messages, id)
	return nil
}

func (r *fakeContactRepo) CountMessages(ctx context.Context) (int64, error) {
	return int64(len(r.messages)), nil
}

type fakeFeedCache struct {
	pages         map[string]*contract.CachedFeedPage
	invalidations int
}

var _ contract.IFeedCache = (*fakeFeedCache)(nil)

func newFakeFeedCache() *fakeFeedCache {
	return &fakeFeedCache{pages: make(map[string]*contract.CachedFeedPage)}
}

func (c *fakeFeedCache) GetFeedPage(ctx context.Context, key string) (*contract.CachedFeedPage, bool, error) {
	page, ok := c.pages[key]
	return page, ok, nil
}

func (c *fakeFeedCache) SetFeedPage(ctx context.Context, key string, page *contract.CachedFeedPage) error {
	c.pages[key] = page
	return nil
}

func (c *fakeFeedCache) InvalidateFeed(ctx context.Context) error {
	c.pages = make(map[string]*contract.CachedFeedPage)
	c.invalidations++
	return nil
}
