package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/wuddevdet/platform-api/internal/domain/contract"
	"github.com/wuddevdet/platform-api/internal/domain/entity"
	usecasecontract "github.com/wuddevdet/platform-api/internal/usecase/contract"
)

// recentWindow is the "recent" filter cutoff of the moderation dashboard.
const recentWindow = 7 * 24 * time.Hour

// ContentUsecase implements the IContentUseCase interface. It is the one
// piece of cross-model logic in the system: a unified moderation view over
// posts, projects and embedded comments.
type ContentUsecase struct {
	postRepo    contract.IPostRepository
	projectRepo contract.IProjectRepository
	logger      usecasecontract.IAppLogger
}

// NewContentUsecase creates a new ContentUsecase instance.
func NewContentUsecase(
	postRepo contract.IPostRepository,
	projectRepo contract.IProjectRepository,
	logger usecasecontract.IAppLogger,
) *ContentUsecase {
	return &ContentUsecase{
		postRepo:    postRepo,
		projectRepo: projectRepo,
		logger:      logger,
	}
}

// check if ContentUsecase implements the IContentUseCase
var _ usecasecontract.IContentUseCase = (*ContentUsecase)(nil)

// ListItems returns one page of the moderation table. Posts and projects are
// filtered in the database; the "comments" pseudo-type is flattened from the
// embedded arrays and filtered in application memory, since comments are not
// a collection of their own.
func (uc *ContentUsecase) ListItems(ctx context.Context, itemType, search, filter string, page, limit int) ([]usecasecontract.ContentItem, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	q := contract.ContentQuery{
		Search:      search,
		Filter:      filter,
		RecentSince: time.Now().Add(-recentWindow),
		Page:        page,
		Limit:       limit,
	}

	switch itemType {
	case usecasecontract.ContentTypePosts:
		posts, total, err := uc.postRepo.FindForContent(ctx, q)
		if err != nil {
			return nil, 0, err
		}
		items := make([]usecasecontract.ContentItem, 0, len(posts))
		for _, p := range posts {
			items = append(items, postItem(p))
		}
		return items, total, nil

	case usecasecontract.ContentTypeProjects:
		projects, total, err := uc.projectRepo.FindForContent(ctx, q)
		if err != nil {
			return nil, 0, err
		}
		items := make([]usecasecontract.ContentItem, 0, len(projects))
		for _, p := range projects {
			items = append(items, projectItem(p))
		}
		return items, total, nil

	case usecasecontract.ContentTypeComments:
		return uc.listComments(ctx, q)

	default:
		return nil, 0, fmt.Errorf("unknown item type %q", itemType)
	}
}

// listComments flattens embedded comments into top-level records carrying
// their parent post's id and title, then applies search/filter/pagination
// in memory.
func (uc *ContentUsecase) listComments(ctx context.Context, q contract.ContentQuery) ([]usecasecontract.ContentItem, int64, error) {
	posts, err := uc.postRepo.PostsWithComments(ctx)
	if err != nil {
		return nil, 0, err
	}

	var items []usecasecontract.ContentItem
	for _, p := range posts {
		for _, c := range p.Comments {
			items = append(items, usecasecontract.ContentItem{
				ID:         c.ID,
				Type:       "comment",
				Content:    c.Content,
				AuthorName: c.AuthorName,
				PostID:     p.ID,
				PostTitle:  p.Title,
				CreatedAt:  c.CreatedAt,
			})
		}
	}

	if q.Search != "" {
		needle := strings.ToLower(q.Search)
		filtered := items[:0]
		for _, it := range items {
			if strings.Contains(strings.ToLower(it.Content), needle) ||
				strings.Contains(strings.ToLower(it.AuthorName), needle) ||
				strings.Contains(strings.ToLower(it.PostTitle), needle) {
				filtered = append(filtered, it)
			}
		}
		items = filtered
	}
	if q.Filter == "recent" {
		filtered := items[:0]
		for _, it := range items {
			if !it.CreatedAt.Before(q.RecentSince) {
				filtered = append(filtered, it)
			}
		}
		items = filtered
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})

	total := int64(len(items))
	start := (q.Page - 1) * q.Limit
	if start >= len(items) {
		return []usecasecontract.ContentItem{}, total, nil
	}
	end := start + q.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], total, nil
}

// BulkAction dispatches one moderation action over a set of ids and returns
// the number of documents Mongo reports as modified (or deleted).
func (uc *ContentUsecase) BulkAction(ctx context.Context, itemType, action string, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, errors.New("no ids provided")
	}

	switch itemType {
	case usecasecontract.ContentTypePosts:
		switch action {
		case "delete":
			return uc.postRepo.BulkDelete(ctx, ids)
		case "pin":
			return uc.postRepo.BulkSetPinned(ctx, ids, true)
		case "unpin":
			return uc.postRepo.BulkSetPinned(ctx, ids, false)
		default:
			return 0, fmt.Errorf("unsupported action %q for posts", action)
		}
	case usecasecontract.ContentTypeProjects:
		switch action {
		case "delete":
			return uc.projectRepo.BulkDelete(ctx, ids)
		case "feature":
			return uc.projectRepo.BulkSetFeatured(ctx, ids, true)
		case "unfeature":
			return uc.projectRepo.BulkSetFeatured(ctx, ids, false)
		default:
			return 0, fmt.Errorf("unsupported action %q for projects", action)
		}
	default:
		return 0, fmt.Errorf("unknown item type %q", itemType)
	}
}

// Counts returns totals per content type for the dashboard tabs.
func (uc *ContentUsecase) Counts(ctx context.Context) (*usecasecontract.ContentCounts, error) {
	posts, err := uc.postRepo.CountPosts(ctx)
	if err != nil {
		return nil, err
	}
	projects, err := uc.projectRepo.CountProjects(ctx)
	if err != nil {
		return nil, err
	}
	comments, err := uc.postRepo.CountComments(ctx)
	if err != nil {
		return nil, err
	}
	return &usecasecontract.ContentCounts{Posts: posts, Projects: projects, Comments: comments}, nil
}

func postItem(p *entity.Post) usecasecontract.ContentItem {
	item := usecasecontract.ContentItem{
		ID:        p.ID,
		Type:      "post",
		Title:     p.Title,
		Content:   p.Content,
		IsPinned:  p.IsPinned,
		CreatedAt: p.CreatedAt,
	}
	if p.Author != nil {
		item.AuthorName = p.Author.Name
	}
	return item
}

func projectItem(p *entity.Project) usecasecontract.ContentItem {
	item := usecasecontract.ContentItem{
		ID:        p.ID,
		Type:      "project",
		Title:     p.Title,
		Content:   p.Description,
		Featured:  p.Featured,
		CreatedAt: p.CreatedAt,
	}
	if p.Creator != nil {
		item.AuthorName = p.Creator.Name
	}
	return item
}
