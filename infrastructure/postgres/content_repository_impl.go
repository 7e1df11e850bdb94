package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"school-cms/domain/models"
	"school-cms/domain/repositories"
	"school-cms/domain/validation"
	"school-cms/pkg/logger"
	"school-cms/pkg/slug"
)

const (
	maxSlugAttempts    = 5
	defaultRecentLimit = 5
)

// ContentModel constrains PT to a pointer to T that behaves as a content row.
type ContentModel[T any] interface {
	*T
	models.ContentEntity
}

// ContentRepositoryImpl implements the CRUD, search and view counting shared by
// every content table. Concrete repositories embed it.
type ContentRepositoryImpl[T any, PT ContentModel[T]] struct {
	db            *gorm.DB
	table         string
	allowedFields []string
	now           func() time.Time
}

func NewContentRepository[T any, PT ContentModel[T]](db *gorm.DB, allowedFields []string) *ContentRepositoryImpl[T, PT] {
	var zero T
	return &ContentRepositoryImpl[T, PT]{
		db:            db,
		table:         PT(&zero).TableName(),
		allowedFields: allowedFields,
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
}

func (r *ContentRepositoryImpl[T, PT]) query(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(new(T))
}

// published scopes a query to rows visible on the public site
func (r *ContentRepositoryImpl[T, PT]) published(ctx context.Context) *gorm.DB {
	return r.query(ctx).Where("status = ? AND published_at IS NOT NULL", models.StatusPublished)
}

func (r *ContentRepositoryImpl[T, PT]) fail(operation string, err error) error {
	logger.DBError(operation, "Content query failed", err, map[string]interface{}{
		"table": r.table,
	})
	return fmt.Errorf("%s %s: %w", operation, r.table, err)
}

func (r *ContentRepositoryImpl[T, PT]) findOne(db *gorm.DB, operation string) (*T, error) {
	var item T
	if err := db.First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.ErrNotFound
		}
		return nil, r.fail(operation, err)
	}
	return &item, nil
}

func (r *ContentRepositoryImpl[T, PT]) findMany(db *gorm.DB, operation string) ([]T, error) {
	items := make([]T, 0)
	if err := db.Find(&items).Error; err != nil {
		return nil, r.fail(operation, err)
	}
	return items, nil
}

func (r *ContentRepositoryImpl[T, PT]) GetAll(ctx context.Context) ([]T, error) {
	return r.findMany(r.query(ctx).Order("created_at DESC"), "get_all")
}

func (r *ContentRepositoryImpl[T, PT]) GetPublished(ctx context.Context) ([]T, error) {
	return r.findMany(r.published(ctx).Order("published_at DESC"), "get_published")
}

func (r *ContentRepositoryImpl[T, PT]) GetByID(ctx context.Context, id uuid.UUID) (*T, error) {
	return r.findOne(r.query(ctx).Where("id = ?", id), "get_by_id")
}

func (r *ContentRepositoryImpl[T, PT]) GetBySlug(ctx context.Context, value string) (*T, error) {
	return r.findOne(r.published(ctx).Where("slug = ?", value), "get_by_slug")
}

func (r *ContentRepositoryImpl[T, PT]) GetPublishedByID(ctx context.Context, id uuid.UUID) (*T, error) {
	return r.findOne(r.query(ctx).Where("id = ? AND status = ?", id, models.StatusPublished), "get_published_by_id")
}

func (r *ContentRepositoryImpl[T, PT]) Search(ctx context.Context, query string) ([]T, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return r.GetPublished(ctx)
	}

	pattern := "%" + escapeLike(strings.ToLower(query)) + "%"
	db := r.published(ctx).
		Where(`(LOWER(title) LIKE ? ESCAPE '\' OR LOWER(content) LIKE ? ESCAPE '\' OR LOWER(excerpt) LIKE ? ESCAPE '\')`,
			pattern, pattern, pattern).
		Order("published_at DESC")
	return r.findMany(db, "search")
}

func (r *ContentRepositoryImpl[T, PT]) Create(ctx context.Context, item *T) (*T, error) {
	entity := PT(item)
	base := entity.GetBase()

	errs := validation.ValidateCreateData(validation.CreateFields{
		Title:   base.Title,
		Content: base.Content,
		Status:  base.Status,
	})
	errs = append(errs, entity.ValidateEntity()...)
	if err := validation.NewError(errs); err != nil {
		return nil, err
	}

	if base.Status == "" {
		base.Status = models.StatusDraft
	}
	base.PublishedAt = derivePublishedAt(base.Status, base.PublishedAt, r.now())
	base.ViewCount = 0

	for attempt := 1; attempt <= maxSlugAttempts; attempt++ {
		s, err := slug.Unique(ctx, base.Title, r.SlugExists)
		if err != nil {
			return nil, err
		}
		base.Slug = s
		base.ID = uuid.New()

		err = r.db.WithContext(ctx).Create(item).Error
		if err == nil {
			logger.Content("content_created", "Content created", map[string]interface{}{
				"table":  r.table,
				"id":     base.ID.String(),
				"slug":   base.Slug,
				"status": string(base.Status),
			})
			return item, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, r.fail("create", err)
		}

		logger.Warn(logger.CategoryContent, "slug_conflict", "Slug taken during insert, retrying", map[string]interface{}{
			"table":   r.table,
			"slug":    base.Slug,
			"attempt": attempt,
		})
	}

	return nil, fmt.Errorf("create %s: %w", r.table, repositories.ErrConflict)
}

func (r *ContentRepositoryImpl[T, PT]) Update(ctx context.Context, id uuid.UUID, updates validation.Updates) (*T, error) {
	var probe T
	errs := validation.ValidateUpdateData(updates)
	errs = append(errs, PT(&probe).ValidateEntityUpdate(updates)...)
	if err := validation.NewError(errs); err != nil {
		return nil, err
	}

	now := r.now()
	clean := validation.CleanUpdateData(updates, r.allowedFields)
	clean = validation.HandlePublishedAt(clean, now)
	clean["updated_at"] = now

	result := r.query(ctx).Where("id = ?", id).Updates(map[string]interface{}(clean))
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("update %s: %w", r.table, repositories.ErrConflict)
		}
		return nil, r.fail("update", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, repositories.ErrNotFound
	}

	return r.GetByID(ctx, id)
}

func (r *ContentRepositoryImpl[T, PT]) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if result.Error != nil {
		return r.fail("delete", result.Error)
	}
	if result.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

func (r *ContentRepositoryImpl[T, PT]) GetRecent(ctx context.Context, limit int) ([]T, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	return r.findMany(r.published(ctx).Order("published_at DESC").Limit(limit), "get_recent")
}

func (r *ContentRepositoryImpl[T, PT]) IncrementViewCount(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(new(T)).Where("id = ?", id).
			UpdateColumn("view_count", gorm.Expr("COALESCE(view_count, 0) + 1"))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return repositories.ErrNotFound
		}
		return tx.Model(new(T)).Where("id = ?", id).Select("view_count").Row().Scan(&count)
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return 0, err
		}
		return 0, r.fail("increment_view_count", err)
	}
	return count, nil
}

func (r *ContentRepositoryImpl[T, PT]) SlugExists(ctx context.Context, value string) (bool, error) {
	var count int64
	if err := r.query(ctx).Where("slug = ?", value).Count(&count).Error; err != nil {
		return false, r.fail("slug_exists", err)
	}
	return count > 0, nil
}

func (r *ContentRepositoryImpl[T, PT]) AllowedFields() []string {
	fields := make([]string, len(r.allowedFields))
	copy(fields, r.allowedFields)
	return fields
}

func derivePublishedAt(status models.ContentStatus, current *time.Time, now time.Time) *time.Time {
	updates := validation.Updates{"status": status}
	if current != nil {
		updates["published_at"] = current
	}

	switch v := validation.HandlePublishedAt(updates, now)["published_at"].(type) {
	case time.Time:
		return &v
	case *time.Time:
		return v
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
