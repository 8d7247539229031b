package usecase

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/AliHsynvv/airen-media-sub002/internal/data/entity"
	"github.com/AliHsynvv/airen-media-sub002/internal/data/repository"
	"github.com/AliHsynvv/airen-media-sub002/internal/dto/request"
	"github.com/AliHsynvv/airen-media-sub002/pkg/cache"
	"github.com/AliHsynvv/airen-media-sub002/pkg/locale"
	"github.com/AliHsynvv/airen-media-sub002/pkg/slug"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeArticleRepo struct {
	bySlug     map[string]*entity.Article
	byID       map[uuid.UUID]*entity.Article
	takenSlugs map[string]bool
	createErrs []error
	creates    int
	views      int
}

func newFakeArticleRepo() *fakeArticleRepo {
	return &fakeArticleRepo{
		bySlug:     map[string]*entity.Article{},
		byID:       map[uuid.UUID]*entity.Article{},
		takenSlugs: map[string]bool{},
	}
}

func (f *fakeArticleRepo) Create(ctx context.Context, article *entity.Article) error {
	f.creates++
	if len(f.createErrs) > 0 {
		err := f.createErrs[0]
		f.createErrs = f.createErrs[1:]
		if err != nil {
			return err
		}
	}
	f.bySlug[article.Slug] = article
	f.byID[article.ID] = article
	return nil
}

func (f *fakeArticleRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Article, error) {
	return f.byID[id], nil
}

func (f *fakeArticleRepo) FindBySlug(ctx context.Context, slugVal string) (*entity.Article, error) {
	return f.bySlug[slugVal], nil
}

func (f *fakeArticleRepo) List(ctx context.Context, limit, offset int) ([]*entity.Article, error) {
	return nil, nil
}

func (f *fakeArticleRepo) Count(ctx context.Context) (int64, error) { return 0, nil }

func (f *fakeArticleRepo) Update(ctx context.Context, article *entity.Article) error {
	f.byID[article.ID] = article
	f.bySlug[article.Slug] = article
	return nil
}

func (f *fakeArticleRepo) UpdateTranslations(ctx context.Context, id uuid.UUID, translations locale.Translations) error {
	if a, ok := f.byID[id]; ok {
		a.Translations = translations
	}
	return nil
}

func (f *fakeArticleRepo) IncrementViews(ctx context.Context, id uuid.UUID) error {
	f.views++
	if a, ok := f.byID[id]; ok {
		a.ViewCount++
	}
	return nil
}

func (f *fakeArticleRepo) SlugExists(ctx context.Context, slugVal string) (bool, error) {
	if f.takenSlugs[slugVal] {
		return true, nil
	}
	_, ok := f.bySlug[slugVal]
	return ok, nil
}

func (f *fakeArticleRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	if a, ok := f.byID[id]; ok {
		delete(f.bySlug, a.Slug)
		delete(f.byID, id)
	}
	return nil
}

func newArticleService(repo *fakeArticleRepo) ArticleService {
	return NewArticleService(
		&repository.Repository{Article: repo},
		slug.NewAssigner(rand.New(rand.NewSource(1))),
		cache.NewContentCache(nil, 5, zap.NewNop()),
		zap.NewNop(),
	)
}

func TestArticleCreate_AssignsNormalizedSlug(t *testing.T) {
	repo := newFakeArticleRepo()
	svc := newArticleService(repo)

	got, err := svc.Create(context.Background(), uuid.New(), &request.CreateArticleRequest{
		Title:           "A Week in Tbilisi",
		Content:         "Old town, sulfur baths, khinkali.",
		DefaultLanguage: "en",
	})

	require.NoError(t, err)
	assert.Equal(t, "a-week-in-tbilisi", got.Slug)
	assert.Equal(t, entity.ArticleStatusDraft, got.Status)
	assert.Equal(t, 1, repo.creates)
}

func TestArticleCreate_RetriesAfterLostUniquenessRace(t *testing.T) {
	repo := newFakeArticleRepo()
	// probe says free, insert still collides once
	repo.createErrs = []error{repository.ErrDuplicate}
	svc := newArticleService(repo)

	got, err := svc.Create(context.Background(), uuid.New(), &request.CreateArticleRequest{
		Title:           "My Trip",
		Content:         "body",
		DefaultLanguage: "en",
	})

	require.NoError(t, err)
	assert.Equal(t, 2, repo.creates)
	assert.True(t, strings.HasPrefix(got.Slug, "my-trip"), "slug %q should derive from the title", got.Slug)
}

func TestArticleCreate_SecondCollisionIsConflict(t *testing.T) {
	repo := newFakeArticleRepo()
	repo.createErrs = []error{repository.ErrDuplicate, repository.ErrDuplicate}
	svc := newArticleService(repo)

	_, err := svc.Create(context.Background(), uuid.New(), &request.CreateArticleRequest{
		Title:           "My Trip",
		Content:         "body",
		DefaultLanguage: "en",
	})

	require.ErrorIs(t, err, ErrSlugTaken)
	assert.Equal(t, 2, repo.creates)
}

func TestArticleCreate_EmptySlugRejected(t *testing.T) {
	repo := newFakeArticleRepo()
	svc := newArticleService(repo)

	_, err := svc.Create(context.Background(), uuid.New(), &request.CreateArticleRequest{
		Title:           "!!!",
		Content:         "body",
		DefaultLanguage: "en",
	})

	require.ErrorIs(t, err, slug.ErrInvalidTitle)
	assert.Zero(t, repo.creates)
}

func TestArticleGetBySlug_ResolvesLocaleAndCountsView(t *testing.T) {
	repo := newFakeArticleRepo()
	svc := newArticleService(repo)

	created, err := svc.Create(context.Background(), uuid.New(), &request.CreateArticleRequest{
		Title:           "Baku Guide",
		Content:         "English content",
		DefaultLanguage: "en",
		Translations: locale.Translations{
			"az": {"title": "Bakı bələdçisi", "content": "Azərbaycanca mətn"},
		},
	})
	require.NoError(t, err)

	got, err := svc.GetBySlug(context.Background(), created.Slug, "az")
	require.NoError(t, err)
	assert.Equal(t, "az", got.Locale)
	assert.False(t, got.FallbackUsed)
	assert.Equal(t, "Bakı bələdçisi", got.Title)
	assert.Equal(t, 1, repo.views)

	// unknown locale falls back to the default language
	got, err = svc.GetBySlug(context.Background(), created.Slug, "fr")
	require.NoError(t, err)
	assert.Equal(t, "en", got.Locale)
	assert.True(t, got.FallbackUsed)
	assert.Equal(t, "Baku Guide", got.Title)
}

func TestArticleGetBySlug_Missing(t *testing.T) {
	svc := newArticleService(newFakeArticleRepo())

	_, err := svc.GetBySlug(context.Background(), "nope", "en")

	require.ErrorIs(t, err, ErrNotFound)
}

func TestArticleUpdate_OwnerOnly(t *testing.T) {
	repo := newFakeArticleRepo()
	svc := newArticleService(repo)
	author := uuid.New()

	created, err := svc.Create(context.Background(), author, &request.CreateArticleRequest{
		Title:           "Editable",
		Content:         "v1",
		DefaultLanguage: "en",
	})
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	newContent := "v2"
	_, err = svc.Update(context.Background(), uuid.New(), string(entity.RoleUser), id, &request.UpdateArticleRequest{Content: &newContent})
	require.ErrorIs(t, err, ErrForbidden)

	got, err := svc.Update(context.Background(), author, string(entity.RoleUser), id, &request.UpdateArticleRequest{Content: &newContent})
	require.NoError(t, err)
	assert.Equal(t, "v2", got.Content)

	// admins may edit anyone's article
	got, err = svc.Update(context.Background(), uuid.New(), string(entity.RoleAdmin), id, &request.UpdateArticleRequest{Content: &newContent})
	require.NoError(t, err)
	assert.Equal(t, "v2", got.Content)
}
