package service

import (
	"context"
	"sync"

	"admin-world-client/internal/api"
	"admin-world-client/internal/models"
	"admin-world-client/internal/repository"
	"admin-world-client/pkg/utils"
	"admin-world-client/pkg/validator"
)

const (
	ArticleStepDetails = 0
	ArticleStepContent = 1
)

// ArticleBuilder is the two-step article wizard: a single mutable draft that
// accumulates edits and is submitted whole. Title edits regenerate the slug;
// manual slug edits are not protected from a later title edit — last write
// wins, as in the flow this reproduces.
type ArticleBuilder struct {
	mu    sync.Mutex
	repo  repository.ArticleRepository
	step  int
	draft models.SaveArticleRequest
	err   *api.APIError
}

func NewArticleBuilder(repo repository.ArticleRepository) *ArticleBuilder {
	return &ArticleBuilder{repo: repo, draft: defaultDraft()}
}

func defaultDraft() models.SaveArticleRequest {
	return models.SaveArticleRequest{
		Tags:   []string{},
		SEO:    models.SEO{Keywords: []string{}},
		Status: models.ArticleStatusDraft,
	}
}

func (b *ArticleBuilder) Step() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.step
}

func (b *ArticleBuilder) NextStep() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.step < ArticleStepContent {
		b.step++
	}
}

func (b *ArticleBuilder) PrevStep() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.step > ArticleStepDetails {
		b.step--
	}
}

// SetTitle stores the title and regenerates the slug as a side effect.
func (b *ArticleBuilder) SetTitle(title string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.draft.Title = title
	b.draft.Slug = utils.GenerateSlug(title)
}

// SetSlug writes the slug directly for manual edits.
func (b *ArticleBuilder) SetSlug(slug string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.draft.Slug = slug
}

func (b *ArticleBuilder) SetContent(html string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.draft.Content = html
}

func (b *ArticleBuilder) SetCategory(categoryID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.draft.CategoryID = categoryID
}

func (b *ArticleBuilder) SetThumbnail(asset models.MediaAsset) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.draft.Thumbnail = asset
}

func (b *ArticleBuilder) SetStatus(status string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.draft.Status = status
}

func (b *ArticleBuilder) SetFeatured(featured bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.draft.IsFeatured = featured
}

func (b *ArticleBuilder) SetTrending(trending bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.draft.IsTrending = trending
}

func (b *ArticleBuilder) SetMetaTitle(title string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.draft.SEO.MetaTitle = title
}

func (b *ArticleBuilder) SetMetaDescription(description string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.draft.SEO.MetaDescription = description
}

// AddTag is idempotent: adding a value already present leaves the list
// unchanged.
func (b *ArticleBuilder) AddTag(tag string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !contains(b.draft.Tags, tag) {
		b.draft.Tags = append(b.draft.Tags, tag)
	}
}

func (b *ArticleBuilder) RemoveTag(tag string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.draft.Tags = remove(b.draft.Tags, tag)
}

func (b *ArticleBuilder) AddKeyword(keyword string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !contains(b.draft.SEO.Keywords, keyword) {
		b.draft.SEO.Keywords = append(b.draft.SEO.Keywords, keyword)
	}
}

func (b *ArticleBuilder) RemoveKeyword(keyword string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.draft.SEO.Keywords = remove(b.draft.SEO.Keywords, keyword)
}

// LoadArticle seeds the draft from an existing article for editing.
func (b *ArticleBuilder) LoadArticle(article models.Article) {
	b.mu.Lock()
	defer b.mu.Unlock()

	draft := models.SaveArticleRequest{
		ID:         article.ID,
		Title:      article.Title,
		Slug:       article.Slug,
		Content:    article.Content,
		Thumbnail:  article.Thumbnail,
		CategoryID: article.CategoryID,
		Tags:       append([]string{}, article.Tags...),
		SEO: models.SEO{
			MetaTitle:       article.SEO.MetaTitle,
			MetaDescription: article.SEO.MetaDescription,
			Keywords:        append([]string{}, article.SEO.Keywords...),
		},
		Status:     article.Status,
		IsFeatured: article.IsFeatured,
		IsTrending: article.IsTrending,
	}
	if draft.Status == "" {
		draft.Status = models.ArticleStatusDraft
	}
	b.draft = draft
	b.step = ArticleStepDetails
}

// Draft returns a copy of the current draft, nested slices included.
func (b *ArticleBuilder) Draft() models.SaveArticleRequest {
	b.mu.Lock()
	defer b.mu.Unlock()
	return copyDraft(b.draft)
}

// Submit validates, sanitizes the rich content, and sends the whole draft.
// On success the draft resets to the default shape and the wizard returns to
// the first step. Validation failures never enter slice state.
func (b *ArticleBuilder) Submit(ctx context.Context) (*models.Article, error) {
	b.mu.Lock()
	draft := copyDraft(b.draft)
	b.mu.Unlock()

	if err := validateDraft(draft); err != nil {
		return nil, err
	}
	if err := validator.Validate(draft); err != nil {
		return nil, newValidationError(err.Error())
	}

	draft.Content = validator.SanitizeHTML(draft.Content)

	article, err := b.repo.SaveArticle(ctx, draft)
	if err != nil {
		b.mu.Lock()
		b.err = api.AsAPIError(err)
		b.mu.Unlock()
		return nil, err
	}

	b.mu.Lock()
	b.draft = defaultDraft()
	b.step = ArticleStepDetails
	b.err = nil
	b.mu.Unlock()
	return article, nil
}

func (b *ArticleBuilder) Err() *api.APIError {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.err
}

func (b *ArticleBuilder) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.draft = defaultDraft()
	b.step = ArticleStepDetails
	b.err = nil
}

func validateDraft(draft models.SaveArticleRequest) error {
	if draft.Title == "" {
		return newValidationError("article title is required")
	}
	if draft.Slug == "" {
		return newValidationError("article slug is required")
	}
	if draft.Content == "" {
		return newValidationError("article content is required")
	}
	if draft.CategoryID == "" {
		return newValidationError("article category is required")
	}
	if draft.Status != models.ArticleStatusDraft && draft.Status != models.ArticleStatusPublished {
		return newValidationError("article status must be %s or %s", models.ArticleStatusDraft, models.ArticleStatusPublished)
	}
	return nil
}

func copyDraft(draft models.SaveArticleRequest) models.SaveArticleRequest {
	draft.Tags = append([]string{}, draft.Tags...)
	draft.SEO.Keywords = append([]string{}, draft.SEO.Keywords...)
	return draft
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

func remove(values []string, value string) []string {
	out := values[:0]
	for _, v := range values {
		if v != value {
			out = append(out, v)
		}
	}
	return out
}
