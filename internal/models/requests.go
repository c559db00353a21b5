package models

// Request payloads for the authoring endpoints. Field names follow the
// backend wire contract.

type CreateCourseRequest struct {
	Name         string   `json:"name" validate:"required"`
	Description  string   `json:"description" validate:"required"`
	Price        int64    `json:"price" validate:"gte=0"`
	CategoryID   string   `json:"categoryId" validate:"required"`
	Tags         []string `json:"tags"`
	Instructions []string `json:"instructions"`
}

type UpdateCourseRequest struct {
	CourseID     string   `json:"courseId" validate:"required"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Price        *int64   `json:"price,omitempty"`
	CategoryID   string   `json:"categoryId,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	Instructions []string `json:"instructions,omitempty"`
}

type AddSectionRequest struct {
	SectionName string `json:"sectionName" validate:"required"`
	CourseID    string `json:"courseId" validate:"required"`
}

type UpdateSectionRequest struct {
	SectionName string `json:"sectionName" validate:"required"`
	SectionID   string `json:"sectionId" validate:"required"`
	CourseID    string `json:"courseId" validate:"required"`
}

type DeleteSectionRequest struct {
	SectionID string `json:"sectionId" validate:"required"`
	CourseID  string `json:"courseId" validate:"required"`
}

type AddSubSectionRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	VideoURL    string `json:"videoUrl" validate:"required"`
	SectionID   string `json:"sectionId" validate:"required"`
}

type UpdateSubSectionRequest struct {
	SubSectionID string `json:"subSectionId" validate:"required"`
	SectionID    string `json:"sectionId" validate:"required"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	VideoURL     string `json:"videoUrl"`
}

type DeleteSubSectionRequest struct {
	SubSectionID string `json:"subSectionId" validate:"required"`
	SectionID    string `json:"sectionId" validate:"required"`
}

type SaveArticleRequest struct {
	ID         string     `json:"id,omitempty"`
	Title      string     `json:"title" validate:"required"`
	Slug       string     `json:"slug" validate:"required,slug"`
	Content    string     `json:"content" validate:"required"`
	Thumbnail  MediaAsset `json:"thumbnail"`
	CategoryID string     `json:"categoryId" validate:"required"`
	Tags       []string   `json:"tags"`
	SEO        SEO        `json:"seo"`
	Status     string     `json:"status" validate:"oneof=Draft Published"`
	IsFeatured bool       `json:"isFeatured"`
	IsTrending bool       `json:"isTrending"`
}

type CreateReviewRequest struct {
	CourseID string `json:"courseId" validate:"required"`
	Rating   int    `json:"rating" validate:"gte=1,lte=5"`
	Body     string `json:"body" validate:"required"`
}

type UpdateProgressRequest struct {
	CourseID     string `json:"courseId" validate:"required"`
	SubsectionID string `json:"subsectionId" validate:"required"`
}

type GenerateSignatureRequest struct {
	UploadPreset string `json:"uploadPreset" validate:"required"`
	ResourceType string `json:"resourceType" validate:"required"`
}

// UploadSignature is what the backend returns for a signed media upload.
type UploadSignature struct {
	Signature string `json:"signature"`
	Timestamp int64  `json:"timestamp"`
	APIKey    string `json:"apiKey"`
	Preset    string `json:"uploadPreset"`
}

type AttachAssetRequest struct {
	OwnerType string     `json:"ownerType"`
	OwnerID   string     `json:"ownerId"`
	Asset     MediaAsset `json:"asset"`
}
