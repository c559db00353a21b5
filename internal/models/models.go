package models

import "time"

const (
	ArticleStatusDraft     = "Draft"
	ArticleStatusPublished = "Published"
)

// MediaAsset carries the provenance fields the media provider returns for an
// uploaded file.
type MediaAsset struct {
	URL          string `json:"url"`
	PublicID     string `json:"publicId"`
	Format       string `json:"format"`
	ResourceType string `json:"resourceType"`
	Bytes        int64  `json:"bytes"`
}

type Course struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Price        int64      `json:"price"`
	CategoryID   string     `json:"categoryId"`
	Tags         []string   `json:"tags"`
	Instructions []string   `json:"instructions"`
	Thumbnail    MediaAsset `json:"thumbnail"`
	Content      []Section  `json:"content"`
}

// Section is one accordion entry of a course. Value is a client-assigned
// ordering key unique within the course; ID is server-assigned.
type Section struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Value      string       `json:"value"`
	SubSection []Subsection `json:"subSection"`
}

type Subsection struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	VideoURL    string `json:"videoUrl"`
	Duration    string `json:"duration,omitempty"`
}

type SEO struct {
	MetaTitle       string   `json:"metaTitle"`
	MetaDescription string   `json:"metaDescription"`
	Keywords        []string `json:"keywords"`
}

type Article struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Slug       string     `json:"slug"`
	Content    string     `json:"content"`
	Thumbnail  MediaAsset `json:"thumbnail"`
	CategoryID string     `json:"categoryId"`
	Tags       []string   `json:"tags"`
	SEO        SEO        `json:"seo"`
	Status     string     `json:"status"`
	IsFeatured bool       `json:"isFeatured"`
	IsTrending bool       `json:"isTrending"`
}

type Book struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Price     int64  `json:"price"`
	Thumbnail string `json:"thumbnail"`
	Category  string `json:"category"`
	IsFree    bool   `json:"isFree"`
}

// BookCombo bundles books at a discounted aggregate price. Read-mostly on the
// client; purchase counters are maintained server-side.
type BookCombo struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Books         []Book `json:"books"`
	OriginalPrice int64  `json:"originalPrice"`
	FinalPrice    int64  `json:"finalPrice"`
	Thumbnail     string `json:"thumbnail"`
}

type Review struct {
	ID        string    `json:"id"`
	CourseID  string    `json:"courseId"`
	UserID    string    `json:"userId"`
	Rating    int       `json:"rating"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}

type RatedCourse struct {
	Course
	AverageRating float64 `json:"averageRating"`
	RatingCount   int     `json:"ratingCount"`
}
