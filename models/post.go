package models

import (
	"math"
	"strings"
	"time"
)

const DefaultPostImage = "https://images.unsplash.com/photo-1558769132-cb1aea458c5e?w=600&h=400&fit=crop&crop=center"

// Post statuses.
const (
	PostDraft     = "draft"
	PostPublished = "published"
	PostArchived  = "archived"
)

const (
	excerptLength  = 150
	wordsPerMinute = 200
)

var PostCategories = []string{
	"Fashion Trends", "Style Tips", "Sustainability", "Brand Stories", "Seasonal",
}

var postStatuses = []string{PostDraft, PostPublished, PostArchived}

type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Excerpt   string    `json:"excerpt"`
	Category  string    `json:"category"`
	Image     string    `json:"image"`
	Author    string    `json:"author"`
	Status    string    `json:"status"`
	Featured  bool      `json:"featured"`
	Views     int       `json:"views"`
	Likes     int       `json:"likes"`
	Tags      []string  `json:"tags"`
	ReadTime  int       `json:"readTime"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Derive fills the excerpt when it is blank and recomputes the read time.
// Stores call it before every save.
func (p *Post) Derive() {
	if p.Excerpt == "" && p.Content != "" {
		p.Excerpt = Excerpt(p.Content)
	}
	if p.Content != "" {
		p.ReadTime = ReadTime(p.Content)
	}
}

// Excerpt returns the first 150 characters of content followed by "...".
func Excerpt(content string) string {
	r := []rune(content)
	if len(r) > excerptLength {
		r = r[:excerptLength]
	}
	return string(r) + "..."
}

// ReadTime is the reading time in minutes at 200 words per minute. Words are
// counted by splitting on single spaces.
func ReadTime(content string) int {
	words := len(strings.Split(content, " "))
	return int(math.Ceil(float64(words) / wordsPerMinute))
}

type PostInput struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Excerpt  *string `json:"excerpt"`
	Category *string `json:"category"`
	Image    *string `json:"image"`
	Status   *string `json:"status"`
	Featured *bool   `json:"featured"`
	Tags     TagList `json:"tags"`
}

func (in *PostInput) Validate(partial bool) []FieldError {
	var errs []FieldError

	if in.Title != nil {
		*in.Title = strings.TrimSpace(*in.Title)
	}

	if in.Title == nil || *in.Title == "" {
		if !partial || in.Title != nil {
			errs = append(errs, FieldError{Field: "title", Message: "Post title is required"})
		}
	} else if len([]rune(*in.Title)) > 200 {
		errs = append(errs, FieldError{Field: "title", Message: "Title cannot exceed 200 characters"})
	}

	if in.Content == nil {
		if !partial {
			errs = append(errs, FieldError{Field: "content", Message: "Post content is required"})
		}
	} else if len([]rune(*in.Content)) < 10 {
		errs = append(errs, FieldError{Field: "content", Message: "Content must be at least 10 characters"})
	}

	if in.Excerpt != nil && len([]rune(*in.Excerpt)) > 300 {
		errs = append(errs, FieldError{Field: "excerpt", Message: "Excerpt cannot exceed 300 characters"})
	}
	if in.Category != nil && !contains(PostCategories, *in.Category) {
		errs = append(errs, FieldError{Field: "category", Message: "Invalid category"})
	}
	if in.Status != nil && !contains(postStatuses, *in.Status) {
		errs = append(errs, FieldError{Field: "status", Message: "Status must be one of draft, published, archived"})
	}
	return errs
}

func (in *PostInput) NewPost(authorID string) Post {
	p := Post{
		Category: PostCategories[0],
		Image:    DefaultPostImage,
		Author:   authorID,
		Status:   PostDraft,
		Tags:     []string{},
	}
	in.Apply(&p)
	return p
}

// Apply copies the present fields onto p. A content change without a new
// excerpt clears the old one so Derive regenerates it.
func (in *PostInput) Apply(p *Post) {
	if in.Title != nil {
		p.Title = *in.Title
	}
	if in.Content != nil {
		if in.Excerpt == nil && p.Content != *in.Content {
			p.Excerpt = ""
		}
		p.Content = *in.Content
	}
	if in.Excerpt != nil {
		p.Excerpt = *in.Excerpt
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	if in.Image != nil && *in.Image != "" {
		p.Image = *in.Image
	}
	if in.Status != nil {
		p.Status = *in.Status
	}
	if in.Featured != nil {
		p.Featured = *in.Featured
	}
	if in.Tags != nil {
		p.Tags = []string(in.Tags)
	}
	p.Derive()
}
