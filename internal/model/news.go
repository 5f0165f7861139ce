package model

import "time"

// News represents a published or draft news post.
type News struct {
	ID           uint64     `json:"id" gorm:"primaryKey"`
	Slug         string     `json:"slug" gorm:"uniqueIndex;size:255"`
	Date         string     `json:"date" gorm:"size:32"`
	Title        string     `json:"title" gorm:"size:255"`
	Excerpt      string     `json:"excerpt" gorm:"type:text"`
	Content      string     `json:"content" gorm:"type:mediumtext"`
	ImageURL     string     `json:"image_url" gorm:"size:512"`
	Published    bool       `json:"published" gorm:"type:tinyint(1);default:0;index"`
	PublishedAt  *time.Time `json:"published_at"`
	UpdatedAtExt *time.Time `json:"updated_at_ext"`
	Tags         StringList `json:"tags"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// TableName keeps the plural-less table name the schema uses.
func (News) TableName() string {
	return "news"
}

// NewsPatch carries a partial update; nil fields are left untouched.
type NewsPatch struct {
	Slug         *string     `json:"slug"`
	Date         *string     `json:"date"`
	Title        *string     `json:"title"`
	Excerpt      *string     `json:"excerpt"`
	Content      *string     `json:"content"`
	ImageURL     *string     `json:"image_url"`
	Published    *bool       `json:"published"`
	PublishedAt  *time.Time  `json:"published_at"`
	UpdatedAtExt *time.Time  `json:"updated_at_ext"`
	Tags         *StringList `json:"tags"`
}

// Fields returns the column assignments present in the patch.
func (p NewsPatch) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	setString(fields, "slug", p.Slug)
	setString(fields, "date", p.Date)
	setString(fields, "title", p.Title)
	setString(fields, "excerpt", p.Excerpt)
	setString(fields, "content", p.Content)
	setString(fields, "image_url", p.ImageURL)
	if p.Published != nil {
		fields["published"] = *p.Published
	}
	if p.PublishedAt != nil {
		fields["published_at"] = *p.PublishedAt
	}
	if p.UpdatedAtExt != nil {
		fields["updated_at_ext"] = *p.UpdatedAtExt
	}
	setList(fields, "tags", p.Tags)
	return fields
}
