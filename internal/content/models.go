package content

import "time"

// Content entities are created and edited through a separate admin tool;
// this service only reads them. Image fields hold object-storage keys that
// the read API resolves to URLs.

// Service is one offering shown on the services pages.
type Service struct {
	ID          string         `json:"id" bson:"_id,omitempty"`
	Title       string         `json:"title" bson:"title"`
	Slug        string         `json:"slug" bson:"slug"`
	Description string         `json:"description" bson:"description"`
	Content     string         `json:"content,omitempty" bson:"content,omitempty"`
	ImageKey    string         `json:"image,omitempty" bson:"imageKey,omitempty"`
	Gallery     []GalleryImage `json:"gallery,omitempty" bson:"gallery,omitempty"`
	Icon        string         `json:"icon,omitempty" bson:"icon,omitempty"`
	Featured    bool           `json:"featured" bson:"featured"`
	Order       int            `json:"order" bson:"order"`
	CreatedAt   time.Time      `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt" bson:"updatedAt"`
}

type GalleryImage struct {
	ImageKey string `json:"image" bson:"imageKey"`
	Caption  string `json:"caption,omitempty" bson:"caption,omitempty"`
}

// Project is a work-gallery entry; Title is internal, only the images show.
type Project struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Title     string    `json:"title" bson:"title"`
	ImageKeys []string  `json:"images" bson:"imageKeys"`
	Featured  bool      `json:"featured" bson:"featured"`
	Order     int       `json:"order" bson:"order"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// HeroSlide configures one slide of the home page slideshow.
type HeroSlide struct {
	ID                 string    `json:"id" bson:"_id,omitempty"`
	Active             bool      `json:"active" bson:"active"`
	Order              int       `json:"order" bson:"order"`
	Title              string    `json:"title" bson:"title"`
	Accent             string    `json:"accent" bson:"accent"`
	Subtitle           string    `json:"subtitle" bson:"subtitle"`
	Description        string    `json:"description" bson:"description"`
	TitleSize          float64   `json:"titleSize,omitempty" bson:"titleSize,omitempty"`
	DescriptionSize    float64   `json:"descriptionSize,omitempty" bson:"descriptionSize,omitempty"`
	BackgroundImageKey string    `json:"backgroundImage,omitempty" bson:"backgroundImageKey,omitempty"`
	OverlayOpacity     int       `json:"overlayOpacity" bson:"overlayOpacity"`
	BackgroundBlur     int       `json:"backgroundBlur" bson:"backgroundBlur"`
	ShowLogo           bool      `json:"showLogo" bson:"showLogo"`
	ShowTitle          bool      `json:"showTitle" bson:"showTitle"`
	ShowDescription    bool      `json:"showDescription" bson:"showDescription"`
	ShowGetQuote       bool      `json:"showGetQuote" bson:"showGetQuote"`
	ShowViewWork       bool      `json:"showViewWork" bson:"showViewWork"`
	Stats              []Stat    `json:"stats,omitempty" bson:"stats,omitempty"`
	CreatedAt          time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt" bson:"updatedAt"`
}

type Stat struct {
	Number string `json:"number" bson:"number"`
	Unit   string `json:"unit,omitempty" bson:"unit,omitempty"`
	Label  string `json:"label" bson:"label"`
}
