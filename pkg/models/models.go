package models

// Domain models matching the database schema in db/migrations. All
// timestamps are unix milliseconds; optional timestamps are pointers.

// Project categories accepted by the store.
const (
	CategoryResidential    = "residential"
	CategoryCommercial     = "commercial"
	CategoryInfrastructure = "infrastructure"
	CategoryIndustrial     = "industrial"
)

type Project struct {
	ID               string   `json:"id" db:"id"`
	Title            string   `json:"title" db:"title"`
	Slug             string   `json:"slug" db:"slug"`
	Client           string   `json:"client" db:"client"`
	Description      string   `json:"description" db:"description"`
	ShortDescription string   `json:"short_description" db:"short_description"`
	Year             int      `json:"year" db:"year"`
	Budget           *string  `json:"budget,omitempty" db:"budget"`
	Area             *string  `json:"area,omitempty" db:"area"`
	Location         string   `json:"location" db:"location"`
	Category         string   `json:"category" db:"category"`
	Tags             []string `json:"tags" db:"tags"`
	FeaturedImage    string   `json:"featured_image" db:"featured_image"`
	GalleryImages    []string `json:"gallery_images" db:"gallery_images"`
	Published        bool     `json:"published" db:"published"`
	Featured         bool     `json:"featured" db:"featured"`
	Created          int64    `json:"created" db:"created"`
	Updated          int64    `json:"updated" db:"updated"`
}

type Service struct {
	ID               string `json:"id" db:"id"`
	Title            string `json:"title" db:"title"`
	Slug             string `json:"slug" db:"slug"`
	Description      string `json:"description" db:"description"`
	ShortDescription string `json:"short_description" db:"short_description"`
	Icon             string `json:"icon" db:"icon"`
	Order            int    `json:"order" db:"order"`
	Published        bool   `json:"published" db:"published"`
	Created          int64  `json:"created" db:"created"`
}

type TeamMember struct {
	ID          string  `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Position    string  `json:"position" db:"position"`
	Bio         string  `json:"bio" db:"bio"`
	Email       *string `json:"email,omitempty" db:"email"`
	PhotoURL    *string `json:"photo_url,omitempty" db:"photo_url"`
	LinkedInURL *string `json:"linkedin_url,omitempty" db:"linkedin_url"`
	Order       int     `json:"order" db:"order"`
	Published   bool    `json:"published" db:"published"`
	Created     int64   `json:"created" db:"created"`
}

type Testimonial struct {
	ID             string  `json:"id" db:"id"`
	ClientName     string  `json:"client_name" db:"client_name"`
	ClientPosition string  `json:"client_position" db:"client_position"`
	ClientCompany  string  `json:"client_company" db:"client_company"`
	Content        string  `json:"content" db:"content"`
	PhotoURL       *string `json:"photo_url,omitempty" db:"photo_url"`
	Rating         int     `json:"rating" db:"rating"`
	Published      bool    `json:"published" db:"published"`
	Created        int64   `json:"created" db:"created"`
}

// Blog post categories accepted by the store.
const (
	BlogCategoryNews     = "news"
	BlogCategoryInsights = "insights"
	BlogCategoryProjects = "projects"
)

type BlogPost struct {
	ID            string   `json:"id" db:"id"`
	Title         string   `json:"title" db:"title"`
	Slug          string   `json:"slug" db:"slug"`
	Excerpt       string   `json:"excerpt" db:"excerpt"`
	Content       string   `json:"content" db:"content"`
	Author        string   `json:"author" db:"author"`
	FeaturedImage *string  `json:"featured_image,omitempty" db:"featured_image"`
	Category      string   `json:"category" db:"category"`
	Tags          []string `json:"tags" db:"tags"`
	Published     bool     `json:"published" db:"published"`
	PublishedAt   *int64   `json:"published_at,omitempty" db:"published_at"`
	Created       int64    `json:"created" db:"created"`
	Updated       int64    `json:"updated" db:"updated"`
}

type Client struct {
	ID        string  `json:"id" db:"id"`
	Name      string  `json:"name" db:"name"`
	LogoURL   string  `json:"logo_url" db:"logo_url"`
	Website   *string `json:"website,omitempty" db:"website"`
	Order     int     `json:"order" db:"order"`
	Published bool    `json:"published" db:"published"`
	Created   int64   `json:"created" db:"created"`
}

// Employment types accepted by the store.
const (
	CareerFullTime = "full-time"
	CareerPartTime = "part-time"
	CareerContract = "contract"
)

type Career struct {
	ID           string   `json:"id" db:"id"`
	Title        string   `json:"title" db:"title"`
	Slug         string   `json:"slug" db:"slug"`
	Department   string   `json:"department" db:"department"`
	Location     string   `json:"location" db:"location"`
	Type         string   `json:"type" db:"type"`
	Description  string   `json:"description" db:"description"`
	Requirements []string `json:"requirements" db:"requirements"`
	Benefits     []string `json:"benefits" db:"benefits"`
	Published    bool     `json:"published" db:"published"`
	Created      int64    `json:"created" db:"created"`
	Updated      int64    `json:"updated" db:"updated"`
}

// Lead statuses. This system only ever writes LeadStatusNew; the rest of
// the lifecycle belongs to staff tooling.
const (
	LeadStatusNew       = "new"
	LeadStatusContacted = "contacted"
	LeadStatusQualified = "qualified"
	LeadStatusConverted = "converted"
	LeadStatusClosed    = "closed"
)

// LeadSourceWebsite marks leads created by the public contact form.
const LeadSourceWebsite = "website"

type Lead struct {
	ID          string  `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Email       string  `json:"email" db:"email"`
	Phone       *string `json:"phone,omitempty" db:"phone"`
	Company     *string `json:"company,omitempty" db:"company"`
	Message     string  `json:"message" db:"message"`
	RFPFileURL  *string `json:"rfp_file_url,omitempty" db:"rfp_file_url"`
	RFPFileName *string `json:"rfp_file_name,omitempty" db:"rfp_file_name"`
	Status      string  `json:"status" db:"status"`
	Notes       *string `json:"notes,omitempty" db:"notes"`
	Source      string  `json:"source" db:"source"`
	Created     int64   `json:"created" db:"created"`
	Updated     int64   `json:"updated" db:"updated"`
}
