package routes

const (
	// Health
	Health = "/health"

	// Content collections
	Blogs              = "/api/blogs"
	BlogByID           = "/api/blogs/{id}"
	Developers         = "/api/developers"
	DeveloperByID      = "/api/developers/{id}"
	MainCategories     = "/api/main-categories"
	MainCategoryByID   = "/api/main-categories/{id}"
	SubCategories      = "/api/sub-categories"
	SubCategoryByID    = "/api/sub-categories/{id}"
	HeroSlides         = "/api/hero-slides"
	HeroSlideByID      = "/api/hero-slides/{id}"
	Industries         = "/api/industries"
	IndustryByID       = "/api/industries/{id}"
	Locations          = "/api/locations"
	LocationByID       = "/api/locations/{id}"
	Orders             = "/api/orders"
	OrderByID          = "/api/orders/{id}"
	Products           = "/api/products"
	ProductByID        = "/api/products/{id}"
	Projects           = "/api/projects"
	ProjectByID        = "/api/projects/{id}"
	Testimonials       = "/api/testimonials"
	TestimonialByID    = "/api/testimonials/{id}"

	// Singleton site settings
	Settings = "/api/settings"

	// Media upload bridge
	Upload = "/api/upload"
)
