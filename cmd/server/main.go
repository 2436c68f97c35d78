package main

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/app"
	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/config"
	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/controllers"
	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/repositories"
	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/routes"
	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/services"
	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/utils"
)

func main() {
	utils.InitLogger(config.AppName)

	// 1) Config
	cfg := config.LoadConfig()

	// 2) Core application (store connection)
	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.Fatal("Failed to initialize ", config.AppName, ": ", err)
	}
	defer application.Close()

	// 3) Repositories
	blogRepo := repositories.NewBlogRepository(application.DB)
	developerRepo := repositories.NewDeveloperRepository(application.DB)
	mainCatRepo := repositories.NewMainCategoryRepository(application.DB)
	subCatRepo := repositories.NewSubCategoryRepository(application.DB)
	heroSlideRepo := repositories.NewHeroSlideRepository(application.DB)
	industryRepo := repositories.NewIndustryRepository(application.DB)
	locationRepo := repositories.NewLocationRepository(application.DB)
	orderRepo := repositories.NewOrderRepository(application.DB)
	productRepo := repositories.NewProductRepository(application.DB)
	projectRepo := repositories.NewProjectRepository(application.DB)
	testimonialRepo := repositories.NewTestimonialRepository(application.DB)
	settingsRepo := repositories.NewSettingsRepository(application.DB)

	// 4) Services
	locationSvc := services.NewLocationService(locationRepo, projectRepo)

	var notifier services.EnquiryNotifier
	if cfg.SendgridAPIKey != "" {
		notifier = services.NewEmailService(cfg.SendgridAPIKey, cfg.SendgridFromEmail, cfg.SendgridNotifyEmail)
	} else {
		utils.Logger.Warn("SENDGRID_API_KEY not set; enquiry notifications disabled")
	}
	orderSvc := services.NewOrderService(orderRepo, notifier)

	var uploadSvc *services.UploadService
	if cfg.CloudinaryURL != "" {
		uploader, err := services.NewCloudinaryUploader(cfg.CloudinaryURL, cfg.CloudinaryFolder)
		if err != nil {
			utils.Logger.Fatal("Failed to initialize media uploader: ", err)
		}
		uploadSvc = services.NewUploadService(uploader)
	}

	// 5) Controllers
	healthCtrl := controllers.NewHealthController(application)
	blogCtrl := controllers.NewBlogController(blogRepo)
	developerCtrl := controllers.NewDeveloperController(developerRepo)
	categoryCtrl := controllers.NewCategoryController(mainCatRepo, subCatRepo)
	heroSlideCtrl := controllers.NewHeroSlideController(heroSlideRepo)
	industryCtrl := controllers.NewIndustryController(industryRepo)
	locationCtrl := controllers.NewLocationController(locationSvc, locationRepo)
	orderCtrl := controllers.NewOrderController(orderSvc, orderRepo)
	productCtrl := controllers.NewProductController(productRepo)
	projectCtrl := controllers.NewProjectController(projectRepo)
	testimonialCtrl := controllers.NewTestimonialController(testimonialRepo)
	settingsCtrl := controllers.NewSettingsController(settingsRepo)

	// 6) Router
	router := mux.NewRouter()

	router.HandleFunc(routes.Health, healthCtrl.HealthCheckHandler).Methods(http.MethodGet)

	registerCrud(router, routes.Blogs, routes.BlogByID,
		blogCtrl.ListBlogs, blogCtrl.GetBlog, blogCtrl.CreateBlog, blogCtrl.UpdateBlog, blogCtrl.DeleteBlog)
	registerCrud(router, routes.Developers, routes.DeveloperByID,
		developerCtrl.ListDevelopers, developerCtrl.GetDeveloper, developerCtrl.CreateDeveloper, developerCtrl.UpdateDeveloper, developerCtrl.DeleteDeveloper)
	registerCrud(router, routes.MainCategories, routes.MainCategoryByID,
		categoryCtrl.ListMainCategories, categoryCtrl.GetMainCategory, categoryCtrl.CreateMainCategory, categoryCtrl.UpdateMainCategory, categoryCtrl.DeleteMainCategory)
	registerCrud(router, routes.SubCategories, routes.SubCategoryByID,
		categoryCtrl.ListSubCategories, categoryCtrl.GetSubCategory, categoryCtrl.CreateSubCategory, categoryCtrl.UpdateSubCategory, categoryCtrl.DeleteSubCategory)
	registerCrud(router, routes.HeroSlides, routes.HeroSlideByID,
		heroSlideCtrl.ListHeroSlides, heroSlideCtrl.GetHeroSlide, heroSlideCtrl.CreateHeroSlide, heroSlideCtrl.UpdateHeroSlide, heroSlideCtrl.DeleteHeroSlide)
	registerCrud(router, routes.Industries, routes.IndustryByID,
		industryCtrl.ListIndustries, industryCtrl.GetIndustry, industryCtrl.CreateIndustry, industryCtrl.UpdateIndustry, industryCtrl.DeleteIndustry)
	registerCrud(router, routes.Locations, routes.LocationByID,
		locationCtrl.ListLocations, locationCtrl.GetLocation, locationCtrl.CreateLocation, locationCtrl.UpdateLocation, locationCtrl.DeleteLocation)
	registerCrud(router, routes.Orders, routes.OrderByID,
		orderCtrl.ListOrders, orderCtrl.GetOrder, orderCtrl.CreateOrder, orderCtrl.UpdateOrder, orderCtrl.DeleteOrder)
	registerCrud(router, routes.Products, routes.ProductByID,
		productCtrl.ListProducts, productCtrl.GetProduct, productCtrl.CreateProduct, productCtrl.UpdateProduct, productCtrl.DeleteProduct)
	registerCrud(router, routes.Projects, routes.ProjectByID,
		projectCtrl.ListProjects, projectCtrl.GetProject, projectCtrl.CreateProject, projectCtrl.UpdateProject, projectCtrl.DeleteProject)
	registerCrud(router, routes.Testimonials, routes.TestimonialByID,
		testimonialCtrl.ListTestimonials, testimonialCtrl.GetTestimonial, testimonialCtrl.CreateTestimonial, testimonialCtrl.UpdateTestimonial, testimonialCtrl.DeleteTestimonial)

	router.HandleFunc(routes.Settings, settingsCtrl.GetSettings).Methods(http.MethodGet)
	router.HandleFunc(routes.Settings, settingsCtrl.UpdateSettings).Methods(http.MethodPut)

	if uploadSvc != nil {
		uploadCtrl := controllers.NewUploadController(uploadSvc)
		router.HandleFunc(routes.Upload, uploadCtrl.UploadFile).Methods(http.MethodPost)
	}

	// 7) CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.AppURL},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	})

	utils.Logger.Infof("Starting %s on :%s", cfg.AppName, cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, c.Handler(router)); err != nil {
		utils.Logger.Fatal("Server error:", err)
	}
}

// registerCrud binds the five uniform handlers of one collection.
func registerCrud(
	router *mux.Router,
	basePath, idPath string,
	list, get, create, update, del http.HandlerFunc,
) {
	router.HandleFunc(basePath, list).Methods(http.MethodGet)
	router.HandleFunc(idPath, get).Methods(http.MethodGet)
	router.HandleFunc(basePath, create).Methods(http.MethodPost)
	router.HandleFunc(idPath, update).Methods(http.MethodPut)
	router.HandleFunc(idPath, del).Methods(http.MethodDelete)
}
