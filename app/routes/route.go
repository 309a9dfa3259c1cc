package routes

import (
	"net/http"

	"github.com/crumbandco/bakeshop/app/catalog"
	"github.com/crumbandco/bakeshop/app/configs"
	"github.com/crumbandco/bakeshop/app/handlers"
	"github.com/crumbandco/bakeshop/app/middlewares"
	"github.com/crumbandco/bakeshop/app/services"
	"github.com/crumbandco/bakeshop/app/stores"
	"github.com/crumbandco/bakeshop/app/utils/renderer"
	"github.com/crumbandco/bakeshop/app/utils/sessions"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Deps carries everything the router needs; main wires it up once.
type Deps struct {
	Registry     *stores.Registry
	Catalog      *catalog.Catalog
	AuthSvc      *services.AuthService
	CheckoutSvc  *services.CheckoutService
	CustomizeSvc *services.CustomizeService
	VisitorStore sessions.VisitorStore
	SessionKeys  *configs.SessionKeys
	Log          *zap.SugaredLogger
}

func NewRouter(deps Deps) http.Handler {
	r := renderer.New()
	validate := validator.New()

	catalogH := handlers.NewCatalogHandler(r, deps.Registry, deps.Catalog, deps.Log)
	cartH := handlers.NewCartHandler(r, deps.Registry, deps.Catalog, validate, deps.Log)
	wishlistH := handlers.NewWishlistHandler(r, deps.Registry, deps.Catalog, deps.Log)
	checkoutH := handlers.NewCheckoutHandler(r, deps.Registry, deps.CheckoutSvc, deps.Log)
	customizeH := handlers.NewCustomizeHandler(r, deps.Registry, deps.CustomizeSvc, deps.Log)
	authH := handlers.NewAuthHandler(r, deps.Registry, deps.AuthSvc, validate, deps.Log)
	prefsH := handlers.NewPreferenceHandler(r, deps.Registry, deps.Log)
	visitorH := handlers.NewVisitorHandler(r, deps.Registry, deps.VisitorStore, deps.Log)

	router := mux.NewRouter()
	router.Use(middlewares.LoggingMiddleware(deps.Log))
	router.Use(middlewares.VisitorMiddleware(deps.VisitorStore, deps.Log))

	router.HandleFunc("/", catalogH.Home).Methods("GET")
	router.HandleFunc("/products", catalogH.ListProducts).Methods("GET")
	router.HandleFunc("/products/{id}", catalogH.GetProduct).Methods("GET")
	router.HandleFunc("/customize/options", catalogH.CustomizationOptions).Methods("GET")
	router.HandleFunc("/checkout/options", catalogH.CheckoutOptions).Methods("GET")

	router.HandleFunc("/cart", cartH.GetCart).Methods("GET")
	router.HandleFunc("/cart/totals", cartH.Totals).Methods("GET")
	router.HandleFunc("/cart/items", cartH.AddLine).Methods("POST")
	router.HandleFunc("/cart/items/{productID}", cartH.SetQuantity).Methods("PUT")
	router.HandleFunc("/cart/items/{productID}", cartH.RemoveLine).Methods("DELETE")
	router.HandleFunc("/cart/clear", cartH.Clear).Methods("POST")
	router.HandleFunc("/cart/toggle", cartH.Toggle).Methods("POST")

	router.HandleFunc("/wishlist", wishlistH.GetWishlist).Methods("GET")
	router.HandleFunc("/wishlist/items/{productID}", wishlistH.Add).Methods("POST")
	router.HandleFunc("/wishlist/items/{productID}", wishlistH.Remove).Methods("DELETE")
	router.HandleFunc("/wishlist/clear", wishlistH.Clear).Methods("POST")
	router.HandleFunc("/wishlist/toggle", wishlistH.Toggle).Methods("POST")

	router.HandleFunc("/checkout", checkoutH.Get).Methods("GET")
	router.HandleFunc("/checkout/start", checkoutH.Start).Methods("POST")
	router.HandleFunc("/checkout/delivery", checkoutH.UpdateDelivery).Methods("PUT")
	router.HandleFunc("/checkout/payment", checkoutH.SetPayment).Methods("PUT")
	router.HandleFunc("/checkout/next", checkoutH.Next).Methods("POST")
	router.HandleFunc("/checkout/back", checkoutH.Back).Methods("POST")
	router.HandleFunc("/checkout/submit", checkoutH.Submit).Methods("POST")
	router.HandleFunc("/checkout/cancel", checkoutH.Cancel).Methods("POST")

	router.HandleFunc("/customize", customizeH.Get).Methods("GET")
	router.HandleFunc("/customize/start", customizeH.Start).Methods("POST")
	router.HandleFunc("/customize/select", customizeH.Select).Methods("POST")
	router.HandleFunc("/customize/details", customizeH.UpdateDetails).Methods("PUT")
	router.HandleFunc("/customize/next", customizeH.Next).Methods("POST")
	router.HandleFunc("/customize/back", customizeH.Back).Methods("POST")
	router.HandleFunc("/customize/finish", customizeH.Finish).Methods("POST")
	router.HandleFunc("/customize/cancel", customizeH.Cancel).Methods("POST")

	router.HandleFunc("/auth/session", authH.GetSession).Methods("GET")
	router.HandleFunc("/auth/modal/open", authH.OpenModal).Methods("POST")
	router.HandleFunc("/auth/modal/close", authH.CloseModal).Methods("POST")
	router.HandleFunc("/auth/modal/view", authH.SetModalView).Methods("POST")
	router.HandleFunc("/auth/otp/request", authH.RequestOTP).Methods("POST")
	router.HandleFunc("/auth/login/otp", authH.LoginWithOTP).Methods("POST")
	router.HandleFunc("/auth/login/password", authH.LoginWithPassword).Methods("POST")
	router.HandleFunc("/auth/signup", authH.Signup).Methods("POST")
	router.HandleFunc("/auth/reset", authH.ResetPassword).Methods("POST")
	router.HandleFunc("/auth/logout", authH.Logout).Methods("POST")

	router.HandleFunc("/profile", authH.UpdateProfile).Methods("PUT")
	router.HandleFunc("/profile/addresses", authH.AddAddress).Methods("POST")
	router.HandleFunc("/profile/addresses/{id}", authH.UpdateAddress).Methods("PUT")
	router.HandleFunc("/profile/addresses/{id}", authH.RemoveAddress).Methods("DELETE")
	router.HandleFunc("/profile/orders", authH.GetOrders).Methods("GET")

	router.HandleFunc("/visitor/reset", visitorH.Reset).Methods("POST")

	router.HandleFunc("/preferences", prefsH.Get).Methods("GET")
	router.HandleFunc("/preferences/city", prefsH.SetCity).Methods("PUT")
	router.HandleFunc("/preferences/language", prefsH.SetLanguage).Methods("PUT")
	router.HandleFunc("/preferences/visited", prefsH.MarkVisited).Methods("POST")

	if deps.SessionKeys != nil {
		protect := csrf.Protect(deps.SessionKeys.AuthKey,
			csrf.Secure(false),
			csrf.Path("/"),
		)
		return protect(router)
	}
	return router
}
