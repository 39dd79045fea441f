package router

import (
	"net/http"
	"strings"

	"adire-boutique/app/controller"
)

type Controllers struct {
	Product  *controller.ProductController
	Cart     *controller.CartController
	Wishlist *controller.WishlistController
	Flow     *controller.FlowController
	Booking  *controller.BookingController
	Order    *controller.OrderController
	Bespoke  *controller.BespokeController
	AsoEbi   *controller.AsoEbiController
	Quiz     *controller.QuizController
	Finance  *controller.FinanceTransactionController
	Lookbook *controller.LookbookController
	Image    *controller.ImageController
	Pricing  *controller.PricingController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func SetupRoutes(controllers *Controllers) {
	// Ping endpoint
	http.HandleFunc("/ping", pingHandler)

	// Static assets (lookbook logo etc.)
	http.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))

	// Storefront catalogue
	http.HandleFunc("/products", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			controllers.Product.FilterProducts(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})
	http.HandleFunc("/products/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			controllers.Product.GetProduct(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Cart routes (session from X-Session-ID header)
	http.HandleFunc("/cart", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			controllers.Cart.GetCart(w, r)
		case http.MethodDelete:
			controllers.Cart.ClearCart(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})
	http.HandleFunc("/cart/items", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			controllers.Cart.AddToCart(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})
	http.HandleFunc("/cart/items/", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPut, http.MethodPatch:
			controllers.Cart.UpdateCartQuantity(w, r)
		case http.MethodDelete:
			controllers.Cart.RemoveFromCart(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})
	http.HandleFunc("/cart/checkout", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			controllers.Cart.Checkout(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Wishlist routes
	http.HandleFunc("/wishlist", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			controllers.Wishlist.GetWishlist(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})
	http.HandleFunc("/wishlist/items", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			controllers.Wishlist.AddToWishlist(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})
	http.HandleFunc("/wishlist/items/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			controllers.Wishlist.RemoveFromWishlist(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})
	http.HandleFunc("/wishlist/toggle", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			controllers.Wishlist.ToggleWishlist(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Wizard flow routes
	http.HandleFunc("/flows", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			controllers.Flow.ListFlows(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})
	http.HandleFunc("/flows/", func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimPrefix(r.URL.Path, "/flows/")
		if strings.HasPrefix(path, "sessions/") {
			controllers.Flow.HandleSession(w, r)
			return
		}
		if strings.HasSuffix(path, "/sessions") && r.Method == http.MethodPost {
			controllers.Flow.CreateSession(w, r)
			return
		}
		http.Error(w, "Not found", http.StatusNotFound)
	})

	// Style quiz recommendations
	http.HandleFunc("/quiz/recommendations", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			controllers.Quiz.Recommend(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Aso-ebi group quote preview
	http.HandleFunc("/asoebi/quote", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			controllers.Pricing.QuoteGroup(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Optimized product images (storefront and lookbook load from here)
	http.HandleFunc("/images/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			controllers.Image.GetOptimizedImage(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Admin: catalogue management
	http.HandleFunc("/admin/products", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			controllers.Product.CreateProduct(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})
	http.HandleFunc("/admin/products/", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPut:
			controllers.Product.UpdateProduct(w, r)
		case http.MethodDelete:
			controllers.Product.DeactivateProduct(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Admin: orders
	http.HandleFunc("/admin/orders", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			controllers.Order.ListOrders(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})
	http.HandleFunc("/admin/orders/", func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/status") && (r.Method == http.MethodPatch || r.Method == http.MethodPut) {
			controllers.Order.UpdateOrderStatus(w, r)
			return
		}
		if r.Method == http.MethodGet {
			controllers.Order.GetOrder(w, r)
			return
		}
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	})

	// Admin: bookings
	http.HandleFunc("/admin/bookings", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			controllers.Booking.ListBookings(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})
	http.HandleFunc("/admin/bookings/", func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/status") && (r.Method == http.MethodPatch || r.Method == http.MethodPut) {
			controllers.Booking.UpdateBookingStatus(w, r)
			return
		}
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	})

	// Admin: bespoke tailoring requests
	http.HandleFunc("/admin/bespoke-orders", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			controllers.Bespoke.ListBespokeOrders(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})
	http.HandleFunc("/admin/bespoke-orders/", func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/status") && (r.Method == http.MethodPatch || r.Method == http.MethodPut) {
			controllers.Bespoke.UpdateBespokeStatus(w, r)
			return
		}
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	})

	// Admin: aso-ebi group requests
	http.HandleFunc("/admin/asoebi-requests", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			controllers.AsoEbi.ListAsoEbiRequests(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})
	http.HandleFunc("/admin/asoebi-requests/", func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/status") && (r.Method == http.MethodPatch || r.Method == http.MethodPut) {
			controllers.AsoEbi.UpdateAsoEbiStatus(w, r)
			return
		}
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	})

	// Admin: quiz submissions
	http.HandleFunc("/admin/quiz-submissions", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			controllers.Quiz.ListSubmissions(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Admin: finance ledger
	http.HandleFunc("/admin/finance/transactions", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			controllers.Finance.CreateTransaction(w, r)
		case http.MethodGet:
			controllers.Finance.ListTransactions(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Admin: lookbook generation
	http.HandleFunc("/admin/lookbook/items", controllers.Lookbook.GetLookbookItems)
	http.HandleFunc("/admin/lookbook/render", controllers.Lookbook.RenderLookbook)
	http.HandleFunc("/admin/lookbook/pdf", controllers.Lookbook.DownloadPDF)
	http.HandleFunc("/admin/lookbook/png", controllers.Lookbook.DownloadPNG)

	// Admin: Drive image sync
	http.HandleFunc("/admin/images/sync", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			controllers.Image.SyncImages(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})
}
