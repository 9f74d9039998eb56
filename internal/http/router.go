package http

import (
	"net/http"

	"estate-backend/internal/handlers"
	"estate-backend/internal/middleware"
	"estate-backend/internal/models"
	"estate-backend/pkg/utils"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(
	authHandler *handlers.AuthHandler,
	propertyHandler *handlers.PropertyHandler,
	applicationHandler *handlers.ApplicationHandler,
	leaseHandler *handlers.LeaseHandler,
	paymentHandler *handlers.PaymentHandler,
	tenantHandler *handlers.TenantHandler,
	managerHandler *handlers.ManagerHandler,
	notificationHandler *handlers.NotificationHandler,
	healthHandler *handlers.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		utils.Error(w, http.StatusNotFound, "Route not found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		utils.Error(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	manager := authMiddleware.RequireRole(models.RoleManager)
	tenant := authMiddleware.RequireRole(models.RoleTenant)

	// Public routes
	r.HandleFunc("/auth/signup", authHandler.Signup).Methods("POST")
	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/health", healthHandler.ReadinessHealth).Methods("GET")
	r.HandleFunc("/health/live", healthHandler.BasicHealth).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Properties
	propertiesAPI := r.PathPrefix("/properties").Subrouter()
	propertiesAPI.Use(authMiddleware.Authenticate)
	propertiesAPI.HandleFunc("", propertyHandler.List).Methods("GET")
	propertiesAPI.HandleFunc("", manager(http.HandlerFunc(propertyHandler.Create)).ServeHTTP).Methods("POST")
	propertiesAPI.HandleFunc("/{id}", propertyHandler.Get).Methods("GET")
	propertiesAPI.HandleFunc("/{id}", manager(http.HandlerFunc(propertyHandler.Update)).ServeHTTP).Methods("PUT")
	propertiesAPI.HandleFunc("/{id}", manager(http.HandlerFunc(propertyHandler.Delete)).ServeHTTP).Methods("DELETE")
	propertiesAPI.HandleFunc("/{id}/leases", propertyHandler.ListLeases).Methods("GET")

	// Applications
	applicationsAPI := r.PathPrefix("/applications").Subrouter()
	applicationsAPI.Use(authMiddleware.Authenticate)
	applicationsAPI.HandleFunc("", tenant(http.HandlerFunc(applicationHandler.Create)).ServeHTTP).Methods("POST")
	applicationsAPI.HandleFunc("", applicationHandler.List).Methods("GET")
	applicationsAPI.HandleFunc("/{id}/status", manager(http.HandlerFunc(applicationHandler.UpdateStatus)).ServeHTTP).Methods("PUT")

	// Leases
	leasesAPI := r.PathPrefix("/leases").Subrouter()
	leasesAPI.Use(authMiddleware.Authenticate)
	leasesAPI.HandleFunc("", leaseHandler.List).Methods("GET")
	leasesAPI.HandleFunc("/{id}/payments", leaseHandler.ListPayments).Methods("GET")
	leasesAPI.HandleFunc("/{id}/agreement", leaseHandler.Agreement).Methods("GET")

	// Payments and wallet
	paymentsAPI := r.PathPrefix("/payments").Subrouter()
	paymentsAPI.Use(authMiddleware.Authenticate)
	paymentsAPI.HandleFunc("", tenant(http.HandlerFunc(paymentHandler.CreatePayment)).ServeHTTP).Methods("POST")
	paymentsAPI.HandleFunc("/deposit-request", tenant(http.HandlerFunc(paymentHandler.RequestDeposit)).ServeHTTP).Methods("POST")
	paymentsAPI.HandleFunc("/tenant/{id}", paymentHandler.ListByTenant).Methods("GET")
	paymentsAPI.HandleFunc("/{id}/receipt", paymentHandler.Receipt).Methods("GET")

	depositsAPI := r.PathPrefix("/deposits").Subrouter()
	depositsAPI.Use(authMiddleware.Authenticate)
	depositsAPI.HandleFunc("/pending", manager(http.HandlerFunc(paymentHandler.ListPendingDeposits)).ServeHTTP).Methods("GET")
	depositsAPI.HandleFunc("/{id}/approve", manager(http.HandlerFunc(paymentHandler.ApproveDeposit)).ServeHTTP).Methods("POST")
	depositsAPI.HandleFunc("/{id}/decline", manager(http.HandlerFunc(paymentHandler.DeclineDeposit)).ServeHTTP).Methods("POST")

	r.Handle("/withdraw", authMiddleware.Authenticate(tenant(http.HandlerFunc(paymentHandler.Withdraw)))).Methods("POST")

	// Tenants
	tenantsAPI := r.PathPrefix("/tenants").Subrouter()
	tenantsAPI.Use(authMiddleware.Authenticate)
	tenantsAPI.HandleFunc("/{id}", tenantHandler.Get).Methods("GET")
	tenantsAPI.HandleFunc("/{id}", tenant(http.HandlerFunc(tenantHandler.Update)).ServeHTTP).Methods("PUT")
	tenantsAPI.HandleFunc("/{id}/fund", manager(http.HandlerFunc(paymentHandler.Fund)).ServeHTTP).Methods("POST")
	tenantsAPI.HandleFunc("/{id}/current-residences", tenantHandler.ListResidences).Methods("GET")
	tenantsAPI.HandleFunc("/{id}/favorites", tenantHandler.ListFavorites).Methods("GET")
	tenantsAPI.HandleFunc("/{id}/favorites/{propertyId}", tenant(http.HandlerFunc(tenantHandler.AddFavorite)).ServeHTTP).Methods("POST")
	tenantsAPI.HandleFunc("/{id}/favorites/{propertyId}", tenant(http.HandlerFunc(tenantHandler.RemoveFavorite)).ServeHTTP).Methods("DELETE")

	// Managers
	managersAPI := r.PathPrefix("/managers").Subrouter()
	managersAPI.Use(authMiddleware.Authenticate)
	managersAPI.HandleFunc("/{id}", manager(http.HandlerFunc(managerHandler.Get)).ServeHTTP).Methods("GET")
	managersAPI.HandleFunc("/{id}", manager(http.HandlerFunc(managerHandler.Update)).ServeHTTP).Methods("PUT")
	managersAPI.HandleFunc("/{id}/properties", manager(http.HandlerFunc(managerHandler.ListProperties)).ServeHTTP).Methods("GET")

	// Notifications
	notificationsAPI := r.PathPrefix("/notifications").Subrouter()
	notificationsAPI.Use(authMiddleware.Authenticate)
	notificationsAPI.HandleFunc("/email/all", manager(http.HandlerFunc(notificationHandler.Broadcast)).ServeHTTP).Methods("POST")
	notificationsAPI.HandleFunc("/email/user", manager(http.HandlerFunc(notificationHandler.SendToUser)).ServeHTTP).Methods("POST")
	notificationsAPI.HandleFunc("/messages", notificationHandler.ListMessages).Methods("GET")
	notificationsAPI.HandleFunc("/alerts", notificationHandler.ListAlerts).Methods("GET")

	return r
}
