package http

import (
	"net/http"

	"hoteldesk-backoffice/internal/security"
	"hoteldesk-backoffice/internal/service"

	"github.com/gorilla/mux"
)

// Services bundles everything the API surface needs.
type Services struct {
	Hotel     service.HotelService
	Ledger    service.LedgerService
	Operation service.OperationService
	Incasso   service.IncassoService
	Stay      service.StayService
	Folio     service.FolioService
}

// NewRouter builds the full route table. Everything under /api/v1 requires a
// bearer token; the actor behind it is what ends up in the audit columns.
func NewRouter(svcs Services, tokens security.TokenManager) *mux.Router {
	hotels := NewHotelHandler(svcs.Hotel)
	ledger := NewLedgerHandler(svcs.Ledger)
	operations := NewOperationHandler(svcs.Operation)
	incassos := NewIncassoHandler(svcs.Incasso)
	stays := NewStayHandler(svcs.Stay)
	folios := NewFolioHandler(svcs.Folio)

	r := mux.NewRouter()
	r.Use(RequestIDMiddleware)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(AuthMiddleware(tokens))

	api.HandleFunc("/hotels", hotels.Create).Methods(http.MethodPost)
	api.HandleFunc("/hotels", hotels.List).Methods(http.MethodGet)
	api.HandleFunc("/hotels/{id:[0-9]+}", hotels.Get).Methods(http.MethodGet)

	api.HandleFunc("/hotels/{id:[0-9]+}/register", ledger.GetRegister).Methods(http.MethodGet)
	api.HandleFunc("/hotels/{id:[0-9]+}/register/reconcile", ledger.Reconcile).Methods(http.MethodPost)
	api.HandleFunc("/hotels/{id:[0-9]+}/movements", ledger.ListMovements).Methods(http.MethodGet)
	api.HandleFunc("/hotels/{id:[0-9]+}/movements", ledger.CreateMovement).Methods(http.MethodPost)
	api.HandleFunc("/hotels/{id:[0-9]+}/transfers", ledger.CreateTransfer).Methods(http.MethodPost)
	api.HandleFunc("/hotels/{id:[0-9]+}/transfers", ledger.ListTransfers).Methods(http.MethodGet)

	api.HandleFunc("/hotels/{id:[0-9]+}/operations", operations.Record).Methods(http.MethodPost)
	api.HandleFunc("/hotels/{id:[0-9]+}/operations", operations.List).Methods(http.MethodGet)
	api.HandleFunc("/operations/{id:[0-9]+}", operations.Get).Methods(http.MethodGet)
	api.HandleFunc("/operations/{id:[0-9]+}/void", operations.Void).Methods(http.MethodPost)
	api.HandleFunc("/articles", operations.ListArticles).Methods(http.MethodGet)

	api.HandleFunc("/hotels/{id:[0-9]+}/incassos", incassos.Create).Methods(http.MethodPost)
	api.HandleFunc("/hotels/{id:[0-9]+}/incassos", incassos.List).Methods(http.MethodGet)

	api.HandleFunc("/hotels/{id:[0-9]+}/stays", stays.CheckIn).Methods(http.MethodPost)
	api.HandleFunc("/hotels/{id:[0-9]+}/stays", stays.List).Methods(http.MethodGet)
	api.HandleFunc("/stays/{id:[0-9]+}", stays.Get).Methods(http.MethodGet)
	api.HandleFunc("/stays/{id:[0-9]+}/checkout", stays.CheckOut).Methods(http.MethodPost)
	api.HandleFunc("/stays/{id:[0-9]+}/cancel", stays.Cancel).Methods(http.MethodPost)

	api.HandleFunc("/hotels/{id:[0-9]+}/folios", folios.List).Methods(http.MethodGet)
	api.HandleFunc("/hotels/{id:[0-9]+}/folios/payments", folios.AddPayment).Methods(http.MethodPost)
	api.HandleFunc("/folios/{id:[0-9]+}", folios.Get).Methods(http.MethodGet)

	return r
}
