package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"github.com/Nur-allhi/metalmetrica/internal/auth"
	"github.com/Nur-allhi/metalmetrica/internal/item"
	"github.com/Nur-allhi/metalmetrica/internal/org"
	"github.com/Nur-allhi/metalmetrica/internal/project"
	"github.com/Nur-allhi/metalmetrica/internal/repo"
	"github.com/Nur-allhi/metalmetrica/internal/report"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router, db *sql.DB) {
	store := repo.NewPostgresDB(db)
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file, using environment")
	}
	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		log.Fatal("TOKEN_KEY environment variable is not set")
	}

	authEnv := &auth.Authenv{JWTkey: []byte(tokenKey), Repo: store}

	limiter := auth.NewIPRateLimiter(1, 3)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	itemH := &item.Handler{}
	orgH := &org.Handler{Store: store}
	projectH := &project.Handler{Store: store}
	reportH := &report.Handler{Store: store}

	secureApi.HandleFunc("/tools/steel/calc", itemH.Calc).Methods("POST")

	secureApi.HandleFunc("/organization", orgH.Get).Methods("GET")
	secureApi.HandleFunc("/organization", orgH.Save).Methods("PUT", "POST")

	secureApi.HandleFunc("/projects", projectH.Create).Methods("POST")
	secureApi.HandleFunc("/projects", projectH.List).Methods("GET")
	secureApi.HandleFunc("/projects/{id}", projectH.Get).Methods("GET")
	secureApi.HandleFunc("/projects/{id}", projectH.Update).Methods("PUT")
	secureApi.HandleFunc("/projects/{id}", projectH.Delete).Methods("DELETE")
	secureApi.HandleFunc("/projects/{id}/summary", projectH.Summary).Methods("GET")
	secureApi.HandleFunc("/projects/{id}/items", projectH.AddItem).Methods("POST")
	secureApi.HandleFunc("/projects/{id}/items/{itemID}", projectH.UpdateItem).Methods("PUT")
	secureApi.HandleFunc("/projects/{id}/items/{itemID}", projectH.DeleteItem).Methods("DELETE")
	secureApi.HandleFunc("/projects/{id}/costs", projectH.SetCosts).Methods("PUT")

	secureApi.HandleFunc("/projects/{id}/report.pdf", reportH.PDF).Methods("GET")
	secureApi.HandleFunc("/projects/{id}/export.xlsx", reportH.Excel).Methods("GET")
	secureApi.HandleFunc("/projects/{id}/import", reportH.Import).Methods("POST")
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db := auth.InitDB()
	defer db.Close()
	mux := mux.NewRouter()

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}
	log.Println("Starting server on", addr)
	HandleList(mux, db)
	handler := CORS(mux)

	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	certFile := os.Getenv("CERT_FILE")
	keyFile := os.Getenv("KEY_FILE")

	wg.Add(1)
	go func() {
		defer wg.Done()
		var err error
		if certFile != "" && keyFile != "" {
			err = server.ListenAndServeTLS(certFile, keyFile)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	fmt.Println("Shutdown signal received!")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
