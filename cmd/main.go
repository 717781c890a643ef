package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"agenda-crm/config"
	"agenda-crm/internal/handlers"
	"agenda-crm/internal/repositories"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Agenda CRM API
// @version 1.0
// @description API do quadro de prospecção: contatos, quadro kanban, importação e exportação de planilhas e painel de produtividade
// @BasePath /api/v1
func main() {
	// Load config
	cfg := config.NewConfig()

	// Initialize database connection
	db, err := config.ConnectDatabase(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	defer db.Close()

	store := repositories.NewSQLiteStore(db)

	// Create HTTP handler
	httpHandler, err := handlers.NewHTTPHandler(store)
	if err != nil {
		log.Fatalf("Error initializing handler: %v", err)
	}

	router := mux.NewRouter().PathPrefix("/api/v1").Subrouter()

	// Rotas de contatos
	router.HandleFunc("/contacts", httpHandler.GetContacts).Methods("GET", "OPTIONS")
	router.HandleFunc("/contacts/{id}", httpHandler.UpdateContact).Methods("PUT", "OPTIONS")
	router.HandleFunc("/contacts/{id}/transition", httpHandler.TransitionContact).Methods("POST", "OPTIONS")

	// Rotas do quadro
	router.HandleFunc("/board", httpHandler.GetBoard).Methods("GET", "OPTIONS")
	router.HandleFunc("/directory", httpHandler.GetDirectory).Methods("GET", "OPTIONS")

	// Importação e exportação de planilhas
	router.HandleFunc("/import", httpHandler.ImportContacts).Methods("POST", "OPTIONS")
	router.HandleFunc("/export", httpHandler.ExportContacts).Methods("GET", "OPTIONS")

	// Configuração e painel
	router.HandleFunc("/columns", httpHandler.GetColumns).Methods("GET", "OPTIONS")
	router.HandleFunc("/columns", httpHandler.SaveColumns).Methods("PUT", "OPTIONS")
	router.HandleFunc("/themes", httpHandler.GetThemes).Methods("GET", "OPTIONS")
	router.HandleFunc("/dashboard", httpHandler.GetDashboard).Methods("GET", "OPTIONS")

	// Serve os arquivos estáticos do Swagger
	fs := http.FileServer(http.Dir("./docs"))
	router.PathPrefix("/swagger/").Handler(http.StripPrefix("/api/v1/swagger/", fs))

	// Configuração do Swagger UI
	router.PathPrefix("/swagger-ui/").Handler(httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%s/api/v1/swagger/swagger.json", cfg.Port)),
		httpSwagger.DeepLinking(true),
	))

	mainRouter := mux.NewRouter()
	mainRouter.PathPrefix("/api/v1").Handler(router)

	// Configurar CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	})

	handler := c.Handler(mainRouter)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	// Canal para sinais de interrupção
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		fmt.Printf("Server is running on http://localhost:%s\n", cfg.Port)
		fmt.Printf("Swagger UI available at: http://localhost:%s/api/v1/swagger-ui/\n", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	<-stop
	fmt.Println("\nShutting down gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error shutting down server: %v", err)
	}

	fmt.Println("Server stopped successfully")
}
