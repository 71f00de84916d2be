package routing

import (
	"database/sql"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/mongo"

	"authportal/internal/config"
	"authportal/pkg/enquiry"
	"authportal/pkg/handlers"
	"authportal/pkg/hasher"
	"authportal/pkg/mailer"
	"authportal/pkg/session"
	"authportal/pkg/user"
)

const staticPath = "./static"

func InitRoutes(api *mux.Router, db *sql.DB, mongoDB *mongo.Database, cfg *config.Config, logger *slog.Logger) {

	userService := user.NewService(user.NewMySQLRepo(db), hasher.NewBcrypt())
	sessions := session.NewManager(session.NewMySQLRepo(db))
	userHandler := handlers.NewUserHandler(userService, sessions, logger)

	mail := mailer.NewSMTPSender(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password)
	enquiryService := enquiry.NewService(enquiry.NewMongoRepo(mongoDB), mail, cfg.SMTP.Recipient, logger)
	enquiryHandler := handlers.NewEnquiryHandler(enquiryService, logger)

	/* -+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+ */

	/* auth routers */
	api.HandleFunc("/register", userHandler.Register).Methods("POST").Name("register")
	api.HandleFunc("/login", userHandler.Login).Methods("POST").Name("login")
	api.HandleFunc("/logout", userHandler.Logout).Methods("POST").Name("logout")

	/* protected routers */
	api.HandleFunc("/home", userHandler.Home).Methods("GET").Name("home")

	/* enquiry side-channel */
	api.HandleFunc("/enquiry", enquiryHandler.Send).Methods("POST").Name("enquiry")
}

func ServeStaticFiles(r *mux.Router) {
	fs := http.FileServer(http.Dir(staticPath))
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", fs))
}

func ServeFallback(r *mux.Router, logger *slog.Logger) {
	r.PathPrefix("/").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") || strings.HasPrefix(r.URL.Path, "/static/") {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			if _, err := w.Write([]byte("[]")); err != nil {
				logger.Error("failed to write fallback JSON", slog.String("path", r.URL.Path), slog.Any("error", err))
			}
			return
		}
		http.ServeFile(w, r, "static/html/index.html")
	})
}

func StartServer(r *mux.Router, addr string) {
	fmt.Println("\n\033[32m", "The server is running on http://localhost"+addr, "\033[0m")
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal("Server failed:", err)
	}
}
