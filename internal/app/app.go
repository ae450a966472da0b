package app

import (
	"fmt"
	"net/http"
	"passreset/internal/app/deps"
	"passreset/internal/app/services"
	resetpassword "passreset/internal/http/handlers/auth/reset_password"
	sendpasswordresettoken "passreset/internal/http/handlers/auth/send_password_reset_token"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	authRouter := chi.NewRouter()
	authRouter.Method(
		http.MethodPost,
		"/password-reset/send",
		sendpasswordresettoken.New(s.SendPasswordResetToken, deps.Config.IsTestMode),
	)
	authRouter.Method(
		http.MethodPost,
		"/password-reset",
		resetpassword.New(s.ResetPassword),
	)

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Mount("/auth", authRouter)

	address := fmt.Sprintf("0.0.0.0:%d", deps.Config.Port)

	return &http.Server{
		Handler: router,
		Addr:    address,
	}
}
