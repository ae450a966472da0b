package resetpassword

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	e "passreset/internal/core/domain/errors"
	"passreset/internal/core/domain/user"
	"passreset/internal/core/services"
	service "passreset/internal/core/services/reset_password"
	"passreset/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(
	service services.Service[service.Input, service.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Token, validation.Length(0, 1024)),
		validation.Field(&i.Password, validation.Length(0, 256)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if input.Token == "" || input.Password == "" {
		response.RenderError(rw, "Token and new password are required", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	_, err := h.service.Run(
		r.Context(),
		service.Input{
			Token:       user.PasswordResetToken(input.Token),
			NewPassword: user.RawPassword(input.Password),
		},
	)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrPasswordResetTokenExpired):
			response.RenderError(rw, "Reset token has expired", http.StatusBadRequest)
		case errors.Is(err, user.ErrPasswordResetTokenInvalid):
			response.RenderError(rw, "Invalid reset token", http.StatusBadRequest)
		case errors.Is(err, user.ErrUserDoesNotExist):
			response.RenderError(rw, "User not found", http.StatusBadRequest)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	response.RenderMessage(rw, "Password has been reset", http.StatusOK)
}
