package user

import "github.com/go-playground/validator/v10"

var validate = validator.New()

type RegisterDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type GoogleLoginDTO struct {
	// Either a raw id_token or an authorization code to exchange.
	IDToken     string `json:"id_token"`
	Code        string `json:"code"`
	RedirectURI string `json:"redirect_uri"`
}

type AuthResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         *User  `json:"user"`
}

func (d RegisterDTO) Validate() error { return validate.Struct(d) }
func (d LoginDTO) Validate() error    { return validate.Struct(d) }
