package handler

// staffLoginRequest is the staff dashboard login form.
type staffLoginRequest struct {
	Correo     string `json:"correo" validate:"required,email"`
	Contrasena string `json:"contrasena" validate:"required"`
}

// guestLoginRequest is the guest portal login form.
type guestLoginRequest struct {
	Correo     string `json:"correo" validate:"required,email"`
	Contrasena string `json:"contrasena" validate:"required"`
}

// guestRegisterRequest is the guest self-registration form.
type guestRegisterRequest struct {
	Nombre     string `json:"nombre" validate:"required"`
	Apellido   string `json:"apellido" validate:"required"`
	Correo     string `json:"correo" validate:"required,email"`
	Telefono   string `json:"telefono,omitempty"`
	Contrasena string `json:"contrasena" validate:"required,min=8"`
}

// upstreamAuthResponse is the success body of the backend auth endpoints.
// Identity fields are populated per segment: staff responses carry
// id_personal/id_rol/nombre_rol, guest responses carry id_huesped.
type upstreamAuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Tipo        string `json:"tipo"`
	IDPersonal  int    `json:"id_personal"`
	IDRol       int    `json:"id_rol"`
	NombreRol   string `json:"nombre_rol"`
	IDHuesped   int    `json:"id_huesped"`
	Nombre      string `json:"nombre"`
}
