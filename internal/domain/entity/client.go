package entity

import "time"

// Tipos de cliente.
const (
	ClientTypeParticular     = "particular"
	ClientTypeEmpresa        = "empresa"
	ClientTypeAutonomo       = "autonomo"
	ClientTypeAdministracion = "administracion_publica"
)

// Client cliente de la cuenta. El nombre no es único.
type Client struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	Nombre           string    `json:"nombre"`
	Tipo             string    `json:"tipo"`
	PersonaContacto  *string   `json:"persona_contacto"`
	NIF              *string   `json:"nif"`
	Direccion        *string   `json:"direccion"`
	CodigoPostal     *string   `json:"codigo_postal"`
	Ciudad           *string   `json:"ciudad"`
	Provincia        *string   `json:"provincia"`
	Pais             *string   `json:"pais"`
	Telefono         *string   `json:"telefono"`
	Email            *string   `json:"email"`
	Web              *string   `json:"web"`
	Intracomunitario bool      `json:"intracomunitario"`
	Notas            *string   `json:"notas"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
