package dto

// CreateProviderRequest body para POST /api/providers.
type CreateProviderRequest struct {
	Nombre           string `json:"nombre" validate:"notblank,max=200"`
	Tipo             string `json:"tipo" validate:"required,oneof=bienes servicios mixto"`
	PersonaContacto  string `json:"persona_contacto" validate:"max=200"`
	NIF              string `json:"nif" validate:"max=20"`
	Direccion        string `json:"direccion" validate:"max=300"`
	CodigoPostal     string `json:"codigo_postal" validate:"max=10"`
	Ciudad           string `json:"ciudad" validate:"max=100"`
	Provincia        string `json:"provincia" validate:"max=100"`
	Pais             string `json:"pais" validate:"max=100"`
	Telefono         string `json:"telefono" validate:"max=30"`
	Email            string `json:"email" validate:"max=200,emailorblank"`
	Web              string `json:"web" validate:"max=200"`
	Intracomunitario bool   `json:"intracomunitario"`
	Notas            string `json:"notas" validate:"max=2000"`
}

// UpdateProviderRequest body para PUT /api/providers/:id.
type UpdateProviderRequest struct {
	Nombre           *string `json:"nombre" validate:"omitnil,notblank,max=200"`
	Tipo             *string `json:"tipo" validate:"omitnil,oneof=bienes servicios mixto"`
	PersonaContacto  *string `json:"persona_contacto" validate:"omitnil,max=200"`
	NIF              *string `json:"nif" validate:"omitnil,max=20"`
	Direccion        *string `json:"direccion" validate:"omitnil,max=300"`
	CodigoPostal     *string `json:"codigo_postal" validate:"omitnil,max=10"`
	Ciudad           *string `json:"ciudad" validate:"omitnil,max=100"`
	Provincia        *string `json:"provincia" validate:"omitnil,max=100"`
	Pais             *string `json:"pais" validate:"omitnil,max=100"`
	Telefono         *string `json:"telefono" validate:"omitnil,max=30"`
	Email            *string `json:"email" validate:"omitnil,max=200,emailorblank"`
	Web              *string `json:"web" validate:"omitnil,max=200"`
	Intracomunitario *bool   `json:"intracomunitario"`
	Notas            *string `json:"notas" validate:"omitnil,max=2000"`
}
