package dto

import "time"

// OwnerDTO datos de un propietario tal como viajan en la API.
type OwnerDTO struct {
	NombreCompleto  string `json:"nombreCompleto"`
	DNI             string `json:"dni"`
	FechaNacimiento string `json:"fechaNacimiento"`
	LugarNacimiento string `json:"lugarNacimiento"`
	Domicilio       string `json:"domicilio"`
	Celular         string `json:"celular"`
	Cuil            string `json:"cuil"`
	EstadoCivil     string `json:"estadoCivil"`
	Email           string `json:"email"`
}

// CreatePropertyRequest entrada para abrir un expediente.
type CreatePropertyRequest struct {
	Title        string     `json:"titulo" validate:"required,min=1,max=255"`
	PropertyType string     `json:"tipoPropiedad"`
	Address      string     `json:"direccion"`
	CadastralRef string     `json:"partidaInmobiliaria"`
	Locality     string     `json:"localidad"`
	Description  string     `json:"descripcion"`
	Owners       []OwnerDTO `json:"propietarios" validate:"max=3"`
}

// UpdatePropertyRequest entrada para editar un expediente; nil = sin cambios.
type UpdatePropertyRequest struct {
	Title        *string     `json:"titulo" validate:"omitempty,min=1,max=255"`
	PropertyType *string     `json:"tipoPropiedad"`
	Address      *string     `json:"direccion"`
	CadastralRef *string     `json:"partidaInmobiliaria"`
	Locality     *string     `json:"localidad"`
	Description  *string     `json:"descripcion"`
	Owners       *[]OwnerDTO `json:"propietarios"`
}

// RejectPropertyRequest motivo del rechazo (se agrega a la descripción).
type RejectPropertyRequest struct {
	Reason string `json:"motivo"`
}

// AdvisorDTO asesor responsable del expediente.
type AdvisorDTO struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
}

// PropertyResponse salida de un expediente.
type PropertyResponse struct {
	ID           string      `json:"id"`
	Title        string      `json:"titulo"`
	PropertyType string      `json:"tipoPropiedad"`
	Address      string      `json:"direccion"`
	CadastralRef string      `json:"partidaInmobiliaria"`
	Locality     string      `json:"localidad"`
	Description  string      `json:"descripcion"`
	Owners       []OwnerDTO  `json:"propietarios"`
	Status       string      `json:"estado"`
	Advisor      *AdvisorDTO `json:"asesor,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// PropertyListResponse lista paginada de expedientes.
type PropertyListResponse struct {
	Items []PropertyResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
