package entity

// Owner es el registro canónico de un propietario. Se construye una sola vez
// al parsear el JSON del expediente; los alias de origen (nombre/nombreCompleto,
// cuil/cuitCuil) ya están resueltos.
type Owner struct {
	FullName      string
	DNI           string
	BirthDate     string // texto libre
	BirthPlace    string // texto libre
	Address       string
	Mobile        string
	TaxID         string // CUIL / CUIT
	MaritalStatus string
	Email         string
}
