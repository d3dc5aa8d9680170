package mandato

import (
	"encoding/json"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Mandatos-api/internal/domain/entity"
)

// rawOwner refleja las formas en que llegan los propietarios desde la web y
// la app móvil. Los alias se resuelven en normalize.
type rawOwner struct {
	NombreCompleto  flexString `json:"nombreCompleto"`
	Nombre          flexString `json:"nombre,omitempty"`
	DNI             flexString `json:"dni"`
	FechaNacimiento flexString `json:"fechaNacimiento"`
	LugarNacimiento flexString `json:"lugarNacimiento"`
	Domicilio       flexString `json:"domicilio"`
	Celular         flexString `json:"celular"`
	Cuil            flexString `json:"cuil"`
	CuitCuil        flexString `json:"cuitCuil,omitempty"`
	EstadoCivil     flexString `json:"estadoCivil"`
	Email           flexString `json:"email"`
}

// flexString acepta string, número o null (la app móvil envía el DNI como número).
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	switch {
	case string(b) == "null":
		*f = ""
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return err
		}
		*f = flexString(n.String())
	}
	return nil
}

func clean(f flexString) string { return strings.TrimSpace(string(f)) }

func (r rawOwner) normalize() entity.Owner {
	name := clean(r.NombreCompleto)
	if name == "" {
		name = clean(r.Nombre)
	}
	tax := clean(r.Cuil)
	if tax == "" {
		tax = clean(r.CuitCuil)
	}
	return entity.Owner{
		FullName:      name,
		DNI:           clean(r.DNI),
		BirthDate:     clean(r.FechaNacimiento),
		BirthPlace:    clean(r.LugarNacimiento),
		Address:       clean(r.Domicilio),
		Mobile:        clean(r.Celular),
		TaxID:         tax,
		MaritalStatus: clean(r.EstadoCivil),
		Email:         clean(r.Email),
	}
}

// ParseOwners decodifica la lista de propietarios del expediente. Un JSON
// nulo, vacío o mal formado da una lista vacía (se registra y se sigue).
func ParseOwners(raw *string) []entity.Owner {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil
	}
	var list []*rawOwner
	if err := json.Unmarshal([]byte(*raw), &list); err != nil {
		log.Warn().Err(err).Msg("mandato: propietarios con JSON inválido, se usan vacíos")
		return nil
	}
	owners := make([]entity.Owner, 0, len(list))
	for _, r := range list {
		if r == nil {
			owners = append(owners, entity.Owner{})
			continue
		}
		owners = append(owners, r.normalize())
	}
	return owners
}

// EncodeOwners serializa propietarios canónicos con las claves que espera ParseOwners.
func EncodeOwners(owners []entity.Owner) (*string, error) {
	if len(owners) == 0 {
		return nil, nil
	}
	list := make([]rawOwner, 0, len(owners))
	for _, o := range owners {
		list = append(list, rawOwner{
			NombreCompleto:  flexString(o.FullName),
			DNI:             flexString(o.DNI),
			FechaNacimiento: flexString(o.BirthDate),
			LugarNacimiento: flexString(o.BirthPlace),
			Domicilio:       flexString(o.Address),
			Celular:         flexString(o.Mobile),
			Cuil:            flexString(o.TaxID),
			EstadoCivil:     flexString(o.MaritalStatus),
			Email:           flexString(o.Email),
		})
	}
	b, err := json.Marshal(list)
	if err != nil {
		return nil, err
	}
	s := string(b)
	return &s, nil
}

// OwnerSlots devuelve siempre entity.MaxOwners propietarios: los ausentes
// quedan con todos sus campos vacíos.
func OwnerSlots(owners []entity.Owner) [entity.MaxOwners]entity.Owner {
	var slots [entity.MaxOwners]entity.Owner
	copy(slots[:], owners)
	return slots
}
