package mandato

import (
	"fmt"
	"strconv"
	"time"

	"github.com/jhoicas/Mandatos-api/internal/domain/entity"
	"github.com/jhoicas/Mandatos-api/pkg/numletras"
)

// OwnerContext son los campos de un propietario tal como se ven en la plantilla.
type OwnerContext struct {
	Nombre          string
	Dni             string
	FechaNacimiento string
	LugarNacimiento string
	Domicilio       string
	Celular         string
	Cuil            string
	EstadoCivil     string
	Email           string
}

// TemplateContext es el contexto completo de la plantilla del mandato.
// Todos los campos son string: un valor ausente es "" y nunca "null".
type TemplateContext struct {
	Titulo              string
	TipoPropiedad       string
	Direccion           string
	PartidaInmobiliaria string
	Localidad           string

	PlazoDias              string
	Monto                  string
	MontoNumero            string
	Moneda                 string
	MontoLegal             string
	MontoEnLetras          string
	MonedaNombre           string
	PlazoDiasTexto         string
	PlazoMesesTexto        string
	PlazoTexto             string
	PlazoTextoCapitalizado string
	Observaciones          string

	AsesorNombre string
	AsesorEmail  string
	FechaActual  string

	Propietarios [entity.MaxOwners]OwnerContext
}

// Field asocia un placeholder {{Key}} con su valor dentro del contexto.
type Field struct {
	Key string
	Get func(*TemplateContext) string
}

// Fields es la tabla de placeholders admitidos por la plantilla.
var Fields = buildFields()

func buildFields() []Field {
	fields := []Field{
		{"titulo", func(c *TemplateContext) string { return c.Titulo }},
		{"tipoPropiedad", func(c *TemplateContext) string { return c.TipoPropiedad }},
		{"direccion", func(c *TemplateContext) string { return c.Direccion }},
		{"partidaInmobiliaria", func(c *TemplateContext) string { return c.PartidaInmobiliaria }},
		{"localidad", func(c *TemplateContext) string { return c.Localidad }},
		{"plazoDias", func(c *TemplateContext) string { return c.PlazoDias }},
		{"monto", func(c *TemplateContext) string { return c.Monto }},
		{"montoNumero", func(c *TemplateContext) string { return c.MontoNumero }},
		{"moneda", func(c *TemplateContext) string { return c.Moneda }},
		{"montoLegal", func(c *TemplateContext) string { return c.MontoLegal }},
		{"montoEnLetras", func(c *TemplateContext) string { return c.MontoEnLetras }},
		{"monedaNombre", func(c *TemplateContext) string { return c.MonedaNombre }},
		{"plazoDiasTexto", func(c *TemplateContext) string { return c.PlazoDiasTexto }},
		{"plazoMesesTexto", func(c *TemplateContext) string { return c.PlazoMesesTexto }},
		{"plazoTexto", func(c *TemplateContext) string { return c.PlazoTexto }},
		{"plazoTextoCapitalizado", func(c *TemplateContext) string { return c.PlazoTextoCapitalizado }},
		{"observaciones", func(c *TemplateContext) string { return c.Observaciones }},
		{"asesorNombre", func(c *TemplateContext) string { return c.AsesorNombre }},
		{"asesorEmail", func(c *TemplateContext) string { return c.AsesorEmail }},
		{"fechaActual", func(c *TemplateContext) string { return c.FechaActual }},
	}
	for i := 0; i < entity.MaxOwners; i++ {
		fields = append(fields, ownerFields(i)...)
	}
	return fields
}

func ownerFields(i int) []Field {
	prefix := fmt.Sprintf("propietario%d", i+1)
	owner := func(get func(*OwnerContext) string) func(*TemplateContext) string {
		return func(c *TemplateContext) string { return get(&c.Propietarios[i]) }
	}
	return []Field{
		{prefix + "Nombre", owner(func(o *OwnerContext) string { return o.Nombre })},
		{prefix + "Dni", owner(func(o *OwnerContext) string { return o.Dni })},
		{prefix + "FechaNacimiento", owner(func(o *OwnerContext) string { return o.FechaNacimiento })},
		{prefix + "LugarNacimiento", owner(func(o *OwnerContext) string { return o.LugarNacimiento })},
		{prefix + "Domicilio", owner(func(o *OwnerContext) string { return o.Domicilio })},
		{prefix + "Celular", owner(func(o *OwnerContext) string { return o.Celular })},
		{prefix + "Cuil", owner(func(o *OwnerContext) string { return o.Cuil })},
		{prefix + "EstadoCivil", owner(func(o *OwnerContext) string { return o.EstadoCivil })},
		{prefix + "Email", owner(func(o *OwnerContext) string { return o.Email })},
	}
}

// Values aplana el contexto en el mapa clave→valor que consume el renderer.
func (c TemplateContext) Values() map[string]string {
	out := make(map[string]string, len(Fields))
	for _, f := range Fields {
		out[f.Key] = f.Get(&c)
	}
	return out
}

// Assemble combina expediente, mandato y propietarios en el contexto de la
// plantilla. Es total: cualquier campo opcional ausente queda como "".
func Assemble(property *entity.Property, mandate *entity.Mandate, owners []entity.Owner, now time.Time) TemplateContext {
	var c TemplateContext
	if property != nil {
		c.Titulo = property.Title
		c.TipoPropiedad = property.PropertyType
		c.Direccion = property.Address
		c.PartidaInmobiliaria = property.CadastralRef
		c.Localidad = property.Locality
		if property.Advisor != nil {
			c.AsesorNombre = property.Advisor.Name
			c.AsesorEmail = property.Advisor.Email
		}
	}
	if mandate != nil {
		amount := FormatAmount(mandate.Amount, mandate.Currency)
		term := PhraseTerm(mandate.TermDays)
		c.PlazoDias = strconv.Itoa(mandate.TermDays)
		c.Monto = mandate.Amount.String()
		c.MontoNumero = amount.Numeral
		c.Moneda = mandate.Currency
		c.MontoLegal = amount.Legal
		c.MontoEnLetras = amount.Words
		c.MonedaNombre = amount.CurrencyName
		c.PlazoDiasTexto = term.Days
		c.PlazoMesesTexto = term.Months
		c.PlazoTexto = term.Smart
		c.PlazoTextoCapitalizado = numletras.Capitalize(term.Smart)
		c.Observaciones = mandate.Notes
	}
	for i, o := range OwnerSlots(owners) {
		c.Propietarios[i] = OwnerContext{
			Nombre:          o.FullName,
			Dni:             o.DNI,
			FechaNacimiento: o.BirthDate,
			LugarNacimiento: o.BirthPlace,
			Domicilio:       o.Address,
			Celular:         o.Mobile,
			Cuil:            o.TaxID,
			EstadoCivil:     o.MaritalStatus,
			Email:           o.Email,
		}
	}
	c.FechaActual = FormatDate(&now)
	return c
}
