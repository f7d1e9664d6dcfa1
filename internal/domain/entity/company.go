package entity

// Company representa la empresa emisora de la factura.
// Los tags JSON definen el contrato de entrada del servicio (camelCase,
// igual que el registro de factura que envían los clientes).
type Company struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	Address2 string `json:"address2,omitempty"`
	City     string `json:"city"`
	State    string `json:"state"`
	Zip      string `json:"zip"`
	Country  string `json:"country"`
	Website  string `json:"website,omitempty"`
	Logo     string `json:"logo,omitempty"` // URL o data-URI de la imagen del logo
}

// CityLine devuelve la línea "Ciudad, Estado ZIP País" usada por ambos renderers.
func (c Company) CityLine() string {
	return cityLine(c.City, c.State, c.Zip, c.Country)
}
