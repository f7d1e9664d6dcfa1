package entity

// Customer representa el cliente al que se le factura (bloque "Bill to").
type Customer struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	Address2 string `json:"address2,omitempty"`
	City     string `json:"city"`
	State    string `json:"state"`
	Zip      string `json:"zip"`
	Country  string `json:"country"`
	Website  string `json:"website,omitempty"`
}

// CityLine devuelve la línea "Ciudad, Estado ZIP País".
func (c Customer) CityLine() string {
	return cityLine(c.City, c.State, c.Zip, c.Country)
}
