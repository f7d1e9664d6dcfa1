package render

import (
	"encoding/json"
	"fmt"

	"github.com/tu-usuario/invoice-render/internal/domain"
	"github.com/tu-usuario/invoice-render/internal/domain/entity"
)

// ParseInvoice decodifica el JSON de una factura y valida los campos
// obligatorios. El error siempre es explícito: un JSON malformado o un campo
// ausente jamás se sustituye en silencio por valores por defecto; el caller
// decide si conserva su último estado válido o muestra el error.
func ParseInvoice(raw []byte) (*entity.Invoice, error) {
	var inv entity.Invoice
	if err := json.Unmarshal(raw, &inv); err != nil {
		return nil, fmt.Errorf("%w: JSON malformado: %v", domain.ErrInvalidInput, err)
	}
	if err := validateRequired(inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

// validateRequired verifica los campos sin los cuales ningún artefacto tiene sentido.
func validateRequired(inv entity.Invoice) error {
	switch {
	case inv.Details.InvoiceNumber == "":
		return fmt.Errorf("%w: details.invoiceNumber", domain.ErrMissingField)
	case inv.Company.Name == "":
		return fmt.Errorf("%w: company.name", domain.ErrMissingField)
	case inv.Customer.Name == "":
		return fmt.Errorf("%w: customer.name", domain.ErrMissingField)
	}
	return nil
}
