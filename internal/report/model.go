// Package report renders the cash-register-closing report (corte de caja)
// into a paginated PDF built from low-level drawing primitives.
//
// The pipeline is Input -> Render (section renderers + layout cursor) ->
// Document (display list per page) -> Encode (fpdf) -> bytes.
package report

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// ---------------------------------------------------------------------------
// Input
// ---------------------------------------------------------------------------

// Input is the closing data as returned by the billing API.
type Input struct {
	StartDate  string          `json:"fechaInicio"`
	EndDate    string          `json:"fechaFin"`
	BranchID   FlexString      `json:"plantelId"`
	Summary    Summary         `json:"resumen"`
	ByCategory []CategoryTotal `json:"porTipoPago"`
	Receipts   []Receipt       `json:"recibos"`
}

// Summary holds the totals of the closing. They are rendered as given.
type Summary struct {
	TotalReceipts   Count  `json:"totalRecibos"`
	TotalAmount     Amount `json:"totalMonto"`
	CancelledCount  Count  `json:"totalCancelados"`
	CancelledAmount Amount `json:"totalMontoCancelado"`
}

// CategoryTotal is one row of the per-payment-type breakdown.
type CategoryTotal struct {
	ID       FlexString `json:"tipoPagoId"`
	Label    string     `json:"tipoPagoDesc"`
	Receipts Count      `json:"totalRecibos"`
	Amount   Amount     `json:"totalMonto"`
}

// Receipt is one itemized transaction of the closing.
type Receipt struct {
	ID            FlexString `json:"reciboId"`
	Folio         FlexString `json:"folio"`
	LegacyFolio   FlexString `json:"folioLegacy"`
	PaymentDate   string     `json:"fechaPago"`
	StudentID     FlexString `json:"alumnoId"`
	StudentName   string     `json:"alumnoNombre"`
	Concept       string     `json:"concepto"`
	Amount        Amount     `json:"monto"`
	Currency      string     `json:"moneda"`
	CategoryLabel string     `json:"tipoPagoDesc"`
	StatusLabel   string     `json:"estatusDesc"`
	Cancelled     bool       `json:"cancelado"`
}

// Filter is the selection made in the UI. When present it wins over the
// range carried by the Input.
type Filter struct {
	StartDate string     `json:"fechaInicio"`
	EndDate   string     `json:"fechaFin"`
	BranchID  FlexString `json:"plantelId"`
}

// DecodeInput parses the API JSON payload.
func DecodeInput(data []byte) (Input, error) {
	var in Input
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&in); err != nil {
		return Input{}, err
	}
	return in, nil
}

// ---------------------------------------------------------------------------
// Lenient scalar types
// ---------------------------------------------------------------------------

// Amount is a monetary value. Decoding never fails: null, numeric strings,
// "NaN" and "Infinity" are all accepted and non-finite values are later
// formatted as zero.
type Amount float64

func (a *Amount) UnmarshalJSON(b []byte) error {
	*a = Amount(parseLenientFloat(b))
	return nil
}

// Count is an integer total that tolerates floats, strings and null.
type Count int

func (c *Count) UnmarshalJSON(b []byte) error {
	v := parseLenientFloat(b)
	if v != v || v > 1<<53 || v < -(1<<53) {
		*c = 0
		return nil
	}
	*c = Count(int64(v))
	return nil
}

// FlexString accepts a JSON string, number or null. Identifiers and folios
// come as either depending on the endpoint.
type FlexString string

func (s *FlexString) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	switch {
	case raw == "null" || raw == "":
		*s = ""
	case raw[0] == '"':
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = FlexString(strings.TrimSpace(v))
	default:
		*s = FlexString(raw)
	}
	return nil
}

func (s FlexString) String() string { return string(s) }

func parseLenientFloat(b []byte) float64 {
	raw := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if raw == "" || raw == "null" {
		return 0
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
	if err != nil {
		return 0
	}
	return v
}
