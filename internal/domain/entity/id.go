package entity

import "encoding/json"

// FlexID es un identificador que en los documentos heredados puede venir como
// número o como string JSON. Se normaliza siempre a string al reescribir.
type FlexID string

func (f FlexID) String() string { return string(f) }

// UnmarshalJSON acepta tanto "123" como 123.
func (f *FlexID) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = FlexID(n.String())
	return nil
}
