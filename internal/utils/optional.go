package utils

import (
	"bytes"
	"encoding/json"

	"github.com/google/uuid"
)

// OptionalUUID distinguishes an absent JSON field from an explicit null.
// Present is false when the field was not supplied at all; a null payload
// sets Present with a nil Value.
type OptionalUUID struct {
	Present bool
	Value   *uuid.UUID
}

func (o *OptionalUUID) UnmarshalJSON(data []byte) error {
	o.Present = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Value = nil
		return nil
	}
	var id uuid.UUID
	if err := json.Unmarshal(data, &id); err != nil {
		return err
	}
	o.Value = &id
	return nil
}
