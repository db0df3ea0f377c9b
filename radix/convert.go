package radix

// Converter runs a Decoder and an Encoder over tokens sharing one Schema.
type Converter struct {
	schema *Schema
}

// NewConverter returns a new converter. The schema is kept by reference: the
// first Convert resolves a SeparatorDefault in it, so later conversions (and
// the caller) see the resolved separator.
func NewConverter(schema *Schema) *Converter {
	return &Converter{
		schema: schema,
	}
}

// Convert decodes token and encodes it in the output base. Decoding errors
// are returned unchanged.
func (c *Converter) Convert(token string) (_ string, err error) {
	c.schema.Separator.Resolve(c.schema.Write.Base)

	bits, err := NewDecoder(*c.schema).Decode(token)
	if err != nil {
		return "", err
	}

	return NewEncoder(*c.schema).Encode(&bits), nil
}

// Convert converts a single token with schema.
func Convert(token string, schema *Schema) (string, error) {
	return NewConverter(schema).Convert(token)
}
