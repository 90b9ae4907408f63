package output

// Serializer encodes the export mapping into its wire representation.
type Serializer interface {
	Marshal(v any) ([]byte, error)
}
