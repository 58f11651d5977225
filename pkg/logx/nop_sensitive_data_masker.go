package logx

// NopSensitiveDataMasker passes payloads through unchanged. Default for
// clients whose traffic carries nothing secret.
type NopSensitiveDataMasker struct{}

func NewNopSensitiveDataMasker() NopSensitiveDataMasker {
	return NopSensitiveDataMasker{}
}

func (NopSensitiveDataMasker) Mask(input []byte) []byte {
	return input
}
