package wire

// SizeOf reports the exact number of bytes Serialize(v) would produce,
// without materializing them: the value serializes into a counting Buffer,
// so the size shares the encoding's code path instead of approximating it
// with a parallel implementation.
func SizeOf(v Serializable) (uint64, error) {
	c := NewSizeCounter()
	if err := v.Serialize(c); err != nil {
		return 0, err
	}
	return c.Size(), nil
}

// SizeOfLimit is SizeOf under a caller-supplied CompactSize ceiling, for
// values whose encoding is only legal under a non-default limit.
func SizeOfLimit(v Serializable, max uint64) (uint64, error) {
	c := NewSizeCounter()
	c.maxSize = max
	if err := v.Serialize(c); err != nil {
		return 0, err
	}
	return c.Size(), nil
}
