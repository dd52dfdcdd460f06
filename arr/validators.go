// Package arr provides validation helpers shared by the builders.
//
// Each helper returns a sentinel wrapped with the method context, or nil.
package arr

// validateLength ensures n ≥ 0.
// Returns "<Method>: got <n>: arr: negative length" otherwise.
func validateLength(method string, n int) error {
	if n < 0 {
		return arrErrorf(method, ErrNegativeLength, "got %d", n)
	}

	return nil
}

// validateProducer rejects a missing producer only when it would be called,
// i.e. for n > 0. A zero-length build never touches the producer.
func validateProducer(method string, n int, present bool) error {
	if n > 0 && !present {
		return arrErrorf(method, ErrNilProducer, "length %d", n)
	}

	return nil
}
