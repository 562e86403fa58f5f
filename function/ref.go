package function

// Ref takes the address of a value
func Ref[A any](a A) *A {
	return &a
}

// Deref dereferences a pointer
func Deref[A any](a *A) A {
	return *a
}
