package symexpr

// Scalar is the set of operations an expression needs from the field it is
// evaluated over. Methods never modify their receivers or arguments; each
// returns a fresh value.
//
// Implementations provided by this package are Real and Complex.
type Scalar[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	// Quo divides by a non-zero value. Expressions never call Quo with a
	// divisor for which IsZero reports true.
	Quo(T) T
	// Pow raises the receiver to a power. It returns an error only when the
	// result cannot be represented by the type.
	Pow(T) (T, error)
	Sin() T
	Cos() T
	Exp() T
	// Log is the natural logarithm. Ordered types return a *DomainError for
	// arguments that are not positive.
	Log() (T, error)

	IsZero() bool
	Equal(T) bool
	// FromInt returns n converted to the type. It does not use the value of
	// its receiver, so it may be called on the zero value.
	FromInt(n int64) T
	String() string
}
