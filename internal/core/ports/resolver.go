package ports

// DomainResolver narrows a sampling interval to where an expression is defined.
//
//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type DomainResolver interface {
	// Restrict returns the interval to sample for expr inside [xMin, xMax].
	Restrict(expr string, xMin, xMax float64) (float64, float64)
}
