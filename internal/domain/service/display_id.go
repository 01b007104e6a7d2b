package service

// DisplayIDGenerator produces the short code shown to clients for a new cart.
// Codes are random and not guaranteed unique; they never serve as primary keys.
type DisplayIDGenerator interface {
	Generate() (string, error)
}
