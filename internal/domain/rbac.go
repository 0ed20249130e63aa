package domain

// EnforceRequest adalah input standar untuk pengecekan otorisasi.
type EnforceRequest struct {
	Role     string
	Resource string
	Action   string
}
