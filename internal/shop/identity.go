package shop

import "github.com/google/uuid"

// ComputeRoot derives a deterministic UUID v5 from a domain and business key.
//
// The UUID is derived from: hash("storefront" + domain + business_key)
// using the OID namespace.
func ComputeRoot(domain, businessKey string) uuid.UUID {
	seed := "storefront" + domain + businessKey
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(seed))
}

// CartRoot computes the cart identifier for a buyer's session.
func CartRoot(username string) uuid.UUID {
	return ComputeRoot("cart", username)
}

// NewReference returns a fresh random identifier for receipts and payments.
func NewReference() uuid.UUID {
	return uuid.New()
}
