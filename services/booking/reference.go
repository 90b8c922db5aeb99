package booking

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// maxReferenceAttempts bounds reference generation so a pathological
// collision streak surfaces as an error instead of spinning forever.
const maxReferenceAttempts = 8

// randomReference produces a 6-digit numeric code (000000-999999).
func randomReference() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("failed to generate booking reference: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// generateUniqueReference retries random codes until one is unused,
// giving up after maxReferenceAttempts. The unique index on
// bookingReference remains the backstop for races between the check
// and the insert.
func (e *DefaultBookingEngine) generateUniqueReference() (string, error) {
	for attempt := 0; attempt < maxReferenceAttempts; attempt++ {
		ref, err := randomReference()
		if err != nil {
			return "", err
		}
		exists, err := e.BookingRepo.ExistsByReference(ref)
		if err != nil {
			return "", fmt.Errorf("failed to check booking reference: %w", err)
		}
		if !exists {
			return ref, nil
		}
	}
	return "", fmt.Errorf("exhausted %d attempts generating a unique booking reference", maxReferenceAttempts)
}
