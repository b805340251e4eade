package catalog

import "errors"

var (
	// ErrShipmentOrderMismatch rejects a write that would attach an artwork to
	// a shipment belonging to a different order than the artwork's own.
	ErrShipmentOrderMismatch = errors.New("artwork can only be assigned to shipments from the same order")

	ErrInvalidStatus   = errors.New("invalid status")
	ErrInvalidMedium   = errors.New("invalid medium")
	ErrInvalidCategory = errors.New("invalid category")

	ErrArtworkNotFound  = errors.New("artwork not found")
	ErrImageNotFound    = errors.New("image not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrShipmentNotFound = errors.New("shipment not found")
)

// IsValidation reports whether err is a pre-persistence validation failure
// (as opposed to a missing record or an infrastructure error).
func IsValidation(err error) bool {
	return errors.Is(err, ErrShipmentOrderMismatch) ||
		errors.Is(err, ErrInvalidStatus) ||
		errors.Is(err, ErrInvalidMedium) ||
		errors.Is(err, ErrInvalidCategory)
}

// IsNotFound reports whether err refers to a missing Artwork/Image/Order/Shipment.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrArtworkNotFound) ||
		errors.Is(err, ErrImageNotFound) ||
		errors.Is(err, ErrOrderNotFound) ||
		errors.Is(err, ErrShipmentNotFound)
}
