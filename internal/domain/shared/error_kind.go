package shared

import "errors"

// ErrorKind names a domain failure independently of its message
type ErrorKind string

const (
	KindNone                    ErrorKind = ""
	KindInvalidName             ErrorKind = "InvalidName"
	KindInvalidPosition         ErrorKind = "InvalidPosition"
	KindInvalidCapacity         ErrorKind = "InvalidCapacity"
	KindInvalidCargoAmount      ErrorKind = "InvalidCargoAmount"
	KindInvalidVesselArgument   ErrorKind = "InvalidVesselArgument"
	KindNotDocked               ErrorKind = "NotDocked"
	KindInsufficientPlanetCargo ErrorKind = "InsufficientPlanetCargo"
	KindInsufficientVesselSpace ErrorKind = "InsufficientVesselSpace"
	KindInsufficientVesselCargo ErrorKind = "InsufficientVesselCargo"
	KindValidation              ErrorKind = "Validation"
	KindUnknown                 ErrorKind = "Unknown"
)

// KindOf unwraps err and reports which domain failure it carries
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindNone
	}

	var (
		nameErr     *InvalidNameError
		positionErr *InvalidPositionError
		capacityErr *InvalidCapacityError
		amountErr   *InvalidCargoAmountError
		argErr      *InvalidVesselArgumentError
		dockErr     *NotDockedError
		stockErr    *InsufficientPlanetCargoError
		spaceErr    *InsufficientVesselSpaceError
		holdErr     *InsufficientVesselCargoError
		validation  *ValidationError
	)

	switch {
	case errors.As(err, &nameErr):
		return KindInvalidName
	case errors.As(err, &positionErr):
		return KindInvalidPosition
	case errors.As(err, &capacityErr):
		return KindInvalidCapacity
	case errors.As(err, &amountErr):
		return KindInvalidCargoAmount
	case errors.As(err, &argErr):
		return KindInvalidVesselArgument
	case errors.As(err, &dockErr):
		return KindNotDocked
	case errors.As(err, &stockErr):
		return KindInsufficientPlanetCargo
	case errors.As(err, &spaceErr):
		return KindInsufficientVesselSpace
	case errors.As(err, &holdErr):
		return KindInsufficientVesselCargo
	case errors.As(err, &validation):
		return KindValidation
	default:
		return KindUnknown
	}
}
