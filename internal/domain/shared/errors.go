package shared

import (
	"fmt"
	"strconv"
)

// DomainError is the base error type for all domain errors
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(message string) *DomainError {
	return &DomainError{Message: message}
}

// Validation error

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Construction errors

type InvalidNameError struct {
	*ValidationError
	Entity string
}

func NewInvalidNameError(entity string) *InvalidNameError {
	return &InvalidNameError{
		ValidationError: NewValidationError(entity+" name", "must be non-empty text"),
		Entity:          entity,
	}
}

type InvalidPositionError struct {
	*ValidationError
	Entity string
}

func NewInvalidPositionError(entity, message string) *InvalidPositionError {
	return &InvalidPositionError{
		ValidationError: NewValidationError(entity+" position", message),
		Entity:          entity,
	}
}

type InvalidCapacityError struct {
	*ValidationError
	Value float64
}

func NewInvalidCapacityError(value float64) *InvalidCapacityError {
	return &InvalidCapacityError{
		ValidationError: NewValidationError("vessel capacity", "must be a non-negative number, got "+FormatTons(value)),
		Value:           value,
	}
}

type InvalidCargoAmountError struct {
	*ValidationError
	Value float64
}

func NewInvalidCargoAmountError(field string, value float64) *InvalidCargoAmountError {
	return &InvalidCargoAmountError{
		ValidationError: NewValidationError(field, "must be a non-negative number, got "+FormatTons(value)),
		Value:           value,
	}
}

// Cargo transfer errors

type CargoTransferError struct {
	*DomainError
}

func NewCargoTransferError(message string) *CargoTransferError {
	return &CargoTransferError{DomainError: NewDomainError(message)}
}

type InvalidVesselArgumentError struct {
	*CargoTransferError
	Operation string
}

func NewInvalidVesselArgumentError(operation string) *InvalidVesselArgumentError {
	return &InvalidVesselArgumentError{
		CargoTransferError: NewCargoTransferError(fmt.Sprintf("%s: vessel is required", operation)),
		Operation:          operation,
	}
}

type NotDockedError struct {
	*CargoTransferError
	Planet string
}

func NewNotDockedError(planet string) *NotDockedError {
	return &NotDockedError{
		CargoTransferError: NewCargoTransferError(fmt.Sprintf("vessel must land on the planet %s", planet)),
		Planet:             planet,
	}
}

type InsufficientPlanetCargoError struct {
	*CargoTransferError
	Required  float64
	Available float64
}

func NewInsufficientPlanetCargoError(required, available float64) *InsufficientPlanetCargoError {
	return &InsufficientPlanetCargoError{
		CargoTransferError: NewCargoTransferError(fmt.Sprintf(
			"not enough cargo on planet: need %s, have %s", FormatTons(required), FormatTons(available))),
		Required:  required,
		Available: available,
	}
}

type InsufficientVesselSpaceError struct {
	*CargoTransferError
	Required  float64
	Available float64
}

func NewInsufficientVesselSpaceError(required, available float64) *InsufficientVesselSpaceError {
	return &InsufficientVesselSpaceError{
		CargoTransferError: NewCargoTransferError(fmt.Sprintf(
			"not enough free space on vessel: need %s, have %s", FormatTons(required), FormatTons(available))),
		Required:  required,
		Available: available,
	}
}

type InsufficientVesselCargoError struct {
	*CargoTransferError
	Required  float64
	Available float64
}

func NewInsufficientVesselCargoError(required, available float64) *InsufficientVesselCargoError {
	return &InsufficientVesselCargoError{
		CargoTransferError: NewCargoTransferError(fmt.Sprintf(
			"not enough cargo on vessel: need %s, have %s", FormatTons(required), FormatTons(available))),
		Required:  required,
		Available: available,
	}
}

// FormatTons renders a weight the shortest way that round-trips (30, 12.5).
func FormatTons(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
