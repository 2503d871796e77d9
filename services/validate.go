package services

import "fmt"

func validateLatitude(lat float64) error {
	if lat < -90 || lat > 90 {
		return newValidationError(fmt.Sprintf("latitude %v outside [-90, 90]", lat))
	}
	return nil
}

func validateLongitude(lng float64) error {
	if lng < -180 || lng > 180 {
		return newValidationError(fmt.Sprintf("longitude %v outside [-180, 180]", lng))
	}
	return nil
}
