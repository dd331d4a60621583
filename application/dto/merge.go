package dto

import (
	"survey-backend/domain/core/valueobjects"
)

// The set helpers implement partial merge: a nil source leaves the target
// untouched.

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setOptional[T any](dst **T, src *T) {
	if src != nil {
		v := *src
		*dst = &v
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func setTimestamp(dst *valueobjects.Timestamp, src *valueobjects.Timestamp) {
	if src != nil {
		*dst = *src
	}
}
