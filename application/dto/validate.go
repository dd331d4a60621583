package dto

import (
	apperrors "survey-backend/pkg/errors"
	"survey-backend/pkg/utils"
)

// Validate checks the validate tags of any input.
func Validate(in interface{}) error {
	return utils.ValidateStruct(in)
}

// validateWith checks the tags of in and adds the extra per-field problems.
func validateWith(in interface{}, extra map[string]string) error {
	err := utils.ValidateStruct(in)
	if len(extra) == 0 {
		return err
	}

	fields := make(map[string]string, len(extra))
	if appErr := apperrors.GetAppError(err); appErr != nil {
		if found, ok := appErr.Details["fields"].(map[string]interface{}); ok {
			for k, v := range found {
				fields[k], _ = v.(string)
			}
		}
	}
	for k, v := range extra {
		if _, seen := fields[k]; !seen {
			fields[k] = v
		}
	}
	return apperrors.NewFieldValidationError(fields)
}
