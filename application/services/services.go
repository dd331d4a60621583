// Package services implements the data-access operations of every entity on
// top of the ports.Store collections.
package services

import (
	"go.uber.org/zap"

	"survey-backend/application/ports"
	"survey-backend/domain/core/valueobjects"
	"survey-backend/pkg/utils"
)

// Options are shared by all services.
type Options struct {
	// Principal is recorded as CreatedBy/ModifiedBy.
	Principal string
	// UserID owns user settings and boards.
	UserID string
	Clock  utils.Clock
}

func (o Options) withDefaults() Options {
	if o.Principal == "" {
		o.Principal = valueobjects.SystemPrincipal
	}
	if o.UserID == "" {
		o.UserID = valueobjects.DefaultUserID
	}
	if o.Clock == nil {
		o.Clock = utils.UTCNow
	}
	return o
}

// Services bundles one service per entity.
type Services struct {
	Customers    *CustomerService
	Townships    *TownshipService
	Properties   *PropertyService
	Surveys      *SurveyService
	Lookups      *LookupService
	UserSettings *UserSettingsService
	Boards       *BoardService
}

// New builds every service on stores.
func New(stores ports.Stores, opts Options, logger *zap.Logger) *Services {
	return &Services{
		Customers:    NewCustomerService(stores.Customers, opts, logger),
		Townships:    NewTownshipService(stores.Townships, opts, logger),
		Properties:   NewPropertyService(stores.Properties, stores.Townships, opts, logger),
		Surveys:      NewSurveyService(stores, opts, logger),
		Lookups:      NewLookupService(stores.SurveyTypes, stores.SurveyStatuses, opts, logger),
		UserSettings: NewUserSettingsService(stores.UserSettings, opts, logger),
		Boards:       NewBoardService(stores.BoardConfigurations, opts, logger),
	}
}
