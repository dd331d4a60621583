package codec

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"survey-backend/domain/core/entities"
	"survey-backend/domain/core/valueobjects"
)

func fillTimestamps(t *entities.Timestamps, now time.Time) {
	fillTimestamp(&t.CreatedDate, now)
	fillTimestamp(&t.ModifiedDate, now)
}

// Customers is the codec for the Customers table.
func Customers(clock Clock) Codec[entities.Customer] {
	return &entityCodec[entities.Customer]{
		key:   "CustomerId",
		id:    func(c *entities.Customer) string { return c.CustomerID },
		clock: clock,
		shims: []Shim{LegacyNumericIDs},
		fill: func(c *entities.Customer, now time.Time) {
			if c.CustomerCode == "" {
				c.CustomerCode = SyntheticCode("CUST", now)
			}
			fillTimestamps(&c.Timestamps, now)
		},
	}
}

// Townships is the codec for the Townships table.
func Townships(clock Clock) Codec[entities.Township] {
	return &entityCodec[entities.Township]{
		key:   "TownshipId",
		id:    func(t *entities.Township) string { return t.TownshipID },
		clock: clock,
		shims: []Shim{LegacyNumericIDs},
		fill: func(t *entities.Township, now time.Time) {
			fillTimestamps(&t.Timestamps, now)
		},
	}
}

// Properties is the codec for the Properties table.
func Properties(clock Clock) Codec[entities.Property] {
	return &entityCodec[entities.Property]{
		key:   "PropertyId",
		id:    func(p *entities.Property) string { return p.PropertyID },
		clock: clock,
		shims: []Shim{LegacyNumericIDs},
		fill: func(p *entities.Property, now time.Time) {
			if p.PropertyCode == "" {
				p.PropertyCode = SyntheticCode("PROP", now)
			}
			fillTimestamps(&p.Timestamps, now)
		},
	}
}

// Surveys is the codec for the Surveys table. Both status names are written,
// and either one is accepted on read.
func Surveys(clock Clock) Codec[entities.Survey] {
	return &entityCodec[entities.Survey]{
		key:     "SurveyId",
		id:      func(s *entities.Survey) string { return s.SurveyID },
		clock:   clock,
		shims:   []Shim{LegacyNumericIDs, StatusAlias},
		prepare: func(s *entities.Survey) { s.ReconcileStatus() },
		fill: func(s *entities.Survey, now time.Time) {
			if s.SurveyNumber == "" {
				s.SurveyNumber = SyntheticCode("SURVEY", now)
			}
			if s.SurveyStatusID == "" && s.StatusID == "" {
				s.SetStatus(valueobjects.NewID())
			}
			s.ReconcileStatus()
			fillTimestamps(&s.Timestamps, now)
			if s.RequestDate.IsZero() {
				s.RequestDate = s.CreatedDate
			}
		},
	}
}

// SurveyTypes is the codec for the SurveyTypes table.
func SurveyTypes(clock Clock) Codec[entities.SurveyType] {
	return &entityCodec[entities.SurveyType]{
		key:   "SurveyTypeId",
		id:    func(t *entities.SurveyType) string { return t.SurveyTypeID },
		clock: clock,
		shims: []Shim{LegacyNumericIDs},
		fill: func(t *entities.SurveyType, now time.Time) {
			fillTimestamps(&t.Timestamps, now)
		},
	}
}

// SurveyStatuses is the codec for the SurveyStatuses table.
func SurveyStatuses(clock Clock) Codec[entities.SurveyStatus] {
	return &entityCodec[entities.SurveyStatus]{
		key:   "SurveyStatusId",
		id:    func(s *entities.SurveyStatus) string { return s.SurveyStatusID },
		clock: clock,
		shims: []Shim{LegacyNumericIDs},
		fill: func(s *entities.SurveyStatus, now time.Time) {
			fillTimestamps(&s.Timestamps, now)
		},
	}
}

// UserSettings is the codec for the UserSettings table. SettingsData is
// stored as a native map attribute; items that hold it as a JSON string are
// accepted too.
func UserSettings(clock Clock) Codec[entities.UserSettings] {
	return &entityCodec[entities.UserSettings]{
		key:    "UserSettingsId",
		id:     func(u *entities.UserSettings) string { return u.UserSettingsID },
		clock:  clock,
		shims:  []Shim{LegacyNumericIDs},
		encode: encodeSettingsData,
		decode: decodeSettingsData,
		fill: func(u *entities.UserSettings, now time.Time) {
			if u.UserID == "" {
				u.UserID = valueobjects.DefaultUserID
			}
			if len(u.SettingsData) == 0 {
				u.SettingsData = json.RawMessage(`{}`)
			}
			fillTimestamps(&u.Timestamps, now)
		},
	}
}

// BoardConfigurations is the codec for the BoardConfigurations table.
func BoardConfigurations(clock Clock) Codec[entities.BoardConfiguration] {
	return &entityCodec[entities.BoardConfiguration]{
		key:   "BoardConfigId",
		id:    func(b *entities.BoardConfiguration) string { return b.BoardConfigID },
		clock: clock,
		shims: []Shim{LegacyNumericIDs},
		fill: func(b *entities.BoardConfiguration, now time.Time) {
			if b.BoardSlug == "" {
				b.BoardSlug = valueobjects.Slugify(b.BoardName)
			}
			if b.UserID == "" {
				b.UserID = valueobjects.DefaultUserID
			}
			fillTimestamps(&b.Timestamps, now)
		},
	}
}

func encodeSettingsData(u *entities.UserSettings, item Item) error {
	if len(u.SettingsData) == 0 {
		return nil
	}
	var doc interface{}
	if err := json.Unmarshal(u.SettingsData, &doc); err != nil {
		return fmt.Errorf("settings data is not valid JSON: %w", err)
	}
	av, err := attributevalue.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal settings data: %w", err)
	}
	item["SettingsData"] = av
	return nil
}

func decodeSettingsData(item Item, u *entities.UserSettings) error {
	switch v := item["SettingsData"].(type) {
	case nil:
		return nil
	case *types.AttributeValueMemberS:
		if json.Valid([]byte(v.Value)) {
			u.SettingsData = json.RawMessage(v.Value)
			return nil
		}
		quoted, err := json.Marshal(v.Value)
		if err != nil {
			return err
		}
		u.SettingsData = quoted
		return nil
	default:
		var doc interface{}
		if err := attributevalue.Unmarshal(v, &doc); err != nil {
			return fmt.Errorf("failed to unmarshal settings data: %w", err)
		}
		raw, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("failed to encode settings data: %w", err)
		}
		u.SettingsData = raw
		return nil
	}
}
