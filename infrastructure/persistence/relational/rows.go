package relational

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"survey-backend/domain/core/entities"
	"survey-backend/domain/core/valueobjects"
)

// AuditColumns are shared by every row type that carries actors.
type AuditColumns struct {
	CreatedDate  time.Time `gorm:"column:created_date;not null"`
	ModifiedDate time.Time `gorm:"column:modified_date;not null"`
	CreatedBy    *string   `gorm:"column:created_by;type:varchar(100)"`
	ModifiedBy   *string   `gorm:"column:modified_by;type:varchar(100)"`
}

func toAudit(a entities.Audit) AuditColumns {
	return AuditColumns{
		CreatedDate:  a.CreatedDate.Time,
		ModifiedDate: a.ModifiedDate.Time,
		CreatedBy:    a.CreatedBy,
		ModifiedBy:   a.ModifiedBy,
	}
}

func (c AuditColumns) audit() entities.Audit {
	return entities.Audit{
		Timestamps: entities.Timestamps{
			CreatedDate:  valueobjects.TimestampOf(c.CreatedDate),
			ModifiedDate: valueobjects.TimestampOf(c.ModifiedDate),
		},
		CreatedBy:  c.CreatedBy,
		ModifiedBy: c.ModifiedBy,
	}
}

type TimestampColumns struct {
	CreatedDate  time.Time `gorm:"column:created_date;not null"`
	ModifiedDate time.Time `gorm:"column:modified_date;not null"`
}

func toTimestamps(t entities.Timestamps) TimestampColumns {
	return TimestampColumns{CreatedDate: t.CreatedDate.Time, ModifiedDate: t.ModifiedDate.Time}
}

func (c TimestampColumns) timestamps() entities.Timestamps {
	return entities.Timestamps{
		CreatedDate:  valueobjects.TimestampOf(c.CreatedDate),
		ModifiedDate: valueobjects.TimestampOf(c.ModifiedDate),
	}
}

func timePtr(ts *valueobjects.Timestamp) *time.Time {
	if ts == nil || !ts.Valid() {
		return nil
	}
	t := ts.Time
	return &t
}

func timestampPtr(t *time.Time) *valueobjects.Timestamp {
	if t == nil {
		return nil
	}
	return valueobjects.TimestampPtr(*t)
}

func decimalPtr(m *valueobjects.Money) *decimal.Decimal {
	if m == nil {
		return nil
	}
	d := m.Decimal
	return &d
}

func moneyPtr(d *decimal.Decimal) *valueobjects.Money {
	if d == nil {
		return nil
	}
	return &valueobjects.Money{Decimal: *d}
}

// CustomerRow is the customers table.
type CustomerRow struct {
	CustomerID       string  `gorm:"column:customer_id;type:varchar(64);primaryKey"`
	CustomerCode     string  `gorm:"column:customer_code;type:varchar(50);index"`
	CompanyName      string  `gorm:"column:company_name;type:varchar(200);index"`
	ContactFirstName *string `gorm:"column:contact_first_name;type:varchar(100)"`
	ContactLastName  *string `gorm:"column:contact_last_name;type:varchar(100)"`
	Email            *string `gorm:"column:email;type:varchar(200)"`
	Phone            *string `gorm:"column:phone;type:varchar(50)"`
	Fax              *string `gorm:"column:fax;type:varchar(50)"`
	Website          *string `gorm:"column:website;type:varchar(200)"`
	IsActive         bool    `gorm:"column:is_active;not null;default:true"`
	AuditColumns
}

func customerToRow(c *entities.Customer) *CustomerRow {
	return &CustomerRow{
		CustomerID:       c.CustomerID,
		CustomerCode:     c.CustomerCode,
		CompanyName:      c.CompanyName,
		ContactFirstName: c.ContactFirstName,
		ContactLastName:  c.ContactLastName,
		Email:            c.Email,
		Phone:            c.Phone,
		Fax:              c.Fax,
		Website:          c.Website,
		IsActive:         c.IsActive,
		AuditColumns:     toAudit(c.Audit),
	}
}

func customerFromRow(r *CustomerRow) *entities.Customer {
	return &entities.Customer{
		CustomerID:       r.CustomerID,
		CustomerCode:     r.CustomerCode,
		CompanyName:      r.CompanyName,
		ContactFirstName: r.ContactFirstName,
		ContactLastName:  r.ContactLastName,
		Email:            r.Email,
		Phone:            r.Phone,
		Fax:              r.Fax,
		Website:          r.Website,
		IsActive:         r.IsActive,
		Audit:            r.audit(),
	}
}

// TownshipRow is the townships table.
type TownshipRow struct {
	TownshipID   string `gorm:"column:township_id;type:varchar(64);primaryKey"`
	TownshipName string `gorm:"column:township_name;type:varchar(100);index"`
	County       string `gorm:"column:county;type:varchar(100)"`
	State        string `gorm:"column:state;type:varchar(50)"`
	IsActive     bool   `gorm:"column:is_active;not null;default:true"`
	AuditColumns
}

func townshipToRow(t *entities.Township) *TownshipRow {
	return &TownshipRow{
		TownshipID:   t.TownshipID,
		TownshipName: t.TownshipName,
		County:       t.County,
		State:        t.State,
		IsActive:     t.IsActive,
		AuditColumns: toAudit(t.Audit),
	}
}

func townshipFromRow(r *TownshipRow) *entities.Township {
	return &entities.Township{
		TownshipID:   r.TownshipID,
		TownshipName: r.TownshipName,
		County:       r.County,
		State:        r.State,
		IsActive:     r.IsActive,
		Audit:        r.audit(),
	}
}

// PropertyRow is the properties table.
type PropertyRow struct {
	PropertyID          string  `gorm:"column:property_id;type:varchar(64);primaryKey"`
	PropertyCode        string  `gorm:"column:property_code;type:varchar(50);index"`
	PropertyName        string  `gorm:"column:property_name;type:varchar(200)"`
	PropertyDescription *string `gorm:"column:property_description;type:text"`
	OwnerName           *string `gorm:"column:owner_name;type:varchar(200)"`
	OwnerPhone          *string `gorm:"column:owner_phone;type:varchar(50)"`
	OwnerEmail          *string `gorm:"column:owner_email;type:varchar(200)"`
	SurveyPrimaryKey    *int    `gorm:"column:survey_primary_key"`
	LegacyTax           *string `gorm:"column:legacy_tax;type:varchar(100)"`
	District            *string `gorm:"column:district;type:varchar(50)"`
	Section             *string `gorm:"column:section;type:varchar(50)"`
	Block               *string `gorm:"column:block;type:varchar(50)"`
	Lot                 *string `gorm:"column:lot;type:varchar(50)"`
	AddressID           *string `gorm:"column:address_id;type:varchar(64)"`
	TownshipID          *string `gorm:"column:township_id;type:varchar(64);index"`
	PropertyType        *string `gorm:"column:property_type;type:varchar(50)"`
	IsActive            bool    `gorm:"column:is_active;not null;default:true"`
	AuditColumns
}

func propertyToRow(p *entities.Property) *PropertyRow {
	return &PropertyRow{
		PropertyID:          p.PropertyID,
		PropertyCode:        p.PropertyCode,
		PropertyName:        p.PropertyName,
		PropertyDescription: p.PropertyDescription,
		OwnerName:           p.OwnerName,
		OwnerPhone:          p.OwnerPhone,
		OwnerEmail:          p.OwnerEmail,
		SurveyPrimaryKey:    p.SurveyPrimaryKey,
		LegacyTax:           p.LegacyTax,
		District:            p.District,
		Section:             p.Section,
		Block:               p.Block,
		Lot:                 p.Lot,
		AddressID:           p.AddressID,
		TownshipID:          p.TownshipID,
		PropertyType:        p.PropertyType,
		IsActive:            p.IsActive,
		AuditColumns:        toAudit(p.Audit),
	}
}

func propertyFromRow(r *PropertyRow) *entities.Property {
	return &entities.Property{
		PropertyID:          r.PropertyID,
		PropertyCode:        r.PropertyCode,
		PropertyName:        r.PropertyName,
		PropertyDescription: r.PropertyDescription,
		OwnerName:           r.OwnerName,
		OwnerPhone:          r.OwnerPhone,
		OwnerEmail:          r.OwnerEmail,
		SurveyPrimaryKey:    r.SurveyPrimaryKey,
		LegacyTax:           r.LegacyTax,
		District:            r.District,
		Section:             r.Section,
		Block:               r.Block,
		Lot:                 r.Lot,
		AddressID:           r.AddressID,
		TownshipID:          r.TownshipID,
		PropertyType:        r.PropertyType,
		IsActive:            r.IsActive,
		Audit:               r.audit(),
	}
}

// SurveyRow is the surveys table. Both status columns are kept so rows
// written by older clients that only set status_id still resolve.
type SurveyRow struct {
	SurveyID       string  `gorm:"column:survey_id;type:varchar(64);primaryKey"`
	SurveyNumber   string  `gorm:"column:survey_number;type:varchar(50);index"`
	CustomerID     *string `gorm:"column:customer_id;type:varchar(64);index"`
	PropertyID     *string `gorm:"column:property_id;type:varchar(64)"`
	SurveyTypeID   *string `gorm:"column:survey_type_id;type:varchar(64)"`
	SurveyStatusID *string `gorm:"column:survey_status_id;type:varchar(64)"`
	StatusID       *string `gorm:"column:status_id;type:varchar(64)"`
	Title          *string `gorm:"column:title;type:varchar(200)"`
	Description    *string `gorm:"column:description;type:text"`
	PurposeCode    *string `gorm:"column:purpose_code;type:varchar(20)"`

	RequestDate   time.Time  `gorm:"column:request_date;not null"`
	ScheduledDate *time.Time `gorm:"column:scheduled_date"`
	CompletedDate *time.Time `gorm:"column:completed_date"`
	DeliveryDate  *time.Time `gorm:"column:delivery_date"`
	DueDate       *time.Time `gorm:"column:due_date"`

	QuotedPrice   *decimal.Decimal `gorm:"column:quoted_price;type:numeric(12,2)"`
	FinalPrice    *decimal.Decimal `gorm:"column:final_price;type:numeric(12,2)"`
	EstimatedCost *decimal.Decimal `gorm:"column:estimated_cost;type:numeric(12,2)"`
	ActualCost    *decimal.Decimal `gorm:"column:actual_cost;type:numeric(12,2)"`

	Notes         *string `gorm:"column:notes;type:text"`
	SurveyorNotes *string `gorm:"column:surveyor_notes;type:text"`

	IsFieldworkComplete bool `gorm:"column:is_fieldwork_complete;not null;default:false"`
	IsDrawingComplete   bool `gorm:"column:is_drawing_complete;not null;default:false"`
	IsScanned           bool `gorm:"column:is_scanned;not null;default:false"`
	IsDelivered         bool `gorm:"column:is_delivered;not null;default:false"`
	IsActive            bool `gorm:"column:is_active;not null;default:true"`
	AuditColumns
}

func surveyToRow(s *entities.Survey) *SurveyRow {
	cp := *s
	cp.ReconcileStatus()
	return &SurveyRow{
		SurveyID:            cp.SurveyID,
		SurveyNumber:        cp.SurveyNumber,
		CustomerID:          cp.CustomerID,
		PropertyID:          cp.PropertyID,
		SurveyTypeID:        cp.SurveyTypeID,
		SurveyStatusID:      nonEmpty(cp.SurveyStatusID),
		StatusID:            nonEmpty(cp.StatusID),
		Title:               cp.Title,
		Description:         cp.Description,
		PurposeCode:         cp.PurposeCode,
		RequestDate:         cp.RequestDate.Time,
		ScheduledDate:       timePtr(cp.ScheduledDate),
		CompletedDate:       timePtr(cp.CompletedDate),
		DeliveryDate:        timePtr(cp.DeliveryDate),
		DueDate:             timePtr(cp.DueDate),
		QuotedPrice:         decimalPtr(cp.QuotedPrice),
		FinalPrice:          decimalPtr(cp.FinalPrice),
		EstimatedCost:       decimalPtr(cp.EstimatedCost),
		ActualCost:          decimalPtr(cp.ActualCost),
		Notes:               cp.Notes,
		SurveyorNotes:       cp.SurveyorNotes,
		IsFieldworkComplete: cp.IsFieldworkComplete,
		IsDrawingComplete:   cp.IsDrawingComplete,
		IsScanned:           cp.IsScanned,
		IsDelivered:         cp.IsDelivered,
		IsActive:            cp.IsActive,
		AuditColumns:        toAudit(cp.Audit),
	}
}

func surveyFromRow(r *SurveyRow) *entities.Survey {
	s := &entities.Survey{
		SurveyID:            r.SurveyID,
		SurveyNumber:        r.SurveyNumber,
		CustomerID:          r.CustomerID,
		PropertyID:          r.PropertyID,
		SurveyTypeID:        r.SurveyTypeID,
		SurveyStatusID:      entities.Deref(r.SurveyStatusID),
		StatusID:            entities.Deref(r.StatusID),
		Title:               r.Title,
		Description:         r.Description,
		PurposeCode:         r.PurposeCode,
		RequestDate:         valueobjects.TimestampOf(r.RequestDate),
		ScheduledDate:       timestampPtr(r.ScheduledDate),
		CompletedDate:       timestampPtr(r.CompletedDate),
		DeliveryDate:        timestampPtr(r.DeliveryDate),
		DueDate:             timestampPtr(r.DueDate),
		QuotedPrice:         moneyPtr(r.QuotedPrice),
		FinalPrice:          moneyPtr(r.FinalPrice),
		EstimatedCost:       moneyPtr(r.EstimatedCost),
		ActualCost:          moneyPtr(r.ActualCost),
		Notes:               r.Notes,
		SurveyorNotes:       r.SurveyorNotes,
		IsFieldworkComplete: r.IsFieldworkComplete,
		IsDrawingComplete:   r.IsDrawingComplete,
		IsScanned:           r.IsScanned,
		IsDelivered:         r.IsDelivered,
		IsActive:            r.IsActive,
		Audit:               r.audit(),
	}
	s.ReconcileStatus()
	return s
}

// SurveyTypeRow is the survey_types table.
type SurveyTypeRow struct {
	SurveyTypeID      string           `gorm:"column:survey_type_id;type:varchar(64);primaryKey"`
	SurveyTypeName    string           `gorm:"column:survey_type_name;type:varchar(100)"`
	Description       *string          `gorm:"column:description;type:text"`
	EstimatedDuration *int             `gorm:"column:estimated_duration"`
	BasePrice         *decimal.Decimal `gorm:"column:base_price;type:numeric(12,2)"`
	IsActive          bool             `gorm:"column:is_active;not null;default:true"`
	TimestampColumns
}

func surveyTypeToRow(t *entities.SurveyType) *SurveyTypeRow {
	return &SurveyTypeRow{
		SurveyTypeID:      t.SurveyTypeID,
		SurveyTypeName:    t.SurveyTypeName,
		Description:       t.Description,
		EstimatedDuration: t.EstimatedDuration,
		BasePrice:         decimalPtr(t.BasePrice),
		IsActive:          t.IsActive,
		TimestampColumns:  toTimestamps(t.Timestamps),
	}
}

func surveyTypeFromRow(r *SurveyTypeRow) *entities.SurveyType {
	return &entities.SurveyType{
		SurveyTypeID:      r.SurveyTypeID,
		SurveyTypeName:    r.SurveyTypeName,
		Description:       r.Description,
		EstimatedDuration: r.EstimatedDuration,
		BasePrice:         moneyPtr(r.BasePrice),
		IsActive:          r.IsActive,
		Timestamps:        r.timestamps(),
	}
}

// SurveyStatusRow is the survey_statuses table.
type SurveyStatusRow struct {
	SurveyStatusID string  `gorm:"column:survey_status_id;type:varchar(64);primaryKey"`
	StatusName     string  `gorm:"column:status_name;type:varchar(100)"`
	StatusCode     *string `gorm:"column:status_code;type:varchar(50)"`
	Description    *string `gorm:"column:description;type:text"`
	SortOrder      int     `gorm:"column:sort_order;not null;default:0"`
	IsActive       bool    `gorm:"column:is_active;not null;default:true"`
	TimestampColumns
}

func surveyStatusToRow(s *entities.SurveyStatus) *SurveyStatusRow {
	return &SurveyStatusRow{
		SurveyStatusID:   s.SurveyStatusID,
		StatusName:       s.StatusName,
		StatusCode:       s.StatusCode,
		Description:      s.Description,
		SortOrder:        s.SortOrder,
		IsActive:         s.IsActive,
		TimestampColumns: toTimestamps(s.Timestamps),
	}
}

func surveyStatusFromRow(r *SurveyStatusRow) *entities.SurveyStatus {
	return &entities.SurveyStatus{
		SurveyStatusID: r.SurveyStatusID,
		StatusName:     r.StatusName,
		StatusCode:     r.StatusCode,
		Description:    r.Description,
		SortOrder:      r.SortOrder,
		IsActive:       r.IsActive,
		Timestamps:     r.timestamps(),
	}
}

// UserSettingsRow is the user_settings table. SettingsData is a jsonb column.
type UserSettingsRow struct {
	UserSettingsID string         `gorm:"column:user_settings_id;type:varchar(64);primaryKey"`
	UserID         string         `gorm:"column:user_id;type:varchar(100);index:idx_user_settings_owner"`
	SettingsType   string         `gorm:"column:settings_type;type:varchar(100);index:idx_user_settings_owner"`
	SettingsData   datatypes.JSON `gorm:"column:settings_data;type:jsonb;not null"`
	IsActive       bool           `gorm:"column:is_active;not null;default:true"`
	TimestampColumns
}

func userSettingsToRow(u *entities.UserSettings) *UserSettingsRow {
	data := datatypes.JSON(u.SettingsData)
	if len(data) == 0 {
		data = datatypes.JSON(`{}`)
	}
	return &UserSettingsRow{
		UserSettingsID:   u.UserSettingsID,
		UserID:           u.UserID,
		SettingsType:     u.SettingsType,
		SettingsData:     data,
		IsActive:         u.IsActive,
		TimestampColumns: toTimestamps(u.Timestamps),
	}
}

func userSettingsFromRow(r *UserSettingsRow) *entities.UserSettings {
	return &entities.UserSettings{
		UserSettingsID: r.UserSettingsID,
		UserID:         r.UserID,
		SettingsType:   r.SettingsType,
		SettingsData:   json.RawMessage(r.SettingsData),
		IsActive:       r.IsActive,
		Timestamps:     r.timestamps(),
	}
}

// BoardConfigurationRow is the board_configurations table.
type BoardConfigurationRow struct {
	BoardConfigID string  `gorm:"column:board_config_id;type:varchar(64);primaryKey"`
	BoardName     string  `gorm:"column:board_name;type:varchar(200)"`
	BoardSlug     string  `gorm:"column:board_slug;type:varchar(200);index"`
	Description   *string `gorm:"column:description;type:text"`
	UserID        string  `gorm:"column:user_id;type:varchar(100);index"`
	IsDefault     bool    `gorm:"column:is_default;not null;default:false"`
	IsActive      bool    `gorm:"column:is_active;not null;default:true"`
	AuditColumns
}

func boardToRow(b *entities.BoardConfiguration) *BoardConfigurationRow {
	return &BoardConfigurationRow{
		BoardConfigID: b.BoardConfigID,
		BoardName:     b.BoardName,
		BoardSlug:     b.BoardSlug,
		Description:   b.Description,
		UserID:        b.UserID,
		IsDefault:     b.IsDefault,
		IsActive:      b.IsActive,
		AuditColumns:  toAudit(b.Audit),
	}
}

func boardFromRow(r *BoardConfigurationRow) *entities.BoardConfiguration {
	return &entities.BoardConfiguration{
		BoardConfigID: r.BoardConfigID,
		BoardName:     r.BoardName,
		BoardSlug:     r.BoardSlug,
		Description:   r.Description,
		UserID:        r.UserID,
		IsDefault:     r.IsDefault,
		IsActive:      r.IsActive,
		Audit:         r.audit(),
	}
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
