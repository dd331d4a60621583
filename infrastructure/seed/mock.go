package seed

import (
	"fmt"
	"strings"
	"time"

	"survey-backend/domain/core/entities"
	"survey-backend/domain/core/valueobjects"
)

// Dataset is a full set of records for every collection except the
// user-scoped ones.
type Dataset struct {
	SurveyTypes    []*entities.SurveyType
	SurveyStatuses []*entities.SurveyStatus
	Townships      []*entities.Township
	Customers      []*entities.Customer
	Properties     []*entities.Property
	Surveys        []*entities.Survey
}

// Reference is the dataset holding only the lookup collections.
func Reference(now time.Time, ids IDFunc) *Dataset {
	return &Dataset{
		SurveyTypes:    SurveyTypes(now, ids),
		SurveyStatuses: SurveyStatuses(now, ids),
		Townships:      Townships(now, ids),
	}
}

// Mock is the dataset served by reads in offline mode. Identities are stable
// so clients can link between records. The two properties carry the numeric
// identities older clients expect.
func Mock(now time.Time) *Dataset {
	d := Reference(now, StableIDs)
	requested := d.SurveyStatuses[0].SurveyStatusID
	system := valueobjects.SystemPrincipal

	c1 := entities.NewCustomer("MOCK001", "Mock Company 1", now, system)
	c1.CustomerID = "mock-customer-1"
	c1.ContactFirstName = entities.StringPtr("John")
	c1.ContactLastName = entities.StringPtr("Doe")
	c1.Email = entities.StringPtr("john@mockcompany1.com")
	c1.Phone = entities.StringPtr("555-0001")

	c2 := entities.NewCustomer("MOCK002", "Mock Company 2", now, system)
	c2.CustomerID = "mock-customer-2"
	c2.ContactFirstName = entities.StringPtr("Jane")
	c2.ContactLastName = entities.StringPtr("Smith")
	c2.Email = entities.StringPtr("jane@mockcompany2.com")
	c2.Phone = entities.StringPtr("555-0002")

	p1 := mockProperty(now, 1, "A sample property for testing", "John Owner", "john@mockowner1.com", "A", "Residential")
	p2 := mockProperty(now, 2, "Another sample property for testing", "Jane Owner", "jane@mockowner2.com", "B", "Commercial")

	s1 := entities.NewSurvey("SURV001", requested, now, system)
	s1.SurveyID = "mock-survey-1"
	s1.CustomerID = entities.StringPtr(c1.CustomerID)
	s1.PropertyID = entities.StringPtr(p1.PropertyID)
	s1.Notes = entities.StringPtr("Mock survey for testing")

	s2 := entities.NewSurvey("SURV002", requested, now, system)
	s2.SurveyID = "mock-survey-2"
	s2.CustomerID = entities.StringPtr(c2.CustomerID)
	s2.PropertyID = entities.StringPtr(p2.PropertyID)
	s2.Notes = entities.StringPtr("Another mock survey")

	d.Customers = []*entities.Customer{c1, c2}
	d.Properties = []*entities.Property{p1, p2}
	d.Surveys = []*entities.Survey{s1, s2}
	return d
}

func mockProperty(now time.Time, n int, description, owner, email, section, kind string) *entities.Property {
	p := entities.NewProperty(fmt.Sprintf("PROP%03d", n), fmt.Sprintf("Mock Property %d", n), now, valueobjects.SystemPrincipal)
	p.PropertyID = valueobjects.IDFromNumber(int64(n))
	p.PropertyDescription = entities.StringPtr(description)
	p.OwnerName = entities.StringPtr(owner)
	p.OwnerPhone = entities.StringPtr(fmt.Sprintf("555-%04d", n))
	p.OwnerEmail = entities.StringPtr(email)
	p.AddressID = entities.StringPtr(valueobjects.IDFromNumber(int64(100 + n)))
	p.TownshipID = entities.StringPtr(valueobjects.IDFromNumber(int64(200 + n)))
	p.SurveyPrimaryKey = entities.IntPtr(300 + n)
	p.LegacyTax = entities.StringPtr(fmt.Sprintf("TAX%03d", n))
	p.District = entities.StringPtr(fmt.Sprintf("District %d", n))
	p.Section = entities.StringPtr("Section " + section)
	p.Block = entities.StringPtr(fmt.Sprintf("Block %d", n))
	p.Lot = entities.StringPtr(fmt.Sprintf("Lot %d", n))
	p.PropertyType = entities.StringPtr(kind)
	return p
}

type sampleCustomer struct {
	code, company, first, last, email, phone, fax, website string
}

var sampleCustomers = []sampleCustomer{
	{"ACME001", "ACME Development Corporation", "John", "Smith", "j.smith@acmedev.com", "(631) 555-0101", "", "www.acmedev.com"},
	{"SUFF002", "Suffolk County Engineering", "Maria", "Rodriguez", "m.rodriguez@suffolk.gov", "(631) 555-0202", "", ""},
	{"HAMP003", "Hamptons Real Estate Group", "Robert", "Johnson", "robert@hamptonsrealestate.com", "(631) 555-0303", "", "www.hamptonsrealestate.com"},
	{"LONG004", "Long Island Construction Co.", "Sarah", "Davis", "sarah.davis@liconst.com", "(631) 555-0404", "(631) 555-0405", ""},
	{"EAST005", "East End Properties LLC", "Michael", "Wilson", "m.wilson@eastendprops.com", "(631) 555-0505", "", ""},
	{"HUNT006", "Huntington Bay Developers", "Jennifer", "Brown", "jen.brown@huntingtonbay.com", "(631) 555-0606", "", "www.huntingtonbay.com"},
	{"BAYL007", "Bayfront Land Trust", "David", "Miller", "dmiller@bayfronttrust.org", "(631) 555-0707", "", ""},
	{"ISLP008", "Islip Town Planning Department", "Lisa", "Anderson", "l.anderson@isliptown.gov", "(631) 555-0808", "", ""},
}

type sampleProperty struct {
	name, description, owner, email, town, district, section, block, lot, kind string
}

// town names one of townshipNames.
var sampleProperties = []sampleProperty{
	{"Oceanfront Parcel - Montauk", "Prime oceanfront development parcel with 300 feet of beach frontage", "Coastal Holdings LLC", "info@coastalholdings.com", "East Hampton", "001", "12", "A", "15", "Commercial"},
	{"Residential Lot - Bay Shore", "Single family residential building lot in established neighborhood", "John and Mary Peterson", "", "Islip", "002", "08", "B", "23", "Residential"},
	{"Industrial Complex - Ronkonkoma", "Light industrial facility with warehouse and office space", "Suffolk Industrial Partners", "", "Brookhaven", "003", "15", "C", "07", "Industrial"},
	{"Historic Estate - Sag Harbor", "Historic waterfront estate with original 1890s mansion", "Heritage Preservation Society", "", "Southampton", "004", "22", "D", "01", "Historic"},
	{"Shopping Center - Commack", "Regional shopping center with anchor stores and parking", "Retail Development Corp", "", "Smithtown", "005", "18", "E", "12", "Commercial"},
	{"Agricultural Land - Riverhead", "Working farm with 50 acres of cultivated land", "Green Fields Farm LLC", "", "Riverhead", "006", "25", "F", "05", "Agricultural"},
	{"Waterfront Condo Site - Huntington", "Approved condominium development site with harbor views", "Harbor Point Developers", "", "Huntington", "007", "11", "G", "18", "Residential"},
	{"Office Complex - Melville", "Class A office building with professional tenants", "Corporate Center Holdings", "", "Huntington", "008", "14", "H", "09", "Commercial"},
}

var purposeCodes = []string{"DEV", "REF", "LEG", "TIT", "CON"}

// SampleSurveyCount is the number of surveys in the sample dataset.
const SampleSurveyCount = 15

// Sample is a demonstration dataset of Suffolk County customers, properties
// and surveys linked to ref. It is deterministic: survey i picks its
// customer, property, type and status by rotating through each list.
func Sample(now time.Time, ref *Dataset, ids IDFunc) *Dataset {
	system := valueobjects.SystemPrincipal
	d := &Dataset{}

	for i, c := range sampleCustomers {
		customer := entities.NewCustomer(c.code, c.company, now, system)
		customer.CustomerID = ids("customer", i)
		customer.ContactFirstName = entities.StringPtr(c.first)
		customer.ContactLastName = entities.StringPtr(c.last)
		customer.Email = entities.StringPtr(c.email)
		customer.Phone = entities.StringPtr(c.phone)
		customer.Fax = optional(c.fax)
		customer.Website = optional(c.website)
		d.Customers = append(d.Customers, customer)
	}

	townships := make(map[string]string, len(ref.Townships))
	for _, t := range ref.Townships {
		townships[t.TownshipName] = t.TownshipID
	}
	for i, p := range sampleProperties {
		property := entities.NewProperty(fmt.Sprintf("PROP%03d", i+1), p.name, now, system)
		property.PropertyID = ids("property", i)
		property.PropertyDescription = entities.StringPtr(p.description)
		property.OwnerName = entities.StringPtr(p.owner)
		property.OwnerPhone = entities.StringPtr(fmt.Sprintf("(631) 555-%04d", 1001+i))
		property.OwnerEmail = optional(p.email)
		property.District = entities.StringPtr(p.district)
		property.Section = entities.StringPtr(p.section)
		property.Block = entities.StringPtr(p.block)
		property.Lot = entities.StringPtr(p.lot)
		property.PropertyType = entities.StringPtr(p.kind)
		if id, ok := townships[p.town]; ok {
			property.TownshipID = entities.StringPtr(id)
		}
		d.Properties = append(d.Properties, property)
	}

	if len(ref.SurveyTypes) == 0 || len(ref.SurveyStatuses) == 0 {
		return d
	}
	for i := 0; i < SampleSurveyCount; i++ {
		customer := d.Customers[i%len(d.Customers)]
		property := d.Properties[(i*3)%len(d.Properties)]
		surveyType := ref.SurveyTypes[i%len(ref.SurveyTypes)]
		status := ref.SurveyStatuses[i%len(ref.SurveyStatuses)]
		d.Surveys = append(d.Surveys, sampleSurvey(now, i, ids, customer, property, surveyType, status))
	}
	return d
}

func sampleSurvey(now time.Time, i int, ids IDFunc, customer *entities.Customer, property *entities.Property,
	surveyType *entities.SurveyType, status *entities.SurveyStatus) *entities.Survey {
	requested := now.AddDate(0, 0, -(30 + 20*i))
	scheduled := requested.AddDate(0, 0, 5+i%20)
	due := scheduled.AddDate(0, 0, 10+(i*7)%50)
	quoted := 2500 + (i*1733)%12500

	s := entities.NewSurvey(fmt.Sprintf("SURV-2024-%03d", i+1), status.SurveyStatusID, now, valueobjects.SystemPrincipal)
	s.SurveyID = ids("survey", i)
	s.CustomerID = entities.StringPtr(customer.CustomerID)
	s.PropertyID = entities.StringPtr(property.PropertyID)
	s.SurveyTypeID = entities.StringPtr(surveyType.SurveyTypeID)
	s.Title = entities.StringPtr(surveyType.SurveyTypeName + " - " + property.PropertyName)
	s.Description = entities.StringPtr(fmt.Sprintf("Professional %s for %s",
		strings.ToLower(surveyType.SurveyTypeName), property.PropertyName))
	s.PurposeCode = entities.StringPtr(purposeCodes[i%len(purposeCodes)])
	s.RequestDate = valueobjects.TimestampOf(requested)
	s.ScheduledDate = valueobjects.TimestampPtr(scheduled)
	s.DueDate = valueobjects.TimestampPtr(due)
	s.QuotedPrice = valueobjects.MoneyPtr(fmt.Sprintf("%d.00", quoted))
	s.EstimatedCost = valueobjects.MoneyPtr(fmt.Sprintf("%d.00", quoted*7/10))
	s.Notes = entities.StringPtr(fmt.Sprintf("Survey requested by %s for property development project.", customer.CompanyName))

	if status.StatusName == "Completed" || status.StatusName == "Final Review" {
		completed := scheduled.AddDate(0, 0, 1+i%30)
		final := quoted + (i*311)%1500 - 500
		s.CompletedDate = valueobjects.TimestampPtr(completed)
		s.DeliveryDate = valueobjects.TimestampPtr(completed.AddDate(0, 0, 1+i%7))
		s.FinalPrice = valueobjects.MoneyPtr(fmt.Sprintf("%d.00", final))
		s.ActualCost = valueobjects.MoneyPtr(fmt.Sprintf("%d.00", final*8/10))
		s.IsFieldworkComplete = true
		s.IsDrawingComplete = true
		s.IsScanned = true
		s.IsDelivered = status.StatusName == "Completed"
	}
	return s
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return entities.StringPtr(s)
}
