// Package seed holds the fixed reference data every deployment starts with,
// the mock dataset served in offline mode, and the seeder that writes them.
package seed

import (
	"fmt"
	"strings"
	"time"

	"survey-backend/domain/core/entities"
	"survey-backend/domain/core/valueobjects"
)

// IDFunc assigns the identity of the i-th record of a kind. Seeding uses
// random identities; the offline dataset uses stable ones.
type IDFunc func(kind string, i int) string

// RandomIDs ignores its arguments and returns a fresh identity.
func RandomIDs(string, int) string { return valueobjects.NewID() }

// StableIDs returns ids such as mock-survey-type-3.
func StableIDs(kind string, i int) string {
	return fmt.Sprintf("mock-%s-%d", kind, i+1)
}

type namedDescription struct {
	name        string
	description string
}

var surveyTypes = []namedDescription{
	{"Boundary Survey", "A survey that establishes or reestablishes boundaries of a parcel using its legal description."},
	{"Topographic Survey", "A survey that shows the elevations and contours of the land surface."},
	{"ALTA/NSPS Land Title Survey", "A standardized type of survey that meets specific requirements set by the American Land Title Association and National Society of Professional Surveyors."},
	{"Subdivision Survey", "A survey that divides a tract of land into smaller parcels for development."},
	{"Construction Survey", "A survey that provides precise measurements and locations for construction projects."},
	{"As-Built Survey", "A survey that documents the final constructed locations of buildings and improvements."},
	{"Mortgage Survey", "A simplified boundary survey often required by mortgage lenders."},
	{"Easement Survey", "A survey that identifies and maps easements and rights-of-way."},
	{"Flood Elevation Certificate", "A survey that determines the elevation of a structure in relation to flood zones."},
}

var surveyStatuses = []namedDescription{
	{"Requested", "Survey has been requested but not yet started."},
	{"In Progress", "Survey work is currently underway."},
	{"Field Work Complete", "Field work has been completed, processing data."},
	{"Draft Complete", "Draft survey has been completed and is under review."},
	{"Client Review", "Survey is with client for review and approval."},
	{"Revisions Required", "Client has requested revisions to the survey."},
	{"Final Review", "Survey is undergoing final internal review."},
	{"Completed", "Survey has been completed and delivered to client."},
	{"On Hold", "Survey work has been temporarily suspended."},
	{"Cancelled", "Survey has been cancelled by client or due to other circumstances."},
}

// The ten towns of Suffolk County, New York.
var townshipNames = []string{
	"Babylon",
	"Brookhaven",
	"East Hampton",
	"Huntington",
	"Islip",
	"Riverhead",
	"Shelter Island",
	"Smithtown",
	"Southampton",
	"Southold",
}

const (
	townshipCounty = "Suffolk"
	townshipState  = "NY"
)

// SurveyTypes returns the reference survey types.
func SurveyTypes(now time.Time, ids IDFunc) []*entities.SurveyType {
	out := make([]*entities.SurveyType, 0, len(surveyTypes))
	for i, t := range surveyTypes {
		st := entities.NewSurveyType(t.name, now)
		st.SurveyTypeID = ids("survey-type", i)
		st.Description = entities.StringPtr(t.description)
		out = append(out, st)
	}
	return out
}

// SurveyStatuses returns the reference statuses in workflow order. SortOrder
// starts at 1 and StatusCode is the upper-cased name with underscores.
func SurveyStatuses(now time.Time, ids IDFunc) []*entities.SurveyStatus {
	out := make([]*entities.SurveyStatus, 0, len(surveyStatuses))
	for i, s := range surveyStatuses {
		status := entities.NewSurveyStatus(s.name, i+1, now)
		status.SurveyStatusID = ids("survey-status", i)
		status.Description = entities.StringPtr(s.description)
		status.StatusCode = entities.StringPtr(statusCode(s.name))
		out = append(out, status)
	}
	return out
}

// Townships returns the reference townships.
func Townships(now time.Time, ids IDFunc) []*entities.Township {
	out := make([]*entities.Township, 0, len(townshipNames))
	for i, name := range townshipNames {
		t := entities.NewTownship(name, townshipCounty, townshipState, now, valueobjects.SystemPrincipal)
		t.TownshipID = ids("township", i)
		out = append(out, t)
	}
	return out
}

func statusCode(name string) string {
	return strings.ReplaceAll(strings.ToUpper(name), " ", "_")
}
