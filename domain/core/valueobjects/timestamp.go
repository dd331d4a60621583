package valueobjects

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

// StorageLayout is the ISO-8601 form written to storage.
const StorageLayout = time.RFC3339Nano

// layouts accepted when reading. Naive forms are interpreted as UTC.
var layouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// Timestamp is a UTC instant that tolerates unparseable stored text. When a
// stored value cannot be parsed, Raw keeps it verbatim and Time stays zero.
type Timestamp struct {
	Time time.Time
	Raw  string
}

// Now returns the current UTC instant.
func Now() Timestamp {
	return Timestamp{Time: time.Now().UTC()}
}

// TimestampOf wraps t, normalised to UTC.
func TimestampOf(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC()}
}

// TimestampPtr is a convenience for optional date fields.
func TimestampPtr(t time.Time) *Timestamp {
	ts := TimestampOf(t)
	return &ts
}

// ParseTimestamp never fails; see Timestamp.
func ParseTimestamp(s string) Timestamp {
	s = strings.TrimSpace(s)
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Timestamp{Time: t.UTC()}
		}
	}
	return Timestamp{Raw: s}
}

// IsZero reports whether neither a time nor raw text is held.
func (t Timestamp) IsZero() bool {
	return t.Time.IsZero() && t.Raw == ""
}

// Valid reports whether the value holds a parsed time.
func (t Timestamp) Valid() bool {
	return !t.Time.IsZero()
}

// Equal compares instants, or raw text for unparsed values.
func (t Timestamp) Equal(other Timestamp) bool {
	if t.Valid() || other.Valid() {
		return t.Time.Equal(other.Time)
	}
	return t.Raw == other.Raw
}

// After reports whether t is strictly later than other.
func (t Timestamp) After(other Timestamp) bool {
	return t.Time.After(other.Time)
}

func (t Timestamp) String() string {
	if !t.Valid() {
		return t.Raw
	}
	return t.Time.UTC().Format(StorageLayout)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.String())
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}
	*t = ParseTimestamp(s)
	return nil
}

// MarshalDynamoDBAttributeValue writes the ISO-8601 string.
func (t Timestamp) MarshalDynamoDBAttributeValue() (types.AttributeValue, error) {
	if t.IsZero() {
		return &types.AttributeValueMemberNULL{Value: true}, nil
	}
	return &types.AttributeValueMemberS{Value: t.String()}, nil
}

// UnmarshalDynamoDBAttributeValue parses S values and epoch-second N values.
func (t *Timestamp) UnmarshalDynamoDBAttributeValue(av types.AttributeValue) error {
	switch v := av.(type) {
	case *types.AttributeValueMemberS:
		*t = ParseTimestamp(v.Value)
	case *types.AttributeValueMemberN:
		secs, err := decimal.NewFromString(v.Value)
		if err != nil {
			*t = Timestamp{Raw: v.Value}
			return nil
		}
		whole := secs.Truncate(0)
		nanos := secs.Sub(whole).Shift(9).IntPart()
		*t = TimestampOf(time.Unix(whole.IntPart(), nanos))
	case *types.AttributeValueMemberNULL:
	default:
		return fmt.Errorf("unsupported attribute type %T for timestamp", av)
	}
	return nil
}
