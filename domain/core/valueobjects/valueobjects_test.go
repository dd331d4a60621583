package valueobjects_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"survey-backend/domain/core/valueobjects"
)

func TestMoney_StringKeepsTwoDecimals(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1500", "1500.00"},
		{"1500.00", "1500.00"},
		{"1500.5", "1500.50"},
		{"1500.125", "1500.125"},
		{"0", "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			// Act
			m, err := valueobjects.NewMoney(tt.in)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.String())
		})
	}
}

func TestMoney_RejectsGarbage(t *testing.T) {
	_, err := valueobjects.NewMoney("fifteen hundred")
	assert.Error(t, err)
}

func TestMoney_JSONIsExact(t *testing.T) {
	// Arrange
	var m valueobjects.Money

	// Act
	err := json.Unmarshal([]byte(`1500.10`), &m)
	require.NoError(t, err)
	out, err := json.Marshal(m)

	// Assert
	require.NoError(t, err)
	assert.JSONEq(t, `"1500.10"`, string(out))
	assert.True(t, m.Equal(valueobjects.MustMoney("1500.1")))
}

func TestMoney_Storable(t *testing.T) {
	tests := []struct {
		amount string
		want   bool
	}{
		{"1500", true},
		{"1500.13", true},
		{"1500.130", true},
		{"-25.5", true},
		{"9999999999.99", true},
		{"1500.125", false},
		{"0.001", false},
		{"10000000000", false},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			assert.Equal(t, tt.want, valueobjects.MustMoney(tt.amount).Storable())
		})
	}
}

func TestMoney_DynamoDBRoundTrip(t *testing.T) {
	// Arrange
	in := valueobjects.MustMoney("1500.00")

	// Act
	av, err := in.MarshalDynamoDBAttributeValue()
	require.NoError(t, err)
	var out valueobjects.Money
	err = out.UnmarshalDynamoDBAttributeValue(av)

	// Assert
	require.NoError(t, err)
	_, isNumber := av.(*types.AttributeValueMemberN)
	assert.True(t, isNumber)
	assert.True(t, in.Equal(out))
}

func TestMoney_AcceptsStringAttribute(t *testing.T) {
	var m valueobjects.Money
	err := m.UnmarshalDynamoDBAttributeValue(&types.AttributeValueMemberS{Value: "99.95"})
	require.NoError(t, err)
	assert.Equal(t, "99.95", m.String())
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"spaces", "My Board", "my-board"},
		{"punctuation runs", "  --Field__Work!! Plan-- ", "field-work-plan"},
		{"digits kept", "Q3 2024 Surveys", "q3-2024-surveys"},
		{"non-ascii is a separator", "Café Plan", "caf-plan"},
		{"nothing usable", "!!!", "board"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, valueobjects.Slugify(tt.in))
		})
	}
}

func TestUniqueSlug_AppendsCounter(t *testing.T) {
	// Arrange
	taken := map[string]bool{"main": true, "main-2": true}

	// Act
	slug := valueobjects.UniqueSlug("main", func(s string) bool { return taken[s] })

	// Assert
	assert.Equal(t, "main-3", slug)
	assert.Equal(t, "other", valueobjects.UniqueSlug("other", func(s string) bool { return taken[s] }))
}

func TestParseTimestamp(t *testing.T) {
	want := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		in   string
	}{
		{"rfc3339", "2024-01-15T10:30:00Z"},
		{"offset", "2024-01-15T12:30:00+02:00"},
		{"naive", "2024-01-15T10:30:00"},
		{"space separated", "2024-01-15 10:30:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := valueobjects.ParseTimestamp(tt.in)
			assert.True(t, ts.Valid())
			assert.True(t, ts.Time.Equal(want))
		})
	}
}

func TestParseTimestamp_KeepsUnparseableText(t *testing.T) {
	// Act
	ts := valueobjects.ParseTimestamp("next tuesday")

	// Assert
	assert.False(t, ts.Valid())
	assert.False(t, ts.IsZero())
	assert.Equal(t, "next tuesday", ts.String())
}

func TestTimestamp_JSON(t *testing.T) {
	// Arrange
	ts := valueobjects.TimestampOf(time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC))

	// Act
	out, err := json.Marshal(ts)
	require.NoError(t, err)
	zero, err := json.Marshal(valueobjects.Timestamp{})
	require.NoError(t, err)

	// Assert
	assert.Equal(t, `"2024-03-01T08:00:00Z"`, string(out))
	assert.Equal(t, "null", string(zero))
}

func TestTimestamp_ReadsEpochSeconds(t *testing.T) {
	tests := []struct {
		value string
		want  time.Time
	}{
		{"1700000000", time.Unix(1700000000, 0)},
		{"1717243200.5", time.Unix(1717243200, 500000000)},
		{"10000000000", time.Unix(10000000000, 0)},
		{"-1.25", time.Unix(-1, -250000000)},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			var ts valueobjects.Timestamp

			err := ts.UnmarshalDynamoDBAttributeValue(&types.AttributeValueMemberN{Value: tt.value})

			require.NoError(t, err)
			assert.True(t, ts.Time.Equal(tt.want), "got %s", ts.Time)
		})
	}
}

func TestIDs(t *testing.T) {
	assert.True(t, valueobjects.IsUUID(valueobjects.NewID()))
	assert.False(t, valueobjects.IsUUID("42"))
	assert.Equal(t, "42", valueobjects.IDFromNumber(42))
}
