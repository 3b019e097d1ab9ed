package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatZoneList(t *testing.T) {
	tests := []struct {
		name  string
		zones []ZoneSummary
		want  string
	}{
		{
			name:  "empty",
			zones: nil,
			want:  "No zones found.",
		},
		{
			name:  "single zone",
			zones: []ZoneSummary{{ID: "1", Name: "a.com"}},
			want:  "Found 1 zone(s):\n- a.com (ID: 1)",
		},
		{
			name: "two zones keep input order",
			zones: []ZoneSummary{
				{ID: "1", Name: "a.com"},
				{ID: "2", Name: "b.com"},
			},
			want: "Found 2 zone(s):\n- a.com (ID: 1)\n- b.com (ID: 2)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatZoneList(tt.zones))
		})
	}
}

func TestValidateRecordType(t *testing.T) {
	for _, recordType := range []string{"A", "CNAME", "MX", "TXT"} {
		assert.NoError(t, ValidateRecordType(recordType))
	}
	assert.ErrorContains(t, ValidateRecordType("SRV"), "unsupported record type")
	assert.ErrorContains(t, ValidateRecordType("a"), "unsupported record type")
	assert.ErrorContains(t, ValidateRecordType(""), "unsupported record type")
}
