package shape

import (
	"fmt"
	"slices"
	"strings"
)

// ZoneSummary is the slice of a zone the text listing needs.
type ZoneSummary struct {
	ID   string
	Name string
}

// FormatZoneList renders the human-readable zone listing.
func FormatZoneList(zones []ZoneSummary) string {
	if len(zones) == 0 {
		return "No zones found."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d zone(s):", len(zones))
	for _, z := range zones {
		fmt.Fprintf(&b, "\n- %s (ID: %s)", z.Name, z.ID)
	}
	return b.String()
}

var recordTypes = []string{"A", "CNAME", "MX", "TXT"}

// ValidateRecordType restricts DNS writes to the supported record types.
func ValidateRecordType(recordType string) error {
	if slices.Contains(recordTypes, recordType) {
		return nil
	}
	return fmt.Errorf("unsupported record type %q (must be one of %s)", recordType, strings.Join(recordTypes, ", "))
}
