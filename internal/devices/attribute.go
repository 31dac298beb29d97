package devices

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"connectlife/internal/api"
	"connectlife/internal/logging"
)

// Attribute types as reported by the cloud property descriptors.
const (
	TypeNumber = "Number"
	TypeEnum   = "Enum"
	TypeString = "String"
)

// Attribute describes one status key of a device: its human name, type,
// accepted values, and whether it can be written.
type Attribute struct {
	Key       string
	Name      string
	Type      string
	Step      int
	// ValueRange lists accepted values, either as an enumeration
	// ("0,1,2") or as numeric spans ("16~32,61~90").
	ValueRange string
	// ValueMap translates raw enum values to display labels.
	ValueMap  map[string]string
	ReadWrite string
}

// Writable reports whether the attribute accepts control commands.
func (a Attribute) Writable() bool {
	return a.ReadWrite != "R"
}

// Label translates a raw status value to its display label, falling back
// to the raw value for unmapped entries.
func (a Attribute) Label(raw string) string {
	if a.ValueMap != nil {
		if label, ok := a.ValueMap[raw]; ok {
			return label
		}
	}
	return raw
}

// Validate checks a candidate value against the attribute's constraints
// before it is sent to the device.
func (a Attribute) Validate(value any) error {
	if !a.Writable() {
		return fmt.Errorf("%s is read-only", a.Key)
	}

	raw := fmt.Sprintf("%v", value)
	if a.ValueMap != nil {
		if _, ok := a.ValueMap[raw]; !ok {
			return fmt.Errorf("%s must be one of %s", a.Key, strings.Join(a.sortedMapKeys(), ", "))
		}
		return nil
	}
	if a.ValueRange != "" {
		num, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("%s expects a number, got %q", a.Key, raw)
		}
		if !rangeContains(a.ValueRange, num) {
			return fmt.Errorf("%s value %v is outside range %s", a.Key, value, a.ValueRange)
		}
	}
	return nil
}

func (a Attribute) sortedMapKeys() []string {
	keys := make([]string, 0, len(a.ValueMap))
	for k := range a.ValueMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// rangeContains checks a value against a range spec like "16~32,61~90" or
// an enumeration like "0,1,2".
func rangeContains(spec string, v float64) bool {
	for _, part := range strings.Split(spec, ",") {
		lo, hi, found := strings.Cut(part, "~")
		if found {
			min, errLo := strconv.ParseFloat(strings.TrimSpace(lo), 64)
			max, errHi := strconv.ParseFloat(strings.TrimSpace(hi), 64)
			if errLo == nil && errHi == nil && v >= min && v <= max {
				return true
			}
			continue
		}
		if single, err := strconv.ParseFloat(strings.TrimSpace(part), 64); err == nil && v == single {
			return true
		}
	}
	return false
}

// Schema is the set of known attributes for one device type and feature
// code combination.
type Schema struct {
	TypeCode    string
	FeatureCode string
	Name        string
	Attributes  map[string]Attribute
}

// Attribute looks up one attribute by status key.
func (s *Schema) Attribute(key string) (Attribute, bool) {
	attr, ok := s.Attributes[key]
	return attr, ok
}

// ParseStatus interprets a raw status map using the schema: enum values
// are mapped to labels and numbers are parsed. Keys the schema does not
// know are dropped; values that fail to parse are skipped with a warning.
func (s *Schema) ParseStatus(status map[string]any) map[string]any {
	parsed := make(map[string]any, len(status))
	for key, attr := range s.Attributes {
		raw, ok := status[key]
		if !ok {
			continue
		}
		rawStr := fmt.Sprintf("%v", raw)
		if attr.ValueMap != nil {
			if label, ok := attr.ValueMap[rawStr]; ok {
				parsed[key] = label
				continue
			}
		}
		if attr.Type == TypeNumber {
			num, err := strconv.ParseFloat(rawStr, 64)
			if err != nil {
				logging.Warn("Unparseable status value",
					zap.String("key", key), zap.String("value", rawStr))
				continue
			}
			parsed[key] = num
			continue
		}
		parsed[key] = raw
	}
	return parsed
}

// FilterByProperties returns a copy of the schema narrowed to the
// properties the cloud reports for a concrete device, with value ranges
// and maps trimmed to what the device actually accepts. A power
// consumption attribute is always present on the result.
func (s *Schema) FilterByProperties(props []api.Property) *Schema {
	filtered := &Schema{
		TypeCode:    s.TypeCode,
		FeatureCode: s.FeatureCode,
		Name:        s.Name,
		Attributes:  make(map[string]Attribute, len(props)+1),
	}
	for _, prop := range props {
		attr, ok := s.Attributes[prop.Key]
		if !ok {
			continue
		}
		if prop.ValueList != "" {
			attr.ValueRange = prop.ValueList
			if attr.ValueMap != nil {
				allowed := make(map[string]string)
				for _, v := range strings.Split(prop.ValueList, ",") {
					if label, ok := attr.ValueMap[v]; ok {
						allowed[v] = label
					}
				}
				attr.ValueMap = allowed
			}
		}
		filtered.Attributes[prop.Key] = attr
	}
	if _, ok := filtered.Attributes["f_power_consumption"]; !ok {
		filtered.Attributes["f_power_consumption"] = Attribute{
			Key:       "f_power_consumption",
			Name:      "Power Consumption",
			Type:      TypeNumber,
			Step:      1,
			ReadWrite: "R",
		}
	}
	return filtered
}

// CoerceValue converts a command-line property value to the JSON type the
// cloud expects: integer, then float, then string.
func CoerceValue(s string) any {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
