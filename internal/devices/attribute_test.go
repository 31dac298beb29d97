package devices

import (
	"testing"

	"connectlife/internal/api"
)

func TestRangeContains(t *testing.T) {
	tests := []struct {
		spec string
		v    float64
		want bool
	}{
		{"16~32,61~90", 22, true},
		{"16~32,61~90", 16, true},
		{"16~32,61~90", 90, true},
		{"16~32,61~90", 45, false},
		{"16~32,61~90", 15.5, false},
		{"0,1", 1, true},
		{"0,1", 2, false},
		{"0,5,6,7,8,9", 7, true},
		{"0,5,6,7,8,9", 3, false},
		{"30~80", 55, true},
	}
	for _, tc := range tests {
		if got := rangeContains(tc.spec, tc.v); got != tc.want {
			t.Errorf("rangeContains(%q, %v) = %v, want %v", tc.spec, tc.v, got, tc.want)
		}
	}
}

func TestAttributeValidate(t *testing.T) {
	temp := Attribute{
		Key: "t_temp", Name: "Target Temperature", Type: TypeNumber,
		ValueRange: "16~32,61~90", ReadWrite: "RW",
	}
	if err := temp.Validate(22); err != nil {
		t.Errorf("Validate(22) = %v, want nil", err)
	}
	if err := temp.Validate("28"); err != nil {
		t.Errorf("Validate(\"28\") = %v, want nil", err)
	}
	if err := temp.Validate(45); err == nil {
		t.Error("Validate(45) should fail, value is between the ranges")
	}
	if err := temp.Validate("warm"); err == nil {
		t.Error("Validate(\"warm\") should fail for a numeric attribute")
	}

	mode := Attribute{
		Key: "t_work_mode", Name: "Mode", Type: TypeEnum,
		ValueRange: "0,1,2", ValueMap: map[string]string{"0": "Fan", "1": "Heat", "2": "Cool"},
		ReadWrite: "RW",
	}
	if err := mode.Validate("1"); err != nil {
		t.Errorf("Validate(\"1\") = %v, want nil", err)
	}
	if err := mode.Validate(9); err == nil {
		t.Error("Validate(9) should fail, not in the enum")
	}

	sensor := Attribute{
		Key: "f_temp_in", Name: "Indoor Temperature", Type: TypeNumber, ReadWrite: "R",
	}
	if err := sensor.Validate(20); err == nil {
		t.Error("Validate on a read-only attribute should fail")
	}
}

func TestSchemaParseStatus(t *testing.T) {
	schema := splitACSchema()

	parsed := schema.ParseStatus(map[string]any{
		"t_power":     "1",
		"t_work_mode": float64(2),
		"t_temp":      "22",
		"f_temp_in":   "24",
		"t_unknown":   "7",
	})

	if parsed["t_power"] != "On" {
		t.Errorf("t_power = %v, want On", parsed["t_power"])
	}
	if parsed["t_work_mode"] != "Cool" {
		t.Errorf("t_work_mode = %v, want Cool", parsed["t_work_mode"])
	}
	if parsed["t_temp"] != 22.0 {
		t.Errorf("t_temp = %v, want 22", parsed["t_temp"])
	}
	if parsed["f_temp_in"] != 24.0 {
		t.Errorf("f_temp_in = %v, want 24", parsed["f_temp_in"])
	}
	if _, ok := parsed["t_unknown"]; ok {
		t.Error("unknown status key should be dropped")
	}
}

func TestSchemaParseStatusSkipsBadNumbers(t *testing.T) {
	schema := splitACSchema()
	parsed := schema.ParseStatus(map[string]any{"t_temp": "n/a"})
	if _, ok := parsed["t_temp"]; ok {
		t.Error("unparseable number should be skipped")
	}
}

func TestFilterByProperties(t *testing.T) {
	schema := beanSchema("009", "111", "Split AC")

	filtered := schema.FilterByProperties([]api.Property{
		{Key: "t_power", ValueList: "0,1"},
		{Key: "t_fan_speed", ValueList: "0,5,9"},
		{Key: "t_temp", ValueList: "18~30"},
		{Key: "t_bogus", ValueList: "0,1"},
	})

	if _, ok := filtered.Attribute("t_humidity"); ok {
		t.Error("attributes absent from the property list should be dropped")
	}
	if _, ok := filtered.Attribute("t_bogus"); ok {
		t.Error("properties without a schema attribute should be ignored")
	}

	fan, ok := filtered.Attribute("t_fan_speed")
	if !ok {
		t.Fatal("t_fan_speed missing from filtered schema")
	}
	if fan.ValueRange != "0,5,9" {
		t.Errorf("t_fan_speed range = %q, want narrowed list", fan.ValueRange)
	}
	if len(fan.ValueMap) != 3 {
		t.Errorf("t_fan_speed map = %v, want 3 entries", fan.ValueMap)
	}
	if _, ok := fan.ValueMap["7"]; ok {
		t.Error("value map should drop entries outside the device's list")
	}

	temp, _ := filtered.Attribute("t_temp")
	if temp.ValueRange != "18~30" {
		t.Errorf("t_temp range = %q, want device-reported range", temp.ValueRange)
	}

	if _, ok := filtered.Attribute("f_power_consumption"); !ok {
		t.Error("power consumption attribute should always be present")
	}

	// The source schema must be untouched.
	original, _ := schema.Attribute("t_fan_speed")
	if original.ValueRange != "0,5,6,7,8,9" {
		t.Errorf("source schema mutated: %q", original.ValueRange)
	}
}

func TestCoerceValue(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"1", 1},
		{"-4", -4},
		{"22.5", 22.5},
		{"auto", "auto"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := CoerceValue(tc.in); got != tc.want {
			t.Errorf("CoerceValue(%q) = %v (%T), want %v (%T)", tc.in, got, got, tc.want, tc.want)
		}
	}
}
