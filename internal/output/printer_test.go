package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"connectlife/internal/api"
	"connectlife/internal/devices"
)

func sampleDevice() api.Device {
	return api.Device{
		PUID:         "p-1",
		DeviceID:     "d-1",
		Nickname:     "Living Room AC",
		TypeCode:     "009",
		TypeName:     "Split AC",
		FeatureCode:  "199",
		RoomName:     "Living Room",
		OfflineState: 1,
		StatusList:   map[string]any{"t_power": "1", "t_temp": "22"},
	}
}

func TestDeviceListTable(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)

	if err := p.DeviceList([]api.Device{sampleDevice()}); err != nil {
		t.Fatalf("DeviceList error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"PUID", "p-1", "Living Room AC", "Split AC (009-199)", "online", "on"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestDeviceListEmpty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)

	if err := p.DeviceList(nil); err != nil {
		t.Fatalf("DeviceList error: %v", err)
	}
	if !strings.Contains(buf.String(), "No devices found") {
		t.Errorf("unexpected output: %s", buf.String())
	}
}

func TestDeviceListJSON(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, true)

	if err := p.DeviceList([]api.Device{sampleDevice()}); err != nil {
		t.Fatalf("DeviceList error: %v", err)
	}

	var decoded []api.Device
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if len(decoded) != 1 || decoded[0].PUID != "p-1" {
		t.Errorf("unexpected JSON: %+v", decoded)
	}
}

func TestDeviceStatus(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)

	device := sampleDevice()
	schema, err := devices.SchemaFor(device.TypeCode, device.FeatureCode)
	if err != nil {
		t.Fatalf("SchemaFor error: %v", err)
	}
	parsed := schema.ParseStatus(device.StatusList)

	if err := p.DeviceStatus(&device, schema, parsed, nil); err != nil {
		t.Fatalf("DeviceStatus error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Living Room AC", "009-199", "Power", "t_power", "On", "Target Temperature", "22"} {
		if !strings.Contains(out, want) {
			t.Errorf("status view missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Static data") {
		t.Errorf("status view should not render a static table without data:\n%s", out)
	}
}

func TestDeviceStatusWithStaticData(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)

	device := sampleDevice()
	static := map[string]any{"zone1_name": "Ground Floor", "tank_volume": float64(200)}

	if err := p.DeviceStatus(&device, nil, device.StatusList, static); err != nil {
		t.Fatalf("DeviceStatus error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Static data", "zone1_name", "Ground Floor", "tank_volume", "200"} {
		if !strings.Contains(out, want) {
			t.Errorf("status view missing %q:\n%s", want, out)
		}
	}
}

func TestSetResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)

	if err := p.SetResult("p-1", map[string]any{"t_power": "1"}); err != nil {
		t.Fatalf("SetResult error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "p-1") || !strings.Contains(out, "t_power = 1") {
		t.Errorf("unexpected output: %s", out)
	}
}

func TestFaults(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)

	if err := p.Faults("p-1", nil); err != nil {
		t.Fatalf("Faults error: %v", err)
	}
	if !strings.Contains(buf.String(), "no faults") {
		t.Errorf("unexpected output: %s", buf.String())
	}

	buf.Reset()
	if err := p.Faults("p-1", []string{"f_e_pump"}); err != nil {
		t.Fatalf("Faults error: %v", err)
	}
	if !strings.Contains(buf.String(), "f_e_pump") {
		t.Errorf("unexpected output: %s", buf.String())
	}
}

func TestPower(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)

	if err := p.Power("p-1", "2026-08-29", map[string]float64{"13": 0.42, "9": 1.5}); err != nil {
		t.Fatalf("Power error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "0.420") || !strings.Contains(out, "1.500") {
		t.Errorf("unexpected output: %s", out)
	}
	// Hours print in numeric order.
	if strings.Index(out, "1.500") > strings.Index(out, "0.420") {
		t.Errorf("hours out of order:\n%s", out)
	}
}
