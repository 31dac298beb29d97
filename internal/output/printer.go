package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"

	"connectlife/internal/api"
	"connectlife/internal/devices"
)

// Printer renders command results either as human-readable tables or as
// JSON, depending on how it is constructed.
type Printer struct {
	w    io.Writer
	json bool
}

// NewPrinter creates a printer writing to w. With jsonMode set, every
// render method emits indented JSON instead of tables.
func NewPrinter(w io.Writer, jsonMode bool) *Printer {
	return &Printer{w: w, json: jsonMode}
}

// JSON emits v as indented JSON regardless of the printer mode.
func (p *Printer) JSON(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// DeviceList renders the account's devices as a table, one row per
// device.
func (p *Printer) DeviceList(list []api.Device) error {
	if p.json {
		return p.JSON(list)
	}
	if len(list) == 0 {
		fmt.Fprintln(p.w, "No devices found.")
		return nil
	}

	t := p.newTable()
	t.AppendHeader(table.Row{"PUID", "NAME", "TYPE", "ROOM", "ONLINE", "POWER"})
	for _, d := range list {
		typeLabel := d.TypeCode
		if d.TypeName != "" {
			typeLabel = fmt.Sprintf("%s (%s-%s)", d.TypeName, d.TypeCode, d.FeatureCode)
		}
		t.AppendRow(table.Row{
			d.PUID,
			d.Nickname,
			typeLabel,
			d.RoomName,
			onlineLabel(d.Online()),
			powerLabel(&d),
		})
	}
	t.Render()
	return nil
}

// DeviceStatus renders one device's parsed status. Keys are printed in a
// stable order with the schema's display names; keys without a schema
// entry are shown raw under their own key name. static carries the static
// configuration data some device features publish and may be nil.
func (p *Printer) DeviceStatus(device *api.Device, schema *devices.Schema, parsed, static map[string]any) error {
	if p.json {
		out := map[string]any{
			"device": device,
			"status": parsed,
		}
		if len(static) > 0 {
			out["static"] = static
		}
		return p.JSON(out)
	}

	fmt.Fprintln(p.w, titleStyle.Render(device.Nickname))
	fmt.Fprintf(p.w, "%s %s-%s", labelStyle.Render("Type:"), device.TypeCode, device.FeatureCode)
	if device.TypeName != "" {
		fmt.Fprintf(p.w, " (%s)", device.TypeName)
	}
	fmt.Fprintln(p.w)
	if device.RoomName != "" {
		fmt.Fprintf(p.w, "%s %s\n", labelStyle.Render("Room:"), device.RoomName)
	}
	fmt.Fprintf(p.w, "%s %s\n\n", labelStyle.Render("State:"), onlineLabel(device.Online()))

	keys := make([]string, 0, len(parsed))
	for k := range parsed {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	t := p.newTable()
	t.AppendHeader(table.Row{"PROPERTY", "KEY", "VALUE", "ACCESS"})
	for _, key := range keys {
		name := key
		access := ""
		if schema != nil {
			if attr, ok := schema.Attribute(key); ok {
				name = attr.Name
				access = attr.ReadWrite
			}
		}
		t.AppendRow(table.Row{name, key, fmt.Sprintf("%v", parsed[key]), access})
	}
	t.Render()

	if len(static) > 0 {
		fmt.Fprintln(p.w)
		fmt.Fprintln(p.w, labelStyle.Render("Static data"))
		staticKeys := make([]string, 0, len(static))
		for k := range static {
			staticKeys = append(staticKeys, k)
		}
		sort.Strings(staticKeys)

		st := p.newTable()
		st.AppendHeader(table.Row{"KEY", "VALUE"})
		for _, key := range staticKeys {
			st.AppendRow(table.Row{key, fmt.Sprintf("%v", static[key])})
		}
		st.Render()
	}
	return nil
}

// SetResult renders the key/value map a control command was acknowledged
// with.
func (p *Printer) SetResult(puid string, kvMap map[string]any) error {
	if p.json {
		return p.JSON(map[string]any{"puid": puid, "kvMap": kvMap})
	}
	fmt.Fprintf(p.w, "Device %s updated:\n", puid)
	keys := make([]string, 0, len(kvMap))
	for k := range kvMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(p.w, "  %s = %v\n", k, kvMap[k])
	}
	return nil
}

// Faults renders self-check failures, or a confirmation when there are
// none.
func (p *Printer) Faults(puid string, keys []string) error {
	if p.json {
		return p.JSON(map[string]any{"puid": puid, "faults": keys})
	}
	if len(keys) == 0 {
		fmt.Fprintln(p.w, "Self check passed, no faults reported.")
		return nil
	}
	fmt.Fprintln(p.w, faultStyle.Render("Self check reported faults:"))
	for _, key := range keys {
		fmt.Fprintf(p.w, "  %s\n", key)
	}
	return nil
}

// Power renders hourly power consumption in hour order.
func (p *Printer) Power(puid, date string, hours map[string]float64) error {
	if p.json {
		return p.JSON(map[string]any{"puid": puid, "date": date, "powerConsumption": hours})
	}
	if len(hours) == 0 {
		fmt.Fprintln(p.w, "No power data for", date)
		return nil
	}
	t := p.newTable()
	t.AppendHeader(table.Row{"HOUR", "KWH"})
	for hour := 0; hour < 24; hour++ {
		key := fmt.Sprintf("%d", hour)
		if v, ok := hours[key]; ok {
			t.AppendRow(table.Row{key, fmt.Sprintf("%.3f", v)})
		}
	}
	t.Render()
	return nil
}

func (p *Printer) newTable() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(p.w)
	t.SetStyle(table.StyleRounded)
	return t
}

func onlineLabel(online bool) string {
	if online {
		return onlineStyle.Render("online")
	}
	return offlineStyle.Render("offline")
}

func powerLabel(d *api.Device) string {
	if _, ok := d.StatusList["t_power"]; !ok {
		return ""
	}
	if d.PowerOn() {
		return "on"
	}
	return "off"
}
