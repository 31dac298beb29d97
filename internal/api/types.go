package api

import (
	"encoding/json"
	"fmt"
)

// supportedTypeCodes lists the device type codes the client knows how to
// interpret. Devices outside this set are still listed but their status
// keys are reported raw.
var supportedTypeCodes = map[string]bool{
	"006": true, // portable AC
	"007": true, // dehumidifier
	"008": true, // window AC
	"009": true, // split AC
	"013": true, // oven
	"016": true, // boiler
	"035": true, // heat pump
	"043": true, // hub
	"044": true, // heat pump (tank variants)
}

// Device is one entry from the device status list.
type Device struct {
	WifiID       string         `json:"wifiId"`
	DeviceID     string         `json:"deviceId"`
	PUID         string         `json:"puid"`
	Nickname     string         `json:"deviceNickName"`
	TypeCode     string         `json:"deviceTypeCode"`
	TypeName     string         `json:"deviceTypeName"`
	FeatureCode  string         `json:"deviceFeatureCode"`
	FeatureName  string         `json:"deviceFeatureName"`
	RoomName     string         `json:"roomName"`
	Role         int            `json:"role"`
	OfflineState int            `json:"offlineState"`
	BindTime     string         `json:"bindTime"`
	UseTime      int64          `json:"useTime"`
	StatusList   map[string]any `json:"statusList"`
}

// Online reports whether the cloud considers the device reachable.
func (d *Device) Online() bool {
	return d.OfflineState == 1
}

// PowerOn reports whether the device's t_power status says it is switched
// on. Status values arrive as either numbers or strings depending on the
// device firmware.
func (d *Device) PowerOn() bool {
	v, ok := d.StatusList["t_power"]
	if !ok {
		return false
	}
	switch val := v.(type) {
	case string:
		return val == "1"
	case float64:
		return val == 1
	default:
		return false
	}
}

// Supported reports whether this client carries a schema for the device
// type.
func (d *Device) Supported() bool {
	return supportedTypeCodes[d.TypeCode]
}

// StatusValue returns one raw status entry as a string, or "" when absent.
func (d *Device) StatusValue(key string) string {
	v, ok := d.StatusList[key]
	if !ok {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case float64:
		// Status numbers are integral in practice.
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprintf("%g", val)
	default:
		b, _ := json.Marshal(val)
		return string(b)
	}
}

// Property describes one controllable or readable property as reported by
// the property list endpoint.
type Property struct {
	Key       string `json:"propertyKey"`
	ValueList string `json:"propertyValueList"`
}

// SelfCheckFault is one failed item from a device self check.
type SelfCheckFault struct {
	StatusKey string `json:"statusKey"`
}

// envelope is the common wrapper on every cloud response. A resultCode of
// zero means success; anything else carries a human-readable msg.
type envelope struct {
	ResultCode int    `json:"resultCode"`
	Msg        string `json:"msg"`
}

type deviceListResponse struct {
	DeviceList []Device `json:"deviceList"`
}

type propertyListResponse struct {
	Properties []Property `json:"properties"`
}

type staticDataResponse struct {
	Data map[string]any `json:"data"`
}

type controlResponse struct {
	KVMap map[string]any `json:"kvMap"`
}

type hourPowerResponse struct {
	PowerConsumption map[string]float64 `json:"powerConsumption"`
}

type selfCheckResponse struct {
	Data struct {
		FailedList []SelfCheckFault `json:"selfCheckFailedList"`
	} `json:"data"`
}
