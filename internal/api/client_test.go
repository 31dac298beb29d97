package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"connectlife/internal/auth"
)

// newTestClient wires a Client and its auth session against a single mock
// server handling both the token endpoint and the API paths.
func newTestClient(t *testing.T, mux *http.ServeMux) *Client {
	t.Helper()

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"access_token":"refreshed-at","refresh_token":"rt-2","expires_in":3600,"token_type":"Bearer"}`)
	})

	store := auth.NewStore(filepath.Join(t.TempDir(), "tokens.json"))
	if err := store.Save(&auth.TokenSet{
		AccessToken:  "valid-at",
		RefreshToken: "rt-1",
		ExpiresAt:    time.Now().Add(time.Hour).Unix(),
	}); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	session, err := auth.NewSession(auth.Options{
		ClientID:     "app-id",
		ClientSecret: "app-secret",
		AuthorizeURL: server.URL + "/login",
		TokenURL:     server.URL + "/oauth/token",
		RedirectURL:  "http://homeassistant.local:8123/auth/external/callback",
	}, store)
	if err != nil {
		t.Fatalf("NewSession error: %v", err)
	}

	return NewClient(Options{
		BaseURL:   server.URL,
		AppID:     "app-id",
		AppSecret: "app-secret",
	}, session)
}

func TestListDevices(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc(deviceListPath, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		if got := r.Header.Get("accessToken"); got != "valid-at" {
			t.Errorf("accessToken header = %q", got)
		}
		if got := r.Header.Get("hi-params-encrypt"); got != "app-id" {
			t.Errorf("hi-params-encrypt = %q", got)
		}
		if got := r.Header.Get("Digest"); got != "SHA-256="+emptyBodyDigest {
			t.Errorf("Digest = %q, want empty-body digest for GET", got)
		}
		if !strings.HasPrefix(r.Header.Get("Authorization"), "Signature signature=") {
			t.Errorf("Authorization = %q", r.Header.Get("Authorization"))
		}
		if r.Header.Get("Date") == "" {
			t.Error("Date header missing")
		}

		q := r.URL.Query()
		if q.Get("appId") != "app-id" || q.Get("version") != "8.1" || q.Get("timeStamp") == "" {
			t.Errorf("system parameters missing from query: %v", q)
		}
		if q.Get("accessToken") != "" {
			t.Error("accessToken leaked into the query string")
		}
		if !strings.HasPrefix(q.Get("sourceId"), "td001002000") {
			t.Errorf("sourceId = %q", q.Get("sourceId"))
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{
			"resultCode": 0,
			"deviceList": [
				{
					"puid": "p-1", "deviceId": "d-1", "deviceNickName": "Living Room AC",
					"deviceTypeCode": "009", "deviceTypeName": "Split AC",
					"deviceFeatureCode": "199", "roomName": "Living Room",
					"offlineState": 1, "statusList": {"t_power": "1", "t_temp": "22"}
				},
				{
					"puid": "p-2", "deviceId": "d-2", "deviceNickName": "Fridge",
					"deviceTypeCode": "015", "offlineState": 0,
					"statusList": {"t_power": 0}
				}
			]
		}`)
	})

	client := newTestClient(t, mux)

	devices, err := client.ListDevices(context.Background())
	if err != nil {
		t.Fatalf("ListDevices error: %v", err)
	}
	if len(devices) != 2 {
		t.Fatalf("got %d devices, want 2", len(devices))
	}

	ac := devices[0]
	if ac.PUID != "p-1" || ac.Nickname != "Living Room AC" || ac.TypeCode != "009" {
		t.Errorf("unexpected device: %+v", ac)
	}
	if !ac.Online() || !ac.PowerOn() || !ac.Supported() {
		t.Errorf("Online/PowerOn/Supported = %v/%v/%v, want all true", ac.Online(), ac.PowerOn(), ac.Supported())
	}
	if ac.StatusValue("t_temp") != "22" {
		t.Errorf("StatusValue(t_temp) = %q", ac.StatusValue("t_temp"))
	}

	fridge := devices[1]
	if fridge.Online() || fridge.PowerOn() || fridge.Supported() {
		t.Errorf("unsupported offline device flagged wrong: %+v", fridge)
	}
}

func TestSetProperties(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc(deviceControlPath, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		body, _ := io.ReadAll(r.Body)

		if got := r.Header.Get("Digest"); got != bodyDigest(body) {
			t.Errorf("Digest = %q does not match body", got)
		}

		var payload map[string]any
		if err := json.Unmarshal(body, &payload); err != nil {
			t.Fatalf("body is not JSON: %v", err)
		}
		if payload["puid"] != "p-1" {
			t.Errorf("puid = %v", payload["puid"])
		}
		props, ok := payload["properties"].(map[string]any)
		if !ok || props["t_power"] != "1" {
			t.Errorf("properties = %v", payload["properties"])
		}
		if payload["appId"] != "app-id" || payload["accessToken"] != "valid-at" {
			t.Errorf("system parameters missing from body: %v", payload)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"resultCode":0,"kvMap":{"t_power":"1"}}`)
	})

	client := newTestClient(t, mux)

	kv, err := client.SetProperties(context.Background(), "p-1", map[string]any{"t_power": "1"})
	if err != nil {
		t.Fatalf("SetProperties error: %v", err)
	}
	if kv["t_power"] != "1" {
		t.Errorf("kvMap = %v", kv)
	}
}

func TestRequestRetriesOnceAfter401(t *testing.T) {
	var apiCalls int
	mux := http.NewServeMux()
	mux.HandleFunc(deviceListPath, func(w http.ResponseWriter, r *http.Request) {
		apiCalls++
		if apiCalls == 1 {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if got := r.Header.Get("accessToken"); got != "refreshed-at" {
			t.Errorf("retry used token %q, want the refreshed one", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"resultCode":0,"deviceList":[]}`)
	})

	client := newTestClient(t, mux)

	if _, err := client.ListDevices(context.Background()); err != nil {
		t.Fatalf("ListDevices error: %v", err)
	}
	if apiCalls != 2 {
		t.Errorf("apiCalls = %d, want 2", apiCalls)
	}
}

func TestRequestFailsOnSecond401(t *testing.T) {
	var apiCalls int
	mux := http.NewServeMux()
	mux.HandleFunc(deviceListPath, func(w http.ResponseWriter, r *http.Request) {
		apiCalls++
		w.WriteHeader(http.StatusUnauthorized)
	})

	client := newTestClient(t, mux)

	_, err := client.ListDevices(context.Background())
	if err == nil {
		t.Fatal("ListDevices should fail after repeated 401s")
	}
	if !IsAPIError(err) {
		t.Errorf("error is not an APIError: %v", err)
	}
	if apiCalls != 2 {
		t.Errorf("apiCalls = %d, want exactly 2 (one refresh, one retry)", apiCalls)
	}
}

func TestRequestResultCodeError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc(deviceControlPath, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"resultCode":1102,"msg":"device offline"}`)
	})

	client := newTestClient(t, mux)

	_, err := client.SetProperties(context.Background(), "p-1", map[string]any{"t_power": "1"})
	if err == nil {
		t.Fatal("SetProperties should surface a non-zero resultCode")
	}
	if !IsAPIError(err) {
		t.Errorf("error is not an APIError: %v", err)
	}
	if !strings.Contains(err.Error(), "device offline") {
		t.Errorf("error should carry the server message: %v", err)
	}
}

func TestGetDevice(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc(deviceListPath, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"resultCode":0,"deviceList":[{"puid":"p-1","deviceNickName":"AC"}]}`)
	})

	client := newTestClient(t, mux)

	dev, err := client.GetDevice(context.Background(), "p-1")
	if err != nil {
		t.Fatalf("GetDevice error: %v", err)
	}
	if dev.Nickname != "AC" {
		t.Errorf("unexpected device: %+v", dev)
	}

	_, err = client.GetDevice(context.Background(), "p-missing")
	if err == nil || !IsAPIError(err) {
		t.Errorf("missing device should be an APIError, got %v", err)
	}
	if err != nil && !strings.Contains(err.Error(), "p-missing") {
		t.Errorf("error should name the device: %v", err)
	}
}

func TestPropertyList(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc(propertyListPath, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("deviceTypeCode") != "009" || q.Get("deviceFeatureCode") != "199" {
			t.Errorf("device codes missing from query: %v", q)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"resultCode":0,"properties":[{"propertyKey":"t_temp","propertyValueList":"16~32"}]}`)
	})

	client := newTestClient(t, mux)

	props, err := client.PropertyList(context.Background(), "009", "199")
	if err != nil {
		t.Fatalf("PropertyList error: %v", err)
	}
	if len(props) != 1 || props[0].Key != "t_temp" || props[0].ValueList != "16~32" {
		t.Errorf("unexpected properties: %+v", props)
	}
}

func TestStaticData(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc(staticDataPath, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		body, _ := io.ReadAll(r.Body)
		var payload map[string]any
		_ = json.Unmarshal(body, &payload)
		if payload["puid"] != "p-1" {
			t.Errorf("unexpected payload: %v", payload)
		}
		if payload["accessToken"] != "valid-at" {
			t.Errorf("POST body missing accessToken: %v", payload)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"resultCode":0,"data":{"zone1_name":"Ground Floor","tank_volume":200}}`)
	})

	client := newTestClient(t, mux)

	static, err := client.StaticData(context.Background(), "p-1")
	if err != nil {
		t.Fatalf("StaticData error: %v", err)
	}
	if static["zone1_name"] != "Ground Floor" {
		t.Errorf("zone1_name = %v", static["zone1_name"])
	}
	if static["tank_volume"] != float64(200) {
		t.Errorf("tank_volume = %v", static["tank_volume"])
	}
}

func TestSelfCheck(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc(selfCheckPath, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var payload map[string]any
		_ = json.Unmarshal(body, &payload)
		if payload["noRecord"] != "1" || payload["puid"] != "p-1" {
			t.Errorf("unexpected payload: %v", payload)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"resultCode":0,"data":{"selfCheckFailedList":[{"statusKey":"f_e_pump"}]}}`)
	})

	client := newTestClient(t, mux)

	keys, err := client.SelfCheck(context.Background(), "p-1")
	if err != nil {
		t.Fatalf("SelfCheck error: %v", err)
	}
	if len(keys) != 1 || keys[0] != "f_e_pump" {
		t.Errorf("unexpected fault keys: %v", keys)
	}
}

func TestHourPower(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc(hourPowerPath, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"resultCode":0,"powerConsumption":{"13":0.42,"14":0.38}}`)
	})

	client := newTestClient(t, mux)

	power, err := client.HourPower(context.Background(), "2026-08-29", "p-1")
	if err != nil {
		t.Fatalf("HourPower error: %v", err)
	}
	if power["13"] != 0.42 || power["14"] != 0.38 {
		t.Errorf("unexpected power map: %v", power)
	}
}
