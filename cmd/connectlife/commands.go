package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"connectlife/internal/api"
	"connectlife/internal/auth"
	"connectlife/internal/config"
	"connectlife/internal/devices"
	"connectlife/internal/output"
	"connectlife/internal/stream"
)

// Root command flags
var (
	listDevices   bool
	devicePUID    string
	showStatus    bool
	setProperties []string
	jsonOutput    bool
	doLogout      bool
)

func init() {
	rootCmd.Flags().BoolVar(&listDevices, "list-devices", false, "List all devices bound to the account")
	rootCmd.Flags().StringVar(&devicePUID, "device", "", "Device PUID to operate on")
	rootCmd.Flags().BoolVar(&showStatus, "status", false, "Show the device's current status (requires --device)")
	rootCmd.Flags().StringArrayVar(&setProperties, "set-property", nil, "Set a device property as name=value (repeatable, requires --device)")
	rootCmd.Flags().BoolVar(&doLogout, "logout", false, "Discard stored credentials")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Emit JSON instead of tables")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(faultsCmd)
	rootCmd.AddCommand(powerCmd)
	rootCmd.AddCommand(configCmd)
}

func runRoot(cmd *cobra.Command, args []string) error {
	switch {
	case doLogout:
		return runLogout(cmd, args)
	case listDevices:
		return withClient(cmd.Context(), runListDevices)
	case len(setProperties) > 0:
		if devicePUID == "" {
			return fmt.Errorf("--set-property requires --device")
		}
		return withClient(cmd.Context(), runSetProperties)
	case devicePUID != "":
		// --status is implied when only a device is named.
		return withClient(cmd.Context(), runStatus)
	case showStatus:
		return fmt.Errorf("--status requires --device")
	default:
		return cmd.Help()
	}
}

// withClient loads configuration, ensures an authenticated session, and
// hands an API client to fn.
func withClient(ctx context.Context, fn func(context.Context, *config.Config, *api.Client) error) error {
	cfg, session, err := newSession()
	if err != nil {
		return err
	}
	if err := ensureLogin(ctx, session); err != nil {
		return err
	}
	client := api.NewClient(api.Options{
		BaseURL:   cfg.APIBaseURL,
		AppID:     cfg.ClientID,
		AppSecret: cfg.ClientSecret,
	}, session)
	return fn(ctx, cfg, client)
}

func newSession() (*config.Config, *auth.Session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	tokenPath, err := cfg.TokenFilePath()
	if err != nil {
		return nil, nil, err
	}
	session, err := auth.NewSession(auth.Options{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		AuthorizeURL: cfg.AuthorizeURL(),
		TokenURL:     cfg.TokenURL(),
		RedirectURL:  cfg.CallbackURL,
	}, auth.NewStore(tokenPath))
	if err != nil {
		return nil, nil, err
	}
	return cfg, session, nil
}

// ensureLogin runs the browser authorization flow when no credentials are
// stored yet.
func ensureLogin(ctx context.Context, session *auth.Session) error {
	if session.Authenticated() {
		return nil
	}
	fmt.Fprintln(os.Stderr, "Not logged in, starting authorization...")
	return browserLogin(ctx, session)
}

func browserLogin(ctx context.Context, session *auth.Session) error {
	if err := auth.CheckRedirectHost(session.RedirectURL()); err != nil {
		fmt.Fprintln(os.Stderr, auth.HostsFileInstructions(session.RedirectURL()))
		fmt.Fprintln(os.Stderr, "Without that entry the authorization code must be pasted manually.")
	}

	state, err := auth.RandomState()
	if err != nil {
		return err
	}

	authURL := session.AuthCodeURL(state)
	fmt.Fprintf(os.Stderr, "Open this URL in your browser to log in:\n\n  %s\n\n", authURL)
	openBrowser(authURL)

	ctx, cancel := context.WithTimeout(ctx, auth.DefaultCallbackTimeout)
	defer cancel()

	code, err := auth.CaptureCode(ctx, session.RedirectURL(), state)
	if err != nil {
		return err
	}

	if _, err := session.Exchange(ctx, code); err != nil {
		return err
	}
	fmt.Fprintln(os.Stderr, "Login successful.")
	return nil
}

func runListDevices(ctx context.Context, _ *config.Config, client *api.Client) error {
	list, err := client.ListDevices(ctx)
	if err != nil {
		return err
	}
	return output.NewPrinter(os.Stdout, jsonOutput).DeviceList(list)
}

func runStatus(ctx context.Context, _ *config.Config, client *api.Client) error {
	device, err := client.GetDevice(ctx, devicePUID)
	if err != nil {
		return err
	}

	// Features with "99" in their code publish static configuration data
	// alongside the live status. Fetch failures only cost the extra table.
	var static map[string]any
	if strings.Contains(device.FeatureCode, "99") {
		static, err = client.StaticData(ctx, device.PUID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not fetch static data: %v\n", err)
			static = nil
		}
	}

	schema, err := devices.SchemaFor(device.TypeCode, device.FeatureCode)
	if err != nil {
		// Unsupported type: show the raw status keys as-is.
		return output.NewPrinter(os.Stdout, jsonOutput).DeviceStatus(device, nil, device.StatusList, static)
	}

	// Narrow the schema to what this concrete device reports, when the
	// cloud knows.
	if props, err := client.PropertyList(ctx, device.TypeCode, device.FeatureCode); err == nil && len(props) > 0 {
		schema = schema.FilterByProperties(props)
	}

	parsed := schema.ParseStatus(device.StatusList)
	return output.NewPrinter(os.Stdout, jsonOutput).DeviceStatus(device, schema, parsed, static)
}

func runSetProperties(ctx context.Context, _ *config.Config, client *api.Client) error {
	props := make(map[string]any, len(setProperties))
	for _, pair := range setProperties {
		name, value, found := strings.Cut(pair, "=")
		if !found || name == "" {
			return fmt.Errorf("invalid --set-property %q, expected name=value", pair)
		}
		props[name] = devices.CoerceValue(value)
	}

	device, err := client.GetDevice(ctx, devicePUID)
	if err != nil {
		return err
	}

	// Validate against the schema when we have one; unknown keys pass
	// through so new firmware properties stay reachable.
	if schema, err := devices.SchemaFor(device.TypeCode, device.FeatureCode); err == nil {
		for name, value := range props {
			attr, ok := schema.Attribute(name)
			if !ok {
				continue
			}
			if err := attr.Validate(value); err != nil {
				return err
			}
		}
	}

	kvMap, err := client.SetProperties(ctx, devicePUID, props)
	if err != nil {
		return err
	}
	return output.NewPrinter(os.Stdout, jsonOutput).SetResult(devicePUID, kvMap)
}

var loginPassword bool

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate against the ConnectLife cloud",
	Long: `Authenticate against the ConnectLife cloud and store the resulting
tokens in the token file.

The default flow opens the vendor login page in a browser and captures
the redirect locally. With --password, the email and password are read
from the terminal instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, session, err := newSession()
		if err != nil {
			return err
		}
		if loginPassword {
			return passwordLogin(cmd.Context(), session)
		}
		return browserLogin(cmd.Context(), session)
	},
}

func init() {
	loginCmd.Flags().BoolVar(&loginPassword, "password", false, "Log in with email and password instead of the browser flow")
}

func passwordLogin(ctx context.Context, session *auth.Session) error {
	fmt.Fprint(os.Stderr, "Email: ")
	reader := bufio.NewReader(os.Stdin)
	email, err := reader.ReadString('\n')
	if err != nil {
		return err
	}
	email = strings.TrimSpace(email)

	fmt.Fprint(os.Stderr, "Password: ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return err
	}

	if _, err := session.PasswordLogin(ctx, email, string(password)); err != nil {
		return err
	}
	fmt.Fprintln(os.Stderr, "Login successful.")
	return nil
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard stored credentials",
	RunE:  runLogout,
}

func runLogout(cmd *cobra.Command, args []string) error {
	_, session, err := newSession()
	if err != nil {
		return err
	}
	if err := session.Logout(); err != nil {
		return err
	}
	fmt.Fprintln(os.Stderr, "Logged out.")
	return nil
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Stream device status updates from the push channel",
	Long: `Subscribe to the cloud's push channel and print device status
updates as they arrive. With --device, only updates for that PUID are
shown. Interrupt with Ctrl-C.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, session, err := newSession()
		if err != nil {
			return err
		}
		if err := ensureLogin(cmd.Context(), session); err != nil {
			return err
		}
		if cfg.WSBaseURL == "" {
			return stream.ErrUnsupported
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		printer := output.NewPrinter(os.Stdout, jsonOutput)
		client := stream.NewClient(stream.Options{
			URL:   cfg.WebSocketURL(),
			AppID: cfg.ClientID,
		}, session)

		fmt.Fprintln(os.Stderr, "Watching for updates, Ctrl-C to stop...")
		return client.Run(ctx, func(u stream.Update) {
			if devicePUID != "" && u.PUID != devicePUID {
				return
			}
			if jsonOutput {
				_ = printer.JSON(u)
				return
			}
			for key, value := range u.Status {
				fmt.Printf("%s  %s = %v\n", u.PUID, key, value)
			}
		})
	},
}

func init() {
	watchCmd.Flags().StringVar(&devicePUID, "device", "", "Only show updates for this PUID")
}

var faultsCmd = &cobra.Command{
	Use:   "faults <puid>",
	Short: "Run a device self check and list failed items",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(cmd.Context(), func(ctx context.Context, _ *config.Config, client *api.Client) error {
			keys, err := client.SelfCheck(ctx, args[0])
			if err != nil {
				return err
			}
			return output.NewPrinter(os.Stdout, jsonOutput).Faults(args[0], keys)
		})
	},
}

var powerDate string

var powerCmd = &cobra.Command{
	Use:   "power <puid>",
	Short: "Show hourly power consumption for a device",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date := powerDate
		if date == "" {
			date = time.Now().Format("2006-01-02")
		}
		return withClient(cmd.Context(), func(ctx context.Context, _ *config.Config, client *api.Client) error {
			hours, err := client.HourPower(ctx, date, args[0])
			if err != nil {
				return err
			}
			return output.NewPrinter(os.Stdout, jsonOutput).Power(args[0], date, hours)
		})
	},
}

func init() {
	powerCmd.Flags().StringVar(&powerDate, "date", "", "Date to report (YYYY-MM-DD, default today)")
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the resolved configuration to the config file",
	Long: `Write the fully resolved configuration (defaults, any existing config
file, .env file, and CONNECTLIFE_* environment overrides) back to the
config file as commented starter YAML.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if err := cfg.Save(); err != nil {
			return err
		}
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Wrote %s\n", path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
}

// openBrowser tries to open url in the default browser. Failure is not an
// error; the URL is already printed for manual use.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}
