package auth

import (
	"fmt"
	"net"
	"net/url"
	"runtime"
	"strings"
)

// ResolvesToLoopback reports whether host resolves to a loopback address.
// "localhost" and literal loopback IPs short-circuit without a DNS lookup.
func ResolvesToLoopback(host string) bool {
	if host == "localhost" {
		return true
	}
	if ip := net.ParseIP(host); ip != nil {
		return ip.IsLoopback()
	}
	addrs, err := net.LookupHost(host)
	if err != nil {
		return false
	}
	for _, addr := range addrs {
		if ip := net.ParseIP(addr); ip != nil && ip.IsLoopback() {
			return true
		}
	}
	return false
}

// CheckRedirectHost verifies that the redirect URL's hostname resolves to
// loopback, which the local callback receiver requires. This is an
// environmental precondition (a hosts-file entry), not something the program
// can fix itself.
func CheckRedirectHost(redirectURL string) error {
	parsed, err := url.Parse(redirectURL)
	if err != nil {
		return NewCallbackError("invalid redirect URL", err)
	}
	host := parsed.Hostname()
	if host == "" {
		return NewCallbackError(fmt.Sprintf("redirect URL %q has no hostname", redirectURL), nil)
	}
	if !ResolvesToLoopback(host) {
		return NewCallbackError(fmt.Sprintf("%s does not resolve to loopback", host), nil)
	}
	return nil
}

// HostsFileInstructions returns OS-specific instructions for adding the
// hosts-file entry that points the redirect hostname at loopback.
func HostsFileInstructions(redirectURL string) string {
	host := "homeassistant.local"
	if parsed, err := url.Parse(redirectURL); err == nil && parsed.Hostname() != "" {
		host = parsed.Hostname()
	}

	var b strings.Builder
	b.WriteString("Hosts file configuration required.\n\n")
	b.WriteString("The OAuth2 callback can only be captured locally when the redirect\n")
	b.WriteString("hostname resolves to this machine. Add the following line to your\n")
	b.WriteString("hosts file:\n\n")
	fmt.Fprintf(&b, "    127.0.0.1 %s\n\n", host)

	switch runtime.GOOS {
	case "darwin":
		b.WriteString("macOS:\n")
		b.WriteString("  1. Run: sudo nano /etc/hosts\n")
		fmt.Fprintf(&b, "  2. Add the line: 127.0.0.1 %s\n", host)
		b.WriteString("  3. Save (Ctrl+O, Enter, Ctrl+X)\n")
		b.WriteString("  4. Flush DNS: sudo killall -HUP mDNSResponder\n")
	case "windows":
		b.WriteString("Windows:\n")
		b.WriteString("  1. Open Notepad as Administrator\n")
		b.WriteString("  2. Open: C:\\Windows\\System32\\drivers\\etc\\hosts\n")
		fmt.Fprintf(&b, "  3. Add the line: 127.0.0.1 %s\n", host)
		b.WriteString("  4. Save, then run: ipconfig /flushdns\n")
	default:
		b.WriteString("Linux:\n")
		b.WriteString("  1. Run: sudo nano /etc/hosts\n")
		fmt.Fprintf(&b, "  2. Add the line: 127.0.0.1 %s\n", host)
		b.WriteString("  3. Save (Ctrl+O, Enter, Ctrl+X)\n")
	}

	b.WriteString("\nThen run the command again.\n")
	return b.String()
}
