package catalog

import "github.com/pkg/errors"

var (
	ErrInvalidURI = errors.New("config uri has no supported scheme")
	ErrNotFound   = errors.New("config not found")
)

// ConfigEntry - one VPN connection profile offered to users
type ConfigEntry struct {
	ID   string
	Name string
	URI  string
}

// AllowedSchemes - prefixes accepted for a config uri, compared case-sensitively
var AllowedSchemes = []string{
	"vless://",
	"vmess://",
	"trojan://",
	"ss://",
	"ssr://",
	"tuic://",
	"hysteria://",
	"hy2://",
}
