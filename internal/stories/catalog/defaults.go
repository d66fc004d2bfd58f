package catalog

const presetUUID = "826f524a-cea1-4e44-9b49-3381d13b7593"

var defaultEntries = []ConfigEntry{
	{ID: "us_vless_1", Name: "VLESS - USA 1 🇺🇸", URI: "vless://" + presetUUID + "@us1.example.com:443?security=tls"},
	{ID: "us_vless_2", Name: "VLESS - USA 2 🇺🇸", URI: "vless://" + presetUUID + "@us2.example.com:443?security=tls"},
	{ID: "nl_trojan_1", Name: "Trojan - Netherlands 1 🇳🇱", URI: "trojan://password@nl1.example.com:443?security=tls"},
	{ID: "ca_vless_1", Name: "VLESS - Canada 1 🇨🇦", URI: "vless://" + presetUUID + "@ca1.example.com:443?security=tls"},
	{ID: "de_vless_1", Name: "VLESS - Germany 1 🇩🇪", URI: "vless://" + presetUUID + "@de1.example.com:443?security=tls"},
	{ID: "ru_vless_1", Name: "VLESS - Russia 1 🇷🇺", URI: "vless://" + presetUUID + "@ru1.example.com:443?security=tls"},
	{ID: "fr_trojan_1", Name: "Trojan - France 1 🇫🇷", URI: "trojan://password@fr1.example.com:443?security=tls"},
	{ID: "jp_vless_1", Name: "VLESS - Japan 1 🇯🇵", URI: "vless://" + presetUUID + "@jp1.example.com:443?security=tls"},
	{ID: "uk_vless_1", Name: "VLESS - UK 1 🇬🇧", URI: "vless://" + presetUUID + "@uk1.example.com:443?security=tls"},
	{ID: "sg_vless_1", Name: "VLESS - Singapore 1 🇸🇬", URI: "vless://" + presetUUID + "@sg1.example.com:443?security=tls"},
}

// DefaultEntries returns a fresh copy of the compiled-in catalog used when
// the store holds nothing usable.
func DefaultEntries() []ConfigEntry {
	out := make([]ConfigEntry, len(defaultEntries))
	copy(out, defaultEntries)
	return out
}
