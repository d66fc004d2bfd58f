package actions

import "testing"

func TestDecode(t *testing.T) {
	tests := []struct {
		data      string
		wantKind  Kind
		wantParam string
	}{
		{data: "back", wantKind: KindMainMenu},
		{data: "sublink", wantKind: KindSubLink},
		{data: "copy_sublink", wantKind: KindCopySubLink},
		{data: "servers", wantKind: KindServers},
		{data: "tools", wantKind: KindTools},
		{data: "ping_test", wantKind: KindPingTest},
		{data: "dns_test", wantKind: KindDNSTest},
		{data: "ip_info", wantKind: KindIPInfo},
		{data: "clients", wantKind: KindClients},
		{data: "faq", wantKind: KindFAQ},
		{data: "admin_panel", wantKind: KindAdminPanel},
		{data: "admin_stats", wantKind: KindAdminStats},
		{data: "admin_list_configs", wantKind: KindAdminListConfigs},
		{data: "admin_add_config", wantKind: KindAdminAddConfig},
		{data: "admin_remove_config", wantKind: KindAdminRemoveConfig},
		{data: "admin_broadcast", wantKind: KindAdminBroadcast},
		{data: "admin_export_users", wantKind: KindAdminExportUsers},

		// ids carry underscores, only the first delimiter after the prefix splits
		{data: "config_us_vless_1", wantKind: KindShowConfig, wantParam: "us_vless_1"},
		{data: "copy_nl_trojan_1", wantKind: KindCopyConfig, wantParam: "nl_trojan_1"},
		{data: "admin_remove_de_vless_1", wantKind: KindAdminRemoveEntry, wantParam: "de_vless_1"},
		{data: "admin_remove_config_x", wantKind: KindAdminRemoveEntry, wantParam: "config_x"},
		{data: "faq_2", wantKind: KindFAQDetail, wantParam: "2"},
		{data: "faq_x", wantKind: KindFAQDetail, wantParam: "x"},

		{data: "config_", wantKind: KindUnknown, wantParam: "config_"},
		{data: "admin_unknown", wantKind: KindUnknown, wantParam: "admin_unknown"},
		{data: "", wantKind: KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.data, func(t *testing.T) {
			got := Decode(tt.data)
			if got.Kind != tt.wantKind {
				t.Errorf("Decode(%q).Kind = %s, want %s", tt.data, got.Kind, tt.wantKind)
			}
			if got.Param != tt.wantParam {
				t.Errorf("Decode(%q).Param = %q, want %q", tt.data, got.Param, tt.wantParam)
			}
		})
	}
}

func TestEncodersRoundTrip(t *testing.T) {
	id := "vless-usa3_4821"

	if a := Decode(ShowConfig(id)); a.Kind != KindShowConfig || a.Param != id {
		t.Errorf("ShowConfig round trip = %+v", a)
	}
	if a := Decode(CopyConfig(id)); a.Kind != KindCopyConfig || a.Param != id {
		t.Errorf("CopyConfig round trip = %+v", a)
	}
	if a := Decode(AdminRemoveEntry(id)); a.Kind != KindAdminRemoveEntry || a.Param != id {
		t.Errorf("AdminRemoveEntry round trip = %+v", a)
	}
	if i, ok := Decode(FAQDetail(1)).FAQIndex(); !ok || i != 1 {
		t.Errorf("FAQDetail(1) index = %d, %v", i, ok)
	}
}

func TestFAQIndex(t *testing.T) {
	tests := []struct {
		data   string
		want   int
		wantOK bool
	}{
		{"faq_0", 0, true},
		{"faq_12", 12, true},
		{"faq_-1", -1, true},
		{"faq_one", 0, false},
		{"faq", 0, false},
	}

	for _, tt := range tests {
		got, ok := Decode(tt.data).FAQIndex()
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("Decode(%q).FAQIndex() = %d, %v; want %d, %v", tt.data, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestAdminOnly(t *testing.T) {
	admin := []Kind{
		KindAdminPanel, KindAdminStats, KindAdminListConfigs, KindAdminAddConfig,
		KindAdminRemoveConfig, KindAdminRemoveEntry, KindAdminBroadcast, KindAdminExportUsers,
	}
	for _, k := range admin {
		if !k.AdminOnly() {
			t.Errorf("%s.AdminOnly() = false", k)
		}
	}

	public := []Kind{KindMainMenu, KindSubLink, KindCopySubLink, KindServers, KindShowConfig, KindCopyConfig, KindFAQDetail, KindUnknown}
	for _, k := range public {
		if k.AdminOnly() {
			t.Errorf("%s.AdminOnly() = true", k)
		}
	}
}
