package actions

import (
	"strconv"
	"strings"
)

// Kind is the tag of a decoded callback action.
type Kind int

const (
	KindUnknown Kind = iota
	KindMainMenu
	KindSubLink
	KindCopySubLink
	KindServers
	KindShowConfig
	KindCopyConfig
	KindTools
	KindPingTest
	KindDNSTest
	KindIPInfo
	KindClients
	KindFAQ
	KindFAQDetail
	KindAdminPanel
	KindAdminStats
	KindAdminListConfigs
	KindAdminAddConfig
	KindAdminRemoveConfig
	KindAdminRemoveEntry
	KindAdminBroadcast
	KindAdminExportUsers
)

// Callback payloads
const (
	DataBack             = "back"
	DataSubLink          = "sublink"
	DataCopySubLink      = "copy_sublink"
	DataServers          = "servers"
	DataTools            = "tools"
	DataPingTest         = "ping_test"
	DataDNSTest          = "dns_test"
	DataIPInfo           = "ip_info"
	DataClients          = "clients"
	DataFAQ              = "faq"
	DataAdminPanel       = "admin_panel"
	DataAdminStats       = "admin_stats"
	DataAdminListConfigs = "admin_list_configs"
	DataAdminAddConfig   = "admin_add_config"
	DataAdminRemove      = "admin_remove_config"
	DataAdminBroadcast   = "admin_broadcast"
	DataAdminExportUsers = "admin_export_users"

	prefixShowConfig  = "config_"
	prefixCopyConfig  = "copy_"
	prefixFAQ         = "faq_"
	prefixAdminRemove = "admin_remove_"
)

var keywords = map[string]Kind{
	DataBack:             KindMainMenu,
	DataSubLink:          KindSubLink,
	DataCopySubLink:      KindCopySubLink,
	DataServers:          KindServers,
	DataTools:            KindTools,
	DataPingTest:         KindPingTest,
	DataDNSTest:          KindDNSTest,
	DataIPInfo:           KindIPInfo,
	DataClients:          KindClients,
	DataFAQ:              KindFAQ,
	DataAdminPanel:       KindAdminPanel,
	DataAdminStats:       KindAdminStats,
	DataAdminListConfigs: KindAdminListConfigs,
	DataAdminAddConfig:   KindAdminAddConfig,
	DataAdminRemove:      KindAdminRemoveConfig,
	DataAdminBroadcast:   KindAdminBroadcast,
	DataAdminExportUsers: KindAdminExportUsers,
}

// admin_remove_ goes before any shorter prefix it could collide with
var prefixes = []struct {
	prefix string
	kind   Kind
}{
	{prefixAdminRemove, KindAdminRemoveEntry},
	{prefixShowConfig, KindShowConfig},
	{prefixCopyConfig, KindCopyConfig},
	{prefixFAQ, KindFAQDetail},
}

// Action is a callback payload decoded into its kind and parameter.
// Param holds everything after the fixed prefix, verbatim.
type Action struct {
	Kind  Kind
	Param string
}

// Decode parses callback data. Exact keywords win over prefixed forms so
// "copy_sublink" never reads as copy_ with id "sublink".
func Decode(data string) Action {
	if kind, ok := keywords[data]; ok {
		return Action{Kind: kind}
	}

	for _, p := range prefixes {
		if param, ok := strings.CutPrefix(data, p.prefix); ok && param != "" {
			return Action{Kind: p.kind, Param: param}
		}
	}

	return Action{Kind: KindUnknown, Param: data}
}

// AdminOnly reports whether the action requires the admin id.
func (k Kind) AdminOnly() bool {
	switch k {
	case KindAdminPanel, KindAdminStats, KindAdminListConfigs, KindAdminAddConfig,
		KindAdminRemoveConfig, KindAdminRemoveEntry, KindAdminBroadcast, KindAdminExportUsers:
		return true
	default:
		return false
	}
}

func (k Kind) String() string {
	switch k {
	case KindMainMenu:
		return "main_menu"
	case KindSubLink:
		return "sublink"
	case KindCopySubLink:
		return "copy_sublink"
	case KindServers:
		return "servers"
	case KindShowConfig:
		return "show_config"
	case KindCopyConfig:
		return "copy_config"
	case KindTools:
		return "tools"
	case KindPingTest:
		return "ping_test"
	case KindDNSTest:
		return "dns_test"
	case KindIPInfo:
		return "ip_info"
	case KindClients:
		return "clients"
	case KindFAQ:
		return "faq"
	case KindFAQDetail:
		return "faq_detail"
	case KindAdminPanel:
		return "admin_panel"
	case KindAdminStats:
		return "admin_stats"
	case KindAdminListConfigs:
		return "admin_list_configs"
	case KindAdminAddConfig:
		return "admin_add_config"
	case KindAdminRemoveConfig:
		return "admin_remove_config"
	case KindAdminRemoveEntry:
		return "admin_remove_entry"
	case KindAdminBroadcast:
		return "admin_broadcast"
	case KindAdminExportUsers:
		return "admin_export_users"
	default:
		return "unknown"
	}
}

// FAQIndex parses the parameter of a faq_<index> action.
func (a Action) FAQIndex() (int, bool) {
	if a.Kind != KindFAQDetail {
		return 0, false
	}
	i, err := strconv.Atoi(a.Param)
	if err != nil {
		return 0, false
	}
	return i, true
}

func ShowConfig(id string) string       { return prefixShowConfig + id }
func CopyConfig(id string) string       { return prefixCopyConfig + id }
func FAQDetail(i int) string            { return prefixFAQ + strconv.Itoa(i) }
func AdminRemoveEntry(id string) string { return prefixAdminRemove + id }
