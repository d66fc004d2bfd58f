package messages

import (
	"fmt"
)

// Общие
const (
	Error            = "❌ خطایی رخ داد. لطفاً بعداً دوباره تلاش کنید."
	PermissionDenied = "⛔ شما دسترسی لازم را ندارید."
	AccessDenied     = "⛔ دسترسی ندارید"
	AdminOnlyInput   = "⛔ فقط مدیر می‌تواند از این بخش استفاده کند."
	NotFound         = "⚠️ یافت نشد"
)

// Кнопки
const (
	ButtonSubLink      = "📡 لینک اشتراک"
	ButtonServers      = "🖥️ لیست سرورها"
	ButtonTools        = "🧰 ابزارهای کاربردی"
	ButtonClients      = "📥 دانلود کلاینت"
	ButtonFAQ          = "❓ سوالات متداول"
	ButtonAdminPanel   = "🛠️ پنل مدیریت"
	ButtonBack         = "🔙 بازگشت"
	ButtonCancel       = "لغو"
	ButtonCopyLink     = "📋 کپی لینک"
	ButtonCopyConfig   = "📋 کپی کانفیگ"
	ButtonPingTest     = "📶 بررسی دسترسی سرورها"
	ButtonDNSTest      = "🛡️ راهنمای نشت DNS"
	ButtonIPInfo       = "🌍 مشاهده IP عمومی"
	ButtonAdminStats   = "📊 آمار ربات"
	ButtonListConfigs  = "🧩 لیست کانفیگ‌ها"
	ButtonAddConfig    = "➕ افزودن کانفیگ"
	ButtonRemoveConfig = "➖ حذف کانفیگ"
	ButtonBroadcast    = "📣 ارسال پیام همگانی"
	ButtonExportUsers  = "📤 خروجی کاربران"
	ButtonRemovePrefix = "🗑️ "
	ButtonFAQPrefix    = "❓ "
)

// Главное меню
const (
	MainMenu = "🌐 به ربات آزادی‌نت خوش آمدید!\nلطفاً گزینه مورد نظر را انتخاب کنید:"
)

// Подписка и серверы
const (
	SubLinkCopied    = "✅ لینک اشتراک در حافظه موقت کپی شد!"
	ServersTitle     = "🖥️ سرورهای موجود:"
	ServerNotFound   = "⚠️ سرور یافت نشد!"
	ConfigNotFound   = "⚠️ کانفیگ یافت نشد!"
	ConfigSent       = "✅ کانفیگ ارسال شد"
	ConfigQRFileName = "qrcode.png"
)

// Инструменты
const (
	ToolsTitle     = "🧰 ابزارهای کاربردی:"
	PingInProgress = "⏳ در حال بررسی دسترسی سرورها..."
	PingTitle      = "📶 نتایج بررسی:"
	PingLegend     = "🟢 خوب 🟡 متوسط 🟠 کند 🔴 ناممکن"
	PingNoConfigs  = "هیچ سروری برای بررسی وجود ندارد."
)

// Клиенты и FAQ
const (
	ClientsTitle = "📥 کلاینت‌های پیشنهادی:"
	FAQTitle     = "❓ سوالات متداول:"
	FAQNotFound  = "⚠️ سوال یافت نشد!"
)

// Админка
const (
	AdminPanelTitle     = "🛠️ پنل مدیریت:"
	ConfigListTitle     = "🧩 لیست کانفیگ‌ها:"
	ConfigListEmpty     = "هیچ کانفیگی ثبت نشده است."
	RemoveConfigEmpty   = "هیچ کانفیگی برای حذف وجود ندارد."
	RemoveConfigChoose  = "یکی را برای حذف انتخاب کنید:"
	AddConfigAskName    = "➕ نام نمایشی کانفیگ را ارسال کنید (مثلاً: VLESS - USA 3 🇺🇸)"
	AddConfigAskURL     = "لینک کانفیگ را ارسال کنید (vless://, trojan://, vmess://, ss://, ...)"
	AddConfigInvalidURL = "❌ لینک نامعتبر است. دوباره تلاش کنید یا لغو کنید."
	AddConfigEmptyName  = "❌ نام نمی‌تواند خالی باشد. دوباره ارسال کنید."
	BroadcastAskText    = "📣 متن پیام همگانی را ارسال کنید."
	UsersExported       = "✅ فایل کاربران ارسال شد"
	UsersExportFileName = "users.txt"
)

// Healthcheck
const (
	HealthcheckDownTitle = "🔴 سرورهای غیرقابل دسترس:"
	HealthcheckUpTitle   = "🟢 سرورهای دوباره در دسترس:"
)

func SubLink(link string) string {
	return fmt.Sprintf("🔗 لینک اشتراک سرویس:\n\n`%s`\n\nاین لینک را در کلاینت VPN خود وارد کنید تا همه سرورها اضافه شوند.", link)
}

func ConfigCaption(name string) string {
	return fmt.Sprintf("⚙️ %s\n\nبرای اتصال سریع، QR کد را با کلاینت خود اسکن کنید.", name)
}

func ConfigCode(uri string) string {
	return fmt.Sprintf("`%s`", uri)
}

func DNSLeakGuide(sites []string) string {
	return "🛡️ برای بررسی نشت DNS از مرورگر خود استفاده کنید:\n\n" +
		bullets(sites) +
		"\nپس از اتصال VPN، تست گسترده را اجرا کنید."
}

func IPInfoGuide(sites []string) string {
	return "🌍 ربات به IP شما دسترسی مستقیم ندارد. برای مشاهده IP عمومی خود به لینک‌های زیر بروید:\n\n" +
		bullets(sites)
}

func ClientLine(platform, name, url string) string {
	return fmt.Sprintf("• %s: [%s](%s)\n", platform, name, url)
}

func FAQDetail(question, answer string) string {
	return fmt.Sprintf("❓ %s\n\n💡 %s", question, answer)
}

func PingLatency(icon, name string, ms int64) string {
	return fmt.Sprintf("%s %s: %d ms", icon, name, ms)
}

func PingUnreachable(name string) string {
	return fmt.Sprintf("🔴 %s: ناممکن", name)
}

func PingUnknownFormat(name string) string {
	return fmt.Sprintf("⚪ %s: قالب ناشناخته", name)
}

func AdminStats(users, configs int, processed int64, uptime string) string {
	return fmt.Sprintf("📊 آمار ربات:\n\n"+
		"• کاربران: %d\n"+
		"• تعداد کانفیگ‌ها: %d\n"+
		"• پیام‌های پردازش‌شده: %d\n"+
		"• زمان روشن بودن: %s", users, configs, processed, uptime)
}

func ConfigListLine(name, id string) string {
	return fmt.Sprintf("• %s (%s)", name, id)
}

func ConfigRemoved(name string) string {
	return fmt.Sprintf("✅ حذف شد: %s", name)
}

func ConfigAdded(name, id string) string {
	return fmt.Sprintf("✅ با موفقیت اضافه شد: %s (%s)", name, id)
}

func BroadcastDone(sent int) string {
	return fmt.Sprintf("✅ ارسال شد برای %d کاربر", sent)
}

func UsersExportCaption(count int) string {
	return fmt.Sprintf("تعداد کاربران: %d", count)
}

func bullets(items []string) string {
	var out string
	for _, item := range items {
		out += "• " + item + "\n"
	}
	return out
}
