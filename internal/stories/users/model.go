package users

// User - Telegram user id observed by the bot
type User struct {
	TelegramID int64
}
